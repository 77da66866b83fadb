package scheme

import "testing"

func TestToStringAtoms(t *testing.T) {
	cases := []struct {
		v    Value
		want string
	}{
		{EmptyList, "()"},
		{NumberValue(0), "0"},
		{NumberValue(-42), "-42"},
		{NumberValue(1 << 40), "1099511627776"},
		{BooleanValue(true), "#t"},
		{BooleanValue(false), "#f"},
		{SymbolValue("set!"), "set!"},
	}
	for _, c := range cases {
		if got := ToString(c.v); got != c.want {
			t.Errorf("ToString = %q, want %q", got, c.want)
		}
	}
}

func TestToStringLists(t *testing.T) {
	cases := []struct {
		v    Value
		want string
	}{
		{Cons(NumberValue(1), EmptyList), "(1)"},
		{FoldList([]Value{NumberValue(1), NumberValue(2), NumberValue(3)}), "(1 2 3)"},
		{Cons(NumberValue(1), NumberValue(2)), "(1 . 2)"},
		{Cons(NumberValue(1), Cons(NumberValue(2), NumberValue(3))), "(1 2 . 3)"},
		{Cons(EmptyList, EmptyList), "(())"},
		{Cons(Cons(SymbolValue("a"), EmptyList), Cons(SymbolValue("b"), EmptyList)), "((a) b)"},
	}
	for _, c := range cases {
		if got := ToString(c.v); got != c.want {
			t.Errorf("ToString = %q, want %q", got, c.want)
		}
	}
}

func TestToStringLambda(t *testing.T) {
	ip := NewInterpreter()
	result, err := ip.Eval(mustParse(t, "(lambda (x y) (+ x y) x)"))
	if err != nil {
		t.Fatal(err)
	}
	if got := ToString(result); got != "(lambda (x y) (+ x y) x)" {
		t.Fatalf("got %q", got)
	}
	result, err = ip.Eval(mustParse(t, "(lambda () 1)"))
	if err != nil {
		t.Fatal(err)
	}
	if got := ToString(result); got != "(lambda () 1)" {
		t.Fatalf("got %q", got)
	}
}
