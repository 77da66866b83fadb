package scheme

import "testing"

func TestConsCarCdr(t *testing.T) {
	wantRun(t, "(cons 1 2)", "(1 . 2)")
	wantRun(t, "(cons 1 '())", "(1)")
	wantRun(t, "(cons 1 (cons 2 '()))", "(1 2)")
	wantRun(t, "(car '(1 2))", "1")
	wantRun(t, "(cdr '(1 2))", "(2)")
	wantRun(t, "(cdr '(1))", "()")
	wantRun(t, "(car (cdr '(1 2 3)))", "2")
	wantRun(t, "(cdr (cons 1 2))", "2")
}

func TestCarCdrErrors(t *testing.T) {
	wantRuntimeError(t, "(car 5)")
	wantRuntimeError(t, "(car '())")
	wantRuntimeError(t, "(cdr '())")
	wantRuntimeError(t, "(car)")
	wantRuntimeError(t, "(car '(1) '(2))")
	wantRuntimeError(t, "(cons 1)")
	wantRuntimeError(t, "(cons 1 2 3)")
}

func TestListConstructor(t *testing.T) {
	wantRun(t, "(list)", "()")
	wantRun(t, "(list 1 2 3)", "(1 2 3)")
	wantRun(t, "(list (+ 1 2) 'a #t)", "(3 a #t)")
	wantRun(t, "(list (list 1) 2)", "((1) 2)")
}

func TestListPredicates(t *testing.T) {
	wantRun(t, "(null? '())", "#t")
	wantRun(t, "(null? '(1))", "#f")
	wantRun(t, "(null? 0)", "#f")
	wantRun(t, "(pair? '(1))", "#t")
	wantRun(t, "(pair? (cons 1 2))", "#t")
	wantRun(t, "(pair? '())", "#f")
	wantRun(t, "(pair? 5)", "#f")
	wantRun(t, "(symbol? 'x)", "#t")
	wantRun(t, "(symbol? 5)", "#f")
	wantRun(t, "(list? '())", "#t")
	wantRun(t, "(list? '(1 2))", "#t")
	wantRun(t, "(list? (cons 1 2))", "#f")
	wantRun(t, "(list? 5)", "#f")
}

func TestListRef(t *testing.T) {
	wantRun(t, "(list-ref '(1 2 3) 0)", "1")
	wantRun(t, "(list-ref '(1 2 3) 2)", "3")
	wantRuntimeError(t, "(list-ref '(1 2 3) 3)")
	wantRuntimeError(t, "(list-ref '(1 2 3) -1)")
	wantRuntimeError(t, "(list-ref (cons 1 2) 0)")
	wantRuntimeError(t, "(list-ref '(1) 'a)")
	wantRuntimeError(t, "(list-ref '(1))")
}

func TestListTail(t *testing.T) {
	wantRun(t, "(list-tail '(1 2 3) 0)", "(1 2 3)")
	wantRun(t, "(list-tail '(1 2 3) 1)", "(2 3)")
	wantRun(t, "(list-tail '(1 2 3) 3)", "()")
	wantRun(t, "(list-tail (cons 1 2) 1)", "2")
	wantRuntimeError(t, "(list-tail '(1 2 3) 4)")
	wantRuntimeError(t, "(list-tail '(1 2 3) -1)")
	wantRuntimeError(t, "(list-tail 5 1)")
}
