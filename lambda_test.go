package scheme

import "testing"

// lambdaOf unwraps a VTLambda result.
func lambdaOf(t *testing.T, v Value) *Lambda {
	t.Helper()
	if v.Tag != VTLambda {
		t.Fatalf("want a lambda, got %s", ToString(v))
	}
	return v.Data.(*Lambda)
}

func TestLambdaRetainsDefiningFrame(t *testing.T) {
	ip := NewInterpreter()
	before := ip.frames.Refs(ip.scope)
	v := mustParse(t, "(lambda (x) x)")
	result, err := ip.Eval(v)
	if err != nil {
		t.Fatal(err)
	}
	l := lambdaOf(t, result)
	if l.scope != ip.scope {
		t.Fatal("closure must capture the current frame")
	}
	if got := ip.frames.Refs(ip.scope); got != before+1 {
		t.Fatalf("root refs = %d, want %d", got, before+1)
	}
}

func TestCallFrameCounting(t *testing.T) {
	ip := NewInterpreter()
	mustRun(t, ip, "(define (adder n) (lambda (x) (+ x n)))")
	adder := lambdaOf(t, ip.frames.Get(ip.scope, "adder"))

	result, err := ip.Eval(mustParse(t, "(adder 5)"))
	if err != nil {
		t.Fatal(err)
	}
	inner := lambdaOf(t, result)

	// The call frame of (adder 5) is tracked by adder and kept alive by
	// the returned closure alone -- the call's own retain is released.
	if len(adder.locals) != 1 {
		t.Fatalf("adder tracks %d frames, want 1", len(adder.locals))
	}
	frame := adder.locals[0]
	if inner.scope != frame {
		t.Fatal("inner closure must capture the call frame")
	}
	if got := ip.frames.Refs(frame); got != 1 {
		t.Fatalf("call frame refs = %d, want 1", got)
	}
	if v, ok := ip.frames.Lookup(frame, "n"); !ok || !Equal(v, NumberValue(5)) {
		t.Fatal("call frame must bind the parameter")
	}
}

func TestLazyFrameReclamation(t *testing.T) {
	ip := NewInterpreter()
	mustRun(t, ip, "(define (adder n) (lambda (x) (+ x n)))")
	adder := lambdaOf(t, ip.frames.Get(ip.scope, "adder"))

	result, err := ip.Eval(mustParse(t, "(adder 5)"))
	if err != nil {
		t.Fatal(err)
	}
	inner := lambdaOf(t, result)
	frame := adder.locals[0]

	// Dropping the closure brings the frame's counter to zero, but
	// reclamation waits for adder's next call.
	inner.dispose(ip.frames)
	if ip.frames.Refs(frame) != 0 {
		t.Fatalf("refs = %d, want 0", ip.frames.Refs(frame))
	}
	if !ip.frames.Alive(frame) {
		t.Fatal("frame must survive until the next call sweeps it")
	}

	if _, err := ip.Eval(mustParse(t, "(adder 6)")); err != nil {
		t.Fatal(err)
	}
	if ip.frames.Alive(frame) {
		t.Fatal("dead frame must be swept at the next call")
	}
	if len(adder.locals) != 1 {
		t.Fatalf("adder tracks %d frames after the sweep, want 1", len(adder.locals))
	}
	if adder.locals[0] == frame {
		t.Fatal("the swept frame must not be tracked any more")
	}
}

func TestLiveFramesSurviveSweep(t *testing.T) {
	ip := NewInterpreter()
	mustRun(t, ip, "(define (adder n) (lambda (x) (+ x n)))")
	adder := lambdaOf(t, ip.frames.Get(ip.scope, "adder"))

	a, err := ip.Eval(mustParse(t, "(adder 5)"))
	if err != nil {
		t.Fatal(err)
	}
	frameA := lambdaOf(t, a).scope
	if _, err := ip.Eval(mustParse(t, "(adder 6)")); err != nil {
		t.Fatal(err)
	}
	if !ip.frames.Alive(frameA) {
		t.Fatal("a frame retained by a live closure must survive the sweep")
	}
	if len(adder.locals) != 2 {
		t.Fatalf("adder tracks %d frames, want 2", len(adder.locals))
	}
}

func TestDisposeIsIdempotent(t *testing.T) {
	ip := NewInterpreter()
	result, err := ip.Eval(mustParse(t, "(lambda (x) x)"))
	if err != nil {
		t.Fatal(err)
	}
	l := lambdaOf(t, result)
	before := ip.frames.Refs(l.scope)
	l.dispose(ip.frames)
	l.dispose(ip.frames)
	if got := ip.frames.Refs(l.scope); got != before-1 {
		t.Fatalf("refs = %d, want %d (double dispose must release once)", got, before-1)
	}
}

func TestCallAfterDefiningFrameDies(t *testing.T) {
	ip := NewInterpreter()
	child := ip.frames.NewScope(ip.scope)
	sub := ip.fork(child)
	result := sub.eval(mustParse(t, "(lambda (x) x)"))
	sub.release()
	l := lambdaOf(t, result)

	l.dispose(ip.frames)
	ip.frames.Free(child)

	form := Cons(result, Cons(NumberValue(1), EmptyList))
	_, err := ip.Eval(form)
	if err == nil {
		t.Fatal("calling a closure over a dead frame must fail")
	}
	if _, ok := err.(*RuntimeError); !ok {
		t.Fatalf("want *RuntimeError, got %T: %v", err, err)
	}
}

func TestFreeDisposesBoundLambdas(t *testing.T) {
	ip := NewInterpreter()
	mustRun(t, ip, "(define (outer) (define inner (lambda () 1)) inner)")
	outer := lambdaOf(t, ip.frames.Get(ip.scope, "outer"))

	result, err := ip.Eval(mustParse(t, "(outer)"))
	if err != nil {
		t.Fatal(err)
	}
	inner := lambdaOf(t, result)
	frame := adoptedFrame(t, outer)

	// inner is bound inside the call frame and captures it, so the frame
	// holds itself alive through the binding.
	if got := ip.frames.Refs(frame); got != 1 {
		t.Fatalf("refs = %d, want 1", got)
	}

	// Freeing the frame must dispose inner exactly once without
	// re-entering the frame through the self-referential binding.
	ip.frames.Free(frame)
	if !inner.released {
		t.Fatal("freeing the frame must dispose the lambdas bound in it")
	}
	if ip.frames.Alive(frame) {
		t.Fatal("frame must be dead after Free")
	}
}

func adoptedFrame(t *testing.T, l *Lambda) ScopeRef {
	t.Helper()
	if len(l.locals) != 1 {
		t.Fatalf("lambda tracks %d frames, want 1", len(l.locals))
	}
	return l.locals[0]
}
