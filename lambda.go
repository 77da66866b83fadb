// lambda.go — closures and the call-frame bookkeeping they own.
//
// A Lambda pairs a parameter list and a body with the frame that was
// current when the lambda form was evaluated. The handle to that defining
// frame is non-owning; what keeps the frame alive is the liveness counter
// it was retained with at construction (see scope.go for the protocol).
//
// Each call allocates a fresh frame under the defining frame. The lambda
// itself tracks every frame it has allocated and sweeps the dead ones —
// counter at or below zero — at the start of its next call. That sweep is
// the only reclamation point in the interpreter: a lambda that is never
// called again keeps its last frames until the arena itself goes away.
package scheme

// Lambda is a callable closure value (Tag VTLambda).
type Lambda struct {
	params   []string
	scope    ScopeRef // defining frame, non-owning
	body     []Value  // non-empty; enforced at construction sites
	locals   []ScopeRef
	released bool
}

// newLambda builds a closure over the interpreter's current frame and
// retains that frame. Callers must have validated that body is non-empty.
func newLambda(ip *Interpreter, params []string, body []Value) Value {
	l := &Lambda{params: params, scope: ip.scope, body: body}
	ip.frames.Retain(l.scope)
	return Value{Tag: VTLambda, Data: l}
}

// dispose releases the defining frame. Idempotent: a lambda reachable from
// several reclaimed frames releases only once.
func (l *Lambda) dispose(f *Frames) {
	if l.released {
		return
	}
	l.released = true
	f.Release(l.scope)
}

// Call applies the closure to already-evaluated arguments.
func (l *Lambda) Call(ip *Interpreter, args []Value) Value {
	if len(args) != len(l.params) {
		failRuntime("Invalid number of arguments for lambda: " + l.render())
	}

	// Sweep frames from earlier calls that nothing retains any more.
	frames := ip.frames
	kept := l.locals[:0]
	for _, ref := range l.locals {
		if frames.Refs(ref) <= 0 {
			frames.Free(ref)
		} else {
			kept = append(kept, ref)
		}
	}
	l.locals = kept

	if l.released || !frames.Alive(l.scope) {
		failRuntime("Cannot call " + l.render() + ": its defining scope is gone")
	}

	local := frames.NewScope(l.scope)
	l.locals = append(l.locals, local)
	for i, name := range l.params {
		frames.Define(local, name, args[i])
	}

	// A child evaluator retains the frame for the duration of the call, so
	// a nested sweep can never free a frame that is still executing.
	child := ip.fork(local)
	defer child.release()

	var result Value
	for _, expr := range l.body {
		result = child.eval(expr)
	}
	return result
}
