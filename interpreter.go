// interpreter.go — evaluation dispatch and the public entry points.
//
// The evaluator is a plain tree walker. Numbers, booleans, and lambdas
// evaluate to themselves; a symbol is looked up in the current scope chain;
// a pair is a form (head arg...). Special forms and primitive procedures
// share a single dispatch table keyed by name: every handler receives the
// whole unevaluated form (args[0] is the head) and decides for itself which
// sub-forms to evaluate. Primitives evaluate all of their arguments, left
// to right; special forms (quote, if, define, set!, lambda, and, or, the
// mutators) do not. When the head names neither, it is evaluated and must
// yield a lambda, which is applied to the evaluated arguments.
//
// Evaluation runs to completion or raises one of the error kinds in
// errors.go via panic; the exported methods recover them into Go errors.
// The empty list as a form is the one empty-list error case.
package scheme

import "sort"

// command handles one named form. args is the unevaluated unfolded form,
// args[0] being the head symbol; handlers validate their own arity.
type command func(ip *Interpreter, args []Value) Value

// Interpreter evaluates expressions against one scope chain. The zero
// value is not usable; construct with NewInterpreter. Child interpreters
// created during lambda calls share the frame arena and dispatch table and
// differ only in the scope they are bound to.
type Interpreter struct {
	frames   *Frames
	commands map[string]command
	scope    ScopeRef
}

// NewInterpreter returns an interpreter with a fresh root scope and all
// special forms and primitives installed. The root scope is retained for
// the interpreter's lifetime.
func NewInterpreter() *Interpreter {
	ip := &Interpreter{
		frames:   NewFrames(),
		commands: make(map[string]command),
	}
	registerSpecialForms(ip)
	registerMathBuiltins(ip)
	registerListBuiltins(ip)
	ip.scope = ip.frames.NewScope(NoScope)
	ip.frames.Retain(ip.scope)
	return ip
}

func (ip *Interpreter) register(name string, cmd command) {
	ip.commands[name] = cmd
}

// fork returns an evaluator bound to scope, retaining it. Every fork must
// be paired with a release.
func (ip *Interpreter) fork(scope ScopeRef) *Interpreter {
	ip.frames.Retain(scope)
	return &Interpreter{frames: ip.frames, commands: ip.commands, scope: scope}
}

func (ip *Interpreter) release() {
	ip.frames.Release(ip.scope)
}

func (ip *Interpreter) eval(obj Value) Value {
	switch obj.Tag {
	case VTNumber, VTBoolean, VTLambda:
		return obj
	case VTSymbol:
		return ip.frames.Get(ip.scope, obj.Data.(string))
	case VTPair:
		form := UnfoldList(obj)
		if len(form) > 0 {
			if form[0].Tag == VTSymbol {
				if cmd, ok := ip.commands[form[0].Data.(string)]; ok {
					return cmd(ip, form)
				}
			}
			head := ip.eval(form[0])
			if head.Tag == VTLambda {
				args := make([]Value, len(form)-1)
				for i, a := range form[1:] {
					args[i] = ip.eval(a)
				}
				return head.Data.(*Lambda).Call(ip, args)
			}
		}
	}
	failRuntime("Cannot evaluate: " + ToString(obj))
	return Value{}
}

// failEvaluation is the shared arity/type complaint of primitives: it
// renders the whole offending form.
func failEvaluation(args []Value) {
	msg := "Failed to evaluate: ("
	for _, arg := range args {
		msg += " " + ToString(arg)
	}
	msg += ")"
	failRuntime(msg)
}

// ---- public surface ------------------------------------------------------

// Eval evaluates one already-parsed expression in the interpreter's scope.
func (ip *Interpreter) Eval(obj Value) (result Value, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = recoverEvalError(r)
		}
	}()
	return ip.eval(obj), nil
}

// Run tokenizes and evaluates exactly one expression against the
// interpreter's persistent scope and renders the result. Unconsumed
// trailing input is a syntax error.
func (ip *Interpreter) Run(src string) (out string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = recoverEvalError(r)
		}
	}()
	tz := NewTokenizer(src)
	obj := Read(tz)
	if !tz.IsEnd() {
		line, col := tz.Pos()
		failSyntaxAt("Unexpected input", line, col)
	}
	return ToString(ip.eval(obj)), nil
}

// RunProgram evaluates every top-level expression in src in sequence and
// renders the result of the last one. The source must contain at least one
// expression.
func (ip *Interpreter) RunProgram(src string) (out string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = recoverEvalError(r)
		}
	}()
	tz := NewTokenizer(src)
	result := ip.eval(Read(tz))
	for !tz.IsEnd() {
		result = ip.eval(Read(tz))
	}
	return ToString(result), nil
}

// Run evaluates one expression against a fresh root environment; the
// one-shot driver contract (tokenize, parse, require end of input,
// evaluate, render).
func Run(src string) (string, error) {
	return NewInterpreter().Run(src)
}

// Symbols returns the sorted names of every dispatch-table entry and every
// binding visible from the interpreter's scope. REPL completion feeds on
// this.
func (ip *Interpreter) Symbols() []string {
	seen := make(map[string]bool, len(ip.commands))
	out := make([]string, 0, len(ip.commands))
	for name := range ip.commands {
		seen[name] = true
		out = append(out, name)
	}
	for _, name := range ip.frames.Names(ip.scope) {
		if !seen[name] {
			seen[name] = true
			out = append(out, name)
		}
	}
	sort.Strings(out)
	return out
}
