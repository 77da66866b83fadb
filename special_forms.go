// special_forms.go — forms that control their own evaluation.
//
// These handlers receive the unevaluated form and evaluate only the
// sub-forms their semantics call for: quote evaluates nothing, if evaluates
// one branch, define and set! treat the name position as syntax, and/or
// stop at the first decisive operand, lambda evaluates nothing at all.
// Malformed structure (wrong arity, a non-symbol name) is a SyntaxError,
// matching the reader's error kind: the form is syntactically wrong even
// though it arrived through the evaluator.
package scheme

func registerSpecialForms(ip *Interpreter) {
	ip.register("quote", quoteForm)
	ip.register("if", ifForm)
	ip.register("define", defineForm)
	ip.register("set!", setForm)
	ip.register("set-car!", setCarForm)
	ip.register("set-cdr!", setCdrForm)
	ip.register("lambda", lambdaForm)
	ip.register("and", andForm)
	ip.register("or", orForm)
}

func quoteForm(ip *Interpreter, args []Value) Value {
	if len(args) != 2 {
		failEvaluation(args)
	}
	return args[1]
}

func ifForm(ip *Interpreter, args []Value) Value {
	if len(args) != 3 && len(args) != 4 {
		failSyntax("Invalid if")
	}
	if AsBoolean(ip.eval(args[1])) {
		return ip.eval(args[2])
	}
	if len(args) == 4 {
		return ip.eval(args[3])
	}
	return EmptyList
}

// unfoldSymbols flattens a proper list of symbols into their names.
func unfoldSymbols(v Value) ([]string, bool) {
	var names []string
	for v.Tag != VTEmpty {
		if v.Tag != VTPair {
			return nil, false
		}
		p := v.Data.(*Pair)
		if p.Car.Tag != VTSymbol {
			return nil, false
		}
		names = append(names, p.Car.Data.(string))
		v = p.Cdr
	}
	return names, true
}

func defineForm(ip *Interpreter, args []Value) Value {
	if len(args) <= 1 {
		failSyntax("Invalid define")
	}
	if args[1].Tag == VTSymbol {
		// (define name expr)
		if len(args) != 3 {
			failSyntax("Invalid define")
		}
		name := args[1].Data.(string)
		// Pre-bind to the empty list so the value expression can refer to
		// the name being defined (self- and mutual recursion).
		ip.frames.Set(ip.scope, name, EmptyList)
		ip.frames.Set(ip.scope, name, ip.eval(args[2]))
		return EmptyList
	}
	// (define (name params...) body...)
	if len(args) < 3 {
		failSyntax("Invalid define")
	}
	names, ok := unfoldSymbols(args[1])
	if !ok || len(names) == 0 {
		failSyntax("Invalid define")
	}
	name, params := names[0], names[1:]
	ip.frames.Set(ip.scope, name, EmptyList)
	ip.frames.Set(ip.scope, name, newLambda(ip, params, args[2:]))
	return EmptyList
}

func setForm(ip *Interpreter, args []Value) Value {
	if len(args) != 3 || args[1].Tag != VTSymbol {
		failSyntax("Invalid set!")
	}
	name := args[1].Data.(string)
	value := ip.eval(args[2])
	if !ip.frames.SetExisting(ip.scope, name, value) {
		failName("Variable doesn't yet exist: " + name)
	}
	return EmptyList
}

// mutatePair implements set-car! and set-cdr!: the target is a variable
// name whose binding must exist and hold a pair; slot picks Car or Cdr.
func mutatePair(ip *Interpreter, args []Value, form string, slot func(*Pair, Value)) Value {
	if len(args) != 3 || args[1].Tag != VTSymbol {
		failSyntax("Invalid " + form)
	}
	name := args[1].Data.(string)
	value := ip.eval(args[2])
	v, ok := ip.frames.Lookup(ip.scope, name)
	if !ok {
		failName("Variable doesn't yet exist: " + name)
	}
	if v.Tag != VTPair {
		failRuntime("Cannot " + form + " on a non-pair")
	}
	slot(v.Data.(*Pair), value)
	return EmptyList
}

func setCarForm(ip *Interpreter, args []Value) Value {
	return mutatePair(ip, args, "set-car!", func(p *Pair, v Value) { p.Car = v })
}

func setCdrForm(ip *Interpreter, args []Value) Value {
	return mutatePair(ip, args, "set-cdr!", func(p *Pair, v Value) { p.Cdr = v })
}

func lambdaForm(ip *Interpreter, args []Value) Value {
	if len(args) < 3 {
		failSyntax("Invalid lambda")
	}
	params, ok := unfoldSymbols(args[1])
	if !ok {
		failSyntax("Invalid lambda")
	}
	return newLambda(ip, params, args[2:])
}

func andForm(ip *Interpreter, args []Value) Value {
	result := BooleanValue(true)
	for _, arg := range args[1:] {
		result = ip.eval(arg)
		if !AsBoolean(result) {
			return result
		}
	}
	return result
}

func orForm(ip *Interpreter, args []Value) Value {
	result := BooleanValue(false)
	for _, arg := range args[1:] {
		result = ip.eval(arg)
		if AsBoolean(result) {
			return result
		}
	}
	return result
}
