// builtin_math.go — numeric primitives and predicates.
//
// Primitives, unlike special forms, evaluate every argument left to right
// before acting; evalTail does that in place so error messages render the
// evaluated operands. Arity and operand-type violations all report the
// whole form via failEvaluation.
package scheme

func registerMathBuiltins(ip *Interpreter) {
	ip.register("number?", typePredicate(VTNumber))
	ip.register("boolean?", typePredicate(VTBoolean))
	ip.register("=", comparison(Equal))
	ip.register("<", comparison(Less))
	ip.register(">", comparison(Greater))
	ip.register("<=", comparison(LessOrEqual))
	ip.register(">=", comparison(GreaterOrEqual))
	ip.register("+", addCommand)
	ip.register("-", subtractCommand)
	ip.register("*", multiplyCommand)
	ip.register("/", divideCommand)
	ip.register("not", notCommand)
	ip.register("min", extremum(Less))
	ip.register("max", extremum(Greater))
	ip.register("abs", absCommand)
}

// evalTail evaluates args[1:] in place, leaving the head untouched.
func evalTail(ip *Interpreter, args []Value) {
	for i := 1; i < len(args); i++ {
		args[i] = ip.eval(args[i])
	}
}

// typePredicate builds the number?/boolean?/pair?/symbol? commands.
func typePredicate(tag ValueTag) command {
	return func(ip *Interpreter, args []Value) Value {
		if len(args) != 2 {
			failEvaluation(args)
		}
		evalTail(ip, args)
		return BooleanValue(args[1].Tag == tag)
	}
}

// comparison builds the variadic chained comparisons: every operand must
// be a number, and rel must hold between each adjacent pair. With fewer
// than two operands the chain is vacuously true.
func comparison(rel func(a, b Value) bool) command {
	return func(ip *Interpreter, args []Value) Value {
		evalTail(ip, args)
		for _, arg := range args[1:] {
			if arg.Tag != VTNumber {
				failEvaluation(args)
			}
		}
		for i := 2; i < len(args); i++ {
			if !rel(args[i-1], args[i]) {
				return BooleanValue(false)
			}
		}
		return BooleanValue(true)
	}
}

func addCommand(ip *Interpreter, args []Value) Value {
	evalTail(ip, args)
	result := NumberValue(0)
	for _, arg := range args[1:] {
		result = Add(result, arg)
	}
	return result
}

func subtractCommand(ip *Interpreter, args []Value) Value {
	evalTail(ip, args)
	if len(args) <= 1 {
		failEvaluation(args)
	}
	result := args[1]
	for _, arg := range args[2:] {
		result = Subtract(result, arg)
	}
	return result
}

func multiplyCommand(ip *Interpreter, args []Value) Value {
	evalTail(ip, args)
	result := NumberValue(1)
	for _, arg := range args[1:] {
		result = Multiply(result, arg)
	}
	return result
}

func divideCommand(ip *Interpreter, args []Value) Value {
	evalTail(ip, args)
	if len(args) <= 1 {
		failEvaluation(args)
	}
	result := args[1]
	for _, arg := range args[2:] {
		result = Divide(result, arg)
	}
	return result
}

func notCommand(ip *Interpreter, args []Value) Value {
	evalTail(ip, args)
	if len(args) != 2 {
		failEvaluation(args)
	}
	return Not(args[1])
}

// extremum builds min and max: at least one operand, all numbers, keep the
// one that wins rel against the current best.
func extremum(rel func(a, b Value) bool) command {
	return func(ip *Interpreter, args []Value) Value {
		evalTail(ip, args)
		if len(args) <= 1 {
			failEvaluation(args)
		}
		for _, arg := range args[1:] {
			if arg.Tag != VTNumber {
				failEvaluation(args)
			}
		}
		result := args[1]
		for _, arg := range args[2:] {
			if rel(arg, result) {
				result = arg
			}
		}
		return result
	}
}

func absCommand(ip *Interpreter, args []Value) Value {
	evalTail(ip, args)
	if len(args) != 2 || args[1].Tag != VTNumber {
		failEvaluation(args)
	}
	if n := args[1].Data.(int64); n < 0 {
		return NumberValue(-n)
	}
	return args[1]
}
