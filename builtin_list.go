// builtin_list.go — pair and list primitives.
package scheme

func registerListBuiltins(ip *Interpreter) {
	ip.register("pair?", typePredicate(VTPair))
	ip.register("symbol?", typePredicate(VTSymbol))
	ip.register("null?", nullCommand)
	ip.register("list?", listCommand)
	ip.register("cons", consCommand)
	ip.register("car", carCommand)
	ip.register("cdr", cdrCommand)
	ip.register("list", listConstructor)
	ip.register("list-ref", listRefCommand)
	ip.register("list-tail", listTailCommand)
}

func nullCommand(ip *Interpreter, args []Value) Value {
	evalTail(ip, args)
	if len(args) != 2 {
		failEvaluation(args)
	}
	return BooleanValue(args[1].Tag == VTEmpty)
}

func listCommand(ip *Interpreter, args []Value) Value {
	evalTail(ip, args)
	if len(args) != 2 {
		failEvaluation(args)
	}
	return BooleanValue(IsProperList(args[1]))
}

func consCommand(ip *Interpreter, args []Value) Value {
	evalTail(ip, args)
	if len(args) != 3 {
		failEvaluation(args)
	}
	return Cons(args[1], args[2])
}

func carCommand(ip *Interpreter, args []Value) Value {
	evalTail(ip, args)
	if len(args) != 2 || args[1].Tag != VTPair {
		failEvaluation(args)
	}
	return args[1].Data.(*Pair).Car
}

func cdrCommand(ip *Interpreter, args []Value) Value {
	evalTail(ip, args)
	if len(args) != 2 || args[1].Tag != VTPair {
		failEvaluation(args)
	}
	return args[1].Data.(*Pair).Cdr
}

func listConstructor(ip *Interpreter, args []Value) Value {
	evalTail(ip, args)
	return FoldList(args[1:])
}

func listRefCommand(ip *Interpreter, args []Value) Value {
	evalTail(ip, args)
	if len(args) != 3 || args[2].Tag != VTNumber {
		failEvaluation(args)
	}
	if !IsProperList(args[1]) {
		failEvaluation(args)
	}
	list := UnfoldList(args[1])
	index := args[2].Data.(int64)
	if index < 0 || index >= int64(len(list)) {
		failEvaluation(args)
	}
	return list[index]
}

func listTailCommand(ip *Interpreter, args []Value) Value {
	evalTail(ip, args)
	if len(args) != 3 || args[2].Tag != VTNumber {
		failEvaluation(args)
	}
	drop := args[2].Data.(int64)
	if drop < 0 {
		failEvaluation(args)
	}
	rest := args[1]
	for i := int64(0); i < drop; i++ {
		if rest.Tag != VTPair {
			failEvaluation(args)
		}
		rest = rest.Data.(*Pair).Cdr
	}
	return rest
}
