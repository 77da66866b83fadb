// parser.go — the reader: tokens to value graphs.
//
// Read consumes exactly one expression from the tokenizer and builds it
// out of the same Value variants the runtime evaluates: atoms for numbers,
// booleans, and symbols; pair chains for lists, with dotted tails for
// improper ones. A quote sign desugars here, so the evaluator only ever
// sees (quote x). All failures are SyntaxErrors positioned at the
// offending token (the unclosed-list error points at the opening paren).
package scheme

var quoteSymbol = SymbolValue("quote")

// Read parses one expression, leaving the tokenizer positioned after it.
// Panics with a *SyntaxError on malformed input; the Run entry points in
// interpreter.go recover it.
func Read(tz *Tokenizer) Value {
	if tz.IsEnd() {
		line, col := tz.Pos()
		failSyntaxAt("Read: Unexpected end of input", line, col)
	}
	tok := tz.Token()
	tz.Next()
	switch tok.Type {
	case TokenQuote:
		return Cons(quoteSymbol, Cons(Read(tz), EmptyList))
	case TokenNumber:
		return NumberValue(tok.Num)
	case TokenBoolean:
		return BooleanValue(tok.Bool)
	case TokenSymbol:
		return SymbolValue(tok.Name)
	case TokenLParen:
		return readList(tz, tok)
	case TokenRParen:
		failSyntaxAt("Read: Unexpected )", tok.Line, tok.Col)
	default:
		failSyntaxAt("Read: Unexpected token", tok.Line, tok.Col)
	}
	return Value{}
}

// readList parses the remainder of a list after its opening paren.
func readList(tz *Tokenizer, open Token) Value {
	var items []Value
	tail := EmptyList
	for !tz.IsEnd() && tz.Token().Type != TokenRParen {
		if tz.Token().Type == TokenDot {
			if len(items) == 0 {
				dot := tz.Token()
				failSyntaxAt("Read: expected expression before .", dot.Line, dot.Col)
			}
			tz.Next()
			tail = Read(tz)
			break
		}
		items = append(items, Read(tz))
	}
	if tz.IsEnd() {
		failSyntaxAt("Read: expected ) ending list", open.Line, open.Col)
	}
	if tz.Token().Type != TokenRParen {
		// Only reachable after a dotted tail; more input cannot repair it,
		// so this must not read as an incomplete expression.
		tok := tz.Token()
		failSyntaxAt("Read: expected ) after . tail", tok.Line, tok.Col)
	}
	tz.Next() // consume ')'
	result := tail
	for i := len(items) - 1; i >= 0; i-- {
		result = Cons(items[i], result)
	}
	return result
}
