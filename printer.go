// printer.go — rendering values back to source text.
//
// ToString is pure and deterministic: numbers in decimal, booleans as
// #t/#f, symbols verbatim, the empty list as "()", pairs as parenthesized
// space-separated lists with " . " before a non-list tail, and lambdas as
// a (lambda (params...) body...) form. Rendering a cyclic pair chain does
// not terminate; see Equal in object.go for why equality is still safe.
package scheme

import (
	"strconv"
	"strings"
)

// ToString renders any value. Total for acyclic values.
func ToString(v Value) string {
	switch v.Tag {
	case VTEmpty:
		return "()"
	case VTNumber:
		return strconv.FormatInt(v.Data.(int64), 10)
	case VTBoolean:
		if v.Data.(bool) {
			return "#t"
		}
		return "#f"
	case VTSymbol:
		return v.Data.(string)
	case VTPair:
		return listToString(v)
	case VTLambda:
		return v.Data.(*Lambda).render()
	default:
		return "()"
	}
}

func listToString(v Value) string {
	var b strings.Builder
	b.WriteByte('(')
	first := true
	for v.Tag != VTEmpty {
		if v.Tag != VTPair {
			// improper tail
			b.WriteString(" . ")
			b.WriteString(ToString(v))
			break
		}
		p := v.Data.(*Pair)
		if !first {
			b.WriteByte(' ')
		}
		first = false
		b.WriteString(ToString(p.Car))
		v = p.Cdr
	}
	b.WriteByte(')')
	return b.String()
}

func (l *Lambda) render() string {
	var b strings.Builder
	b.WriteString("(lambda (")
	b.WriteString(strings.Join(l.params, " "))
	b.WriteByte(')')
	for _, expr := range l.body {
		b.WriteByte(' ')
		b.WriteString(ToString(expr))
	}
	b.WriteByte(')')
	return b.String()
}
