// object.go — the runtime value model.
//
// Every datum the interpreter touches — parsed source, intermediate results,
// bindings in scopes — is a Value: a small tagged struct over the closed set
// of variants {empty list, number, boolean, symbol, pair, lambda}. Values
// other than pairs are immutable once constructed; pairs and lambdas carry a
// pointer in Data, so copying a Value never copies the structure behind it.
//
// The empty list is its own variant (the canonical "()" / nil marker), not a
// special pair and not a symbol. It is the tail of every proper list.
//
// This file also implements the value-level operations the evaluator builds
// on: equality, ordering, arithmetic, truthiness, and list folding/unfolding.
// Rendering lives in printer.go.
package scheme

import "sync"

// ValueTag enumerates the runtime kinds a Value may hold.
type ValueTag int

const (
	VTEmpty   ValueTag = iota // the empty list "()" (no payload)
	VTNumber                  // int64
	VTBoolean                 // bool
	VTSymbol                  // string (symbol name)
	VTPair                    // *Pair
	VTLambda                  // *Lambda
)

// Value is the universal runtime carrier. Tag determines which Go type is
// stored in Data (see ValueTag).
type Value struct {
	Tag  ValueTag
	Data interface{}
}

// EmptyList is the singleton empty-list marker.
var EmptyList = Value{Tag: VTEmpty}

// Pair is a mutable cons cell. Car and Cdr may hold any Value, including
// the pair itself (cycles are constructible via set-car!/set-cdr!).
type Pair struct {
	Car Value
	Cdr Value
}

// Constructors. Symbol and Cons are total; NumberValue and BooleanValue
// return interned instances where possible (see the constant tables below).
func NumberValue(n int64) Value { return numberConstant(n) }
func BooleanValue(b bool) Value { return booleanConstant(b) }

func SymbolValue(name string) Value {
	return Value{Tag: VTSymbol, Data: name}
}

func Cons(car, cdr Value) Value {
	return Value{Tag: VTPair, Data: &Pair{Car: car, Cdr: cdr}}
}

// NumberOf returns the integer payload; callers must have checked the tag.
func NumberOf(v Value) int64 { return v.Data.(int64) }

// SymbolName returns the symbol payload; callers must have checked the tag.
func SymbolName(v Value) string { return v.Data.(string) }

// PairOf returns the cons cell payload; callers must have checked the tag.
func PairOf(v Value) *Pair { return v.Data.(*Pair) }

// ---- interned constants ------------------------------------------------

// Small integers and the two booleans are canonicalized to shared instances
// so that hot paths avoid re-boxing the payload into the Data interface.
// Purely a performance detail: object identity of numbers and booleans is
// never language-visible.

const (
	internMin = -1000
	internMax = 1000
)

var (
	internOnce    sync.Once
	internNumbers [internMax - internMin + 1]Value
	internTrue    Value
	internFalse   Value
)

func initInternTables() {
	for i := range internNumbers {
		internNumbers[i] = Value{Tag: VTNumber, Data: int64(internMin + i)}
	}
	internTrue = Value{Tag: VTBoolean, Data: true}
	internFalse = Value{Tag: VTBoolean, Data: false}
}

func numberConstant(n int64) Value {
	internOnce.Do(initInternTables)
	if internMin <= n && n <= internMax {
		return internNumbers[n-internMin]
	}
	return Value{Tag: VTNumber, Data: n}
}

func booleanConstant(b bool) Value {
	internOnce.Do(initInternTables)
	if b {
		return internTrue
	}
	return internFalse
}

// ---- equality & ordering -----------------------------------------------

// Equal is structural equality for data: numbers by value, booleans by
// value, symbols by name, pairs recursively, lambdas by identity only.
// Identical pair pointers compare equal before any recursion, so Equal(x, x)
// terminates even for self-referential structures.
func Equal(a, b Value) bool {
	if a.Tag != b.Tag {
		return false
	}
	switch a.Tag {
	case VTEmpty:
		return true
	case VTNumber:
		return a.Data.(int64) == b.Data.(int64)
	case VTBoolean:
		return a.Data.(bool) == b.Data.(bool)
	case VTSymbol:
		return a.Data.(string) == b.Data.(string)
	case VTPair:
		pa, pb := a.Data.(*Pair), b.Data.(*Pair)
		if pa == pb {
			return true
		}
		return Equal(pa.Car, pb.Car) && Equal(pa.Cdr, pb.Cdr)
	case VTLambda:
		return a.Data.(*Lambda) == b.Data.(*Lambda)
	default:
		return false
	}
}

func failCompare(a, b Value) {
	failName("Cannot compare: " + ToString(a) + " and " + ToString(b))
}

// Less is defined only between two numbers; every other combination of
// operands raises a NameError naming both rendered forms.
func Less(a, b Value) bool {
	if a.Tag != VTNumber || b.Tag != VTNumber {
		failCompare(a, b)
	}
	return a.Data.(int64) < b.Data.(int64)
}

func LessOrEqual(a, b Value) bool    { return Less(a, b) || Equal(a, b) }
func Greater(a, b Value) bool        { return Less(b, a) }
func GreaterOrEqual(a, b Value) bool { return LessOrEqual(b, a) }

// ---- arithmetic ----------------------------------------------------------

func bothNumbers(a, b Value) (int64, int64, bool) {
	if a.Tag != VTNumber || b.Tag != VTNumber {
		return 0, 0, false
	}
	return a.Data.(int64), b.Data.(int64), true
}

func Add(a, b Value) Value {
	x, y, ok := bothNumbers(a, b)
	if !ok {
		failRuntime("Cannot add: " + ToString(a) + " and " + ToString(b))
	}
	return NumberValue(x + y)
}

func Subtract(a, b Value) Value {
	x, y, ok := bothNumbers(a, b)
	if !ok {
		failRuntime("Cannot subtract: " + ToString(a) + " and " + ToString(b))
	}
	return NumberValue(x - y)
}

func Multiply(a, b Value) Value {
	x, y, ok := bothNumbers(a, b)
	if !ok {
		failRuntime("Cannot multiply: " + ToString(a) + " and " + ToString(b))
	}
	return NumberValue(x * y)
}

// Divide truncates toward zero. A non-number operand or a zero divisor is a
// runtime error.
func Divide(a, b Value) Value {
	x, y, ok := bothNumbers(a, b)
	if !ok || y == 0 {
		failRuntime("Cannot divide: " + ToString(a) + " and " + ToString(b))
	}
	return NumberValue(x / y)
}

// ---- truthiness ----------------------------------------------------------

// AsBoolean implements the language's truthiness: every value is true
// except the boolean #f. The empty list, 0, and pairs are all true.
func AsBoolean(v Value) bool {
	if v.Tag == VTBoolean {
		return v.Data.(bool)
	}
	return true
}

func Not(v Value) Value { return BooleanValue(!AsBoolean(v)) }

// ---- list plumbing -------------------------------------------------------

// UnfoldList flattens a proper list into a slice of its elements. A non-pair
// in any cdr position (other than the terminating empty list) is a runtime
// error; the empty list unfolds to an empty slice.
func UnfoldList(v Value) []Value {
	var out []Value
	for v.Tag != VTEmpty {
		if v.Tag != VTPair {
			failRuntime("Expected list, but got: " + ToString(v))
		}
		p := v.Data.(*Pair)
		out = append(out, p.Car)
		v = p.Cdr
	}
	return out
}

// FoldList rebuilds a proper list from a slice, consing right to left.
func FoldList(items []Value) Value {
	result := EmptyList
	for i := len(items) - 1; i >= 0; i-- {
		result = Cons(items[i], result)
	}
	return result
}

// IsProperList reports whether v is a chain of pairs terminated by the
// empty list. It walks the cdr spine without recursion; cyclic structures
// will not terminate, same as rendering them.
func IsProperList(v Value) bool {
	for v.Tag != VTEmpty {
		if v.Tag != VTPair {
			return false
		}
		v = v.Data.(*Pair).Cdr
	}
	return true
}
