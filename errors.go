// errors.go — error kinds and user-facing rendering.
//
// The interpreter distinguishes three fatal error kinds:
//
//   - SyntaxError: malformed tokens or expression structure, detected while
//     reading. Carries a 1-based line and 0-based column when the tokenizer
//     knows them.
//   - NameError: an unbound variable reference, or a comparison between
//     incomparable values.
//   - RuntimeError: a well-formed but semantically invalid form at
//     evaluation time (arity/type mismatch, calling a non-lambda, division
//     by zero, out-of-bounds indexing, a dead closure environment).
//
// Internally all three propagate as panics (see fail*, below) so that deeply
// recursive evaluation code stays free of error plumbing; the public entry
// points in interpreter.go recover them into ordinary Go errors. A panic
// carrying anything else is a bug and is re-raised.
//
// WrapErrorWithSource decorates a positioned SyntaxError with a caret
// snippet pointing at the offending column, in the style:
//
//	SYNTAX ERROR at 2:7: Read: expected ) ending list
//
//	   1 | (define x
//	   2 |   (+ 1 2
//	       |       ^
package scheme

import (
	"fmt"
	"strings"
)

// SyntaxError reports malformed input detected during tokenizing or reading.
// Line is 1-based and Col 0-based; both are zero when unknown.
type SyntaxError struct {
	Msg  string
	Line int
	Col  int
}

func (e *SyntaxError) Error() string { return "syntax error: " + e.Msg }

// NameError reports an unbound variable or an unsupported comparison.
type NameError struct {
	Msg string
}

func (e *NameError) Error() string { return "name error: " + e.Msg }

// RuntimeError reports a semantically invalid evaluation.
type RuntimeError struct {
	Msg string
}

func (e *RuntimeError) Error() string { return "runtime error: " + e.Msg }

// IsIncomplete reports whether err is a syntax error caused by input that
// ended before an expression was complete (an open list or a dangling
// quote). REPLs use this to prompt for continuation lines instead of
// reporting the error.
func IsIncomplete(err error) bool {
	se, ok := err.(*SyntaxError)
	if !ok {
		return false
	}
	return strings.Contains(se.Msg, "Unexpected end of input") ||
		strings.Contains(se.Msg, "expected ) ending list")
}

// panic-raise helpers; recovered by recoverEvalError in interpreter.go.

func failSyntax(msg string) { panic(&SyntaxError{Msg: msg}) }

func failSyntaxAt(msg string, line, col int) {
	panic(&SyntaxError{Msg: msg, Line: line, Col: col})
}
func failName(msg string)    { panic(&NameError{Msg: msg}) }
func failRuntime(msg string) { panic(&RuntimeError{Msg: msg}) }

// recoverEvalError converts a recovered panic value into one of the three
// error kinds, re-panicking anything it does not recognize.
func recoverEvalError(r interface{}) error {
	switch e := r.(type) {
	case *SyntaxError:
		return e
	case *NameError:
		return e
	case *RuntimeError:
		return e
	default:
		panic(r)
	}
}

// WrapErrorWithSource augments a positioned *SyntaxError with a caret
// snippet over src. Errors of other kinds, and syntax errors with no
// position, are returned unchanged.
func WrapErrorWithSource(err error, src string) error {
	se, ok := err.(*SyntaxError)
	if !ok || se.Line < 1 {
		return err
	}
	return fmt.Errorf("%s", prettySyntaxError(src, se))
}

func prettySyntaxError(src string, se *SyntaxError) string {
	lines := strings.Split(src, "\n")
	line := se.Line
	if line > len(lines) {
		line = len(lines)
	}
	if line < 1 {
		line = 1
	}
	col := se.Col
	if col < 0 {
		col = 0
	}

	var b strings.Builder
	fmt.Fprintf(&b, "SYNTAX ERROR at %d:%d: %s\n\n", line, col+1, se.Msg)
	if line > 1 {
		fmt.Fprintf(&b, "%4d | %s\n", line-1, lines[line-2])
	}
	fmt.Fprintf(&b, "%4d | %s\n", line, lines[line-1])
	fmt.Fprintf(&b, "     | %s^\n", strings.Repeat(" ", col))
	if line < len(lines) {
		fmt.Fprintf(&b, "%4d | %s\n", line+1, lines[line])
	}
	return b.String()
}
