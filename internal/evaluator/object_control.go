package evaluator

import (
	"fmt"

	"github.com/funvibe/numbra/internal/ast"
)

// ErrorKind classifies evaluation failures. Every kind is terminal for the run.
type ErrorKind int

const (
	OperatorError ErrorKind = iota
	UnknownVariable
	UnknownFunction
	ArityMismatch
	Redeclaration
	ExternalMutation
	MalformedLoop
	TypeMismatch
	IndexOutOfRange
	RecursionLimit
	MalformedTree
)

var errorKindNames = map[ErrorKind]string{
	OperatorError:    "operator",
	UnknownVariable:  "unknown-variable",
	UnknownFunction:  "unknown-function",
	ArityMismatch:    "arity",
	Redeclaration:    "redeclaration",
	ExternalMutation: "external-mutation",
	MalformedLoop:    "malformed-loop",
	TypeMismatch:     "type",
	IndexOutOfRange:  "index",
	RecursionLimit:   "recursion-limit",
	MalformedTree:    "malformed-tree",
}

func (k ErrorKind) String() string {
	if name, ok := errorKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// Error is an evaluation failure. Error() is the bare message; the position
// of the innermost node that failed is kept separately.
type Error struct {
	Kind    ErrorKind
	Message string
	Line    int
	Column  int
}

func (e *Error) Error() string { return e.Message }

// Pos returns the source position of the failing node, if known.
func (e *Error) Pos() ast.Pos { return ast.Pos{Line: e.Line, Column: e.Column} }

func newError(kind ErrorKind, format string, a ...interface{}) *Error {
	return &Error{Kind: kind, Message: fmt.Sprintf(format, a...)}
}

// stampPos records pos on err if err is an *Error without a position.
func stampPos(err error, pos ast.Pos) error {
	if e, ok := err.(*Error); ok && e.Line == 0 && pos.IsValid() {
		e.Line = pos.Line
		e.Column = pos.Column
	}
	return err
}
