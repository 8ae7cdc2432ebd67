package evaluator

import (
	"math"

	"github.com/funvibe/numbra/internal/ast"
)

func (e *Evaluator) evalArrayLiteral(node *ast.ArrayLiteral) (Value, error) {
	elements, err := e.evalArguments(node.Elements)
	if err != nil {
		return nil, err
	}
	return &Array{Elements: elements}, nil
}

func (e *Evaluator) evalIndexExpression(node *ast.IndexExpression) (Value, error) {
	left, err := e.Eval(node.Left)
	if err != nil {
		return nil, err
	}
	arr, err := expectArray(left, "cannot index a non-array")
	if err != nil {
		return nil, err
	}
	index, err := e.evalReal(node.Index, "tried to index using non-number")
	if err != nil {
		return nil, err
	}
	if index != math.Trunc(index) {
		return nil, newError(TypeMismatch, "cannot index arrays with non-integers")
	}
	if !validIndex(index, len(arr.Elements)) {
		return nil, newError(IndexOutOfRange, "attempted to index array of length %d with index %s", len(arr.Elements), formatFloat(index))
	}
	return arr.Elements[int(index)], nil
}
