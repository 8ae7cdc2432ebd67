package evaluator

import (
	"math"
	"math/cmplx"

	"github.com/funvibe/numbra/internal/ast"
)

// EvalInfixExpression applies a binary operator to two evaluated operands.
// Every pair of kinds either has a defined result or fails with an OperatorError.
func EvalInfixExpression(operator ast.Operator, left, right Value) (Value, error) {
	switch operator {
	case ast.OpAdd:
		return evalAdd(left, right)
	case ast.OpSubtract:
		return evalSubtract(left, right)
	case ast.OpMultiply:
		return evalMultiply(left, right)
	case ast.OpDivide:
		return evalDivide(left, right)
	case ast.OpModulo:
		return evalModulo(left, right)
	case ast.OpPower:
		return evalPower(left, right)
	case ast.OpEquals:
		return nativeBoolToNumber(valuesEqual(left, right)), nil
	case ast.OpGreater, ast.OpLess, ast.OpGreaterOrEqual, ast.OpLessOrEqual:
		return evalComparison(operator, left, right)
	}
	return nil, newError(OperatorError, "unknown operator: %s", operator)
}

// operandKinds keys the fixed operator error texts.
type operandKinds struct {
	op          ast.Operator
	left, right ObjectType
}

var operatorMessages = map[operandKinds]string{
	{ast.OpAdd, NUMBER_OBJ, VECTOR_OBJ}: "cannot add a number to a vector",
	{ast.OpAdd, VECTOR_OBJ, NUMBER_OBJ}: "cannot add a vector to a number",

	{ast.OpSubtract, NUMBER_OBJ, VECTOR_OBJ}: "cannot subtract a number from a vector",
	{ast.OpSubtract, NUMBER_OBJ, ARRAY_OBJ}:  "cannot subtract an array from a number",
	{ast.OpSubtract, VECTOR_OBJ, NUMBER_OBJ}: "cannot subtract a vector from a number",
	{ast.OpSubtract, VECTOR_OBJ, ARRAY_OBJ}:  "cannot subtract an array from a vector",
	{ast.OpSubtract, ARRAY_OBJ, NUMBER_OBJ}:  "cannot subtract a number from an array",
	{ast.OpSubtract, ARRAY_OBJ, VECTOR_OBJ}:  "cannot subtract a vector from an array",
	{ast.OpSubtract, ARRAY_OBJ, ARRAY_OBJ}:   "cannot subtract an array from an array",

	{ast.OpMultiply, NUMBER_OBJ, ARRAY_OBJ}:  "cannot multiply a number by an array",
	{ast.OpMultiply, VECTOR_OBJ, VECTOR_OBJ}: "cannot multiply a vector with a vector. use dot(vector, vector) or cross(vector, vector) instead",
	{ast.OpMultiply, VECTOR_OBJ, ARRAY_OBJ}:  "cannot multiply an array with a vector",
	{ast.OpMultiply, ARRAY_OBJ, NUMBER_OBJ}:  "cannot multiply an array by a number",
	{ast.OpMultiply, ARRAY_OBJ, VECTOR_OBJ}:  "cannot multiply an array with a vector",
	{ast.OpMultiply, ARRAY_OBJ, ARRAY_OBJ}:   "cannot multiply an array by an array",

	{ast.OpDivide, NUMBER_OBJ, ARRAY_OBJ}:  "cannot divide a number by an array",
	{ast.OpDivide, VECTOR_OBJ, VECTOR_OBJ}: "cannot divide a vector by a vector",
	{ast.OpDivide, VECTOR_OBJ, ARRAY_OBJ}:  "cannot divide a vector by an array",
	{ast.OpDivide, ARRAY_OBJ, NUMBER_OBJ}:  "cannot divide an array by a number",
	{ast.OpDivide, ARRAY_OBJ, VECTOR_OBJ}:  "cannot divide an array by a vector",
	{ast.OpDivide, ARRAY_OBJ, ARRAY_OBJ}:   "cannot divide an array by an array",

	{ast.OpModulo, NUMBER_OBJ, VECTOR_OBJ}: "cannot find remainder between number and vector",
	{ast.OpModulo, NUMBER_OBJ, ARRAY_OBJ}:  "cannot find remainder of number in terms of array",
	{ast.OpModulo, VECTOR_OBJ, NUMBER_OBJ}: "cannot find remainder between vector and number",
	{ast.OpModulo, VECTOR_OBJ, VECTOR_OBJ}: "cannot find remainder between vector and vector",
	{ast.OpModulo, VECTOR_OBJ, ARRAY_OBJ}:  "cannot find remainder between vector and array",
	{ast.OpModulo, ARRAY_OBJ, NUMBER_OBJ}:  "cannot find remainder between array and number",
	{ast.OpModulo, ARRAY_OBJ, VECTOR_OBJ}:  "cannot find remainder between array and vector",
	{ast.OpModulo, ARRAY_OBJ, ARRAY_OBJ}:   "cannot find remainder between array and array",

	{ast.OpPower, NUMBER_OBJ, VECTOR_OBJ}: "cannot raise a number to a vector power",
	{ast.OpPower, NUMBER_OBJ, ARRAY_OBJ}:  "cannot raise a number to an array power",
	{ast.OpPower, VECTOR_OBJ, VECTOR_OBJ}: "cannot raise a vector to a vector power",
	{ast.OpPower, VECTOR_OBJ, ARRAY_OBJ}:  "cannot raise a vector to an array power",
	{ast.OpPower, ARRAY_OBJ, NUMBER_OBJ}:  "cannot raise array to a number power",
	{ast.OpPower, ARRAY_OBJ, VECTOR_OBJ}:  "cannot raise array to a vector power",
	{ast.OpPower, ARRAY_OBJ, ARRAY_OBJ}:   "cannot raise array to an array power",

	{ast.OpGreater, NUMBER_OBJ, VECTOR_OBJ}:        "cannot compare greater-than between a number and vector",
	{ast.OpGreater, NUMBER_OBJ, ARRAY_OBJ}:         "cannot compare greater-than between a number and array",
	{ast.OpGreaterOrEqual, NUMBER_OBJ, VECTOR_OBJ}: "cannot compare greater-than-or-equals between a number and vector",
	{ast.OpLessOrEqual, NUMBER_OBJ, VECTOR_OBJ}:    "cannot compare less-than-or-equals between a number and vector",
}

func operatorError(operator ast.Operator, left, right Value) *Error {
	l, r := left.Type(), right.Type()
	if msg, ok := operatorMessages[operandKinds{operator, l, r}]; ok {
		return newError(OperatorError, "%s", msg)
	}
	if name, ok := comparisonNames[operator]; ok {
		return newError(OperatorError, "cannot compare %s between %s and %s", name, withArticle(l), withArticle(r))
	}
	return newError(OperatorError, "cannot apply %s to %s and %s", operator, withArticle(l), withArticle(r))
}

var comparisonNames = map[ast.Operator]string{
	ast.OpGreater:        "greater-than",
	ast.OpLess:           "less-than",
	ast.OpGreaterOrEqual: "greater-than-or-equals",
	ast.OpLessOrEqual:    "less-than-or-equals",
}

func evalAdd(left, right Value) (Value, error) {
	// An array on either side swallows the other operand as one element.
	if arr, ok := left.(*Array); ok {
		return arr.push(right), nil
	}
	if arr, ok := right.(*Array); ok {
		return arr.push(left), nil
	}
	switch l := left.(type) {
	case *Number:
		if r, ok := right.(*Number); ok {
			return &Number{Value: l.Value + r.Value}, nil
		}
	case *Vector:
		if r, ok := right.(*Vector); ok {
			return &Vector{X: l.X + r.X, Y: l.Y + r.Y}, nil
		}
	}
	return nil, operatorError(ast.OpAdd, left, right)
}

func evalSubtract(left, right Value) (Value, error) {
	switch l := left.(type) {
	case *Number:
		if r, ok := right.(*Number); ok {
			return &Number{Value: l.Value - r.Value}, nil
		}
	case *Vector:
		if r, ok := right.(*Vector); ok {
			return &Vector{X: l.X - r.X, Y: l.Y - r.Y}, nil
		}
	}
	return nil, operatorError(ast.OpSubtract, left, right)
}

// scalarAndVector splits a Number/Vector pair in either order.
func scalarAndVector(left, right Value) (*Number, *Vector, bool) {
	if n, ok := left.(*Number); ok {
		if v, ok := right.(*Vector); ok {
			return n, v, true
		}
	}
	if v, ok := left.(*Vector); ok {
		if n, ok := right.(*Number); ok {
			return n, v, true
		}
	}
	return nil, nil, false
}

func evalMultiply(left, right Value) (Value, error) {
	if l, ok := left.(*Number); ok {
		if r, ok := right.(*Number); ok {
			return &Number{Value: l.Value * r.Value}, nil
		}
	}
	if n, v, ok := scalarAndVector(left, right); ok {
		if !n.IsReal() {
			return nil, newError(OperatorError, "cannot multiply a vector with a complex number")
		}
		return &Vector{X: v.X * n.Real(), Y: v.Y * n.Real()}, nil
	}
	return nil, operatorError(ast.OpMultiply, left, right)
}

func evalDivide(left, right Value) (Value, error) {
	if l, ok := left.(*Number); ok {
		if r, ok := right.(*Number); ok {
			return &Number{Value: l.Value / r.Value}, nil
		}
	}
	// The vector is divided by the number whichever side it is on.
	if n, v, ok := scalarAndVector(left, right); ok {
		if !n.IsReal() {
			return nil, newError(OperatorError, "cannot divide a vector by a complex number")
		}
		return &Vector{X: v.X / n.Real(), Y: v.Y / n.Real()}, nil
	}
	return nil, operatorError(ast.OpDivide, left, right)
}

func evalModulo(left, right Value) (Value, error) {
	if l, ok := left.(*Number); ok {
		if r, ok := right.(*Number); ok {
			return &Number{Value: complexRem(l.Value, r.Value)}, nil
		}
	}
	return nil, operatorError(ast.OpModulo, left, right)
}

func evalPower(left, right Value) (Value, error) {
	switch l := left.(type) {
	case *Number:
		if r, ok := right.(*Number); ok {
			return &Number{Value: complexPow(l.Value, r.Value)}, nil
		}
	case *Vector:
		if r, ok := right.(*Number); ok {
			if !r.IsReal() {
				return nil, newError(OperatorError, "cannot raise a vector to a complex power")
			}
			return &Vector{X: math.Pow(l.X, r.Real()), Y: math.Pow(l.Y, r.Real())}, nil
		}
	}
	return nil, operatorError(ast.OpPower, left, right)
}

// evalComparison orders numbers by modulus.
func evalComparison(operator ast.Operator, left, right Value) (Value, error) {
	l, lok := left.(*Number)
	r, rok := right.(*Number)
	if !lok || !rok {
		return nil, operatorError(operator, left, right)
	}
	a, b := cmplx.Abs(l.Value), cmplx.Abs(r.Value)
	var result bool
	switch operator {
	case ast.OpGreater:
		result = a > b
	case ast.OpLess:
		result = a < b
	case ast.OpGreaterOrEqual:
		result = a >= b
	case ast.OpLessOrEqual:
		result = a <= b
	}
	return nativeBoolToNumber(result), nil
}

// valuesEqual is total. Values of different kinds are never equal,
// and arrays are never equal to anything, themselves included.
func valuesEqual(left, right Value) bool {
	switch l := left.(type) {
	case *Number:
		if r, ok := right.(*Number); ok {
			return real(l.Value) == real(r.Value) && imag(l.Value) == imag(r.Value)
		}
	case *Vector:
		if r, ok := right.(*Vector); ok {
			return l.X == r.X && l.Y == r.Y
		}
	}
	return false
}
