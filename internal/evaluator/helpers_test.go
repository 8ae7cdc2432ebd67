package evaluator

import (
	"bytes"
	"errors"
	"math"
	"math/cmplx"
	"testing"

	"github.com/funvibe/numbra/internal/ast"
)

// Syntax tree builders

func tNum(f float64) *ast.NumberLiteral { return &ast.NumberLiteral{Value: f} }
func tIm(f float64) *ast.NumberLiteral  { return &ast.NumberLiteral{Value: f, Imaginary: true} }
func tId(name string) *ast.Identifier   { return &ast.Identifier{Value: name} }

func tOp(left ast.Node, op ast.Operator, right ast.Node) *ast.InfixExpression {
	return &ast.InfixExpression{Left: left, Operator: op, Right: right}
}

func tCall(name string, args ...ast.Node) *ast.CallExpression {
	return &ast.CallExpression{Function: name, Arguments: args}
}

func tVec(x, y float64) *ast.CallExpression { return tCall("vec", tNum(x), tNum(y)) }

func tLet(name string, value ast.Node) *ast.VariableDeclaration {
	return &ast.VariableDeclaration{Name: name, Value: value}
}

func tFn(name string, params []string, body ast.Node) *ast.FunctionStatement {
	return &ast.FunctionStatement{Name: name, Parameters: params, Body: body}
}

func tIf(cond, then, otherwise ast.Node) *ast.IfExpression {
	return &ast.IfExpression{Condition: cond, Consequence: then, Alternative: otherwise}
}

func tLoop(variable string, first, second, step ast.Node, body ast.Node) *ast.LoopExpression {
	return &ast.LoopExpression{
		Variable: variable,
		Range:    &ast.RangeExpression{First: first, Second: second, Step: step},
		Body:     body,
	}
}

func tBlock(statements ...ast.Node) *ast.BlockStatement {
	return &ast.BlockStatement{Statements: statements}
}

func tArr(elements ...ast.Node) *ast.ArrayLiteral { return &ast.ArrayLiteral{Elements: elements} }

func tIdx(left, index ast.Node) *ast.IndexExpression {
	return &ast.IndexExpression{Left: left, Index: index}
}

func tAssign(value ast.Node, names ...string) *ast.AssignExpression {
	return &ast.AssignExpression{Names: names, Value: value}
}

func tFact(operand ast.Node) *ast.FactorialExpression {
	return &ast.FactorialExpression{Operand: operand}
}

// evalNode runs node in a fresh state, collecting print output.
func evalNode(node ast.Node) (Value, string, error) {
	var out bytes.Buffer
	state := NewState()
	state.Out = &out
	val, err := New(state).Eval(node)
	return val, out.String(), err
}

func mustEval(t *testing.T, node ast.Node) Value {
	t.Helper()
	val, _, err := evalNode(node)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return val
}

func mustFail(t *testing.T, node ast.Node) *Error {
	t.Helper()
	val, _, err := evalNode(node)
	if err == nil {
		t.Fatalf("expected an error, got %s", val.Inspect())
	}
	var evalErr *Error
	if !errors.As(err, &evalErr) {
		t.Fatalf("error %v (%T) is not an *Error", err, err)
	}
	return evalErr
}

func expectInspect(t *testing.T, node ast.Node, want string) {
	t.Helper()
	if got := mustEval(t, node).Inspect(); got != want {
		t.Errorf("got %s, want %s", got, want)
	}
}

func expectError(t *testing.T, node ast.Node, kind ErrorKind, message string) {
	t.Helper()
	err := mustFail(t, node)
	if err.Kind != kind {
		t.Errorf("kind = %s, want %s", err.Kind, kind)
	}
	if err.Message != message {
		t.Errorf("message = %q, want %q", err.Message, message)
	}
}

func closeTo(a, b complex128) bool {
	return cmplx.Abs(a-b) <= 1e-9*math.Max(1, cmplx.Abs(b))
}

func expectNumber(t *testing.T, node ast.Node, want complex128) {
	t.Helper()
	n, ok := mustEval(t, node).(*Number)
	if !ok {
		t.Fatalf("result is not a number")
	}
	if !closeTo(n.Value, want) {
		t.Errorf("got %v, want %v", n.Value, want)
	}
}
