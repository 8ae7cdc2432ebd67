package evaluator

import (
	"github.com/funvibe/numbra/internal/ast"
	"github.com/funvibe/numbra/internal/config"
)

// Evaluator interprets syntax trees against a State.
type Evaluator struct {
	State *State
	// MaxDepth bounds the nesting depth of Eval calls.
	MaxDepth int

	evalDepth int
}

func New(state *State) *Evaluator {
	return &Evaluator{State: state, MaxDepth: config.DefaultMaxDepth}
}

// Execute evaluates root in a fresh State with the default globals and builtins.
func Execute(root ast.Node) (Value, error) {
	return New(NewState()).Eval(root)
}

// Eval evaluates node. The first error aborts the whole evaluation and is
// returned as an *Error carrying the position of the innermost failing node.
func (e *Evaluator) Eval(node ast.Node) (Value, error) {
	e.evalDepth++
	defer func() { e.evalDepth-- }()
	if e.evalDepth > e.MaxDepth {
		return nil, newError(RecursionLimit, "maximum recursion depth exceeded")
	}
	if isNilNode(node) {
		return nil, newError(MalformedTree, "missing syntax tree node")
	}

	val, err := e.evalCore(node)
	if err != nil {
		return nil, stampPos(err, node.GetPos())
	}
	return val, nil
}

func (e *Evaluator) evalCore(node ast.Node) (Value, error) {
	switch node := node.(type) {
	case *ast.NumberLiteral:
		if node.Imaginary {
			return Imaginary(node.Value), nil
		}
		return Real(node.Value), nil
	case *ast.Identifier:
		return e.evalIdentifier(node)
	case *ast.InfixExpression:
		left, err := e.Eval(node.Left)
		if err != nil {
			return nil, err
		}
		right, err := e.Eval(node.Right)
		if err != nil {
			return nil, err
		}
		return EvalInfixExpression(node.Operator, left, right)
	case *ast.CallExpression:
		return e.evalCallExpression(node)
	case *ast.FunctionStatement:
		return e.evalFunctionStatement(node)
	case *ast.VariableDeclaration:
		return e.evalVariableDeclaration(node)
	case *ast.IfExpression:
		return e.evalIfExpression(node)
	case *ast.LoopExpression:
		return e.evalLoopExpression(node)
	case *ast.RangeExpression:
		return nil, newError(MalformedTree, "a range can only appear inside a loop")
	case *ast.AssignExpression:
		return e.evalAssignExpression(node)
	case *ast.FactorialExpression:
		return e.evalFactorialExpression(node)
	case *ast.BlockStatement:
		return e.evalBlockStatement(node)
	case *ast.ArrayLiteral:
		return e.evalArrayLiteral(node)
	case *ast.IndexExpression:
		return e.evalIndexExpression(node)
	}
	return nil, newError(MalformedTree, "unsupported syntax tree node %T", node)
}

// isNilNode reports a missing node, including a typed nil pointer.
func isNilNode(node ast.Node) bool {
	switch n := node.(type) {
	case nil:
		return true
	case *ast.NumberLiteral:
		return n == nil
	case *ast.Identifier:
		return n == nil
	case *ast.InfixExpression:
		return n == nil
	case *ast.CallExpression:
		return n == nil
	case *ast.FunctionStatement:
		return n == nil
	case *ast.VariableDeclaration:
		return n == nil
	case *ast.IfExpression:
		return n == nil
	case *ast.LoopExpression:
		return n == nil
	case *ast.RangeExpression:
		return n == nil
	case *ast.AssignExpression:
		return n == nil
	case *ast.FactorialExpression:
		return n == nil
	case *ast.BlockStatement:
		return n == nil
	case *ast.ArrayLiteral:
		return n == nil
	case *ast.IndexExpression:
		return n == nil
	}
	return false
}

func (e *Evaluator) evalIdentifier(node *ast.Identifier) (Value, error) {
	if val, ok := e.State.Env.Get(node.Value); ok {
		return val, nil
	}
	return nil, newError(UnknownVariable, "unknown variable: %s", node.Value)
}

// evalReal evaluates node and requires a real Number.
func (e *Evaluator) evalReal(node ast.Node, message string) (float64, error) {
	val, err := e.Eval(node)
	if err != nil {
		return 0, err
	}
	return expectReal(val, message)
}
