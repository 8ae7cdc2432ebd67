package evaluator

import (
	"github.com/funvibe/numbra/internal/ast"
)

func (e *Evaluator) evalIfExpression(node *ast.IfExpression) (Value, error) {
	predicate, err := e.evalReal(node.Condition, "a predicate to a conditional expression must be a number")
	if err != nil {
		return nil, err
	}
	if predicate != 0 {
		return e.Eval(node.Consequence)
	}
	return e.Eval(node.Alternative)
}

// evalBlockStatement evaluates a sequence in its own frame. Locals declared
// in the block are dropped when it ends; globals and functions persist.
func (e *Evaluator) evalBlockStatement(node *ast.BlockStatement) (Value, error) {
	if len(node.Statements) == 0 {
		return Real(0), nil
	}
	if ast.IsDeclaration(node.Statements[len(node.Statements)-1]) {
		return nil, newError(MalformedTree, "a block must end with an expression")
	}

	env := e.State.Env
	env.Push(BlockFrame)
	defer env.Pop()

	var result Value
	for _, stmt := range node.Statements {
		val, err := e.Eval(stmt)
		if err != nil {
			return nil, err
		}
		result = val
	}
	return result, nil
}

func (e *Evaluator) evalFactorialExpression(node *ast.FactorialExpression) (Value, error) {
	val, err := e.Eval(node.Operand)
	if err != nil {
		return nil, err
	}
	c, err := expectComplex(val, "attempted to find factorial of non-number")
	if err != nil {
		return nil, err
	}
	return &Number{Value: factorial(c)}, nil
}
