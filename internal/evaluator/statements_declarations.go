package evaluator

import (
	"github.com/funvibe/numbra/internal/ast"
)

func (e *Evaluator) evalFunctionStatement(node *ast.FunctionStatement) (Value, error) {
	if e.State.HasFunction(node.Name) {
		return nil, newError(Redeclaration, "redeclared a function that already is defined: %s", node.Name)
	}
	e.State.Functions[node.Name] = &UserFunction{
		Name:       node.Name,
		Parameters: node.Parameters,
		Body:       node.Body,
	}
	return Real(0), nil
}

// evalVariableDeclaration binds a local inside a function call and a global elsewhere.
func (e *Evaluator) evalVariableDeclaration(node *ast.VariableDeclaration) (Value, error) {
	env := e.State.Env
	if env.HasGlobal(node.Name) || env.HasLocal(node.Name) {
		return nil, newError(Redeclaration, "you cannot redeclare a variable: %s", node.Name)
	}
	val, err := e.Eval(node.Value)
	if err != nil {
		return nil, err
	}
	if env.InFunction() {
		env.SetLocal(node.Name, val)
	} else {
		env.SetGlobal(node.Name, val)
	}
	return Real(0), nil
}

// evalAssignExpression writes the value to every target where it is visible.
// Globals cannot be changed from inside a function call.
func (e *Evaluator) evalAssignExpression(node *ast.AssignExpression) (Value, error) {
	val, err := e.Eval(node.Value)
	if err != nil {
		return nil, err
	}
	env := e.State.Env
	for _, name := range node.Names {
		isLocal := env.HasLocal(name)
		if !isLocal && !env.HasGlobal(name) {
			return nil, newError(UnknownVariable, "use of undefined variable: %s", name)
		}
		if !isLocal && env.InFunction() {
			return nil, newError(ExternalMutation, "attempted to affect external variable %s from within a function", name)
		}
		env.Update(name, val)
	}
	return val, nil
}
