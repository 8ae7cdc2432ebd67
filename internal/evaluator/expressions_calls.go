package evaluator

import (
	"github.com/funvibe/numbra/internal/ast"
)

func (e *Evaluator) evalCallExpression(node *ast.CallExpression) (Value, error) {
	if builtin, ok := e.State.Builtins[node.Function]; ok {
		return e.applyBuiltin(builtin, node.Arguments)
	}
	if fn, ok := e.State.Functions[node.Function]; ok {
		return e.applyFunction(fn, node.Arguments)
	}
	return nil, newError(UnknownFunction, "unknown function: %s", node.Function)
}

func arityError(name string, expected, got int) *Error {
	return newError(ArityMismatch, "%s expects %d parameters, but only %d were supplied", name, expected, got)
}

func (e *Evaluator) evalArguments(arguments []ast.Node) ([]Value, error) {
	args := make([]Value, 0, len(arguments))
	for _, argument := range arguments {
		val, err := e.Eval(argument)
		if err != nil {
			return nil, err
		}
		args = append(args, val)
	}
	return args, nil
}

func (e *Evaluator) applyBuiltin(builtin *Builtin, arguments []ast.Node) (Value, error) {
	if len(arguments) != builtin.Arity {
		return nil, arityError(builtin.Name, builtin.Arity, len(arguments))
	}
	args, err := e.evalArguments(arguments)
	if err != nil {
		return nil, err
	}
	return builtin.Fn(e.State, args...)
}

// applyFunction calls a user function. Arguments are evaluated in the
// caller's scope, then bound in a fresh call frame; popping the frame
// makes any caller local with a parameter's name visible again.
func (e *Evaluator) applyFunction(fn *UserFunction, arguments []ast.Node) (Value, error) {
	if len(arguments) != len(fn.Parameters) {
		return nil, arityError(fn.Name, len(fn.Parameters), len(arguments))
	}
	args, err := e.evalArguments(arguments)
	if err != nil {
		return nil, err
	}

	env := e.State.Env
	env.Push(CallFrame)
	defer env.Pop()
	for i, param := range fn.Parameters {
		env.SetLocal(param, args[i])
	}
	return e.Eval(fn.Body)
}
