package evaluator

import (
	"math"

	"github.com/funvibe/numbra/internal/ast"
)

// evalLoopExpression runs the summation loop. The variable walks from the
// first bound toward the second by the step's magnitude; the last iteration
// always runs with the variable exactly on the second bound. The loop's
// value is the sum of every iteration's body value.
func (e *Evaluator) evalLoopExpression(node *ast.LoopExpression) (Value, error) {
	if node.Range == nil {
		return nil, newError(MalformedTree, "a loop requires a range")
	}
	first, err := e.evalReal(node.Range.First, "the first bound must be a real number")
	if err != nil {
		return nil, err
	}
	second, err := e.evalReal(node.Range.Second, "the second bound must be a real number")
	if err != nil {
		return nil, err
	}
	step, err := e.evalReal(node.Range.Step, "the step must be a number")
	if err != nil {
		return nil, err
	}
	if step == 0 {
		return nil, newError(MalformedLoop, "a step cannot be 0")
	}
	if !isFinite(first) || !isFinite(second) || !isFinite(step) {
		return nil, newError(MalformedLoop, "loop bounds and step must be finite")
	}
	step = math.Abs(step)

	env := e.State.Env
	env.Push(LoopFrame)
	defer env.Pop()

	var sum Value = Real(0)
	iterate := func(x float64) error {
		env.SetLocal(node.Variable, Real(x))
		val, err := e.Eval(node.Body)
		if err != nil {
			return err
		}
		sum, err = evalAdd(sum, val)
		return err
	}

	if first != second {
		ascending := first < second
		for x := first; ; {
			if err := iterate(x); err != nil {
				return nil, err
			}
			var next float64
			if ascending {
				next = x + step
			} else {
				next = x - step
			}
			if next == x {
				return nil, newError(MalformedLoop, "the step %s is too small to advance from %s", formatFloat(step), formatFloat(x))
			}
			if ascending && next >= second || !ascending && next <= second {
				break
			}
			x = next
		}
	}
	if err := iterate(second); err != nil {
		return nil, err
	}
	return sum, nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
