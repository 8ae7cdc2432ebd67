package evaluator

import (
	"fmt"
	"math/cmplx"

	"github.com/funvibe/numbra/internal/config"
)

// Builtins is the registry every State starts from. It is never modified after init.
var Builtins = map[string]*Builtin{
	config.VecFuncName: {
		Name:  config.VecFuncName,
		Arity: 2,
		Fn: func(s *State, args ...Value) (Value, error) {
			x, err := expectReal(args[0], "the x component of the vector is not a number")
			if err != nil {
				return nil, err
			}
			y, err := expectReal(args[1], "the y component of the vector is not a number")
			if err != nil {
				return nil, err
			}
			return &Vector{X: x, Y: y}, nil
		},
	},
	config.XFuncName: {
		Name:  config.XFuncName,
		Arity: 1,
		Fn: func(s *State, args ...Value) (Value, error) {
			v, err := expectVector(args[0], "expected vector to take x component out of")
			if err != nil {
				return nil, err
			}
			return Real(v.X), nil
		},
	},
	config.YFuncName: {
		Name:  config.YFuncName,
		Arity: 1,
		Fn: func(s *State, args ...Value) (Value, error) {
			v, err := expectVector(args[0], "expected vector to take y component out of")
			if err != nil {
				return nil, err
			}
			return Real(v.Y), nil
		},
	},
	config.SinFuncName:   complexBuiltin(config.SinFuncName, "expected number to find sine of", cmplx.Sin),
	config.CosFuncName:   complexBuiltin(config.CosFuncName, "expected number to find cosine of", cmplx.Cos),
	config.TanFuncName:   complexBuiltin(config.TanFuncName, "expected number to find tangent of", cmplx.Tan),
	config.LnFuncName:    complexBuiltin(config.LnFuncName, "expected number to find natural logarithm of", cmplx.Log),
	config.SqrtFuncName:  complexBuiltin(config.SqrtFuncName, "expected number to find square root of", cmplx.Sqrt),
	config.ExpFuncName:   complexBuiltin(config.ExpFuncName, "expected number to find exponential of", cmplx.Exp),
	config.GammaFuncName: complexBuiltin(config.GammaFuncName, "cannot calculate gamma for non-number", gamma),
	config.LogFuncName: complexBuiltin(config.LogFuncName, "expected number to find logarithm of", func(c complex128) complex128 {
		return complexLog(c, 10)
	}),
	config.ConjugateFuncName: complexBuiltin(config.ConjugateFuncName, "expected a complex number to find conjugate of", cmplx.Conj),
	config.ReFuncName: complexBuiltin(config.ReFuncName, "expected a complex number to find real part of", func(c complex128) complex128 {
		return complex(real(c), 0)
	}),
	config.ImFuncName: complexBuiltin(config.ImFuncName, "expected a complex number to find imaginary part of", func(c complex128) complex128 {
		return complex(imag(c), 0)
	}),
	config.AbsFuncName: complexBuiltin(config.AbsFuncName, "expected a number to find the modulus of", func(c complex128) complex128 {
		return complex(cmplx.Abs(c), 0)
	}),
	config.ArgFuncName: complexBuiltin(config.ArgFuncName, "expected a number to find the argument of", func(c complex128) complex128 {
		return complex(cmplx.Phase(c), 0)
	}),
	config.LognFuncName: {
		Name:  config.LognFuncName,
		Arity: 2,
		Fn: func(s *State, args ...Value) (Value, error) {
			base, err := expectReal(args[0], "expected real base to logarithm")
			if err != nil {
				return nil, err
			}
			x, err := expectComplex(args[1], "expected number to find logarithm of")
			if err != nil {
				return nil, err
			}
			return &Number{Value: complexLog(x, base)}, nil
		},
	},
	config.PrintFuncName: {
		Name:  config.PrintFuncName,
		Arity: 1,
		Fn: func(s *State, args ...Value) (Value, error) {
			_, _ = fmt.Fprintln(s.Out, args[0].Inspect())
			return args[0], nil
		},
	},
	config.LenFuncName: {
		Name:  config.LenFuncName,
		Arity: 1,
		Fn: func(s *State, args ...Value) (Value, error) {
			arr, err := expectArray(args[0], "expected an array to find length of")
			if err != nil {
				return nil, err
			}
			return Real(float64(len(arr.Elements))), nil
		},
	},
	config.RmFuncName: {
		Name:  config.RmFuncName,
		Arity: 2,
		Fn: func(s *State, args ...Value) (Value, error) {
			arr, err := expectArray(args[0], "expected an array to remove value from")
			if err != nil {
				return nil, err
			}
			index, err := expectReal(args[1], "expected a real number to index array with in rm(x, y)")
			if err != nil {
				return nil, err
			}
			if !validIndex(index, len(arr.Elements)) {
				return nil, newError(IndexOutOfRange, "cannot index array in rm(x, y) where y is %s", formatFloat(index))
			}
			i := int(index)
			elements := make([]Value, 0, len(arr.Elements)-1)
			elements = append(elements, arr.Elements[:i]...)
			elements = append(elements, arr.Elements[i+1:]...)
			return &Array{Elements: elements}, nil
		},
	},
	config.InsFuncName: {
		Name:  config.InsFuncName,
		Arity: 3,
		Fn: func(s *State, args ...Value) (Value, error) {
			arr, err := expectArray(args[0], "expected an array to insert value into")
			if err != nil {
				return nil, err
			}
			index, err := expectReal(args[1], "expected a real number to index array with in ins(x, y, z)")
			if err != nil {
				return nil, err
			}
			// Inserting at len(arr) is rejected, like every other index past the end.
			if !validIndex(index, len(arr.Elements)) {
				return nil, newError(IndexOutOfRange, "cannot index array in ins(x, y, z) where y is %s", formatFloat(index))
			}
			i := int(index)
			elements := make([]Value, 0, len(arr.Elements)+1)
			elements = append(elements, arr.Elements[:i]...)
			elements = append(elements, args[2])
			elements = append(elements, arr.Elements[i:]...)
			return &Array{Elements: elements}, nil
		},
	},
	config.MemFuncName: {
		Name:  config.MemFuncName,
		Arity: 1,
		Fn: func(s *State, args ...Value) (Value, error) {
			return Real(float64(memSize(args[0], config.ValueUnitSize))), nil
		},
	},
	config.ClockFuncName: {
		Name:  config.ClockFuncName,
		Arity: 1,
		Fn: func(s *State, args ...Value) (Value, error) {
			t, err := expectReal(args[0], "expected real number in clock(x)")
			if err != nil {
				return nil, err
			}
			return Real(s.Elapsed().Seconds() - t), nil
		},
	},
	config.DotFuncName:   vectorPairBuiltin(config.DotFuncName, func(a, b *Vector) float64 { return a.X*b.X + a.Y*b.Y }),
	config.CrossFuncName: vectorPairBuiltin(config.CrossFuncName, func(a, b *Vector) float64 { return a.X*b.Y - a.Y*b.X }),
}

// complexBuiltin wraps a one-argument function over complex numbers.
func complexBuiltin(name, message string, fn func(complex128) complex128) *Builtin {
	return &Builtin{
		Name:  name,
		Arity: 1,
		Fn: func(s *State, args ...Value) (Value, error) {
			c, err := expectComplex(args[0], message)
			if err != nil {
				return nil, err
			}
			return &Number{Value: fn(c)}, nil
		},
	}
}

// vectorPairBuiltin wraps a real-valued product of two vectors.
func vectorPairBuiltin(name string, fn func(a, b *Vector) float64) *Builtin {
	return &Builtin{
		Name:  name,
		Arity: 2,
		Fn: func(s *State, args ...Value) (Value, error) {
			a, err := expectVector(args[0], fmt.Sprintf("expected vectors in %s(x, y)", name))
			if err != nil {
				return nil, err
			}
			b, err := expectVector(args[1], fmt.Sprintf("expected vectors in %s(x, y)", name))
			if err != nil {
				return nil, err
			}
			return Real(fn(a, b)), nil
		},
	}
}
