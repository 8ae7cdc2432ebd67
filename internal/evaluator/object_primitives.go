package evaluator

import (
	"strings"
)

// Number is a complex number. Real numbers have a zero imaginary part.
type Number struct {
	Value complex128
}

func (n *Number) Type() ObjectType { return NUMBER_OBJ }

func (n *Number) Inspect() string {
	re, im := real(n.Value), imag(n.Value)
	switch {
	case im == 0:
		return formatFloat(re)
	case re == 0:
		if im == 1 {
			return "i"
		}
		return formatFloat(im) + "i"
	case im > 0:
		return formatFloat(re) + " + " + formatFloat(im) + "i"
	default:
		return formatFloat(re) + " - " + formatFloat(-im) + "i"
	}
}

// IsReal reports whether the imaginary part is exactly zero.
func (n *Number) IsReal() bool { return imag(n.Value) == 0 }

func (n *Number) Real() float64 { return real(n.Value) }

// Vector is a real two-dimensional vector.
type Vector struct {
	X, Y float64
}

func (v *Vector) Type() ObjectType { return VECTOR_OBJ }
func (v *Vector) Inspect() string {
	return "(" + formatFloat(v.X) + ", " + formatFloat(v.Y) + ")"
}

// Array is an ordered sequence of values of any kind.
// Arrays are treated as immutable: every operation returns a new Array.
type Array struct {
	Elements []Value
}

func (a *Array) Type() ObjectType { return ARRAY_OBJ }
func (a *Array) Inspect() string {
	var out strings.Builder
	out.WriteString("[")
	for i, el := range a.Elements {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(el.Inspect())
	}
	out.WriteString("]")
	return out.String()
}

// push returns a new array with val appended as one trailing element.
func (a *Array) push(val Value) *Array {
	elements := make([]Value, len(a.Elements), len(a.Elements)+1)
	copy(elements, a.Elements)
	return &Array{Elements: append(elements, val)}
}

// Real returns a Number with a zero imaginary part.
func Real(f float64) *Number { return &Number{Value: complex(f, 0)} }

// Imaginary returns a pure imaginary Number.
func Imaginary(f float64) *Number { return &Number{Value: complex(0, f)} }

func nativeBoolToNumber(b bool) *Number {
	if b {
		return Real(1)
	}
	return Real(0)
}

// memSize estimates the storage of a value: one unit per value,
// arrays additionally charge for their elements.
func memSize(v Value, unit int) int {
	size := unit
	if arr, ok := v.(*Array); ok {
		for _, el := range arr.Elements {
			size += memSize(el, unit)
		}
	}
	return size
}
