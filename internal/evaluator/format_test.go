package evaluator

import (
	"math"
	"testing"
)

func TestInspect(t *testing.T) {
	tests := []struct {
		input    Value
		expected string
	}{
		{Real(5), "5"},
		{Real(-2.5), "-2.5"},
		{Real(0.1 + 0.2), "0.30000000000000004"},
		{Real(1e21), "1000000000000000000000"},
		{Real(math.Inf(1)), "inf"},
		{Real(math.Inf(-1)), "-inf"},
		{Real(math.NaN()), "NaN"},
		{Imaginary(1), "i"},
		{Imaginary(2), "2i"},
		{Imaginary(-1), "-1i"},
		{&Number{Value: complex(3, 4)}, "3 + 4i"},
		{&Number{Value: complex(3, -4)}, "3 - 4i"},
		{&Vector{X: 4, Y: 6}, "(4, 6)"},
		{&Vector{X: -0.5, Y: 0}, "(-0.5, 0)"},
		{&Array{}, "[]"},
		{&Array{Elements: []Value{Real(1), Real(2), &Array{Elements: []Value{Real(3), Real(4)}}}}, "[1, 2, [3, 4]]"},
		{&Array{Elements: []Value{&Vector{X: 1, Y: 2}, Imaginary(1)}}, "[(1, 2), i]"},
	}

	for _, tt := range tests {
		if got := tt.input.Inspect(); got != tt.expected {
			t.Errorf("Inspect() = %q, want %q", got, tt.expected)
		}
	}
}

func TestMemSize(t *testing.T) {
	nested := &Array{Elements: []Value{Real(1), &Array{Elements: []Value{Real(2), Real(3)}}}}
	tests := []struct {
		input    Value
		expected int
	}{
		{Real(1), 32},
		{&Vector{X: 1, Y: 2}, 32},
		{&Array{}, 32},
		{nested, 32 * 5},
	}
	for _, tt := range tests {
		if got := memSize(tt.input, 32); got != tt.expected {
			t.Errorf("memSize(%s) = %d, want %d", tt.input.Inspect(), got, tt.expected)
		}
	}
}
