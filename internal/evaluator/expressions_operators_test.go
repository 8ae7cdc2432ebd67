package evaluator

import (
	"math"
	"testing"

	"github.com/funvibe/numbra/internal/ast"
)

func TestArithmetic(t *testing.T) {
	tests := []struct {
		name string
		node ast.Node
		want string
	}{
		{"add numbers", tOp(tNum(2), ast.OpAdd, tNum(3)), "5"},
		{"add complex", tOp(tNum(2), ast.OpAdd, tIm(3)), "2 + 3i"},
		{"subtract", tOp(tNum(2), ast.OpSubtract, tNum(3)), "-1"},
		{"multiply", tOp(tNum(2.5), ast.OpMultiply, tNum(4)), "10"},
		{"i squared", tOp(tIm(1), ast.OpMultiply, tIm(1)), "-1"},
		{"divide", tOp(tNum(7), ast.OpDivide, tNum(2)), "3.5"},
		{"modulo", tOp(tNum(7), ast.OpModulo, tNum(3)), "1"},
		{"modulo negative", tOp(tNum(-7), ast.OpModulo, tNum(3)), "-1"},
		{"modulo fraction", tOp(tNum(5.5), ast.OpModulo, tNum(2)), "1.5"},
		{"power", tOp(tNum(2), ast.OpPower, tNum(10)), "1024"},
		{"zero to zero", tOp(tNum(0), ast.OpPower, tNum(0)), "0"},
		{"zero to negative", tOp(tNum(0), ast.OpPower, tNum(-1)), "0"},
		{"zero to imaginary", tOp(tNum(0), ast.OpPower, tIm(2)), "0"},
		{"zero exponent", tOp(tNum(5), ast.OpPower, tNum(0)), "1"},
		{"add vectors", tOp(tVec(1, 2), ast.OpAdd, tVec(3, 4)), "(4, 6)"},
		{"subtract vectors", tOp(tVec(1, 2), ast.OpSubtract, tVec(3, 4)), "(-2, -2)"},
		{"scale vector", tOp(tNum(2), ast.OpMultiply, tVec(1, 2)), "(2, 4)"},
		{"scale vector right", tOp(tVec(1, 2), ast.OpMultiply, tNum(3)), "(3, 6)"},
		{"divide vector", tOp(tVec(2, 4), ast.OpDivide, tNum(2)), "(1, 2)"},
		{"divide number by vector", tOp(tNum(2), ast.OpDivide, tVec(2, 4)), "(1, 2)"},
		{"vector power", tOp(tVec(2, 3), ast.OpPower, tNum(2)), "(4, 9)"},
		{"array concat nests", tOp(tArr(tNum(1), tNum(2)), ast.OpAdd, tArr(tNum(3), tNum(4))), "[1, 2, [3, 4]]"},
		{"array push", tOp(tArr(tNum(1), tNum(2)), ast.OpAdd, tNum(3)), "[1, 2, 3]"},
		{"push onto array on the right", tOp(tNum(3), ast.OpAdd, tArr(tNum(1), tNum(2))), "[1, 2, 3]"},
		{"push vector", tOp(tArr(), ast.OpAdd, tVec(1, 2)), "[(1, 2)]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expectInspect(t, tt.node, tt.want)
		})
	}
}

func TestArrayAddDoesNotMutate(t *testing.T) {
	arr := &Array{Elements: []Value{Real(1)}}
	got, err := EvalInfixExpression(ast.OpAdd, arr, Real(2))
	if err != nil {
		t.Fatal(err)
	}
	if len(arr.Elements) != 1 {
		t.Errorf("operand changed to %s", arr.Inspect())
	}
	if got.Inspect() != "[1, 2]" {
		t.Errorf("got %s", got.Inspect())
	}
}

func TestCommutativity(t *testing.T) {
	values := []Value{
		Real(0), Real(3), Real(-1.5), Imaginary(2),
		&Number{Value: complex(1, -4)}, &Number{Value: complex(0.25, 7)},
	}
	for _, a := range values {
		for _, b := range values {
			for _, op := range []ast.Operator{ast.OpAdd, ast.OpMultiply} {
				ab, err := EvalInfixExpression(op, a, b)
				if err != nil {
					t.Fatal(err)
				}
				ba, err := EvalInfixExpression(op, b, a)
				if err != nil {
					t.Fatal(err)
				}
				if !closeTo(ab.(*Number).Value, ba.(*Number).Value) {
					t.Errorf("%s %s %s = %s, reversed %s", a.Inspect(), op, b.Inspect(), ab.Inspect(), ba.Inspect())
				}
			}
		}
	}

	v, w := &Vector{X: 1, Y: -2}, &Vector{X: 0.5, Y: 3}
	vw, _ := EvalInfixExpression(ast.OpAdd, v, w)
	wv, _ := EvalInfixExpression(ast.OpAdd, w, v)
	if !valuesEqual(vw, wv) {
		t.Errorf("vector addition not commutative: %s vs %s", vw.Inspect(), wv.Inspect())
	}
	nv, _ := EvalInfixExpression(ast.OpMultiply, Real(3), v)
	vn, _ := EvalInfixExpression(ast.OpMultiply, v, Real(3))
	if !valuesEqual(nv, vn) {
		t.Errorf("scaling not commutative: %s vs %s", nv.Inspect(), vn.Inspect())
	}
}

func TestDivisionUndoesMultiplication(t *testing.T) {
	pairs := [][2]complex128{
		{3, 7}, {complex(1, 2), complex(-3, 0.5)}, {-2.5, complex(0, 4)}, {1e10, 3e-5},
	}
	for _, p := range pairs {
		a, b := &Number{Value: p[0]}, &Number{Value: p[1]}
		prod, _ := EvalInfixExpression(ast.OpMultiply, a, b)
		back, _ := EvalInfixExpression(ast.OpDivide, prod, b)
		if !closeTo(back.(*Number).Value, p[0]) {
			t.Errorf("(%v * %v) / %v = %v", p[0], p[1], p[1], back.(*Number).Value)
		}
	}
}

func TestEquality(t *testing.T) {
	arr := &Array{Elements: []Value{Real(1)}}
	tests := []struct {
		name        string
		left, right Value
		want        bool
	}{
		{"equal numbers", Real(2), Real(2), true},
		{"different numbers", Real(2), Real(3), false},
		{"equal complex", &Number{Value: complex(1, 2)}, &Number{Value: complex(1, 2)}, true},
		{"same modulus", Real(1), Imaginary(1), false},
		{"equal vectors", &Vector{X: 1, Y: 2}, &Vector{X: 1, Y: 2}, true},
		{"number and vector", Real(0), &Vector{}, false},
		{"vector and array", &Vector{}, &Array{}, false},
		{"array with itself", arr, arr, false},
		{"empty arrays", &Array{}, &Array{}, false},
		{"NaN", Real(math.NaN()), Real(math.NaN()), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := EvalInfixExpression(ast.OpEquals, tt.left, tt.right)
			if err != nil {
				t.Fatal(err)
			}
			want := "0"
			if tt.want {
				want = "1"
			}
			if got.Inspect() != want {
				t.Errorf("got %s, want %s", got.Inspect(), want)
			}
		})
	}
}

func TestComparisonByModulus(t *testing.T) {
	tests := []struct {
		op          ast.Operator
		left, right Value
		want        string
	}{
		{ast.OpGreater, Real(-3), Real(2), "1"},
		{ast.OpLess, Real(-3), Real(2), "0"},
		{ast.OpGreaterOrEqual, Imaginary(2), Real(-2), "1"},
		{ast.OpLessOrEqual, &Number{Value: complex(3, 4)}, Real(5), "1"},
		{ast.OpLess, &Number{Value: complex(3, 4)}, Real(5), "0"},
	}
	for _, tt := range tests {
		got, err := EvalInfixExpression(tt.op, tt.left, tt.right)
		if err != nil {
			t.Fatal(err)
		}
		if got.Inspect() != tt.want {
			t.Errorf("%s %s %s = %s, want %s", tt.left.Inspect(), tt.op, tt.right.Inspect(), got.Inspect(), tt.want)
		}
	}
}

func TestOperatorErrors(t *testing.T) {
	num, vec, arr := Real(1), &Vector{X: 1, Y: 2}, &Array{}
	cplx := &Number{Value: complex(1, 1)}
	tests := []struct {
		op          ast.Operator
		left, right Value
		want        string
	}{
		{ast.OpAdd, num, vec, "cannot add a number to a vector"},
		{ast.OpAdd, vec, num, "cannot add a vector to a number"},
		{ast.OpSubtract, num, vec, "cannot subtract a number from a vector"},
		{ast.OpSubtract, vec, num, "cannot subtract a vector from a number"},
		{ast.OpSubtract, arr, num, "cannot subtract a number from an array"},
		{ast.OpMultiply, vec, vec, "cannot multiply a vector with a vector. use dot(vector, vector) or cross(vector, vector) instead"},
		{ast.OpMultiply, arr, num, "cannot multiply an array by a number"},
		{ast.OpMultiply, arr, vec, "cannot multiply an array with a vector"},
		{ast.OpMultiply, vec, arr, "cannot multiply an array with a vector"},
		{ast.OpMultiply, cplx, vec, "cannot multiply a vector with a complex number"},
		{ast.OpDivide, vec, vec, "cannot divide a vector by a vector"},
		{ast.OpDivide, vec, cplx, "cannot divide a vector by a complex number"},
		{ast.OpModulo, vec, num, "cannot find remainder between vector and number"},
		{ast.OpModulo, num, arr, "cannot find remainder of number in terms of array"},
		{ast.OpModulo, arr, vec, "cannot find remainder between array and vector"},
		{ast.OpPower, num, vec, "cannot raise a number to a vector power"},
		{ast.OpPower, arr, num, "cannot raise array to a number power"},
		{ast.OpPower, vec, cplx, "cannot raise a vector to a complex power"},
		{ast.OpGreater, vec, num, "cannot compare greater-than between a vector and a number"},
		{ast.OpGreater, num, arr, "cannot compare greater-than between a number and array"},
		{ast.OpLess, num, arr, "cannot compare less-than between a number and an array"},
		{ast.OpGreaterOrEqual, arr, arr, "cannot compare greater-than-or-equals between an array and an array"},
		{ast.OpLessOrEqual, vec, vec, "cannot compare less-than-or-equals between a vector and a vector"},
	}
	for _, tt := range tests {
		_, err := EvalInfixExpression(tt.op, tt.left, tt.right)
		if err == nil {
			t.Errorf("%s %s %s: expected error", tt.left.Inspect(), tt.op, tt.right.Inspect())
			continue
		}
		evalErr := err.(*Error)
		if evalErr.Kind != OperatorError {
			t.Errorf("kind = %s, want operator", evalErr.Kind)
		}
		if evalErr.Message != tt.want {
			t.Errorf("message = %q, want %q", evalErr.Message, tt.want)
		}
	}
}

func TestComplexRem(t *testing.T) {
	tests := []struct {
		a, b, want complex128
	}{
		{7, 3, 1},
		{-7, 3, -1},
		{7, -3, 1},
		{complex(5, 7), 2, complex(1, 1)},
	}
	for _, tt := range tests {
		if got := complexRem(tt.a, tt.b); !closeTo(got, tt.want) {
			t.Errorf("complexRem(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
	if got := complexRem(5.5, 2); real(got) != math.Mod(5.5, 2) {
		t.Errorf("real remainder %v differs from math.Mod", got)
	}
}
