package treefile

import (
	"bytes"
	"math"
	"strings"
	"testing"

	"github.com/funvibe/numbra/internal/ast"
)

func TestEncodeRoundTrip(t *testing.T) {
	inputs := []string{
		"number: 2.5",
		"number: -0.125",
		"imaginary: 3",
		"ident: x",
		`op: {left: {number: 1}, operator: "<=", right: {ident: y}}`,
		"call: {name: vec, args: [{number: 1}, {number: 2}]}",
		"function: {name: sq, params: [a, b], body: {ident: a}}",
		"let: {name: x, value: {number: 1}}",
		"if: {predicate: {number: 1}, then: {number: 2}, else: {number: 3}}",
		"loop: {var: i, from: {number: 1}, to: {number: 3}, step: {number: 0.5}, body: {ident: i}}",
		"assign: {names: [x, y], value: {number: 1}}",
		"factorial: {number: 5}",
		"block: [{let: {name: x, value: {number: 1}}}, {ident: x}]",
		"array: [{number: 1}, {array: []}]",
		"index: {array: {ident: a}, index: {number: 0}}",
	}
	for _, input := range inputs {
		t.Run(strings.SplitN(input, ":", 2)[0], func(t *testing.T) {
			first, err := DecodeBytes([]byte(input))
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			encoded, err := Encode(first)
			if err != nil {
				t.Fatalf("Encode: %v", err)
			}
			second, err := DecodeBytes(encoded)
			if err != nil {
				t.Fatalf("Decode(Encode()): %v\n%s", err, encoded)
			}
			again, err := Encode(second)
			if err != nil {
				t.Fatalf("Encode: %v", err)
			}
			if !bytes.Equal(encoded, again) {
				t.Errorf("encoding is not stable:\n%s\nvs\n%s", encoded, again)
			}
		})
	}
}

func TestEncodeSpecialFloats(t *testing.T) {
	for _, f := range []float64{math.Inf(1), math.Inf(-1), math.NaN(), 1e300} {
		out, err := Encode(&ast.NumberLiteral{Value: f})
		if err != nil {
			t.Fatalf("Encode(%v): %v", f, err)
		}
		n, err := DecodeBytes(out)
		if err != nil {
			t.Fatalf("Decode(%q): %v", out, err)
		}
		got := n.(*ast.NumberLiteral).Value
		if math.IsNaN(f) {
			if !math.IsNaN(got) {
				t.Errorf("NaN decoded as %v", got)
			}
			continue
		}
		if got != f {
			t.Errorf("%v decoded as %v", f, got)
		}
	}
}

func TestEncodeOperatorQuoted(t *testing.T) {
	out, err := Encode(&ast.InfixExpression{
		Left:     &ast.NumberLiteral{Value: 1},
		Operator: ast.OpMultiply,
		Right:    &ast.NumberLiteral{Value: 2},
	})
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	if !strings.Contains(string(out), `operator: "*"`) {
		t.Errorf("operator not quoted:\n%s", out)
	}
}

func TestEncodeNil(t *testing.T) {
	if _, err := Encode(nil); err == nil {
		t.Error("expected an error")
	}
}
