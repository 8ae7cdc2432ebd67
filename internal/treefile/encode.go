package treefile

import (
	"errors"
	"math"
	"strconv"

	"github.com/funvibe/numbra/internal/ast"

	"gopkg.in/yaml.v3"
)

// Encode renders a syntax tree as a tree document that Decode reads back.
func Encode(node ast.Node) ([]byte, error) {
	if node == nil {
		return nil, errors.New("cannot encode an empty tree")
	}
	enc := &encoder{}
	node.Accept(enc)
	return yaml.Marshal(enc.result)
}

// encoder builds a yaml.Node for each visited node.
type encoder struct {
	result *yaml.Node
}

func (enc *encoder) encode(node ast.Node) *yaml.Node {
	if node == nil {
		return &yaml.Node{Kind: yaml.ScalarNode, Tag: "!!null", Value: "null"}
	}
	node.Accept(enc)
	return enc.result
}

func scalar(value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Value: value}
}

func floatScalar(f float64) *yaml.Node {
	var text string
	switch {
	case math.IsNaN(f):
		text = ".nan"
	case math.IsInf(f, 1):
		text = ".inf"
	case math.IsInf(f, -1):
		text = "-.inf"
	default:
		text = strconv.FormatFloat(f, 'g', -1, 64)
	}
	return scalar(text)
}

func mapping(pairs ...interface{}) *yaml.Node {
	m := &yaml.Node{Kind: yaml.MappingNode}
	for i := 0; i+1 < len(pairs); i += 2 {
		m.Content = append(m.Content, scalar(pairs[i].(string)), pairs[i+1].(*yaml.Node))
	}
	return m
}

func (enc *encoder) list(nodes []ast.Node) *yaml.Node {
	seq := &yaml.Node{Kind: yaml.SequenceNode}
	for _, n := range nodes {
		seq.Content = append(seq.Content, enc.encode(n))
	}
	return seq
}

func names(list []string) *yaml.Node {
	seq := &yaml.Node{Kind: yaml.SequenceNode, Style: yaml.FlowStyle}
	for _, name := range list {
		seq.Content = append(seq.Content, scalar(name))
	}
	return seq
}

func (enc *encoder) VisitNumberLiteral(n *ast.NumberLiteral) {
	if n.Imaginary {
		enc.result = mapping(KindImaginary, floatScalar(n.Value))
		return
	}
	enc.result = mapping(KindNumber, floatScalar(n.Value))
}

func (enc *encoder) VisitIdentifier(n *ast.Identifier) {
	enc.result = mapping(KindIdent, scalar(n.Value))
}

func (enc *encoder) VisitInfixExpression(n *ast.InfixExpression) {
	enc.result = mapping(KindOp, mapping(
		"left", enc.encode(n.Left),
		"operator", &yaml.Node{Kind: yaml.ScalarNode, Style: yaml.DoubleQuotedStyle, Value: string(n.Operator)},
		"right", enc.encode(n.Right),
	))
}

func (enc *encoder) VisitCallExpression(n *ast.CallExpression) {
	enc.result = mapping(KindCall, mapping("name", scalar(n.Function), "args", enc.list(n.Arguments)))
}

func (enc *encoder) VisitFunctionStatement(n *ast.FunctionStatement) {
	enc.result = mapping(KindFunction, mapping(
		"name", scalar(n.Name),
		"params", names(n.Parameters),
		"body", enc.encode(n.Body),
	))
}

func (enc *encoder) VisitVariableDeclaration(n *ast.VariableDeclaration) {
	enc.result = mapping(KindLet, mapping("name", scalar(n.Name), "value", enc.encode(n.Value)))
}

func (enc *encoder) VisitIfExpression(n *ast.IfExpression) {
	enc.result = mapping(KindIf, mapping(
		"predicate", enc.encode(n.Condition),
		"then", enc.encode(n.Consequence),
		"else", enc.encode(n.Alternative),
	))
}

func (enc *encoder) VisitLoopExpression(n *ast.LoopExpression) {
	var first, second, step ast.Node
	if n.Range != nil {
		first, second, step = n.Range.First, n.Range.Second, n.Range.Step
	}
	enc.result = mapping(KindLoop, mapping(
		"var", scalar(n.Variable),
		"from", enc.encode(first),
		"to", enc.encode(second),
		"step", enc.encode(step),
		"body", enc.encode(n.Body),
	))
}

// A range is only written as part of its loop.
func (enc *encoder) VisitRangeExpression(n *ast.RangeExpression) {
	enc.result = mapping("range", mapping(
		"from", enc.encode(n.First),
		"to", enc.encode(n.Second),
		"step", enc.encode(n.Step),
	))
}

func (enc *encoder) VisitAssignExpression(n *ast.AssignExpression) {
	enc.result = mapping(KindAssign, mapping("names", names(n.Names), "value", enc.encode(n.Value)))
}

func (enc *encoder) VisitFactorialExpression(n *ast.FactorialExpression) {
	enc.result = mapping(KindFactorial, enc.encode(n.Operand))
}

func (enc *encoder) VisitBlockStatement(n *ast.BlockStatement) {
	enc.result = mapping(KindBlock, enc.list(n.Statements))
}

func (enc *encoder) VisitArrayLiteral(n *ast.ArrayLiteral) {
	enc.result = mapping(KindArray, enc.list(n.Elements))
}

func (enc *encoder) VisitIndexExpression(n *ast.IndexExpression) {
	enc.result = mapping(KindIndex, mapping("array", enc.encode(n.Left), "index", enc.encode(n.Index)))
}
