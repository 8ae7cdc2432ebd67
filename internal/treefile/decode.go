// Package treefile reads and writes syntax trees stored as YAML documents.
//
// Every node is a mapping with a single key naming its kind:
//
//	block:
//	  - let: {name: r, value: {number: 2}}
//	  - op: {left: {ident: pi}, operator: "*", right: {op: {left: {ident: r}, operator: "^", right: {number: 2}}}}
//
// JSON documents are valid YAML and decode the same way.
package treefile

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/funvibe/numbra/internal/ast"

	"gopkg.in/yaml.v3"
)

// Node kinds
const (
	KindNumber    = "number"
	KindImaginary = "imaginary"
	KindIdent     = "ident"
	KindOp        = "op"
	KindCall      = "call"
	KindFunction  = "function"
	KindLet       = "let"
	KindIf        = "if"
	KindLoop      = "loop"
	KindAssign    = "assign"
	KindFactorial = "factorial"
	KindBlock     = "block"
	KindArray     = "array"
	KindIndex     = "index"
)

// DecodeError reports a malformed tree document.
type DecodeError struct {
	Line    int
	Column  int
	Message string
}

func (e *DecodeError) Error() string {
	if e.Line == 0 {
		return e.Message
	}
	return fmt.Sprintf("line %d, column %d: %s", e.Line, e.Column, e.Message)
}

func errorAt(n *yaml.Node, format string, a ...interface{}) *DecodeError {
	return &DecodeError{Line: n.Line, Column: n.Column, Message: fmt.Sprintf(format, a...)}
}

// MaxAliasExpansion bounds how many tree nodes aliases may add on top of
// the nodes written out in the document.
const MaxAliasExpansion = 100000

// decoder carries the alias guards of one Decode call.
type decoder struct {
	active map[*yaml.Node]bool
	budget int
}

// countNodes counts the nodes physically present under n, not following aliases.
func countNodes(n *yaml.Node) int {
	count := 1
	for _, c := range n.Content {
		count += countNodes(c)
	}
	return count
}

// ErrEmptyDocument is returned for a document without a root node.
var ErrEmptyDocument = errors.New("tree document is empty")

// Decode reads one tree document.
func Decode(r io.Reader) (ast.Node, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrEmptyDocument
		}
		return nil, fmt.Errorf("tree parse error: %w", err)
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, ErrEmptyDocument
	}
	root := doc.Content[0]
	d := &decoder{
		active: make(map[*yaml.Node]bool),
		budget: countNodes(root) + MaxAliasExpansion,
	}
	return d.decodeNode(root)
}

// DecodeBytes decodes a document held in memory.
func DecodeBytes(data []byte) (ast.Node, error) {
	return Decode(bytes.NewReader(data))
}

// DecodeFile decodes the document stored at path.
func DecodeFile(path string) (ast.Node, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	node, err := Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return node, nil
}

func resolve(n *yaml.Node) *yaml.Node {
	for n.Kind == yaml.AliasNode && n.Alias != nil {
		n = n.Alias
	}
	return n
}

func (d *decoder) decodeNode(n *yaml.Node) (ast.Node, error) {
	n = resolve(n)
	if n.Kind != yaml.MappingNode || len(n.Content) != 2 {
		return nil, errorAt(n, "a node must be a mapping with exactly one key naming its kind")
	}
	if d.active[n] {
		return nil, errorAt(n, "alias to anchor %q refers to a node containing it", n.Anchor)
	}
	if d.budget--; d.budget < 0 {
		return nil, errorAt(n, "aliases expand the tree beyond %d nodes", MaxAliasExpansion)
	}
	d.active[n] = true
	defer delete(d.active, n)
	kind, body := n.Content[0].Value, resolve(n.Content[1])
	pos := ast.Pos{Line: n.Line, Column: n.Column}

	switch kind {
	case KindNumber:
		return decodeNumber(body, pos)
	case KindImaginary:
		f, err := decodeFloat(body)
		if err != nil {
			return nil, err
		}
		return &ast.NumberLiteral{Pos: pos, Value: f, Imaginary: true}, nil
	case KindIdent:
		name, err := decodeName(body)
		if err != nil {
			return nil, err
		}
		return &ast.Identifier{Pos: pos, Value: name}, nil
	case KindOp:
		return d.decodeOp(body, pos)
	case KindCall:
		return d.decodeCall(body, pos)
	case KindFunction:
		return d.decodeFunction(body, pos)
	case KindLet:
		return d.decodeLet(body, pos)
	case KindIf:
		return d.decodeIf(body, pos)
	case KindLoop:
		return d.decodeLoop(body, pos)
	case KindAssign:
		return d.decodeAssign(body, pos)
	case KindFactorial:
		operand, err := d.decodeNode(body)
		if err != nil {
			return nil, err
		}
		return &ast.FactorialExpression{Pos: pos, Operand: operand}, nil
	case KindBlock:
		statements, err := d.decodeList(body)
		if err != nil {
			return nil, err
		}
		return &ast.BlockStatement{Pos: pos, Statements: statements}, nil
	case KindArray:
		elements, err := d.decodeList(body)
		if err != nil {
			return nil, err
		}
		return &ast.ArrayLiteral{Pos: pos, Elements: elements}, nil
	case KindIndex:
		return d.decodeIndex(body, pos)
	}
	return nil, errorAt(n.Content[0], "unknown node kind %q", kind)
}

// fields splits a mapping into its keys, rejecting keys outside allowed.
func fields(n *yaml.Node, allowed ...string) (map[string]*yaml.Node, error) {
	if n.Kind != yaml.MappingNode {
		return nil, errorAt(n, "expected a mapping with keys %s", strings.Join(allowed, ", "))
	}
	out := make(map[string]*yaml.Node, len(n.Content)/2)
	for i := 0; i+1 < len(n.Content); i += 2 {
		key := n.Content[i]
		if !contains(allowed, key.Value) {
			return nil, errorAt(key, "unexpected key %q (allowed: %s)", key.Value, strings.Join(allowed, ", "))
		}
		if _, dup := out[key.Value]; dup {
			return nil, errorAt(key, "duplicate key %q", key.Value)
		}
		out[key.Value] = resolve(n.Content[i+1])
	}
	return out, nil
}

func required(parent *yaml.Node, f map[string]*yaml.Node, keys ...string) error {
	var missing []string
	for _, k := range keys {
		if _, ok := f[k]; !ok {
			missing = append(missing, k)
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return errorAt(parent, "missing key(s) %s", strings.Join(missing, ", "))
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}

func decodeFloat(n *yaml.Node) (float64, error) {
	if n.Kind != yaml.ScalarNode {
		return 0, errorAt(n, "expected a number")
	}
	var f float64
	if err := n.Decode(&f); err != nil {
		return 0, errorAt(n, "expected a number, got %q", n.Value)
	}
	return f, nil
}

func decodeName(n *yaml.Node) (string, error) {
	if n.Kind != yaml.ScalarNode || n.Value == "" {
		return "", errorAt(n, "expected a name")
	}
	return n.Value, nil
}

func decodeNames(n *yaml.Node) ([]string, error) {
	if n.Kind != yaml.SequenceNode {
		return nil, errorAt(n, "expected a list of names")
	}
	names := make([]string, 0, len(n.Content))
	for _, item := range n.Content {
		name, err := decodeName(resolve(item))
		if err != nil {
			return nil, err
		}
		names = append(names, name)
	}
	return names, nil
}

func (d *decoder) decodeList(n *yaml.Node) ([]ast.Node, error) {
	if n.Kind != yaml.SequenceNode {
		return nil, errorAt(n, "expected a list of nodes")
	}
	nodes := make([]ast.Node, 0, len(n.Content))
	for _, item := range n.Content {
		node, err := d.decodeNode(item)
		if err != nil {
			return nil, err
		}
		nodes = append(nodes, node)
	}
	return nodes, nil
}

func decodeNumber(n *yaml.Node, pos ast.Pos) (ast.Node, error) {
	if n.Kind == yaml.ScalarNode {
		f, err := decodeFloat(n)
		if err != nil {
			return nil, err
		}
		return &ast.NumberLiteral{Pos: pos, Value: f}, nil
	}
	f, err := fields(n, "value", "imaginary")
	if err != nil {
		return nil, err
	}
	if err := required(n, f, "value"); err != nil {
		return nil, err
	}
	value, err := decodeFloat(f["value"])
	if err != nil {
		return nil, err
	}
	lit := &ast.NumberLiteral{Pos: pos, Value: value}
	if im, ok := f["imaginary"]; ok {
		if err := im.Decode(&lit.Imaginary); err != nil {
			return nil, errorAt(im, "imaginary must be true or false")
		}
	}
	return lit, nil
}

func (d *decoder) decodeOp(n *yaml.Node, pos ast.Pos) (ast.Node, error) {
	f, err := fields(n, "left", "operator", "right")
	if err != nil {
		return nil, err
	}
	if err := required(n, f, "left", "operator", "right"); err != nil {
		return nil, err
	}
	op, ok := ast.ParseOperator(f["operator"].Value)
	if !ok {
		return nil, errorAt(f["operator"], "unknown operator %q", f["operator"].Value)
	}
	left, err := d.decodeNode(f["left"])
	if err != nil {
		return nil, err
	}
	right, err := d.decodeNode(f["right"])
	if err != nil {
		return nil, err
	}
	return &ast.InfixExpression{Pos: pos, Left: left, Operator: op, Right: right}, nil
}

func (d *decoder) decodeCall(n *yaml.Node, pos ast.Pos) (ast.Node, error) {
	f, err := fields(n, "name", "args")
	if err != nil {
		return nil, err
	}
	if err := required(n, f, "name"); err != nil {
		return nil, err
	}
	name, err := decodeName(f["name"])
	if err != nil {
		return nil, err
	}
	call := &ast.CallExpression{Pos: pos, Function: name}
	if args, ok := f["args"]; ok {
		if call.Arguments, err = d.decodeList(args); err != nil {
			return nil, err
		}
	}
	return call, nil
}

func (d *decoder) decodeFunction(n *yaml.Node, pos ast.Pos) (ast.Node, error) {
	f, err := fields(n, "name", "params", "body")
	if err != nil {
		return nil, err
	}
	if err := required(n, f, "name", "body"); err != nil {
		return nil, err
	}
	name, err := decodeName(f["name"])
	if err != nil {
		return nil, err
	}
	fn := &ast.FunctionStatement{Pos: pos, Name: name, Parameters: []string{}}
	if params, ok := f["params"]; ok {
		if fn.Parameters, err = decodeNames(params); err != nil {
			return nil, err
		}
	}
	if fn.Body, err = d.decodeNode(f["body"]); err != nil {
		return nil, err
	}
	return fn, nil
}

func (d *decoder) decodeLet(n *yaml.Node, pos ast.Pos) (ast.Node, error) {
	f, err := fields(n, "name", "value")
	if err != nil {
		return nil, err
	}
	if err := required(n, f, "name", "value"); err != nil {
		return nil, err
	}
	name, err := decodeName(f["name"])
	if err != nil {
		return nil, err
	}
	value, err := d.decodeNode(f["value"])
	if err != nil {
		return nil, err
	}
	return &ast.VariableDeclaration{Pos: pos, Name: name, Value: value}, nil
}

func (d *decoder) decodeIf(n *yaml.Node, pos ast.Pos) (ast.Node, error) {
	f, err := fields(n, "predicate", "then", "else")
	if err != nil {
		return nil, err
	}
	if err := required(n, f, "predicate", "then", "else"); err != nil {
		return nil, err
	}
	cond, err := d.decodeNode(f["predicate"])
	if err != nil {
		return nil, err
	}
	cons, err := d.decodeNode(f["then"])
	if err != nil {
		return nil, err
	}
	alt, err := d.decodeNode(f["else"])
	if err != nil {
		return nil, err
	}
	return &ast.IfExpression{Pos: pos, Condition: cond, Consequence: cons, Alternative: alt}, nil
}

func (d *decoder) decodeLoop(n *yaml.Node, pos ast.Pos) (ast.Node, error) {
	f, err := fields(n, "var", "from", "to", "step", "body")
	if err != nil {
		return nil, err
	}
	if err := required(n, f, "var", "from", "to", "body"); err != nil {
		return nil, err
	}
	variable, err := decodeName(f["var"])
	if err != nil {
		return nil, err
	}
	rng := &ast.RangeExpression{Pos: pos}
	if rng.First, err = d.decodeNode(f["from"]); err != nil {
		return nil, err
	}
	if rng.Second, err = d.decodeNode(f["to"]); err != nil {
		return nil, err
	}
	if step, ok := f["step"]; ok {
		if rng.Step, err = d.decodeNode(step); err != nil {
			return nil, err
		}
	} else {
		rng.Step = &ast.NumberLiteral{Pos: pos, Value: 1}
	}
	body, err := d.decodeNode(f["body"])
	if err != nil {
		return nil, err
	}
	return &ast.LoopExpression{Pos: pos, Variable: variable, Range: rng, Body: body}, nil
}

func (d *decoder) decodeAssign(n *yaml.Node, pos ast.Pos) (ast.Node, error) {
	f, err := fields(n, "name", "names", "value")
	if err != nil {
		return nil, err
	}
	if err := required(n, f, "value"); err != nil {
		return nil, err
	}
	assign := &ast.AssignExpression{Pos: pos}
	switch {
	case f["names"] != nil && f["name"] != nil:
		return nil, errorAt(n, "use either name or names, not both")
	case f["names"] != nil:
		if assign.Names, err = decodeNames(f["names"]); err != nil {
			return nil, err
		}
		if len(assign.Names) == 0 {
			return nil, errorAt(f["names"], "an assignment needs at least one name")
		}
	case f["name"] != nil:
		name, err := decodeName(f["name"])
		if err != nil {
			return nil, err
		}
		assign.Names = []string{name}
	default:
		return nil, errorAt(n, "missing key(s) name")
	}
	if assign.Value, err = d.decodeNode(f["value"]); err != nil {
		return nil, err
	}
	return assign, nil
}

func (d *decoder) decodeIndex(n *yaml.Node, pos ast.Pos) (ast.Node, error) {
	f, err := fields(n, "array", "index")
	if err != nil {
		return nil, err
	}
	if err := required(n, f, "array", "index"); err != nil {
		return nil, err
	}
	left, err := d.decodeNode(f["array"])
	if err != nil {
		return nil, err
	}
	index, err := d.decodeNode(f["index"])
	if err != nil {
		return nil, err
	}
	return &ast.IndexExpression{Pos: pos, Left: left, Index: index}, nil
}
