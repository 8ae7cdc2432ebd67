package prettyprinter

import (
	"bytes"
	"math"
	"strconv"
	"strings"

	"github.com/funvibe/numbra/internal/ast"
)

// --- Code Printer (Output looks like source code) ---

// Operator precedence (higher = binds tighter)
var operatorPrecedence = map[ast.Operator]int{
	ast.OpEquals:         3,
	ast.OpGreater:        4,
	ast.OpLess:           4,
	ast.OpGreaterOrEqual: 4,
	ast.OpLessOrEqual:    4,
	ast.OpAdd:            7,
	ast.OpSubtract:       7,
	ast.OpMultiply:       8,
	ast.OpDivide:         8,
	ast.OpModulo:         8,
	ast.OpPower:          9, // right-assoc
}

// Postfix and access forms bind tighter than any operator.
const postfixPrecedence = 100

func getPrecedence(op ast.Operator) int {
	if p, ok := operatorPrecedence[op]; ok {
		return p
	}
	return 10 // Default high precedence for unknown ops
}

// Right-associative operators
var rightAssoc = map[ast.Operator]bool{
	ast.OpPower: true,
}

type CodePrinter struct {
	buf    bytes.Buffer
	indent int
	column int // current column position
}

func NewCodePrinter() *CodePrinter {
	return &CodePrinter{}
}

// Print renders a tree as source text. A root block prints as a sequence of
// lines without braces.
func Print(node ast.Node) string {
	p := NewCodePrinter()
	if block, ok := node.(*ast.BlockStatement); ok && block != nil {
		for i, stmt := range block.Statements {
			if i > 0 {
				p.writeln()
			}
			p.printExpr(stmt, 0, false)
		}
		return p.String()
	}
	p.printExpr(node, 0, false)
	return p.String()
}

func (p *CodePrinter) writeIndent() {
	for i := 0; i < p.indent; i++ {
		p.buf.WriteString("    ")
	}
	p.column = p.indent * 4
}

// isOpenEnded reports whether a node's text has no closing delimiter, so
// it swallows whatever follows it (if/else, let, fn, assignment).
func isOpenEnded(node ast.Node) bool {
	switch node.(type) {
	case *ast.IfExpression, *ast.AssignExpression, *ast.VariableDeclaration, *ast.FunctionStatement:
		return true
	}
	return false
}

// printExpr prints an expression, adding parentheses only if needed
func (p *CodePrinter) printExpr(expr ast.Node, parentPrec int, isRight bool) {
	if expr == nil {
		p.write("<???>")
		return
	}
	switch e := expr.(type) {
	case *ast.InfixExpression:
		if e == nil {
			p.write("<???>")
			return
		}
		prec := getPrecedence(e.Operator)
		needParens := prec < parentPrec
		// For same precedence, check associativity
		if prec == parentPrec {
			if isRight && !rightAssoc[e.Operator] {
				needParens = true
			} else if !isRight && rightAssoc[e.Operator] {
				needParens = true
			}
		}
		if needParens {
			p.write("(")
		}
		p.printExpr(e.Left, prec, false)
		p.write(" " + string(e.Operator) + " ")
		p.printExpr(e.Right, prec, true)
		if needParens {
			p.write(")")
		}
	case *ast.NumberLiteral:
		// A negative literal reads as a prefix minus; keep it atomic under operators.
		if e != nil && parentPrec > 0 && (e.Value < 0 || math.Signbit(e.Value)) {
			p.write("(")
			e.Accept(p)
			p.write(")")
			return
		}
		expr.Accept(p)
	default:
		if parentPrec > 0 && isOpenEnded(expr) {
			p.write("(")
			expr.Accept(p)
			p.write(")")
			return
		}
		expr.Accept(p)
	}
}

func (p *CodePrinter) String() string {
	return p.buf.String()
}

func (p *CodePrinter) write(s string) {
	p.buf.WriteString(s)
	// Track column position
	if idx := strings.LastIndex(s, "\n"); idx != -1 {
		p.column = len(s) - idx - 1
	} else {
		p.column += len(s)
	}
}

func (p *CodePrinter) writeln() {
	p.buf.WriteString("\n")
	p.column = 0
}

func (p *CodePrinter) writeList(nodes []ast.Node) {
	for i, n := range nodes {
		if i > 0 {
			p.write(", ")
		}
		p.printExpr(n, 0, false)
	}
}

func formatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

func (p *CodePrinter) VisitNumberLiteral(n *ast.NumberLiteral) {
	if n == nil {
		p.write("nil")
		return
	}
	p.write(formatNumber(n.Value))
	if n.Imaginary {
		p.write("i")
	}
}

func (p *CodePrinter) VisitIdentifier(n *ast.Identifier) {
	if n == nil {
		p.write("nil")
		return
	}
	p.write(n.Value)
}

func (p *CodePrinter) VisitInfixExpression(n *ast.InfixExpression) {
	if n == nil {
		p.write("nil")
		return
	}
	// When called directly (not via printExpr), use lowest precedence context
	p.printExpr(n, 0, false)
}

func (p *CodePrinter) VisitCallExpression(n *ast.CallExpression) {
	if n == nil {
		p.write("nil")
		return
	}
	p.write(n.Function + "(")
	p.writeList(n.Arguments)
	p.write(")")
}

func (p *CodePrinter) VisitFunctionStatement(n *ast.FunctionStatement) {
	if n == nil {
		p.write("nil")
		return
	}
	p.write("fn " + n.Name + "(" + strings.Join(n.Parameters, ", ") + ") = ")
	p.printExpr(n.Body, 0, false)
}

func (p *CodePrinter) VisitVariableDeclaration(n *ast.VariableDeclaration) {
	if n == nil {
		p.write("nil")
		return
	}
	p.write("let " + n.Name + " = ")
	p.printExpr(n.Value, 0, false)
}

func (p *CodePrinter) VisitIfExpression(n *ast.IfExpression) {
	if n == nil {
		p.write("nil")
		return
	}
	p.write("if ")
	p.printExpr(n.Condition, 0, false)
	p.write(" then ")
	p.printExpr(n.Consequence, 0, false)
	p.write(" else ")
	p.printExpr(n.Alternative, 0, false)
}

func (p *CodePrinter) VisitLoopExpression(n *ast.LoopExpression) {
	if n == nil {
		p.write("nil")
		return
	}
	p.write("for " + n.Variable + " in ")
	if n.Range != nil {
		n.Range.Accept(p)
	} else {
		p.write("<???>")
	}
	p.write(" ")
	if block, ok := n.Body.(*ast.BlockStatement); ok {
		block.Accept(p)
		return
	}
	p.write("{ ")
	p.printExpr(n.Body, 0, false)
	p.write(" }")
}

func (p *CodePrinter) VisitRangeExpression(n *ast.RangeExpression) {
	if n == nil {
		p.write("nil")
		return
	}
	p.printExpr(n.First, postfixPrecedence, false)
	p.write("..")
	p.printExpr(n.Second, postfixPrecedence, false)
	p.write(" step ")
	p.printExpr(n.Step, postfixPrecedence, false)
}

func (p *CodePrinter) VisitAssignExpression(n *ast.AssignExpression) {
	if n == nil {
		p.write("nil")
		return
	}
	for _, name := range n.Names {
		p.write(name + " = ")
	}
	p.printExpr(n.Value, 0, false)
}

func (p *CodePrinter) VisitFactorialExpression(n *ast.FactorialExpression) {
	if n == nil {
		p.write("nil")
		return
	}
	p.printExpr(n.Operand, postfixPrecedence, false)
	p.write("!")
}

func (p *CodePrinter) VisitBlockStatement(n *ast.BlockStatement) {
	if n == nil {
		p.write("nil")
		return
	}
	if len(n.Statements) == 0 {
		p.write("{}")
		return
	}
	p.write("{")
	p.writeln()
	p.indent++
	for _, stmt := range n.Statements {
		p.writeIndent()
		p.printExpr(stmt, 0, false)
		p.writeln()
	}
	p.indent--
	p.writeIndent()
	p.write("}")
}

func (p *CodePrinter) VisitArrayLiteral(n *ast.ArrayLiteral) {
	if n == nil {
		p.write("nil")
		return
	}
	p.write("[")
	p.writeList(n.Elements)
	p.write("]")
}

func (p *CodePrinter) VisitIndexExpression(n *ast.IndexExpression) {
	if n == nil {
		p.write("nil")
		return
	}
	p.printExpr(n.Left, postfixPrecedence, false)
	p.write("[")
	p.printExpr(n.Index, 0, false)
	p.write("]")
}
