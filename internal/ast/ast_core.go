package ast

import "fmt"

// Pos is a location in the tree document a node was decoded from.
// The zero Pos means the node was built in memory.
type Pos struct {
	Line   int
	Column int
}

func (p Pos) IsValid() bool { return p.Line > 0 }

func (p Pos) String() string {
	if !p.IsValid() {
		return "-"
	}
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// Node is the base interface for all syntax tree nodes.
// Nodes are immutable once built; function bodies are shared by pointer
// between the tree and the function table.
type Node interface {
	Accept(v Visitor)
	GetPos() Pos
}

// Statement is a Node that only declares something.
// A block may not end with a Statement.
type Statement interface {
	Node
	statementNode()
}

// Expression is a Node that produces a value.
type Expression interface {
	Node
	expressionNode()
}

// Visitor walks syntax trees. Every concrete node calls exactly one method.
type Visitor interface {
	VisitNumberLiteral(n *NumberLiteral)
	VisitIdentifier(n *Identifier)
	VisitInfixExpression(n *InfixExpression)
	VisitCallExpression(n *CallExpression)
	VisitFunctionStatement(n *FunctionStatement)
	VisitVariableDeclaration(n *VariableDeclaration)
	VisitIfExpression(n *IfExpression)
	VisitLoopExpression(n *LoopExpression)
	VisitRangeExpression(n *RangeExpression)
	VisitAssignExpression(n *AssignExpression)
	VisitFactorialExpression(n *FactorialExpression)
	VisitBlockStatement(n *BlockStatement)
	VisitArrayLiteral(n *ArrayLiteral)
	VisitIndexExpression(n *IndexExpression)
}

// IsDeclaration reports whether n is a variable or function declaration.
func IsDeclaration(n Node) bool {
	_, ok := n.(Statement)
	return ok
}
