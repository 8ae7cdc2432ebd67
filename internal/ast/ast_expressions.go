package ast

// Operator is one of the binary operators of the language.
type Operator string

const (
	OpAdd            Operator = "+"
	OpSubtract       Operator = "-"
	OpMultiply       Operator = "*"
	OpDivide         Operator = "/"
	OpModulo         Operator = "%"
	OpPower          Operator = "^"
	OpEquals         Operator = "=="
	OpGreater        Operator = ">"
	OpLess           Operator = "<"
	OpGreaterOrEqual Operator = ">="
	OpLessOrEqual    Operator = "<="
)

// Operators lists every valid operator.
var Operators = []Operator{
	OpAdd, OpSubtract, OpMultiply, OpDivide, OpModulo, OpPower,
	OpEquals, OpGreater, OpLess, OpGreaterOrEqual, OpLessOrEqual,
}

// ParseOperator maps operator text to an Operator.
func ParseOperator(s string) (Operator, bool) {
	for _, op := range Operators {
		if string(op) == s {
			return op, true
		}
	}
	return "", false
}

// NumberLiteral is a real literal, or a pure imaginary one (2i) when Imaginary is set.
type NumberLiteral struct {
	Pos       Pos
	Value     float64
	Imaginary bool
}

func (nl *NumberLiteral) Accept(v Visitor) { v.VisitNumberLiteral(nl) }
func (nl *NumberLiteral) GetPos() Pos      { return nl.Pos }
func (nl *NumberLiteral) expressionNode()  {}

// Identifier is a variable reference.
type Identifier struct {
	Pos   Pos
	Value string
}

func (i *Identifier) Accept(v Visitor) { v.VisitIdentifier(i) }
func (i *Identifier) GetPos() Pos      { return i.Pos }
func (i *Identifier) expressionNode()  {}

// InfixExpression is a binary operation, e.g. a + b
type InfixExpression struct {
	Pos      Pos
	Left     Node
	Operator Operator
	Right    Node
}

func (ie *InfixExpression) Accept(v Visitor) { v.VisitInfixExpression(ie) }
func (ie *InfixExpression) GetPos() Pos      { return ie.Pos }
func (ie *InfixExpression) expressionNode()  {}

// CallExpression calls a builtin or user function by name.
type CallExpression struct {
	Pos       Pos
	Function  string
	Arguments []Node
}

func (ce *CallExpression) Accept(v Visitor) { v.VisitCallExpression(ce) }
func (ce *CallExpression) GetPos() Pos      { return ce.Pos }
func (ce *CallExpression) expressionNode()  {}

// FunctionStatement declares a user function.
// fn name(a, b) = body
type FunctionStatement struct {
	Pos        Pos
	Name       string
	Parameters []string
	Body       Node
}

func (fs *FunctionStatement) Accept(v Visitor) { v.VisitFunctionStatement(fs) }
func (fs *FunctionStatement) GetPos() Pos      { return fs.Pos }
func (fs *FunctionStatement) statementNode()   {}

// VariableDeclaration declares a variable.
// let name = value
type VariableDeclaration struct {
	Pos   Pos
	Name  string
	Value Node
}

func (vd *VariableDeclaration) Accept(v Visitor) { v.VisitVariableDeclaration(vd) }
func (vd *VariableDeclaration) GetPos() Pos      { return vd.Pos }
func (vd *VariableDeclaration) statementNode()   {}

// IfExpression selects one of two branches.
// Both branches are required.
type IfExpression struct {
	Pos         Pos
	Condition   Node
	Consequence Node
	Alternative Node
}

func (ie *IfExpression) Accept(v Visitor) { v.VisitIfExpression(ie) }
func (ie *IfExpression) GetPos() Pos      { return ie.Pos }
func (ie *IfExpression) expressionNode()  {}

// LoopExpression is the summation loop.
// for i in first..second step s { body }
type LoopExpression struct {
	Pos      Pos
	Variable string
	Range    *RangeExpression
	Body     Node
}

func (le *LoopExpression) Accept(v Visitor) { v.VisitLoopExpression(le) }
func (le *LoopExpression) GetPos() Pos      { return le.Pos }
func (le *LoopExpression) expressionNode()  {}

// RangeExpression describes the bounds of a loop. It only appears as LoopExpression.Range.
type RangeExpression struct {
	Pos    Pos
	First  Node
	Second Node
	Step   Node
}

func (re *RangeExpression) Accept(v Visitor) { v.VisitRangeExpression(re) }
func (re *RangeExpression) GetPos() Pos      { return re.Pos }
func (re *RangeExpression) expressionNode()  {}

// AssignExpression assigns one value to one or more names.
// a = b = value
type AssignExpression struct {
	Pos   Pos
	Names []string
	Value Node
}

func (ae *AssignExpression) Accept(v Visitor) { v.VisitAssignExpression(ae) }
func (ae *AssignExpression) GetPos() Pos      { return ae.Pos }
func (ae *AssignExpression) expressionNode()  {}

// FactorialExpression is a postfix factorial, e.g. n!
type FactorialExpression struct {
	Pos     Pos
	Operand Node
}

func (fe *FactorialExpression) Accept(v Visitor) { v.VisitFactorialExpression(fe) }
func (fe *FactorialExpression) GetPos() Pos      { return fe.Pos }
func (fe *FactorialExpression) expressionNode()  {}

// BlockStatement is a sequence of nodes; its value is the value of the last one.
type BlockStatement struct {
	Pos        Pos
	Statements []Node
}

func (bs *BlockStatement) Accept(v Visitor) { v.VisitBlockStatement(bs) }
func (bs *BlockStatement) GetPos() Pos      { return bs.Pos }
func (bs *BlockStatement) expressionNode()  {}

// ArrayLiteral builds an array, e.g. [1, vec(1, 2), [3]]
type ArrayLiteral struct {
	Pos      Pos
	Elements []Node
}

func (al *ArrayLiteral) Accept(v Visitor) { v.VisitArrayLiteral(al) }
func (al *ArrayLiteral) GetPos() Pos      { return al.Pos }
func (al *ArrayLiteral) expressionNode()  {}

// IndexExpression represents indexing, e.g. arr[i]
type IndexExpression struct {
	Pos   Pos
	Left  Node
	Index Node
}

func (ie *IndexExpression) Accept(v Visitor) { v.VisitIndexExpression(ie) }
func (ie *IndexExpression) GetPos() Pos      { return ie.Pos }
func (ie *IndexExpression) expressionNode()  {}
