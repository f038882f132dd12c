package logcon

// Script is the root of a parsed source file: a sequence of entity
// definitions plus any top-level function declarations. Only entity and
// func declarations are accepted at top level. Top-level functions are
// kept here but are not bound into entity instances, so entity code does
// not call them.
type Script struct {
	Entities  []*EntityDecl
	Functions []*FunctionDecl
}

// EntityDecl declares one scripted entity kind: its properties (typed
// initial values), named constants, local function declarations, and the
// lifecycle/custom event blocks that drive it.
type EntityDecl struct {
	Name       string
	Properties []*PropertyDecl
	Constants  []*ConstDecl
	Functions  []*FunctionDecl
	Events     []*EventBlock
	Line       int
}

type PropertyDecl struct {
	Name  string
	Value Expression
	Line  int
}

type ConstDecl struct {
	Name  string
	Value Expression
	Line  int
}

// EventBlock is a single `on <name>(param?) { ... }` handler. Name is one
// of the reserved lifecycle names ("create", "update", "destroy") or any
// other identifier, which is treated as a custom event raised via
// `trigger`/`emit`. Param is the optional bound-parameter identifier
// declared in the parentheses; for "update" it receives the frame delta
// alongside the always-available implicit "deltaTime" identifier, and for
// custom events it receives the first trigger argument, if any.
type EventBlock struct {
	Name  string
	Param string
	Body  []Statement
	Line  int
}

type FunctionDecl struct {
	Name   string
	Params []string
	Body   []Statement
	Line   int
}

// Statement is any executable AST node inside a block.
type Statement interface{ stmtNode() }

// VarStatement covers all four declaration keywords (var, let, global,
// const); Scope records which one so the interpreter can target the
// right namespace (entity-instance locals, the interpreter-wide globals
// map, or the entity's constants map).
type VarStatement struct {
	Scope string // "var", "let", "global", or "const"
	Name  string
	Value Expression
	Line  int
}

type AssignStatement struct {
	Target Expression // Identifier or IndexExpr or MemberExpr
	Op     TokenID    // TokenAssign, TokenPlusAssign, TokenMinusAssign, TokenStarAssign, TokenSlashAssign
	Value  Expression
	Line   int
}

type ExprStatement struct {
	Expr Expression
	Line int
}

type ReturnStatement struct {
	Value Expression // nil for bare `return`
	Line  int
}

type BreakStatement struct{ Line int }
type ContinueStatement struct{ Line int }

type IfStatement struct {
	Condition Expression
	Then      []Statement
	Else      []Statement // nil if no else clause; may itself be a single IfStatement for else-if chains
	Line      int
}

type WhileStatement struct {
	Condition Expression
	Body      []Statement
	Line      int
}

// ForStatement is LogCon's numeric range loop: `for IDENT = start end { }`.
// Step is not written in source; it defaults to 1, and its sign is
// derived from Start/End at run time (ascending if End >= Start,
// descending otherwise). The grammar's two consecutive expressions (start
// end, with no separating comma or keyword) are genuinely ambiguous when
// an operator-less expression boundary could be read either as the end of
// Start or the start of End — e.g. `for i = a -b { }` could mean
// `start=a, end=-b` or `start=(a - b)` with no end at all. The parser
// always takes the first reading (parse one full expression for Start,
// then one full expression for End) and does not attempt to disambiguate
// further; this is a known, intentionally unresolved limitation rather
// than a bug to silently paper over.
type ForStatement struct {
	Variable string
	Start    Expression
	End      Expression
	Body     []Statement
	Line     int
}

// TriggerStatement raises a custom event by name, either on the current
// entity (`trigger`) or is treated identically to `emit` — both keywords
// invoke the same custom-event dispatch. EventName evaluates to a string
// either from a STRING literal or an IDENT used as a bare event name.
type TriggerStatement struct {
	EventName Expression
	Args      []Expression
	Line      int
}

func (*VarStatement) stmtNode()      {}
func (*AssignStatement) stmtNode()   {}
func (*ExprStatement) stmtNode()     {}
func (*ReturnStatement) stmtNode()   {}
func (*BreakStatement) stmtNode()    {}
func (*ContinueStatement) stmtNode() {}
func (*IfStatement) stmtNode()       {}
func (*WhileStatement) stmtNode()    {}
func (*ForStatement) stmtNode()      {}
func (*TriggerStatement) stmtNode()  {}

// Expression is any value-producing AST node.
type Expression interface{ exprNode() }

type NumberLiteral struct {
	Value float64
	Line  int
}

type StringLiteral struct {
	Value string
	Line  int
}

type BoolLiteral struct {
	Value bool
	Line  int
}

type ArrayLiteral struct {
	Elements []Expression
	Line     int
}

type Identifier struct {
	Name string
	Line int
}

// MemberExpr accesses a field on an entity/GameObject, e.g. `self.x`.
type MemberExpr struct {
	Object Expression
	Name   string
	Line   int
}

// IndexExpr accesses an array element, e.g. `items[i]`.
type IndexExpr struct {
	Array Expression
	Index Expression
	Line  int
}

type CallExpr struct {
	Callee Expression // typically an Identifier naming the function
	Args   []Expression
	Line   int
}

type UnaryExpr struct {
	Op      TokenID // TokenMinus or TokenNot
	Operand Expression
	Line    int
}

type BinaryExpr struct {
	Op    TokenID
	Left  Expression
	Right Expression
	Line  int
}

func (*NumberLiteral) exprNode() {}
func (*StringLiteral) exprNode() {}
func (*BoolLiteral) exprNode()   {}
func (*ArrayLiteral) exprNode()  {}
func (*Identifier) exprNode()    {}
func (*MemberExpr) exprNode()    {}
func (*IndexExpr) exprNode()     {}
func (*CallExpr) exprNode()      {}
func (*UnaryExpr) exprNode()     {}
func (*BinaryExpr) exprNode()    {}
