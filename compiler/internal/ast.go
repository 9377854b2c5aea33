package internal

// In this file, we defined all ast of the language according to its grammar:
//
// CompUnit    -> {Decl} {FuncDef} MainFuncDef
// Decl        -> ConstDecl | VarDecl
// ConstDecl   -> 'const' 'int' ConstDef {',' ConstDef} ';'
// ConstDef    -> Ident ['[' ConstExp ']'] '=' ConstInitVal
// VarDecl     -> ['static'] 'int' VarDef {',' VarDef} ';'
// VarDef      -> Ident ['[' ConstExp ']'] ['=' InitVal]
// FuncDef     -> ('void' | 'int') Ident '(' [FuncFParams] ')' Block
// MainFuncDef -> 'int' 'main' '(' ')' Block
// FuncFParam  -> 'int' Ident ['[' ']']
// Block       -> '{' {Decl | Stmt} '}'
//
// Each category (declarations, statements, expressions) is a closed set: the interfaces carry an
// unexported marker method, so only the types in this file satisfy them.

type node struct {
	line int
}

// Line is the line of the node's leading token.
func (n node) Line() int {
	return n.line
}

type DeclarationAst interface {
	Line() int
	declarationNode()
}

type StatementAst interface {
	Line() int
	statementNode()
}

type ExpressionAst interface {
	Line() int
	expressionNode()
}

type CompUnitAst struct {
	Declarations []DeclarationAst
}

// VarDeclareAst is both a top level declaration and a block item.
type VarDeclareAst struct {
	node
	IsConst  bool
	IsStatic bool
	Defs     []*VarDefAst
}

type VarDefAst struct {
	node
	Name string
	// ArraySize is nil for a scalar.
	ArraySize ExpressionAst
	// Init is nil when there is no initializer.
	Init *InitValAst
}

func (def *VarDefAst) IsArray() bool {
	return def.ArraySize != nil
}

// InitValAst is either a single expression or a braced list.
type InitValAst struct {
	node
	IsList bool
	Single ExpressionAst
	List   []ExpressionAst
}

type FuncReturnType int

const (
	IntReturnType FuncReturnType = iota
	VoidReturnType
)

func (t FuncReturnType) String() string {
	if t == VoidReturnType {
		return "void"
	}
	return "int"
}

type FuncDefAst struct {
	node
	ReturnTP FuncReturnType
	Name     string
	NameLine int
	Params   []*FuncParamAst
	Body     *BlockAst
}

type FuncParamAst struct {
	node
	Name    string
	IsArray bool
}

type MainFuncDefAst struct {
	node
	Body *BlockAst
}

func (*VarDeclareAst) declarationNode()  {}
func (*FuncDefAst) declarationNode()     {}
func (*MainFuncDefAst) declarationNode() {}

type BlockAst struct {
	node
	Items []StatementAst
	// RightBraceLine anchors "missing return" diagnostics.
	RightBraceLine int
}

type IfStatementAst struct {
	node
	Condition ExpressionAst
	Then      StatementAst
	// Else is nil without an else branch.
	Else StatementAst
}

type ForStatementAst struct {
	node
	Init      []*AssignStatementAst
	Condition ExpressionAst
	Update    []*AssignStatementAst
	Body      StatementAst
}

type AssignStatementAst struct {
	node
	Target *LValAst
	Value  ExpressionAst
}

type ReturnStatementAst struct {
	node
	// Value is nil for a bare return.
	Value ExpressionAst
}

type BreakStatementAst struct {
	node
}

type ContinueStatementAst struct {
	node
}

type PrintfStatementAst struct {
	node
	// Format keeps the quotes and escapes as written.
	Format     string
	FormatLine int
	Args       []ExpressionAst
}

// ExpressionStatementAst with a nil Expr is the empty statement.
type ExpressionStatementAst struct {
	node
	Expr ExpressionAst
}

func (*VarDeclareAst) statementNode()          {}
func (*BlockAst) statementNode()               {}
func (*IfStatementAst) statementNode()         {}
func (*ForStatementAst) statementNode()        {}
func (*AssignStatementAst) statementNode()     {}
func (*ReturnStatementAst) statementNode()     {}
func (*BreakStatementAst) statementNode()      {}
func (*ContinueStatementAst) statementNode()   {}
func (*PrintfStatementAst) statementNode()     {}
func (*ExpressionStatementAst) statementNode() {}

type OpCode int

const (
	OrOpTP OpCode = iota
	AndOpTP
	EqualOpTP
	NotEqualOpTP
	LessOpTP
	LessEqualOpTP
	GreaterOpTP
	GreaterEqualOpTP
	AddOpTP
	MinusOpTP
	MultiplyOpTP
	DivideOpTP
	ModOpTP

	// Unary Op
	PositiveOpTP
	NegationOpTP
	NotOpTP
)

var opNames = [...]string{
	OrOpTP:           "||",
	AndOpTP:          "&&",
	EqualOpTP:        "==",
	NotEqualOpTP:     "!=",
	LessOpTP:         "<",
	LessEqualOpTP:    "<=",
	GreaterOpTP:      ">",
	GreaterEqualOpTP: ">=",
	AddOpTP:          "+",
	MinusOpTP:        "-",
	MultiplyOpTP:     "*",
	DivideOpTP:       "/",
	ModOpTP:          "%",
	PositiveOpTP:     "+",
	NegationOpTP:     "-",
	NotOpTP:          "!",
}

func (op OpCode) String() string {
	if op >= 0 && int(op) < len(opNames) {
		return opNames[op]
	}
	return ""
}

type BinaryExpressionAst struct {
	node
	Op    OpCode
	Left  ExpressionAst
	Right ExpressionAst
}

type UnaryExpressionAst struct {
	node
	Op      OpCode
	Operand ExpressionAst
}

type NumberLiteralAst struct {
	node
	Value int
}

// LValAst names a scalar variable, a whole array, or one array element when Index is set.
type LValAst struct {
	node
	Name  string
	Index ExpressionAst
}

type CallAst struct {
	node
	FuncName string
	Args     []ExpressionAst
}

func (*BinaryExpressionAst) expressionNode() {}
func (*UnaryExpressionAst) expressionNode()  {}
func (*NumberLiteralAst) expressionNode()    {}
func (*LValAst) expressionNode()             {}
func (*CallAst) expressionNode()             {}
