package internal

// Binary operators grouped by priority, loosest first:
//
// LOrExp  -> LAndExp {'||' LAndExp}
// LAndExp -> EqExp {'&&' EqExp}
// EqExp   -> RelExp {('==' | '!=') RelExp}
// RelExp  -> AddExp {('<' | '>' | '<=' | '>=') AddExp}
// AddExp  -> MulExp {('+' | '-') MulExp}
// MulExp  -> UnaryExp {('*' | '/' | '%') UnaryExp}
//
// A lone '&' or '|' is parsed as '&&' or '||'; the tokenizer already reported it.
var binaryOpPriorities = []map[TokenType]OpCode{
	{OrTP: OrOpTP, ErrorOrTP: OrOpTP},
	{AndTP: AndOpTP, ErrorAndTP: AndOpTP},
	{EqualTP: EqualOpTP, NotEqualTP: NotEqualOpTP},
	{LessTP: LessOpTP, GreaterTP: GreaterOpTP, LessEqualTP: LessEqualOpTP, GreaterEqualTP: GreaterEqualOpTP},
	{AddTP: AddOpTP, MinusTP: MinusOpTP},
	{MultiplyTP: MultiplyOpTP, DivideTP: DivideOpTP, ModTP: ModOpTP},
}

const (
	condPriority = 0 // Cond -> LOrExp
	expPriority  = 4 // Exp  -> AddExp
)

var unaryOps = map[TokenType]OpCode{
	AddTP:   PositiveOpTP,
	MinusTP: NegationOpTP,
	NotTP:   NotOpTP,
}

// Exp -> AddExp
func (parser *Parser) parseExpression() ExpressionAst {
	return parser.parseBinaryExpression(expPriority)
}

// Cond -> LOrExp
func (parser *Parser) parseCondition() ExpressionAst {
	return parser.parseBinaryExpression(condPriority)
}

// parseBinaryExpression parses one operand of the next tighter priority, then folds operators of this
// priority to the left.
func (parser *Parser) parseBinaryExpression(priority int) ExpressionAst {
	if priority >= len(binaryOpPriorities) {
		return parser.parseUnaryExpression()
	}
	left := parser.parseBinaryExpression(priority + 1)
	for {
		op, match := binaryOpPriorities[priority][parser.peek(0)]
		if !match {
			return left
		}
		parser.stepForward()
		right := parser.parseBinaryExpression(priority + 1)
		left = &BinaryExpressionAst{node: node{line: left.Line()}, Op: op, Left: left, Right: right}
	}
}

// UnaryExp -> PrimaryExp | Ident '(' [FuncRParams] ')' | UnaryOp UnaryExp
func (parser *Parser) parseUnaryExpression() ExpressionAst {
	if parser.peek(0) == IdentifierTP && parser.peek(1) == LeftParentThesesTP {
		return parser.parseFuncCall()
	}
	if op, match := unaryOps[parser.peek(0)]; match {
		token := parser.stepForward()
		operand := parser.parseUnaryExpression()
		return &UnaryExpressionAst{node: node{line: token.line}, Op: op, Operand: operand}
	}
	return parser.parsePrimaryExpression()
}

// Ident '(' [Exp {',' Exp}] ')'
func (parser *Parser) parseFuncCall() *CallAst {
	nameToken := parser.stepForward()
	call := &CallAst{node: node{line: nameToken.line}, FuncName: nameToken.content}
	parser.stepForward()
	if parser.isExpressionStart() {
		call.Args = parser.parseExpressions()
	}
	parser.requireToken(RightParentThesesTP, MissingRightParentCode)
	return call
}

func (parser *Parser) parseExpressions() (exprs []ExpressionAst) {
	exprs = append(exprs, parser.parseExpression())
	for {
		if _, match := parser.expectToken(CommaTP, true); !match {
			return
		}
		exprs = append(exprs, parser.parseExpression())
	}
}

// PrimaryExp -> '(' Exp ')' | LVal | Number
// A parenthesized expression is returned as is, without a node of its own.
func (parser *Parser) parsePrimaryExpression() ExpressionAst {
	if _, match := parser.expectToken(LeftParentThesesTP, true); match {
		expr := parser.parseExpression()
		parser.requireToken(RightParentThesesTP, MissingRightParentCode)
		return expr
	}
	if token, match := parser.expectToken(IntegerTP, true); match {
		return &NumberLiteralAst{node: node{line: token.line}, Value: token.value}
	}
	return parser.parseLVal()
}

// LVal -> Ident ['[' Exp ']']
// The leading token is consumed whatever it is, which keeps every statement making progress.
func (parser *Parser) parseLVal() *LValAst {
	token := parser.stepForward()
	lVal := &LValAst{node: node{line: token.line}, Name: token.content}
	if _, match := parser.expectToken(LeftSquareBracketTP, true); match {
		lVal.Index = parser.parseExpression()
		parser.requireToken(RightSquareBracketTP, MissingRightSquareCode)
	}
	return lVal
}

// isExpressionStart reports whether the current token can begin an Exp.
func (parser *Parser) isExpressionStart() bool {
	switch parser.peek(0) {
	case IdentifierTP, LeftParentThesesTP, IntegerTP, AddTP, MinusTP, NotTP:
		return true
	}
	return false
}
