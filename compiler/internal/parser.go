package internal

import (
	"errors"
	"fmt"
)

// Parser is a recursive descent parser. A missing ';', ')' or ']' never stops it: the parser records a
// diagnostic at the line of the previous token and continues as if the token were there.
type Parser struct {
	stream      *TokenStream
	diagnostics []Diagnostic
}

// Parse builds the ast of a whole compilation unit. It only fails when tokens is empty.
func Parse(tokens []*Token) (*CompUnitAst, []Diagnostic, error) {
	parser := &Parser{}
	ast, err := parser.Parse(tokens)
	if err != nil {
		return nil, nil, err
	}
	return ast, parser.diagnostics, nil
}

func (parser *Parser) Parse(tokens []*Token) (*CompUnitAst, error) {
	parser.reset()
	if len(tokens) == 0 {
		return nil, parser.makeError("cannot parse an empty token stream")
	}
	parser.stream = NewTokenStream(tokens)
	return parser.parseCompUnit(), nil
}

func (parser *Parser) Diagnostics() []Diagnostic {
	return parser.diagnostics
}

func (parser *Parser) reset() {
	parser.stream, parser.diagnostics = nil, nil
}

// CompUnit -> {Decl} {FuncDef} MainFuncDef
// A token that starts none of them is skipped.
func (parser *Parser) parseCompUnit() *CompUnitAst {
	unit := &CompUnitAst{}
	for parser.hasRemainTokens() {
		if parser.peek(0) == IntTP && parser.peek(1) == MainTP {
			break
		}
		switch {
		case parser.isFuncDefStart():
			unit.Declarations = append(unit.Declarations, parser.parseFuncDef())
		case parser.peek(0) == ConstTP || parser.peek(0) == StaticTP || parser.peek(0) == IntTP:
			unit.Declarations = append(unit.Declarations, parser.parseVarDeclare())
		default:
			parser.stepForward()
		}
	}
	if parser.peek(0) == IntTP && parser.peek(1) == MainTP {
		unit.Declarations = append(unit.Declarations, parser.parseMainFuncDef())
	}
	return unit
}

func (parser *Parser) isFuncDefStart() bool {
	return (parser.peek(0) == VoidTP || parser.peek(0) == IntTP) && parser.peek(1) == IdentifierTP &&
		parser.peek(2) == LeftParentThesesTP
}

// ConstDecl -> 'const' 'int' ConstDef {',' ConstDef} ';'
// VarDecl   -> ['static'] 'int' VarDef {',' VarDef} ';'
func (parser *Parser) parseVarDeclare() *VarDeclareAst {
	ast := &VarDeclareAst{node: parser.currentNode()}
	if _, match := parser.expectToken(ConstTP, true); match {
		ast.IsConst = true
	} else if _, match = parser.expectToken(StaticTP, true); match {
		ast.IsStatic = true
	}
	parser.expectToken(IntTP, true)
	ast.Defs = append(ast.Defs, parser.parseVarDef())
	for {
		if _, match := parser.expectToken(CommaTP, true); !match {
			break
		}
		ast.Defs = append(ast.Defs, parser.parseVarDef())
	}
	parser.requireToken(SemiColonTP, MissingSemiColonCode)
	return ast
}

// VarDef -> Ident ['[' ConstExp ']'] ['=' InitVal]
func (parser *Parser) parseVarDef() *VarDefAst {
	token := parser.stepForward()
	def := &VarDefAst{node: node{line: token.line}, Name: token.content}
	if _, match := parser.expectToken(LeftSquareBracketTP, true); match {
		def.ArraySize = parser.parseExpression()
		parser.requireToken(RightSquareBracketTP, MissingRightSquareCode)
	}
	if _, match := parser.expectToken(AssignTP, true); match {
		def.Init = parser.parseInitVal()
	}
	return def
}

// InitVal -> Exp | '{' [Exp {',' Exp}] '}'
func (parser *Parser) parseInitVal() *InitValAst {
	init := &InitValAst{node: parser.currentNode()}
	if _, match := parser.expectToken(LeftBraceTP, true); !match {
		init.Single = parser.parseExpression()
		return init
	}
	init.IsList = true
	if _, match := parser.expectToken(RightBraceTP, true); match {
		return init
	}
	init.List = append(init.List, parser.parseExpression())
	for {
		if _, match := parser.expectToken(CommaTP, true); !match {
			break
		}
		init.List = append(init.List, parser.parseExpression())
	}
	parser.expectToken(RightBraceTP, true)
	return init
}

// FuncDef -> ('void' | 'int') Ident '(' [FuncFParams] ')' Block
func (parser *Parser) parseFuncDef() *FuncDefAst {
	funcTypeToken := parser.stepForward()
	ast := &FuncDefAst{node: node{line: funcTypeToken.line}, ReturnTP: IntReturnType}
	if funcTypeToken.tp == VoidTP {
		ast.ReturnTP = VoidReturnType
	}
	nameToken := parser.stepForward()
	ast.Name, ast.NameLine = nameToken.content, nameToken.line
	parser.expectToken(LeftParentThesesTP, true)
	if parser.peek(0) == IntTP {
		ast.Params = parser.parseFuncParamList()
	}
	parser.requireToken(RightParentThesesTP, MissingRightParentCode)
	ast.Body = parser.parseBlock()
	return ast
}

// FuncFParams -> FuncFParam {',' FuncFParam}
// FuncFParam  -> 'int' Ident ['[' ']']
func (parser *Parser) parseFuncParamList() (params []*FuncParamAst) {
	params = append(params, parser.parseFuncParam())
	for {
		if _, match := parser.expectToken(CommaTP, true); !match {
			return
		}
		params = append(params, parser.parseFuncParam())
	}
}

func (parser *Parser) parseFuncParam() *FuncParamAst {
	parser.expectToken(IntTP, true)
	token := parser.stepForward()
	param := &FuncParamAst{node: node{line: token.line}, Name: token.content}
	if _, match := parser.expectToken(LeftSquareBracketTP, true); match {
		param.IsArray = true
		parser.requireToken(RightSquareBracketTP, MissingRightSquareCode)
	}
	return param
}

// MainFuncDef -> 'int' 'main' '(' ')' Block
func (parser *Parser) parseMainFuncDef() *MainFuncDefAst {
	ast := &MainFuncDefAst{node: parser.currentNode()}
	parser.stepForward()
	parser.stepForward()
	parser.expectToken(LeftParentThesesTP, true)
	parser.requireToken(RightParentThesesTP, MissingRightParentCode)
	ast.Body = parser.parseBlock()
	return ast
}

// Block -> '{' {Decl | Stmt} '}'
// The loop also stops at the end of input, so an unclosed block still terminates.
func (parser *Parser) parseBlock() *BlockAst {
	block := &BlockAst{node: parser.currentNode()}
	parser.expectToken(LeftBraceTP, true)
	for parser.hasRemainTokens() && parser.peek(0) != RightBraceTP {
		block.Items = append(block.Items, parser.parseBlockItem())
	}
	block.RightBraceLine = parser.stream.Current().line
	parser.expectToken(RightBraceTP, true)
	return block
}

func (parser *Parser) parseBlockItem() StatementAst {
	switch parser.peek(0) {
	case ConstTP, IntTP, StaticTP:
		return parser.parseVarDeclare()
	}
	return parser.parseStatement()
}

func (parser *Parser) parseStatement() StatementAst {
	switch parser.peek(0) {
	case LeftBraceTP:
		return parser.parseBlock()
	case IfTP:
		return parser.parseIfStatement()
	case ForTP:
		return parser.parseForStatement()
	case BreakTP:
		stm := &BreakStatementAst{node: parser.currentNode()}
		parser.stepForward()
		parser.requireToken(SemiColonTP, MissingSemiColonCode)
		return stm
	case ContinueTP:
		stm := &ContinueStatementAst{node: parser.currentNode()}
		parser.stepForward()
		parser.requireToken(SemiColonTP, MissingSemiColonCode)
		return stm
	case ReturnTP:
		return parser.parseReturnStatement()
	case PrintfTP:
		return parser.parsePrintfStatement()
	case SemiColonTP:
		stm := &ExpressionStatementAst{node: parser.currentNode()}
		parser.stepForward()
		return stm
	}
	if parser.isAssignStatement() {
		stm := parser.parseAssign()
		parser.requireToken(SemiColonTP, MissingSemiColonCode)
		return stm
	}
	stm := &ExpressionStatementAst{node: parser.currentNode()}
	stm.Expr = parser.parseExpression()
	parser.requireToken(SemiColonTP, MissingSemiColonCode)
	return stm
}

// isAssignStatement scans forward for an '=' before the next ';' or the end of input.
func (parser *Parser) isAssignStatement() bool {
	for i := 0; ; i++ {
		switch parser.peek(i) {
		case AssignTP:
			return true
		case SemiColonTP, EOFTP:
			return false
		}
	}
}

// if '(' Cond ')' Stmt ['else' Stmt]
func (parser *Parser) parseIfStatement() *IfStatementAst {
	stm := &IfStatementAst{node: parser.currentNode()}
	parser.stepForward()
	parser.expectToken(LeftParentThesesTP, true)
	stm.Condition = parser.parseCondition()
	parser.requireToken(RightParentThesesTP, MissingRightParentCode)
	stm.Then = parser.parseStatement()
	if _, match := parser.expectToken(ElseTP, true); match {
		stm.Else = parser.parseStatement()
	}
	return stm
}

// for '(' [ForStmt] ';' [Cond] ';' [ForStmt] ')' Stmt
func (parser *Parser) parseForStatement() *ForStatementAst {
	stm := &ForStatementAst{node: parser.currentNode()}
	parser.stepForward()
	parser.expectToken(LeftParentThesesTP, true)
	if parser.peek(0) == IdentifierTP {
		stm.Init = parser.parseForAssigns()
	}
	parser.requireToken(SemiColonTP, MissingSemiColonCode)
	if parser.isExpressionStart() {
		stm.Condition = parser.parseCondition()
	}
	parser.requireToken(SemiColonTP, MissingSemiColonCode)
	if parser.peek(0) == IdentifierTP {
		stm.Update = parser.parseForAssigns()
	}
	parser.requireToken(RightParentThesesTP, MissingRightParentCode)
	stm.Body = parser.parseStatement()
	return stm
}

// ForStmt -> LVal '=' Exp {',' LVal '=' Exp}
func (parser *Parser) parseForAssigns() (assigns []*AssignStatementAst) {
	assigns = append(assigns, parser.parseAssign())
	for {
		if _, match := parser.expectToken(CommaTP, true); !match {
			return
		}
		assigns = append(assigns, parser.parseAssign())
	}
}

// LVal '=' Exp, without the trailing ';'.
func (parser *Parser) parseAssign() *AssignStatementAst {
	stm := &AssignStatementAst{node: parser.currentNode()}
	stm.Target = parser.parseLVal()
	parser.expectToken(AssignTP, true)
	stm.Value = parser.parseExpression()
	return stm
}

// return [Exp] ';'
func (parser *Parser) parseReturnStatement() *ReturnStatementAst {
	stm := &ReturnStatementAst{node: parser.currentNode()}
	parser.stepForward()
	if parser.isExpressionStart() {
		stm.Value = parser.parseExpression()
	}
	parser.requireToken(SemiColonTP, MissingSemiColonCode)
	return stm
}

// printf '(' StringConst {',' Exp} ')' ';'
func (parser *Parser) parsePrintfStatement() *PrintfStatementAst {
	stm := &PrintfStatementAst{node: parser.currentNode()}
	parser.stepForward()
	parser.expectToken(LeftParentThesesTP, true)
	stm.FormatLine = parser.stream.Current().line
	if format, match := parser.expectToken(StringTP, true); match {
		stm.Format, stm.FormatLine = format.content, format.line
	}
	for {
		if _, match := parser.expectToken(CommaTP, true); !match {
			break
		}
		stm.Args = append(stm.Args, parser.parseExpression())
	}
	parser.requireToken(RightParentThesesTP, MissingRightParentCode)
	parser.requireToken(SemiColonTP, MissingSemiColonCode)
	return stm
}

func (parser *Parser) currentNode() node {
	return node{line: parser.stream.Current().line}
}

func (parser *Parser) peek(k int) TokenType {
	return parser.stream.Peek(k)
}

// stepForward consumes the current token whatever it is and returns it.
func (parser *Parser) stepForward() *Token {
	return parser.stream.Advance()
}

func (parser *Parser) hasRemainTokens() bool {
	return !parser.stream.AtEOF()
}

// expectToken returns the current token if it has the expected type, consuming it when walk is set.
func (parser *Parser) expectToken(expectedTokenTp TokenType, walk bool) (*Token, bool) {
	token := parser.stream.Current()
	if token.tp != expectedTokenTp {
		return nil, false
	}
	if walk {
		parser.stepForward()
	}
	return token, true
}

// requireToken consumes the expected token. When it is missing nothing is consumed and a diagnostic
// with code is recorded at the line of the previous token.
func (parser *Parser) requireToken(expectedTokenTp TokenType, code string) bool {
	if _, match := parser.expectToken(expectedTokenTp, true); match {
		return true
	}
	parser.diagnostics = append(parser.diagnostics, Diagnostic{Line: parser.stream.Previous().line, Code: code})
	return false
}

func (parser *Parser) makeError(format string, args ...interface{}) error {
	return errors.New(fmt.Sprintf("parser: "+format, args...))
}
