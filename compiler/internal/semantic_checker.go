package internal

import (
	"strings"
)

// SemanticChecker walks the ast once, filling the symbol table and recording every semantic
// diagnostic it finds. It never stops at the first one.
type SemanticChecker struct {
	table       *SymbolTable
	diagnostics []Diagnostic
	// currentFuncKind is IntFuncSymbolKind or VoidFuncSymbolKind inside a function body, otherwise
	// UnknownSymbolKind.
	currentFuncKind SymbolKind
	loopDepth       int
}

func NewSemanticChecker() *SemanticChecker {
	return &SemanticChecker{table: NewSymbolTable(), currentFuncKind: UnknownSymbolKind}
}

// Check runs a fresh checker over ast.
func Check(ast *CompUnitAst) []Diagnostic {
	return NewSemanticChecker().Check(ast)
}

func (checker *SemanticChecker) Check(ast *CompUnitAst) []Diagnostic {
	checker.table.EnterScope()
	checker.table.initStandardLibrary()
	if ast != nil {
		for _, decl := range ast.Declarations {
			checker.checkDeclaration(decl)
		}
	}
	checker.table.ExitScope()
	return checker.diagnostics
}

func (checker *SemanticChecker) SymbolTable() *SymbolTable {
	return checker.table
}

func (checker *SemanticChecker) Diagnostics() []Diagnostic {
	return checker.diagnostics
}

func (checker *SemanticChecker) addDiagnostic(line int, code string) {
	checker.diagnostics = append(checker.diagnostics, Diagnostic{Line: line, Code: code})
}

func (checker *SemanticChecker) checkDeclaration(decl DeclarationAst) {
	switch ast := decl.(type) {
	case *VarDeclareAst:
		checker.checkVarDeclare(ast)
	case *FuncDefAst:
		checker.checkFuncDef(ast)
	case *MainFuncDefAst:
		checker.checkMainFuncDef(ast)
	}
}

// The size and initializer are checked before the name is declared, so `int a = a;` refers to an
// outer a.
func (checker *SemanticChecker) checkVarDeclare(ast *VarDeclareAst) {
	for _, def := range ast.Defs {
		if def.ArraySize != nil {
			checker.checkExpression(def.ArraySize)
		}
		if def.Init != nil {
			checker.checkInitVal(def.Init)
		}
		symbol := NewSymbol(def.Name, valueSymbolKind(ast.IsConst, ast.IsStatic, def.IsArray()))
		if !checker.table.AddSymbol(symbol) {
			checker.addDiagnostic(def.Line(), RedefinedNameCode)
		}
	}
}

func (checker *SemanticChecker) checkInitVal(init *InitValAst) {
	if !init.IsList {
		checker.checkExpression(init.Single)
		return
	}
	for _, expr := range init.List {
		checker.checkExpression(expr)
	}
}

// The function symbol goes into the enclosing scope. Its parameters and the top level of its body
// share one new scope.
func (checker *SemanticChecker) checkFuncDef(ast *FuncDefAst) {
	funcKind := IntFuncSymbolKind
	if ast.ReturnTP == VoidReturnType {
		funcKind = VoidFuncSymbolKind
	}
	funcSymbol := NewSymbol(ast.Name, funcKind)
	bodyScopeID := checker.table.NextScopeID()
	for _, param := range ast.Params {
		paramSymbol := NewSymbol(param.Name, valueSymbolKind(false, false, param.IsArray))
		paramSymbol.ScopeID = bodyScopeID
		funcSymbol.Params = append(funcSymbol.Params, paramSymbol)
	}
	if !checker.table.AddSymbol(funcSymbol) {
		checker.addDiagnostic(ast.NameLine, RedefinedNameCode)
	}

	checker.table.EnterScope()
	for _, param := range ast.Params {
		if !checker.table.AddSymbol(NewSymbol(param.Name, valueSymbolKind(false, false, param.IsArray))) {
			checker.addDiagnostic(param.Line(), RedefinedNameCode)
		}
	}
	checker.checkFuncBody(funcKind, ast.Body)
	checker.table.ExitScope()
}

func (checker *SemanticChecker) checkMainFuncDef(ast *MainFuncDefAst) {
	mainSymbol := NewSymbol("main", IntFuncSymbolKind)
	mainSymbol.builtin = true
	checker.table.AddSymbol(mainSymbol)

	checker.table.EnterScope()
	checker.checkFuncBody(IntFuncSymbolKind, ast.Body)
	checker.table.ExitScope()
}

// checkFuncBody checks the body items in the current scope and requires a non-void body to end with a
// return.
func (checker *SemanticChecker) checkFuncBody(funcKind SymbolKind, body *BlockAst) {
	if body == nil {
		return
	}
	outerFuncKind := checker.currentFuncKind
	checker.currentFuncKind = funcKind
	checker.checkBlockItems(body)
	checker.currentFuncKind = outerFuncKind

	if funcKind != VoidFuncSymbolKind && !endsWithReturn(body) {
		checker.addDiagnostic(body.RightBraceLine, MissingReturnCode)
	}
}

func endsWithReturn(body *BlockAst) bool {
	if len(body.Items) == 0 {
		return false
	}
	_, isReturn := body.Items[len(body.Items)-1].(*ReturnStatementAst)
	return isReturn
}

func (checker *SemanticChecker) checkBlockItems(block *BlockAst) {
	for _, item := range block.Items {
		checker.checkStatement(item)
	}
}

func (checker *SemanticChecker) checkStatement(statement StatementAst) {
	switch stm := statement.(type) {
	case *VarDeclareAst:
		checker.checkVarDeclare(stm)
	case *BlockAst:
		checker.table.EnterScope()
		checker.checkBlockItems(stm)
		checker.table.ExitScope()
	case *IfStatementAst:
		checker.checkExpression(stm.Condition)
		checker.checkStatement(stm.Then)
		if stm.Else != nil {
			checker.checkStatement(stm.Else)
		}
	case *ForStatementAst:
		checker.checkForStatement(stm)
	case *AssignStatementAst:
		checker.checkAssign(stm)
	case *ReturnStatementAst:
		if stm.Value != nil {
			if checker.currentFuncKind == VoidFuncSymbolKind {
				checker.addDiagnostic(stm.Line(), VoidReturnValueCode)
			}
			checker.checkExpression(stm.Value)
		}
	case *BreakStatementAst, *ContinueStatementAst:
		if checker.loopDepth == 0 {
			checker.addDiagnostic(stm.Line(), BreakOutsideLoopCode)
		}
	case *PrintfStatementAst:
		if strings.Count(stm.Format, "%d") != len(stm.Args) {
			checker.addDiagnostic(stm.FormatLine, PrintfArgCountCode)
		}
		for _, arg := range stm.Args {
			checker.checkExpression(arg)
		}
	case *ExpressionStatementAst:
		if stm.Expr != nil {
			checker.checkExpression(stm.Expr)
		}
	}
}

// Only the body counts as inside the loop.
func (checker *SemanticChecker) checkForStatement(stm *ForStatementAst) {
	for _, assign := range stm.Init {
		checker.checkAssign(assign)
	}
	if stm.Condition != nil {
		checker.checkExpression(stm.Condition)
	}
	for _, assign := range stm.Update {
		checker.checkAssign(assign)
	}
	checker.loopDepth++
	checker.checkStatement(stm.Body)
	checker.loopDepth--
}

func (checker *SemanticChecker) checkAssign(stm *AssignStatementAst) {
	if symbol := checker.table.Lookup(stm.Target.Name); symbol != nil && symbol.Kind.IsConst() {
		checker.addDiagnostic(stm.Target.Line(), AssignToConstCode)
	}
	checker.checkExpression(stm.Target)
	checker.checkExpression(stm.Value)
}

func (checker *SemanticChecker) checkExpression(expression ExpressionAst) {
	switch expr := expression.(type) {
	case *BinaryExpressionAst:
		checker.checkExpression(expr.Left)
		checker.checkExpression(expr.Right)
	case *UnaryExpressionAst:
		checker.checkExpression(expr.Operand)
	case *LValAst:
		if checker.table.Lookup(expr.Name) == nil {
			checker.addDiagnostic(expr.Line(), UndefinedNameCode)
		}
		if expr.Index != nil {
			checker.checkExpression(expr.Index)
		}
	case *CallAst:
		checker.checkFuncCall(expr)
	}
}

// checkFuncCall checks the arguments first, then the callee. Argument types are only compared once the
// callee resolves and the counts agree, stopping at the first mismatch or undeterminable type.
func (checker *SemanticChecker) checkFuncCall(call *CallAst) {
	for _, arg := range call.Args {
		checker.checkExpression(arg)
	}
	funcSymbol := checker.table.Lookup(call.FuncName)
	if funcSymbol == nil || !funcSymbol.Kind.IsFunc() {
		checker.addDiagnostic(call.Line(), UndefinedNameCode)
		return
	}
	if len(call.Args) != len(funcSymbol.Params) {
		checker.addDiagnostic(call.Line(), ArgCountMismatchCode)
		return
	}
	for i, arg := range call.Args {
		argKind := checker.expressionKind(arg)
		if argKind == UnknownSymbolKind {
			break
		}
		if argKind.IsArray() != funcSymbol.Params[i].Kind.IsArray() {
			checker.addDiagnostic(call.Line(), ArgTypeMismatchCode)
			break
		}
	}
}

// expressionKind infers the type of an expression. Calls of void functions and names that do not
// resolve to a value have no type.
func (checker *SemanticChecker) expressionKind(expression ExpressionAst) SymbolKind {
	switch expr := expression.(type) {
	case *NumberLiteralAst, *BinaryExpressionAst, *UnaryExpressionAst:
		return IntSymbolKind
	case *LValAst:
		symbol := checker.table.Lookup(expr.Name)
		if symbol == nil || symbol.Kind.IsFunc() {
			return UnknownSymbolKind
		}
		if symbol.Kind.IsArray() && expr.Index != nil {
			return IntSymbolKind
		}
		return symbol.Kind
	case *CallAst:
		symbol := checker.table.Lookup(expr.FuncName)
		if symbol != nil && symbol.Kind == IntFuncSymbolKind {
			return IntSymbolKind
		}
	}
	return UnknownSymbolKind
}
