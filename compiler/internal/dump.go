package internal

import (
	"bufio"
	"encoding/json"
	"io"
)

// WriteTokens writes one "KIND content" line per token, without the final EOF.
func WriteTokens(w io.Writer, tokens []*Token) error {
	buf := bufio.NewWriter(w)
	for _, token := range tokens {
		if token.tp == EOFTP {
			break
		}
		if _, err := buf.WriteString(token.String() + "\n"); err != nil {
			return err
		}
	}
	return buf.Flush()
}

// WriteAstJSON writes ast as indented json. Each node becomes an object tagged with its "kind".
func WriteAstJSON(w io.Writer, ast *CompUnitAst) error {
	encoder := json.NewEncoder(w)
	encoder.SetEscapeHTML(false)
	encoder.SetIndent("", "  ")
	return encoder.Encode(compUnitToJSON(ast))
}

type jsonNode map[string]interface{}

func compUnitToJSON(ast *CompUnitAst) jsonNode {
	var decls []jsonNode
	if ast != nil {
		for _, decl := range ast.Declarations {
			decls = append(decls, declarationToJSON(decl))
		}
	}
	return jsonNode{"kind": "CompUnit", "declarations": decls}
}

func declarationToJSON(decl DeclarationAst) jsonNode {
	switch ast := decl.(type) {
	case *VarDeclareAst:
		return varDeclareToJSON(ast)
	case *FuncDefAst:
		var params []jsonNode
		for _, param := range ast.Params {
			params = append(params, jsonNode{"kind": "FuncParam", "line": param.Line(), "name": param.Name,
				"isArray": param.IsArray})
		}
		return jsonNode{"kind": "FuncDef", "line": ast.Line(), "returnType": ast.ReturnTP.String(),
			"name": ast.Name, "params": params, "body": statementToJSON(ast.Body)}
	case *MainFuncDefAst:
		return jsonNode{"kind": "MainFuncDef", "line": ast.Line(), "body": statementToJSON(ast.Body)}
	}
	return nil
}

func varDeclareToJSON(ast *VarDeclareAst) jsonNode {
	var defs []jsonNode
	for _, def := range ast.Defs {
		defNode := jsonNode{"kind": "VarDef", "line": def.Line(), "name": def.Name}
		if def.ArraySize != nil {
			defNode["arraySize"] = expressionToJSON(def.ArraySize)
		}
		if def.Init != nil {
			if def.Init.IsList {
				defNode["init"] = expressionsToJSON(def.Init.List)
			} else {
				defNode["init"] = expressionToJSON(def.Init.Single)
			}
		}
		defs = append(defs, defNode)
	}
	return jsonNode{"kind": "VarDecl", "line": ast.Line(), "const": ast.IsConst, "static": ast.IsStatic,
		"defs": defs}
}

func statementToJSON(statement StatementAst) jsonNode {
	switch stm := statement.(type) {
	case *VarDeclareAst:
		return varDeclareToJSON(stm)
	case *BlockAst:
		if stm == nil {
			return nil
		}
		var items []jsonNode
		for _, item := range stm.Items {
			items = append(items, statementToJSON(item))
		}
		return jsonNode{"kind": "Block", "line": stm.Line(), "rightBraceLine": stm.RightBraceLine, "items": items}
	case *IfStatementAst:
		ret := jsonNode{"kind": "If", "line": stm.Line(), "cond": expressionToJSON(stm.Condition),
			"then": statementToJSON(stm.Then)}
		if stm.Else != nil {
			ret["else"] = statementToJSON(stm.Else)
		}
		return ret
	case *ForStatementAst:
		ret := jsonNode{"kind": "For", "line": stm.Line(), "init": assignsToJSON(stm.Init),
			"update": assignsToJSON(stm.Update), "body": statementToJSON(stm.Body)}
		if stm.Condition != nil {
			ret["cond"] = expressionToJSON(stm.Condition)
		}
		return ret
	case *AssignStatementAst:
		return assignToJSON(stm)
	case *ReturnStatementAst:
		ret := jsonNode{"kind": "Return", "line": stm.Line()}
		if stm.Value != nil {
			ret["value"] = expressionToJSON(stm.Value)
		}
		return ret
	case *BreakStatementAst:
		return jsonNode{"kind": "Break", "line": stm.Line()}
	case *ContinueStatementAst:
		return jsonNode{"kind": "Continue", "line": stm.Line()}
	case *PrintfStatementAst:
		return jsonNode{"kind": "Printf", "line": stm.Line(), "format": stm.Format,
			"args": expressionsToJSON(stm.Args)}
	case *ExpressionStatementAst:
		ret := jsonNode{"kind": "ExpStmt", "line": stm.Line()}
		if stm.Expr != nil {
			ret["expr"] = expressionToJSON(stm.Expr)
		}
		return ret
	}
	return nil
}

func assignToJSON(stm *AssignStatementAst) jsonNode {
	return jsonNode{"kind": "Assign", "line": stm.Line(), "target": expressionToJSON(stm.Target),
		"value": expressionToJSON(stm.Value)}
}

func assignsToJSON(assigns []*AssignStatementAst) (ret []jsonNode) {
	for _, assign := range assigns {
		ret = append(ret, assignToJSON(assign))
	}
	return
}

func expressionsToJSON(exprs []ExpressionAst) (ret []jsonNode) {
	for _, expr := range exprs {
		ret = append(ret, expressionToJSON(expr))
	}
	return
}

func expressionToJSON(expression ExpressionAst) jsonNode {
	switch expr := expression.(type) {
	case *BinaryExpressionAst:
		return jsonNode{"kind": "Binary", "line": expr.Line(), "op": expr.Op.String(),
			"left": expressionToJSON(expr.Left), "right": expressionToJSON(expr.Right)}
	case *UnaryExpressionAst:
		return jsonNode{"kind": "Unary", "line": expr.Line(), "op": expr.Op.String(),
			"operand": expressionToJSON(expr.Operand)}
	case *NumberLiteralAst:
		return jsonNode{"kind": "Number", "line": expr.Line(), "value": expr.Value}
	case *LValAst:
		ret := jsonNode{"kind": "LVal", "line": expr.Line(), "name": expr.Name}
		if expr.Index != nil {
			ret["index"] = expressionToJSON(expr.Index)
		}
		return ret
	case *CallAst:
		return jsonNode{"kind": "Call", "line": expr.Line(), "name": expr.FuncName,
			"args": expressionsToJSON(expr.Args)}
	}
	return nil
}
