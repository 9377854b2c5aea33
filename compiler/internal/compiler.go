package internal

import (
	"fmt"
	"io"
	"io/ioutil"
	"strconv"
)

// Compiler runs the lexer, the parser and the semantic checker once each, in that order. Every phase
// sees the whole output of the previous one even when it reported diagnostics.
type Compiler struct {
	// Trace receives one progress line per phase when set.
	Trace io.Writer
}

// Result holds what the phases produced. Exactly one of the two listings is the final output: the
// diagnostics when there are any, the symbols otherwise.
type Result struct {
	Tokens      []*Token
	Ast         *CompUnitAst
	Diagnostics []Diagnostic
	Symbols     []*Symbol
}

func (compiler *Compiler) CompileReader(rd io.Reader) (*Result, error) {
	content, err := ioutil.ReadAll(rd)
	if err != nil {
		return nil, err
	}
	return compiler.Compile(string(content))
}

func (compiler *Compiler) Compile(source string) (*Result, error) {
	compiler.tracef("compiler: start lexer, %d bytes", len(source))
	tokens, lexDiagnostics := Scan(source)

	compiler.tracef("compiler: start parser, %d tokens", len(tokens))
	ast, parseDiagnostics, err := Parse(tokens)
	if err != nil {
		return nil, err
	}

	compiler.tracef("compiler: start semantic checker")
	checker := NewSemanticChecker()
	semanticDiagnostics := checker.Check(ast)

	result := &Result{
		Tokens:      tokens,
		Ast:         ast,
		Diagnostics: Aggregate(lexDiagnostics, parseDiagnostics, semanticDiagnostics),
		Symbols:     checker.SymbolTable().Symbols(),
	}
	compiler.tracef("compiler: %d lexical, %d syntax, %d semantic diagnostics, %d after merge",
		len(lexDiagnostics), len(parseDiagnostics), len(semanticDiagnostics), len(result.Diagnostics))
	return result, nil
}

func (compiler *Compiler) tracef(format string, args ...interface{}) {
	if compiler.Trace == nil {
		return
	}
	fmt.Fprintf(compiler.Trace, format+"\n", args...)
}

func (result *Result) HasErrors() bool {
	return len(result.Diagnostics) > 0
}

// Lines returns the final output: the diagnostic listing if there is any diagnostic, the symbol
// listing otherwise.
func (result *Result) Lines() []string {
	if result.HasErrors() {
		return result.DiagnosticLines()
	}
	return result.SymbolLines()
}

// DiagnosticLines renders one "<line> <code>" per diagnostic.
func (result *Result) DiagnosticLines() []string {
	lines := make([]string, 0, len(result.Diagnostics))
	for _, d := range result.Diagnostics {
		lines = append(lines, d.String())
	}
	return lines
}

// SymbolLines renders one "<scope id> <name> <kind>" per user declared symbol.
func (result *Result) SymbolLines() []string {
	lines := make([]string, 0, len(result.Symbols))
	for _, symbol := range result.Symbols {
		if symbol.IsBuiltin() {
			continue
		}
		lines = append(lines, strconv.Itoa(symbol.ScopeID)+" "+symbol.Name+" "+symbol.Kind.String())
	}
	return lines
}
