package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"sysyc/compiler/internal"
)

// A checking front end: reads one source file and writes either its symbol listing or its diagnostics.

var (
	input      = flag.String("i", "testfile.txt", "the source file to check")
	symbolOut  = flag.String("o", "symbol.txt", "where the symbol listing is saved when there is no error")
	errorOut   = flag.String("e", "error.txt", "where the diagnostics are saved when there are errors")
	toStdout   = flag.Bool("stdout", false, "print the result instead of saving it")
	emitTokens = flag.Bool("emit-tokens", false, "print the token listing")
	emitAst    = flag.Bool("emit-ast", false, "print the ast as json")
	repl       = flag.Bool("repl", false, "check programs typed at a prompt")
	verbose    = flag.Bool("v", false, "print the progress of each phase to stderr")
)

func main() {
	flag.Parse()
	compiler := &internal.Compiler{}
	if *verbose {
		compiler.Trace = os.Stderr
	}
	if *repl {
		os.Exit(runREPL(compiler))
	}
	os.Exit(checkFile(compiler, *input))
}

func checkFile(compiler *internal.Compiler, path string) int {
	f, err := os.Open(path)
	if err != nil {
		fmt.Printf("[Compiler]: failed to open %s, err: %v\n", path, err)
		return 1
	}
	defer f.Close()
	result, err := compiler.CompileReader(f)
	if err != nil {
		fmt.Printf("[Compiler]: failed to check %s, err: %v\n", path, err)
		return 1
	}
	if *emitTokens {
		if err = internal.WriteTokens(os.Stdout, result.Tokens); err != nil {
			fmt.Printf("[Compiler]: failed to print tokens, err: %v\n", err)
			return 1
		}
	}
	if *emitAst {
		if err = internal.WriteAstJSON(os.Stdout, result.Ast); err != nil {
			fmt.Printf("[Compiler]: failed to print ast, err: %v\n", err)
			return 1
		}
	}
	if *toStdout {
		writeLines(os.Stdout, result.Lines())
		return exitCode(result)
	}
	savePath := *symbolOut
	if result.HasErrors() {
		savePath = *errorOut
	}
	if err = saveTo(savePath, result.Lines()); err != nil {
		fmt.Printf("[Compiler]: failed to save to path: %s, err: %v\n", savePath, err)
		return 1
	}
	if result.HasErrors() {
		fmt.Printf("[Compiler]: %s: %d errors, saved to %s\n", path, len(result.Diagnostics), savePath)
	} else {
		fmt.Printf("[Compiler]: %s: ok, %d symbols saved to %s\n", path, len(result.SymbolLines()), savePath)
	}
	return exitCode(result)
}

func exitCode(result *internal.Result) int {
	if result.HasErrors() {
		return 1
	}
	return 0
}

func saveTo(path string, lines []string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	writeLines(f, lines)
	return f.Close()
}

func writeLines(w io.Writer, lines []string) {
	if len(lines) == 0 {
		return
	}
	fmt.Fprintln(w, strings.Join(lines, "\n"))
}
