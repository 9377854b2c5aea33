package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/peterh/liner"

	"sysyc/compiler/internal"
)

const (
	historyFile = ".sysyc_history"
	promptMain  = "sysyc> "
	promptCont  = "   ... "
)

// runREPL reads whole programs at a prompt and prints the result of checking each one.
func runREPL(compiler *internal.Compiler) int {
	fmt.Println("sysyc: type a program ending with its main function, :quit to exit")

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}

	for {
		src, ok := readProgram(ln)
		if !ok {
			fmt.Println()
			break
		}
		trimmed := strings.TrimSpace(src)
		if trimmed == "" {
			continue
		}
		if trimmed == ":quit" || trimmed == ":q" {
			break
		}
		result, err := compiler.Compile(src)
		if err != nil {
			fmt.Printf("[Compiler]: %v\n", err)
			continue
		}
		for _, line := range result.Lines() {
			fmt.Println(line)
		}
		ln.AppendHistory(strings.ReplaceAll(src, "\n", " "))
	}

	if f, err := os.Create(histPath); err == nil {
		_, _ = ln.WriteHistory(f)
		_ = f.Close()
	}
	return 0
}

// readProgram accumulates lines until they look like a complete program. It returns false on EOF.
func readProgram(ln *liner.State) (string, bool) {
	var b strings.Builder
	for {
		prompt := promptMain
		if b.Len() > 0 {
			prompt = promptCont
		}
		line, err := ln.Prompt(prompt)
		if errors.Is(err, io.EOF) {
			return "", false
		}
		if err != nil {
			// Ctrl+C drops the current input.
			return "", true
		}
		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)
		src := b.String()
		if strings.HasPrefix(strings.TrimSpace(src), ":") || looksComplete(src) {
			return src, true
		}
	}
}

// looksComplete reports whether src has a main function and all its braces are closed.
func looksComplete(src string) bool {
	tokens, _ := internal.Scan(src)
	depth, hasMain := 0, false
	var last internal.TokenType = internal.EOFTP
	for _, token := range tokens {
		switch token.Type() {
		case internal.MainTP:
			hasMain = true
		case internal.LeftBraceTP:
			depth++
		case internal.RightBraceTP:
			depth--
		case internal.EOFTP:
			continue
		}
		last = token.Type()
	}
	return hasMain && depth <= 0 && last == internal.RightBraceTP
}
