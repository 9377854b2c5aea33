package internal

import (
	"io"
	"io/ioutil"
	"math"
	"strconv"
	"sysyc/util"
)

// A simple Tokenizer for the language. It never fails on malformed input: a malformed construct
// becomes a best-effort token plus a diagnostic, so the parser always has something to consume.

// MaxIntegerValue is the value an integer literal is clamped to when it overflows.
const MaxIntegerValue = math.MaxInt32

type Tokenizer struct {
	source      []byte
	currentPos  int
	currentLine int
	tokens      []*Token
	diagnostics []Diagnostic
}

// Scan tokenizes source and returns the tokens, always terminated by exactly one EOFTP token,
// together with the lexical diagnostics.
func Scan(source string) ([]*Token, []Diagnostic) {
	tokenizer := &Tokenizer{}
	return tokenizer.scan([]byte(source))
}

// Tokenize reads all of rd and tokenizes it.
func (tokenizer *Tokenizer) Tokenize(rd io.Reader) ([]*Token, []Diagnostic, error) {
	content, err := ioutil.ReadAll(rd)
	if err != nil {
		return nil, nil, err
	}
	tokens, diagnostics := tokenizer.scan(content)
	return tokens, diagnostics, nil
}

func (tokenizer *Tokenizer) scan(source []byte) ([]*Token, []Diagnostic) {
	tokenizer.Reset()
	tokenizer.source = source
	for {
		token := tokenizer.getNextToken()
		tokenizer.tokens = append(tokenizer.tokens, token)
		if token.tp == EOFTP {
			return tokenizer.tokens, tokenizer.diagnostics
		}
	}
}

func (tokenizer *Tokenizer) Reset() {
	tokenizer.source, tokenizer.currentPos, tokenizer.currentLine = nil, 0, 1
	tokenizer.tokens, tokenizer.diagnostics = nil, nil
}

// getNextToken returns the next real token. Comments are skipped here, so the returned token is never
// a comment.
func (tokenizer *Tokenizer) getNextToken() *Token {
	for {
		tokenizer.trimSpace()
		if !tokenizer.hasRemainCharacters() {
			return tokenizer.makeToken(EOFTP, "")
		}
		b := tokenizer.source[tokenizer.currentPos]
		switch {
		case util.IsLetterOrUnderscore(b):
			return tokenizer.toKeywordOrIdentifier()
		case util.IsNumber(b):
			return tokenizer.tokenNumber()
		case b == '"':
			return tokenizer.tokenString()
		case b == '/':
			if tokenizer.skipComment() {
				continue
			}
			return tokenizer.tokenDivide()
		default:
			return tokenizer.tokenOperatorOrDelimiter()
		}
	}
}

// trimSpace steps forward through source and skips all continuous space, counting newlines.
func (tokenizer *Tokenizer) trimSpace() {
	for tokenizer.hasRemainCharacters() && util.IsSpace(tokenizer.source[tokenizer.currentPos]) {
		tokenizer.stepForward()
	}
}

func (tokenizer *Tokenizer) hasRemainCharacters() bool {
	return tokenizer.currentPos < len(tokenizer.source)
}

// peek returns the character offset positions ahead of the cursor, 0 past the end.
func (tokenizer *Tokenizer) peek(offset int) byte {
	pos := tokenizer.currentPos + offset
	if pos >= len(tokenizer.source) {
		return 0
	}
	return tokenizer.source[pos]
}

// stepForward consumes one character. Every consumed newline advances the line counter, wherever
// it appears.
func (tokenizer *Tokenizer) stepForward() {
	if util.IsNewLine(tokenizer.source[tokenizer.currentPos]) {
		tokenizer.currentLine++
	}
	tokenizer.currentPos++
}

func (tokenizer *Tokenizer) makeToken(tp TokenType, content string) *Token {
	return &Token{content: content, line: tokenizer.currentLine, tp: tp}
}

func (tokenizer *Tokenizer) addDiagnostic(code string) {
	tokenizer.diagnostics = append(tokenizer.diagnostics, Diagnostic{Line: tokenizer.currentLine, Code: code})
}

func (tokenizer *Tokenizer) toKeywordOrIdentifier() *Token {
	startPos := tokenizer.currentPos
	for tokenizer.hasRemainCharacters() && util.IsLetterOrUnderscoreOrNumber(tokenizer.source[tokenizer.currentPos]) {
		tokenizer.stepForward()
	}
	content := string(tokenizer.source[startPos:tokenizer.currentPos])
	keyWordTP, isKeyWord := keyWordTokenTPMap[content]
	if isKeyWord {
		return tokenizer.makeToken(keyWordTP, content)
	}
	return tokenizer.makeToken(IdentifierTP, content)
}

// tokenNumber scans a decimal literal. A literal that does not fit is clamped to MaxIntegerValue
// and reported, but still produces an IntegerTP token.
func (tokenizer *Tokenizer) tokenNumber() *Token {
	startPos := tokenizer.currentPos
	for tokenizer.hasRemainCharacters() && util.IsNumber(tokenizer.source[tokenizer.currentPos]) {
		tokenizer.stepForward()
	}
	token := tokenizer.makeToken(IntegerTP, string(tokenizer.source[startPos:tokenizer.currentPos]))
	value, err := strconv.ParseInt(token.content, 10, 32)
	if err != nil {
		value = MaxIntegerValue
		tokenizer.addDiagnostic(NumberOverflowCode)
	}
	token.value = int(value)
	return token
}

// tokenString scans a string literal. The stored content keeps the quotes and every escape exactly as
// written. A missing closing quote ends the literal at the end of input.
func (tokenizer *Tokenizer) tokenString() *Token {
	startPos := tokenizer.currentPos
	tokenizer.stepForward()
	for tokenizer.hasRemainCharacters() {
		b := tokenizer.source[tokenizer.currentPos]
		if b == '"' {
			tokenizer.stepForward()
			break
		}
		if b == '\\' && tokenizer.currentPos+1 < len(tokenizer.source) {
			tokenizer.stepForward()
		}
		tokenizer.stepForward()
	}
	return tokenizer.makeToken(StringTP, string(tokenizer.source[startPos:tokenizer.currentPos]))
}

// skipComment skips a // or /* */ comment starting at the cursor and reports whether there was one.
func (tokenizer *Tokenizer) skipComment() bool {
	switch tokenizer.peek(1) {
	case '/':
		tokenizer.skipSingleLineComment()
		return true
	case '*':
		tokenizer.skipMultipleLineComment()
		return true
	}
	return false
}

// skipSingleLineComment leaves the newline in place so trimSpace counts it.
func (tokenizer *Tokenizer) skipSingleLineComment() {
	for tokenizer.hasRemainCharacters() && !util.IsNewLine(tokenizer.source[tokenizer.currentPos]) {
		tokenizer.stepForward()
	}
}

// skipMultipleLineComment skips to the matching */, or to the end of input if there is none.
func (tokenizer *Tokenizer) skipMultipleLineComment() {
	tokenizer.stepForward()
	tokenizer.stepForward()
	for tokenizer.hasRemainCharacters() {
		if tokenizer.source[tokenizer.currentPos] == '*' && tokenizer.peek(1) == '/' {
			tokenizer.stepForward()
			tokenizer.stepForward()
			return
		}
		tokenizer.stepForward()
	}
}

func (tokenizer *Tokenizer) tokenDivide() *Token {
	tokenizer.stepForward()
	return tokenizer.makeToken(DivideTP, "/")
}

func (tokenizer *Tokenizer) tokenOperatorOrDelimiter() *Token {
	b := tokenizer.source[tokenizer.currentPos]
	switch b {
	case '&':
		return tokenizer.tokenLogical('&', AndTP, ErrorAndTP)
	case '|':
		return tokenizer.tokenLogical('|', OrTP, ErrorOrTP)
	case '=':
		return tokenizer.tokenWithOptionalEqual(AssignTP, EqualTP)
	case '!':
		return tokenizer.tokenWithOptionalEqual(NotTP, NotEqualTP)
	case '<':
		return tokenizer.tokenWithOptionalEqual(LessTP, LessEqualTP)
	case '>':
		return tokenizer.tokenWithOptionalEqual(GreaterTP, GreaterEqualTP)
	}
	tokenizer.stepForward()
	tp, ok := simpleSymbolTokenTPMap[b]
	if !ok {
		return tokenizer.makeToken(ErrorTP, string(b))
	}
	return tokenizer.makeToken(tp, string(b))
}

// tokenLogical scans && or ||. A lone & or | is reported but still becomes a token of its own kind,
// which the parser treats as the logical operator.
func (tokenizer *Tokenizer) tokenLogical(b byte, doubleTP, errorTP TokenType) *Token {
	tokenizer.stepForward()
	if tokenizer.peek(0) == b {
		tokenizer.stepForward()
		return tokenizer.makeToken(doubleTP, string([]byte{b, b}))
	}
	tokenizer.addDiagnostic(IllegalSymbolCode)
	return tokenizer.makeToken(errorTP, string(b))
}

func (tokenizer *Tokenizer) tokenWithOptionalEqual(singleTP, withEqualTP TokenType) *Token {
	b := tokenizer.source[tokenizer.currentPos]
	tokenizer.stepForward()
	if tokenizer.peek(0) == '=' {
		tokenizer.stepForward()
		return tokenizer.makeToken(withEqualTP, string([]byte{b, '='}))
	}
	return tokenizer.makeToken(singleTP, string(b))
}
