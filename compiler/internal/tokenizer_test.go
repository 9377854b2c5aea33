package internal

import (
	"bytes"
	"github.com/stretchr/testify/assert"
	"testing"
)

func tokenTypes(tokens []*Token) []TokenType {
	var tps []TokenType
	for _, token := range tokens {
		tps = append(tps, token.tp)
	}
	return tps
}

func TestTokenizer_Scan(t *testing.T) {
	testData := []struct {
		content     string
		expectedTPs []TokenType
	}{
		{content: "", expectedTPs: []TokenType{EOFTP}},
		{content: "const int a = 10;", expectedTPs: []TokenType{ConstTP, IntTP, IdentifierTP, AssignTP, IntegerTP,
			SemiColonTP, EOFTP}},
		{content: "int main() { return 0; }", expectedTPs: []TokenType{IntTP, MainTP, LeftParentThesesTP,
			RightParentThesesTP, LeftBraceTP, ReturnTP, IntegerTP, SemiColonTP, RightBraceTP, EOFTP}},
		{content: "&& || == != <= >= < > = !", expectedTPs: []TokenType{AndTP, OrTP, EqualTP, NotEqualTP,
			LessEqualTP, GreaterEqualTP, LessTP, GreaterTP, AssignTP, NotTP, EOFTP}},
		{content: "+ - * / % , [ ]", expectedTPs: []TokenType{AddTP, MinusTP, MultiplyTP, DivideTP, ModTP, CommaTP,
			LeftSquareBracketTP, RightSquareBracketTP, EOFTP}},
		{content: "static break continue if else for void printf", expectedTPs: []TokenType{StaticTP, BreakTP,
			ContinueTP, IfTP, ElseTP, ForTP, VoidTP, PrintfTP, EOFTP}},
		{content: "_a1 mainly a/b", expectedTPs: []TokenType{IdentifierTP, IdentifierTP, IdentifierTP, DivideTP,
			IdentifierTP, EOFTP}},
		{content: "a // comment\n/* block\n comment */ b", expectedTPs: []TokenType{IdentifierTP, IdentifierTP, EOFTP}},
		{content: "a # b", expectedTPs: []TokenType{IdentifierTP, ErrorTP, IdentifierTP, EOFTP}},
	}
	for _, data := range testData {
		tokens, diagnostics := Scan(data.content)
		assert.Equal(t, data.expectedTPs, tokenTypes(tokens), data.content)
		assert.Empty(t, diagnostics, data.content)
	}
}

func TestTokenizer_Lines(t *testing.T) {
	tokens, _ := Scan("int a;\n// c\n/* x\ny */\n\nb\n")
	assert.Equal(t, []TokenType{IntTP, IdentifierTP, SemiColonTP, IdentifierTP, EOFTP}, tokenTypes(tokens))
	assert.Equal(t, 1, tokens[0].Line())
	assert.Equal(t, 1, tokens[2].Line())
	assert.Equal(t, 6, tokens[3].Line())
	assert.Equal(t, 7, tokens[4].Line())
}

func TestTokenizer_TokenString(t *testing.T) {
	testData := []struct {
		content         string
		expectedContent string
	}{
		{content: `"hello"`, expectedContent: `"hello"`},
		{content: `"%d\n"`, expectedContent: `"%d\n"`},
		{content: `"a\"b"`, expectedContent: `"a\"b"`},
		{content: `"a\\"`, expectedContent: `"a\\"`},
		{content: `"unterminated`, expectedContent: `"unterminated`},
	}
	for _, data := range testData {
		tokens, diagnostics := Scan(data.content)
		assert.Empty(t, diagnostics)
		assert.Equal(t, []TokenType{StringTP, EOFTP}, tokenTypes(tokens), data.content)
		assert.Equal(t, data.expectedContent, tokens[0].Content())
	}
}

func TestTokenizer_TokenNumber(t *testing.T) {
	tokens, diagnostics := Scan("0 123 2147483647")
	assert.Empty(t, diagnostics)
	assert.Equal(t, 0, tokens[0].Value())
	assert.Equal(t, 123, tokens[1].Value())
	assert.Equal(t, MaxIntegerValue, tokens[2].Value())

	tokens, diagnostics = Scan("\n99999999999")
	assert.Equal(t, []TokenType{IntegerTP, EOFTP}, tokenTypes(tokens))
	assert.Equal(t, MaxIntegerValue, tokens[0].Value())
	assert.Equal(t, "99999999999", tokens[0].Content())
	assert.Equal(t, []Diagnostic{{Line: 2, Code: NumberOverflowCode}}, diagnostics)
}

func TestTokenizer_TokenLogical(t *testing.T) {
	tokens, diagnostics := Scan("a & b\nc | d")
	assert.Equal(t, []TokenType{IdentifierTP, ErrorAndTP, IdentifierTP, IdentifierTP, ErrorOrTP, IdentifierTP, EOFTP},
		tokenTypes(tokens))
	assert.Equal(t, []Diagnostic{{Line: 1, Code: IllegalSymbolCode}, {Line: 2, Code: IllegalSymbolCode}}, diagnostics)
}

func TestTokenizer_UnterminatedComment(t *testing.T) {
	tokens, diagnostics := Scan("a /* never\nclosed")
	assert.Empty(t, diagnostics)
	assert.Equal(t, []TokenType{IdentifierTP, EOFTP}, tokenTypes(tokens))
	assert.Equal(t, 2, tokens[1].Line())
}

func TestTokenizer_Tokenize(t *testing.T) {
	tokenizer := &Tokenizer{}
	tokens, diagnostics, err := tokenizer.Tokenize(bytes.NewReader([]byte("int x;")))
	assert.Nil(t, err)
	assert.Empty(t, diagnostics)
	assert.Equal(t, []TokenType{IntTP, IdentifierTP, SemiColonTP, EOFTP}, tokenTypes(tokens))

	// The tokenizer can be reused.
	tokens, _, err = tokenizer.Tokenize(bytes.NewReader([]byte("x")))
	assert.Nil(t, err)
	assert.Equal(t, []TokenType{IdentifierTP, EOFTP}, tokenTypes(tokens))
}

func TestToken_String(t *testing.T) {
	tokens, _ := Scan("const x = \"s\";")
	var lines []string
	for _, token := range tokens {
		lines = append(lines, token.String())
	}
	assert.Equal(t, []string{"CONSTTK const", "IDENFR x", "ASSIGN =", "STRCON \"s\"", "SEMICN ;", "EOF "}, lines)
	assert.True(t, MainTP.IsKeyword())
	assert.False(t, IdentifierTP.IsKeyword())
}
