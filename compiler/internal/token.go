package internal

import "fmt"

// The language has those elements:
// * KeyWord: const, int, static, break, continue, if, main, else, for, return, void, printf.
// * Operator: !, &&, ||, +, -, *, /, %, <, <=, >, >=, ==, !=, =.
// * Delimiter: ;, ,, (, ), [, ], {, }.
// * Constant: integer, string ("xxx").
// * Identifier: letters, digits, underscore, not starting with a digit.
// * Comment: /**/, //. Comments never become tokens.

type TokenType int

const (
	IdentifierTP TokenType = iota // varA
	IntegerTP                     // 1010
	StringTP                      // "xxx"

	ConstTP    // const
	IntTP      // int
	StaticTP   // static
	BreakTP    // break
	ContinueTP // continue
	IfTP       // if
	MainTP     // main
	ElseTP     // else
	ForTP      // for
	ReturnTP   // return
	VoidTP     // void
	PrintfTP   // printf

	NotTP          // !
	AndTP          // &&
	OrTP           // ||
	ErrorAndTP     // &, accepted as && by the parser
	ErrorOrTP      // |, accepted as || by the parser
	AddTP          // +
	MinusTP        // -
	MultiplyTP     // *
	DivideTP       // /
	ModTP          // %
	LessTP         // <
	LessEqualTP    // <=
	GreaterTP      // >
	GreaterEqualTP // >=
	EqualTP        // ==
	NotEqualTP     // !=
	AssignTP       // =

	SemiColonTP          // ;
	CommaTP              // ,
	LeftParentThesesTP   // (
	RightParentThesesTP  // )
	LeftSquareBracketTP  // [
	RightSquareBracketTP // ]
	LeftBraceTP          // {
	RightBraceTP         // }

	EOFTP   // end of input
	ErrorTP // unrecognized character
)

// keyWordTokenTPMap is the mapping from keyWord to the corresponding TokenTP.
var keyWordTokenTPMap = map[string]TokenType{
	"const":    ConstTP,
	"int":      IntTP,
	"static":   StaticTP,
	"break":    BreakTP,
	"continue": ContinueTP,
	"if":       IfTP,
	"main":     MainTP,
	"else":     ElseTP,
	"for":      ForTP,
	"return":   ReturnTP,
	"void":     VoidTP,
	"printf":   PrintfTP,
}

// simpleSymbolTokenTPMap is the mapping from single character symbols which never start
// a two character operator to the corresponding TokenTP.
var simpleSymbolTokenTPMap = map[byte]TokenType{
	'+': AddTP,
	'-': MinusTP,
	'*': MultiplyTP,
	'%': ModTP,
	';': SemiColonTP,
	',': CommaTP,
	'(': LeftParentThesesTP,
	')': RightParentThesesTP,
	'[': LeftSquareBracketTP,
	']': RightSquareBracketTP,
	'{': LeftBraceTP,
	'}': RightBraceTP,
}

// tokenTPNames are the category codes used when listing tokens.
var tokenTPNames = [...]string{
	IdentifierTP:         "IDENFR",
	IntegerTP:            "INTCON",
	StringTP:             "STRCON",
	ConstTP:              "CONSTTK",
	IntTP:                "INTTK",
	StaticTP:             "STATICTK",
	BreakTP:              "BREAKTK",
	ContinueTP:           "CONTINUETK",
	IfTP:                 "IFTK",
	MainTP:               "MAINTK",
	ElseTP:               "ELSETK",
	ForTP:                "FORTK",
	ReturnTP:             "RETURNTK",
	VoidTP:               "VOIDTK",
	PrintfTP:             "PRINTFTK",
	NotTP:                "NOT",
	AndTP:                "AND",
	OrTP:                 "OR",
	ErrorAndTP:           "ERRORAND",
	ErrorOrTP:            "ERROROR",
	AddTP:                "PLUS",
	MinusTP:              "MINU",
	MultiplyTP:           "MULT",
	DivideTP:             "DIV",
	ModTP:                "MOD",
	LessTP:               "LSS",
	LessEqualTP:          "LEQ",
	GreaterTP:            "GRE",
	GreaterEqualTP:       "GEQ",
	EqualTP:              "EQL",
	NotEqualTP:           "NEQ",
	AssignTP:             "ASSIGN",
	SemiColonTP:          "SEMICN",
	CommaTP:              "COMMA",
	LeftParentThesesTP:   "LPARENT",
	RightParentThesesTP:  "RPARENT",
	LeftSquareBracketTP:  "LBRACK",
	RightSquareBracketTP: "RBRACK",
	LeftBraceTP:          "LBRACE",
	RightBraceTP:         "RBRACE",
	EOFTP:                "EOF",
	ErrorTP:              "ERROR",
}

func (tp TokenType) String() string {
	if tp >= 0 && int(tp) < len(tokenTPNames) {
		return tokenTPNames[tp]
	}
	return fmt.Sprintf("TokenType(%d)", int(tp))
}

func (tp TokenType) IsKeyword() bool {
	return tp >= ConstTP && tp <= PrintfTP
}

// Token is immutable once the tokenizer produced it.
type Token struct {
	content string
	line    int
	tp      TokenType
	// value is the numeric value of an IntegerTP token, clamped on overflow.
	value int
}

func NewToken(tp TokenType, content string, line int) *Token {
	return &Token{tp: tp, content: content, line: line}
}

func (t *Token) Type() TokenType {
	return t.tp
}

func (t *Token) Content() string {
	return t.content
}

func (t *Token) Line() int {
	return t.line
}

func (t *Token) Value() int {
	return t.value
}

func (t *Token) String() string {
	return t.tp.String() + " " + t.content
}
