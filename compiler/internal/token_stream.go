package internal

// TokenStream is a finite, randomly indexable token sequence which always ends with an EOFTP token.
// Looking past the end yields that EOFTP token, and the cursor never moves past it.
type TokenStream struct {
	tokens     []*Token
	currentPos int
}

func NewTokenStream(tokens []*Token) *TokenStream {
	if len(tokens) == 0 || tokens[len(tokens)-1].tp != EOFTP {
		line := 1
		if len(tokens) > 0 {
			line = tokens[len(tokens)-1].line
		}
		tokens = append(tokens[:len(tokens):len(tokens)], &Token{tp: EOFTP, line: line})
	}
	return &TokenStream{tokens: tokens}
}

// Peek returns the type of the token k positions after the current one, EOFTP past the end.
func (stream *TokenStream) Peek(k int) TokenType {
	return stream.PeekToken(k).tp
}

func (stream *TokenStream) PeekToken(k int) *Token {
	pos := stream.currentPos + k
	if pos < 0 || pos >= len(stream.tokens) {
		return stream.tokens[len(stream.tokens)-1]
	}
	return stream.tokens[pos]
}

func (stream *TokenStream) Current() *Token {
	return stream.tokens[stream.currentPos]
}

// Previous returns the last consumed token, or the current one when nothing was consumed yet.
func (stream *TokenStream) Previous() *Token {
	if stream.currentPos == 0 {
		return stream.tokens[0]
	}
	return stream.tokens[stream.currentPos-1]
}

// Advance consumes the current token and returns it.
func (stream *TokenStream) Advance() *Token {
	token := stream.tokens[stream.currentPos]
	if stream.currentPos < len(stream.tokens)-1 {
		stream.currentPos++
	}
	return token
}

func (stream *TokenStream) AtEOF() bool {
	return stream.Current().tp == EOFTP
}

func (stream *TokenStream) Len() int {
	return len(stream.tokens)
}
