package internal

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestTokenStream_Peek(t *testing.T) {
	tokens, _ := Scan("int a;")
	stream := NewTokenStream(tokens)
	assert.Equal(t, 4, stream.Len())
	assert.Equal(t, IntTP, stream.Peek(0))
	assert.Equal(t, IdentifierTP, stream.Peek(1))
	assert.Equal(t, SemiColonTP, stream.Peek(2))
	assert.Equal(t, EOFTP, stream.Peek(3))
	assert.Equal(t, EOFTP, stream.Peek(100))
}

func TestTokenStream_Advance(t *testing.T) {
	tokens, _ := Scan("a b")
	stream := NewTokenStream(tokens)
	assert.Equal(t, "a", stream.Previous().Content())
	assert.Equal(t, "a", stream.Advance().Content())
	assert.Equal(t, "a", stream.Previous().Content())
	assert.Equal(t, "b", stream.Current().Content())
	assert.Equal(t, "b", stream.Advance().Content())
	assert.True(t, stream.AtEOF())
	// The cursor stays on the end marker.
	assert.Equal(t, EOFTP, stream.Advance().Type())
	assert.Equal(t, EOFTP, stream.Advance().Type())
	assert.True(t, stream.AtEOF())
	assert.Equal(t, "b", stream.Previous().Content())
}

func TestTokenStream_SyntheticEOF(t *testing.T) {
	testData := []struct {
		tokens      []*Token
		expectedLen int
		eofLine     int
	}{
		{tokens: nil, expectedLen: 1, eofLine: 1},
		{tokens: []*Token{NewToken(IdentifierTP, "a", 3)}, expectedLen: 2, eofLine: 3},
		{tokens: []*Token{NewToken(IdentifierTP, "a", 3), NewToken(EOFTP, "", 4)}, expectedLen: 2, eofLine: 4},
	}
	for _, data := range testData {
		stream := NewTokenStream(data.tokens)
		assert.Equal(t, data.expectedLen, stream.Len())
		assert.Equal(t, EOFTP, stream.PeekToken(data.expectedLen-1).Type())
		assert.Equal(t, data.eofLine, stream.PeekToken(data.expectedLen-1).Line())
	}
}
