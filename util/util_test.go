package util

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestIsLetterOrUnderscoreOrNumber(t *testing.T) {
	testData := []struct {
		b                  byte
		letterOrUnderscore bool
		identifierPart     bool
	}{
		{b: 'a', letterOrUnderscore: true, identifierPart: true},
		{b: 'Z', letterOrUnderscore: true, identifierPart: true},
		{b: '_', letterOrUnderscore: true, identifierPart: true},
		{b: '7', letterOrUnderscore: false, identifierPart: true},
		{b: '$', letterOrUnderscore: false, identifierPart: false},
	}
	for _, data := range testData {
		assert.Equal(t, data.letterOrUnderscore, IsLetterOrUnderscore(data.b), string(data.b))
		assert.Equal(t, data.identifierPart, IsLetterOrUnderscoreOrNumber(data.b), string(data.b))
	}
}

func TestIsSpace(t *testing.T) {
	for _, b := range []byte(" \t\n\r\v\f") {
		assert.True(t, IsSpace(b))
	}
	assert.False(t, IsSpace('a'))
	assert.True(t, IsNewLine('\n'))
	assert.False(t, IsNewLine('\r'))
}
