package internal

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestAggregate(t *testing.T) {
	testData := []struct {
		name     string
		phases   [][]Diagnostic
		expected []Diagnostic
	}{
		{
			name:     "nothing",
			phases:   [][]Diagnostic{nil, nil, nil},
			expected: []Diagnostic{},
		},
		{
			name: "stable by line",
			phases: [][]Diagnostic{
				{{Line: 3, Code: "a"}, {Line: 1, Code: "a"}},
				{{Line: 3, Code: "i"}},
				{{Line: 2, Code: "c"}, {Line: 3, Code: "c"}},
			},
			expected: []Diagnostic{{Line: 1, Code: "a"}, {Line: 2, Code: "c"}, {Line: 3, Code: "a"}, {Line: 3, Code: "i"},
				{Line: 3, Code: "c"}},
		},
		{
			name: "adjacent duplicates collapse",
			phases: [][]Diagnostic{
				{{Line: 2, Code: "c"}, {Line: 2, Code: "c"}, {Line: 2, Code: "c"}},
				{{Line: 1, Code: "i"}, {Line: 2, Code: "c"}},
			},
			expected: []Diagnostic{{Line: 1, Code: "i"}, {Line: 2, Code: "c"}},
		},
		{
			name: "only adjacent duplicates collapse",
			phases: [][]Diagnostic{
				{{Line: 4, Code: "c"}, {Line: 4, Code: "h"}, {Line: 4, Code: "c"}},
			},
			expected: []Diagnostic{{Line: 4, Code: "c"}, {Line: 4, Code: "h"}, {Line: 4, Code: "c"}},
		},
	}
	for _, data := range testData {
		assert.Equal(t, data.expected, Aggregate(data.phases...), data.name)
	}
}

func TestAggregate_Ordering(t *testing.T) {
	diagnostics := Aggregate(
		[]Diagnostic{{Line: 9, Code: "a"}, {Line: 2, Code: "a"}},
		[]Diagnostic{{Line: 5, Code: "j"}, {Line: 5, Code: "j"}, {Line: 1, Code: "k"}},
		[]Diagnostic{{Line: 7, Code: "m"}, {Line: 2, Code: "a"}},
	)
	for i := 1; i < len(diagnostics); i++ {
		assert.True(t, diagnostics[i-1].Line <= diagnostics[i].Line)
		assert.NotEqual(t, diagnostics[i-1], diagnostics[i])
	}
	assert.Equal(t, 5, len(diagnostics))
}

func TestDiagnostic_String(t *testing.T) {
	assert.Equal(t, "12 i", Diagnostic{Line: 12, Code: MissingSemiColonCode}.String())
	assert.Equal(t, "3 number_overflow", Diagnostic{Line: 3, Code: NumberOverflowCode}.String())
}
