package internal

import (
	"bytes"
	"github.com/stretchr/testify/assert"
	"strings"
	"testing"
)

func TestCompiler_Compile(t *testing.T) {
	testData := []struct {
		name          string
		content       string
		expectedLines []string
		hasErrors     bool
	}{
		{
			name:          "declared local",
			content:       "int main(){int a; a=1; return a;}",
			expectedLines: []string{"2 a Int"},
		},
		{
			name:          "missing semicolon",
			content:       "int main(){int a return 0;}",
			expectedLines: []string{"1 i"},
			hasErrors:     true,
		},
		{
			name:          "global redefinition",
			content:       "int a; int a;",
			expectedLines: []string{"1 b"},
			hasErrors:     true,
		},
		{
			name:          "undefined name",
			content:       "int main(){return b;}",
			expectedLines: []string{"1 c"},
			hasErrors:     true,
		},
		{
			name:          "break outside loop",
			content:       "int main(){break; return 0;}",
			expectedLines: []string{"1 m"},
			hasErrors:     true,
		},
		{
			name:          "printf argument count",
			content:       `int main(){printf("%d", 1, 2); return 0;}`,
			expectedLines: []string{"1 l"},
			hasErrors:     true,
		},
		{
			name:          "number overflow",
			content:       "int main() { int a = 99999999999; return a; }",
			expectedLines: []string{"1 number_overflow"},
			hasErrors:     true,
		},
		{
			name:          "same diagnostic twice on a line",
			content:       "int main() { x = 1; x = 2; return 0; }",
			expectedLines: []string{"1 c"},
			hasErrors:     true,
		},
		{
			name: "all phases merged by line",
			content: `int main() {
	int a = 1;
	if (a & 1) a = 2;
	b = 3
	return 0;
}`,
			expectedLines: []string{"3 a", "4 i", "4 c"},
			hasErrors:     true,
		},
		{
			name:          "empty input",
			content:       "",
			expectedLines: []string{},
		},
	}
	compiler := &Compiler{}
	for _, data := range testData {
		result, err := compiler.Compile(data.content)
		assert.Nil(t, err, data.name)
		assert.Equal(t, data.hasErrors, result.HasErrors(), data.name)
		assert.Equal(t, data.expectedLines, result.Lines(), data.name)
	}
}

func TestCompiler_SymbolListing(t *testing.T) {
	content := `const int N = 3;
static int s[2];
int add(int x, int y[]) {
	int t;
	return x;
}
void p() {
	{
		int q;
	}
	return;
}
int main() {
	int v = 1;
	return 0;
}`
	compiler := &Compiler{}
	result, err := compiler.Compile(content)
	assert.Nil(t, err)
	assert.False(t, result.HasErrors())
	assert.Equal(t, []string{
		"1 N ConstInt",
		"1 s StaticIntArray",
		"1 add IntFunc",
		"1 p VoidFunc",
		"2 x Int",
		"2 y IntArray",
		"2 t Int",
		"4 q Int",
		"5 v Int",
	}, result.Lines())
	assert.Equal(t, result.SymbolLines(), result.Lines())
	assert.Empty(t, result.DiagnosticLines())
}

func TestCompiler_ErrorsHideSymbols(t *testing.T) {
	compiler := &Compiler{}
	result, err := compiler.Compile("int g;\nint main() {\n\treturn g\n}")
	assert.Nil(t, err)
	assert.True(t, result.HasErrors())
	assert.Equal(t, []string{"3 i"}, result.Lines())
	// The symbols are still collected.
	assert.Equal(t, []string{"1 g Int"}, result.SymbolLines())
}

func TestCompiler_Trace(t *testing.T) {
	buf := &bytes.Buffer{}
	compiler := &Compiler{Trace: buf}
	_, err := compiler.CompileReader(strings.NewReader("int main() { return 0; }"))
	assert.Nil(t, err)
	trace := buf.String()
	assert.Contains(t, trace, "compiler: start lexer")
	assert.Contains(t, trace, "compiler: start parser")
	assert.Contains(t, trace, "compiler: start semantic checker")
}
