package main

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestLooksComplete(t *testing.T) {
	testData := []struct {
		src      string
		complete bool
	}{
		{src: "int a;", complete: false},
		{src: "int main() {", complete: false},
		{src: "int main() {\n  if (1) {\n    return 1;\n  }", complete: false},
		{src: "int main() {\n  return 0;\n}", complete: true},
		{src: "int f() { return 1; }", complete: false},
		{src: "int f() { return 1; }\nint main() { return f(); }", complete: true},
		{src: "int main() { return 0; } // done", complete: true},
		{src: "int main() { printf(\"}\"); }", complete: true},
	}
	for _, data := range testData {
		assert.Equal(t, data.complete, looksComplete(data.src), data.src)
	}
}
