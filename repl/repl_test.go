/*
File    : cc64/repl/repl_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package repl

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRepl_CompileAndPrint_EmitsAssembly(t *testing.T) {
	r := New()
	var buf bytes.Buffer
	r.compileAndPrint(&buf, "int main() { return 1+2; }")
	assert.Contains(t, buf.String(), "main:")
	assert.Contains(t, buf.String(), "add rax, rdi")
}

func TestRepl_CompileAndPrint_ReportsParseError(t *testing.T) {
	r := New()
	var buf bytes.Buffer
	r.compileAndPrint(&buf, "int main() { return 5 }")
	assert.Contains(t, buf.String(), "PARSER ERROR")
}
