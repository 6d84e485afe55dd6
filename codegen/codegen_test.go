/*
File    : cc64/codegen/codegen_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package codegen

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/cc64/parser"
)

// generate parses src and returns its emitted assembly, failing the
// test immediately if parsing produced any error.
func generate(t *testing.T, src string) string {
	t.Helper()
	par := parser.NewParser(src)
	root := par.Parse()
	assert.False(t, par.HasErrors(), par.GetErrors())

	var buf bytes.Buffer
	gen := NewGenerator(&buf)
	err := gen.Generate(root)
	assert.NoError(t, err)
	return buf.String()
}

// subsequenceInOrder asserts that every needle in order appears in
// asm, each one found at or after the previous needle's position —
// matching spec.md's "exact whitespace is not contractual, the
// ordered subsequence of significant instructions is" codegen
// contract.
func subsequenceInOrder(t *testing.T, asm string, needles ...string) {
	t.Helper()
	cursor := 0
	for _, needle := range needles {
		idx := strings.Index(asm[cursor:], needle)
		if !assert.GreaterOrEqual(t, idx, 0, "expected to find %q after position %d", needle, cursor) {
			return
		}
		cursor += idx + len(needle)
	}
}

func TestGenerate_Preamble(t *testing.T) {
	asm := generate(t, "int main() { return 0; }")
	assert.True(t, strings.HasPrefix(asm, ".intel_syntax noprefix\n.global main\n"))
}

func TestGenerate_SimpleReturnAddition(t *testing.T) {
	asm := generate(t, "int main() { return 1+2; }")
	subsequenceInOrder(t, asm,
		"main:",
		"push rbp",
		"mov rbp, rsp",
		"push 1",
		"push 2",
		"pop rdi",
		"pop rax",
		"add rax, rdi",
		"push rax",
		"pop rax",
		"mov rsp, rbp",
		"pop rbp",
		"ret",
	)
}

func TestGenerate_AssignmentUsesAddressThenValue(t *testing.T) {
	asm := generate(t, "int main() { int a = 0; a = a + 1; return a; }")
	subsequenceInOrder(t, asm,
		"lea rax, [rbp - 8]",
		"mov [rax], rdi",
	)
}

func TestGenerate_IfElseEmitsLabels(t *testing.T) {
	asm := generate(t, "int main() { int a = 0; if (a == 0) return 1; else return 2; }")
	subsequenceInOrder(t, asm,
		"cmp rax, 0",
		"je .Lelse_",
		"jmp .Lend_",
		".Lelse_",
		".Lend_",
	)
}

func TestGenerate_WhileLoopJumpsBackToBegin(t *testing.T) {
	asm := generate(t, "int main() { int a = 0; while (a < 10) a = a + 1; return a; }")
	subsequenceInOrder(t, asm,
		".Lbegin_",
		"cmp rax, 0",
		"je .Lend_",
		"jmp .Lbegin_",
	)
}

func TestGenerate_ForLoopWithAllClauses(t *testing.T) {
	asm := generate(t, "int main() { int i = 0; for (i = 0; i < 10; i = i + 1) return 0; }")
	subsequenceInOrder(t, asm,
		"mov [rax], rdi", // init: i = 0
		".Lbegin_",
		"cmp rax, rdi",
		"setl al",
		"jmp .Lbegin_",
	)
}

func TestGenerate_CallPopsArgumentsIntoRegistersInOrder(t *testing.T) {
	asm := generate(t, "int foo(int i) { return i; } int main() { int a = foo(10); return a; }")
	subsequenceInOrder(t, asm,
		"foo:",
		"mov [rbp - 8], rdi", // parameter spill
		"main:",
		"push 10",
		"pop rdi",
		"call foo",
		"push rax",
	)
}

func TestGenerate_FrameSizeIsAlignedTo16(t *testing.T) {
	asm := generate(t, "int main() { int a = 1; return a; }")
	subsequenceInOrder(t, asm, "sub rsp, 16")
}

func TestGenerate_FunctionWithNoLocalsOmitsFrameReservation(t *testing.T) {
	asm := generate(t, "int main() { return 0; }")
	assert.NotContains(t, asm, "sub rsp, 0")
}
