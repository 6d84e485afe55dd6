/*
File    : cc64/internal/symtab/symtab_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package symtab

import (
	"testing"

	"github.com/akashmaji946/cc64/internal/ctypes"
	"github.com/stretchr/testify/assert"
)

func TestDeclare_AllocatesContiguousOffsets(t *testing.T) {
	tab := New()

	a := tab.Declare("a", ctypes.NewPrimitive(ctypes.Int))
	b := tab.Declare("b", ctypes.NewPrimitive(ctypes.Char))
	c := tab.Declare("c", ctypes.NewPrimitive(ctypes.Int))

	assert.Equal(t, 8, a.Offset)
	assert.Equal(t, 9, b.Offset)
	assert.Equal(t, 17, c.Offset)
	assert.Equal(t, 17, tab.FrameSize())
}

func TestLookup(t *testing.T) {
	tab := New()
	tab.Declare("x", ctypes.NewPrimitive(ctypes.Int))

	got, ok := tab.Lookup("x")
	assert.True(t, ok)
	assert.Equal(t, 8, got.Offset)

	_, ok = tab.Lookup("y")
	assert.False(t, ok)
}

func TestNewTable_ResetsPerFunction(t *testing.T) {
	first := New()
	first.Declare("a", ctypes.NewPrimitive(ctypes.Int))

	second := New()
	b := second.Declare("b", ctypes.NewPrimitive(ctypes.Int))

	// A fresh Table always restarts offset allocation at zero,
	// independent of any other function's table — this is the fix
	// for the shared-locals behavior of the reference implementation.
	assert.Equal(t, 8, b.Offset)
	_, ok := second.Lookup("a")
	assert.False(t, ok)
}
