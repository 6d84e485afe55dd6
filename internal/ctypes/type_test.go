/*
File    : cc64/internal/ctypes/type_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package ctypes

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

type sizeOfCase struct {
	Type     Type
	Expected int
}

func TestSizeOf(t *testing.T) {
	cases := []sizeOfCase{
		{NewPrimitive(Void), 0},
		{NewPrimitive(Char), 1},
		{NewPrimitive(Short), 2},
		{NewPrimitive(Int), 8},
		{NewPrimitive(Long), 8},
		{NewPrimitive(Float), 4},
		{NewPrimitive(Double), 8},
		{NewPointer(NewPrimitive(Char)), 8},
		{NewPointer(NewPointer(NewPrimitive(Int))), 8},
		{NewArray(NewPrimitive(Int), 4), 32},
		{NewArray(NewPrimitive(Char), 10), 80},
	}

	for _, c := range cases {
		assert.Equal(t, c.Expected, c.Type.SizeOf())
	}
}

func TestString(t *testing.T) {
	assert.Equal(t, "int", NewPrimitive(Int).String())
	assert.Equal(t, "int*", NewPointer(NewPrimitive(Int)).String())
	assert.Equal(t, "int**", NewPointer(NewPointer(NewPrimitive(Int))).String())
	assert.Equal(t, "char[4]", NewArray(NewPrimitive(Char), 4).String())
}

func TestIsVoid(t *testing.T) {
	assert.True(t, NewPrimitive(Void).IsVoid())
	assert.False(t, NewPrimitive(Int).IsVoid())
}
