/*
File    : cc64/internal/ctypes/type.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package ctypes defines the type model of the source language:
// primitive widths, pointers, and arrays, plus the size_of query that
// drives local-variable offset allocation and array sizing. Every
// type value is immutable once constructed.
package ctypes

import "fmt"

// Kind identifies which alternative of Type a value holds.
type Kind string

const (
	KindPrimitive Kind = "primitive"
	KindPointer   Kind = "pointer"
	KindArray     Kind = "array"
)

// Primitive enumerates the base scalar types of the language. Int and
// Long deliberately share the same 8-byte width below rather than the
// narrower 4 bytes a C compiler would normally give int.
type Primitive string

const (
	Void   Primitive = "void"
	Char   Primitive = "char"
	Short  Primitive = "short"
	Int    Primitive = "int"
	Long   Primitive = "long"
	Float  Primitive = "float"
	Double Primitive = "double"
)

var primitiveSizes = map[Primitive]int{
	Void:   0,
	Char:   1,
	Short:  2,
	Int:    8,
	Long:   8,
	Float:  4,
	Double: 8,
}

// Type is a value type in the source language: a primitive, a
// pointer to another Type, or a fixed-size array of another Type.
type Type struct {
	kind      Kind
	primitive Primitive
	elem      *Type // element type for Pointer and Array
	arrayLen  int   // element count, only meaningful for KindArray
}

// NewPrimitive constructs a primitive Type.
func NewPrimitive(p Primitive) Type {
	return Type{kind: KindPrimitive, primitive: p}
}

// NewPointer constructs a Type pointing to elem.
func NewPointer(elem Type) Type {
	return Type{kind: KindPointer, elem: &elem}
}

// NewArray constructs a fixed-length array Type of elem.
func NewArray(elem Type, length int) Type {
	return Type{kind: KindArray, elem: &elem, arrayLen: length}
}

func (t Type) Kind() Kind         { return t.kind }
func (t Type) Primitive() Primitive { return t.primitive }
func (t Type) Elem() Type         { return *t.elem }
func (t Type) ArrayLen() int      { return t.arrayLen }

// SizeOf computes the storage size in bytes of t: pointers are always
// 8 bytes regardless of what they point to, and arrays are their
// element count times 8 (not element-size times count). This is a
// deliberate simplification, not sizeof(elem)*len.
func (t Type) SizeOf() int {
	switch t.kind {
	case KindPrimitive:
		return primitiveSizes[t.primitive]
	case KindPointer:
		return 8
	case KindArray:
		return t.arrayLen * 8
	default:
		panic(fmt.Sprintf("ctypes: invalid type kind %q", t.kind))
	}
}

// String renders t the way it would appear in source: "int", "int*",
// "int**", "int[4]".
func (t Type) String() string {
	switch t.kind {
	case KindPrimitive:
		return string(t.primitive)
	case KindPointer:
		return t.Elem().String() + "*"
	case KindArray:
		return fmt.Sprintf("%s[%d]", t.Elem().String(), t.arrayLen)
	default:
		return "?"
	}
}

// IsVoid reports whether t is exactly the void primitive.
func (t Type) IsVoid() bool {
	return t.kind == KindPrimitive && t.primitive == Void
}
