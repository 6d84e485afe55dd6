/*
File    : cc64/internal/symtab/symtab.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package symtab tracks local-variable stack-offset allocation during
// parsing, binding each name to a (offset, type) record rather than a
// runtime value, since this compiler resolves variables to frame
// offsets at parse time.
package symtab

import "github.com/akashmaji946/cc64/internal/ctypes"

// Local is the record created for one local-variable or parameter
// declaration: its name, its byte offset from the frame base, and its
// declared type.
type Local struct {
	Name   string
	Offset int
	Type   ctypes.Type
}

// Table is a single function's symbol table, scoped to exactly one
// FunctionDefinition: New resets offset allocation to zero, so two
// functions never see each other's locals or offsets.
type Table struct {
	locals    []Local
	byName    map[string]*Local
	lastOffset int
}

// New creates an empty Table with offset allocation starting at zero.
func New() *Table {
	return &Table{byName: make(map[string]*Local)}
}

// Declare allocates a new Local of the given name and type, assigning
// it the next offset: the previous local's offset plus its own size,
// or simply its own size if this is the first local declared. Every
// declaration is kept in locals regardless of name collisions, but
// Lookup resolves a redeclared name to the first record under it, so
// a repeated declaration does not shadow or renumber the original.
func (tab *Table) Declare(name string, typ ctypes.Type) Local {
	offset := tab.lastOffset + typ.SizeOf()
	local := Local{Name: name, Offset: offset, Type: typ}
	tab.locals = append(tab.locals, local)
	if _, exists := tab.byName[name]; !exists {
		tab.byName[name] = &tab.locals[len(tab.locals)-1]
	}
	tab.lastOffset = offset
	return local
}

// Lookup finds a previously declared local by name. If name was
// declared more than once, Lookup returns the first record, not the
// most recent one.
func (tab *Table) Lookup(name string) (Local, bool) {
	local, ok := tab.byName[name]
	if !ok {
		return Local{}, false
	}
	return *local, true
}

// FrameSize returns the total stack space required for this
// function's locals: the offset of the last-declared local, which by
// construction equals the sum of every local's size since offsets are
// allocated contiguously from zero.
func (tab *Table) FrameSize() int {
	return tab.lastOffset
}

// Locals returns every declared local, in declaration order.
func (tab *Table) Locals() []Local {
	return tab.locals
}
