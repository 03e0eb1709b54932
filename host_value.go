package captree

import (
	"fmt"
	"strings"
)

// Value is a value produced by the classic-mode reifier (GetCaptures)
// and left on the host stack. The host runtime itself (spec.md §1,
// "the host value-stack runtime") is out of scope; Value is the
// minimal surface the reifier needs: something it can stringify, call
// as a function, and index as a mapping.
type Value interface {
	Type() string
	String() string
}

// String is a byte-range-backed or literal string value, the most
// common result of reifying a capture.
type String string

func (String) Type() string     { return "string" }
func (s String) String() string { return string(s) }

// Int is the integer value pushed by Cposition and by GetCaptures'
// "push only the end position" fallback.
type Int int

func (Int) Type() string     { return "number" }
func (i Int) String() string { return fmt.Sprintf("%d", int(i)) }

// Table is the tagged map produced by Ctable (§4.9): a named group
// child becomes a map entry; everything else is appended under
// consecutive, 1-based positive-integer keys exactly like the Lua
// original's lua_rawseti loop.
type Table struct {
	Map   map[string]Value
	Array []Value
}

func NewTable() *Table {
	return &Table{Map: map[string]Value{}}
}

func (*Table) Type() string { return "table" }

func (t *Table) String() string {
	var b strings.Builder
	b.WriteString("{")
	first := true
	for _, v := range t.Array {
		if !first {
			b.WriteString(", ")
		}
		first = false
		b.WriteString(v.String())
	}
	for k, v := range t.Map {
		if !first {
			b.WriteString(", ")
		}
		first = false
		fmt.Fprintf(&b, "%s=%s", k, v.String())
	}
	b.WriteString("}")
	return b.String()
}

// Get implements the mapping lookup Cquery requires: ktable[idx] must
// be a mapping (here, a *Table) to index into.
func (t *Table) Get(key Value) (Value, bool) {
	s, ok := key.(String)
	if !ok {
		return nil, false
	}
	v, ok := t.Map[string(s)]
	return v, ok
}

// Func is a host callable invoked by Cfunction and resolved by Cfold
// (the folding function at ktable[idx]) and by RuntimeCap (§4.11).
type Func func(args []Value) ([]Value, error)

func (Func) Type() string   { return "function" }
func (Func) String() string { return "<function>" }
