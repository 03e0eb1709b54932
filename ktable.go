package captree

// Ktable is the read-only table of pattern-local payloads (names,
// functions, constants) that captures reference by integer index.
// Populating it is out of scope (spec.md §1: "the registry of pattern
// metadata ... that resolves symbolic capture indices to arbitrary
// payload values"); the processor only ever needs to Get by index.
type Ktable interface {
	Get(idx int) (Value, bool)
}

// SliceKtable is a []Value-backed Ktable, sufficient for tests, the
// CLI fixture loader, and any embedder whose compiled grammar already
// produces a dense symbol table (the way clarete-langlang's grammar_ast
// AST nodes resolve identifiers today).
type SliceKtable []Value

func (kt SliceKtable) Get(idx int) (Value, bool) {
	if idx < 0 || idx >= len(kt) {
		return nil, false
	}
	return kt[idx], true
}

// ktableCache memoizes the single most recently resolved ktable index,
// per spec.md §3's "valuecached: last resolved ktable index (−1
// sentinel) for single-slot memoisation" and §5's "reset to 0 at the
// start of each traversal" (we use -1 as the sentinel since 0 is a
// valid index).
type ktableCache struct {
	kt    Ktable
	idx   int
	value Value
}

func newKtableCache(kt Ktable) *ktableCache {
	return &ktableCache{kt: kt, idx: -1}
}

func (c *ktableCache) get(idx int) (Value, bool) {
	if idx == c.idx {
		return c.value, true
	}
	v, ok := c.kt.Get(idx)
	if ok {
		c.idx = idx
		c.value = v
	}
	return v, ok
}

func (c *ktableCache) reset() {
	c.idx = -1
	c.value = nil
}
