package captree

// RuntimeCap implements spec.md §4.11/§6.1's runtimecap entry point: a
// Cmt-style dynamic capture discovered mid-match. It resolves the
// capture's function from the ktable, calls it with the subject, the
// current 1-based position and the already-reified nested captures,
// then pushes the results onto cs.Stack. Values that earlier calls
// pushed stay on the stack: nothing is removed, and the returned
// removed count is always 0.
//
// closeCursor is the index of the Cruntime record driving this call;
// currentPos is the VM's current 0-based subject offset.
func RuntimeCap(cs *CapState, closeCursor int, currentPos int) (removed int, err error) {
	saved := cs.Cap
	cs.Cap = closeCursor
	cs.resetCache()
	c := cs.cur()

	fnVal, ok := cs.ktGet(c.Idx)
	if !ok {
		cs.Cap = saved
		return 0, cs.withLocation(errInvalidCaptureIndex(c.Idx), currentPos)
	}
	fn, ok := fnVal.(Func)
	if !ok {
		cs.Cap = saved
		return 0, cs.withLocation(errInvalidValue("runtime capture function", fnVal.Type()), currentPos)
	}

	base := cs.Stack.len()
	args := []Value{String(cs.Subject), Int(pos1(currentPos))}
	n, nerr := pushNestedValues(cs, false)
	if nerr != nil {
		cs.Cap = saved
		return 0, cs.withLocation(nerr, currentPos)
	}
	args = append(args, cs.Stack.popN(n)...)

	results, ferr := fn(args)
	if ferr != nil {
		cs.Cap = saved
		return 0, cs.withLocation(ferr, currentPos)
	}

	// popN above left the stack back at base, so removed is 0 and dropTo
	// leaves the stack unchanged before the results are pushed.
	removed = cs.Stack.len() - base
	cs.Stack.dropTo(base)
	cs.Stack.pushAll(results)

	cs.Cap = saved
	return removed, nil
}
