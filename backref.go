package captree

// findback implements spec.md §4.8: starting from the capture
// immediately preceding cs.Caps[from], scan leftward for a Crosiecap
// record whose ktable name equals name. The first match found wins
// (closest enclosing-or-prior occurrence); ambiguity is not an error.
//
// Grounded on the teacher's leftward-scan idioms are absent (the
// teacher repo's VM only ever scans forward); this is instead modelled
// directly on original_source/src/lpcap.c's findback/findopen pair.
func findback(cs *CapState, from int, name string) (int, error) {
	i := from - 1
	for i >= 0 {
		c := &cs.Caps[i]
		if isClose(c) {
			// Jump over the whole group this Close ends and examine its Open.
			i = findOpenIndex(cs, i)
			c = &cs.Caps[i]
		} else if isOpen(c) {
			// An Open reached without its Close encloses the reference.
			i--
			continue
		}
		if c.Kind == Crosiecap {
			if v, ok := cs.ktGet(c.Idx); ok {
				if s, ok := v.(String); ok && string(s) == name {
					return i, nil
				}
			}
		}
		i--
	}
	return 0, errBackrefNotFound(name)
}

// findOpenIndex scans left from closeIdx (a Close record) counting
// nested Close/Open pairs until it finds the Open that closeIdx
// terminates, returning that Open's index.
func findOpenIndex(cs *CapState, closeIdx int) int {
	depth := 1
	for i := closeIdx - 1; i >= 0; i-- {
		c := &cs.Caps[i]
		switch {
		case isClose(c):
			depth++
		case isOpen(c):
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return 0
}

// pushBackref resolves a Cbackref record: find the named capture to
// the left, then reify it as if it were the current capture, without
// permanently moving cs.Cap off the backref's own successor.
func pushBackref(cs *CapState) (int, error) {
	c := cs.cur()
	nameVal, ok := cs.ktGet(c.Idx)
	if !ok {
		return 0, errBackrefNotFound("")
	}
	name, ok := nameVal.(String)
	if !ok {
		return 0, errInvalidValue("back reference name", nameVal.Type())
	}

	foundIdx, err := findback(cs, cs.Cap, string(name))
	if err != nil {
		return 0, err
	}

	resume := cs.Cap + 1
	cs.Cap = foundIdx
	n, err := pushNestedValues(cs, false)
	cs.Cap = resume
	if err != nil {
		return 0, err
	}
	return n, nil
}
