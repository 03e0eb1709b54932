package captree

// pushTableCapture builds a single tagged-map value from the nested
// captures of a Ctable record (spec.md §4.9). The legacy Lua/LPEG
// lineage discriminates a "named group child" by a dedicated Cgroup
// kind; per the Rosie-only redesign (capture.go, DESIGN.md) that kind
// is dropped from the enum, so a direct nested child is instead
// treated as named whenever its own Idx names a ktable key (Idx != 0)
// — the same discriminator the original used, just read off the
// child's own record instead of a separate wrapper kind. A nested
// Ctable or Cfold child is never treated as named, whatever its Idx.
func pushTableCapture(cs *CapState) (int, error) {
	c := cs.cur()
	if !isOpen(c) {
		return 0, errCorruptMatchData()
	}
	cs.Cap++

	tbl := NewTable()
	for !cs.atEnd() && !isClose(cs.cur()) {
		child := cs.cur()
		named := child.Idx != 0 && child.Kind != Ctable && child.Kind != Cfold
		var key string
		if named {
			k, err := ktableString(cs, child.Idx)
			if err != nil {
				return 0, err
			}
			key = k
		}

		n, err := pushCapture(cs)
		if err != nil {
			return 0, err
		}
		vals := cs.Stack.popN(n)

		if named {
			if len(vals) > 0 {
				tbl.Map[key] = vals[0]
			} else {
				tbl.Map[key] = String("")
			}
			continue
		}
		tbl.Array = append(tbl.Array, vals...)
	}
	if cs.atEnd() {
		return 0, errCorruptMatchData()
	}
	cs.Cap++

	cs.Stack.push(tbl)
	return 1, nil
}
