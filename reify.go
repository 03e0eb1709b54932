package captree

// pushCapture dispatches on the kind of cs.cur() (spec.md §4.7,
// "pushcapture"), pushes the produced host values onto cs.Stack,
// advances cs.Cap past the whole record (and, for grouping kinds, its
// nested subtree and matching Close), and returns how many values it
// pushed.
func pushCapture(cs *CapState) (int, error) {
	c := cs.cur()
	switch c.Kind {
	case Cposition:
		cs.Stack.push(Int(cs.pos(c.S)))
		cs.Cap++
		return 1, nil

	case Carg:
		return pushArg(cs)

	case Cruntime:
		return pushRuntimeSlot(cs)

	case Csimple:
		return pushSimple(cs)

	case Cstring:
		return pushStringCapture(cs)

	case Cbackref:
		return pushBackref(cs)

	case Ctable:
		return pushTableCapture(cs)

	case Cfunction:
		return pushFunctionCapture(cs)

	case Cnum:
		return pushNumCapture(cs)

	case Cquery:
		return pushQueryCapture(cs)

	case Cfold:
		return pushFoldCapture(cs)

	default:
		return 0, newCaptureError("unsupported capture kind %s in reifier", c.Kind)
	}
}

// ktableString resolves idx through the ktable and requires the
// result to be a String, the shape every name/format/key lookup in
// the reifier needs.
func ktableString(cs *CapState, idx int) (string, error) {
	v, ok := cs.ktGet(idx)
	if !ok {
		return "", errInvalidCaptureIndex(idx)
	}
	s, ok := v.(String)
	if !ok {
		return "", errInvalidValue("capture name", v.Type())
	}
	return string(s), nil
}

// pushNestedValues is spec.md §4.7's pushnestedvalues(addextra) helper.
// cs.Cap must be positioned at the record itself (Full or Open); on
// return cs.Cap is positioned just past it (past the matching Close,
// for an Open).
func pushNestedValues(cs *CapState, addExtra bool) (int, error) {
	c := cs.cur()
	if isFull(c) {
		cs.Stack.push(String(cs.Subject[c.S:c.end()]))
		cs.Cap++
		return 1, nil
	}
	if !isOpen(c) {
		return 0, errCorruptMatchData()
	}

	openStart := c.S
	cs.Cap++
	n := 0
	for !cs.atEnd() && !isClose(cs.cur()) {
		k, err := pushCapture(cs)
		if err != nil {
			return 0, err
		}
		n += k
	}
	if cs.atEnd() {
		return 0, errCorruptMatchData()
	}
	closeStart := cs.cur().S
	if addExtra || n == 0 {
		cs.Stack.push(String(cs.Subject[openStart:closeStart]))
		n++
	}
	cs.Cap++
	return n, nil
}

// skipSubtree advances cs.Cap past one record's full extent (itself,
// and for an Open record its children and matching Close) without
// evaluating it or touching cs.Stack. Used by the string-capture
// engine (§4.10) to remember a deferred sub-capture's position without
// evaluating it up front.
func skipSubtree(cs *CapState) error {
	c := cs.cur()
	if isFull(c) {
		cs.Cap++
		return nil
	}
	if !isOpen(c) {
		return errCorruptMatchData()
	}
	cs.Cap++
	for !cs.atEnd() && !isClose(cs.cur()) {
		if err := skipSubtree(cs); err != nil {
			return err
		}
	}
	if cs.atEnd() {
		return errCorruptMatchData()
	}
	cs.Cap++
	return nil
}

func pushArg(cs *CapState) (int, error) {
	c := cs.cur()
	fixed := 0
	if cs.Cfg != nil {
		fixed = cs.Cfg.GetInt("reifier.fixedargs")
	}
	idx := c.Idx + fixed
	if idx < 0 || idx >= len(cs.ExtraArgs) {
		return 0, errAbsentExtraArg(c.Idx)
	}
	cs.Stack.push(cs.ExtraArgs[idx])
	cs.Cap++
	return 1, nil
}

func pushRuntimeSlot(cs *CapState) (int, error) {
	c := cs.cur()
	if c.Idx < 0 || c.Idx >= cs.Stack.len() {
		return 0, errInvalidCaptureIndex(c.Idx)
	}
	cs.Stack.push(cs.Stack.values[c.Idx])
	cs.Cap++
	return 1, nil
}

// pushSimple reifies nested values then rotates the whole-match string
// (appended last by pushNestedValues(true)) to the front.
func pushSimple(cs *CapState) (int, error) {
	n, err := pushNestedValues(cs, true)
	if err != nil {
		return 0, err
	}
	cs.Stack.rotateLastToFront(n)
	return n, nil
}

func pushFunctionCapture(cs *CapState) (int, error) {
	c := cs.cur()
	fnVal, ok := cs.ktGet(c.Idx)
	if !ok {
		return 0, errInvalidCaptureIndex(c.Idx)
	}
	fn, ok := fnVal.(Func)
	if !ok {
		return 0, errInvalidValue("function capture", fnVal.Type())
	}

	n, err := pushNestedValues(cs, false)
	if err != nil {
		return 0, err
	}
	args := cs.Stack.popN(n)
	results, err := fn(args)
	if err != nil {
		return 0, err
	}
	cs.Stack.pushAll(results)
	return len(results), nil
}

func pushNumCapture(cs *CapState) (int, error) {
	c := cs.cur()
	idx := c.Idx
	n, err := pushNestedValues(cs, false)
	if err != nil {
		return 0, err
	}
	vals := cs.Stack.popN(n)
	if idx == 0 {
		return 0, nil
	}
	if idx > len(vals) {
		return 0, errNoCapture(idx)
	}
	cs.Stack.push(vals[idx-1])
	return 1, nil
}

func pushQueryCapture(cs *CapState) (int, error) {
	c := cs.cur()
	recordAt := cs.Cap
	n, err := pushNestedValues(cs, false)
	if err != nil {
		return 0, err
	}
	vals := cs.Stack.popN(n)
	if len(vals) == 0 {
		return 0, errNoValuesInCapture(recordAt)
	}

	mapVal, ok := cs.ktGet(c.Idx)
	if !ok {
		return 0, errInvalidCaptureIndex(c.Idx)
	}
	tbl, ok := mapVal.(*Table)
	if !ok {
		return 0, errInvalidValue("query table", mapVal.Type())
	}
	v, found := tbl.Get(vals[0])
	if !found {
		return 0, nil
	}
	cs.Stack.push(v)
	return 1, nil
}

func pushFoldCapture(cs *CapState) (int, error) {
	c := cs.cur()
	if !isOpen(c) {
		return 0, errCorruptMatchData()
	}
	cs.Cap++

	fnVal, ok := cs.ktGet(c.Idx)
	if !ok {
		return 0, errInvalidCaptureIndex(c.Idx)
	}
	fn, ok := fnVal.(Func)
	if !ok {
		return 0, errInvalidValue("fold function", fnVal.Type())
	}

	var acc Value
	haveAcc := false
	for !cs.atEnd() && !isClose(cs.cur()) {
		n, err := pushCapture(cs)
		if err != nil {
			return 0, err
		}
		for _, v := range cs.Stack.popN(n) {
			if !haveAcc {
				acc, haveAcc = v, true
				continue
			}
			results, err := fn([]Value{acc, v})
			if err != nil {
				return 0, err
			}
			if len(results) == 0 {
				return 0, errNoInitialFoldValue()
			}
			acc = results[0]
		}
	}
	if cs.atEnd() {
		return 0, errCorruptMatchData()
	}
	cs.Cap++

	if !haveAcc {
		return 0, errNoInitialFoldValue()
	}
	cs.Stack.push(acc)
	return 1, nil
}

// GetCaptures is the classic-mode entry point of spec.md §6.1
// ("getcaptures"): it walks the whole capture list through the
// reifier, pushing every produced value onto cs.Stack. If no captures
// exist, or none produced a value, it pushes the 1-based end position
// of the match as the sole result.
func GetCaptures(cs *CapState, matchEnd int) (int, error) {
	cs.resetCache()
	total := 0
	for !cs.atEnd() && !isFinal(cs.cur()) {
		offset := cs.cur().S
		n, err := pushCapture(cs)
		if err != nil {
			return 0, cs.withLocation(err, offset)
		}
		total += n
	}
	if total == 0 {
		cs.Stack.push(Int(pos1(matchEnd)))
		total = 1
	}
	return total, nil
}
