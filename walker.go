package captree

// walkFrame is one entry of the tree walker's depth stack: the 0-based
// cursor index of the Open record that started this level, and the
// sibling count the *parent* level had accumulated at the moment this
// child was opened (restored, then incremented, once this level closes).
type walkFrame struct {
	openAt     int
	savedCount int
}

// Walk drives enc over the capture list starting at cs.Cap, which must
// point at the outermost Open or Full record (spec.md §3: "A Rosie
// well-formed list always begins with a single outermost Rosie
// capture"). It returns ROSIE_OK on a normal traversal, ROSIE_HALT if
// a Final sentinel forced synthetic closes (spec.md §4.1), or an error
// if an encoder callback rejected a record or a leading Full record is
// not followed by a Close or Final.
//
// Nesting overflow is a programmer-contract violation (spec.md §7): it
// panics with errMsgMaxDepthExceeded rather than returning an error;
// callers that want that recovered into a plain error should route
// through REncodedGetCaptures, which recovers at the boundary.
func Walk(cs *CapState, enc Encoder, buf *Buffer) (ExitCode, error) {
	if cs.atEnd() {
		return ROSIE_OK, nil
	}

	maxDepth := 256
	if cs.Cfg != nil {
		maxDepth = cs.Cfg.GetInt("walker.maxdepth")
	}

	first := cs.cur()
	if isFull(first) {
		if err := enc.Full(cs, buf, 0); err != nil {
			return ROSIE_OK, err
		}
		cs.Cap++
		if cs.atEnd() || (!isClose(cs.cur()) && !isFinal(cs.cur())) {
			return ROSIE_OK, encodeErr(ROSIE_OPEN_ERROR)
		}
		return ROSIE_OK, nil
	}

	var stack []walkFrame
	count := 0

	push := func(openAt int) {
		if len(stack) >= maxDepth {
			panicFatal(errMsgMaxDepthExceeded)
		}
		stack = append(stack, walkFrame{openAt: openAt, savedCount: count})
		count = 0
	}

	push(cs.Cap)
	if err := enc.Open(cs, buf, 0); err != nil {
		return ROSIE_OK, err
	}
	cs.Cap++

	for len(stack) > 0 {
		for !cs.atEnd() && !isClose(cs.cur()) && !isFinal(cs.cur()) {
			if isOpen(cs.cur()) {
				sibling := count
				push(cs.Cap)
				if err := enc.Open(cs, buf, sibling); err != nil {
					return ROSIE_OK, err
				}
			} else {
				if err := enc.Full(cs, buf, count); err != nil {
					return ROSIE_OK, err
				}
				count++
			}
			cs.Cap++
		}

		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		childCount := count

		if !cs.atEnd() && isFinal(cs.cur()) {
			synthetic := Capture{Kind: Cclose, Siz: 1, S: cs.cur().S}
			cs.Caps[cs.Cap] = synthetic

			if err := enc.Close(cs, buf, childCount, cs.Caps[top.openAt].S); err != nil {
				return ROSIE_HALT, err
			}
			for len(stack) > 0 {
				childCount = top.savedCount + 1
				top = stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				if err := enc.Close(cs, buf, childCount, cs.Caps[top.openAt].S); err != nil {
					return ROSIE_HALT, err
				}
			}
			return ROSIE_HALT, nil
		}

		if err := enc.Close(cs, buf, childCount, cs.Caps[top.openAt].S); err != nil {
			return ROSIE_OK, err
		}
		cs.Cap++
		count = top.savedCount + 1
	}

	return ROSIE_OK, nil
}
