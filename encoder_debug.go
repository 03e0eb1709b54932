package captree

import "fmt"

// DebugEncoder writes a human-readable trace of every Open/Close/Full
// event to an io.Writer-like sink (here, a *Buffer standing in for
// stderr so the encoder stays pure and testable) — spec.md §4.6,
// grounded on the teacher's treePrinter (tree_printer.go) for the
// "write one line per event" idiom, but driven by the walker rather
// than a tree already in hand.
type DebugEncoder struct{}

func (DebugEncoder) ktableName(cs *CapState, idx int) string {
	v, ok := cs.ktGet(idx)
	if !ok {
		return "<none>"
	}
	return v.String()
}

func (e DebugEncoder) Open(cs *CapState, buf *Buffer, siblingCount int) error {
	c := cs.cur()
	if !isOpen(c) {
		return encodeErr(ROSIE_OPEN_ERROR)
	}
	buf.WriteString(fmt.Sprintf("OPEN  kind=%s pos=%d loc=%s idx=%d ktable=%q sibling=%d\n",
		c.Kind, cs.pos(c.S), cs.locationAt(c.S), c.Idx, e.ktableName(cs, c.Idx), siblingCount))
	return nil
}

func (e DebugEncoder) Close(cs *CapState, buf *Buffer, childCount int, openStart int) error {
	c := cs.cur()
	if !isClose(c) {
		return encodeErr(ROSIE_CLOSE_ERROR)
	}
	buf.WriteString(fmt.Sprintf("CLOSE pos=%d loc=%s open=%d children=%d\n",
		cs.pos(c.S), cs.locationAt(c.S), cs.pos(openStart), childCount))
	return nil
}

func (e DebugEncoder) Full(cs *CapState, buf *Buffer, siblingCount int) error {
	c := cs.cur()
	if c.Siz == 0 {
		return encodeErr(ROSIE_FULLCAP_ERROR)
	}
	buf.WriteString(fmt.Sprintf("FULL  kind=%s pos=%d loc=%s size=%d idx=%d ktable=%q sibling=%d\n",
		c.Kind, cs.pos(c.S), cs.locationAt(c.S), c.size(), c.Idx, e.ktableName(cs, c.Idx), siblingCount))
	return nil
}
