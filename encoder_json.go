package captree

import (
	"strconv"
	"strings"
)

// JSONEncoder renders a capture list as textual JSON (spec.md §4.5),
// the bit-exact counterpart to ByteEncoder: the same {s,type,subs,e}
// shape, streamed directly into buf rather than built as a tree first
// so the two encoders share the walker/Encoder contract.
//
// It must be used via a pointer (or a fresh value) per traversal: it
// tracks whether the root object has been opened yet, since the root
// Open/Full call is the one case where siblingCount==0 must NOT be
// read as "first child of a parent" (there is no parent to attach a
// "subs" array to).
type JSONEncoder struct {
	started bool
}

func jsonQuote(buf *Buffer, s string) {
	buf.WriteByte('"')
	buf.WriteString(strings.NewReplacer(`\`, `\\`, `"`, `\"`).Replace(s))
	buf.WriteByte('"')
}

func (*JSONEncoder) typeName(cs *CapState) (string, error) {
	v, ok := cs.ktGet(cs.cur().Idx)
	if !ok {
		return "", encodeErr(ROSIE_OPEN_ERROR)
	}
	name, ok := v.(String)
	if !ok {
		return "", encodeErr(ROSIE_OPEN_ERROR)
	}
	return string(name), nil
}

// prefix writes the punctuation that precedes a sibling object: nothing
// for the very first (root) object, ",\"subs\":[" for the first child
// of whatever frame is currently open, "," for every later sibling.
func (e *JSONEncoder) prefix(buf *Buffer, siblingCount int) {
	switch {
	case !e.started:
		e.started = true
	case siblingCount == 0:
		buf.WriteString(`,"subs":[`)
	default:
		buf.WriteByte(',')
	}
}

func (e *JSONEncoder) Open(cs *CapState, buf *Buffer, siblingCount int) error {
	c := cs.cur()
	if !isOpen(c) || c.Kind != Crosiecap {
		return encodeErr(ROSIE_OPEN_ERROR)
	}
	name, err := e.typeName(cs)
	if err != nil {
		return err
	}
	e.prefix(buf, siblingCount)
	buf.WriteString(`{"s":`)
	buf.WriteString(strconv.Itoa(cs.pos(c.S)))
	buf.WriteString(`,"type":`)
	jsonQuote(buf, name)
	return nil
}

func (e *JSONEncoder) Full(cs *CapState, buf *Buffer, siblingCount int) error {
	c := cs.cur()
	if c.Siz == 0 || c.Kind != Crosiecap {
		return encodeErr(ROSIE_FULLCAP_ERROR)
	}
	name, err := e.typeName(cs)
	if err != nil {
		return err
	}
	start := cs.pos(c.S)
	end := start + c.Siz - 1
	e.prefix(buf, siblingCount)
	buf.WriteString(`{"s":`)
	buf.WriteString(strconv.Itoa(start))
	buf.WriteString(`,"type":`)
	jsonQuote(buf, name)
	buf.WriteString(`,"e":`)
	buf.WriteString(strconv.Itoa(end))
	buf.WriteByte('}')
	return nil
}

// Close prints the closing "]" only when the matching Open actually had
// children (childCount > 0, spec.md §4.5's exact rule), then the
// trailing ,"e":n}.
func (*JSONEncoder) Close(cs *CapState, buf *Buffer, childCount int, _ int) error {
	c := cs.cur()
	if !isClose(c) {
		return encodeErr(ROSIE_CLOSE_ERROR)
	}
	if childCount > 0 {
		buf.WriteByte(']')
	}
	buf.WriteString(`,"e":`)
	buf.WriteString(strconv.Itoa(cs.pos(c.S)))
	buf.WriteByte('}')
	return nil
}
