package captree

import "encoding/binary"

// ByteEncoder is the bit-exact compact binary encoder of spec.md §4.3 /
// §6.2, grounded on original_source/src/rcap.c's byte_{Open,Close,
// Fullcapture}: the same three fields (negated start, short name, end),
// but little-endian throughout per spec.md §9's explicit portability
// note (a documented breaking change vs. the reference on big-endian
// hosts, where the C original wrote host-order raw bytes).
type ByteEncoder struct{}

func (ByteEncoder) name(cs *CapState, buf *Buffer) error {
	v, ok := cs.ktGet(cs.cur().Idx)
	if !ok {
		return encodeErr(ROSIE_OPEN_ERROR)
	}
	name, ok := v.(String)
	if !ok {
		return encodeErr(ROSIE_OPEN_ERROR)
	}
	var lenbuf [2]byte
	binary.LittleEndian.PutUint16(lenbuf[:], uint16(int16(len(name))))
	buf.Write(lenbuf[:])
	buf.WriteString(string(name))
	return nil
}

func encodePos32(buf *Buffer, pos int, negate bool) {
	if negate {
		pos = -pos
	}
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], uint32(int32(pos)))
	buf.Write(b[:])
}

func (e ByteEncoder) Open(cs *CapState, buf *Buffer, _ int) error {
	c := cs.cur()
	if !isOpen(c) || c.Kind != Crosiecap {
		return encodeErr(ROSIE_OPEN_ERROR)
	}
	encodePos32(buf, cs.pos(c.S), true)
	return e.name(cs, buf)
}

func (e ByteEncoder) Close(cs *CapState, buf *Buffer, _ int, _ int) error {
	c := cs.cur()
	if !isClose(c) {
		return encodeErr(ROSIE_CLOSE_ERROR)
	}
	encodePos32(buf, cs.pos(c.S), false)
	return nil
}

func (e ByteEncoder) Full(cs *CapState, buf *Buffer, _ int) error {
	c := cs.cur()
	if c.Siz == 0 || c.Kind != Crosiecap {
		return encodeErr(ROSIE_FULLCAP_ERROR)
	}
	start := cs.pos(c.S)
	end := start + c.Siz - 1
	encodePos32(buf, start, true)
	if err := e.name(cs, buf); err != nil {
		return err
	}
	encodePos32(buf, end, false)
	return nil
}
