package captree

import "encoding/binary"

// byteReader is a bounds-checked cursor over a ByteEncoder buffer,
// grounded on original_source/src/rcap.c's r_lua_decode read helpers
// (pos/len pairs with an explicit "corrupt match data" bounds check
// before every read).
type byteReader struct {
	data []byte
	pos  int
}

func (r *byteReader) need(n int) error {
	if r.pos+n > len(r.data) {
		return errCorruptMatchData()
	}
	return nil
}

func (r *byteReader) readI32() (int32, error) {
	if err := r.need(4); err != nil {
		return 0, err
	}
	v := int32(binary.LittleEndian.Uint32(r.data[r.pos:]))
	r.pos += 4
	return v, nil
}

func (r *byteReader) peekI32() (int32, bool) {
	if r.pos+4 > len(r.data) {
		return 0, false
	}
	return int32(binary.LittleEndian.Uint32(r.data[r.pos:])), true
}

func (r *byteReader) readI16() (int16, error) {
	if err := r.need(2); err != nil {
		return 0, err
	}
	v := int16(binary.LittleEndian.Uint16(r.data[r.pos:]))
	r.pos += 2
	return v, nil
}

func (r *byteReader) readBytes(n int) ([]byte, error) {
	if err := r.need(n); err != nil {
		return nil, err
	}
	b := r.data[r.pos : r.pos+n]
	r.pos += n
	return b, nil
}

// DecodeByteTree is the inverse of ByteEncoder (spec.md §4.4): it reads
// one encoded node (and, recursively, its children) and returns a
// MatchNode tree. buf must contain exactly one top-level node, the same
// invariant ByteEncoder produces.
func DecodeByteTree(buf []byte) (*MatchNode, error) {
	r := &byteReader{data: buf}
	node, err := decodeNode(r)
	if err != nil {
		return nil, err
	}
	return node, nil
}

func decodeNode(r *byteReader) (*MatchNode, error) {
	posField, err := r.readI32()
	if err != nil {
		return nil, err
	}
	if posField > 0 {
		return nil, newCaptureError("expected start marker")
	}
	start := int(-posField)

	nameLen, err := r.readI16()
	if err != nil {
		return nil, err
	}

	var data []byte
	if nameLen <= 0 {
		data, err = r.readBytes(int(-nameLen))
		if err != nil {
			return nil, err
		}
		nameLen, err = r.readI16()
		if err != nil {
			return nil, err
		}
		if nameLen <= 0 {
			return nil, errCorruptMatchData()
		}
	}

	nameBytes, err := r.readBytes(int(nameLen))
	if err != nil {
		return nil, err
	}
	node := &MatchNode{S: start, Type: string(nameBytes), Data: data}

	for {
		peek, ok := r.peekI32()
		if !ok || peek >= 0 {
			break
		}
		child, err := decodeNode(r)
		if err != nil {
			return nil, err
		}
		node.Subs = append(node.Subs, child)
	}

	endField, err := r.readI32()
	if err != nil {
		return nil, err
	}
	node.E = int(endField)
	return node, nil
}
