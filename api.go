package captree

// EncodingTag selects the output format of REncodedGetCaptures
// (spec.md §6.1's "encoding_tag").
type EncodingTag int

const (
	ENCODE_DEBUG EncodingTag = iota
	ENCODE_BYTE
	ENCODE_JSON
	ENCODE_LINE
)

const outputBufferKey = "output_buffer_key"

// recoverFatal turns a panicFatal (errMsgMaxDepthExceeded and similar
// programmer-contract violations) into a plain returned error at the
// package's public boundary, the way the teacher's CLI (cmd/langlang)
// recovers from parser panics before printing a diagnostic.
func recoverFatal(err *error) {
	if r := recover(); r != nil {
		if fe, ok := r.(fatalError); ok {
			*err = fe
			return
		}
		panic(r)
	}
}

// REncodedGetCaptures is spec.md §6.1's r_getcaptures: it drives the
// walker over cs with the encoder tag selects, returning the encoded
// buffer, how many subject bytes were left unconsumed past matchEnd,
// and whether the traversal had to synthesize closes for an abend.
//
// ENCODE_LINE bypasses the walker entirely and copies the whole
// subject into the output buffer, per spec.md §6.1.
func REncodedGetCaptures(cs *CapState, tag EncodingTag, matchEnd, subjectLen int, pool *BufferPool) (out []byte, leftover int, abend bool, err error) {
	defer recoverFatal(&err)

	cs.resetCache()

	var buf *Buffer
	if pool != nil && cs.Cfg.GetBool("buffer.pooled") {
		buf = pool.Get(outputBufferKey)
	} else {
		buf = NewBuffer()
	}

	if tag == ENCODE_LINE {
		buf.Write(cs.Subject)
		return buf.Bytes(), subjectLen - matchEnd, false, nil
	}

	var enc Encoder
	switch tag {
	case ENCODE_DEBUG:
		enc = DebugEncoder{}
	case ENCODE_BYTE:
		enc = ByteEncoder{}
	case ENCODE_JSON:
		enc = &JSONEncoder{}
	default:
		return nil, 0, false, errInvalidEncoding(int(tag))
	}

	// A capture list that never reaches a Rosie frame (e.g. a lone
	// Cposition left over from a pattern with no named captures) has
	// nothing for these three encoders to emit — spec.md §8 scenario S1.
	// The walker's own precondition is "begins with a Rosie capture", so
	// that case is handled here rather than as a Walk error.
	if !startsRosie(cs) {
		leftover = subjectLen - matchEnd
		return buf.Bytes(), leftover, false, nil
	}

	code, werr := Walk(cs, enc, buf)
	if werr != nil {
		return nil, 0, false, werr
	}

	leftover = subjectLen - matchEnd
	return buf.Bytes(), leftover, code == ROSIE_HALT, nil
}

// startsRosie reports whether cs is positioned at a record the Rosie
// encoders (byte/JSON/debug) can actually emit anything for.
func startsRosie(cs *CapState) bool {
	if cs.atEnd() || isFinal(cs.cur()) {
		return false
	}
	k := cs.cur().Kind
	return k == Crosiecap || k == Crosiesimple
}

// CreateMatch is spec.md §6.1's r_create_match: it produces the
// {name: {pos, text, subs}} shaped host value a Cfunction capture (or
// a caller building a match result by hand) can return.
func CreateMatch(name string, pos int, text string, subs ...Value) Value {
	inner := NewTable()
	inner.Map["pos"] = Int(pos)
	inner.Map["text"] = String(text)
	inner.Array = append(inner.Array, subs...)

	outer := NewTable()
	outer.Map[name] = inner
	return outer
}
