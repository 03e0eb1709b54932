package captree

// CapState is the transient state of one traversal of a capture list
// (spec.md §3, "Capture state"). It owns a cursor into the immutable
// capture array, the subject being matched, the ktable cache, and (in
// classic mode) the host value stack. A CapState is used for exactly
// one traversal and then discarded — see spec.md §5.
type CapState struct {
	// Caps is the full, immutable capture array (spec.md's `ocap`).
	Caps []Capture

	// Cap is the 0-based cursor index into Caps (spec.md's `cap`).
	// Design notes (§9) call for array indices rather than owning
	// pointers so cursors stay non-owning.
	Cap int

	// Subject is the matched byte range (spec.md's `s`, the subject base).
	Subject []byte

	// ExtraArgs are the host values available to Carg captures, indexed
	// starting at cs.Cfg's "reifier.fixedargs" offset (spec.md §4.7).
	ExtraArgs []Value

	kt    *ktableCache
	Stack *hostStack
	Cfg   *Config
	li    *LineIndex
}

// NewCapState builds a CapState ready to drive either the tree walker
// or the classic reifier over caps, matched against subject.
func NewCapState(caps []Capture, subject []byte, kt Ktable, cfg *Config) *CapState {
	if cfg == nil {
		cfg = NewConfig()
	}
	return &CapState{
		Caps:    caps,
		Subject: subject,
		kt:      newKtableCache(kt),
		Stack:   &hostStack{},
		Cfg:     cfg,
	}
}

func (cs *CapState) cur() *Capture {
	return &cs.Caps[cs.Cap]
}

func (cs *CapState) atEnd() bool {
	return cs.Cap >= len(cs.Caps)
}

// ktGet resolves idx through the single-slot memoisation cache.
func (cs *CapState) ktGet(idx int) (Value, bool) {
	return cs.kt.get(idx)
}

// resetCache clears the value-cache memo slot; called at the start of
// every fresh traversal and by RuntimeCap before re-entering pushcapture.
func (cs *CapState) resetCache() {
	cs.kt.reset()
}

// pos reports the externally visible 1-based position of a 0-based
// subject offset.
func (cs *CapState) pos(offset int) int {
	return pos1(offset)
}

// lineIndex lazily builds (and caches across the traversal) the
// LineIndex used to annotate CaptureError and the debug encoder's
// trace with a line:col alongside the raw byte offset.
func (cs *CapState) lineIndex() *LineIndex {
	if cs.li == nil {
		cs.li = NewLineIndex(cs.Subject)
	}
	return cs.li
}

// locationAt reports the line:col Location of a 0-based subject offset.
func (cs *CapState) locationAt(offset int) Location {
	return cs.lineIndex().LocationAt(offset)
}

// withLocation annotates err with the line:col of offset when err is a
// *CaptureError, and returns it unchanged otherwise (e.g. EncodeError,
// which has no subject position to report).
func (cs *CapState) withLocation(err error, offset int) error {
	ce, ok := err.(*CaptureError)
	if !ok {
		return err
	}
	ce.Location = cs.locationAt(offset)
	ce.HasLoc = true
	return ce
}
