package captree

import "fmt"

// CaptureError is the error type raised by the reifier, the decoder and
// REncodedGetCaptures (for an unknown encoding tag) for spec.md §7's
// "format / range errors surfaced to the caller" category (encoders
// report their rejections as EncodeError instead): malformed input discovered while walking an
// otherwise well-formed capture list, never a programmer-contract
// violation (those panic, see fatalError below).
type CaptureError struct {
	Message  string
	Location Location
	HasLoc   bool
}

func (e *CaptureError) Error() string {
	if e.HasLoc {
		return fmt.Sprintf("%s @ %s", e.Message, e.Location)
	}
	return e.Message
}

func newCaptureError(format string, args ...any) error {
	return &CaptureError{Message: fmt.Sprintf(format, args...)}
}

func errNoCapture(n int) error {
	return newCaptureError("no capture '%d'", n)
}

func errBackrefNotFound(name string) error {
	return newCaptureError("back reference '%s' not found", name)
}

func errNoInitialFoldValue() error {
	return newCaptureError("no initial value for fold capture")
}

func errAbsentExtraArg(n int) error {
	return newCaptureError("reference to absent extra argument #%d", n)
}

func errInvalidValue(role, typ string) error {
	return newCaptureError("invalid %s value (a %s)", role, typ)
}

func errInvalidCaptureIndex(d int) error {
	return newCaptureError("invalid capture index (%d)", d)
}

func errNoValuesInCapture(d int) error {
	return newCaptureError("no values in capture index %d", d)
}

func errCorruptMatchData() error {
	return newCaptureError("corrupt match data")
}

func errInvalidEncoding(tag int) error {
	return newCaptureError("invalid encoding value: %d", tag)
}

// fatalError marks a programmer-contract violation (spec.md §7,
// category 1). The only one raised in this package is nesting-depth
// overflow in the walker; kind mismatches come back from the encoders
// as EncodeError and unbalanced markers from the reifier and decoder
// as a "corrupt match data" CaptureError. It is not recoverable
// mid-traversal, so the walker panics with it and REncodedGetCaptures
// (api.go) recovers it into a plain error at the boundary, the same way a Lua C function's luaL_error
// unwinds through pcall without the caller ever seeing a raw signal.
type fatalError struct{ msg string }

func (e fatalError) Error() string { return e.msg }

func panicFatal(format string, args ...any) {
	panic(fatalError{msg: fmt.Sprintf(format, args...)})
}

const errMsgMaxDepthExceeded = "max pattern nesting depth exceeded"
