package captree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLineIndexLocationAt(t *testing.T) {
	li := NewLineIndex([]byte("ab\ncd\nef"))

	loc := li.LocationAt(0)
	assert.Equal(t, int32(1), loc.Line)
	assert.Equal(t, int32(1), loc.Column)

	loc = li.LocationAt(4) // 'd' on the second line
	assert.Equal(t, int32(2), loc.Line)
	assert.Equal(t, int32(2), loc.Column)

	loc = li.LocationAt(6) // 'e' on the third line
	assert.Equal(t, int32(3), loc.Line)
	assert.Equal(t, int32(1), loc.Column)
}

func TestLineIndexClampsOutOfRangeCursors(t *testing.T) {
	li := NewLineIndex([]byte("abc"))

	assert.Equal(t, int32(1), li.LocationAt(-5).Line)
	assert.Equal(t, int32(1), li.LocationAt(1000).Line)
}

func TestLineIndexRange(t *testing.T) {
	li := NewLineIndex([]byte("ab\ncd"))
	start, end := li.Range(Range{Start: 0, End: 4})
	assert.Equal(t, int32(1), start.Line)
	assert.Equal(t, int32(2), end.Line)
}
