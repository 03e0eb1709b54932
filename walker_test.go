package captree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

// recordingEncoder captures every callback invocation for assertions
// about call order and child counts, independent of any one wire format.
type recordingEncoder struct {
	events []string
}

func (r *recordingEncoder) Open(cs *CapState, _ *Buffer, sibling int) error {
	r.events = append(r.events, "open")
	return nil
}

func (r *recordingEncoder) Close(cs *CapState, _ *Buffer, childCount, openStart int) error {
	r.events = append(r.events, "close")
	return nil
}

func (r *recordingEncoder) Full(cs *CapState, _ *Buffer, sibling int) error {
	r.events = append(r.events, "full")
	return nil
}

func TestWalkEventBalance(t *testing.T) {
	// Open/Full/Full/Close — 1 Open must pair with 1 Close.
	caps := []Capture{
		{S: 0, Siz: 0, Kind: Crosiecap, Idx: 0},
		{S: 0, Siz: 2, Kind: Crosiecap, Idx: 1},
		{S: 1, Siz: 2, Kind: Crosiecap, Idx: 2},
		{Kind: Cclose, Siz: 1, S: 2},
	}
	cs := NewCapState(caps, []byte("ab"), SliceKtable{String("p"), String("l"), String("r")}, nil)
	enc := &recordingEncoder{}
	code, err := Walk(cs, enc, NewBuffer())

	require.NoError(t, err)
	require.Equal(t, ROSIE_OK, code)
	require.Equal(t, []string{"open", "full", "full", "close"}, enc.events)
}

func TestWalkAbendSynthesizesClosesUntilStackEmpty(t *testing.T) {
	caps := []Capture{
		{S: 0, Siz: 0, Kind: Crosiecap, Idx: 0},
		{S: 0, Siz: 0, Kind: Crosiecap, Idx: 1},
		{S: 1, Final: true},
	}
	cs := NewCapState(caps, []byte("a"), SliceKtable{String("a"), String("b")}, nil)
	enc := &recordingEncoder{}
	code, err := Walk(cs, enc, NewBuffer())

	require.NoError(t, err)
	require.Equal(t, ROSIE_HALT, code)
	require.Equal(t, []string{"open", "open", "close", "close"}, enc.events)
}

func TestWalkSingleFullRecord(t *testing.T) {
	caps := []Capture{
		{S: 0, Siz: 4, Kind: Crosiecap, Idx: 0},
		{Kind: Cclose, Siz: 1, S: 4},
	}
	cs := NewCapState(caps, []byte("abcd"), SliceKtable{String("word")}, nil)
	enc := &recordingEncoder{}
	code, err := Walk(cs, enc, NewBuffer())

	require.NoError(t, err)
	require.Equal(t, ROSIE_OK, code)
	require.Equal(t, []string{"full"}, enc.events)
}

func TestWalkEmptyCaptureList(t *testing.T) {
	cs := NewCapState(nil, []byte(""), nil, nil)
	enc := &recordingEncoder{}
	code, err := Walk(cs, enc, NewBuffer())

	require.NoError(t, err)
	require.Equal(t, ROSIE_OK, code)
	require.Empty(t, enc.events)
}
