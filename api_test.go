package captree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestREncodedGetCapturesNoRosieFrameEmitsNothing(t *testing.T) {
	// S1: a lone Cposition capture has no Rosie frame for the byte/JSON
	// encoders to emit anything for.
	caps := []Capture{{Kind: Cposition, S: 0, Siz: 1}}
	cs := NewCapState(caps, []byte("abc"), nil, nil)

	out, _, abend, err := REncodedGetCaptures(cs, ENCODE_BYTE, 1, 3, nil)
	require.NoError(t, err)
	require.False(t, abend)
	require.Empty(t, out)
}

func TestREncodedGetCapturesLineBypassesWalker(t *testing.T) {
	// S8 (idempotence of line encoder): copies exactly subject_len bytes
	// regardless of captures.
	caps := []Capture{{Kind: Crosiecap, S: 0, Siz: 0}} // malformed/unbalanced on purpose
	cs := NewCapState(caps, []byte("hello world"), nil, nil)

	out, leftover, abend, err := REncodedGetCaptures(cs, ENCODE_LINE, 11, 11, nil)
	require.NoError(t, err)
	require.False(t, abend)
	require.Equal(t, 0, leftover)
	require.Equal(t, "hello world", string(out))
}

func TestREncodedGetCapturesJSONFullCapture(t *testing.T) {
	caps := []Capture{
		{S: 0, Siz: 4, Kind: Crosiecap, Idx: 0},
		{Kind: Cclose, Siz: 1, S: 4},
	}
	kt := SliceKtable{String("word")}
	cs := NewCapState(caps, []byte("abcd"), kt, nil)

	out, leftover, abend, err := REncodedGetCaptures(cs, ENCODE_JSON, 4, 4, nil)
	require.NoError(t, err)
	require.False(t, abend)
	require.Equal(t, 0, leftover)
	require.Equal(t, `{"s":1,"type":"word","e":4}`, string(out))
}

func TestREncodedGetCapturesUnknownEncodingTag(t *testing.T) {
	cs := NewCapState(nil, []byte(""), nil, nil)
	_, _, _, err := REncodedGetCaptures(cs, EncodingTag(99), 0, 0, nil)
	require.Error(t, err)
	require.Equal(t, "invalid encoding value: 99", err.Error())
}

func TestREncodedGetCapturesUsesBufferPool(t *testing.T) {
	pool := NewBufferPool()
	caps := []Capture{
		{S: 0, Siz: 4, Kind: Crosiecap, Idx: 0},
		{Kind: Cclose, Siz: 1, S: 4},
	}
	kt := SliceKtable{String("word")}

	cs1 := NewCapState(caps, []byte("abcd"), kt, nil)
	out1, _, _, err := REncodedGetCaptures(cs1, ENCODE_JSON, 4, 4, pool)
	require.NoError(t, err)

	cs2 := NewCapState(caps, []byte("abcd"), kt, nil)
	out2, _, _, err := REncodedGetCaptures(cs2, ENCODE_JSON, 4, 4, pool)
	require.NoError(t, err)

	require.Equal(t, string(out1), string(out2))
}

func TestCreateMatch(t *testing.T) {
	v := CreateMatch("greeting", 1, "hi")
	tbl, ok := v.(*Table)
	require.True(t, ok)

	inner, ok := tbl.Map["greeting"].(*Table)
	require.True(t, ok)
	require.Equal(t, Int(1), inner.Map["pos"])
	require.Equal(t, String("hi"), inner.Map["text"])
}
