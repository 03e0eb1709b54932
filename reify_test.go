package captree

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestGetCapturesPosition(t *testing.T) {
	// S1: classic mode pushes the 1-based position as a sole integer.
	caps := []Capture{{Kind: Cposition, S: 0}}
	cs := NewCapState(caps, []byte("abc"), nil, nil)

	n, err := GetCaptures(cs, 1)
	require.NoError(t, err)
	require.Equal(t, 1, n)
	require.Equal(t, Int(1), cs.Stack.pop())
}

func TestGetCapturesNoneProducedFallsBackToEndPosition(t *testing.T) {
	cs := NewCapState(nil, []byte("abc"), nil, nil)

	n, err := GetCaptures(cs, 3)
	require.NoError(t, err)
	require.Equal(t, 1, n)
	require.Equal(t, Int(4), cs.Stack.pop())
}

func TestGetCapturesAttachesLocationToErrors(t *testing.T) {
	// The failing capture sits on line 2; GetCaptures must annotate the
	// resulting CaptureError with that line:col rather than leaving
	// HasLoc unset.
	caps := []Capture{{Kind: Carg, Idx: 5, S: 2}}
	cs := NewCapState(caps, []byte("x\nab"), nil, nil)

	_, err := GetCaptures(cs, 4)
	require.Error(t, err)

	ce, ok := err.(*CaptureError)
	require.True(t, ok)
	require.True(t, ce.HasLoc)
	require.Equal(t, "reference to absent extra argument #5 @ 2:1", ce.Error())
}

func TestPushArg(t *testing.T) {
	cs := NewCapState([]Capture{{Kind: Carg, Idx: 0}}, []byte(""), nil, nil)
	cs.ExtraArgs = []Value{String("extra")}

	n, err := pushCapture(cs)
	require.NoError(t, err)
	require.Equal(t, 1, n)
	require.Equal(t, String("extra"), cs.Stack.pop())
}

func TestPushArgOutOfRange(t *testing.T) {
	cs := NewCapState([]Capture{{Kind: Carg, Idx: 5}}, []byte(""), nil, nil)

	_, err := pushCapture(cs)
	require.Error(t, err)
	require.Equal(t, "reference to absent extra argument #5", err.Error())
}

func TestPushSimpleRotatesFullMatchToFront(t *testing.T) {
	caps := []Capture{
		{Kind: Csimple, S: 0},
		{Kind: Cposition, S: 0},
		{Kind: Cclose, Siz: 1, S: 0},
	}
	cs := NewCapState(caps, []byte("ab"), nil, nil)

	n, err := pushCapture(cs)
	require.NoError(t, err)
	require.Equal(t, 2, n)

	vals := cs.Stack.popN(2)
	require.Equal(t, String(""), vals[0])
	require.Equal(t, Int(1), vals[1])
}

func TestPushTableCaptureBuildsNamedAndArrayEntries(t *testing.T) {
	kt := SliceKtable{nil, nil, nil, nil, nil, String("key")}
	caps := []Capture{
		{Kind: Ctable, S: 0},
		{Kind: Cposition, S: 0, Idx: 5}, // named "key" -> Int(1)
		{Kind: Cposition, S: 1, Idx: 0}, // unnamed -> array entry
		{Kind: Cclose, Siz: 1, S: 2},
	}
	cs := NewCapState(caps, []byte("ab"), kt, nil)

	n, err := pushCapture(cs)
	require.NoError(t, err)
	require.Equal(t, 1, n)

	tbl := cs.Stack.pop().(*Table)
	require.Equal(t, Int(1), tbl.Map["key"])
	require.Equal(t, []Value{Int(2)}, tbl.Array)
}

func TestPushFoldCaptureLeftAssociative(t *testing.T) {
	sum := Func(func(args []Value) ([]Value, error) {
		a := args[0].(Int)
		b := args[1].(Int)
		return []Value{Int(int(a) + int(b))}, nil
	})
	kt := SliceKtable{sum}
	caps := []Capture{
		{Kind: Cfold, Idx: 0},
		{Kind: Cposition, S: 0},
		{Kind: Cposition, S: 1},
		{Kind: Cposition, S: 2},
		{Kind: Cclose, Siz: 1, S: 3},
	}
	cs := NewCapState(caps, []byte("abc"), kt, nil)

	n, err := pushCapture(cs)
	require.NoError(t, err)
	require.Equal(t, 1, n)
	require.Equal(t, Int(6), cs.Stack.pop())
}

func TestPushFoldCaptureWithNoNestedCapturesFails(t *testing.T) {
	sum := Func(func(args []Value) ([]Value, error) { return args, nil })
	kt := SliceKtable{sum}
	caps := []Capture{
		{Kind: Cfold, Idx: 0},
		{Kind: Cclose, Siz: 1, S: 0},
	}
	cs := NewCapState(caps, []byte(""), kt, nil)

	_, err := pushCapture(cs)
	require.Error(t, err)
	require.Equal(t, "no initial value for fold capture", err.Error())
}

func TestPushNumCaptureSelectsNth(t *testing.T) {
	caps := []Capture{
		{Kind: Cnum, Idx: 2},
		{Kind: Cposition, S: 0},
		{Kind: Cposition, S: 1},
		{Kind: Cposition, S: 2},
		{Kind: Cclose, Siz: 1, S: 3},
	}
	cs := NewCapState(caps, []byte("abc"), nil, nil)

	n, err := pushCapture(cs)
	require.NoError(t, err)
	require.Equal(t, 1, n)
	require.Equal(t, Int(2), cs.Stack.pop())
}

func TestPushFunctionCaptureCallsWithNestedArgs(t *testing.T) {
	double := Func(func(args []Value) ([]Value, error) {
		v := args[0].(Int)
		return []Value{Int(int(v) * 2)}, nil
	})
	kt := SliceKtable{double}
	caps := []Capture{
		{Kind: Cfunction, Idx: 0},
		{Kind: Cposition, S: 5},
		{Kind: Cclose, Siz: 1, S: 5},
	}
	cs := NewCapState(caps, []byte("012345"), kt, nil)

	n, err := pushCapture(cs)
	require.NoError(t, err)
	require.Equal(t, 1, n)
	require.Equal(t, Int(12), cs.Stack.pop())
}
