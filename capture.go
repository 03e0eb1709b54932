package captree

import "fmt"

// Kind discriminates the payload of a Capture record. The full Lua/LPEG
// lineage also defines Cconst, Cgroup and Csubst; per the Rosie-only
// redesign (see DESIGN.md) this enum keeps only the kinds a Rosie capture
// list can actually contain.
type Kind uint8

const (
	Cclose Kind = iota
	Cposition
	Carg
	Csimple
	Cruntime
	Cstring
	Cbackref
	Ctable
	Cfunction
	Cnum
	Cquery
	Cfold
	Crosiecap
	Crosiesimple
)

func (k Kind) String() string {
	switch k {
	case Cclose:
		return "close"
	case Cposition:
		return "position"
	case Carg:
		return "arg"
	case Csimple:
		return "simple"
	case Cruntime:
		return "runtime"
	case Cstring:
		return "string"
	case Cbackref:
		return "backref"
	case Ctable:
		return "table"
	case Cfunction:
		return "function"
	case Cnum:
		return "num"
	case Cquery:
		return "query"
	case Cfold:
		return "fold"
	case Crosiecap:
		return "rosiecap"
	case Crosiesimple:
		return "rosiesimple"
	default:
		return fmt.Sprintf("kind(%d)", uint8(k))
	}
}

// Capture is one marker in the flat stream emitted by the PEG VM.
//
// S is a 0-based byte offset into the subject: for an Open or Full
// record it is where the capture begins; for a Close record it is
// where the capture ends. Siz is the size discriminator: 0 marks an
// Open (its Close occurs later in the list); a Close conventionally
// carries Siz==1; any other non-zero n marks a Full capture of n-1
// bytes starting at S. Idx is a ktable index, a host-stack slot, or a
// small integer parameter, depending on Kind. Final marks the abend
// sentinel described in spec.md §3 ("a final close").
type Capture struct {
	S     int
	Siz   int
	Kind  Kind
	Idx   int
	Final bool
}

// isOpen reports whether c is an Open record (a matching Close exists
// later in the list).
func isOpen(c *Capture) bool { return !c.Final && c.Kind != Cclose && c.Siz == 0 }

// isClose reports whether c is a (possibly synthetic) Close record.
func isClose(c *Capture) bool { return !c.Final && c.Kind == Cclose }

// isFull reports whether c is a self-contained capture with known size.
func isFull(c *Capture) bool { return !c.Final && c.Siz != 0 }

// isFinal reports whether c is the abend sentinel.
func isFinal(c *Capture) bool { return c.Final }

// size returns the number of captured bytes of a Full record.
func (c *Capture) size() int { return c.Siz - 1 }

// end returns the 0-based end offset of a Full record: S+Siz-1.
func (c *Capture) end() int { return c.S + c.Siz - 1 }

// pos1 converts a 0-based subject offset to the externally reported
// 1-based position.
func pos1(offset int) int { return offset + 1 }
