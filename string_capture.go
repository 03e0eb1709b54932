package captree

import "strings"

const defaultMaxStrCaps = 10

// strCapEntry is one slot of the cps[0..n] array spec.md §4.10
// describes: either a plain byte range already known as a string, or
// a deferred sub-capture remembered by cursor position and only
// reified if the format string actually references it.
type strCapEntry struct {
	isString bool
	str      string
	capIdx   int
}

// pushStringCapture interprets the ktable payload at the Cstring
// record's Idx as a format string and appends the substituted result
// as a single String value (spec.md §4.10).
func pushStringCapture(cs *CapState) (int, error) {
	out, err := runStringCapture(cs)
	if err != nil {
		return 0, err
	}
	cs.Stack.push(String(out))
	return 1, nil
}

func runStringCapture(cs *CapState) (string, error) {
	c := cs.cur()
	if !isOpen(c) {
		return "", errCorruptMatchData()
	}
	fmtIdx := c.Idx
	openStart := c.S
	cs.Cap++

	maxCaps := defaultMaxStrCaps
	if cs.Cfg != nil {
		maxCaps = cs.Cfg.GetInt("reifier.maxstrcaps")
	}

	var cps []strCapEntry
	cps = append(cps, strCapEntry{}) // cps[0], filled in once closeStart is known

	for !cs.atEnd() && !isClose(cs.cur()) {
		if len(cps) <= maxCaps {
			child := cs.cur()
			// Only a literal Rosie match span is a direct byte range;
			// every other kind (including zero-width ones like
			// Cposition) must be re-entered through the reifier to get
			// its actual produced value, so it is remembered as
			// deferred rather than read off Subject directly.
			if child.Kind == Crosiecap || child.Kind == Crosiesimple {
				cps = append(cps, strCapEntry{isString: true, str: string(cs.Subject[child.S:child.end()])})
			} else {
				cps = append(cps, strCapEntry{capIdx: cs.Cap})
			}
		}
		if err := skipSubtree(cs); err != nil {
			return "", err
		}
	}
	if cs.atEnd() {
		return "", errCorruptMatchData()
	}
	closeStart := cs.cur().S
	cps[0] = strCapEntry{isString: true, str: string(cs.Subject[openStart:closeStart])}
	cs.Cap++

	n := len(cps) - 1

	format, err := ktableString(cs, fmtIdx)
	if err != nil {
		return "", err
	}

	var out strings.Builder
	for i := 0; i < len(format); i++ {
		ch := format[i]
		if ch != '%' || i+1 >= len(format) {
			out.WriteByte(ch)
			continue
		}
		next := format[i+1]
		i++
		if next < '0' || next > '9' {
			out.WriteByte(next)
			continue
		}
		d := int(next - '0')
		if d > n {
			return "", errInvalidCaptureIndex(d)
		}
		entry := cps[d]
		if entry.isString {
			out.WriteString(entry.str)
			continue
		}

		saved := cs.Cap
		cs.Cap = entry.capIdx
		k, evalErr := pushCapture(cs)
		cs.Cap = saved
		if evalErr != nil {
			return "", evalErr
		}
		if k == 0 {
			return "", errNoValuesInCapture(d)
		}
		vals := cs.Stack.popN(k)
		sv, ok := vals[0].(String)
		if !ok {
			return "", errInvalidValue("capture", vals[0].Type())
		}
		out.WriteString(string(sv))
	}
	return out.String(), nil
}
