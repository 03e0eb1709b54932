package captree

// hostStack is the classic-mode reifier's value stack, generalized
// from the teacher's backtracking `frame`/`stack` pair (vm_stack.go):
// where the VM needed per-frame bookkeeping (pc, cursor, line/column,
// predicate/suppress flags) for choice points, the capture-tree
// processor never backtracks — the capture array already encodes
// structure — so only the flat `values` vocabulary survives, renamed
// to match what §4.7-§4.11 actually do to it: push, pop, peek,
// truncate back to a savepoint (dropUncommittedValues lives on as
// dropTo, used by the runtime-capture splice in runtime_capture.go),
// and rotate the top of a run to its front (Lua's lua_insert(-k), used
// by Csimple).
type hostStack struct {
	values []Value
}

func (s *hostStack) push(v Value) {
	s.values = append(s.values, v)
}

func (s *hostStack) pushAll(vs []Value) {
	s.values = append(s.values, vs...)
}

func (s *hostStack) pop() Value {
	n := len(s.values) - 1
	v := s.values[n]
	s.values = s.values[:n]
	return v
}

// popN removes and returns the last n values, in original order.
func (s *hostStack) popN(n int) []Value {
	k := len(s.values) - n
	vs := append([]Value(nil), s.values[k:]...)
	s.values = s.values[:k]
	return vs
}

func (s *hostStack) top() Value {
	return s.values[len(s.values)-1]
}

func (s *hostStack) len() int {
	return len(s.values)
}

// dropTo truncates the stack back to savepoint n, discarding anything
// pushed since. Mirrors vm_stack.go's dropUncommittedValues; RuntimeCap
// (§4.11) calls it with the stack height it recorded on entry.
func (s *hostStack) dropTo(n int) {
	s.values = s.values[:n]
}

// rotateLastToFront moves the current top value to the front of the
// last k values, shifting the rest up by one slot. This is Lua's
// `lua_insert(L, -k)`, used by Csimple (§4.7) to make the whole-match
// string the first of the nested values it was pushed after.
func (s *hostStack) rotateLastToFront(k int) {
	if k <= 1 {
		return
	}
	n := len(s.values)
	top := s.values[n-1]
	copy(s.values[n-k+1:n], s.values[n-k:n-1])
	s.values[n-k] = top
}
