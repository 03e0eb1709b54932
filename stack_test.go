package captree

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHostStackPushPopTop(t *testing.T) {
	s := &hostStack{}
	s.push(Int(1))
	s.push(Int(2))
	assert.Equal(t, 2, s.len())
	assert.Equal(t, Int(2), s.top())
	assert.Equal(t, Int(2), s.pop())
	assert.Equal(t, 1, s.len())
}

func TestHostStackPushAllAndPopN(t *testing.T) {
	s := &hostStack{}
	s.pushAll([]Value{Int(1), Int(2), Int(3)})
	assert.Equal(t, 3, s.len())

	vs := s.popN(2)
	assert.Equal(t, []Value{Int(2), Int(3)}, vs)
	assert.Equal(t, 1, s.len())
}

func TestHostStackDropTo(t *testing.T) {
	s := &hostStack{}
	s.pushAll([]Value{Int(1), Int(2), Int(3)})
	savepoint := 1
	s.dropTo(savepoint)
	assert.Equal(t, 1, s.len())
	assert.Equal(t, Int(1), s.top())
}

func TestHostStackRotateLastToFront(t *testing.T) {
	s := &hostStack{}
	s.pushAll([]Value{String("a"), Int(1), Int(2), String("whole")})
	s.rotateLastToFront(3)
	assert.Equal(t, []Value{String("a"), String("whole"), Int(1), Int(2)}, s.values)
}

func TestHostStackRotateLastToFrontNoopForKLessThanTwo(t *testing.T) {
	s := &hostStack{}
	s.pushAll([]Value{Int(1), Int(2)})
	s.rotateLastToFront(1)
	assert.Equal(t, []Value{Int(1), Int(2)}, s.values)

	s.rotateLastToFront(0)
	assert.Equal(t, []Value{Int(1), Int(2)}, s.values)
}
