package idgen

import (
	"strconv"
	"sync/atomic"
)

// Generator hands out flight identifiers. Identifiers are assigned by the
// presentation layer, never by the store.
type Generator interface {
	NextID() string
}

// Sequence yields prefix+N with N counting up from start+1.
type Sequence struct {
	prefix string
	last   atomic.Int64
}

func NewSequence(prefix string, start int64) *Sequence {
	s := &Sequence{prefix: prefix}
	s.last.Store(start)
	return s
}

func (s *Sequence) NextID() string {
	return s.prefix + strconv.FormatInt(s.last.Add(1), 10)
}

var _ Generator = (*Sequence)(nil)
