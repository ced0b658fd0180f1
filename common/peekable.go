package common

// Peekable wraps an Iterator with the ability to look at the next depth
// values without consuming them.
//
// The next depth results of the wrapped iterator are kept in a ring buffer,
// slot (ringIndex + n) % depth holds the value the n-th following call to
// Next will return. The depth is fixed for the lifetime of the Peekable.
//
// A Peekable must not be copied after the first call to Next, copies share
// the buffer but not the position in it. Pass a pointer instead.
type Peekable[T any] struct {
	it        Iterator[T]
	ring      []Optional[T]
	ringIndex int
}

// NewPeekable creates a peekable wrapper for the given iterator, calling its
// Next method depth times to fill the buffer. It is fine for the iterator to
// run out before that. The Peekable takes ownership of it.
func NewPeekable[T any](it Iterator[T], depth int) Peekable[T] {
	if depth < 0 {
		panic("NewPeekable: negative lookahead depth")
	}
	self := Peekable[T]{
		it:   it,
		ring: make([]Optional[T], depth),
	}
	for i := 0; i < depth; i++ {
		self.Next()
	}
	return self
}

// Depth returns the number of values that can be peeked.
func (self *Peekable[T]) Depth() int {
	return len(self.ring)
}

// Next returns the next value, advancing the iterator.
func (self *Peekable[T]) Next() Optional[T] {
	v := self.it.Next()
	if len(self.ring) == 0 {
		return v
	}
	v = self.ring[self.ringIndex].Replace(v)
	self.ringIndex = (self.ringIndex + 1) % len(self.ring)
	return v
}

// Peek returns a reference to the value the next call to Next returns,
// without advancing the iterator. nil is returned if the iterator is
// exhausted or the depth is 0.
func (self *Peekable[T]) Peek() *T {
	return self.PeekNth(0)
}

// PeekNth returns a reference to the value n calls to Next from now, so
// PeekNth(0) is the same as Peek. If n is not less than the depth nil is
// returned, even if the wrapped iterator still has values. The reference is
// valid until the next call to Next.
func (self *Peekable[T]) PeekNth(n int) *T {
	if n < 0 || n >= len(self.ring) {
		return nil
	}
	return self.ring[(self.ringIndex+n)%len(self.ring)].Ref()
}

// Stop releases the wrapped iterator if it has a Stop method, like the ones
// created by FromSeq. Values that are already buffered can still be taken
// with Next.
func (self *Peekable[T]) Stop() {
	if stopper, ok := self.it.(interface{ Stop() }); ok {
		stopper.Stop()
	}
}
