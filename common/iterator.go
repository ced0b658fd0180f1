package common

import "iter"

// Iterator is anything that can be asked for its next value. An empty
// Optional signals exhaustion; an exhausted Iterator must keep returning
// empty Optionals.
type Iterator[T any] interface {
	Next() Optional[T]
}

// Sentinel describes a producer that always returns a value and marks its end
// with a specific end value, like the lexer's EOF token.
type Sentinel[T any] interface {
	Next() T
}

// IteratorFunc lets a plain function act as an Iterator.
type IteratorFunc[T any] func() Optional[T]

func (self IteratorFunc[T]) Next() Optional[T] {
	return self()
}

// SliceIterator yields the elements of a slice in order.
type SliceIterator[T any] struct {
	items []T
	pos   int
}

// FromSlice creates an iterator over items. The slice is not copied.
func FromSlice[T any](items []T) *SliceIterator[T] {
	return &SliceIterator[T]{items: items}
}

func (self *SliceIterator[T]) Next() Optional[T] {
	if self.pos >= len(self.items) {
		return None[T]()
	}
	self.pos++
	return Some(self.items[self.pos-1])
}

// SeqIterator pulls values out of a range-over-func sequence.
type SeqIterator[T any] struct {
	next func() (T, bool)
	stop func()
}

// FromSeq creates an iterator that pulls from seq. The sequence is released
// once it reports its end, or earlier through Stop. An iterator that is
// abandoned before either happens keeps the sequence suspended, so call Stop
// on it or on the Peekable wrapping it.
func FromSeq[T any](seq iter.Seq[T]) *SeqIterator[T] {
	next, stop := iter.Pull(seq)
	return &SeqIterator[T]{next, stop}
}

func (self *SeqIterator[T]) Next() Optional[T] {
	if self.next == nil {
		return None[T]()
	}
	value, ok := self.next()
	if !ok {
		self.Stop()
		return None[T]()
	}
	return Some(value)
}

// Stop releases the underlying sequence. Later calls to Next report
// exhaustion.
func (self *SeqIterator[T]) Stop() {
	if self.stop != nil {
		self.stop()
	}
	self.next = nil
	self.stop = nil
}

type terminated[T any] struct {
	src   Sentinel[T]
	isEnd func(T) bool
	done  bool
}

// Terminated turns a producer with an in-band end value into an Iterator.
// The end value itself is not yielded and src is not called again once it
// was seen.
func Terminated[T any](src Sentinel[T], isEnd func(T) bool) Iterator[T] {
	return &terminated[T]{src: src, isEnd: isEnd}
}

func (self *terminated[T]) Next() Optional[T] {
	if self.done {
		return None[T]()
	}
	value := self.src.Next()
	if self.isEnd(value) {
		self.done = true
		return None[T]()
	}
	return Some(value)
}

// All returns a sequence for ranging over it until it is exhausted.
func All[T any](it Iterator[T]) iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			next := it.Next()
			if !next.IsSome() || !yield(next.Unwrap()) {
				return
			}
		}
	}
}

// Collect drains it into a slice.
func Collect[T any](it Iterator[T]) []T {
	result := []T{}
	for value := range All(it) {
		result = append(result, value)
	}
	return result
}
