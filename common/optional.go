package common

// Optional holds either a single value or nothing. The lookahead buffer stores
// one per slot so exhaustion lives inline with the elements.
type Optional[T any] struct {
	inner  T
	isSome bool
}

type dummyOptionalInner struct{}

type DummyOptional = Optional[dummyOptionalInner]

func dummyOptional(isSome bool) DummyOptional {
	return Optional[dummyOptionalInner]{isSome: isSome}
}

// None creates an Optional with no value.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

// Some creates an Optional containing the given value.
func Some[T any](value T) Optional[T] {
	return Optional[T]{value, true}
}

// IsSome returns true if the optional contains a value.
func (self *Optional[T]) IsSome() bool {
	return self.isSome
}

// IsNone returns true if the optional is empty.
func (self *Optional[T]) IsNone() bool {
	return !self.isSome
}

func (self *Optional[T]) assertSome() {
	if !self.isSome {
		panic("tried to unwrap empty optional")
	}
}

// Unwrap returns the contained value or panics if the Optional is empty.
func (self Optional[T]) Unwrap() T {
	self.assertSome()
	return self.inner
}

// UnwrapOr returns the contained value or fallback.
func (self Optional[T]) UnwrapOr(fallback T) T {
	if self.isSome {
		return self.inner
	}
	return fallback
}

// Get is like Unwrap but returns a pointer to the contained value.
func (self *Optional[T]) Get() *T {
	self.assertSome()
	return &self.inner
}

// Ref returns a pointer to the contained value, or nil if there is none.
func (self *Optional[T]) Ref() *T {
	if !self.isSome {
		return nil
	}
	return &self.inner
}

// Take moves the value out, leaving the original empty.
func (self *Optional[T]) Take() Optional[T] {
	return self.Replace(None[T]())
}

// Replace stores other in self and returns what self held before.
func (self *Optional[T]) Replace(other Optional[T]) Optional[T] {
	old := *self
	*self = other
	return old
}

// Then calls the given function with the contained value, if there is one.
// A dummy optional is returned that can be used to chain a Else call.
func (self Optional[T]) Then(f func(T)) DummyOptional {
	if self.isSome {
		f(self.inner)
	}
	return dummyOptional(self.isSome)
}

// Else calls the given function if the optional has no value.
func (self Optional[T]) Else(f func()) {
	if !self.isSome {
		f()
	}
}
