package common

import (
	"fmt"
	"slices"
	"testing"
)

type countdown struct {
	n     int
	calls int
}

// Next returns n, n-1, ... 1 and then 0 forever.
func (self *countdown) Next() int {
	self.calls++
	if self.n > 0 {
		self.n--
		return self.n + 1
	}
	return 0
}

func TestTerminated(t *testing.T) {
	src := &countdown{n: 3}
	it := Terminated[int](src, func(i int) bool { return i == 0 })
	got := Collect(it)
	if fmt.Sprint(got) != "[3 2 1]" {
		t.Errorf("got %v", got)
	}
	for i := 0; i < 3; i++ {
		if next := it.Next(); next.IsSome() {
			t.Errorf("got %d after end", next.Unwrap())
		}
	}
	if src.calls != 4 {
		t.Errorf("source was called %d times after its end", src.calls-4)
	}
}

func TestFromSeq(t *testing.T) {
	it := FromSeq(slices.Values([]string{"a", "b"}))
	p := NewPeekable[string](it, 4)
	if got := p.PeekNth(1); got == nil || *got != "b" {
		t.Errorf("PeekNth(1) = %v", got)
	}
	if got := p.PeekNth(2); got != nil {
		t.Errorf("PeekNth(2) = %q, expected nil", *got)
	}
	if got := Collect[string](&p); fmt.Sprint(got) != "[a b]" {
		t.Errorf("got %v", got)
	}
	if next := it.Next(); next.IsSome() {
		t.Errorf("got %q after end", next.Unwrap())
	}
}

func TestFromSeqStop(t *testing.T) {
	produced := 0
	seq := func(yield func(int) bool) {
		for i := 0; ; i++ {
			produced++
			if !yield(i) {
				return
			}
		}
	}
	it := FromSeq[int](seq)
	it.Next()
	it.Next()
	it.Stop()
	if next := it.Next(); next.IsSome() {
		t.Errorf("got %d after Stop", next.Unwrap())
	}
	if produced != 2 {
		t.Errorf("sequence produced %d values", produced)
	}
}

func TestAllStopsEarly(t *testing.T) {
	it := FromSlice([]int{1, 2, 3, 4})
	for i := range All[int](it) {
		if i == 2 {
			break
		}
	}
	if next := it.Next(); next.UnwrapOr(0) != 3 {
		t.Errorf("expected 3 after breaking out, got %v", next)
	}
}

func TestOptional(t *testing.T) {
	o := Some(5)
	old := o.Replace(None[int]())
	if !old.IsSome() || old.Unwrap() != 5 || o.IsSome() {
		t.Errorf("Replace: old = %v, new = %v", old, o)
	}
	if o.Ref() != nil {
		t.Errorf("Ref of empty optional is not nil")
	}
	o = Some(6)
	taken := o.Take()
	if taken.Unwrap() != 6 || !o.IsNone() {
		t.Errorf("Take: taken = %v, left = %v", taken, o)
	}
	called := ""
	Some(1).Then(func(int) { called += "then" }).Else(func() { called += "else" })
	None[int]().Then(func(int) { called += "then" }).Else(func() { called += "else" })
	if called != "thenelse" {
		t.Errorf("Then/Else called %q", called)
	}
}
