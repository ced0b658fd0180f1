package parser

import (
	"github.com/JaMo42/prepeek/util"
)

// State identifier
type State int

// Token that's grown as the DFA processes more bytes. The most recent byte is
// the lowest one.
type dfaToken = uint64

// pattern is a token of up to 8 bytes together with the mask selecting the
// bytes it compares against.
type pattern struct {
	data   dfaToken
	mask   uint64
	length int
}

func newPattern(text string) pattern {
	if len(text) > 8 {
		panic("pattern longer than 8 bytes: " + text)
	}
	return pattern{
		data:   util.String2Int(text),
		mask:   (uint64(1) << (len(text) * 8)) - 1,
		length: len([]rune(text)),
	}
}

// matches checks the low bytes of the token. The DFA resets its token on every
// state change and on characters no transition cares about, so the token only
// ever holds a suffix of the relevant input.
func (self pattern) matches(token dfaToken) bool {
	return self.data == token&self.mask
}

type transition struct {
	pattern pattern
	to      State
}

type DfaState struct {
	id   State
	info int
	// Characters that take part in any transition of this state. We expect a
	// handful of them so a slice beats a map.
	accepts     []rune
	transitions []transition
	nested      bool
	descent     pattern
	ascent      pattern
}

// Nest makes begin and end adjust a nesting depth instead of leaving the
// state, as long as the depth is not 0. Neither counts as a state change.
func (self *DfaState) Nest(begin, end string) {
	self.nested = true
	self.descent = newPattern(begin)
	self.ascent = newPattern(end)
	for _, c := range begin + end {
		self.accept(c)
	}
}

func (self *DfaState) Id() State {
	return self.id
}

func (self *DfaState) Info() int {
	return self.info
}

func (self *DfaState) accept(c rune) {
	if !util.Contains(self.accepts, c) {
		self.accepts = append(self.accepts, c)
	}
}

// AddTransition adds a transition that is taken once text was seen. Earlier
// transitions take precedence.
func (self *DfaState) AddTransition(text string, to State) {
	for _, c := range text {
		self.accept(c)
	}
	self.transitions = append(self.transitions, transition{newPattern(text), to})
}

type Dfa struct {
	// Pointers so the value returned from AddState stays valid when the
	// slice grows.
	states  []*DfaState
	current State
	token   dfaToken
	depth   int
}

func NewDfa() Dfa {
	return Dfa{}
}

func (self *Dfa) AddState(info int) *DfaState {
	id := State(len(self.states))
	self.states = append(self.states, &DfaState{id: id, info: info})
	return self.states[id]
}

func (self *Dfa) CurrentState() *DfaState {
	return self.states[self.current]
}

// Process feeds one character to the DFA. Returns whether a transition was
// taken (which may lead back to the same state) and the length in runes of
// the text that caused it.
func (self *Dfa) Process(c rune) (bool, int) {
	state := self.CurrentState()
	if !util.Contains(state.accepts, c) {
		self.token = 0
		return false, 0
	}
	str := string(c)
	self.token <<= 8 * len(str)
	self.token |= util.String2Int(str)
	if state.nested {
		if state.descent.matches(self.token) {
			self.depth++
			self.token = 0
			return false, 0
		} else if self.depth != 0 && state.ascent.matches(self.token) {
			self.depth--
			self.token = 0
			return false, 0
		}
	}
	for _, trans := range state.transitions {
		if trans.pattern.matches(self.token) {
			self.current = trans.to
			self.token = 0
			return true, trans.pattern.length
		}
	}
	return false, 0
}

// ForceState sets the current state and resets the token.
func (self *Dfa) ForceState(id State) {
	self.current = id
	self.token = 0
}
