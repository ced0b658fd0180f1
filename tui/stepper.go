package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	. "github.com/JaMo42/prepeek/common"
	"github.com/JaMo42/prepeek/util"
)

// EndLabel is displayed for exhausted positions.
const EndLabel = "<end>"

// Item is how the stepper displays a value.
type Item struct {
	Text  string
	Style tcell.Style
}

// Stepper shows the lookahead window of a Peekable and advances it on key
// presses.
type Stepper[T any] struct {
	scr      tcell.Screen
	values   *Peekable[T]
	format   func(*T) Item
	box      BoxStyle
	status   StatusBar
	current  Optional[T]
	started  bool
	consumed int
}

func NewStepper[T any](
	scr tcell.Screen,
	values *Peekable[T],
	title string,
	format func(*T) Item,
	box BoxStyle,
) *Stepper[T] {
	status := NewStatusBar()
	status.SetLeft(title)
	return &Stepper[T]{
		scr:    scr,
		values: values,
		format: format,
		box:    box,
		status: status,
	}
}

func (self *Stepper[T]) Consumed() int {
	return self.consumed
}

// Advance consumes one value. Returns false once the values are exhausted.
func (self *Stepper[T]) Advance() bool {
	self.started = true
	self.current = self.values.Next()
	if self.current.IsSome() {
		self.consumed++
	}
	return self.current.IsSome()
}

func (self *Stepper[T]) item(value *T) Item {
	if value == nil {
		return Item{EndLabel, Colors.Exhausted}
	}
	return self.format(value)
}

// Draw draws the whole screen and shows it.
func (self *Stepper[T]) Draw() {
	self.scr.Clear()
	width, height := self.scr.Size()
	depth := self.values.Depth()
	self.status.Viewport(0, width)
	self.status.SetRight(fmt.Sprintf("%d consumed, depth %d", self.consumed, depth))
	self.status.Redraw(self.scr)
	x := Text(self.scr, 1, 1, "current: ", Colors.Offset)
	if self.started {
		current := self.item(self.current.Ref())
		Text(self.scr, x, 1, util.PadRight(current.Text, width-x-1), current.Style)
	}
	if depth == 0 {
		Text(self.scr, 1, 3, "no lookahead", Colors.Exhausted)
		self.scr.Show()
		return
	}
	// Only as many slots as fit on the screen.
	rows := min(depth, height-4)
	if rows > 0 {
		Box(self.scr, 0, 2, width, rows+2, self.box, Colors.BoxOutline)
	}
	for n := 0; n < rows; n++ {
		y := 3 + n
		x := Text(self.scr, 2, y, fmt.Sprintf("+%-3d", n), Colors.Offset)
		item := self.item(self.values.PeekNth(n))
		Text(self.scr, x, y, util.PadRight(item.Text, width-x-2), item.Style)
	}
	self.scr.Show()
}

// HandleEvent processes one event and returns true if the stepper should quit.
func (self *Stepper[T]) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch key, _ := TranslateControls(ev); key {
		case tcell.KeyEnter:
			self.Advance()
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return true
		default:
			return false
		}
	case *tcell.EventResize:
		self.scr.Sync()
	case nil:
		// The screen was finalized.
		return true
	}
	self.Draw()
	return false
}

// Run draws the stepper and processes events until the user quits.
func (self *Stepper[T]) Run() {
	self.Draw()
	for !self.HandleEvent(self.scr.PollEvent()) {
	}
}
