package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
)

type StatusBar struct {
	left  string
	right string
	width int
	y     int
}

func NewStatusBar() StatusBar {
	return StatusBar{}
}

func (self *StatusBar) SetLeft(text string) {
	self.left = text
}

func (self *StatusBar) SetRight(text string) {
	self.right = text
}

func (self *StatusBar) Viewport(y, width int) {
	self.y = y
	self.width = width
}

// Redraw draws the bar, the right text wins if both do not fit.
func (self *StatusBar) Redraw(scr tcell.Screen) {
	HLine(scr, 0, self.y, self.width, ' ', Colors.StatusBar)
	width := runewidth.StringWidth(self.right)
	leftWidth := self.width - width - 3
	if leftWidth > 0 {
		left := runewidth.Truncate(self.left, leftWidth, "~")
		Text(scr, 1, self.y, left, Colors.StatusBar)
	}
	RightText(scr, 0, self.y, self.width-1, self.right, Colors.StatusBar)
}
