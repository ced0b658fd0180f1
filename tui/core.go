// Package tui contains routines for the interactive token stepper.
package tui

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	. "github.com/JaMo42/prepeek/common"
	"github.com/JaMo42/prepeek/util"
)

var (
	palettes = []PaletteSpec{
		{false, 30, 37, 0},
		{true, 40, 47, 0},
		{false, 90, 97, 8},
		{true, 100, 107, 8},
	}
	Colors = struct {
		StatusBar,
		BoxOutline,
		Offset,
		Exhausted tcell.Style
	}{
		tcell.StyleDefault.Reverse(true),
		tcell.StyleDefault,
		tcell.StyleDefault.Dim(true),
		tcell.StyleDefault.Italic(true),
	}
)

type PaletteSpec struct {
	isBackground  bool
	first, last   int
	paletteOffset int
}

type BoxStyle struct {
	Vertical    rune
	Horizontal  rune
	TopLeft     rune
	TopRight    rune
	BottomLeft  rune
	BottomRight rune
}

func BoxStyleFromString(set string) BoxStyle {
	style := BoxStyle{}
	value := reflect.ValueOf(&style)
	fieldCount := reflect.ValueOf(style).NumField()
	runes := []rune(set)
	if fieldCount != len(runes) {
		panic(fmt.Sprintf(
			"BoxStyleFromString: set contains %d symbols, expected %d",
			len(runes),
			fieldCount),
		)
	}
	for i := 0; i < fieldCount; i++ {
		value.Elem().Field(i).SetInt(int64(runes[i]))
	}
	return style
}

func GetBoxStyle(description string) BoxStyle {
	switch description {
	default:
		Warn("unknown box style ‘%s’, using rounded", description)
		fallthrough
	case "rounded":
		return BoxStyleFromString("│─╭╮╰╯")
	case "sharp":
		return BoxStyleFromString("│─┌┐└┘")
	case "heavysharp":
		return BoxStyleFromString("┃━┏┓┗┛")
	case "double":
		return BoxStyleFromString("║═╔╗╚╝")
	case "ascii":
		return BoxStyleFromString("|-++++")
	}
}

// NewScreen creates and initializes the terminal screen.
func NewScreen() tcell.Screen {
	scr, err := tcell.NewScreen()
	if err != nil {
		Fatal("could not create screen: %s", err)
	}
	if err := scr.Init(); err != nil {
		Fatal("could not initialize screen: %s", err)
	}
	return scr
}

func Quit(scr tcell.Screen) {
	scr.Fini()
}

// Text prints text and returns the column after it.
func Text(scr tcell.Screen, x, y int, text string, style tcell.Style) int {
	for _, char := range text {
		scr.SetContent(x, y, char, nil, style)
		x += runewidth.RuneWidth(char)
	}
	return x
}

// RightText prints a right aligned string.
func RightText(scr tcell.Screen, x, y, width int, text string, style tcell.Style) {
	textWidth := runewidth.StringWidth(text)
	x += width - textWidth
	Text(scr, x, y, text, style)
}

func HLine(scr tcell.Screen, x, y int, width int, char rune, style tcell.Style) {
	for col := x; col < x+width; col++ {
		scr.SetContent(col, y, char, nil, style)
	}
}

func VLine(scr tcell.Screen, x, y int, height int, char rune, style tcell.Style) {
	for row := y; row < y+height; row++ {
		scr.SetContent(x, row, char, nil, style)
	}
}

func Box(scr tcell.Screen, x, y, width, height int, box BoxStyle, style tcell.Style) {
	right := x + width - 1
	bottom := y + height - 1
	scr.SetContent(x, y, box.TopLeft, nil, style)
	scr.SetContent(right, y, box.TopRight, nil, style)
	scr.SetContent(x, bottom, box.BottomLeft, nil, style)
	scr.SetContent(right, bottom, box.BottomRight, nil, style)
	HLine(scr, x+1, y, width-2, box.Horizontal, style)
	HLine(scr, x+1, bottom, width-2, box.Horizontal, style)
	VLine(scr, x, y+1, height-2, box.Vertical, style)
	VLine(scr, right, y+1, height-2, box.Vertical, style)
}

func getColor(tok int, tokens []int, style tcell.Style) (tcell.Style, []int) {
	isBackground := false
	color := tcell.ColorDefault
	for _, palette := range palettes {
		if tok >= palette.first && tok <= palette.last {
			isBackground = palette.isBackground
			color = tcell.PaletteColor(palette.paletteOffset + tok - palette.first)
			goto done
		}
	}
	if (tok == 38 || tok == 48) && len(tokens) != 0 {
		isBackground = tok == 48
		tok, tokens = util.PopFront(tokens)
		if tok == 5 && len(tokens) >= 1 {
			var index int
			index, tokens = util.PopFront(tokens)
			color = tcell.PaletteColor(index)
		} else if tok == 2 && len(tokens) >= 3 {
			var red, green, blue int
			red, tokens = util.PopFront(tokens)
			green, tokens = util.PopFront(tokens)
			blue, tokens = util.PopFront(tokens)
			color = tcell.NewRGBColor(int32(red), int32(green), int32(blue))
		}
		// Invalid color types are silently ignored.
	} else if tok == 39 || tok == 49 {
		isBackground = tok == 49
	}
done:
	if isBackground {
		style = style.Background(color)
	} else {
		style = style.Foreground(color)
	}
	return style, tokens
}

// Ansi2Style converts a SGR ansi escape sequence, as found in Style tokens, to
// a tcell Style.
func Ansi2Style(sequence string) (style tcell.Style) {
	if !strings.HasPrefix(sequence, "\x1b[") || !strings.HasSuffix(sequence, "m") {
		return tcell.StyleDefault
	}
	tokens := util.Map(
		strings.Split(sequence[2:len(sequence)-1], ";"),
		func(s string) int {
			// Empty and invalid parameters become 0 (reset), which is how
			// terminals treat them as well.
			i, _ := strconv.Atoi(s)
			return i
		},
	)
	var tok int
	for len(tokens) > 0 {
		tok, tokens = util.PopFront(tokens)
		switch tok {
		case 0:
			style = tcell.StyleDefault
		case 1:
			style = style.Bold(true)
		case 2:
			style = style.Dim(true)
		case 3:
			style = style.Italic(true)
		case 4:
			style = style.Underline(true)
		case 7:
			style = style.Reverse(true)
		case 22:
			style = style.Bold(false).Dim(false)
		case 23:
			style = style.Italic(false)
		case 24:
			style = style.Underline(false)
		case 27:
			style = style.Reverse(false)
		case
			30, 31, 32, 33, 34, 35, 36, 37,
			38,
			39,
			40, 41, 42, 43, 44, 45, 46, 47,
			48,
			49,
			90, 91, 92, 93, 94, 95, 96, 97,
			100, 101, 102, 103, 104, 105, 106, 107:
			style, tokens = getColor(tok, tokens, style)
		}
	}
	return style
}

// TranslateControls gets the key and rune from the given event, translating
// the stepper's advance keys to enter and q to escape.
func TranslateControls(ev *tcell.EventKey) (tcell.Key, rune) {
	if ev.Key() != tcell.KeyRune {
		return ev.Key(), ev.Rune()
	}
	switch ev.Rune() {
	case 'n', 'N', 'j', 'J', ' ':
		return tcell.KeyEnter, 0
	case 'q', 'Q':
		return tcell.KeyEscape, 0
	default:
		return tcell.KeyRune, ev.Rune()
	}
}
