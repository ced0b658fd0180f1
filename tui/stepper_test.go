package tui

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	. "github.com/JaMo42/prepeek/common"
)

func newTestScreen(t *testing.T, width, height int) tcell.SimulationScreen {
	t.Helper()
	scr := tcell.NewSimulationScreen("UTF-8")
	if err := scr.Init(); err != nil {
		t.Fatalf("could not initialize screen: %s", err)
	}
	scr.SetSize(width, height)
	t.Cleanup(scr.Fini)
	return scr
}

// row returns the text of a screen row without trailing spaces.
func row(scr tcell.SimulationScreen, y int) string {
	cells, width, _ := scr.GetContents()
	var b strings.Builder
	for _, cell := range cells[y*width : (y+1)*width] {
		if len(cell.Runes) == 0 {
			b.WriteRune(' ')
		} else {
			b.WriteString(string(cell.Runes))
		}
	}
	return strings.TrimRight(b.String(), " ")
}

func formatString(s *string) Item {
	return Item{*s, tcell.StyleDefault}
}

func newTestStepper(t *testing.T, depth int, height int) (tcell.SimulationScreen, *Stepper[string]) {
	scr := newTestScreen(t, 40, height)
	values := NewPeekable[string](FromSlice([]string{"alpha", "beta", "gamma"}), depth)
	return scr, NewStepper(scr, &values, "words", formatString, GetBoxStyle("ascii"))
}

func expectRow(t *testing.T, scr tcell.SimulationScreen, y int, text string) {
	t.Helper()
	if got := row(scr, y); !strings.Contains(got, text) {
		t.Errorf("row %d: %q does not contain %q", y, got, text)
	}
}

func TestStepperWindow(t *testing.T) {
	scr, stepper := newTestStepper(t, 2, 10)
	stepper.Draw()
	expectRow(t, scr, 0, "words")
	expectRow(t, scr, 0, "0 consumed, depth 2")
	if got := row(scr, 1); got != " current:" {
		t.Errorf("row 1 before the first step: %q", got)
	}
	expectRow(t, scr, 2, "+------")
	expectRow(t, scr, 3, "+0  alpha")
	expectRow(t, scr, 4, "+1  beta")
	if strings.Contains(row(scr, 5), "gamma") {
		t.Errorf("value beyond the depth was displayed")
	}

	stepper.Advance()
	stepper.Advance()
	stepper.Draw()
	expectRow(t, scr, 0, "2 consumed, depth 2")
	expectRow(t, scr, 1, "current: beta")
	expectRow(t, scr, 3, "+0  gamma")
	expectRow(t, scr, 4, "+1  "+EndLabel)

	if !stepper.Advance() {
		t.Errorf("Advance returned false for the last value")
	}
	if stepper.Advance() {
		t.Errorf("Advance returned true after the end")
	}
	stepper.Draw()
	expectRow(t, scr, 0, "3 consumed")
	expectRow(t, scr, 1, "current: "+EndLabel)
	expectRow(t, scr, 3, "+0  "+EndLabel)
	expectRow(t, scr, 4, "+1  "+EndLabel)
}

func TestStepperKeys(t *testing.T) {
	scr, stepper := newTestStepper(t, 2, 10)
	scr.InjectKey(tcell.KeyRune, 'n', tcell.ModNone)
	scr.InjectKey(tcell.KeyRune, 'x', tcell.ModNone)
	scr.InjectKey(tcell.KeyEnter, 0, tcell.ModNone)
	scr.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)
	scr.InjectKey(tcell.KeyRune, 'n', tcell.ModNone)
	stepper.Run()
	if stepper.Consumed() != 2 {
		t.Errorf("consumed %d values, expected 2", stepper.Consumed())
	}
	expectRow(t, scr, 1, "current: beta")
}

func TestStepperNoLookahead(t *testing.T) {
	scr, stepper := newTestStepper(t, 0, 10)
	stepper.Advance()
	stepper.Draw()
	expectRow(t, scr, 0, "depth 0")
	expectRow(t, scr, 1, "current: alpha")
	expectRow(t, scr, 3, "no lookahead")
}

func TestStepperSmallScreen(t *testing.T) {
	scr := newTestScreen(t, 40, 6)
	values := NewPeekable[string](FromSlice([]string{"a", "b", "c", "d"}), 4)
	stepper := NewStepper(scr, &values, "small", formatString, GetBoxStyle("ascii"))
	stepper.Draw()
	expectRow(t, scr, 3, "+0  a")
	expectRow(t, scr, 4, "+1  b")
	expectRow(t, scr, 5, "+------")
}

func TestAnsi2Style(t *testing.T) {
	tests := map[string]tcell.Style{
		"\x1b[1;31m":       tcell.StyleDefault.Bold(true).Foreground(tcell.PaletteColor(1)),
		"\x1b[38;5;200m":   tcell.StyleDefault.Foreground(tcell.PaletteColor(200)),
		"\x1b[1;0m":        tcell.StyleDefault,
		"\x1b[48;2;1;2;3m": tcell.StyleDefault.Background(tcell.NewRGBColor(1, 2, 3)),
		"plain":            tcell.StyleDefault,
	}
	for sequence, expected := range tests {
		if got := Ansi2Style(sequence); got != expected {
			t.Errorf("Ansi2Style(%q) = %v, expected %v", sequence, got, expected)
		}
	}
}
