package main

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	. "github.com/JaMo42/prepeek/common"
	"github.com/JaMo42/prepeek/parser"
	"github.com/JaMo42/prepeek/tui"
	"github.com/JaMo42/prepeek/util"
)

const columnWidth = 20

func tokenLabel(tok *parser.Token) string {
	if tok == nil {
		return tui.EndLabel
	}
	return tok.String()
}

// writeTokens writes one line for each token: its source line, the token and
// the tokens in the lookahead window behind it.
func writeTokens(w io.Writer, tokens *Peekable[parser.Token]) error {
	var line strings.Builder
	for tok := range All[parser.Token](tokens) {
		line.Reset()
		fmt.Fprintf(&line, "%4d %s |", tok.Line(), util.PadRight(tok.String(), columnWidth))
		for n := 0; n < tokens.Depth(); n++ {
			line.WriteByte(' ')
			line.WriteString(util.PadRight(tokenLabel(tokens.PeekNth(n)), columnWidth))
		}
		if _, err := fmt.Fprintln(w, strings.TrimRight(line.String(), " ")); err != nil {
			return err
		}
	}
	return nil
}

// WordCounts counts how often each comment word occurs.
type WordCounts map[string]int

func (self WordCounts) Add(comments []parser.Comment) {
	for _, c := range comments {
		for _, word := range c.Words {
			self[word]++
		}
	}
}

// Write writes the words in sorted order.
func (self WordCounts) Write(w io.Writer) error {
	words := maps.Keys(self)
	slices.Sort(words)
	for _, word := range words {
		if _, err := fmt.Fprintf(w, "%5d %s\n", self[word], word); err != nil {
			return err
		}
	}
	return nil
}

// dumpStyles writes the configured comment styles sorted by name.
func dumpStyles(w io.Writer, cfg *Config) {
	names := maps.Keys(cfg.Styles)
	slices.Sort(names)
	for _, name := range names {
		style := cfg.Styles[name]
		fmt.Fprintf(w, "%s:\n", name)
		fmt.Fprintf(w, "  extensions: %s\n", strings.Join(cfg.Extensions[name], " "))
		if len(style.Line) != 0 {
			fmt.Fprintf(w, "  line: %s\n", strings.Join(style.Line, " "))
		}
		for i, begin := range style.BlockBegin {
			fmt.Fprintf(w, "  block: %s %s\n", begin, style.BlockEnd[i])
		}
		if style.BlockNesting {
			fmt.Fprintf(w, "  nesting\n")
		}
		for _, s := range style.Strings {
			fmt.Fprintf(w, "  string: %s %s %s\n", s.Begin, s.End, s.Escape)
		}
	}
}
