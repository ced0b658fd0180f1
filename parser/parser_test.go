package parser

import (
	"fmt"
	"regexp"
	"testing"

	. "github.com/JaMo42/prepeek/common"
)

const hyphenSource = "int x; // first comment\n" +
	"// exam-\n" +
	"// ple text\n" +
	"/* block\n" +
	" * hyphen-\n" +
	" * ated */\n"

func formatComments(comments []Comment) string {
	return fmt.Sprint(comments)
}

func TestExtract(t *testing.T) {
	tests := []struct {
		depth    int
		expected []Comment
	}{
		{
			DefaultDepth,
			[]Comment{
				{1, []string{"first", "comment"}},
				{2, []string{"example"}},
				{3, []string{"text"}},
				{4, []string{"block", "hyphenated"}},
			},
		},
		{
			// The rest of the line comment is beyond the buffer.
			4,
			[]Comment{
				{1, []string{"first", "comment"}},
				{2, []string{"exam"}},
				{3, []string{"ple", "text"}},
				{4, []string{"block", "hyphenated"}},
			},
		},
		{
			0,
			[]Comment{
				{1, []string{"first", "comment"}},
				{2, []string{"exam"}},
				{3, []string{"ple", "text"}},
				{4, []string{"block", "hyphen", "ated"}},
			},
		},
	}
	for _, test := range tests {
		got := Extract(hyphenSource, cCommentStyle, Options{Depth: test.depth})
		if formatComments(got) != formatComments(test.expected) {
			t.Errorf("depth %d: got %v, expected %v", test.depth, got, test.expected)
		}
	}
}

func TestExtractNoJoin(t *testing.T) {
	sources := []string{
		"// foo-\nint x; // bar\n",
		"// foo-\n\n// bar\n",
		"// foo-\n",
		"/* foo- */\n/* bar */\n",
		"// foo-\n/* bar */\n",
		"/* foo- */\n// bar\n",
	}
	for _, source := range sources {
		got := Extract(source, cCommentStyle, Options{Depth: DefaultDepth})
		for _, c := range got {
			for _, w := range c.Words {
				if w == "foobar" {
					t.Errorf("%q: joined across comments: %v", source, got)
				}
			}
		}
		if len(got) == 0 || got[0].Words[0] != "foo" {
			t.Errorf("%q: got %v", source, got)
		}
	}
}

func TestExtractChainedJoin(t *testing.T) {
	source := "/* anti-\n   dis-\n   establishment */\n"
	got := Extract(source, cCommentStyle, Options{Depth: 4})
	expected := []Comment{{1, []string{"antidisestablishment"}}}
	if formatComments(got) != formatComments(expected) {
		t.Errorf("got %v, expected %v", got, expected)
	}
}

func TestExtractFilters(t *testing.T) {
	ignore := NewIgnoreList(true)
	ignore.Add("TODO")
	source := "// todo: check don't 'quoted' x11 ab\n// @param value\n//\n"
	got := Extract(source, cCommentStyle, Options{
		Depth:   DefaultDepth,
		Filters: []*regexp.Regexp{regexp.MustCompile("^ab$")},
		Ignore:  &ignore,
	})
	expected := []Comment{
		{1, []string{"check", "don't", "quoted"}},
		{2, []string{"value"}},
	}
	if formatComments(got) != formatComments(expected) {
		t.Errorf("got %v, expected %v", got, expected)
	}
}

func TestIsWord(t *testing.T) {
	words := map[string]bool{
		"hello":  true,
		"don't":  true,
		"a":      false,
		"'ab'":   false,
		"x-":     false,
		"re-run": true,
	}
	for word, expected := range words {
		if IsWord(word) != expected {
			t.Errorf("IsWord(%q) = %v", word, !expected)
		}
	}
}
