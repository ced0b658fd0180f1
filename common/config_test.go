package common

import (
	"strings"
	"testing"
)

const sampleConfig = `
[general]
depth = 3
box-style = "ascii"
read-command = "cat %FILE%"
filters = ["^[A-Z]+$"]

[styles.lisp]
line = [";"]

[styles.rust]
line = ["//"]
block-begin = ["/*"]
block-end = ["*/"]
block-nesting = true
strings = [{ begin = '"', end = '"', escape = '\' }]

[extensions]
lisp = ["el", "lisp"]
builtin-c = ["ino"]
`

func TestParseConfig(t *testing.T) {
	cfg, err := ParseConfig([]byte(sampleConfig))
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if cfg.General.Depth != 3 || cfg.General.BoxStyle != "ascii" {
		t.Errorf("general section not applied: %+v", cfg.General)
	}
	if !cfg.General.IgnoreCase {
		t.Errorf("default for ignore-case was lost")
	}
	style, ok := cfg.GetStyle("el")
	if !ok || len(style.Line) != 1 || style.Line[0] != ";" {
		t.Errorf("GetStyle(el) = %+v, %v", style, ok)
	}
	rust := cfg.Styles["rust"]
	if !rust.BlockNesting || len(rust.Strings) != 1 || rust.Strings[0].Escape != "\\" {
		t.Errorf("rust style = %+v", rust)
	}
	if _, ok := cfg.GetStyle("py"); ok {
		t.Errorf("GetStyle found a style for an unknown extension")
	}
}

func TestParseConfigErrors(t *testing.T) {
	tests := map[string]string{
		"[general]\ndepth = ":                               "",
		"[general]\ndepth = -1\n":                           "negative depth",
		"[styles.x]\nblock-begin = [\"{\"]\n":               "invalid comment style",
		"[styles.x]\nline = [\"123456789\"]\n":              "longer than 8 bytes",
		"[extensions]\nnope = [\"n\"]\n":                    "unknown comment style",
		"[styles.x]\nstrings = [{ begin = '\"' }]\n":        "empty token",
		"[styles.x]\nstrings = [{ begin = '\"', end = '' }]": "empty token",
	}
	for source, message := range tests {
		_, err := ParseConfig([]byte(source))
		if err == nil {
			t.Errorf("%q: expected an error", source)
		} else if !strings.Contains(err.Error(), message) {
			t.Errorf("%q: error %q does not mention %q", source, err, message)
		}
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg, err := ParseConfig(nil)
	if err != nil {
		t.Fatalf("unexpected error: %s", err)
	}
	if cfg.General.Depth != DefaultConfig().General.Depth {
		t.Errorf("empty config changed the depth to %d", cfg.General.Depth)
	}
}

func TestIgnoreList(t *testing.T) {
	list := NewIgnoreList(true)
	if err := list.Read(strings.NewReader("Foo\nx\nBAR\n")); err != nil {
		t.Fatal(err)
	}
	if !list.Ignore("foo") || !list.Ignore("bar") || list.Ignore("x") {
		t.Errorf("unexpected ignore list contents")
	}
	if list.Len() != 2 {
		t.Errorf("Len = %d", list.Len())
	}
	exact := NewIgnoreList(false)
	exact.Add("Foo")
	if exact.Ignore("foo") {
		t.Errorf("case sensitive list ignored a different case")
	}
}
