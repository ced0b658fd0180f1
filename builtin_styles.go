package main

import (
	"golang.org/x/text/cases"

	"github.com/JaMo42/prepeek/common"
	"github.com/JaMo42/prepeek/util"
)

type styleData struct {
	name       string
	extensions []string
	style      common.CommentStyle
}

var doubleQuoted = common.StringStyle{Begin: "\"", End: "\"", Escape: "\\"}

// Source: https://en.wikipedia.org/wiki/Comparison_of_programming_languages_(syntax)#Comments
var builtinStyles = []styleData{
	{
		name: "builtin-c",
		extensions: []string{
			"c", "cc", "cpp", "cxx", "h", "hpp", "hxx",
			"go",
			"js", "ts",
			"cs",
			"java",
		},
		style: common.CommentStyle{
			Line:       []string{"//"},
			BlockBegin: []string{"/*"},
			BlockEnd:   []string{"*/"},
			Strings:    []common.StringStyle{doubleQuoted},
		},
	},
	{
		name:       "builtin-rust",
		extensions: []string{"rs"},
		style: common.CommentStyle{
			Line:         []string{"//"},
			BlockBegin:   []string{"/*"},
			BlockEnd:     []string{"*/"},
			BlockNesting: true,
			Strings:      []common.StringStyle{doubleQuoted},
		},
	},
	{
		name:       "builtin-python",
		extensions: []string{"py"},
		style: common.CommentStyle{
			Line:       []string{"#"},
			BlockBegin: []string{"\"\"\"", "'''"},
			BlockEnd:   []string{"\"\"\"", "'''"},
		},
	},
	{
		name:       "builtin-#",
		extensions: []string{"sh", "bashrc", "toml", "ini", "cfg", "rb"},
		style: common.CommentStyle{
			Line: []string{"#"},
		},
	},
}

// MergeBuiltinStyles merges the builtin styles into the given config.
// Extensions that are already set are removed, if a builtin style has no
// unset extensions it is skipped.
func MergeBuiltinStyles(cfg *common.Config) {
	set := map[string]bool{}
	caser := cases.Fold()
	for _, extensions := range cfg.Extensions {
		for _, ext := range extensions {
			set[caser.String(ext)] = true
		}
	}
	for _, style := range builtinStyles {
		// Additional extensions for builtin styles may be specified in the config.
		predef := cfg.Extensions[style.name]
		extensions := util.Filter(
			append([]string{}, style.extensions...),
			func(ext string) bool {
				return !set[ext]
			},
		)
		// Predefined extensions are in the set and got filtered from ours,
		// no need to de-duplicate.
		extensions = append(extensions, predef...)
		if len(extensions) == 0 {
			continue
		}
		cfg.Styles[style.name] = style.style
		cfg.Extensions[style.name] = extensions
	}
}
