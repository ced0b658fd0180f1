// Package parser implements routines for reading comments out of source code.
package parser

import (
	"regexp"
	"strings"
	"unicode"

	. "github.com/JaMo42/prepeek/common"
)

// DefaultDepth is enough lookahead to join a hyphenated word across two
// indented line comments.
const DefaultDepth = 8

// Comment holds the words of one comment.
type Comment struct {
	Line  int
	Words []string
}

type Options struct {
	// Depth is the number of tokens that are looked ahead to find the
	// continuation of a hyphenated word.
	Depth   int
	Filters []*regexp.Regexp
	// Ignore may be nil.
	Ignore *IgnoreList
}

// Filter returns true if none of the filters match the word.
func Filter(s string, filters []*regexp.Regexp) bool {
	for _, re := range filters {
		if re.MatchString(s) {
			return false
		}
	}
	return true
}

func IsWord(s string) bool {
	letters := 0
	haveApostrophe := false
	for _, char := range s {
		if unicode.IsLetter(char) {
			letters++
		} else if char == '\'' {
			if haveApostrophe {
				return false
			}
			haveApostrophe = true
		}
	}
	return letters >= 2
}

func hasLetter(s string) bool {
	return strings.IndexFunc(s, unicode.IsLetter) >= 0
}

// isFiller checks if code can sit between the two halves of a hyphenated
// word. Inside a comment that is the comment leader, outside only
// indentation.
func isFiller(text string, inComment bool) bool {
	if inComment {
		return strings.IndexFunc(text, func(r rune) bool {
			return unicode.IsLetter(r) || unicode.IsDigit(r)
		}) < 0
	}
	return len(strings.TrimSpace(text)) == 0
}

// continuation looks for the word continuing a word that ended with a hyphen
// at the end of a line. Returns the offset of that word. Only the buffered
// tokens are considered. A word in a block comment continues in the same
// block comment, a word in a line comment in the next line comment.
func continuation(tokens *Peekable[Token], block bool) (int, bool) {
	inComment := true
	newlines := 0
	for n := 0; n < tokens.Depth(); n++ {
		tok := tokens.PeekNth(n)
		if tok == nil {
			return 0, false
		}
		switch tok.kind {
		case TokenKind.CommentWord:
			return n, newlines == 1
		case TokenKind.Newline:
			newlines++
			if newlines > 1 {
				return 0, false
			}
		case TokenKind.CommentBegin:
			if block || tok.block {
				return 0, false
			}
			inComment = true
		case TokenKind.CommentEnd:
			if block {
				return 0, false
			}
			inComment = false
		case TokenKind.Code:
			if !isFiller(tok.text, inComment) {
				return 0, false
			}
		case TokenKind.Style:
		default:
			return 0, false
		}
	}
	return 0, false
}

// Extract returns the comments in source that contain at least one word.
// Words split with a hyphen at the end of a line are joined if the rest of
// the word is within the lookahead depth.
func Extract(source string, style CommentStyle, opts Options) []Comment {
	tokens := NewTokenStream(source, style, opts.Depth)
	comments := []Comment{}
	var current Optional[Comment]
	inBlock := false
	flush := func() {
		current.Take().Then(func(c Comment) {
			if len(c.Words) != 0 {
				comments = append(comments, c)
			}
		})
	}
	handle := func(tok Token) {
		switch tok.kind {
		case TokenKind.CommentBegin:
			flush()
			current = Some(Comment{Line: tok.line})
			inBlock = tok.block
		case TokenKind.CommentEnd:
			flush()
		}
	}
	addWord := func(word string) {
		word = strings.Trim(word, "'-_")
		if !current.IsSome() || !IsWord(word) || !Filter(word, opts.Filters) {
			return
		}
		if opts.Ignore != nil && opts.Ignore.Ignore(word) {
			return
		}
		c := current.Get()
		c.Words = append(c.Words, word)
	}
	for tok := range All[Token](&tokens) {
		if tok.kind != TokenKind.CommentWord {
			handle(tok)
			continue
		}
		word := tok.text
		skipped := []Token{}
		for strings.HasSuffix(word, "-") && hasLetter(word) {
			n, ok := continuation(&tokens, inBlock)
			if !ok {
				break
			}
			word = strings.TrimSuffix(word, "-") + tokens.PeekNth(n).text
			for i := 0; i < n; i++ {
				skipped = append(skipped, tokens.Next().Unwrap())
			}
			tokens.Next()
		}
		// The joined word belongs to the comment it started in.
		addWord(word)
		for _, t := range skipped {
			handle(t)
		}
	}
	// Line comments at the end of the input have no CommentEnd.
	flush()
	return comments
}
