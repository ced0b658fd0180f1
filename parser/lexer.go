package parser

import (
	"fmt"
	"strings"
	"unicode"

	. "github.com/JaMo42/prepeek/common"
	"github.com/JaMo42/prepeek/util"
)

const (
	eofRune            = rune(0)
	eofStateInfo       = -1
	lexStateInCode int = iota
	lexStateInEscape
	lexStateInComment
	lexStateInString
)

// lexTransition is a state info pair used for switching.
type lexTransition struct{ from, to int }

// TokenKindType is the underlying type for the values in TokenKind.
type TokenKindType int

// TokenKind acts as a namespace for token types.
var TokenKind = struct {
	Code         TokenKindType
	Style        TokenKindType
	CommentBegin TokenKindType
	CommentWord  TokenKindType
	CommentEnd   TokenKindType
	Newline      TokenKindType
	EOF          TokenKindType
}{0, 1, 2, 3, 4, 5, 6}

func LexerTokenKindName(kind TokenKindType) string {
	switch kind {
	case TokenKind.Code:
		return "Code"
	case TokenKind.Style:
		return "Style"
	case TokenKind.CommentBegin:
		return "CommentBegin"
	case TokenKind.CommentWord:
		return "CommentWord"
	case TokenKind.CommentEnd:
		return "CommentEnd"
	case TokenKind.Newline:
		return "Newline"
	case TokenKind.EOF:
		return "EOF"
	}
	panic("not a token kind")
}

type Token struct {
	kind TokenKindType
	// line is the 1-based line the token starts on.
	line int
	text string
	// block is set on CommentBegin and CommentEnd markers of block comments.
	block bool
}

// String returns a string to display the token, use Text() to get the tokens
// text.
func (self Token) String() string {
	text := strings.ReplaceAll(self.text, "\x1b", "\\e")
	text = strings.ReplaceAll(text, "\n", "\\n")
	return fmt.Sprintf("%s(%s)", LexerTokenKindName(self.kind), text)
}

func (self *Token) Kind() TokenKindType {
	return self.kind
}

func (self *Token) Line() int {
	return self.line
}

func (self *Token) Text() string {
	return self.text
}

// IsBlockComment reports whether a comment marker belongs to a block comment.
func (self *Token) IsBlockComment() bool {
	return self.block
}

func IsEOF(t Token) bool {
	return t.kind == TokenKind.EOF
}

// Lexer splits source code into code, comment words and markers for comment
// boundaries and line breaks. Once the input is exhausted Next returns EOF
// tokens forever.
type Lexer struct {
	source       []rune
	used         int
	line         int
	dfa          Dfa
	lineComment  Optional[State]
	state        int
	commentState Optional[State]
	ignoreWord   bool
	wordLength   int
	nextTokens   []Token
}

// buildDfa builds the DFA for a comment style, also returning the line
// comment state if the style has line comments.
func buildDfa(style CommentStyle) (Dfa, Optional[State]) {
	dfa := NewDfa()
	inCodeState := dfa.AddState(lexStateInCode)
	inCodeState.AddTransition("\n", inCodeState.Id())
	inEscapeState := dfa.AddState(lexStateInEscape)
	inCodeState.AddTransition("\x1b", inEscapeState.Id())
	// Only SGR sequences are supported so escape sequences always end with `m`.
	inEscapeState.AddTransition("m", inCodeState.Id())
	eofState := dfa.AddState(eofStateInfo)
	lineComment := None[State]()
	inCodeState.AddTransition(string(eofRune), eofState.Id())
	inEscapeState.AddTransition(string(eofRune), eofState.Id())
	// All line comment variants share one state. Line and block comments use
	// the same info, comment markers tell them apart by the state id.
	if len(style.Line) != 0 {
		inLineState := dfa.AddState(lexStateInComment)
		lineComment = Some(inLineState.Id())
		for _, token := range style.Line {
			inCodeState.AddTransition(token, inLineState.Id())
		}
		inLineState.AddTransition("\n", inCodeState.Id())
		inLineState.AddTransition("\x1b", inEscapeState.Id())
		inLineState.AddTransition(string(eofRune), eofState.Id())
	}
	for i, begin := range style.BlockBegin {
		end := style.BlockEnd[i]
		// Each block comment variant needs its own state so we leave it with
		// the matching token (Python's """ and ''').
		state := dfa.AddState(lexStateInComment)
		inCodeState.AddTransition(begin, state.Id())
		state.AddTransition(end, inCodeState.Id())
		state.AddTransition("\x1b", inEscapeState.Id())
		state.AddTransition("\n", state.Id())
		state.AddTransition(string(eofRune), eofState.Id())
		if style.BlockNesting {
			state.Nest(begin, end)
		}
	}
	for _, ss := range style.Strings {
		state := dfa.AddState(lexStateInString)
		inCodeState.AddTransition(ss.Begin, state.Id())
		// Escapes go first so they win over the end token.
		if len(ss.Escape) > 0 {
			state.AddTransition(ss.Escape+ss.Escape, state.Id())
			state.AddTransition(ss.Escape+ss.End, state.Id())
		}
		state.AddTransition(ss.End, inCodeState.Id())
		state.AddTransition(string(eofRune), eofState.Id())
	}
	return dfa, lineComment
}

func NewLexer(source string, commentStyle CommentStyle) Lexer {
	runes := []rune(source)
	runes = append(runes, eofRune)
	dfa, lineComment := buildDfa(commentStyle)
	return Lexer{
		source:       runes,
		line:         1,
		dfa:          dfa,
		lineComment:  lineComment,
		state:        lexStateInCode,
		commentState: None[State](),
	}
}

// drop drops count characters from the source.
func (self *Lexer) drop(count int) {
	self.source = self.source[count:]
	self.used -= count
	if self.used < 0 {
		self.used = 0
	}
}

// consume consumes the used text, returning it as a string.
func (self *Lexer) consume(count int) string {
	str := string(self.source[:count])
	self.drop(count)
	return str
}

// createToken creates a token of the given kind with the used text.
// If there is no used text None is returned.
func (self *Lexer) createToken(kind TokenKindType) Optional[Token] {
	if self.used <= 0 {
		return None[Token]()
	}
	text := self.consume(self.used)
	token := Token{kind: kind, line: self.line, text: text}
	// Code may contain line breaks that are not Newline tokens, i.e. inside
	// string literals.
	self.line += strings.Count(text, "\n")
	return Some(token)
}

// createMarker creates an empty token at the current position.
func (self *Lexer) createMarker(kind TokenKindType) Token {
	token := Token{kind: kind, line: self.line}
	if kind == TokenKind.Newline {
		self.line++
	}
	return token
}

// createCommentMarker creates a CommentBegin or CommentEnd marker for the
// comment in the given state.
func (self *Lexer) createCommentMarker(kind TokenKindType, comment State) Token {
	token := self.createMarker(kind)
	token.block = !self.lineComment.IsSome() || self.lineComment.Unwrap() != comment
	return token
}

func (self *Lexer) addToken(t Token) {
	self.nextTokens = append(self.nextTokens, t)
}

func isWordChar(char rune) bool {
	return unicode.IsLetter(char) || char == '-' || char == '\'' || char == '_'
}

// processInComment processes one character inside a comment, adding tokens
// to the internal list.
func (self *Lexer) processInComment(char rune) {
	inWord := self.wordLength > 1
	if (char == '@' || char == '\\') && !inWord {
		self.createToken(TokenKind.Code).Then(self.addToken)
		self.ignoreWord = true
	} else if isWordChar(char) {
		self.wordLength++
	} else if inWord {
		if self.ignoreWord {
			self.ignoreWord = false
		} else {
			self.used -= 1
			self.used -= self.wordLength
			self.createToken(TokenKind.Code).Then(self.addToken)
			self.used = self.wordLength
			self.createToken(TokenKind.CommentWord).Then(self.addToken)
			self.used++
		}
		self.wordLength = 0
	} else {
		self.ignoreWord = false
		self.wordLength = 0
	}
}

// getNextTokens processes the source until the DFA changes state or the
// source is exhausted.
func (self *Lexer) getNextTokens() {
	lastState := self.dfa.CurrentState()
	if len(self.source) == 0 {
		self.addToken(self.createMarker(TokenKind.EOF))
		return
	}
	for {
		char := self.source[self.used]
		self.used++
		if self.state == lexStateInComment {
			self.processInComment(char)
		}
		stateChanged, tokenLength := self.dfa.Process(char)
		if !stateChanged {
			continue
		}
		self.state = self.dfa.CurrentState().Info()
		if self.state == eofStateInfo {
			self.used--
			self.createToken(TokenKind.Code).Then(self.addToken)
			self.used++
			self.drop(1)
			self.addToken(self.createMarker(TokenKind.EOF))
			return
		}
		switch (lexTransition{lastState.Info(), self.state}) {
		case lexTransition{lexStateInCode, lexStateInComment}:
			self.used -= tokenLength
			self.createToken(TokenKind.Code).Then(self.addToken)
			self.addToken(self.createCommentMarker(TokenKind.CommentBegin, self.dfa.CurrentState().Id()))
			self.used += tokenLength

		case lexTransition{lexStateInCode, lexStateInEscape}:
			self.used -= tokenLength
			self.createToken(TokenKind.Code).Then(self.addToken)

		case lexTransition{lexStateInComment, lexStateInCode}:
			if char == '\n' {
				self.used -= 1
			}
			self.createToken(TokenKind.Code).Then(self.addToken)
			self.addToken(self.createCommentMarker(TokenKind.CommentEnd, lastState.Id()))
			if char == '\n' {
				self.drop(1)
				self.addToken(self.createMarker(TokenKind.Newline))
			}

		case lexTransition{lexStateInEscape, lexStateInCode}:
			self.addToken(self.createToken(TokenKind.Style).Unwrap())
			self.commentState.Take().Then(func(id State) {
				// Escape sequences always return to code, if the sequence
				// started in a comment we go back to that comment instead.
				self.dfa.ForceState(id)
				self.state = self.dfa.CurrentState().Info()
			})

		case lexTransition{lexStateInComment, lexStateInEscape}:
			self.used -= tokenLength
			self.commentState = Some(lastState.id)
			self.createToken(TokenKind.Code).Then(self.addToken)

		case lexTransition{lexStateInCode, lexStateInCode},
			lexTransition{lexStateInComment, lexStateInComment}:
			// Caused by a newline.
			self.used -= 1
			self.createToken(TokenKind.Code).Then(self.addToken)
			self.drop(1)
			self.addToken(self.createMarker(TokenKind.Newline))
		}
		// InString only exists so comment tokens inside strings are ignored,
		// the string itself is code.
		return
	}
}

// Next returns the next token. If the input is exhausted all calls return EOF.
func (self *Lexer) Next() (t Token) {
	for len(self.nextTokens) == 0 {
		self.getNextTokens()
	}
	t, self.nextTokens = util.PopFront(self.nextTokens)
	return t
}

// NewTokenStream lexes source and makes the next depth tokens available for
// peeking. The EOF token ends the stream.
func NewTokenStream(source string, style CommentStyle, depth int) Peekable[Token] {
	lexer := NewLexer(source, style)
	return NewPeekable(Terminated[Token](&lexer, IsEOF), depth)
}
