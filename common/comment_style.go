package common

import "fmt"

// StringStyle describes a string literal. Comment tokens inside strings are
// not comments. Escape is the escape character sequence, an escaped End or
// Escape does not close the string.
type StringStyle struct {
	Begin  string `toml:"begin"`
	End    string `toml:"end"`
	Escape string `toml:"escape"`
}

type CommentStyle struct {
	Line         []string      `toml:"line"`
	BlockBegin   []string      `toml:"block-begin"`
	BlockEnd     []string      `toml:"block-end"`
	BlockNesting bool          `toml:"block-nesting"`
	Strings      []StringStyle `toml:"strings"`
}

func checkTokenLengths(tokens ...string) error {
	for _, tok := range tokens {
		if len(tok) == 0 {
			return fmt.Errorf("empty token")
		}
		if len(tok) > 8 {
			return fmt.Errorf("token longer than 8 bytes: %s", tok)
		}
	}
	return nil
}

func (self *CommentStyle) Check() error {
	if len(self.BlockBegin) != len(self.BlockEnd) {
		return fmt.Errorf("block-begin and block-end values do not match")
	}
	for _, field := range [][]string{self.Line, self.BlockBegin, self.BlockEnd} {
		if err := checkTokenLengths(field...); err != nil {
			return err
		}
	}
	for _, s := range self.Strings {
		if err := checkTokenLengths(s.Begin, s.End); err != nil {
			return fmt.Errorf("string: %w", err)
		}
		if len(s.Escape) != 0 {
			if err := checkTokenLengths(s.Escape+s.End, s.Escape+s.Escape); err != nil {
				return fmt.Errorf("string escape: %w", err)
			}
		}
	}
	return nil
}
