package common

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

type General struct {
	// Depth is the lookahead depth used for token streams.
	Depth       int      `toml:"depth"`
	BoxStyle    string   `toml:"box-style"`
	IgnoreCase  bool     `toml:"ignore-case"`
	ReadCommand string   `toml:"read-command"`
	Filters     []string `toml:"filters"`
	IgnoreLists []string `toml:"ignore-lists"`
}

type Config struct {
	Extensions map[string][]string
	Styles     map[string]CommentStyle
	General    General
}

func DefaultConfig() Config {
	return Config{
		Extensions: map[string][]string{},
		Styles:     map[string]CommentStyle{},
		General: General{
			Depth:      8,
			BoxStyle:   "rounded",
			IgnoreCase: true,
		},
	}
}

// ParseConfig decodes a TOML document over the default configuration.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	err := toml.Unmarshal(data, &cfg)
	var derr *toml.DecodeError
	if errors.As(err, &derr) {
		return cfg, fmt.Errorf("%w:\n%s", err, derr.String())
	} else if err != nil {
		return cfg, err
	}
	if cfg.General.Depth < 0 {
		return cfg, fmt.Errorf("negative depth: %d", cfg.General.Depth)
	}
	for name, style := range cfg.Styles {
		if err := style.Check(); err != nil {
			return cfg, fmt.Errorf("invalid comment style: %s: %w", name, err)
		}
	}
	for name := range cfg.Extensions {
		if _, ok := cfg.Styles[name]; !ok && !isBuiltinStyleName(name) {
			return cfg, fmt.Errorf("extensions for unknown comment style: %s", name)
		}
	}
	return cfg, nil
}

// isBuiltinStyleName reports whether name is reserved for a builtin comment
// style. Those only exist after MergeBuiltinStyles.
func isBuiltinStyleName(name string) bool {
	return strings.HasPrefix(name, "builtin-")
}

// LoadConfig loads the configuration file or aborts the program.
func LoadConfig(pathname string) Config {
	data, err := os.ReadFile(pathname)
	if err != nil {
		Fatal("%s", err)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		Fatal("%s: %s", pathname, err)
	}
	return cfg
}

// GetStyle returns the comment style for a file extension.
func (self *Config) GetStyle(extension string) (CommentStyle, bool) {
	for style, extensions := range self.Extensions {
		for _, ext := range extensions {
			if ext == extension {
				return self.Styles[style], true
			}
		}
	}
	return CommentStyle{}, false
}
