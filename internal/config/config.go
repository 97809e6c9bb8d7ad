// Package config loads analyzer tunables from an optional TOML file: a
// typed struct with a Default() and a Load(path), so an embedder can
// retarget the lexer's and semantic actions' hard-coded limits without
// touching code. The Boreal core never requires a config file; Default()
// alone reproduces Boreal's standard constants.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/oxixes/boreal-lang-ext/internal/diag"
)

// Config holds the tunable limits and tables the lexer and semantic actions
// consult. All fields default to Boreal's standard values.
type Config struct {
	// MaxIdentifierLength is the longest accepted identifier, in characters.
	MaxIdentifierLength int `toml:"max_identifier_length"`

	// MaxIntegerLiteral is the largest accepted integer literal value
	// (inclusive); must be less than 2^15, i.e. max 32767.
	MaxIntegerLiteral int `toml:"max_integer_literal"`

	// MaxStringLiteral is the longest accepted string literal content, in
	// characters, not counting the surrounding quotes.
	MaxStringLiteral int `toml:"max_string_literal"`

	// SizeOf gives the memory footprint used by declaration actions to bump
	// the running displacement counter for each declared symbol.
	SizeOf map[string]int `toml:"size_of"`

	// ReservedWords is the canonical (lower-case) keyword table consulted by
	// the lexer to distinguish keywords from identifiers. Overriding this is
	// an advanced/experimental use; Default()'s table is exactly Boreal's.
	ReservedWords []string `toml:"reserved_words"`
}

// Default returns Boreal's standard configuration.
func Default() Config {
	return Config{
		MaxIdentifierLength: 32,
		MaxIntegerLiteral:   32767,
		MaxStringLiteral:    64,
		SizeOf: map[string]int{
			"integer": 1,
			"boolean": 1,
			"string":  64,
		},
		ReservedWords: []string{
			"program", "procedure", "function", "var", "begin", "end",
			"integer", "boolean", "string",
			"if", "then", "while", "do", "repeat", "until", "for", "to",
			"case", "of", "otherwise", "loop", "exit", "when", "return",
			"write", "writeln", "read",
			"or", "xor", "and", "not", "mod", "in", "max", "min",
			"true", "false",
		},
	}
}

// Load reads a TOML file at path and overlays it on top of Default(). A
// missing path is not an error; Default() is returned unchanged. A
// malformed file is wrapped in diag.ErrBadConfig.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return Config{}, fmt.Errorf("%w: decoding config file %q: %v", diag.ErrBadConfig, path, err)
	}
	return cfg, nil
}

// IsReserved reports whether lowerWord (already lower-cased) names a
// reserved word under this configuration.
func (c Config) IsReserved(lowerWord string) bool {
	for _, w := range c.ReservedWords {
		if w == lowerWord {
			return true
		}
	}
	return false
}
