// Package config loads cloudgraph settings from a TOML file.
//
// Settings are resolved in three layers: built-in defaults, then the config
// file, then command-line flags (applied by the CLI). A config file looks
// like:
//
//	data_dir  = "Test_data/Azure"
//	pattern   = "*.csv"
//	delimiter = ","
//	output    = "azure_graph"
//	formats   = ["json", "svg"]
//	detailed  = false
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"unicode/utf8"

	"github.com/BurntSushi/toml"

	cgerrors "github.com/matzehuels/cloudgraph/pkg/errors"
)

// FileName is the config file looked up in the working directory.
const FileName = "cloudgraph.toml"

// Output formats.
const (
	FormatJSON = "json"
	FormatDOT  = "dot"
	FormatSVG  = "svg"
	FormatPNG  = "png"
)

// Formats lists every supported output format.
var Formats = []string{FormatJSON, FormatDOT, FormatSVG, FormatPNG}

// Defaults.
const (
	DefaultDataDir = "Test_data/Azure"
	DefaultPattern = "*.csv"
	DefaultOutput  = "azure_graph"
)

// Config holds user settings.
type Config struct {
	DataDir   string   `toml:"data_dir"`
	Pattern   string   `toml:"pattern"`
	Delimiter string   `toml:"delimiter"`
	TrimSpace bool     `toml:"trim_space"`
	Output    string   `toml:"output"`
	Formats   []string `toml:"formats"`
	Detailed  bool     `toml:"detailed"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		DataDir:   DefaultDataDir,
		Pattern:   DefaultPattern,
		Delimiter: ",",
		Output:    DefaultOutput,
		Formats:   []string{FormatJSON},
	}
}

// Load reads the file at path over the defaults. Keys missing from the file
// keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, cgerrors.Wrap(cgerrors.ErrCodeFileNotFound, err, "config %s", path)
		}
		return cfg, cgerrors.Wrap(cgerrors.ErrCodeInvalidConfig, err, "parse config %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, cgerrors.New(cgerrors.ErrCodeInvalidConfig, "unknown key %q in %s", undecoded[0].String(), path)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Discover returns the first config file that exists among the working
// directory's [FileName] and $XDG_CONFIG_HOME/cloudgraph/config.toml
// (~/.config when unset). It returns "" when none exists.
func Discover() string {
	candidates := []string{FileName}
	if dir, err := configDir(); err == nil {
		candidates = append(candidates, filepath.Join(dir, "config.toml"))
	}
	for _, c := range candidates {
		if info, err := os.Stat(c); err == nil && !info.IsDir() {
			return c
		}
	}
	return ""
}

// Resolve loads path when set, otherwise a discovered file, otherwise the
// defaults.
func Resolve(path string) (Config, error) {
	if path == "" {
		path = Discover()
	}
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

// Validate checks field values.
func (c Config) Validate() error {
	if utf8.RuneCountInString(c.Delimiter) != 1 {
		return cgerrors.New(cgerrors.ErrCodeInvalidConfig, "delimiter must be a single character, got %q", c.Delimiter)
	}
	if _, err := filepath.Match(c.Pattern, ""); err != nil {
		return cgerrors.Wrap(cgerrors.ErrCodeInvalidConfig, err, "pattern %q", c.Pattern)
	}
	return ValidateFormats(c.Formats)
}

// DelimiterRune returns the delimiter as a rune, or ',' when unset.
func (c Config) DelimiterRune() rune {
	r, _ := utf8.DecodeRuneInString(c.Delimiter)
	if r == utf8.RuneError {
		return ','
	}
	return r
}

// ValidateFormats checks that every format is supported.
func ValidateFormats(formats []string) error {
	if len(formats) == 0 {
		return cgerrors.New(cgerrors.ErrCodeInvalidFormat, "at least one output format is required")
	}
	for _, f := range formats {
		if !slices.Contains(Formats, f) {
			return cgerrors.New(cgerrors.ErrCodeInvalidFormat, "unsupported format %q (want one of %v)", f, Formats)
		}
	}
	return nil
}

func configDir() (string, error) {
	if home := os.Getenv("XDG_CONFIG_HOME"); home != "" {
		return filepath.Join(home, "cloudgraph"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("home dir: %w", err)
	}
	return filepath.Join(home, ".config", "cloudgraph"), nil
}
