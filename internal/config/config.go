// Package config holds the driver settings: which word classifier the lexer
// runs with, how parse results are rendered and how the REPL behaves.
//
// Files are TOML or YAML, chosen by extension.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/HicaroD/clite/internal/lexer"
)

const (
	APP_NAME     = "clite"
	CONFIG_FILE  = "config.toml"
	LOCAL_FILE   = "clite.toml"
	HISTORY_FILE = "history"
	ENV_CONFIG   = "CLITE_CONFIG"
)

type Format int

const (
	FORMAT_TOML Format = iota
	FORMAT_YAML
)

func (f Format) String() string {
	switch f {
	case FORMAT_TOML:
		return "toml"
	case FORMAT_YAML:
		return "yaml"
	}
	return "unknown"
}

func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "toml":
		return FORMAT_TOML, nil
	case "yaml", "yml":
		return FORMAT_YAML, nil
	}
	return FORMAT_TOML, fmt.Errorf("unknown config format %q", name)
}

// DetectFormat picks the format from the file extension. Anything that is
// not .yaml or .yml is read as TOML.
func DetectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FORMAT_YAML
	default:
		return FORMAT_TOML
	}
}

type Config struct {
	Lexer  LexerConfig  `toml:"lexer" yaml:"lexer"`
	Output OutputConfig `toml:"output" yaml:"output"`
	REPL   REPLConfig   `toml:"repl" yaml:"repl"`

	// Source is the file the config was read from, empty for defaults.
	Source string `toml:"-" yaml:"-"`
}

type LexerConfig struct {
	Classifier string `toml:"classifier" yaml:"classifier"`
}

type OutputConfig struct {
	Format string `toml:"format" yaml:"format"`
	Color  bool   `toml:"color" yaml:"color"`
}

type REPLConfig struct {
	HistoryFile        string `toml:"history_file" yaml:"history_file"`
	Prompt             string `toml:"prompt" yaml:"prompt"`
	ContinuationPrompt string `toml:"continuation_prompt" yaml:"continuation_prompt"`
}

var OUTPUT_FORMATS map[string]bool = map[string]bool{
	"tree": true,
	"yaml": true,
}

func Default() *Config {
	return &Config{
		Lexer:  LexerConfig{Classifier: lexer.PERMISSIVE.String()},
		Output: OutputConfig{Format: "tree", Color: true},
		REPL: REPLConfig{
			Prompt:             "clite> ",
			ContinuationPrompt: "   ... ",
		},
	}
}

// Load reads path over the defaults, so keys missing from the file keep
// their default values. Unknown keys are an error.
func Load(path string) (*Config, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := Default()
	if err := cfg.decode(content, DetectFormat(path)); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	cfg.Source = path

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return cfg, nil
}

func (cfg *Config) decode(content []byte, format Format) error {
	switch format {
	case FORMAT_TOML:
		md, err := toml.Decode(string(content), cfg)
		if err != nil {
			return err
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return fmt.Errorf("unknown key %q", undecoded[0].String())
		}
	case FORMAT_YAML:
		dec := yaml.NewDecoder(bytes.NewReader(content))
		dec.KnownFields(true)
		// an empty document leaves the defaults alone
		if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
			return err
		}
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
	return nil
}

// Discover finds the config file to use. The first of these that is set
// or exists wins: explicit, $CLITE_CONFIG, ./clite.toml and config.toml in
// the user config directory. Without any of them the defaults are used.
func Discover(explicit string) (*Config, error) {
	if explicit != "" {
		return Load(explicit)
	}
	if path := os.Getenv(ENV_CONFIG); path != "" {
		return Load(path)
	}

	candidates := []string{LOCAL_FILE}
	if dir, err := Dir(); err == nil {
		candidates = append(candidates, filepath.Join(dir, CONFIG_FILE))
	}
	for _, path := range candidates {
		if _, err := os.Stat(path); err == nil {
			return Load(path)
		}
	}
	return Default(), nil
}

func (cfg *Config) Validate() error {
	if _, err := lexer.ParseClassifier(cfg.Lexer.Classifier); err != nil {
		return fmt.Errorf("lexer.classifier: %w", err)
	}
	if !OUTPUT_FORMATS[cfg.Output.Format] {
		return fmt.Errorf("output.format: unknown format %q, expected tree or yaml", cfg.Output.Format)
	}
	if cfg.REPL.Prompt == "" {
		return errors.New("repl.prompt: must not be empty")
	}
	return nil
}

// Classifier returns the configured classifier, falling back to
// PERMISSIVE for a config that was never validated.
func (cfg *Config) Classifier() lexer.Classifier {
	classifier, err := lexer.ParseClassifier(cfg.Lexer.Classifier)
	if err != nil {
		return lexer.PERMISSIVE
	}
	return classifier
}

// HistoryPath is repl.history_file when set, otherwise a file in the user
// config directory. It is empty when neither can be determined.
func (cfg *Config) HistoryPath() string {
	if cfg.REPL.HistoryFile != "" {
		return cfg.REPL.HistoryFile
	}
	dir, err := Dir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, HISTORY_FILE)
}

func (cfg *Config) Encode(w io.Writer, format Format) error {
	switch format {
	case FORMAT_TOML:
		return toml.NewEncoder(w).Encode(cfg)
	case FORMAT_YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(cfg); err != nil {
			return err
		}
		return enc.Close()
	}
	return fmt.Errorf("unsupported format: %s", format)
}

// Dir returns the clite directory under the user config directory
// without creating it.
func Dir() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, APP_NAME), nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine home directory")
	}
	if os.Getenv("OS") == "Windows_NT" {
		return filepath.Join(os.Getenv("APPDATA"), APP_NAME), nil
	}
	return filepath.Join(homeDir, ".config", APP_NAME), nil
}

// EnsureDir is Dir, creating the directory when it is missing.
func EnsureDir() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return dir, nil
}
