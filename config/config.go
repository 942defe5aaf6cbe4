/*
File    : yada/config/config.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package config loads the REPL/CLI's optional .yadarc.yaml settings: the
// prompt string, whether to show the startup banner, whether to colorize
// output, and the evaluator's soft call-depth guard. The interpreter core
// (lexer/parser/eval) never imports this package — it is purely an ambient
// concern of the cmd/repl layer, same separation the teacher draws between
// eval.Evaluator's plain io.Writer and repl's colorized output.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the conventional name of the config file, looked up beside
// the invoked source file and, failing that, in $HOME.
const FileName = ".yadarc.yaml"

// Config holds every tunable the REPL/CLI reads from a config file. Zero
// values are never meaningful on their own — Default() is the only
// constructor that produces a ready-to-use Config; Load merges a file's
// contents onto it.
type Config struct {
	Prompt       string `yaml:"prompt"`
	Banner       bool   `yaml:"banner"`
	Color        bool   `yaml:"color"`
	MaxCallDepth int    `yaml:"maxCallDepth"`
}

// Default returns the built-in settings used when no config file is found.
func Default() Config {
	return Config{
		Prompt:       ">> ",
		Banner:       true,
		Color:        true,
		MaxCallDepth: 10000,
	}
}

// Load reads and parses path, overlaying its fields onto Default(). A
// missing file is not an error — it is the normal case, and Default() is
// returned unchanged. A present-but-malformed file is reported as a
// wrapped error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return cfg, nil
}

// Locate looks for FileName beside sourcePath (or in the current directory
// when sourcePath is empty, i.e. REPL mode with no file argument) and, if
// not found there, in $HOME. It returns "" when neither location has one;
// that is not an error, it just means LoadForSource should use Default().
func Locate(sourcePath string) string {
	dir := "."
	if sourcePath != "" {
		dir = filepath.Dir(sourcePath)
	}

	if candidate := filepath.Join(dir, FileName); fileExists(candidate) {
		return candidate
	}

	if home, err := os.UserHomeDir(); err == nil {
		if candidate := filepath.Join(home, FileName); fileExists(candidate) {
			return candidate
		}
	}

	return ""
}

// LoadForSource is the convenience entry point main/repl actually calls:
// locate a config file relevant to sourcePath, load it, and fall back to
// Default() when none exists.
func LoadForSource(sourcePath string) (Config, error) {
	path := Locate(sourcePath)
	if path == "" {
		return Default(), nil
	}
	return Load(path)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
