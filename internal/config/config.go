// Package config loads unscrambler settings from a YAML file.
//
// Files are decoded strictly (unknown keys are rejected) and then checked
// against an embedded CUE schema, so out-of-range values are reported
// with the offending field before any work starts.
//
// Example:
//
//	dictionary: ./german.dic
//	encoding: iso-8859-1
//	normalize: true
//	database: ./german.db
//	workers: 4
package config

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"gopkg.in/yaml.v3"
)

//go:embed schema.cue
var schemaCUE string

// ErrInvalid is returned when a config file fails schema validation.
var ErrInvalid = errors.New("invalid config")

// Config holds the settings shared by all commands.
type Config struct {
	// Dictionary is the path to a word list, one word per line.
	Dictionary string `yaml:"dictionary,omitempty" json:"dictionary,omitempty"`

	// Encoding of the word list: utf-8, iso-8859-1 or windows-1252.
	Encoding string `yaml:"encoding,omitempty" json:"encoding,omitempty"`

	// Normalize NFC-normalizes dictionary words and input text.
	Normalize bool `yaml:"normalize" json:"normalize"`

	// Database is an optional SQLite dictionary cache.
	Database string `yaml:"database,omitempty" json:"database,omitempty"`

	// Workers is the number of parallel line workers.
	Workers int `yaml:"workers,omitempty" json:"workers,omitempty"`
}

// Default returns the settings used when no file is given.
func Default() Config {
	return Config{
		Encoding:  "utf-8",
		Normalize: true,
		Workers:   1,
	}
}

// Load reads path and overlays it on Default().
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data)
}

// Parse decodes YAML data and overlays it on Default().
func Parse(data []byte) (Config, error) {
	cfg := Default()

	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // Reject unknown fields
	if err := decoder.Decode(&cfg); err != nil {
		// An empty document leaves the defaults untouched.
		if errors.Is(err, io.EOF) {
			return cfg, nil
		}
		return Config{}, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks cfg against the embedded CUE schema.
func (c Config) Validate() error {
	ctx := cuecontext.New()

	schema := ctx.CompileString(schemaCUE).LookupPath(cue.ParsePath("#Config"))
	if err := schema.Err(); err != nil {
		return fmt.Errorf("compile config schema: %w", err)
	}

	value := ctx.Encode(c.schemaView())
	if err := value.Err(); err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	if err := schema.Unify(value).Validate(cue.Concrete(true)); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	return nil
}

// schemaView returns the fields to validate, omitting unset optional
// values so the schema only constrains what was given.
func (c Config) schemaView() map[string]any {
	view := map[string]any{"normalize": c.Normalize}
	if c.Dictionary != "" {
		view["dictionary"] = c.Dictionary
	}
	if c.Encoding != "" {
		view["encoding"] = c.Encoding
	}
	if c.Database != "" {
		view["database"] = c.Database
	}
	if c.Workers != 0 {
		view["workers"] = c.Workers
	}
	return view
}
