package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Scenario defines one unscrambling regression case.
type Scenario struct {
	// Name uniquely identifies this scenario. Used for golden file names.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Dictionary lists words inline, in dictionary order.
	Dictionary []string `yaml:"dictionary,omitempty"`

	// DictionaryFile is a word list to load after the inline words.
	DictionaryFile string `yaml:"dictionary_file,omitempty"`

	// Encoding of DictionaryFile. Empty means UTF-8.
	Encoding string `yaml:"encoding,omitempty"`

	// Input is the scrambled text.
	Input string `yaml:"input"`

	// Expect is the exact expected output. If nil, only golden comparison
	// (when available) validates the output.
	Expect *string `yaml:"expect,omitempty"`

	// Workers sets engine parallelism. Zero means sequential.
	Workers int `yaml:"workers,omitempty"`
}

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	return LoadScenarioWithBasePath(path, filepath.Dir(path))
}

// LoadScenarioWithBasePath reads and parses a scenario YAML file,
// resolving dictionary_file relative to the provided base path.
func LoadScenarioWithBasePath(path, basePath string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	// Parse YAML with strict field validation (catches typos)
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true) // Reject unknown fields
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if f := scenario.DictionaryFile; f != "" && !filepath.IsAbs(f) && basePath != "" {
		scenario.DictionaryFile = filepath.Join(basePath, f)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	return &scenario, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}

	if s.Description == "" {
		return fmt.Errorf("description is required")
	}

	if len(s.Dictionary) == 0 && s.DictionaryFile == "" {
		return fmt.Errorf("dictionary or dictionary_file is required")
	}

	if s.Encoding != "" && s.DictionaryFile == "" {
		return fmt.Errorf("encoding requires dictionary_file")
	}

	if s.Workers < 0 {
		return fmt.Errorf("workers must be >= 0, got %d", s.Workers)
	}

	return nil
}
