package config

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Overrides is the structure of the overrides.yaml file: syllable counts that
// a person has checked by hand, usually after listing the review backlog.
type Overrides struct {
	Words []WordOverride `yaml:"words"`
}

// WordOverride is one reviewed word.
type WordOverride struct {
	Word      string `yaml:"word"`
	Syllables int    `yaml:"syllables"`
}

// OverridesPath returns the overrides file location from OVERRIDES_FILE.
func OverridesPath() string {
	return getEnv("OVERRIDES_FILE", "overrides.yaml")
}

// LoadOverrides loads the overrides file at path.
// Returns nil without error if the file doesn't exist.
func LoadOverrides(path string) (*Overrides, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Overrides are optional
			return nil, nil
		}
		return nil, err
	}

	var o Overrides
	if err := yaml.Unmarshal(data, &o); err != nil {
		return nil, err
	}

	for i, w := range o.Words {
		if strings.TrimSpace(w.Word) == "" {
			return nil, fmt.Errorf("overrides entry %d: word is required", i)
		}
		if w.Syllables < 1 {
			return nil, fmt.Errorf("overrides entry %q: syllables must be at least 1", w.Word)
		}
	}

	return &o, nil
}

// Lookup finds the reviewed count for a word, ignoring case and surrounding
// whitespace in the file.
func (o *Overrides) Lookup(word string) (int, bool) {
	if o == nil {
		return 0, false
	}
	for _, w := range o.Words {
		if strings.EqualFold(strings.TrimSpace(w.Word), word) {
			return w.Syllables, true
		}
	}
	return 0, false
}
