package scan

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Global is the exclusion key applying to every model.
const Global = "*"

// Exclusions maps a model identity (or Global) to method names that must
// never be probed on it. A name present in either the global set or the
// model's own set is excluded.
type Exclusions map[string][]string

// excluded reports whether method is excluded for the given model class.
func (e Exclusions) excluded(class, method string) bool {
	for _, key := range [2]string{Global, class} {
		for _, name := range e[key] {
			if name == method {
				return true
			}
		}
	}
	return false
}

// ParseExclusions decodes a YAML exclusion document:
//
//	"*":
//	  - Refresh
//	schema.Author:
//	  - Secret
func ParseExclusions(r io.Reader) (Exclusions, error) {
	var e Exclusions
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&e); err != nil {
		if err == io.EOF {
			return Exclusions{}, nil
		}
		return nil, fmt.Errorf("scan: parsing exclusions: %w", err)
	}
	return e, nil
}

// LoadExclusions reads an exclusion document from a file.
func LoadExclusions(path string) (Exclusions, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("scan: loading exclusions: %w", err)
	}
	defer f.Close()
	return ParseExclusions(f)
}
