// Package catalog holds the read-only table of translation target languages.
package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"newssaar/backend/internal/model"
)

//go:embed languages.yaml
var defaultLanguages []byte

var ErrEmptyCatalog = errors.New("language catalog is empty")

type catalogFile struct {
	Languages []struct {
		Code string `yaml:"code"`
		Name string `yaml:"name"`
	} `yaml:"languages"`
}

// Catalog maps language codes to display names. It is built once and never
// mutated, so it is safe to share between goroutines.
type Catalog struct {
	order []model.Language
	names map[string]string
}

// Default parses the embedded language table.
func Default() (*Catalog, error) {
	return Parse(defaultLanguages)
}

// Parse builds a catalog from a YAML document of the form
//
//	languages:
//	  - code: en
//	    name: english
func Parse(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decode languages: %w", err)
	}

	c := &Catalog{names: make(map[string]string, len(file.Languages))}
	for _, l := range file.Languages {
		code := strings.ToLower(strings.TrimSpace(l.Code))
		if code == "" {
			continue
		}
		if _, dup := c.names[code]; dup {
			continue
		}
		name := capitalize(strings.TrimSpace(l.Name))
		c.names[code] = name
		c.order = append(c.order, model.Language{Code: code, Name: name})
	}
	if len(c.order) == 0 {
		return nil, ErrEmptyCatalog
	}
	return c, nil
}

// Has reports whether code is a supported target language.
func (c *Catalog) Has(code string) bool {
	_, ok := c.names[strings.ToLower(strings.TrimSpace(code))]
	return ok
}

// Name returns the display name for code, or "" when unknown.
func (c *Catalog) Name(code string) string {
	return c.names[strings.ToLower(strings.TrimSpace(code))]
}

// Languages returns the entries in table order. The slice is a copy.
func (c *Catalog) Languages() []model.Language {
	out := make([]model.Language, len(c.order))
	copy(out, c.order)
	return out
}

func (c *Catalog) Len() int {
	return len(c.order)
}

// capitalize upper-cases the first letter and lower-cases the rest,
// so "haitian creole" becomes "Haitian creole".
func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}
