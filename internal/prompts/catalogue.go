package prompts

import (
	_ "embed"
	"fmt"
	"strings"
	"text/template"

	"gopkg.in/yaml.v3"
)

//go:embed catalogue.yaml
var catalogueYAML []byte

// Entry is one prompt in the catalogue
type Entry struct {
	Description string `yaml:"description"`
	Template    string `yaml:"template"`
}

// Catalogue maps flow names to their prompts
type Catalogue map[string]Entry

var funcs = template.FuncMap{
	"join": strings.Join,
}

// LoadCatalogue parses a YAML catalogue
func LoadCatalogue(data []byte) (Catalogue, error) {
	var c Catalogue
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse prompt catalogue: %w", err)
	}
	return c, nil
}

// DefaultCatalogue returns the built-in prompts
func DefaultCatalogue() Catalogue {
	c, err := LoadCatalogue(catalogueYAML)
	if err != nil {
		panic(err)
	}
	return c
}

// Template compiles the named prompt
func (c Catalogue) Template(name string) (*template.Template, error) {
	entry, ok := c[name]
	if !ok {
		return nil, fmt.Errorf("prompt %q not in catalogue", name)
	}
	t, err := template.New(name).Funcs(funcs).Option("missingkey=error").Parse(entry.Template)
	if err != nil {
		return nil, fmt.Errorf("compile prompt %q: %w", name, err)
	}
	return t, nil
}
