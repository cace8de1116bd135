package suite

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/DjordjeVuckovic/calc-hunter/internal/apperr"
	"github.com/DjordjeVuckovic/calc-hunter/internal/calc"
	"gopkg.in/yaml.v3"
)

type LoadedSuite struct {
	Suite    *TestSuite
	Registry *TemplateRegistry
	Cases    []ResolvedCase
	Dir      string
}

func LoadFromFile(path string) (*LoadedSuite, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read suite file: %w", err)
	}
	loaded, err := Parse(data)
	if err != nil {
		return nil, err
	}
	loaded.Dir = filepath.Dir(path)
	return loaded, nil
}

func Parse(data []byte) (*LoadedSuite, error) {
	var s TestSuite
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("parse suite YAML: %w", err)
	}
	if len(s.Cases) == 0 {
		return nil, fmt.Errorf("suite has no cases")
	}

	defaultNotation := calc.Infix
	if s.Notation != "" {
		n, err := calc.ParseNotation(s.Notation)
		if err != nil {
			return nil, fmt.Errorf("suite notation: %w", err)
		}
		defaultNotation = n
	}

	registry := NewTemplateRegistry()
	for _, t := range s.Templates {
		if err := registry.Register(t); err != nil {
			return nil, fmt.Errorf("register template: %w", err)
		}
	}

	seen := make(map[string]bool, len(s.Cases))
	resolved := make([]ResolvedCase, 0, len(s.Cases))
	for i := range s.Cases {
		c := &s.Cases[i]
		if c.ID == "" {
			return nil, fmt.Errorf("case at index %d has no id", i)
		}
		if seen[c.ID] {
			return nil, fmt.Errorf("duplicate case id %q", c.ID)
		}
		seen[c.ID] = true

		rc, err := resolve(c, defaultNotation, registry)
		if err != nil {
			return nil, fmt.Errorf("case %q: %w", c.ID, err)
		}
		resolved = append(resolved, rc)
	}

	return &LoadedSuite{Suite: &s, Registry: registry, Cases: resolved}, nil
}

func resolve(c *Case, defaultNotation calc.Notation, registry *TemplateRegistry) (ResolvedCase, error) {
	rc := ResolvedCase{ID: c.ID, Description: c.Description, Notation: defaultNotation, Expect: c.Expect}

	if c.Notation != "" {
		n, err := calc.ParseNotation(c.Notation)
		if err != nil {
			return rc, err
		}
		rc.Notation = n
	}

	switch {
	case c.Expect != nil && c.WantsError():
		return rc, fmt.Errorf("expect and expect_error are mutually exclusive")
	case c.Expect == nil && !c.WantsError():
		return rc, fmt.Errorf("one of expect or expect_error is required")
	case c.WantsError():
		kind, err := apperr.ParseKind(c.ExpectError)
		if err != nil {
			return rc, err
		}
		rc.ExpectError = kind
	}

	switch {
	case c.Template != "" && c.Expression != "":
		return rc, fmt.Errorf("expression and template are mutually exclusive")
	case c.Template != "":
		text, err := registry.RenderExpression(c.Template, c.Params)
		if err != nil {
			return rc, err
		}
		rc.Expression = text
	default:
		// Empty expressions are legal inputs that must fail as malformed.
		rc.Expression = c.Expression
	}

	return rc, nil
}
