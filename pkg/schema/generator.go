// Package schema derives JSON Schema documents from Go types so YAML config
// files can be validated by editors and CI.
package schema

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

const schemaRef = "https://json-schema.org/draft/2020-12/schema"

type JSONSchema struct {
	Schema               string                 `json:"$schema,omitempty"`
	ID                   string                 `json:"$id,omitempty"`
	Title                string                 `json:"title,omitempty"`
	Description          string                 `json:"description,omitempty"`
	Type                 string                 `json:"type,omitempty"`
	Required             []string               `json:"required,omitempty"`
	Properties           map[string]*JSONSchema `json:"properties,omitempty"`
	AdditionalProperties *JSONSchema            `json:"additionalProperties,omitempty"`
	Items                *JSONSchema            `json:"items,omitempty"`
	Enum                 []any                  `json:"enum,omitempty"`
	Default              any                    `json:"default,omitempty"`
	Pattern              string                 `json:"pattern,omitempty"`
	MinLength            *int                   `json:"minLength,omitempty"`
	MinItems             *int                   `json:"minItems,omitempty"`
}

// Generator reads field names from the tag named by TagName (yaml by
// default) and constraints from the `schema` tag, for example
// `schema:"required,enum=infix|polish"`.
type Generator struct {
	TagName string
	BaseID  string
}

type Option func(*Generator)

func WithTagName(name string) Option {
	return func(g *Generator) {
		g.TagName = name
	}
}

func WithBaseID(base string) Option {
	return func(g *Generator) {
		g.BaseID = strings.TrimSuffix(base, "/")
	}
}

func NewGenerator(opts ...Option) *Generator {
	g := &Generator{TagName: "yaml", BaseID: "https://schemas.calc-hunter.dev"}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func (g *Generator) GenerateSchema(t reflect.Type) (*JSONSchema, error) {
	s, err := g.schemaFor(t)
	if err != nil {
		return nil, err
	}

	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	s.Schema = schemaRef
	s.Title = t.Name()
	if t.Name() != "" {
		s.ID = fmt.Sprintf("%s/%s", g.BaseID, strings.ToLower(t.Name()))
	}
	return s, nil
}

func (g *Generator) GenerateJSONSchema(v any) (string, error) {
	s, err := g.GenerateSchema(reflect.TypeOf(v))
	if err != nil {
		return "", err
	}

	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal schema to JSON: %w", err)
	}
	return string(data), nil
}

func (g *Generator) schemaFor(t reflect.Type) (*JSONSchema, error) {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	switch t.Kind() {
	case reflect.Struct:
		return g.structSchema(t)
	case reflect.Slice, reflect.Array:
		items, err := g.schemaFor(t.Elem())
		if err != nil {
			return nil, fmt.Errorf("array items: %w", err)
		}
		return &JSONSchema{Type: "array", Items: items}, nil
	case reflect.Map:
		if t.Key().Kind() != reflect.String {
			return nil, fmt.Errorf("unsupported map key: %s", t.Key().Kind())
		}
		values, err := g.schemaFor(t.Elem())
		if err != nil {
			return nil, fmt.Errorf("map values: %w", err)
		}
		return &JSONSchema{Type: "object", AdditionalProperties: values}, nil
	case reflect.Interface:
		return &JSONSchema{}, nil
	case reflect.String:
		return &JSONSchema{Type: "string"}, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return &JSONSchema{Type: "integer"}, nil
	case reflect.Float32, reflect.Float64:
		return &JSONSchema{Type: "number"}, nil
	case reflect.Bool:
		return &JSONSchema{Type: "boolean"}, nil
	default:
		return nil, fmt.Errorf("unsupported type: %s", t.Kind())
	}
}

func (g *Generator) structSchema(t reflect.Type) (*JSONSchema, error) {
	s := &JSONSchema{
		Type:       "object",
		Properties: make(map[string]*JSONSchema),
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		name := g.fieldName(field)
		if name == "" {
			continue
		}

		fs, err := g.schemaFor(field.Type)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", field.Name, err)
		}
		if desc := field.Tag.Get("description"); desc != "" {
			fs.Description = desc
		}

		if applyTag(field.Tag.Get("schema"), fs) {
			s.Required = append(s.Required, name)
		}
		s.Properties[name] = fs
	}

	return s, nil
}

// fieldName returns "" for fields the tag marks as skipped.
func (g *Generator) fieldName(field reflect.StructField) string {
	tag := field.Tag.Get(g.TagName)
	if tag == "-" {
		return ""
	}

	name, _, _ := strings.Cut(tag, ",")
	if name == "" {
		return strings.ToLower(field.Name[:1]) + field.Name[1:]
	}
	return name
}

// applyTag copies constraints onto s and reports whether the field is required.
func applyTag(tag string, s *JSONSchema) bool {
	if tag == "" {
		return false
	}

	required := false
	for _, part := range strings.Split(tag, ",") {
		key, val, _ := strings.Cut(strings.TrimSpace(part), "=")
		switch key {
		case "required":
			required = true
		case "enum":
			for _, e := range strings.Split(val, "|") {
				s.Enum = append(s.Enum, e)
			}
		case "default":
			s.Default = val
		case "pattern":
			s.Pattern = val
		case "minLength":
			if n, err := strconv.Atoi(val); err == nil {
				s.MinLength = &n
			}
		case "minItems":
			if n, err := strconv.Atoi(val); err == nil {
				s.MinItems = &n
			}
		}
	}
	return required
}
