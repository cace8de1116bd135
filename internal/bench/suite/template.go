package suite

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ExpressionTemplate is an expression with {{name}} placeholders, used to
// generate families of cases from one shape.
type ExpressionTemplate struct {
	ID         string `yaml:"id" schema:"required,minLength=1"`
	Expression string `yaml:"expression" schema:"required,minLength=1"`
}

type TemplateParams map[string]any

var placeholderRegex = regexp.MustCompile(`\{\{(\w+)\}\}`)

func (t *ExpressionTemplate) Render(params TemplateParams) (string, error) {
	result := placeholderRegex.ReplaceAllStringFunc(t.Expression, func(match string) string {
		key := match[2 : len(match)-2]
		if val, ok := params[key]; ok {
			return formatValue(val)
		}
		return match
	})

	missing := findPlaceholders(result)
	if len(missing) > 0 {
		return "", fmt.Errorf("template %q missing params: %v", t.ID, missing)
	}

	return result, nil
}

func (t *ExpressionTemplate) RequiredParams() []string {
	return findPlaceholders(t.Expression)
}

func (t *ExpressionTemplate) Validate() error {
	if t.ID == "" {
		return fmt.Errorf("template has no id")
	}
	if strings.TrimSpace(t.Expression) == "" {
		return fmt.Errorf("template %q has no expression", t.ID)
	}
	return nil
}

// formatValue renders a param the way the tokenizer reads it; lists become
// space-separated operands.
func formatValue(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case int:
		return strconv.Itoa(val)
	case int64:
		return strconv.FormatInt(val, 10)
	case uint64:
		return strconv.FormatUint(val, 10)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	case []string:
		return strings.Join(val, " ")
	case []any:
		strs := make([]string, len(val))
		for i, item := range val {
			strs[i] = formatValue(item)
		}
		return strings.Join(strs, " ")
	default:
		return fmt.Sprintf("%v", v)
	}
}

func findPlaceholders(s string) []string {
	matches := placeholderRegex.FindAllStringSubmatch(s, -1)
	if len(matches) == 0 {
		return nil
	}

	seen := make(map[string]bool)
	var names []string
	for _, m := range matches {
		if len(m) > 1 && !seen[m[1]] {
			seen[m[1]] = true
			names = append(names, m[1])
		}
	}
	return names
}

type TemplateRegistry struct {
	templates map[string]*ExpressionTemplate
}

func NewTemplateRegistry() *TemplateRegistry {
	return &TemplateRegistry{
		templates: make(map[string]*ExpressionTemplate),
	}
}

func (r *TemplateRegistry) Register(t *ExpressionTemplate) error {
	if t == nil {
		return fmt.Errorf("template is nil")
	}
	if err := t.Validate(); err != nil {
		return err
	}
	if _, exists := r.templates[t.ID]; exists {
		return fmt.Errorf("template %q already registered", t.ID)
	}
	r.templates[t.ID] = t
	return nil
}

func (r *TemplateRegistry) Get(id string) (*ExpressionTemplate, bool) {
	t, ok := r.templates[id]
	return t, ok
}

func (r *TemplateRegistry) RenderExpression(templateID string, params TemplateParams) (string, error) {
	t, ok := r.Get(templateID)
	if !ok {
		return "", fmt.Errorf("template %q not found", templateID)
	}
	return t.Render(params)
}

func (r *TemplateRegistry) List() []string {
	ids := make([]string, 0, len(r.templates))
	for id := range r.templates {
		ids = append(ids, id)
	}
	return ids
}
