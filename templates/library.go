package templates

import (
	"fmt"
	"log/slog"
	"prompt-lab/errors"
	"regexp"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
)

type Category string

const (
	CodeGeneration Category = "code_generation"
	Analysis       Category = "analysis"
	Writing        Category = "writing"
	Summarization  Category = "summarization"
)

var placeholderPattern = regexp.MustCompile(`\{([a-z_]+)\}`)

var validate = validator.New()

// Template is an authored prompt with its required variables.
type Template struct {
	Category  Category
	Model     string
	Variables []string
	Text      string
}

type applyRequest struct {
	Category string `validate:"required"`
	Model    string `validate:"required"`
}

// Library is the static two-level lookup category -> model -> template.
type Library struct {
	log        *slog.Logger
	categories []Category
	templates  map[Category]map[string]Template
}

func NewLibrary(log *slog.Logger) *Library {
	l := &Library{log: log, templates: make(map[Category]map[string]Template)}
	for _, t := range catalog {
		if _, ok := l.templates[t.Category]; !ok {
			l.categories = append(l.categories, t.Category)
			l.templates[t.Category] = make(map[string]Template)
		}
		l.templates[t.Category][t.Model] = t
	}
	return l
}

// Categories keeps the catalog order.
func (l *Library) Categories() []string {
	return lo.Map(l.categories, func(c Category, _ int) string { return string(c) })
}

// Models lists the models having a template in the category, sorted.
func (l *Library) Models(category string) []string {
	models := lo.Keys(l.templates[Category(category)])
	slices.Sort(models)
	return models
}

func (l *Library) Template(category, model string) (Template, error) {
	t, ok := l.templates[Category(category)][model]
	if !ok {
		return Template{}, fmt.Errorf("%w: 카테고리 '%s' 또는 모델 '%s'에 대한 템플릿을 찾을 수 없습니다",
			errors.ErrUnknownTemplate, category, model)
	}
	t.Variables = slices.Clone(t.Variables)
	return t, nil
}

func (l *Library) Variables(category, model string) ([]string, error) {
	t, err := l.Template(category, model)
	if err != nil {
		return nil, err
	}
	return t.Variables, nil
}

// ExampleTasks never fails, unknown models have no examples.
func (l *Library) ExampleTasks(model string) []string {
	return slices.Clone(exampleTasks[model])
}

// All returns every template, grouped by category in catalog order.
func (l *Library) All() []Template {
	all := make([]Template, 0, len(catalog))
	for _, c := range l.categories {
		for _, m := range l.Models(string(c)) {
			all = append(all, l.templates[c][m])
		}
	}
	return all
}

// ApplyTemplate substitutes the variables in one pass, so values are inserted verbatim.
// The first placeholder of the text without a non-empty value is reported. Extra variables are ignored.
func (l *Library) ApplyTemplate(category, model string, variables map[string]string) (string, error) {
	if err := validate.Struct(applyRequest{Category: category, Model: model}); err != nil {
		return "", fmt.Errorf("%w: %v", errors.ErrUnknownTemplate, err)
	}
	t, err := l.Template(category, model)
	if err != nil {
		return "", err
	}

	pairs := make([]string, 0, 2*len(t.Variables))
	for _, m := range placeholderPattern.FindAllStringSubmatch(t.Text, -1) {
		name := m[1]
		if strings.TrimSpace(variables[name]) == "" {
			l.log.Debug("Template variable missing", "category", category, "model", model, "variable", name)
			return "", errors.MissingVariableError{Variable: name, Required: t.Variables}
		}
		pairs = append(pairs, m[0], variables[name])
	}
	return strings.NewReplacer(pairs...).Replace(t.Text), nil
}
