package templates

import (
	"log/slog"
	"prompt-lab/errors"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

func newTestLibrary() *Library {
	return NewLibrary(logs.GetLoggerFromLevel(slog.LevelDebug))
}

func TestLibrary_Catalog_Shape(t *testing.T) {
	req := require.New(t)
	library := newTestLibrary()

	req.Equal([]string{"code_generation", "analysis", "writing", "summarization"}, library.Categories())
	for _, c := range library.Categories() {
		req.Equal([]string{"claude-3", "gemini-pro", "gpt-4", "llama-2"}, library.Models(c))
	}
	req.Len(library.All(), 16)
}

func TestLibrary_Declared_Variables_Match_Placeholders(t *testing.T) {
	req := require.New(t)

	for _, tmpl := range newTestLibrary().All() {
		var found []string
		for _, m := range placeholderPattern.FindAllStringSubmatch(tmpl.Text, -1) {
			found = append(found, m[1])
		}
		req.ElementsMatch(tmpl.Variables, uniq(found), "%s/%s", tmpl.Category, tmpl.Model)
	}
}

func uniq(values []string) []string {
	seen := map[string]bool{}
	var out []string
	for _, v := range values {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}

func TestLibrary_ApplyTemplate(t *testing.T) {
	req := require.New(t)
	library := newTestLibrary()

	// Given every required variable plus an extra one
	out, err := library.ApplyTemplate("code_generation", "gpt-4", map[string]string{
		"language": "Go",
		"task":     "CSV 파서 {작성}",
		"ignored":  "x",
	})

	// Then placeholders are replaced and values are kept verbatim
	req.NoError(err)
	req.Contains(out, "다음 Go 코드를 작성해주세요: CSV 파서 {작성}")
	req.NotContains(out, "{language}")
	req.NotContains(out, "{task}")
}

func TestLibrary_ApplyTemplate_Missing_Variable(t *testing.T) {
	req := require.New(t)
	library := newTestLibrary()

	tests := []struct {
		description string
		variables   map[string]string
		missing     string
	}{
		{"Should report the first placeholder of the text", map[string]string{}, "format"},
		{"Should report an empty value", map[string]string{"format": "  ", "content": "x", "length": "짧게"}, "format"},
		{"Should report a later variable", map[string]string{"format": "목록", "content": "x"}, "length"},
	}

	for _, tt := range tests {
		_, err := library.ApplyTemplate("summarization", "gpt-4", tt.variables)

		var missing errors.MissingVariableError
		req.ErrorAs(err, &missing, tt.description)
		req.ErrorIs(err, errors.ErrMissingTemplateVariable)
		req.Equal(tt.missing, missing.Variable, tt.description)
		req.Equal([]string{"format", "content", "length"}, missing.Required)
		req.Contains(err.Error(), "필수 변수 '"+tt.missing+"'가 누락되었습니다")
	}
}

func TestLibrary_Unknown_Template(t *testing.T) {
	req := require.New(t)
	library := newTestLibrary()

	tests := []struct{ category, model string }{
		{"translation", "gpt-4"},
		{"writing", "gpt-5"},
		{"", "gpt-4"},
		{"writing", ""},
	}

	for _, tt := range tests {
		_, err := library.ApplyTemplate(tt.category, tt.model, map[string]string{})
		req.ErrorIs(err, errors.ErrUnknownTemplate)
		_, err = library.Variables(tt.category, tt.model)
		req.ErrorIs(err, errors.ErrUnknownTemplate)
	}
}

func TestLibrary_Returns_Copies(t *testing.T) {
	req := require.New(t)
	library := newTestLibrary()

	vars, err := library.Variables("writing", "claude-3")
	req.NoError(err)
	vars[0] = "mutated"
	again, _ := library.Variables("writing", "claude-3")
	req.Equal("type", again[0])

	tasks := library.ExampleTasks("llama-2")
	req.Len(tasks, 5)
	tasks[0] = "mutated"
	req.NotEqual("mutated", library.ExampleTasks("llama-2")[0])
	req.Empty(library.ExampleTasks("gpt-5"))
}
