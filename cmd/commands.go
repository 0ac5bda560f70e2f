package main

import (
	"fmt"
	"prompt-lab/domain"
	"prompt-lab/observability"
	"prompt-lab/templates"
	"strconv"
	"strings"
	"time"

	"github.com/samber/lo"
)

type command struct {
	name  string
	usage string
	run   func(a *app, args []string) error
}

var commands = []command{
	{"optimize", "-model ID [-text T | -file F] [-override k=v ...] [-json]", (*app).optimize},
	{"batch", "-models a,b [-text T | -file F] [-override k=v ...] [-json]", (*app).batch},
	{"models", "[-type text|image|video|music]", (*app).models},
	{"tips", "-model ID [-capability C]", (*app).tips},
	{"structure", "-model ID", (*app).structure},
	{"compare", "-models a,b,c [-json]", (*app).compare},
	{"template", "-category C -model M [-var k=v ...] [-examples]", (*app).template},
	{"templates", "[-search Q] [-limit N]", (*app).templates},
	{"validate", "-model ID [-text T | -file F]", (*app).validate},
	{"stats", "[-json]", (*app).stats},
}

func (a *app) optimize(args []string) error {
	fs := a.flags("optimize")
	model := fs.String("model", "", "model id")
	text := fs.String("text", "", "prompt text")
	file := fs.String("file", "", "text file holding the prompt")
	asJSON := fs.Bool("json", false, "print the full result as JSON")
	overrides := pairs{}
	fs.Var(overrides, "override", "feature override key=value, repeatable")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := required("model", *model); err != nil {
		return err
	}
	input, err := readInput(*text, *file, a.config.MaxInputBytes)
	if err != nil {
		return err
	}

	result := a.optimizer.OptimizePrompt(input, *model, overrides.overrides())
	if *asJSON {
		if err = a.printer.json(result); err != nil {
			return err
		}
	} else {
		a.printer.result(result)
	}
	if !result.Success {
		return fmt.Errorf("optimization failed: %s", result.Error)
	}
	return nil
}

func (a *app) batch(args []string) error {
	fs := a.flags("batch")
	models := fs.String("models", "", "comma separated model ids")
	text := fs.String("text", "", "prompt text")
	file := fs.String("file", "", "text file holding the prompt")
	asJSON := fs.Bool("json", false, "print the results as JSON")
	overrides := pairs{}
	fs.Var(overrides, "override", "feature override key=value, repeatable")
	if err := fs.Parse(args); err != nil {
		return err
	}
	input, err := readInput(*text, *file, a.config.MaxInputBytes)
	if err != nil {
		return err
	}

	results, err := a.optimizer.BatchOptimize(input, splitList(*models), overrides.overrides())
	if err != nil {
		return err
	}
	if *asJSON {
		if err = a.printer.json(results); err != nil {
			return err
		}
	} else {
		for _, r := range results {
			a.printer.result(r)
			fmt.Fprintln(a.out)
		}
	}
	failed := lo.CountBy(results, func(r domain.PromptResult) bool { return !r.Success })
	if failed > 0 {
		return fmt.Errorf("%d of %d optimizations failed", failed, len(results))
	}
	return nil
}

func (a *app) models(args []string) error {
	fs := a.flags("models")
	modelType := fs.String("type", "", "category filter")
	if err := fs.Parse(args); err != nil {
		return err
	}
	infos := a.optimizer.AvailableModels(*modelType)
	a.printer.table([]string{"ID", "Name", "Provider", "Category", "Max tokens", "Multimodal"},
		lo.Map(infos, func(m domain.ModelInfo, _ int) []string {
			return []string{m.ModelID, m.ModelName, m.Provider, string(m.Category),
				strconv.Itoa(m.MaxTokens), strconv.FormatBool(m.SupportsMultimodal)}
		}))
	return nil
}

func (a *app) tips(args []string) error {
	fs := a.flags("tips")
	model := fs.String("model", "", "model id")
	capability := fs.String("capability", "", "capability, defaults to the first one of the model")
	if err := fs.Parse(args); err != nil {
		return err
	}
	tips, err := a.optimizer.Tips(*model, *capability)
	if err != nil {
		return err
	}
	a.printer.header(lo.Ternary(*capability == "", *model, *model+" / "+*capability))
	a.printer.lines(tips)
	return nil
}

func (a *app) structure(args []string) error {
	fs := a.flags("structure")
	model := fs.String("model", "", "model id")
	if err := fs.Parse(args); err != nil {
		return err
	}
	s, err := a.optimizer.Structure(*model)
	if err != nil {
		return err
	}
	a.printer.table([]string{"Section", "Entries"}, [][]string{
		{"components", strings.Join(s.Components, ", ")},
		{"recommended_order", strings.Join(s.RecommendedOrder, " > ")},
		{"optional_components", strings.Join(s.OptionalComponents, ", ")},
	})
	return nil
}

func (a *app) compare(args []string) error {
	fs := a.flags("compare")
	models := fs.String("models", "", "comma separated model ids")
	asJSON := fs.Bool("json", false, "print the comparison as JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if err := required("models", *models); err != nil {
		return err
	}
	c := a.optimizer.Compare(splitList(*models))
	if *asJSON {
		return a.printer.json(c)
	}
	a.printer.header("Models")
	a.printer.table([]string{"ID", "Name", "Provider", "Multimodal"},
		lo.Map(c.Models, func(m domain.ModelSummary, _ int) []string {
			return []string{m.ModelID, m.ModelName, m.Provider, strconv.FormatBool(m.SupportsMultimodal)}
		}))
	a.printer.header("Capabilities")
	a.printer.table([]string{"Capability", "Models"}, grouped(c.Capabilities))
	a.printer.header("Providers")
	a.printer.table([]string{"Provider", "Models"}, grouped(c.Providers))
	a.printer.header("Multimodal")
	a.printer.table([]string{"Support", "Models"}, grouped(c.MultimodalSupport))
	return nil
}

func (a *app) template(args []string) error {
	fs := a.flags("template")
	category := fs.String("category", "", "template category")
	model := fs.String("model", "", "template model")
	examples := fs.Bool("examples", false, "print the example tasks of the model")
	variables := pairs{}
	fs.Var(variables, "var", "template variable key=value, repeatable")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *examples {
		a.printer.header(*model)
		a.printer.lines(a.library.ExampleTasks(*model))
		return nil
	}
	text, err := a.library.ApplyTemplate(*category, *model, variables)
	if err != nil {
		return err
	}
	fmt.Fprintln(a.out, text)
	return nil
}

func (a *app) templates(args []string) error {
	fs := a.flags("templates")
	query := fs.String("search", "", "full-text query over the templates")
	limit := fs.Int("limit", 10, "maximum number of hits")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *query == "" {
		a.printer.table([]string{"Category", "Model", "Variables"},
			lo.Map(a.library.All(), func(t templates.Template, _ int) []string {
				return []string{string(t.Category), t.Model, strings.Join(t.Variables, ", ")}
			}))
		return nil
	}

	index, err := templates.NewIndex(a.log, a.library)
	if err != nil {
		return err
	}
	defer func() { _ = index.Close() }()
	hits, err := index.Search(*query, *limit)
	if err != nil {
		return err
	}
	a.printer.table([]string{"Category", "Model", "Score"},
		lo.Map(hits, func(h templates.Hit, _ int) []string {
			return []string{h.Category, h.Model, strconv.FormatFloat(h.Score, 'f', 3, 64)}
		}))
	return nil
}

func (a *app) validate(args []string) error {
	fs := a.flags("validate")
	model := fs.String("model", "", "model id")
	text := fs.String("text", "", "prompt text")
	file := fs.String("file", "", "text file holding the prompt")
	if err := fs.Parse(args); err != nil {
		return err
	}
	input, err := readInput(*text, *file, a.config.MaxInputBytes)
	if err != nil {
		return err
	}
	v, err := a.optimizer.ValidatePrompt(input, *model)
	if err != nil {
		return err
	}
	a.printer.table([]string{"Metric", "Value"}, [][]string{
		{"length", strconv.Itoa(v.Length)},
		{"word_count", strconv.Itoa(v.WordCount)},
		{"estimated_tokens", strconv.Itoa(v.EstimatedTokens)},
	})
	if len(v.Warnings) > 0 {
		a.printer.header("Warnings")
		a.printer.lines(v.Warnings)
	}
	if len(v.Suggestions) > 0 {
		a.printer.header("Suggestions")
		a.printer.lines(v.Suggestions)
	}
	return nil
}

func (a *app) stats(args []string) error {
	fs := a.flags("stats")
	asJSON := fs.Bool("json", false, "print the snapshot as JSON")
	if err := fs.Parse(args); err != nil {
		return err
	}
	monitor, err := observability.NewMonitor(a.log, a.optimizer)
	if err != nil {
		return err
	}
	snapshot, err := monitor.Snapshot()
	if err != nil {
		return err
	}
	if *asJSON {
		return a.printer.json(snapshot)
	}

	a.printer.header("Process")
	a.printer.table([]string{"Metric", "Value"}, [][]string{
		{"pid", strconv.Itoa(int(snapshot.PID))},
		{"rss_bytes", strconv.FormatUint(snapshot.RSSBytes, 10)},
		{"cpu_percent", strconv.FormatFloat(snapshot.CPUPercent, 'f', 2, 64)},
		{"alloc_mem_mb", strconv.FormatUint(snapshot.AllocMemMb, 10)},
		{"num_gc", strconv.FormatUint(uint64(snapshot.NumGC), 10)},
	})
	a.printer.header(fmt.Sprintf("Usage (%d requests)", snapshot.Usage.TotalRequests))
	a.printer.table([]string{"Model", "Requests"},
		lo.Map(snapshot.TopModels, func(m observability.ModelCount, _ int) []string {
			return []string{m.ModelID, strconv.Itoa(m.Count)}
		}))
	a.printer.header("Recent")
	a.printer.table([]string{"At", "Model", "Category", "Success", "Task"},
		lo.Map(snapshot.Usage.Recent, func(e domain.UsageEvent, _ int) []string {
			return []string{e.At.Format(time.RFC3339), e.ModelID, e.Category,
				strconv.FormatBool(e.Success), e.TaskPreview}
		}))
	return nil
}
