package main

import (
	"encoding/json"
	"fmt"
	"io"
	"prompt-lab/domain"
	"slices"
	"strings"

	"github.com/gookit/color"
	"github.com/olekukonko/tablewriter"
	"github.com/samber/lo"
)

type printer struct {
	out     io.Writer
	colours bool
}

func (p printer) header(title string) {
	header := fmt.Sprintf("====== %s ======", title)
	if p.colours {
		header = color.New(color.BgBlack, color.FgGreen).Render(header)
	}
	fmt.Fprintln(p.out, header)
}

func (p printer) failure(message string) {
	if p.colours {
		message = color.New(color.FgRed, color.OpBold).Render(message)
	}
	fmt.Fprintln(p.out, message)
}

func (p printer) lines(items []string) {
	for _, item := range items {
		fmt.Fprintf(p.out, "- %s\n", item)
	}
}

func (p printer) table(header []string, rows [][]string) {
	table := tablewriter.NewWriter(p.out)
	table.SetHeader(header)
	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("")
	table.SetRowSeparator("")
	table.SetHeaderLine(false)
	table.SetBorder(false)
	table.SetTablePadding("\t")
	table.AppendBulk(rows)
	table.Render()
}

func (p printer) json(v any) error {
	encoder := json.NewEncoder(p.out)
	encoder.SetIndent("", "  ")
	encoder.SetEscapeHTML(false)
	return encoder.Encode(v)
}

func (p printer) result(r domain.PromptResult) {
	if !r.Success {
		p.failure(r.Error)
		if len(r.AvailableModels) > 0 {
			fmt.Fprintf(p.out, "사용 가능한 모델: %s\n", strings.Join(r.AvailableModels, ", "))
		}
		return
	}
	p.header(fmt.Sprintf("%s (%s)", r.ModelInfo.ModelName, r.ModelID))
	fmt.Fprintln(p.out, r.OptimizedPrompt)
	if len(r.GenerationParams) > 0 {
		fmt.Fprintln(p.out)
		keys := lo.Keys(r.GenerationParams)
		slices.Sort(keys)
		p.table([]string{"Parameter", "Value"}, lo.Map(keys, func(k string, _ int) []string {
			return []string{k, fmt.Sprint(r.GenerationParams[k])}
		}))
	}
}

// grouped renders a map of lists as one row per key, sorted by key.
func grouped(groups map[string][]string) [][]string {
	keys := lo.Keys(groups)
	slices.Sort(keys)
	return lo.Map(keys, func(k string, _ int) []string {
		return []string{k, strings.Join(groups[k], ", ")}
	})
}
