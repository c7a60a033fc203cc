package pipeline

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/ppiankov/eggcorn/internal/model"
)

// Renderer writes batch reports to disk and summaries to a terminal
type Renderer struct {
	out io.Writer
}

// NewRenderer creates a renderer printing summaries to out
func NewRenderer(out io.Writer) *Renderer {
	return &Renderer{out: out}
}

// RenderJSON writes the report as indented JSON
func (r *Renderer) RenderJSON(report *model.BatchReport, path string) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create report dir: %w", err)
		}
	}

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal report: %w", err)
	}

	if err := os.WriteFile(path, append(data, '\n'), 0644); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}

// RenderSummary prints totals and the corrections per rule
func (r *Renderer) RenderSummary(report *model.BatchReport) {
	rule := strings.Repeat("═", 59)

	_, _ = fmt.Fprintf(r.out, "\n%s\n  Batch Complete\n%s\n\n", rule, rule)
	_, _ = fmt.Fprintf(r.out, "  Run:        %s\n", report.RunID)
	_, _ = fmt.Fprintf(r.out, "  Source:     %s\n", report.Source)
	_, _ = fmt.Fprintf(r.out, "  Duration:   %v\n", report.FinishedAt.Sub(report.StartedAt).Round(time.Millisecond))
	_, _ = fmt.Fprintf(r.out, "\n")
	_, _ = fmt.Fprintf(r.out, "  Comments:   %d\n", report.Totals.Comments)
	_, _ = fmt.Fprintf(r.out, "  Corrected:  %d\n", report.Totals.Corrected)
	_, _ = fmt.Fprintf(r.out, "  Clean:      %d\n", report.Totals.Clean)
	_, _ = fmt.Fprintf(r.out, "  Skipped:    %d\n", report.Totals.Skipped)
	_, _ = fmt.Fprintf(r.out, "  Failed:     %d\n", report.Totals.Failed)
	_, _ = fmt.Fprintf(r.out, "\n")

	if len(report.Rules) == 0 {
		return
	}

	keys := make([]string, 0, len(report.Rules))
	for k := range report.Rules {
		keys = append(keys, k)
	}
	// Most frequent first, then alphabetical
	slices.SortFunc(keys, func(a, b string) int {
		if d := report.Rules[b] - report.Rules[a]; d != 0 {
			return d
		}
		return strings.Compare(a, b)
	})

	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)
	t.AppendHeader(table.Row{"Rule", "Corrections"})
	for _, k := range keys {
		t.AppendRow(table.Row{k, report.Rules[k]})
	}
	t.Render()
	_, _ = fmt.Fprintln(r.out)
}
