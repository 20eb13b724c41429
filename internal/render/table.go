package render

import (
	"fmt"
	"strings"

	"tfsum/internal/plan"
)

// Table renders the summary as fixed-width grid tables, suitable for piping
// into files or tickets where ANSI styling is unwelcome.
func Table(s *plan.Summary) string {
	var b strings.Builder

	b.WriteString("Terraform Plan Summary\n")
	b.WriteString("=====================\n\n")

	b.WriteString("Overview:\n")
	b.WriteString(grid(
		[]string{"Metric", "Count"},
		[][]string{
			{"Total Resources", fmt.Sprint(s.TotalResources)},
			{"To Create", fmt.Sprint(s.ResourcesToCreate)},
			{"To Update", fmt.Sprint(s.ResourcesToUpdate)},
			{"To Delete", fmt.Sprint(s.ResourcesToDelete)},
			{"No Changes", fmt.Sprint(s.ResourcesNoChange)},
		},
	))
	b.WriteString("\n")

	b.WriteString("Resource Breakdown:\n")
	if len(s.ResourceBreakdown) == 0 {
		b.WriteString("No resource changes found.\n")
	} else {
		rows := make([][]string, 0, len(s.ResourceBreakdown))
		for _, entry := range s.ResourceBreakdown {
			rows = append(rows, []string{
				entry.ResourceType,
				fmt.Sprint(entry.Total),
				fmt.Sprint(entry.Create),
				fmt.Sprint(entry.Update),
				fmt.Sprint(entry.Delete),
				fmt.Sprint(entry.NoOp),
			})
		}
		b.WriteString(grid(
			[]string{"Resource Type", "Total", "Create", "Update", "Delete", "No-op"},
			rows,
		))
	}
	b.WriteString("\n")

	b.WriteString("Impact Analysis:\n")
	b.WriteString(grid(
		[]string{"Impact Level", "Count"},
		[][]string{
			{"High Impact", fmt.Sprint(s.ImpactAnalysis.High)},
			{"Medium Impact", fmt.Sprint(s.ImpactAnalysis.Medium)},
			{"Low Impact", fmt.Sprint(s.ImpactAnalysis.Low)},
		},
	))

	return b.String()
}

// grid draws a bordered table with a double rule under the header row.
func grid(headers []string, rows [][]string) string {
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = len(h)
	}
	for _, row := range rows {
		for i, cell := range row {
			if len(cell) > widths[i] {
				widths[i] = len(cell)
			}
		}
	}

	rule := func(fill string) string {
		parts := make([]string, len(widths))
		for i, w := range widths {
			parts[i] = strings.Repeat(fill, w+2)
		}
		return "+" + strings.Join(parts, "+") + "+\n"
	}
	line := func(cells []string) string {
		parts := make([]string, len(cells))
		for i, cell := range cells {
			parts[i] = fmt.Sprintf(" %-*s ", widths[i], cell)
		}
		return "|" + strings.Join(parts, "|") + "|\n"
	}

	var b strings.Builder
	b.WriteString(rule("-"))
	b.WriteString(line(headers))
	b.WriteString(rule("="))
	for _, row := range rows {
		b.WriteString(line(row))
		b.WriteString(rule("-"))
	}
	return b.String()
}
