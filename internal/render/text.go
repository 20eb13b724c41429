package render

import (
	"fmt"
	"strings"

	"tfsum/internal/plan"
	"tfsum/internal/ui"
)

// Text renders the default text summary: overview, per-type breakdown and
// impact section, plus a grouped per-resource listing when Detailed is set.
func Text(s *plan.Summary, opts Options) string {
	var b strings.Builder

	paint := func(color, text string) string {
		if opts.NoColor {
			return text
		}
		return color + text + ui.ColorReset
	}

	b.WriteString(paint(ui.TextBold, "Terraform Plan Summary"))
	b.WriteString("\n")
	b.WriteString(strings.Repeat("=", 40))
	b.WriteString("\n\n")

	b.WriteString("Overview:\n")
	fmt.Fprintf(&b, "  - Total Resources: %d\n", s.TotalResources)
	fmt.Fprintf(&b, "  - To Create: %s\n", paint(ui.ColorSuccess, fmt.Sprint(s.ResourcesToCreate)))
	fmt.Fprintf(&b, "  - To Update: %s\n", paint(ui.ColorWarning, fmt.Sprint(s.ResourcesToUpdate)))
	fmt.Fprintf(&b, "  - To Delete: %s\n", paint(ui.ColorError, fmt.Sprint(s.ResourcesToDelete)))
	fmt.Fprintf(&b, "  - No Changes: %d\n", s.ResourcesNoChange)
	b.WriteString("\n")

	if len(s.ResourceBreakdown) > 0 {
		b.WriteString("Resource Breakdown:\n")
		for _, entry := range s.ResourceBreakdown {
			fmt.Fprintf(&b, "  - %s: %s (%s)\n",
				entry.ResourceType,
				pluralize(entry.Total, "resource", "resources"),
				breakdownActions(entry))
		}
		b.WriteString("\n")
	}

	b.WriteString("Potential Impact:\n")
	fmt.Fprintf(&b, "  - High Impact: %d resources (deletions/replacements)\n", s.ImpactAnalysis.High)
	fmt.Fprintf(&b, "  - Medium Impact: %d resources (updates)\n", s.ImpactAnalysis.Medium)
	fmt.Fprintf(&b, "  - Low Impact: %d resources (creations)\n", s.ImpactAnalysis.Low)

	if opts.Detailed {
		b.WriteString("\n")
		b.WriteString(strings.Repeat("=", 60))
		b.WriteString("\n\n")
		b.WriteString("Detailed Resource Changes:\n\n")
		writeDetailedText(&b, s, opts)
	}

	return b.String()
}

// writeDetailedText lists every change grouped by action, each address
// colored by its impact level.
func writeDetailedText(b *strings.Builder, s *plan.Summary, opts Options) {
	groups := groupByAction(s)

	for _, action := range actionOrder {
		changes := groups[action]
		if len(changes) == 0 {
			continue
		}

		header := fmt.Sprintf("%s (%s):", strings.ToUpper(string(action)), pluralize(len(changes), "resource", "resources"))
		if !opts.NoColor {
			header = ui.ActionColor(string(action)) + header + ui.ColorReset
		}
		b.WriteString(header)
		b.WriteString("\n")

		for _, c := range changes {
			line := "  " + c.Address
			if !opts.NoColor {
				line = "  " + ui.ImpactColor(string(c.Impact)) + c.Address + ui.ColorReset
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}
}
