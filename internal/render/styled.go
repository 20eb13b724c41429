package render

import (
	"fmt"
	"strings"

	"tfsum/internal/plan"
	"tfsum/internal/ui"

	"github.com/charmbracelet/lipgloss"
)

// styledTheme bundles the lipgloss styles used by the styled renderer.
// Colors come from the user configuration through the ui package.
type styledTheme struct {
	title   lipgloss.Style
	header  lipgloss.Style
	cell    lipgloss.Style
	create  lipgloss.Style
	update  lipgloss.Style
	delete  lipgloss.Style
	noop    lipgloss.Style
	section lipgloss.Style
}

func newStyledTheme() styledTheme {
	return styledTheme{
		title: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ui.GetHexColorByName("info"))),
		header: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color(ui.GetHexColorByName("highlight"))),
		cell:   lipgloss.NewStyle(),
		create: lipgloss.NewStyle().Foreground(lipgloss.Color(ui.GetHexColorByName("success"))),
		update: lipgloss.NewStyle().Foreground(lipgloss.Color(ui.GetHexColorByName("warning"))),
		delete: lipgloss.NewStyle().Foreground(lipgloss.Color(ui.GetHexColorByName("error"))),
		noop:   lipgloss.NewStyle().Foreground(lipgloss.Color(ui.GetHexColorByName("faint"))),
		section: lipgloss.NewStyle().
			Bold(true).
			Underline(true),
	}
}

func (t styledTheme) impact(level plan.ImpactLevel) lipgloss.Style {
	switch level {
	case plan.ImpactHigh:
		return t.delete
	case plan.ImpactMedium:
		return t.update
	default:
		return t.create
	}
}

func (t styledTheme) action(action plan.ChangeAction) lipgloss.Style {
	switch action {
	case plan.ActionCreate:
		return t.create
	case plan.ActionUpdate:
		return t.update
	case plan.ActionDelete:
		return t.delete
	default:
		return t.noop
	}
}

// Styled renders the summary with lipgloss styling for interactive
// terminals. The layout mirrors the table format with color added.
func Styled(s *plan.Summary, detailed bool) string {
	t := newStyledTheme()

	var b strings.Builder
	b.WriteString(t.title.Render("Terraform Plan Summary"))
	b.WriteString("\n\n")

	b.WriteString(t.section.Render("Overview"))
	b.WriteString("\n")
	b.WriteString(styledRow(t.cell, "Total Resources", s.TotalResources))
	b.WriteString(styledRow(t.create, "To Create", s.ResourcesToCreate))
	b.WriteString(styledRow(t.update, "To Update", s.ResourcesToUpdate))
	b.WriteString(styledRow(t.delete, "To Delete", s.ResourcesToDelete))
	b.WriteString(styledRow(t.noop, "No Changes", s.ResourcesNoChange))
	b.WriteString("\n")

	if len(s.ResourceBreakdown) > 0 {
		b.WriteString(t.section.Render("Resource Breakdown"))
		b.WriteString("\n")

		typeWidth := len("Resource Type")
		for _, entry := range s.ResourceBreakdown {
			if len(entry.ResourceType) > typeWidth {
				typeWidth = len(entry.ResourceType)
			}
		}

		b.WriteString(t.header.Render(fmt.Sprintf("%-*s  %5s  %6s  %6s  %6s  %5s",
			typeWidth, "Resource Type", "Total", "Create", "Update", "Delete", "No-op")))
		b.WriteString("\n")
		for _, entry := range s.ResourceBreakdown {
			fmt.Fprintf(&b, "%-*s  %5d  %s  %s  %s  %s\n",
				typeWidth, entry.ResourceType,
				entry.Total,
				t.create.Render(fmt.Sprintf("%6d", entry.Create)),
				t.update.Render(fmt.Sprintf("%6d", entry.Update)),
				t.delete.Render(fmt.Sprintf("%6d", entry.Delete)),
				t.noop.Render(fmt.Sprintf("%5d", entry.NoOp)))
		}
		b.WriteString("\n")
	}

	b.WriteString(t.section.Render("Impact Analysis"))
	b.WriteString("\n")
	b.WriteString(styledRow(t.delete, "High Impact", s.ImpactAnalysis.High))
	b.WriteString(styledRow(t.update, "Medium Impact", s.ImpactAnalysis.Medium))
	b.WriteString(styledRow(t.create, "Low Impact", s.ImpactAnalysis.Low))

	if detailed {
		b.WriteString("\n")
		writeStyledDetails(&b, s, t)
	}

	return b.String()
}

func styledRow(style lipgloss.Style, label string, count int) string {
	return fmt.Sprintf("%-16s %s\n", label, style.Render(fmt.Sprint(count)))
}

// writeStyledDetails lists every change grouped by action, addresses
// colored by impact level.
func writeStyledDetails(b *strings.Builder, s *plan.Summary, t styledTheme) {
	groups := groupByAction(s)

	for _, action := range actionOrder {
		changes := groups[action]
		if len(changes) == 0 {
			continue
		}

		header := fmt.Sprintf("%s (%s)", strings.ToUpper(string(action)), pluralize(len(changes), "resource", "resources"))
		b.WriteString(t.action(action).Bold(true).Render(header))
		b.WriteString("\n")

		for _, c := range changes {
			fmt.Fprintf(b, "  %s  %s\n",
				t.impact(c.Impact).Render(c.Address),
				t.noop.Render(string(c.Impact)))
		}
		b.WriteString("\n")
	}
}
