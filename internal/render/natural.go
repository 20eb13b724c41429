package render

import (
	"fmt"
	"strings"

	"tfsum/internal/plan"
)

// Natural renders the summary as prose for people who want the plan
// narrated rather than tabulated.
func Natural(s *plan.Summary, detailed bool) string {
	var b strings.Builder

	b.WriteString("Terraform Plan Summary\n")
	b.WriteString(strings.Repeat("=", 50))
	b.WriteString("\n\n")

	b.WriteString(overviewNarrative(s))
	b.WriteString("\n\n")

	if len(s.ResourceBreakdown) > 0 {
		b.WriteString(breakdownNarrative(s))
		b.WriteString("\n\n")
	}

	b.WriteString(impactNarrative(s))
	b.WriteString("\n")

	if detailed {
		b.WriteString("\n")
		b.WriteString(detailedNarrative(s))
	}

	return b.String()
}

// overviewNarrative summarizes the top-level counts in a single sentence.
func overviewNarrative(s *plan.Summary) string {
	if s.TotalResources == 0 {
		return "No changes are planned. Your infrastructure is already in the desired state."
	}

	var clauses []string
	if s.ResourcesToCreate > 0 {
		clauses = append(clauses, pluralize(s.ResourcesToCreate, "new resource will be created", "new resources will be created"))
	}
	if s.ResourcesToUpdate > 0 {
		clauses = append(clauses, pluralize(s.ResourcesToUpdate, "existing resource will be modified", "existing resources will be modified"))
	}
	if s.ResourcesToDelete > 0 {
		clauses = append(clauses, pluralize(s.ResourcesToDelete, "resource will be destroyed", "resources will be destroyed"))
	}
	if s.ResourcesNoChange > 0 {
		clauses = append(clauses, pluralize(s.ResourcesNoChange, "resource will remain unchanged", "resources will remain unchanged"))
	}

	switch len(clauses) {
	case 0:
		return "No changes are planned. Your infrastructure is already in the desired state."
	case 1:
		return fmt.Sprintf("In total, %s.", clauses[0])
	case 2:
		return fmt.Sprintf("In total, %s and %s.", clauses[0], clauses[1])
	default:
		last := clauses[len(clauses)-1]
		return fmt.Sprintf("In total, %s, and %s.", strings.Join(clauses[:len(clauses)-1], ", "), last)
	}
}

// breakdownNarrative lists the per-type counts in prose.
func breakdownNarrative(s *plan.Summary) string {
	var b strings.Builder
	b.WriteString("Resource Changes by Type:")

	for _, entry := range s.ResourceBreakdown {
		var actions []string
		if entry.Create > 0 {
			actions = append(actions, pluralize(entry.Create, "creation", "creations"))
		}
		if entry.Update > 0 {
			actions = append(actions, pluralize(entry.Update, "update", "updates"))
		}
		if entry.Delete > 0 {
			actions = append(actions, pluralize(entry.Delete, "deletion", "deletions"))
		}
		if entry.NoOp > 0 {
			actions = append(actions, pluralize(entry.NoOp, "no-change", "no-changes"))
		}

		actionStr := "no changes"
		if len(actions) > 0 {
			actionStr = strings.Join(actions, ", ")
		}
		fmt.Fprintf(&b, "\n  - %s: %s (%s)",
			entry.ResourceType,
			pluralize(entry.Total, "resource", "resources"),
			actionStr)
	}

	return b.String()
}

// impactNarrative assesses the risk of the plan and recommends review steps
// when anything rates high. High beats medium beats low; the order only
// drives which recommendation is voiced, never any count.
func impactNarrative(s *plan.Summary) string {
	var b strings.Builder
	b.WriteString("Impact Assessment:")

	if s.ImpactAnalysis.High > 0 {
		fmt.Fprintf(&b, "\n  - High Impact: %s will be destroyed or replaced",
			pluralize(s.ImpactAnalysis.High, "resource", "resources"))
	}
	if s.ImpactAnalysis.Medium > 0 {
		fmt.Fprintf(&b, "\n  - Medium Impact: %s will be modified",
			pluralize(s.ImpactAnalysis.Medium, "resource", "resources"))
	}
	if s.ImpactAnalysis.Low > 0 {
		fmt.Fprintf(&b, "\n  - Low Impact: %s will be created",
			pluralize(s.ImpactAnalysis.Low, "new resource", "new resources"))
	}

	if s.ImpactAnalysis.High > 0 {
		b.WriteString("\n\nRecommendations:")
		if s.ImpactAnalysis.High == 1 {
			b.WriteString("\n  - Review the resource that will be destroyed to ensure no data loss")
		} else {
			fmt.Fprintf(&b, "\n  - Review the %d resources that will be destroyed to ensure no data loss", s.ImpactAnalysis.High)
		}
		b.WriteString("\n  - Consider backing up any important data before applying")
	}

	return b.String()
}

// detailedNarrative describes every change grouped by action.
func detailedNarrative(s *plan.Summary) string {
	groups := groupByAction(s)

	var b strings.Builder
	b.WriteString("Detailed Changes:\n")
	b.WriteString(strings.Repeat("=", 30))
	b.WriteString("\n")

	for _, action := range actionOrder {
		changes := groups[action]
		if len(changes) == 0 {
			continue
		}

		b.WriteString("\n")
		b.WriteString(actionHeader(action))
		for _, c := range changes {
			fmt.Fprintf(&b, "\n  - %s (%s)", c.Address, c.ResourceType)
			fmt.Fprintf(&b, "\n    %s", actionSentence(action, c.ResourceType))
		}
		b.WriteString("\n")
	}

	return b.String()
}

func actionHeader(action plan.ChangeAction) string {
	switch action {
	case plan.ActionCreate:
		return "Resources to be Created:"
	case plan.ActionUpdate:
		return "Resources to be Modified:"
	case plan.ActionDelete:
		return "Resources to be Destroyed:"
	default:
		return "Resources with No Changes:"
	}
}

func actionSentence(action plan.ChangeAction, resourceType string) string {
	switch action {
	case plan.ActionCreate:
		return fmt.Sprintf("This will create a new %s resource.", resourceType)
	case plan.ActionUpdate:
		return fmt.Sprintf("This will update the existing %s resource.", resourceType)
	case plan.ActionDelete:
		return fmt.Sprintf("This will permanently delete the %s resource.", resourceType)
	default:
		return fmt.Sprintf("This %s resource will remain unchanged.", resourceType)
	}
}
