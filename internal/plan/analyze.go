package plan

import "strings"

// Analyze normalizes every record of the document and reduces the result
// into a Summary. It never fails: malformed optional fields fall back to
// neutral defaults, and a nil or empty document yields an all-zero summary.
// Each call returns a fresh summary with no shared state, so a single
// call site can be reused concurrently.
func Analyze(doc *Document) *Summary {
	var changes []Change
	if doc != nil {
		changes = make([]Change, 0, len(doc.ResourceChanges))
		for _, rec := range doc.ResourceChanges {
			changes = append(changes, normalize(rec))
		}
	}
	return summarize(changes)
}

// normalize converts one raw change record into a Change. Action and impact
// are resolved together here so the replacement check can never drift from
// the action priority list.
func normalize(rec ChangeRecord) Change {
	resourceType, resourceName := splitAddress(rec.Address)
	action := resolveAction(rec.Change.Actions)

	changed := rec.Change.After
	if changed == nil {
		changed = map[string]any{}
	}

	return Change{
		Address:      rec.Address,
		ResourceType: resourceType,
		ResourceName: resourceName,
		Action:       action,
		Impact:       classifyImpact(action, rec.Change.Actions),
		Before:       rec.Change.Before,
		After:        rec.Change.After,
		Changed:      changed,
		ReplacePaths: rec.Change.Replace,
	}
}

// resolveAction picks the canonical action from the raw tag list by fixed
// priority: delete > create > update > read. The order tags appear in the
// input is irrelevant, so a replacement ["create","delete"] resolves to
// delete. An empty list or unrecognized tags resolve to no-op.
func resolveAction(actions []string) ChangeAction {
	switch {
	case containsTag(actions, "delete"):
		return ActionDelete
	case containsTag(actions, "create"):
		return ActionCreate
	case containsTag(actions, "update"):
		return ActionUpdate
	case containsTag(actions, "read"):
		return ActionRead
	default:
		return ActionNoOp
	}
}

// splitAddress decomposes a resource address on its first dot. The name may
// itself contain dots (indexed resources). An address without a dot is a
// degenerate pass-through: both halves equal the full address.
func splitAddress(address string) (resourceType, resourceName string) {
	if t, name, ok := strings.Cut(address, "."); ok {
		return t, name
	}
	return address, address
}

// classifyImpact derives the impact level from the canonical action. An
// update whose raw tags include "replace" is treated as a replacement and
// rated high along with deletions; creations and everything else are low.
func classifyImpact(action ChangeAction, rawActions []string) ImpactLevel {
	switch action {
	case ActionDelete:
		return ImpactHigh
	case ActionUpdate:
		if containsTag(rawActions, "replace") {
			return ImpactHigh
		}
		return ImpactMedium
	default:
		return ImpactLow
	}
}

// summarize reduces the ordered change sequence into a Summary in a single
// pass. All counts are order-independent; only the breakdown's type order
// and the Changes slice follow the input sequence.
func summarize(changes []Change) *Summary {
	s := &Summary{
		TotalResources: len(changes),
		Changes:        changes,
	}

	index := make(map[string]int, len(changes))

	for _, c := range changes {
		switch c.Action {
		case ActionCreate:
			s.ResourcesToCreate++
		case ActionUpdate:
			s.ResourcesToUpdate++
		case ActionDelete:
			s.ResourcesToDelete++
		case ActionNoOp:
			s.ResourcesNoChange++
		}

		switch c.Impact {
		case ImpactHigh:
			s.ImpactAnalysis.High++
		case ImpactMedium:
			s.ImpactAnalysis.Medium++
		case ImpactLow:
			s.ImpactAnalysis.Low++
		}

		i, seen := index[c.ResourceType]
		if !seen {
			i = len(s.ResourceBreakdown)
			index[c.ResourceType] = i
			s.ResourceBreakdown = append(s.ResourceBreakdown, TypeBreakdown{ResourceType: c.ResourceType})
		}

		b := &s.ResourceBreakdown[i]
		b.Total++
		// Read changes count toward Total only; they have no action bucket.
		switch c.Action {
		case ActionCreate:
			b.Create++
		case ActionUpdate:
			b.Update++
		case ActionDelete:
			b.Delete++
		case ActionNoOp:
			b.NoOp++
		}
	}

	return s
}

func containsTag(tags []string, want string) bool {
	for _, t := range tags {
		if t == want {
			return true
		}
	}
	return false
}
