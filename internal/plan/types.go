// Package plan contains the analysis engine for Terraform plan JSON output.
// It turns the raw resource_changes list into a normalized change model and
// an aggregate summary that the render and cli packages consume read-only.
package plan

// ChangeAction is the canonical action resolved for a resource change.
type ChangeAction string

// Possible change actions.
const (
	ActionCreate ChangeAction = "create"
	ActionUpdate ChangeAction = "update"
	ActionDelete ChangeAction = "delete"
	ActionNoOp   ChangeAction = "no-op"
	ActionRead   ChangeAction = "read"
)

// ImpactLevel is the coarse risk classification of a change.
type ImpactLevel string

// Possible impact levels, ordered high > medium > low by severity.
const (
	ImpactLow    ImpactLevel = "low"
	ImpactMedium ImpactLevel = "medium"
	ImpactHigh   ImpactLevel = "high"
)

// Change is one normalized resource change. All fields are derived once
// during analysis and never mutated afterward.
type Change struct {
	// Address is the full resource address, e.g. "aws_instance.web".
	Address string

	// ResourceType and ResourceName come from splitting Address on the
	// first dot. An address without a dot leaves both equal to Address.
	ResourceType string
	ResourceName string

	// Action is the single canonical action resolved from the raw action
	// list by fixed priority.
	Action ChangeAction

	// Impact is derived from Action and the raw action list.
	Impact ImpactLevel

	// Before and After are the raw state snapshots, nil when absent
	// (Before is nil for creations, After for deletions).
	Before map[string]any
	After  map[string]any

	// Changed is After, or an empty non-nil map when After is absent.
	Changed map[string]any

	// ReplacePaths lists the fields that forced a replacement, when the
	// plan reports them.
	ReplacePaths []string
}

// TypeBreakdown holds per-resource-type action counts. Total counts every
// change of the type; the action buckets cover create/update/delete/no-op
// only, so a read change increments Total without touching any bucket.
type TypeBreakdown struct {
	ResourceType string
	Total        int
	Create       int
	Update       int
	Delete       int
	NoOp         int
}

// ImpactCounts is the histogram of changes per impact level.
type ImpactCounts struct {
	High   int
	Medium int
	Low    int
}

// Summary is the immutable aggregate over an ordered sequence of changes.
type Summary struct {
	TotalResources    int
	ResourcesToCreate int
	ResourcesToUpdate int
	ResourcesToDelete int
	ResourcesNoChange int

	// ResourceBreakdown is ordered by first occurrence of each resource
	// type in the input sequence.
	ResourceBreakdown []TypeBreakdown

	ImpactAnalysis ImpactCounts

	// Changes preserves the input order verbatim.
	Changes []Change
}

// BreakdownFor returns the breakdown entry for the given resource type.
func (s *Summary) BreakdownFor(resourceType string) (TypeBreakdown, bool) {
	for _, b := range s.ResourceBreakdown {
		if b.ResourceType == resourceType {
			return b, true
		}
	}
	return TypeBreakdown{}, false
}
