// Package render formats plan summaries for display. The analysis engine in
// internal/plan knows nothing about presentation; every renderer here reads
// the Summary value through its exported fields only.
package render

import (
	"fmt"
	"strings"

	apperrors "tfsum/internal/errors"
	"tfsum/internal/plan"
)

// Format identifies an output format.
type Format string

// Supported output formats.
const (
	FormatText    Format = "text"
	FormatTable   Format = "table"
	FormatJSON    Format = "json"
	FormatNatural Format = "natural"
	FormatStyled  Format = "styled"
)

// Options control how a summary is rendered.
type Options struct {
	// Detailed adds per-resource listings grouped by action.
	Detailed bool

	// NoColor disables ANSI colors in the text format.
	NoColor bool
}

// ParseFormat resolves a format name, accepting a few aliases for the
// natural-language and styled formats.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(name) {
	case "text", "":
		return FormatText, nil
	case "table":
		return FormatTable, nil
	case "json":
		return FormatJSON, nil
	case "natural", "narrative", "human":
		return FormatNatural, nil
	case "styled", "rich":
		return FormatStyled, nil
	default:
		return "", apperrors.NewValidationError(
			"format",
			fmt.Sprintf("unknown output format %q (want text, table, json, natural or styled)", name),
			apperrors.ErrInvalidInput,
		)
	}
}

// Render formats the summary in the requested format.
func Render(s *plan.Summary, format Format, opts Options) (string, error) {
	switch format {
	case FormatText:
		return Text(s, opts), nil
	case FormatTable:
		return Table(s), nil
	case FormatJSON:
		return JSON(s)
	case FormatNatural:
		return Natural(s, opts.Detailed), nil
	case FormatStyled:
		return Styled(s, opts.Detailed), nil
	default:
		return "", apperrors.NewValidationError(
			"format",
			fmt.Sprintf("unknown output format %q", format),
			apperrors.ErrInvalidInput,
		)
	}
}

// actionOrder fixes the display order of grouped change listings.
var actionOrder = []plan.ChangeAction{
	plan.ActionCreate,
	plan.ActionUpdate,
	plan.ActionDelete,
	plan.ActionNoOp,
}

// groupByAction buckets changes by their canonical action, preserving
// input order inside each bucket.
func groupByAction(s *plan.Summary) map[plan.ChangeAction][]plan.Change {
	groups := make(map[plan.ChangeAction][]plan.Change, len(actionOrder))
	for _, c := range s.Changes {
		groups[c.Action] = append(groups[c.Action], c)
	}
	return groups
}

// pluralize returns "1 <singular>" or "<n> <plural>".
func pluralize(n int, singular, plural string) string {
	if n == 1 {
		return "1 " + singular
	}
	return fmt.Sprintf("%d %s", n, plural)
}

// breakdownActions describes the non-zero action counts of a breakdown
// entry, e.g. "1 create, 2 delete". Returns "no changes" when all are zero.
func breakdownActions(b plan.TypeBreakdown) string {
	var parts []string
	if b.Create > 0 {
		parts = append(parts, fmt.Sprintf("%d create", b.Create))
	}
	if b.Update > 0 {
		parts = append(parts, fmt.Sprintf("%d update", b.Update))
	}
	if b.Delete > 0 {
		parts = append(parts, fmt.Sprintf("%d delete", b.Delete))
	}
	if b.NoOp > 0 {
		parts = append(parts, fmt.Sprintf("%d no-op", b.NoOp))
	}
	if len(parts) == 0 {
		return "no changes"
	}
	return strings.Join(parts, ", ")
}
