package plan

import apperrors "tfsum/internal/errors"

// The filter functions are pure: they take the summary they operate on
// instead of consulting parser-instance state, which keeps concurrent use
// trivially safe. Passing a nil summary signals a query made before any
// plan was analyzed and fails with ErrNoPlanAnalyzed rather than returning
// a silent empty result.

// ChangesByType returns the changes whose resource type matches exactly,
// preserving their original order.
func ChangesByType(s *Summary, resourceType string) ([]Change, error) {
	if s == nil {
		return nil, apperrors.ErrNoPlanAnalyzed
	}
	var out []Change
	for _, c := range s.Changes {
		if c.ResourceType == resourceType {
			out = append(out, c)
		}
	}
	return out, nil
}

// ChangesByAction returns the changes with the given canonical action,
// preserving their original order.
func ChangesByAction(s *Summary, action ChangeAction) ([]Change, error) {
	if s == nil {
		return nil, apperrors.ErrNoPlanAnalyzed
	}
	var out []Change
	for _, c := range s.Changes {
		if c.Action == action {
			out = append(out, c)
		}
	}
	return out, nil
}

// ChangesByImpact returns the changes with the given impact level,
// preserving their original order.
func ChangesByImpact(s *Summary, impact ImpactLevel) ([]Change, error) {
	if s == nil {
		return nil, apperrors.ErrNoPlanAnalyzed
	}
	var out []Change
	for _, c := range s.Changes {
		if c.Impact == impact {
			out = append(out, c)
		}
	}
	return out, nil
}
