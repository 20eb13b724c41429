package plan

import (
	"encoding/json"
	"fmt"
	"os"

	apperrors "tfsum/internal/errors"
)

// Document is the subset of `terraform show -json` output that the
// analyzer consumes.
type Document struct {
	FormatVersion    string         `json:"format_version"`
	TerraformVersion string         `json:"terraform_version"`
	ResourceChanges  []ChangeRecord `json:"resource_changes"`
}

// ChangeRecord is one entry of the resource_changes list.
type ChangeRecord struct {
	Address string     `json:"address"`
	Change  ChangeData `json:"change"`
}

// ChangeData carries the raw action tags and state snapshots for a record.
type ChangeData struct {
	Actions []string       `json:"actions"`
	Before  map[string]any `json:"before"`
	After   map[string]any `json:"after"`
	Replace []string       `json:"replace"`
}

// LoadFile reads and decodes a plan JSON file. A missing file wraps
// ErrPlanNotFound; undecodable content wraps ErrMalformedPlan. The two are
// kept distinct so callers can tell a bad path from a bad plan.
func LoadFile(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.NewParseError(path, "file does not exist", apperrors.ErrPlanNotFound)
		}
		return nil, apperrors.NewParseError(path, "failed to read file", err)
	}

	doc, err := LoadJSON(data)
	if err != nil {
		return nil, apperrors.NewParseError(path, "invalid plan JSON", err)
	}
	return doc, nil
}

// LoadJSON decodes plan JSON data. Invalid JSON wraps ErrMalformedPlan.
func LoadJSON(data []byte) (*Document, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrMalformedPlan, err)
	}
	return &doc, nil
}
