package render

import (
	"encoding/json"
	"fmt"

	"tfsum/internal/plan"
)

// jsonSummary is the machine-readable projection of a Summary. The
// breakdown is an array rather than an object so the first-seen type order
// survives serialization.
type jsonSummary struct {
	Overview          jsonOverview    `json:"overview"`
	ResourceBreakdown []jsonBreakdown `json:"resource_breakdown"`
	ImpactAnalysis    jsonImpact      `json:"impact_analysis"`
	Changes           []jsonChange    `json:"changes"`
}

type jsonOverview struct {
	TotalResources    int `json:"total_resources"`
	ResourcesToCreate int `json:"resources_to_create"`
	ResourcesToUpdate int `json:"resources_to_update"`
	ResourcesToDelete int `json:"resources_to_delete"`
	ResourcesNoChange int `json:"resources_no_change"`
}

type jsonBreakdown struct {
	ResourceType string `json:"resource_type"`
	Total        int    `json:"total"`
	Create       int    `json:"create"`
	Update       int    `json:"update"`
	Delete       int    `json:"delete"`
	NoOp         int    `json:"no-op"`
}

type jsonImpact struct {
	High   int `json:"high"`
	Medium int `json:"medium"`
	Low    int `json:"low"`
}

type jsonChange struct {
	Address      string `json:"address"`
	ResourceType string `json:"resource_type"`
	ResourceName string `json:"resource_name"`
	Action       string `json:"action"`
	ImpactLevel  string `json:"impact_level"`
}

// JSON renders the summary as indented JSON.
func JSON(s *plan.Summary) (string, error) {
	out := jsonSummary{
		Overview: jsonOverview{
			TotalResources:    s.TotalResources,
			ResourcesToCreate: s.ResourcesToCreate,
			ResourcesToUpdate: s.ResourcesToUpdate,
			ResourcesToDelete: s.ResourcesToDelete,
			ResourcesNoChange: s.ResourcesNoChange,
		},
		ResourceBreakdown: make([]jsonBreakdown, 0, len(s.ResourceBreakdown)),
		ImpactAnalysis: jsonImpact{
			High:   s.ImpactAnalysis.High,
			Medium: s.ImpactAnalysis.Medium,
			Low:    s.ImpactAnalysis.Low,
		},
		Changes: make([]jsonChange, 0, len(s.Changes)),
	}

	for _, entry := range s.ResourceBreakdown {
		out.ResourceBreakdown = append(out.ResourceBreakdown, jsonBreakdown{
			ResourceType: entry.ResourceType,
			Total:        entry.Total,
			Create:       entry.Create,
			Update:       entry.Update,
			Delete:       entry.Delete,
			NoOp:         entry.NoOp,
		})
	}

	for _, c := range s.Changes {
		out.Changes = append(out.Changes, jsonChange{
			Address:      c.Address,
			ResourceType: c.ResourceType,
			ResourceName: c.ResourceName,
			Action:       string(c.Action),
			ImpactLevel:  string(c.Impact),
		})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", fmt.Errorf("error encoding summary: %w", err)
	}
	return string(data), nil
}
