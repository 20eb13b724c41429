package render

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "tfsum/internal/errors"
	"tfsum/internal/plan"
)

func sampleSummary() *plan.Summary {
	return plan.Analyze(&plan.Document{
		ResourceChanges: []plan.ChangeRecord{
			{
				Address: "aws_instance.web",
				Change: plan.ChangeData{
					Actions: []string{"create"},
					After:   map[string]any{"instance_type": "t3.micro"},
				},
			},
			{
				Address: "aws_security_group.web_sg",
				Change: plan.ChangeData{
					Actions: []string{"update"},
					Before:  map[string]any{"name": "old-sg"},
					After:   map[string]any{"name": "web-sg"},
				},
			},
			{
				Address: "aws_instance.old",
				Change: plan.ChangeData{
					Actions: []string{"delete"},
					Before:  map[string]any{"instance_type": "t2.micro"},
				},
			},
		},
	})
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name string
		want Format
	}{
		{"text", FormatText},
		{"", FormatText},
		{"TABLE", FormatTable},
		{"json", FormatJSON},
		{"natural", FormatNatural},
		{"narrative", FormatNatural},
		{"human", FormatNatural},
		{"styled", FormatStyled},
		{"rich", FormatStyled},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.name)
		require.NoError(t, err, tt.name)
		assert.Equal(t, tt.want, got)
	}
}

func TestParseFormat_Unknown(t *testing.T) {
	_, err := ParseFormat("xml")
	require.Error(t, err)
	assert.True(t, apperrors.IsValidationError(err))
}

func TestText(t *testing.T) {
	out := Text(sampleSummary(), Options{NoColor: true})

	assert.Contains(t, out, "Terraform Plan Summary")
	assert.Contains(t, out, "Total Resources: 3")
	assert.Contains(t, out, "To Create: 1")
	assert.Contains(t, out, "To Update: 1")
	assert.Contains(t, out, "To Delete: 1")
	assert.Contains(t, out, "No Changes: 0")
	assert.Contains(t, out, "aws_instance: 2 resources (1 create, 1 delete)")
	assert.Contains(t, out, "aws_security_group: 1 resource (1 update)")
	assert.Contains(t, out, "High Impact: 1 resources")
	// Addresses only appear in the detailed view.
	assert.NotContains(t, out, "aws_instance.web")
}

func TestText_Detailed(t *testing.T) {
	out := Text(sampleSummary(), Options{Detailed: true, NoColor: true})

	assert.Contains(t, out, "Detailed Resource Changes:")
	assert.Contains(t, out, "CREATE (1 resource):")
	assert.Contains(t, out, "UPDATE (1 resource):")
	assert.Contains(t, out, "DELETE (1 resource):")
	assert.Contains(t, out, "aws_instance.web")
	assert.Contains(t, out, "aws_security_group.web_sg")
	assert.Contains(t, out, "aws_instance.old")
	assert.NotContains(t, out, "NO-OP")
}

func TestTable(t *testing.T) {
	out := Table(sampleSummary())

	assert.Contains(t, out, "| Metric")
	assert.Contains(t, out, "| Total Resources")
	assert.Contains(t, out, "| Resource Type")
	assert.Contains(t, out, "| aws_instance")
	assert.Contains(t, out, "| Impact Level")
	assert.Contains(t, out, "+=")
}

func TestTable_Empty(t *testing.T) {
	out := Table(plan.Analyze(nil))
	assert.Contains(t, out, "No resource changes found.")
}

func TestJSON(t *testing.T) {
	out, err := JSON(sampleSummary())
	require.NoError(t, err)

	var decoded struct {
		Overview struct {
			TotalResources    int `json:"total_resources"`
			ResourcesToCreate int `json:"resources_to_create"`
			ResourcesToDelete int `json:"resources_to_delete"`
		} `json:"overview"`
		ResourceBreakdown []struct {
			ResourceType string `json:"resource_type"`
			Total        int    `json:"total"`
		} `json:"resource_breakdown"`
		ImpactAnalysis struct {
			High int `json:"high"`
			Low  int `json:"low"`
		} `json:"impact_analysis"`
		Changes []struct {
			Address     string `json:"address"`
			Action      string `json:"action"`
			ImpactLevel string `json:"impact_level"`
		} `json:"changes"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))

	assert.Equal(t, 3, decoded.Overview.TotalResources)
	assert.Equal(t, 1, decoded.Overview.ResourcesToCreate)
	assert.Equal(t, 1, decoded.Overview.ResourcesToDelete)

	// First-seen order survives the array encoding.
	require.Len(t, decoded.ResourceBreakdown, 2)
	assert.Equal(t, "aws_instance", decoded.ResourceBreakdown[0].ResourceType)
	assert.Equal(t, 2, decoded.ResourceBreakdown[0].Total)

	assert.Equal(t, 1, decoded.ImpactAnalysis.High)
	assert.Equal(t, 1, decoded.ImpactAnalysis.Low)

	require.Len(t, decoded.Changes, 3)
	assert.Equal(t, "aws_instance.web", decoded.Changes[0].Address)
	assert.Equal(t, "create", decoded.Changes[0].Action)
	assert.Equal(t, "low", decoded.Changes[0].ImpactLevel)
}

func TestNatural(t *testing.T) {
	out := Natural(sampleSummary(), false)

	assert.Contains(t, out, "In total, 1 new resource will be created, 1 existing resource will be modified, and 1 resource will be destroyed.")
	assert.Contains(t, out, "aws_instance: 2 resources (1 creation, 1 deletion)")
	assert.Contains(t, out, "High Impact: 1 resource will be destroyed or replaced")
	assert.Contains(t, out, "Recommendations:")
	assert.Contains(t, out, "Review the resource that will be destroyed to ensure no data loss")
}

func TestNatural_Detailed(t *testing.T) {
	out := Natural(sampleSummary(), true)

	assert.Contains(t, out, "Detailed Changes:")
	assert.Contains(t, out, "Resources to be Created:")
	assert.Contains(t, out, "This will create a new aws_instance resource.")
	assert.Contains(t, out, "Resources to be Destroyed:")
	assert.Contains(t, out, "This will permanently delete the aws_instance resource.")
}

func TestNatural_Empty(t *testing.T) {
	out := Natural(plan.Analyze(nil), false)

	assert.Contains(t, out, "No changes are planned. Your infrastructure is already in the desired state.")
	assert.NotContains(t, out, "Recommendations:")
}

func TestNatural_TwoClauses(t *testing.T) {
	s := plan.Analyze(&plan.Document{
		ResourceChanges: []plan.ChangeRecord{
			{Address: "aws_instance.a", Change: plan.ChangeData{Actions: []string{"create"}}},
			{Address: "aws_instance.b", Change: plan.ChangeData{Actions: []string{"create"}}},
			{Address: "aws_instance.c", Change: plan.ChangeData{Actions: []string{"delete"}}},
		},
	})

	out := Natural(s, false)
	assert.Contains(t, out, "In total, 2 new resources will be created and 1 resource will be destroyed.")
}

func TestStyled(t *testing.T) {
	out := Styled(sampleSummary(), true)

	assert.Contains(t, out, "Terraform Plan Summary")
	assert.Contains(t, out, "Resource Breakdown")
	assert.Contains(t, out, "aws_instance")
	assert.Contains(t, out, "aws_instance.web")
}

func TestRender_Dispatch(t *testing.T) {
	s := sampleSummary()

	for _, format := range []Format{FormatText, FormatTable, FormatJSON, FormatNatural, FormatStyled} {
		out, err := Render(s, format, Options{NoColor: true})
		require.NoError(t, err, string(format))
		assert.NotEmpty(t, out)
	}
}
