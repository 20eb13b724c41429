package plan

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "tfsum/internal/errors"
)

func writePlanFile(t *testing.T, doc *Document) string {
	t.Helper()

	data, err := json.Marshal(doc)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "plan.json")
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func TestLoadFile(t *testing.T) {
	path := writePlanFile(t, sampleDocument())

	doc, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, doc.ResourceChanges, 3)
	assert.Equal(t, "aws_instance.web", doc.ResourceChanges[0].Address)
}

func TestLoadFile_NotFound(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nonexistent.json"))
	require.Error(t, err)
	assert.True(t, apperrors.IsErrPlanNotFound(err))
	// A missing file must be distinguishable from a malformed one.
	assert.False(t, apperrors.IsErrMalformedPlan(err))
	assert.True(t, apperrors.IsParseError(err))
}

func TestLoadFile_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plan.json")
	require.NoError(t, os.WriteFile(path, []byte("not valid json"), 0644))

	_, err := LoadFile(path)
	require.Error(t, err)
	assert.True(t, apperrors.IsErrMalformedPlan(err))
	assert.False(t, apperrors.IsErrPlanNotFound(err))
}

func TestLoadJSON(t *testing.T) {
	doc, err := LoadJSON([]byte(`{
		"resource_changes": [
			{"address": "aws_instance.web", "change": {"actions": ["create"], "before": null, "after": {"instance_type": "t3.micro"}}}
		]
	}`))
	require.NoError(t, err)
	require.Len(t, doc.ResourceChanges, 1)

	rec := doc.ResourceChanges[0]
	assert.Equal(t, []string{"create"}, rec.Change.Actions)
	assert.Nil(t, rec.Change.Before)
	assert.Equal(t, map[string]any{"instance_type": "t3.micro"}, rec.Change.After)
}

func TestLoadJSON_Invalid(t *testing.T) {
	_, err := LoadJSON([]byte("invalid json"))
	require.Error(t, err)
	assert.True(t, apperrors.IsErrMalformedPlan(err))
}

// Records missing optional fields load and analyze without error.
func TestLoadJSON_SparseRecord(t *testing.T) {
	doc, err := LoadJSON([]byte(`{"resource_changes": [{"change": {}}]}`))
	require.NoError(t, err)

	s := Analyze(doc)
	assert.Equal(t, 1, s.TotalResources)
	assert.Equal(t, 1, s.ResourcesNoChange)
	assert.Equal(t, "", s.Changes[0].Address)
}
