package plan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "tfsum/internal/errors"
)

func TestChangesByType(t *testing.T) {
	s := Analyze(sampleDocument())

	instances, err := ChangesByType(s, "aws_instance")
	require.NoError(t, err)
	require.Len(t, instances, 2)
	// Original order is preserved.
	assert.Equal(t, "aws_instance.web", instances[0].Address)
	assert.Equal(t, "aws_instance.old", instances[1].Address)

	groups, err := ChangesByType(s, "aws_security_group")
	require.NoError(t, err)
	assert.Len(t, groups, 1)

	// Exact match only; no prefix matching.
	none, err := ChangesByType(s, "aws")
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestChangesByAction(t *testing.T) {
	s := Analyze(sampleDocument())

	creates, err := ChangesByAction(s, ActionCreate)
	require.NoError(t, err)
	require.Len(t, creates, 1)
	assert.Equal(t, "aws_instance.web", creates[0].Address)

	deletes, err := ChangesByAction(s, ActionDelete)
	require.NoError(t, err)
	require.Len(t, deletes, 1)
	assert.Equal(t, "aws_instance.old", deletes[0].Address)
}

func TestChangesByImpact(t *testing.T) {
	s := Analyze(sampleDocument())

	high, err := ChangesByImpact(s, ImpactHigh)
	require.NoError(t, err)
	require.Len(t, high, 1)
	assert.Equal(t, ActionDelete, high[0].Action)

	medium, err := ChangesByImpact(s, ImpactMedium)
	require.NoError(t, err)
	assert.Len(t, medium, 1)

	low, err := ChangesByImpact(s, ImpactLow)
	require.NoError(t, err)
	assert.Len(t, low, 1)
}

// Querying before any plan has been analyzed fails loudly instead of
// returning an empty result.
func TestFilters_NoPlanAnalyzed(t *testing.T) {
	_, err := ChangesByType(nil, "aws_instance")
	assert.True(t, apperrors.IsErrNoPlanAnalyzed(err))

	_, err = ChangesByAction(nil, ActionCreate)
	assert.True(t, apperrors.IsErrNoPlanAnalyzed(err))

	_, err = ChangesByImpact(nil, ImpactHigh)
	assert.True(t, apperrors.IsErrNoPlanAnalyzed(err))
}
