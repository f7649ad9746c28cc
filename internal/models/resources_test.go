package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestContentStatusTransitions(t *testing.T) {
	assert.ElementsMatch(t, []ContentStatus{ContentApproved, ContentRejected}, ContentPending.AllowedTransitions())
	assert.Equal(t, []ContentStatus{ContentPublished}, ContentApproved.AllowedTransitions())
	assert.Empty(t, ContentRejected.AllowedTransitions())
	assert.Empty(t, ContentPublished.AllowedTransitions())
}

func TestContentStatusCanTransitionTo(t *testing.T) {
	assert.True(t, ContentPending.CanTransitionTo(ContentApproved))
	assert.True(t, ContentPending.CanTransitionTo(ContentRejected))
	assert.True(t, ContentApproved.CanTransitionTo(ContentPublished))

	assert.False(t, ContentPending.CanTransitionTo(ContentPublished))
	assert.False(t, ContentApproved.CanTransitionTo(ContentPending))
	assert.False(t, ContentRejected.CanTransitionTo(ContentApproved))
	assert.False(t, ContentPublished.CanTransitionTo(ContentPending))
	assert.False(t, ContentStatus("bogus").CanTransitionTo(ContentApproved))
}
