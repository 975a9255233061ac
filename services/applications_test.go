package services

import (
	"testing"

	"zeroxp/models"

	"github.com/stretchr/testify/assert"
)

func TestValidTransition_ForwardOnly(t *testing.T) {
	allowed := []struct{ from, to string }{
		{models.StatusPending, models.StatusReviewed},
		{models.StatusPending, models.StatusDeclined},
		{models.StatusPending, models.StatusAccepted},
		{models.StatusReviewed, models.StatusDeclined},
		{models.StatusReviewed, models.StatusAccepted},
	}
	for _, tc := range allowed {
		assert.True(t, validTransition(tc.from, tc.to), "%s → %s should be allowed", tc.from, tc.to)
	}

	denied := []struct{ from, to string }{
		{models.StatusReviewed, models.StatusPending},
		{models.StatusDeclined, models.StatusPending},
		{models.StatusDeclined, models.StatusReviewed},
		{models.StatusAccepted, models.StatusPending},
		{models.StatusAccepted, models.StatusDeclined},
		{models.StatusDeclined, models.StatusAccepted},
		{models.StatusAccepted, models.StatusAccepted},
		{models.StatusPending, models.StatusPending},
	}
	for _, tc := range denied {
		assert.False(t, validTransition(tc.from, tc.to), "%s → %s should be rejected", tc.from, tc.to)
	}
}

func TestValidTransition_UnknownStatusRejected(t *testing.T) {
	assert.False(t, validTransition(models.StatusPending, "limbo"))
	assert.False(t, validTransition("limbo", models.StatusAccepted))
}
