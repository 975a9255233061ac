package services

import (
	"testing"
	"time"

	"zeroxp/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func app(status string, xp int64, appliedAt time.Time) models.Application {
	return models.Application{
		Status:      status,
		CandidateXP: xp,
		AppliedAt:   appliedAt,
	}
}

func TestRankApplications_PendingByXPThenAcceptedByRecency(t *testing.T) {
	t1 := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)
	t2 := t1.Add(24 * time.Hour)

	in := []models.Application{
		app(models.StatusPending, 100, t1),
		app(models.StatusPending, 900, t1),
		app(models.StatusAccepted, 50, t1),
		app(models.StatusAccepted, 999, t2),
	}

	out := RankApplications(in)
	require.Len(t, out, 4)

	// Pending by XP desc beats accepted entirely; within accepted, later
	// timestamp wins regardless of XP
	assert.Equal(t, int64(900), out[0].CandidateXP)
	assert.Equal(t, int64(100), out[1].CandidateXP)
	assert.Equal(t, int64(999), out[2].CandidateXP)
	assert.Equal(t, int64(50), out[3].CandidateXP)
}

func TestRankApplications_StatusOrder(t *testing.T) {
	now := time.Now()
	in := []models.Application{
		app(models.StatusAccepted, 0, now),
		app(models.StatusDeclined, 0, now),
		app(models.StatusReviewed, 0, now),
		app(models.StatusPending, 0, now),
	}

	out := RankApplications(in)
	assert.Equal(t, models.StatusPending, out[0].Status)
	assert.Equal(t, models.StatusReviewed, out[1].Status)
	assert.Equal(t, models.StatusDeclined, out[2].Status)
	assert.Equal(t, models.StatusAccepted, out[3].Status)
}

func TestRankApplications_StatusAliases(t *testing.T) {
	now := time.Now()
	in := []models.Application{
		app("hired", 0, now),
		app("rejected", 0, now),
		app("reviewing", 0, now),
		app(models.StatusPending, 0, now),
	}

	out := RankApplications(in)
	assert.Equal(t, models.StatusPending, out[0].Status)
	assert.Equal(t, "reviewing", out[1].Status)
	assert.Equal(t, "rejected", out[2].Status)
	assert.Equal(t, "hired", out[3].Status)
}

func TestRankApplications_UnknownStatusSortsLast(t *testing.T) {
	now := time.Now()
	in := []models.Application{
		app("limbo", 9999, now),
		app(models.StatusAccepted, 0, now),
		app(models.StatusPending, 1, now),
	}

	out := RankApplications(in)
	assert.Equal(t, models.StatusPending, out[0].Status)
	assert.Equal(t, models.StatusAccepted, out[1].Status)
	assert.Equal(t, "limbo", out[2].Status)
}

func TestRankApplications_XPOnlyOrdersPending(t *testing.T) {
	t1 := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Hour)

	// Both reviewed: higher XP but older must lose to newer
	in := []models.Application{
		app(models.StatusReviewed, 5000, t1),
		app(models.StatusReviewed, 10, t2),
	}

	out := RankApplications(in)
	assert.Equal(t, int64(10), out[0].CandidateXP)
	assert.Equal(t, int64(5000), out[1].CandidateXP)
}

func TestRankApplications_PendingTieFallsToRecency(t *testing.T) {
	t1 := time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Hour)

	in := []models.Application{
		app(models.StatusPending, 500, t1),
		app(models.StatusPending, 500, t2),
	}

	out := RankApplications(in)
	assert.True(t, out[0].AppliedAt.After(out[1].AppliedAt))
}

func TestRankApplications_Idempotent(t *testing.T) {
	t1 := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)
	in := []models.Application{
		app(models.StatusPending, 100, t1),
		app(models.StatusAccepted, 700, t1.Add(time.Minute)),
		app(models.StatusPending, 900, t1.Add(2*time.Minute)),
		app(models.StatusDeclined, 40, t1.Add(3*time.Minute)),
	}

	once := RankApplications(in)
	twice := RankApplications(once)
	assert.Equal(t, once, twice)
}

func TestRankApplications_EmptyInput(t *testing.T) {
	out := RankApplications(nil)
	assert.Empty(t, out)

	out = RankApplications([]models.Application{})
	assert.Empty(t, out)
}

func TestRankApplications_DoesNotMutateInput(t *testing.T) {
	t1 := time.Date(2024, 1, 10, 12, 0, 0, 0, time.UTC)
	in := []models.Application{
		app(models.StatusAccepted, 1, t1),
		app(models.StatusPending, 2, t1),
	}
	original := make([]models.Application, len(in))
	copy(original, in)

	_ = RankApplications(in)
	assert.Equal(t, original, in)
}

func TestRankApplications_MissingCandidateXPCountsAsZero(t *testing.T) {
	now := time.Now()
	withUser := app(models.StatusPending, 0, now)
	withUser.Candidate = &models.User{TotalXP: 800}

	orphan := app(models.StatusPending, -1, now) // deleted account snapshot

	out := RankApplications([]models.Application{orphan, withUser})
	require.Len(t, out, 2)
	assert.NotNil(t, out[0].Candidate)
	assert.Nil(t, out[1].Candidate)
}

func TestRankApplications_LiveCandidateXPWinsOverSnapshot(t *testing.T) {
	now := time.Now()
	a := app(models.StatusPending, 10, now)
	a.Candidate = &models.User{TotalXP: 1000}

	b := app(models.StatusPending, 500, now)

	out := RankApplications([]models.Application{b, a})
	assert.Equal(t, a.Candidate, out[0].Candidate)
}
