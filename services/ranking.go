package services

import (
	"sort"

	"zeroxp/models"
)

// statusRank orders applications for employer review. Pending applications
// come first, then review-stage, declined, accepted. Anything unrecognized
// sorts last instead of failing the whole listing.
var statusRank = map[string]int{
	models.StatusPending:  0,
	models.StatusReviewed: 1,
	"reviewing":           1,
	"interview":           1,
	models.StatusDeclined: 2,
	"rejected":            2,
	models.StatusAccepted: 3,
	"hired":               3,
}

const unknownStatusRank = 4

func rankOfStatus(status string) int {
	if r, ok := statusRank[status]; ok {
		return r
	}
	return unknownStatusRank
}

// RankApplications orders a snapshot of applications for employer display:
//
//  1. status rank ascending (pending first)
//  2. within pending only: candidate XP descending; once an employer acts,
//     XP no longer affects order
//  3. otherwise: applied timestamp descending (most recent first)
//
// The sort is stable and does not mutate the input slice. Missing candidate
// XP (deleted account) counts as 0.
func RankApplications(apps []models.Application) []models.Application {
	ranked := make([]models.Application, len(apps))
	copy(ranked, apps)

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]

		ra, rb := rankOfStatus(a.Status), rankOfStatus(b.Status)
		if ra != rb {
			return ra < rb
		}

		if a.Status == models.StatusPending && b.Status == models.StatusPending {
			if xpOf(a) != xpOf(b) {
				return xpOf(a) > xpOf(b)
			}
		}

		return a.AppliedAt.After(b.AppliedAt)
	})

	return ranked
}

func xpOf(app models.Application) int64 {
	xp := app.CandidateXP
	if app.Candidate != nil {
		xp = app.Candidate.TotalXP
	}
	if xp < 0 {
		xp = 0
	}
	return xp
}
