package services

import (
	"fmt"
	"log"

	"zeroxp/models"

	"gorm.io/gorm"
)

// XPRewards define XP granted per action (tunable via config/env later)
type XPRewards struct {
	ApplyJob        int64 `default:"50"`
	UploadVideoCV   int64 `default:"50"`
	CompleteProfile int64 `default:"100"`
}

var DefaultXPRewards = XPRewards{
	ApplyJob:        50,
	UploadVideoCV:   50,
	CompleteProfile: 100,
}

// RewardFor resolves an action name to its XP delta. Unknown actions award
// nothing rather than failing the calling flow.
func RewardFor(action string) int64 {
	switch action {
	case "apply_job":
		return DefaultXPRewards.ApplyJob
	case "upload_video_cv":
		return DefaultXPRewards.UploadVideoCV
	case "complete_profile":
		return DefaultXPRewards.CompleteProfile
	default:
		return 0
	}
}

// LevelOf maps XP to its tier: the highest table entry whose lower bound is
// <= xp. Boundary values belong to the higher tier. Negative XP (malformed
// input, e.g. a deleted account snapshot) is clamped to 0.
func LevelOf(xp int64) models.LevelTier {
	if xp < 0 {
		xp = 0
	}
	tier := models.LevelTable[0]
	for _, t := range models.LevelTable {
		if xp >= t.MinXP {
			tier = t
		}
	}
	return tier
}

// LevelProgress describes how far into the current tier an XP value sits.
type LevelProgress struct {
	Percent  float64 `json:"percent"`
	XPToNext int64   `json:"xp_to_next"` // 0 at max tier
}

// Progress computes percent-to-next-level and remaining XP. The max tier pins
// to 100%. LevelTable bounds are strictly increasing by construction; a zero
// divisor from a malformed table falls back to 100% instead of dividing.
func Progress(xp int64) LevelProgress {
	if xp < 0 {
		xp = 0
	}
	tier := LevelOf(xp)
	if tier.Tier >= len(models.LevelTable) {
		return LevelProgress{Percent: 100, XPToNext: 0}
	}

	lo := tier.MinXP
	hi := models.LevelTable[tier.Tier].MinXP
	if hi <= lo {
		return LevelProgress{Percent: 100, XPToNext: 0}
	}

	percent := float64(xp-lo) / float64(hi-lo) * 100
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	return LevelProgress{Percent: percent, XPToNext: hi - xp}
}

// ClassifyPriority maps XP to the employer-facing priority descriptor of the
// user's tier.
func ClassifyPriority(xp int64) models.PriorityDescriptor {
	return models.PriorityTable[LevelOf(xp).Tier-1]
}

// XPResult is the outcome of applying an XP delta.
type XPResult struct {
	NewXP     int64            `json:"new_xp"`
	NewTier   models.LevelTier `json:"new_tier"`
	LeveledUp bool             `json:"leveled_up"`
}

// ApplyXPDelta adds delta to current XP and re-derives the tier. Negative
// deltas are ignored: no flow spends XP.
func ApplyXPDelta(currentXP, delta int64) XPResult {
	if currentXP < 0 {
		currentXP = 0
	}
	if delta < 0 {
		delta = 0
	}
	newXP := currentXP + delta
	newTier := LevelOf(newXP)
	return XPResult{
		NewXP:     newXP,
		NewTier:   newTier,
		LeveledUp: newTier.Tier > LevelOf(currentXP).Tier,
	}
}

type ProgressionService struct {
	DB *gorm.DB
}

func NewProgressionService(db *gorm.DB) *ProgressionService {
	return &ProgressionService{DB: db}
}

// AwardXP atomically applies the action's XP reward to a user and persists
// the re-derived level. Returns the updated user.
func (s *ProgressionService) AwardXP(userID, action string) (*models.User, error) {
	var updated *models.User
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.Where("id = ?", userID).First(&user).Error; err != nil {
			return fmt.Errorf("user not found for XP award: %s", userID)
		}

		res := ApplyXPDelta(user.TotalXP, RewardFor(action))
		user.TotalXP = res.NewXP
		user.XPLevel = res.NewTier.Tier
		if err := tx.Save(&user).Error; err != nil {
			return err
		}

		if res.LeveledUp {
			log.Printf("🎮 Level up: %s → Lvl %d (%s) after %s", user.Email, res.NewTier.Tier, res.NewTier.Name, action)
		}

		updated = &models.User{}
		*updated = user
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
