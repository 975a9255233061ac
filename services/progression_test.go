package services

import (
	"testing"

	"zeroxp/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelOf_Boundaries(t *testing.T) {
	cases := []struct {
		xp   int64
		tier int
	}{
		{0, 1},
		{399, 1},
		{400, 2},
		{999, 2},
		{1000, 3},
		{1999, 3},
		{2000, 4},
		{3499, 4},
		{3500, 5},
		{10000, 5},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.tier, LevelOf(tc.xp).Tier, "xp=%d", tc.xp)
	}
}

func TestLevelOf_NegativeXPClampsToZero(t *testing.T) {
	assert.Equal(t, 1, LevelOf(-500).Tier)
	assert.Equal(t, LevelOf(0), LevelOf(-1))
}

func TestLevelOf_Monotonic(t *testing.T) {
	prev := 0
	for xp := int64(0); xp <= 5000; xp += 7 {
		tier := LevelOf(xp).Tier
		require.GreaterOrEqual(t, tier, prev, "tier regressed at xp=%d", xp)
		prev = tier
	}
}

func TestLevelOf_TierNames(t *testing.T) {
	assert.Equal(t, "Fresh Start", LevelOf(0).Name)
	assert.Equal(t, "Rising Pro", LevelOf(400).Name)
	assert.Equal(t, "Career Champion", LevelOf(1500).Name)
	assert.Equal(t, "Elite Professional", LevelOf(2500).Name)
	assert.Equal(t, "Legendary Hunter", LevelOf(9999).Name)
}

func TestProgress_WithinBounds(t *testing.T) {
	for xp := int64(0); xp <= 6000; xp += 13 {
		p := Progress(xp)
		assert.GreaterOrEqual(t, p.Percent, 0.0, "xp=%d", xp)
		assert.LessOrEqual(t, p.Percent, 100.0, "xp=%d", xp)
		assert.GreaterOrEqual(t, p.XPToNext, int64(0), "xp=%d", xp)
	}
}

func TestProgress_MaxTierPinsTo100(t *testing.T) {
	p := Progress(3500)
	assert.Equal(t, 100.0, p.Percent)
	assert.Equal(t, int64(0), p.XPToNext)
}

func TestProgress_MidBand(t *testing.T) {
	// Tier 2 spans 400..1000; 700 sits exactly halfway
	p := Progress(700)
	assert.InDelta(t, 50.0, p.Percent, 0.001)
	assert.Equal(t, int64(300), p.XPToNext)
}

func TestProgress_TierStart(t *testing.T) {
	p := Progress(400)
	assert.Equal(t, 0.0, p.Percent)
	assert.Equal(t, int64(600), p.XPToNext)
}

func TestClassifyPriority_BoostTracksTier(t *testing.T) {
	prevBoost := 0
	for _, xp := range []int64{0, 400, 1000, 2000, 3500} {
		desc := ClassifyPriority(xp)
		tier := LevelOf(xp).Tier
		assert.Equal(t, tier, desc.Boost)
		require.Greater(t, desc.Boost, prevBoost, "boost must strictly increase with tier")
		prevBoost = desc.Boost
	}
}

func TestClassifyPriority_Names(t *testing.T) {
	assert.Equal(t, "standard", ClassifyPriority(0).Priority)
	assert.Equal(t, "pro", ClassifyPriority(400).Priority)
	assert.Equal(t, "champion", ClassifyPriority(1000).Priority)
	assert.Equal(t, "elite", ClassifyPriority(2000).Priority)
	assert.Equal(t, "legendary", ClassifyPriority(3500).Priority)
}

func TestApplyXPDelta_LevelUpAtBoundary(t *testing.T) {
	res := ApplyXPDelta(399, 1)
	assert.True(t, res.LeveledUp)
	assert.Equal(t, int64(400), res.NewXP)
	assert.Equal(t, 2, res.NewTier.Tier)
}

func TestApplyXPDelta_NoLevelUpOnZeroDelta(t *testing.T) {
	res := ApplyXPDelta(400, 0)
	assert.False(t, res.LeveledUp)
	assert.Equal(t, int64(400), res.NewXP)
	assert.Equal(t, 2, res.NewTier.Tier)
}

func TestApplyXPDelta_NegativeDeltaIgnored(t *testing.T) {
	// No XP-spending path exists; a negative delta must not decrement
	res := ApplyXPDelta(500, -100)
	assert.Equal(t, int64(500), res.NewXP)
	assert.False(t, res.LeveledUp)
}

func TestApplyXPDelta_NegativeCurrentNormalized(t *testing.T) {
	res := ApplyXPDelta(-50, 400)
	assert.Equal(t, int64(400), res.NewXP)
	assert.True(t, res.LeveledUp)
}

func TestRewardFor(t *testing.T) {
	assert.Equal(t, DefaultXPRewards.ApplyJob, RewardFor("apply_job"))
	assert.Equal(t, DefaultXPRewards.UploadVideoCV, RewardFor("upload_video_cv"))
	assert.Equal(t, DefaultXPRewards.CompleteProfile, RewardFor("complete_profile"))
	assert.Equal(t, int64(0), RewardFor("unknown_action"))
}

func TestLevelTable_StrictlyIncreasingBounds(t *testing.T) {
	for i := 1; i < len(models.LevelTable); i++ {
		require.Greater(t, models.LevelTable[i].MinXP, models.LevelTable[i-1].MinXP)
		require.Equal(t, i+1, models.LevelTable[i].Tier)
	}
}
