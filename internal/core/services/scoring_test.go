package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/scoutlab/scholarscout-cli/internal/core/domain"
)

func TestActivityScore(t *testing.T) {
	t.Run("empty profile scores zero", func(t *testing.T) {
		assert.Equal(t, 0, ActivityScore(ActivityMetrics{}))
	})

	t.Run("saturated profile scores 100", func(t *testing.T) {
		m := ActivityMetrics{
			Followers:    1000,
			TotalStars:   5000,
			PublicRepos:  50,
			RecentEvents: 1000,
			PushEvents:   500,
			HasBio:       true,
		}
		// Every term saturates its cap (20+25+15+20+10) plus the bio
		// bonus, clamped at 100.
		assert.Equal(t, 100, ActivityScore(m))
	})

	t.Run("partial terms sum and floor", func(t *testing.T) {
		m := ActivityMetrics{
			Followers:   55,  // 5.5
			TotalStars:  100, // 2
			PublicRepos: 10,  // 2
			HasBio:      true,
		}
		assert.Equal(t, 19, ActivityScore(m))
	})

	t.Run("always within bounds", func(t *testing.T) {
		for _, m := range []ActivityMetrics{
			{},
			{Followers: 1 << 20, TotalStars: 1 << 20, PublicRepos: 1 << 20, RecentEvents: 1 << 20, PushEvents: 1 << 20, HasBio: true},
			{Followers: 3},
		} {
			score := ActivityScore(m)
			assert.GreaterOrEqual(t, score, 0)
			assert.LessOrEqual(t, score, 100)
		}
	})
}

func TestActivityBand(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{100, "Excellent - Highly active, influential developer"},
		{80, "Excellent - Highly active, influential developer"},
		{79, "Good - Active developer with solid presence"},
		{60, "Good - Active developer with solid presence"},
		{59, "Moderate - Shows regular activity"},
		{40, "Moderate - Shows regular activity"},
		{39, "Low - Limited public activity"},
		{20, "Low - Limited public activity"},
		{19, "Minimal - Very limited public presence"},
		{0, "Minimal - Very limited public presence"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ActivityBand(tt.score), "score %d", tt.score)
	}
}

func TestRisingStarScore(t *testing.T) {
	assert.InDelta(t, 50.0, RisingStarScore(100, 1), 1e-9)
	assert.InDelta(t, 100.0, RisingStarScore(100, 0), 1e-9)
	// Unknown h-index counts as zero.
	assert.InDelta(t, 100.0, RisingStarScore(100, -1), 1e-9)
	assert.InDelta(t, 0.0, RisingStarScore(0, 10), 1e-9)
}

func TestAcademicEstimate(t *testing.T) {
	assert.Equal(t, 0, AcademicEstimate(0, 0))
	assert.Equal(t, 0, AcademicEstimate(-1, 0))
	assert.Equal(t, 35, AcademicEstimate(10, 500)) // 30 + 5
	assert.Equal(t, 100, AcademicEstimate(40, 10000))
}

func TestAcademicTierFor(t *testing.T) {
	assert.Equal(t, domain.TierStrong, AcademicTierFor(50))
	assert.Equal(t, domain.TierModerate, AcademicTierFor(49))
	assert.Equal(t, domain.TierModerate, AcademicTierFor(20))
	assert.Equal(t, domain.TierEarlyCareer, AcademicTierFor(19))
	assert.Equal(t, domain.TierEarlyCareer, AcademicTierFor(0))
}
