package services

import "github.com/scoutlab/scholarscout-cli/internal/core/domain"

// Scoring constants. These are hand-tuned heuristics; they are kept
// exactly as-is for output compatibility.
const (
	followerDivisor = 10
	followerCap     = 20
	starDivisor     = 50
	starCap         = 25
	repoDivisor     = 5
	repoCap         = 15
	eventDivisor    = 10
	eventCap        = 20
	pushDivisor     = 5
	pushCap         = 10
	bioBonus        = 10

	maxActivityScore = 100
)

// ActivityMetrics are the inputs to the code-activity score.
type ActivityMetrics struct {
	Followers    int
	TotalStars   int
	PublicRepos  int
	RecentEvents int
	PushEvents   int
	HasBio       bool
}

// MetricsFromProfile derives the scoring inputs from a fetched profile.
func MetricsFromProfile(p domain.CodeHostProfile) ActivityMetrics {
	return ActivityMetrics{
		Followers:    p.Followers,
		TotalStars:   p.TotalStars(),
		PublicRepos:  p.PublicRepos,
		RecentEvents: len(p.Events),
		PushEvents:   p.PushEvents(),
		HasBio:       p.Bio != "",
	}
}

// ActivityScore computes the 0-100 recruitability score: a weighted sum
// of capped terms, floored to an integer and clamped to [0,100].
func ActivityScore(m ActivityMetrics) int {
	score := 0.0
	score += capped(float64(m.Followers)/followerDivisor, followerCap)
	score += capped(float64(m.TotalStars)/starDivisor, starCap)
	score += capped(float64(m.PublicRepos)/repoDivisor, repoCap)
	score += capped(float64(m.RecentEvents)/eventDivisor, eventCap)
	score += capped(float64(m.PushEvents)/pushDivisor, pushCap)
	if m.HasBio {
		score += bioBonus
	}

	n := int(score)
	if n > maxActivityScore {
		return maxActivityScore
	}
	return n
}

func capped(v, limit float64) float64 {
	if v > limit {
		return limit
	}
	return v
}

// ActivityBand maps a score onto its qualitative label. The label
// strings are part of the output contract.
func ActivityBand(score int) string {
	switch {
	case score >= 80:
		return "Excellent - Highly active, influential developer"
	case score >= 60:
		return "Good - Active developer with solid presence"
	case score >= 40:
		return "Moderate - Shows regular activity"
	case score >= 20:
		return "Low - Limited public activity"
	default:
		return "Minimal - Very limited public presence"
	}
}

// RisingStarScore favours recent citation impact relative to career
// stage: citations gathered by qualifying recent papers divided by
// (h-index + 1). An unknown h-index counts as zero.
func RisingStarScore(recentCitations, hIndex int) float64 {
	if hIndex < 0 {
		hIndex = 0
	}
	return float64(recentCitations) / float64(hIndex+1)
}

// AcademicEstimate computes the academic-strength estimate
// min(100, h*3 + citations/100). It is reported independently of the
// code-activity score; the two are never combined.
func AcademicEstimate(hIndex, citations int) int {
	if hIndex < 0 {
		hIndex = 0
	}
	est := float64(hIndex)*3 + float64(citations)/100
	if est > 100 {
		return 100
	}
	return int(est)
}

// AcademicTierFor buckets an academic estimate into its tier.
func AcademicTierFor(estimate int) domain.AcademicTier {
	switch {
	case estimate >= 50:
		return domain.TierStrong
	case estimate >= 20:
		return domain.TierModerate
	default:
		return domain.TierEarlyCareer
	}
}
