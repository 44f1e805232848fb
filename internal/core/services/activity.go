package services

import (
	"context"
	"errors"
	"sort"

	"github.com/scoutlab/scholarscout-cli/internal/core/domain"
	"github.com/scoutlab/scholarscout-cli/internal/logger"
)

// LanguageCount is one entry of a repository-language tally.
type LanguageCount struct {
	Language string
	Repos    int
}

// ActivityReport is the full code-activity analysis for one user.
type ActivityReport struct {
	Profile   domain.CodeHostProfile
	Metrics   ActivityMetrics
	Score     int
	Band      string
	Languages []LanguageCount      // sorted by repo count, top 5
	TopRepos  []domain.RepoSummary // sorted by stars, top 3
}

// ActivityReportFor fetches a user's profile, repositories and recent
// events, then scores them. The profile call is required; repo and
// event listings degrade to empty on failure so a user with a hidden
// activity feed still gets a (lower) score.
func (s *RecruitingService) ActivityReportFor(ctx context.Context, username string) (ActivityReport, error) {
	if !s.code.Configured() {
		return ActivityReport{}, domain.ErrNotConfigured
	}

	profile, err := s.code.GetUser(ctx, username)
	if err != nil {
		return ActivityReport{}, err
	}

	repos, err := s.code.ListRepos(ctx, username)
	if err != nil {
		logger.Warn("listing repos for %s: %v", username, err)
		repos = nil
	}
	events, err := s.code.ListEvents(ctx, username)
	if err != nil {
		logger.Warn("listing events for %s: %v", username, err)
		events = nil
	}

	profile.Repos = repos
	profile.Events = events

	metrics := MetricsFromProfile(profile)
	score := ActivityScore(metrics)

	return ActivityReport{
		Profile:   profile,
		Metrics:   metrics,
		Score:     score,
		Band:      ActivityBand(score),
		Languages: topLanguages(repos, 5),
		TopRepos:  topRepos(repos, 3),
	}, nil
}

// SearchResearcherCode searches the code host for profiles matching a
// researcher's name. Detail lookups happen sequentially per match.
func (s *RecruitingService) SearchResearcherCode(ctx context.Context, name string) ([]domain.CodeHostProfile, error) {
	if !s.code.Configured() {
		return nil, domain.ErrNotConfigured
	}
	return s.code.SearchUsers(ctx, name)
}

// CombinedProfile resolves the academic and code-host identities
// independently and merges them. Either side may be absent without
// failing the operation; only a rate-limit failure aborts.
func (s *RecruitingService) CombinedProfile(
	ctx context.Context, name, academicID, codeUsername string,
) (domain.CompositeProfile, error) {
	composite := domain.CompositeProfile{Name: name, CodeUsername: codeUsername}

	academic, err := s.resolveAcademic(ctx, name, academicID)
	if err != nil {
		if errors.Is(err, domain.ErrRateLimited) {
			return domain.CompositeProfile{}, err
		}
		logger.Debug("academic lookup for %q failed softly: %v", name, err)
	}
	composite.Academic = academic

	switch {
	case codeUsername == "":
		composite.CodeStatus = domain.CodeHostNoUsername
	case !s.code.Configured():
		composite.CodeStatus = domain.CodeHostNotConfigured
	default:
		code, err := s.code.GetUser(ctx, codeUsername)
		switch {
		case err == nil:
			composite.Code = &code
			composite.CodeStatus = domain.CodeHostResolved
		case errors.Is(err, domain.ErrRateLimited):
			return domain.CompositeProfile{}, err
		default:
			logger.Debug("code-host lookup for %q failed softly: %v", codeUsername, err)
			composite.CodeStatus = domain.CodeHostNotFound
		}
	}

	// The estimate is computed even when the academic side is absent so
	// the assessment section is always present (absent profile scores 0).
	hIndex, citations := 0, 0
	if composite.Academic != nil {
		hIndex = composite.Academic.HIndexOrZero()
		citations = composite.Academic.Citations
	}
	composite.AcademicScore = AcademicEstimate(hIndex, citations)
	composite.AcademicTier = AcademicTierFor(composite.AcademicScore)

	return composite, nil
}

// resolveAcademic finds the academic profile by explicit id when given,
// otherwise by best-effort name search taking the first match.
func (s *RecruitingService) resolveAcademic(ctx context.Context, name, id string) (*domain.AuthorProfile, error) {
	if id != "" {
		profile, err := s.graph.GetAuthor(ctx, id)
		if err != nil {
			return nil, err
		}
		return &profile, nil
	}

	batch, err := s.graph.SearchAuthors(ctx, name, 1)
	if err != nil {
		return nil, err
	}
	if len(batch.Authors) == 0 {
		return nil, domain.ErrNotFound
	}
	return &batch.Authors[0], nil
}

func topLanguages(repos []domain.RepoSummary, n int) []LanguageCount {
	counts := make(map[string]int)
	for _, r := range repos {
		if r.Language != "" {
			counts[r.Language]++
		}
	}

	langs := make([]LanguageCount, 0, len(counts))
	for lang, c := range counts {
		langs = append(langs, LanguageCount{Language: lang, Repos: c})
	}
	sort.Slice(langs, func(i, j int) bool {
		if langs[i].Repos != langs[j].Repos {
			return langs[i].Repos > langs[j].Repos
		}
		return langs[i].Language < langs[j].Language
	})

	if len(langs) > n {
		langs = langs[:n]
	}
	return langs
}

func topRepos(repos []domain.RepoSummary, n int) []domain.RepoSummary {
	sorted := make([]domain.RepoSummary, len(repos))
	copy(sorted, repos)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Stars > sorted[j].Stars
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}
