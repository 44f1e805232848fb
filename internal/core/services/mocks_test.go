package services

import (
	"context"

	"github.com/scoutlab/scholarscout-cli/internal/core/domain"
)

// mockGraph is a hand-written AcademicGraph fake. Call counters let
// tests assert on sequencing and on zero-call guarantees.
type mockGraph struct {
	searchBatch     domain.PaperBatch
	searchErr       error
	searchCalls     int
	lastQuery       domain.PaperQuery
	batchProfiles   map[string]domain.AuthorProfile
	batchErr        error
	batchCalls      int
	lastBatchIDs    []string
	author          domain.AuthorProfile
	authorErr       error
	authorBatch     domain.AuthorBatch
	authorSearchErr error
	authorPapers    []domain.PaperRecord
	paper           domain.PaperDetails
	paperErr        error
	citations       []domain.PaperRecord
}

func (m *mockGraph) SearchPapers(_ context.Context, q domain.PaperQuery) (domain.PaperBatch, error) {
	m.searchCalls++
	m.lastQuery = q
	return m.searchBatch, m.searchErr
}

func (m *mockGraph) GetPaper(_ context.Context, _ string) (domain.PaperDetails, error) {
	return m.paper, m.paperErr
}

func (m *mockGraph) GetPaperCitations(_ context.Context, _ string, _ int) ([]domain.PaperRecord, error) {
	return m.citations, nil
}

func (m *mockGraph) SearchAuthors(_ context.Context, _ string, _ int) (domain.AuthorBatch, error) {
	return m.authorBatch, m.authorSearchErr
}

func (m *mockGraph) GetAuthor(_ context.Context, _ string) (domain.AuthorProfile, error) {
	return m.author, m.authorErr
}

func (m *mockGraph) GetAuthorPapers(_ context.Context, _ string, _ int) ([]domain.PaperRecord, error) {
	return m.authorPapers, nil
}

func (m *mockGraph) BatchAuthors(_ context.Context, ids []string) (map[string]domain.AuthorProfile, error) {
	m.batchCalls++
	m.lastBatchIDs = ids
	if m.batchErr != nil {
		return nil, m.batchErr
	}
	out := make(map[string]domain.AuthorProfile)
	for _, id := range ids {
		if p, ok := m.batchProfiles[id]; ok {
			out[id] = p
		}
	}
	return out, nil
}

// mockCodeHost is a hand-written CodeHost fake.
type mockCodeHost struct {
	configured bool
	user       domain.CodeHostProfile
	userErr    error
	repos      []domain.RepoSummary
	reposErr   error
	events     []domain.Event
	eventsErr  error
	found      []domain.CodeHostProfile
	searchErr  error
}

func (m *mockCodeHost) Configured() bool { return m.configured }

func (m *mockCodeHost) SearchUsers(_ context.Context, _ string) ([]domain.CodeHostProfile, error) {
	return m.found, m.searchErr
}

func (m *mockCodeHost) GetUser(_ context.Context, _ string) (domain.CodeHostProfile, error) {
	return m.user, m.userErr
}

func (m *mockCodeHost) ListRepos(_ context.Context, _ string) ([]domain.RepoSummary, error) {
	return m.repos, m.reposErr
}

func (m *mockCodeHost) ListEvents(_ context.Context, _ string) ([]domain.Event, error) {
	return m.events, m.eventsErr
}
