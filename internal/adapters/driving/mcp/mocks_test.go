package mcp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/scoutlab/scholarscout-cli/internal/core/domain"
	"github.com/scoutlab/scholarscout-cli/internal/core/services"
)

// mockGraph is a mock implementation of driven.AcademicGraph.
type mockGraph struct {
	batch        domain.PaperBatch
	details      domain.PaperDetails
	citations    []domain.PaperRecord
	authors      domain.AuthorBatch
	author       domain.AuthorProfile
	authorPapers []domain.PaperRecord
	profiles     map[string]domain.AuthorProfile
	err          error
}

func (m *mockGraph) SearchPapers(_ context.Context, _ domain.PaperQuery) (domain.PaperBatch, error) {
	return m.batch, m.err
}

func (m *mockGraph) GetPaper(_ context.Context, _ string) (domain.PaperDetails, error) {
	return m.details, m.err
}

func (m *mockGraph) GetPaperCitations(_ context.Context, _ string, _ int) ([]domain.PaperRecord, error) {
	return m.citations, m.err
}

func (m *mockGraph) SearchAuthors(_ context.Context, _ string, _ int) (domain.AuthorBatch, error) {
	return m.authors, m.err
}

func (m *mockGraph) GetAuthor(_ context.Context, _ string) (domain.AuthorProfile, error) {
	return m.author, m.err
}

func (m *mockGraph) GetAuthorPapers(_ context.Context, _ string, _ int) ([]domain.PaperRecord, error) {
	return m.authorPapers, m.err
}

func (m *mockGraph) BatchAuthors(_ context.Context, _ []string) (map[string]domain.AuthorProfile, error) {
	if m.err != nil {
		return nil, m.err
	}
	if m.profiles == nil {
		return map[string]domain.AuthorProfile{}, nil
	}
	return m.profiles, nil
}

// mockCodeHost is a mock implementation of driven.CodeHost.
type mockCodeHost struct {
	configured bool
	profiles   []domain.CodeHostProfile
	profile    domain.CodeHostProfile
	repos      []domain.RepoSummary
	events     []domain.Event
	err        error
}

func (m *mockCodeHost) Configured() bool {
	return m.configured
}

func (m *mockCodeHost) SearchUsers(_ context.Context, _ string) ([]domain.CodeHostProfile, error) {
	return m.profiles, m.err
}

func (m *mockCodeHost) GetUser(_ context.Context, _ string) (domain.CodeHostProfile, error) {
	return m.profile, m.err
}

func (m *mockCodeHost) ListRepos(_ context.Context, _ string) ([]domain.RepoSummary, error) {
	return m.repos, m.err
}

func (m *mockCodeHost) ListEvents(_ context.Context, _ string) ([]domain.Event, error) {
	return m.events, m.err
}

// newTestServer wires a server over mock upstreams through the real
// service layer.
func newTestServer(t *testing.T, graph *mockGraph, code *mockCodeHost) *Server {
	t.Helper()
	ports := &Ports{
		Scholar:    services.NewScholarService(graph),
		Recruiting: services.NewRecruitingService(graph, code),
	}
	server, err := NewServer(ports)
	require.NoError(t, err)
	return server
}
