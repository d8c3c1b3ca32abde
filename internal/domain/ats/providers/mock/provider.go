package mock

import (
	"context"

	"github.com/honeycarbs/ats-adapter/internal/domain"
	"github.com/honeycarbs/ats-adapter/internal/domain/ats"
)

// Provider returns canned data and never performs network I/O
type Provider struct{}

// NewProvider builds the mock provider
func NewProvider() *Provider {
	return &Provider{}
}

func (p *Provider) Name() string {
	return "mock"
}

func (p *Provider) JobsPage(_ context.Context, _ ats.Cursor) ([]domain.Job, ats.Cursor, error) {
	return []domain.Job{
		{ID: "mock-1", Title: "Software Engineer (Mock)", Location: "Remote", Status: domain.JobStatusOpen, ExternalURL: "http://example.com/job/1"},
		{ID: "mock-2", Title: "Product Manager (Mock)", Location: "New York", Status: domain.JobStatusOpen, ExternalURL: "http://example.com/job/2"},
	}, "", nil
}

func (p *Provider) CreateCandidate(_ context.Context, _ domain.CandidateRequest) (domain.CandidateResult, error) {
	return domain.CandidateResult{
		ID:      "mock-candidate-123",
		Message: "Candidate created and applied successfully (MOCK)",
	}, nil
}

func (p *Provider) ListApplications(_ context.Context, _ string) ([]domain.Application, error) {
	return []domain.Application{
		{ID: "mock-app-1", CandidateName: "John Doe (Mock)", Email: "john@example.com", Status: "APPLIED"},
		{ID: "mock-app-2", CandidateName: "Jane Smith (Mock)", Email: "jane@example.com", Status: "INTERVIEWING"},
	}, nil
}

var _ ats.Provider = (*Provider)(nil)
