package ats

import (
	"context"

	"github.com/honeycarbs/ats-adapter/internal/domain"
)

// Cursor is an opaque continuation token handed back by a Provider.
// Empty means "first page" on input and "no more pages" on output.
type Cursor string

// Provider represents an ATS backend (Greenhouse Harvest, canned mock data, etc.)
type Provider interface {
	// e.g. "greenhouse" or "mock"
	Name() string

	// JobsPage returns one page of normalized open jobs and the cursor of the next page
	JobsPage(ctx context.Context, cursor Cursor) ([]domain.Job, Cursor, error)

	// CreateCandidate creates the candidate and, when JobID is set, links it to the job
	CreateCandidate(ctx context.Context, req domain.CandidateRequest) (domain.CandidateResult, error)

	// ListApplications returns applications for a job (first page only)
	ListApplications(ctx context.Context, jobID string) ([]domain.Application, error)
}
