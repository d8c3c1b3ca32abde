package ats

import (
	"context"
	"errors"
	"fmt"

	"github.com/honeycarbs/ats-adapter/internal/domain"
)

// maxPages bounds the job listing loop against an upstream that never stops paginating
const maxPages = 1000

// Option configures Adapter
type Option func(*config)

type config struct {
	mode     Mode
	provider Provider
}

// WithMode sets the operating mode
func WithMode(mode Mode) Option {
	return func(c *config) {
		c.mode = mode
	}
}

// WithProvider sets the ATS provider
func WithProvider(p Provider) Option {
	return func(c *config) {
		c.provider = p
	}
}

// Adapter exposes the normalized job-board operations on top of a Provider.
// It holds no mutable state and is safe for concurrent use.
type Adapter struct {
	mode     Mode
	provider Provider
}

// NewAdapter builds Adapter from options
func NewAdapter(opts ...Option) (*Adapter, error) {
	cfg := &config{mode: ModeLive}
	for _, opt := range opts {
		opt(cfg)
	}

	return NewAdapterWithDeps(cfg.mode, cfg.provider)
}

// NewAdapterWithDeps creates an Adapter with direct dependencies (Wire-compatible)
func NewAdapterWithDeps(mode Mode, provider Provider) (*Adapter, error) {
	if provider == nil {
		return nil, fmt.Errorf("ats.Adapter: provider is required")
	}

	return &Adapter{
		mode:     mode,
		provider: provider,
	}, nil
}

// Mode reports the mode decided at construction
func (a *Adapter) Mode() Mode {
	return a.mode
}

// ProviderName returns the backing provider identifier
func (a *Adapter) ProviderName() string {
	return a.provider.Name()
}

// ListJobs walks every page of open jobs and returns them in page order
func (a *Adapter) ListJobs(ctx context.Context) ([]domain.Job, error) {
	var (
		jobs    []domain.Job
		cursor  Cursor
		seenIDs = make(map[string]struct{})
		visited = make(map[Cursor]struct{})
	)

	for page := 0; ; page++ {
		if page >= maxPages {
			return nil, upstream("list_jobs", fmt.Errorf("pagination exceeded %d pages", maxPages))
		}

		batch, next, err := a.provider.JobsPage(ctx, cursor)
		if err != nil {
			return nil, upstream("list_jobs", err)
		}

		for _, j := range batch {
			if _, dup := seenIDs[j.ID]; dup {
				continue
			}
			seenIDs[j.ID] = struct{}{}
			jobs = append(jobs, j)
		}

		if next == "" {
			break
		}
		visited[cursor] = struct{}{}
		if _, loop := visited[next]; loop {
			break
		}
		cursor = next
	}

	if jobs == nil {
		jobs = []domain.Job{}
	}
	return jobs, nil
}

// CreateCandidate creates a candidate and links it to req.JobID when present.
// A failure after the candidate exists is returned as is; the candidate is not removed.
func (a *Adapter) CreateCandidate(ctx context.Context, req domain.CandidateRequest) (domain.CandidateResult, error) {
	res, err := a.provider.CreateCandidate(ctx, req)
	if err != nil {
		return domain.CandidateResult{}, upstream("create_candidate", err)
	}
	return res, nil
}

// ListApplications returns the applications for a job
func (a *Adapter) ListApplications(ctx context.Context, jobID string) ([]domain.Application, error) {
	if jobID == "" {
		return nil, domain.MissingField("job_id")
	}

	apps, err := a.provider.ListApplications(ctx, jobID)
	if err != nil {
		return nil, upstream("list_applications", err)
	}
	if apps == nil {
		apps = []domain.Application{}
	}
	return apps, nil
}

// upstream classifies provider errors; validation failures pass through untouched
func upstream(op string, err error) error {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return verr
	}
	return &domain.UpstreamError{Op: op, Err: err}
}
