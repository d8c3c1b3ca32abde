package greenhouse

import (
	"context"
	"fmt"
	"strings"

	"github.com/honeycarbs/ats-adapter/internal/domain"
	"github.com/honeycarbs/ats-adapter/internal/domain/ats"
	"github.com/honeycarbs/ats-adapter/pkg/greenhouse"
)

// harvestClient describes the subset of the Harvest client used by the provider.
type harvestClient interface {
	ListJobsPage(ctx context.Context, cursor greenhouse.Cursor) (greenhouse.JobsPage, error)
	CreateCandidate(ctx context.Context, in greenhouse.CandidateInput) (greenhouse.Candidate, error)
	CreateApplication(ctx context.Context, candidateID greenhouse.ID, in greenhouse.ApplicationInput) (greenhouse.Application, error)
	ListApplications(ctx context.Context, jobID string) ([]greenhouse.Application, error)
}

// Provider implements ats.Provider using the Greenhouse Harvest API
type Provider struct {
	client harvestClient
}

// NewProvider builds a Greenhouse provider
func NewProvider(client harvestClient) (*Provider, error) {
	if client == nil {
		return nil, fmt.Errorf("greenhouse provider: client is required")
	}
	return &Provider{client: client}, nil
}

// Name returns provider identifier
func (p *Provider) Name() string {
	return "greenhouse"
}

// JobsPage fetches one page of open jobs
func (p *Provider) JobsPage(ctx context.Context, cursor ats.Cursor) ([]domain.Job, ats.Cursor, error) {
	page, err := p.client.ListJobsPage(ctx, greenhouse.Cursor(cursor))
	if err != nil {
		return nil, "", err
	}

	out := make([]domain.Job, 0, len(page.Jobs))
	for _, j := range page.Jobs {
		out = append(out, mapJob(j))
	}

	return out, ats.Cursor(page.Next), nil
}

// CreateCandidate creates the candidate, then the application when a job id is given
func (p *Provider) CreateCandidate(ctx context.Context, req domain.CandidateRequest) (domain.CandidateResult, error) {
	var jobID int64
	if req.JobID != "" {
		id, err := greenhouse.ID(req.JobID).Int64()
		if err != nil {
			return domain.CandidateResult{}, &domain.ValidationError{
				Field:   "job_id",
				Message: fmt.Sprintf("Invalid job_id: %q is not a numeric id", string(req.JobID)),
			}
		}
		jobID = id
	}

	cand, err := p.client.CreateCandidate(ctx, candidateInput(req))
	if err != nil {
		return domain.CandidateResult{}, err
	}

	if req.JobID == "" {
		return domain.CandidateResult{
			ID:      string(cand.ID),
			Message: "Candidate created successfully",
		}, nil
	}

	if _, err := p.client.CreateApplication(ctx, cand.ID, greenhouse.ApplicationInput{JobID: jobID}); err != nil {
		return domain.CandidateResult{}, fmt.Errorf("candidate %s was created but the application failed: %w", cand.ID, err)
	}

	return domain.CandidateResult{
		ID:      string(cand.ID),
		Message: "Candidate created and applied successfully",
	}, nil
}

// ListApplications returns the first page of applications for a job
func (p *Provider) ListApplications(ctx context.Context, jobID string) ([]domain.Application, error) {
	apps, err := p.client.ListApplications(ctx, jobID)
	if err != nil {
		return nil, err
	}

	out := make([]domain.Application, 0, len(apps))
	for _, a := range apps {
		out = append(out, mapApplication(a))
	}
	return out, nil
}

var _ ats.Provider = (*Provider)(nil)

func mapJob(j greenhouse.Job) domain.Job {
	job := domain.Job{
		ID:       string(j.ID),
		Title:    j.Name,
		Location: domain.UnspecifiedLocation,
		Status:   strings.ToUpper(j.Status),
	}
	if len(j.Offices) > 0 {
		job.Location = j.Offices[0].Name
	}
	if j.AbsoluteURL != nil {
		job.ExternalURL = *j.AbsoluteURL
	}
	return job
}

func mapApplication(a greenhouse.Application) domain.Application {
	app := domain.Application{
		ID:            string(a.ID),
		CandidateName: domain.UnknownValue,
		Email:         domain.UnknownValue,
		Status:        a.Status,
	}
	if a.Person != nil && a.Person.Name != "" {
		app.CandidateName = a.Person.Name
	}
	if app.Status == "" {
		app.Status = domain.DefaultApplicationStatus
	}
	return app
}

func candidateInput(req domain.CandidateRequest) greenhouse.CandidateInput {
	first, last := splitName(req.Name)
	in := greenhouse.CandidateInput{
		FirstName: first,
		LastName:  last,
	}
	if req.Email != "" {
		in.EmailAddresses = []greenhouse.ContactValue{{Value: req.Email, Type: "personal"}}
	}
	if req.Phone != "" {
		in.PhoneNumbers = []greenhouse.ContactValue{{Value: req.Phone, Type: "mobile"}}
	}
	if req.ResumeURL != "" {
		in.WebsiteAddresses = []greenhouse.ContactValue{{Value: req.ResumeURL, Type: "portfolio"}}
	}
	return in
}

// splitName splits on the first space; everything after it is the last name
func splitName(name string) (first, last string) {
	first, last, _ = strings.Cut(name, " ")
	return first, last
}
