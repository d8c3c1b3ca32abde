package mcp

import (
	"context"
	"encoding/json"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/honeycarbs/ats-adapter/internal/handlers"
)

// ListJobsParams defines the arguments for the list_jobs tool
type ListJobsParams struct{}

// CreateCandidateParams defines the arguments for the create_candidate tool.
// Required fields are enforced by the handler so the tool reports the same errors as HTTP.
type CreateCandidateParams struct {
	Name      string `json:"name,omitempty" jsonschema:"Full name; split into first and last name on the first space"`
	Email     string `json:"email,omitempty" jsonschema:"Candidate email address"`
	JobID     string `json:"job_id,omitempty" jsonschema:"ATS job id to apply the candidate to"`
	Phone     string `json:"phone,omitempty" jsonschema:"Optional phone number"`
	ResumeURL string `json:"resume_url,omitempty" jsonschema:"Optional resume or portfolio link"`
}

// ListApplicationsParams defines the arguments for the list_applications tool
type ListApplicationsParams struct {
	JobID string `json:"job_id,omitempty" jsonschema:"ATS job id whose applications are listed"`
}

type toolset struct {
	h *handlers.Handlers
}

// registerTools wires the job-board handlers into the MCP server
func registerTools(s *sdkmcp.Server, h *handlers.Handlers) {
	t := &toolset{h: h}

	sdkmcp.AddTool(s, &sdkmcp.Tool{
		Name:        "list_jobs",
		Description: "List every open job in the ATS, normalized to id/title/location/status/external_url",
	}, t.listJobs)

	sdkmcp.AddTool(s, &sdkmcp.Tool{
		Name:        "create_candidate",
		Description: "Create a candidate in the ATS and apply them to a job",
	}, t.createCandidate)

	sdkmcp.AddTool(s, &sdkmcp.Tool{
		Name:        "list_applications",
		Description: "List applications for a job (first page only; email is always Unknown)",
	}, t.listApplications)
}

func (t *toolset) listJobs(ctx context.Context, _ *sdkmcp.CallToolRequest, _ ListJobsParams) (*sdkmcp.CallToolResult, any, error) {
	return envelopeResult(t.h.ListJobs(ctx, handlers.Request{})), nil, nil
}

func (t *toolset) createCandidate(ctx context.Context, _ *sdkmcp.CallToolRequest, params CreateCandidateParams) (*sdkmcp.CallToolResult, any, error) {
	body, err := json.Marshal(params)
	if err != nil {
		return nil, nil, err
	}
	return envelopeResult(t.h.CreateCandidate(ctx, handlers.Request{Body: string(body)})), nil, nil
}

func (t *toolset) listApplications(ctx context.Context, _ *sdkmcp.CallToolRequest, params ListApplicationsParams) (*sdkmcp.CallToolResult, any, error) {
	req := handlers.Request{QueryStringParameters: map[string]string{"job_id": params.JobID}}
	return envelopeResult(t.h.ListApplications(ctx, req)), nil, nil
}

// envelopeResult returns the envelope body as text; non-2xx envelopes are tool errors
func envelopeResult(env handlers.ResponseEnvelope) *sdkmcp.CallToolResult {
	return &sdkmcp.CallToolResult{
		Content: []sdkmcp.Content{
			&sdkmcp.TextContent{Text: env.Body},
		},
		IsError: env.StatusCode >= 400,
	}
}
