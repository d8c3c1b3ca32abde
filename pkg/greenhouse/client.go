package greenhouse

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

const (
	DefaultBaseURL = "https://harvest.greenhouse.io/v1"
	DefaultTimeout = 10 * time.Second

	onBehalfOfHeader = "On-Behalf-Of"
	maxErrorBody     = 4096
)

// NewClient instantiates a Harvest API client
func NewClient(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("greenhouse: api key is required")
	}

	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	baseURL = strings.TrimSuffix(baseURL, "/")
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("greenhouse: parse base url: %w", err)
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	var httpClient *http.Client
	if cfg.HTTPClient != nil {
		c := *cfg.HTTPClient
		if c.Timeout == 0 {
			c.Timeout = timeout
		}
		httpClient = &c
	} else {
		httpClient = &http.Client{Timeout: timeout}
	}

	return &Client{
		apiKey:     cfg.APIKey,
		baseURL:    baseURL,
		onBehalfOf: cfg.OnBehalfOf,
		httpClient: httpClient,
	}, nil
}

// ListJobsPage fetches one page of open jobs. Pass the zero Cursor for the first page.
func (c *Client) ListJobsPage(ctx context.Context, cursor Cursor) (JobsPage, error) {
	if c == nil {
		return JobsPage{}, fmt.Errorf("greenhouse: client is nil")
	}

	u := c.baseURL + "/jobs?status=open"
	if cursor != "" {
		next, err := c.resolveCursor(cursor)
		if err != nil {
			return JobsPage{}, err
		}
		u = next
	}

	var jobs []Job
	header, err := c.do(ctx, http.MethodGet, u, nil, &jobs)
	if err != nil {
		return JobsPage{}, fmt.Errorf("greenhouse: list jobs: %w", err)
	}

	return JobsPage{
		Jobs: jobs,
		Next: Cursor(nextLink(header.Values("Link"))),
	}, nil
}

// CreateCandidate creates a candidate record
func (c *Client) CreateCandidate(ctx context.Context, in CandidateInput) (Candidate, error) {
	if c == nil {
		return Candidate{}, fmt.Errorf("greenhouse: client is nil")
	}

	var out Candidate
	if _, err := c.do(ctx, http.MethodPost, c.baseURL+"/candidates", in, &out); err != nil {
		return Candidate{}, fmt.Errorf("greenhouse: create candidate: %w", err)
	}
	if out.ID == "" {
		return Candidate{}, fmt.Errorf("greenhouse: create candidate: response has no id")
	}

	return out, nil
}

// CreateApplication attaches an existing candidate to a job
func (c *Client) CreateApplication(ctx context.Context, candidateID ID, in ApplicationInput) (Application, error) {
	if c == nil {
		return Application{}, fmt.Errorf("greenhouse: client is nil")
	}

	u := fmt.Sprintf("%s/candidates/%s/applications", c.baseURL, url.PathEscape(string(candidateID)))

	var out Application
	if _, err := c.do(ctx, http.MethodPost, u, in, &out); err != nil {
		return Application{}, fmt.Errorf("greenhouse: create application: %w", err)
	}

	return out, nil
}

// ListApplications returns the first page of applications for a job
func (c *Client) ListApplications(ctx context.Context, jobID string) ([]Application, error) {
	if c == nil {
		return nil, fmt.Errorf("greenhouse: client is nil")
	}

	values := url.Values{}
	values.Set("job_id", jobID)

	var apps []Application
	if _, err := c.do(ctx, http.MethodGet, c.baseURL+"/applications?"+values.Encode(), nil, &apps); err != nil {
		return nil, fmt.Errorf("greenhouse: list applications: %w", err)
	}

	return apps, nil
}

func (c *Client) do(ctx context.Context, method, u string, body, out any) (http.Header, error) {
	var reader io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	c.setHeaders(req)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return nil, &APIError{
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(raw)),
		}
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return nil, fmt.Errorf("decode response: %w", err)
		}
	}

	return resp.Header, nil
}

func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("Authorization", "Basic "+basicToken(c.apiKey))
	req.Header.Set("Accept", "application/json")
	if req.Body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.onBehalfOf != "" {
		req.Header.Set(onBehalfOfHeader, c.onBehalfOf)
	}
}

// resolveCursor refuses next links that leave the configured API host,
// since every request carries the API key.
func (c *Client) resolveCursor(cursor Cursor) (string, error) {
	next, err := url.Parse(string(cursor))
	if err != nil {
		return "", fmt.Errorf("greenhouse: invalid cursor: %w", err)
	}
	base, _ := url.Parse(c.baseURL)
	if !next.IsAbs() {
		next = base.ResolveReference(next)
	}
	if !strings.EqualFold(next.Host, base.Host) {
		return "", fmt.Errorf("greenhouse: cursor host %q does not match %q", next.Host, base.Host)
	}
	return next.String(), nil
}

// basicToken encodes the key as the username with a blank password
func basicToken(apiKey string) string {
	return base64.StdEncoding.EncodeToString([]byte(apiKey + ":"))
}
