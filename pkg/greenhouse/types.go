package greenhouse

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"
)

// Config defines Greenhouse Harvest API client settings
type Config struct {
	APIKey     string
	BaseURL    string
	OnBehalfOf string        // optional user id sent as On-Behalf-Of
	Timeout    time.Duration // applied to every call, default 10s
	HTTPClient *http.Client
}

// Client calls the Greenhouse Harvest API
type Client struct {
	apiKey     string
	baseURL    string
	onBehalfOf string
	httpClient *http.Client
}

// Cursor is an opaque continuation token for paginated listings.
// The zero value requests the first page; an empty next cursor means no more pages.
type Cursor string

// ID is a Harvest identifier. Harvest sends numeric ids; ID keeps them as strings.
type ID string

func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("greenhouse: id must be a string or number: %w", err)
	}
	*id = ID(n.String())
	return nil
}

// Int64 returns the numeric form Harvest expects in request bodies
func (id ID) Int64() (int64, error) {
	return strconv.ParseInt(string(id), 10, 64)
}

// Job is a Harvest job resource
type Job struct {
	ID          ID       `json:"id"`
	Name        string   `json:"name"`
	Status      string   `json:"status"`
	Offices     []Office `json:"offices"`
	AbsoluteURL *string  `json:"absolute_url"`
}

// Office is the subset of an office used for locations
type Office struct {
	ID   ID     `json:"id"`
	Name string `json:"name"`
}

// JobsPage is one page of the job listing
type JobsPage struct {
	Jobs []Job
	Next Cursor
}

// ContactValue is the {value, type} shape Harvest uses for emails, phones and websites
type ContactValue struct {
	Value string `json:"value"`
	Type  string `json:"type"`
}

// CandidateInput is the POST /candidates payload
type CandidateInput struct {
	FirstName        string         `json:"first_name"`
	LastName         string         `json:"last_name"`
	EmailAddresses   []ContactValue `json:"email_addresses,omitempty"`
	PhoneNumbers     []ContactValue `json:"phone_numbers,omitempty"`
	WebsiteAddresses []ContactValue `json:"website_addresses,omitempty"`
}

// Candidate is the subset of the created candidate returned by Harvest
type Candidate struct {
	ID        ID     `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
}

// ApplicationInput is the POST /candidates/{id}/applications payload
type ApplicationInput struct {
	JobID int64 `json:"job_id"`
}

// Application is a Harvest application resource
type Application struct {
	ID          ID      `json:"id"`
	CandidateID ID      `json:"candidate_id"`
	Status      string  `json:"status"`
	Person      *Person `json:"person"`
}

// Person carries the candidate display name on application listings
type Person struct {
	Name string `json:"name"`
}

// APIError is returned for any non-2xx Harvest response
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("greenhouse: API error (%d)", e.StatusCode)
	}
	return fmt.Sprintf("greenhouse: API error (%d): %s", e.StatusCode, e.Body)
}
