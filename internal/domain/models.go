package domain

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Job status vocabulary after normalization
const (
	JobStatusOpen   = "OPEN"
	JobStatusClosed = "CLOSED"
	JobStatusDraft  = "DRAFT"
)

const (
	// UnspecifiedLocation is used when a job has no office
	UnspecifiedLocation = "Remote/Unspecified"
	// UnknownValue fills fields the ATS does not expose
	UnknownValue = "Unknown"
	// DefaultApplicationStatus is used when the ATS omits one
	DefaultApplicationStatus = "APPLIED"
)

// ID is an identifier received from a client. JSON numbers and strings are both accepted.
type ID string

func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*id = ""
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("id must be a string or number")
	}
	*id = ID(n.String())
	return nil
}

// Job is the normalized job posting
type Job struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Location    string `json:"location"`
	Status      string `json:"status"`
	ExternalURL string `json:"external_url"`
}

// CandidateRequest is the inbound candidate creation payload
type CandidateRequest struct {
	Name      string `json:"name" validate:"required"`
	Email     string `json:"email" validate:"required"`
	Phone     string `json:"phone,omitempty"`
	ResumeURL string `json:"resume_url,omitempty"`
	JobID     ID     `json:"job_id" validate:"required"`
}

// CandidateResult is returned after a candidate (and optional application) is created
type CandidateResult struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}

// Application is the normalized application view.
// Email is always UnknownValue for live data: the listing endpoint does not return it.
type Application struct {
	ID            string `json:"id"`
	CandidateName string `json:"candidate_name"`
	Email         string `json:"email"`
	Status        string `json:"status"`
}
