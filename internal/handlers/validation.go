package handlers

import (
	"encoding/json"
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/honeycarbs/ats-adapter/internal/domain"
)

var candidateValidator = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// report json names ("job_id") instead of Go field names
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// parseCandidateRequest decodes and validates the create-candidate body.
// Required fields are checked in declaration order (name, email, job_id); the first missing one is reported.
func parseCandidateRequest(body string) (domain.CandidateRequest, error) {
	var req domain.CandidateRequest

	if strings.TrimSpace(body) == "" {
		return req, &domain.ValidationError{Message: "Missing request body"}
	}

	if err := json.Unmarshal([]byte(body), &req); err != nil {
		return req, &domain.ValidationError{Message: "Invalid JSON body: " + err.Error()}
	}

	if err := candidateValidator.Struct(req); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return req, domain.MissingField(verrs[0].Field())
		}
		return req, &domain.ValidationError{Message: err.Error()}
	}

	return req, nil
}
