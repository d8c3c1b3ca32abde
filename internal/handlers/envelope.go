package handlers

import (
	"encoding/json"
	"net/http"
)

// Request is the inbound request description handed to every handler
type Request struct {
	Body                  string            `json:"body,omitempty"`
	QueryStringParameters map[string]string `json:"queryStringParameters,omitempty"`
}

// ResponseEnvelope is the uniform output of every handler
type ResponseEnvelope struct {
	StatusCode int               `json:"statusCode"`
	Body       string            `json:"body"`
	Headers    map[string]string `json:"headers"`
}

// ErrorBody is the JSON body of every non-2xx envelope
type ErrorBody struct {
	Error string `json:"error"`
}

func defaultHeaders() map[string]string {
	return map[string]string{
		"Content-Type":                "application/json",
		"Access-Control-Allow-Origin": "*",
	}
}

func respond(status int, body any) ResponseEnvelope {
	raw, err := json.Marshal(body)
	if err != nil {
		status = http.StatusInternalServerError
		raw, _ = json.Marshal(ErrorBody{Error: "encode response: " + err.Error()})
	}

	return ResponseEnvelope{
		StatusCode: status,
		Body:       string(raw),
		Headers:    defaultHeaders(),
	}
}

func respondError(status int, msg string) ResponseEnvelope {
	return respond(status, ErrorBody{Error: msg})
}

// Error builds an error envelope for transports that fail before a handler runs
func Error(status int, msg string) ResponseEnvelope {
	return respondError(status, msg)
}
