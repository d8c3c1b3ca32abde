package server

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/honeycarbs/ats-adapter/internal/handlers"
)

const maxBodyBytes = 1 << 20

type handlerFunc func(ctx context.Context, req handlers.Request) handlers.ResponseEnvelope

func (s *Server) routes(h *handlers.Handlers, mcpHandler http.Handler) http.Handler {
	mux := http.NewServeMux()

	// /dev/* aliases keep older local tooling working
	for _, prefix := range []string{"", "/dev"} {
		mux.HandleFunc("GET "+prefix+"/jobs", s.invoke(h.ListJobs))
		mux.HandleFunc("POST "+prefix+"/candidates", s.invoke(h.CreateCandidate))
		mux.HandleFunc("GET "+prefix+"/applications", s.invoke(h.ListApplications))
	}

	if mcpHandler != nil {
		mux.Handle("/mcp/stream", mcpHandler)
	}

	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	return Chain(mux, RequestID, s.AccessLog, Cors, s.Recover)
}

// invoke translates an HTTP request into a handler Request and writes the envelope back
func (s *Server) invoke(fn handlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
		if err != nil {
			var tooLarge *http.MaxBytesError
			if errors.As(err, &tooLarge) {
				writeEnvelope(w, handlers.Error(http.StatusRequestEntityTooLarge, "Request body too large"))
				return
			}
			writeEnvelope(w, handlers.Error(http.StatusBadRequest, "Unable to read request body"))
			return
		}

		query := make(map[string]string)
		for k, v := range r.URL.Query() {
			if len(v) > 0 {
				query[k] = v[0]
			}
		}

		env := fn(r.Context(), handlers.Request{
			Body:                  string(body),
			QueryStringParameters: query,
		})
		writeEnvelope(w, env)
	}
}

func writeEnvelope(w http.ResponseWriter, env handlers.ResponseEnvelope) {
	for k, v := range env.Headers {
		w.Header().Set(k, v)
	}
	w.WriteHeader(env.StatusCode)
	_, _ = io.WriteString(w, env.Body)
}
