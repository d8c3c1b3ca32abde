package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/honeycarbs/ats-adapter/internal/domain"
	"github.com/honeycarbs/ats-adapter/pkg/logging"
)

// JobBoard is the adapter surface the handlers depend on
type JobBoard interface {
	ListJobs(ctx context.Context) ([]domain.Job, error)
	CreateCandidate(ctx context.Context, req domain.CandidateRequest) (domain.CandidateResult, error)
	ListApplications(ctx context.Context, jobID string) ([]domain.Application, error)
}

// Handlers turns requests into envelopes. Safe for concurrent use.
type Handlers struct {
	board  JobBoard
	logger *logging.Logger
}

// New builds Handlers around an adapter constructed once at startup
func New(board JobBoard, logger *logging.Logger) (*Handlers, error) {
	if board == nil {
		return nil, fmt.Errorf("handlers: job board is required")
	}
	if logger == nil {
		logger = logging.NewNop()
	}
	return &Handlers{board: board, logger: logger.Named("handlers")}, nil
}

// ListJobs returns every open job
func (h *Handlers) ListJobs(ctx context.Context, _ Request) (env ResponseEnvelope) {
	const op = "list_jobs"
	defer h.recoverPanic(op, &env)
	h.logger.Info("received request", "op", op)

	jobs, err := h.board.ListJobs(ctx)
	if err != nil {
		return h.fail(op, err)
	}

	return respond(http.StatusOK, jobs)
}

// CreateCandidate creates a candidate and links it to the requested job
func (h *Handlers) CreateCandidate(ctx context.Context, req Request) (env ResponseEnvelope) {
	const op = "create_candidate"
	defer h.recoverPanic(op, &env)
	h.logger.Info("received request", "op", op)

	in, err := parseCandidateRequest(req.Body)
	if err != nil {
		return h.fail(op, err)
	}

	res, err := h.board.CreateCandidate(ctx, in)
	if err != nil {
		return h.fail(op, err)
	}

	return respond(http.StatusCreated, res)
}

// ListApplications returns applications for the job_id query parameter
func (h *Handlers) ListApplications(ctx context.Context, req Request) (env ResponseEnvelope) {
	const op = "list_applications"
	defer h.recoverPanic(op, &env)
	h.logger.Info("received request", "op", op)

	jobID := req.QueryStringParameters["job_id"]
	if jobID == "" {
		return h.fail(op, &domain.ValidationError{
			Field:   "job_id",
			Message: "Missing required query parameter: job_id",
		})
	}

	apps, err := h.board.ListApplications(ctx, jobID)
	if err != nil {
		return h.fail(op, err)
	}

	return respond(http.StatusOK, apps)
}

func (h *Handlers) fail(op string, err error) ResponseEnvelope {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		h.logger.Warn("rejected request", "op", op, "field", verr.Field, "err", verr.Message)
		return respondError(http.StatusBadRequest, verr.Message)
	}

	h.logger.Error("request failed", "op", op, "err", err)
	return respondError(http.StatusInternalServerError, err.Error())
}

func (h *Handlers) recoverPanic(op string, env *ResponseEnvelope) {
	if r := recover(); r != nil {
		h.logger.Error("handler panicked", "op", op, "panic", r)
		*env = respondError(http.StatusInternalServerError, fmt.Sprintf("internal error: %v", r))
	}
}
