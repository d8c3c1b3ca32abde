package app

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/honeycarbs/ats-adapter/internal/config"
	"github.com/honeycarbs/ats-adapter/internal/domain"
	"github.com/honeycarbs/ats-adapter/internal/domain/ats"
	"github.com/honeycarbs/ats-adapter/pkg/logging"
)

func testConfig(baseURL, apiKey string) config.Config {
	var cfg config.Config
	cfg.Host = "127.0.0.1"
	cfg.Port = "0"
	cfg.ATS.APIKey = apiKey
	cfg.ATS.BaseURL = baseURL
	cfg.ATS.Timeout = 2 * time.Second
	return cfg
}

func do(t *testing.T, h http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func errorText(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body struct {
		Error string `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body.Error
}

func TestMockModeNeverCallsUpstream(t *testing.T) {
	var hits atomic.Int32
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.WriteHeader(http.StatusTeapot)
	}))
	defer upstream.Close()

	for _, key := range []string{"", ats.PlaceholderAPIKey} {
		a, err := InitializeApp(testConfig(upstream.URL, key), logging.NewNop())
		require.NoError(t, err)
		require.Equal(t, ats.ModeMock, a.Adapter.Mode())
		h := a.Server.Handler()

		first := do(t, h, http.MethodGet, "/jobs", "")
		second := do(t, h, http.MethodGet, "/jobs", "")
		require.Equal(t, http.StatusOK, first.Code)
		require.Equal(t, first.Body.String(), second.Body.String())

		rec := do(t, h, http.MethodPost, "/candidates", `{"name": "Jane Doe", "email": "j@x.com", "job_id": "55"}`)
		require.Equal(t, http.StatusCreated, rec.Code)
		require.JSONEq(t, `{"id":"mock-candidate-123","message":"Candidate created and applied successfully (MOCK)"}`, rec.Body.String())

		rec = do(t, h, http.MethodGet, "/dev/applications?job_id=55", "")
		require.Equal(t, http.StatusOK, rec.Code)
	}

	require.Equal(t, int32(0), hits.Load())
}

// fakeHarvest serves three pages of jobs linked by rel="next" plus the candidate endpoints
type fakeHarvest struct {
	srv *httptest.Server

	mu    sync.Mutex
	calls []string
}

func newFakeHarvest(t *testing.T) *fakeHarvest {
	t.Helper()
	f := &fakeHarvest{}
	f.srv = httptest.NewServer(http.HandlerFunc(f.serve))
	t.Cleanup(f.srv.Close)
	return f
}

func (f *fakeHarvest) record(r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, r.Method+" "+r.URL.RequestURI())
}

func (f *fakeHarvest) serve(w http.ResponseWriter, r *http.Request) {
	f.record(r)
	if user, pass, ok := r.BasicAuth(); !ok || user != "live-key" || pass != "" {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	switch {
	case r.Method == http.MethodGet && r.URL.Path == "/v1/jobs":
		pageNo := r.URL.Query().Get("page")
		switch pageNo {
		case "":
			w.Header().Set("Link", fmt.Sprintf(`<%s/v1/jobs?status=open&page=2>; rel="next"`, f.srv.URL))
			_, _ = w.Write([]byte(`[{"id": 1, "name": "Backend Engineer", "status": "open", "offices": [{"name": "Berlin"}], "absolute_url": "https://boards/1"}, {"id": 2, "name": "SRE", "status": "open", "offices": []}]`))
		case "2":
			w.Header().Set("Link", fmt.Sprintf(`<%s/v1/jobs?status=open&page=1>; rel="prev", <%s/v1/jobs?status=open&page=3>; rel="next"`, f.srv.URL, f.srv.URL))
			_, _ = w.Write([]byte(`[{"id": 3, "name": "Designer", "status": "open", "offices": [{"name": "Remote"}]}]`))
		case "3":
			_, _ = w.Write([]byte(`[{"id": 4, "name": "PM", "status": "open", "offices": [{"name": "NYC"}]}]`))
		}
	case r.Method == http.MethodPost && r.URL.Path == "/v1/candidates":
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id": 9001}`))
	case r.Method == http.MethodPost && r.URL.Path == "/v1/candidates/9001/applications":
		var in struct {
			JobID int64 `json:"job_id"`
		}
		_ = json.NewDecoder(r.Body).Decode(&in)
		if in.JobID == 404 {
			w.WriteHeader(http.StatusNotFound)
			_, _ = w.Write([]byte(`{"message": "Job not found"}`))
			return
		}
		_, _ = w.Write([]byte(`{"id": 5, "candidate_id": 9001}`))
	case r.Method == http.MethodGet && r.URL.Path == "/v1/applications":
		if r.URL.Query().Get("job_id") == "slow" {
			time.Sleep(500 * time.Millisecond)
		}
		_, _ = w.Write([]byte(`[{"id": 10, "status": "active", "person": {"name": "Ann Lee"}}]`))
	default:
		w.WriteHeader(http.StatusNotFound)
	}
}

func (f *fakeHarvest) callCount(prefix string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if strings.HasPrefix(c, prefix) {
			n++
		}
	}
	return n
}

func liveApp(t *testing.T, f *fakeHarvest, mutate ...func(*config.Config)) http.Handler {
	t.Helper()
	cfg := testConfig(f.srv.URL+"/v1", "live-key")
	for _, m := range mutate {
		m(&cfg)
	}
	a, err := InitializeApp(cfg, logging.NewNop())
	require.NoError(t, err)
	require.Equal(t, ats.ModeLive, a.Adapter.Mode())
	return a.Server.Handler()
}

func TestLiveListJobsFollowsPagination(t *testing.T) {
	f := newFakeHarvest(t)
	rec := do(t, liveApp(t, f), http.MethodGet, "/jobs", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))

	var jobs []domain.Job
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &jobs))
	require.Equal(t, []domain.Job{
		{ID: "1", Title: "Backend Engineer", Location: "Berlin", Status: "OPEN", ExternalURL: "https://boards/1"},
		{ID: "2", Title: "SRE", Location: domain.UnspecifiedLocation, Status: "OPEN"},
		{ID: "3", Title: "Designer", Location: "Remote", Status: "OPEN"},
		{ID: "4", Title: "PM", Location: "NYC", Status: "OPEN"},
	}, jobs)
	require.Equal(t, 3, f.callCount("GET /v1/jobs"))
}

func TestLiveCreateCandidate(t *testing.T) {
	t.Run(`candidate then one application`, func(t *testing.T) {
		f := newFakeHarvest(t)
		rec := do(t, liveApp(t, f), http.MethodPost, "/candidates", `{"name": "Jane Doe", "email": "j@x.com", "job_id": "55"}`)
		require.Equal(t, http.StatusCreated, rec.Code)
		require.JSONEq(t, `{"id":"9001","message":"Candidate created and applied successfully"}`, rec.Body.String())
		require.Equal(t, []string{"POST /v1/candidates", "POST /v1/candidates/9001/applications"}, f.calls)
	})

	t.Run(`missing job id makes no call`, func(t *testing.T) {
		f := newFakeHarvest(t)
		rec := do(t, liveApp(t, f), http.MethodPost, "/candidates", `{"name": "Jane Doe", "email": "j@x.com"}`)
		require.Equal(t, http.StatusBadRequest, rec.Code)
		require.Equal(t, "Missing required field: job_id", errorText(t, rec))
		require.Empty(t, f.calls)
	})

	t.Run(`application failure is a 500 naming the created candidate`, func(t *testing.T) {
		f := newFakeHarvest(t)
		rec := do(t, liveApp(t, f), http.MethodPost, "/candidates", `{"name": "Jane Doe", "email": "j@x.com", "job_id": 404}`)
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		msg := errorText(t, rec)
		require.Contains(t, msg, "9001")
		require.Contains(t, msg, "404")
	})
}

func TestLiveUpstreamFailures(t *testing.T) {
	t.Run(`non-2xx`, func(t *testing.T) {
		f := newFakeHarvest(t)
		h := liveApp(t, f, func(cfg *config.Config) { cfg.ATS.APIKey = "wrong-key" })

		rec := do(t, h, http.MethodGet, "/jobs", "")
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		require.Contains(t, errorText(t, rec), "401")
	})

	t.Run(`timeout`, func(t *testing.T) {
		f := newFakeHarvest(t)
		h := liveApp(t, f, func(cfg *config.Config) { cfg.ATS.Timeout = 50 * time.Millisecond })

		rec := do(t, h, http.MethodGet, "/applications?job_id=slow", "")
		require.Equal(t, http.StatusInternalServerError, rec.Code)
		require.NotEmpty(t, errorText(t, rec))
	})

	t.Run(`unreachable`, func(t *testing.T) {
		dead := httptest.NewServer(http.NotFoundHandler())
		base := dead.URL
		dead.Close()

		a, err := InitializeApp(testConfig(base, "live-key"), logging.NewNop())
		require.NoError(t, err)
		rec := do(t, a.Server.Handler(), http.MethodGet, "/jobs", "")
		require.Equal(t, http.StatusInternalServerError, rec.Code)
	})
}

func TestLiveListApplications(t *testing.T) {
	f := newFakeHarvest(t)
	rec := do(t, liveApp(t, f), http.MethodGet, "/applications?job_id=55", "")
	require.Equal(t, http.StatusOK, rec.Code)
	require.JSONEq(t, `[{"id":"10","candidate_name":"Ann Lee","email":"Unknown","status":"active"}]`, rec.Body.String())
	require.Equal(t, 1, f.callCount("GET /v1/applications"))
}
