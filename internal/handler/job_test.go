package handler_test

import (
	"fmt"
	"net/http"
	"sync"
	"testing"

	"github.com/rocgym/jobboard/internal/model"
)

func seedJob(t *testing.T, env *testEnv, token string) model.Job {
	t.Helper()
	rec := env.do(t, http.MethodPost, "/jobs", token, map[string]string{
		"title":        "Personal Trainer",
		"description":  "Coach members through programs",
		"location":     "Sydney CBD",
		"work_type":    "full-time",
		"salary_range": "60k-75k",
	})
	wantStatus(t, rec, http.StatusCreated)
	var job model.Job
	decode(t, rec, &job)
	return job
}

// ── create ─────────────────────────────────────────────────────────────────

// A guest gets 401 (authentication), a "user" token gets 403
// (authorization); the two failures must stay distinguishable.
func TestCreateJob_GuestVsUser(t *testing.T) {
	env := newTestEnv(t)
	body := map[string]string{
		"title": "t", "description": "d", "location": "l", "work_type": "casual",
	}
	wantStatus(t, env.do(t, http.MethodPost, "/jobs", "", body), http.StatusUnauthorized)

	userTok, _ := env.token(t, "user@rocgym.com", "user")
	wantStatus(t, env.do(t, http.MethodPost, "/jobs", userTok, body), http.StatusForbidden)
}

func TestCreateJob_RecruiterOwnsPosting(t *testing.T) {
	env := newTestEnv(t)
	tok, id := env.token(t, "rec@rocgym.com", "recruiter")
	job := seedJob(t, env, tok)
	if job.PostedBy != id {
		t.Errorf("posted_by = %d, want %d", job.PostedBy, id)
	}
	if job.Views != 0 {
		t.Errorf("views = %d on create, want 0", job.Views)
	}
	if job.DatePosted.IsZero() {
		t.Error("date_posted not set")
	}
}

func TestCreateJob_DefaultsCompanyName(t *testing.T) {
	env := newTestEnv(t)
	tok, _ := env.token(t, "rec@rocgym.com", "recruiter")
	job := seedJob(t, env, tok)
	if job.CompanyName != "ROC Gym" {
		t.Errorf("company_name = %q, want default", job.CompanyName)
	}
}

func TestCreateJob_MissingFields(t *testing.T) {
	env := newTestEnv(t)
	tok, _ := env.token(t, "rec@rocgym.com", "recruiter")
	rec := env.do(t, http.MethodPost, "/jobs", tok, map[string]string{"title": "only a title"})
	wantStatus(t, rec, http.StatusBadRequest)
}

// ── read / views ───────────────────────────────────────────────────────────

// createJob followed by getJob returns every submitted field plus the
// server-assigned ones, with views == 1 after the single read.
func TestGetJob_RoundTrip(t *testing.T) {
	env := newTestEnv(t)
	tok, id := env.token(t, "rec@rocgym.com", "recruiter")
	created := seedJob(t, env, tok)

	rec := env.do(t, http.MethodGet, fmt.Sprintf("/jobs/%d", created.ID), "", nil)
	wantStatus(t, rec, http.StatusOK)
	var got model.Job
	decode(t, rec, &got)

	if got.Title != "Personal Trainer" || got.Location != "Sydney CBD" ||
		got.WorkType != "full-time" || got.SalaryRange != "60k-75k" {
		t.Errorf("round-tripped job = %+v", got)
	}
	if got.ID != created.ID || got.PostedBy != id {
		t.Errorf("id/owner mismatch: %+v", got)
	}
	if got.Views != 1 {
		t.Errorf("views = %d after one read, want 1", got.Views)
	}
}

func TestGetJob_SequentialViewCounting(t *testing.T) {
	env := newTestEnv(t)
	tok, _ := env.token(t, "rec@rocgym.com", "recruiter")
	job := seedJob(t, env, tok)

	const n = 5
	for i := 0; i < n; i++ {
		wantStatus(t, env.do(t, http.MethodGet, fmt.Sprintf("/jobs/%d", job.ID), "", nil), http.StatusOK)
	}
	stored, err := env.jobs.GetByID(nil, job.ID)
	if err != nil {
		t.Fatal(err)
	}
	if stored.Views != n {
		t.Errorf("views = %d after %d reads, want %d", stored.Views, n, n)
	}
}

// Concurrent reads must not lose increments: the final count equals the
// number of successful calls.
func TestGetJob_ConcurrentViewCounting(t *testing.T) {
	env := newTestEnv(t)
	tok, _ := env.token(t, "rec@rocgym.com", "recruiter")
	job := seedJob(t, env, tok)

	const n = 32
	var wg sync.WaitGroup
	wg.Add(n)
	for i := 0; i < n; i++ {
		go func() {
			defer wg.Done()
			rec := env.do(t, http.MethodGet, fmt.Sprintf("/jobs/%d", job.ID), "", nil)
			if rec.Code != http.StatusOK {
				t.Errorf("concurrent read status %d", rec.Code)
			}
		}()
	}
	wg.Wait()

	stored, err := env.jobs.GetByID(nil, job.ID)
	if err != nil {
		t.Fatal(err)
	}
	if stored.Views != n {
		t.Errorf("views = %d after %d concurrent reads, want %d", stored.Views, n, n)
	}
}

func TestGetJob_NotFoundAndBadID(t *testing.T) {
	env := newTestEnv(t)
	wantStatus(t, env.do(t, http.MethodGet, "/jobs/999", "", nil), http.StatusNotFound)
	wantStatus(t, env.do(t, http.MethodGet, "/jobs/abc", "", nil), http.StatusBadRequest)
}

// ── list / filters ─────────────────────────────────────────────────────────

func TestListJobs_Filters(t *testing.T) {
	env := newTestEnv(t)
	tok, _ := env.token(t, "rec@rocgym.com", "recruiter")
	seedJob(t, env, tok) // Personal Trainer / Sydney CBD / full-time
	rec := env.do(t, http.MethodPost, "/jobs", tok, map[string]string{
		"title": "Night Receptionist", "description": "d", "location": "Melbourne", "work_type": "casual",
	})
	wantStatus(t, rec, http.StatusCreated)

	cases := []struct {
		query string
		want  int
	}{
		{"", 2},
		{"?title=trainer", 1},       // case-insensitive substring
		{"?title=TRAIN", 1},         // partial word
		{"?location=sydney", 1},
		{"?work_type=casual", 1},    // exact match
		{"?work_type=casu", 0},      // work_type is not a substring match
		{"?title=trainer&location=melbourne", 0},
		{"?title=nomatch", 0},
	}
	for _, tc := range cases {
		rec := env.do(t, http.MethodGet, "/jobs"+tc.query, "", nil)
		wantStatus(t, rec, http.StatusOK)
		var jobs []model.Job
		decode(t, rec, &jobs)
		if len(jobs) != tc.want {
			t.Errorf("GET /jobs%s returned %d jobs, want %d", tc.query, len(jobs), tc.want)
		}
	}
}

// ── update / delete ownership ──────────────────────────────────────────────

// A recruiter holding a perfectly valid token still cannot touch another
// recruiter's posting.
func TestUpdateJob_RecruiterOwnershipEnforced(t *testing.T) {
	env := newTestEnv(t)
	ownerTok, _ := env.token(t, "owner@rocgym.com", "recruiter")
	otherTok, _ := env.token(t, "other@rocgym.com", "recruiter")
	job := seedJob(t, env, ownerTok)

	patch := map[string]string{"title": "Senior Trainer"}
	path := fmt.Sprintf("/jobs/%d", job.ID)

	wantStatus(t, env.do(t, http.MethodPut, path, otherTok, patch), http.StatusForbidden)
	wantStatus(t, env.do(t, http.MethodDelete, path, otherTok, nil), http.StatusForbidden)

	rec := env.do(t, http.MethodPut, path, ownerTok, patch)
	wantStatus(t, rec, http.StatusOK)
	var updated model.Job
	decode(t, rec, &updated)
	if updated.Title != "Senior Trainer" {
		t.Errorf("title = %q after update", updated.Title)
	}
	if updated.UpdatedBy == nil {
		t.Error("updated_by not stamped")
	}
}

// Replaying the same PUT (a client retry) must succeed again, even though
// the second update changes no column values.
func TestUpdateJob_IdenticalRetry(t *testing.T) {
	env := newTestEnv(t)
	tok, _ := env.token(t, "owner@rocgym.com", "recruiter")
	job := seedJob(t, env, tok)

	path := fmt.Sprintf("/jobs/%d", job.ID)
	patch := map[string]string{"title": "Senior Trainer"}
	wantStatus(t, env.do(t, http.MethodPut, path, tok, patch), http.StatusOK)

	rec := env.do(t, http.MethodPut, path, tok, patch)
	wantStatus(t, rec, http.StatusOK)
	var updated model.Job
	decode(t, rec, &updated)
	if updated.Title != "Senior Trainer" {
		t.Errorf("title = %q after retry", updated.Title)
	}
}

func TestUpdateJob_AdminMayEditAny(t *testing.T) {
	env := newTestEnv(t)
	ownerTok, _ := env.token(t, "owner@rocgym.com", "recruiter")
	adminTok, _ := env.token(t, "admin@rocgym.com", "admin")
	job := seedJob(t, env, ownerTok)

	rec := env.do(t, http.MethodPut, fmt.Sprintf("/jobs/%d", job.ID), adminTok,
		map[string]string{"location": "Brisbane"})
	wantStatus(t, rec, http.StatusOK)
	var updated model.Job
	decode(t, rec, &updated)
	if updated.Location != "Brisbane" {
		t.Errorf("location = %q", updated.Location)
	}
	// Untouched fields survive a partial patch.
	if updated.Title != "Personal Trainer" {
		t.Errorf("partial update clobbered title: %q", updated.Title)
	}
}

func TestDeleteJob_AdminMayDeleteAny(t *testing.T) {
	env := newTestEnv(t)
	ownerTok, _ := env.token(t, "owner@rocgym.com", "recruiter")
	adminTok, _ := env.token(t, "admin@rocgym.com", "admin")
	job := seedJob(t, env, ownerTok)

	path := fmt.Sprintf("/jobs/%d", job.ID)
	wantStatus(t, env.do(t, http.MethodDelete, path, adminTok, nil), http.StatusOK)
	wantStatus(t, env.do(t, http.MethodGet, path, "", nil), http.StatusNotFound)
}

func TestUpdateJob_NotFound(t *testing.T) {
	env := newTestEnv(t)
	adminTok, _ := env.token(t, "admin@rocgym.com", "admin")
	wantStatus(t, env.do(t, http.MethodPut, "/jobs/999", adminTok,
		map[string]string{"title": "x"}), http.StatusNotFound)
	wantStatus(t, env.do(t, http.MethodDelete, "/jobs/999", adminTok, nil), http.StatusNotFound)
}

// ── health ─────────────────────────────────────────────────────────────────

func TestHealth_ReflectsDatabaseState(t *testing.T) {
	env := newTestEnv(t)
	wantStatus(t, env.do(t, http.MethodGet, "/health", "", nil), http.StatusOK)

	env.pinger.err = fmt.Errorf("connection refused")
	wantStatus(t, env.do(t, http.MethodGet, "/health", "", nil), http.StatusServiceUnavailable)
}
