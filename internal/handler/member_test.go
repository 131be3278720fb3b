package handler_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/rocgym/jobboard/internal/model"
)

// GET /members is admin-only: guests get 401, authenticated non-admins 403.
func TestListMembers_AdminOnly(t *testing.T) {
	env := newTestEnv(t)
	env.members.members = []model.Member{
		{ID: 1, FullName: "Sam Rivera", Email: "sam@rocgym.com", MembershipType: "premium", JoinedAt: time.Now().UTC()},
		{ID: 2, FullName: "Jo Park", Email: "jo@rocgym.com", MembershipType: "standard", JoinedAt: time.Now().UTC()},
	}

	wantStatus(t, env.do(t, http.MethodGet, "/members", "", nil), http.StatusUnauthorized)

	userTok, _ := env.token(t, "u@rocgym.com", "user")
	wantStatus(t, env.do(t, http.MethodGet, "/members", userTok, nil), http.StatusForbidden)

	recTok, _ := env.token(t, "rec@rocgym.com", "recruiter")
	wantStatus(t, env.do(t, http.MethodGet, "/members", recTok, nil), http.StatusForbidden)

	adminTok, _ := env.token(t, "admin@rocgym.com", "admin")
	rec := env.do(t, http.MethodGet, "/members", adminTok, nil)
	wantStatus(t, rec, http.StatusOK)

	var resp struct {
		Members []model.Member `json:"members"`
		Count   int            `json:"count"`
	}
	decode(t, rec, &resp)
	if resp.Count != 2 || len(resp.Members) != 2 {
		t.Errorf("count = %d (len %d), want 2", resp.Count, len(resp.Members))
	}
	if resp.Members[0].FullName != "Sam Rivera" {
		t.Errorf("members = %+v", resp.Members)
	}
}
