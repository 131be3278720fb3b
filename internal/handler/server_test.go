package handler_test

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"golang.org/x/crypto/bcrypt"

	"github.com/rocgym/jobboard/internal/auth"
	"github.com/rocgym/jobboard/internal/config"
	"github.com/rocgym/jobboard/internal/handler"
	"github.com/rocgym/jobboard/internal/router"
)

const testSecret = "test-secret"

// testEnv wires the real handlers, routers and middleware over in-memory
// fakes, so requests exercise the same code paths as production minus the
// database, Redis and broker.
type testEnv struct {
	e       *echo.Echo
	users   *fakeUsers
	jobs    *fakeJobs
	apps    *fakeApps
	members *fakeMembers
	pinger  *fakePinger
	events  *recordingPublisher
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	cfg := config.Config{
		JWTSecret:   testSecret,
		TokenTTLMin: 60,
		BcryptCost:  bcrypt.MinCost,
		CompanyName: "ROC Gym",
	}
	env := &testEnv{
		users:   newFakeUsers(),
		jobs:    newFakeJobs(),
		members: &fakeMembers{},
		pinger:  &fakePinger{},
		events:  &recordingPublisher{},
	}
	env.apps = newFakeApps(env.jobs)

	passthrough := func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error { return next(c) }
	}

	env.e = echo.New()
	router.RegisterPublic(env.e,
		handler.NewJobHandler(cfg, env.jobs),
		handler.NewHealthHandler(env.pinger),
		passthrough)
	router.RegisterAuth(env.e, handler.NewAuthHandler(cfg, env.users), testSecret, passthrough)
	router.RegisterJobs(env.e,
		handler.NewJobHandler(cfg, env.jobs),
		handler.NewApplicationHandler(env.jobs, env.apps, env.events),
		testSecret)
	router.RegisterMembers(env.e, handler.NewMemberHandler(env.members), testSecret)
	return env
}

// token registers an account with the given role and returns a Bearer
// token for it alongside the user id.
func (env *testEnv) token(t *testing.T, email, role string) (string, uint64) {
	t.Helper()
	id, err := env.users.Create(nil, email, "password1", role, bcrypt.MinCost)
	if err != nil {
		t.Fatalf("seed user %s: %v", email, err)
	}
	tok, err := auth.NewSessionToken(testSecret, id, email, role, 60)
	if err != nil {
		t.Fatalf("issue token: %v", err)
	}
	return tok.Token, id
}

// do performs a request against the in-process server.  A non-empty token
// is attached as a Bearer credential; body maps are sent as JSON.
func (env *testEnv) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("marshal body: %v", err)
		}
		reader = strings.NewReader(string(raw))
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	env.e.ServeHTTP(rec, req)
	return rec
}

// decode unmarshals a recorded JSON response into dst.
func decode(t *testing.T, rec *httptest.ResponseRecorder, dst any) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), dst); err != nil {
		t.Fatalf("decode response %q: %v", rec.Body.String(), err)
	}
}

func wantStatus(t *testing.T, rec *httptest.ResponseRecorder, want int) {
	t.Helper()
	if rec.Code != want {
		t.Fatalf("status = %d, want %d (body %s)", rec.Code, want, rec.Body.String())
	}
}
