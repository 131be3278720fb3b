package handler_test

// In-memory store fakes backing the HTTP surface tests.  They mirror the
// semantics of the MySQL repositories, including the sentinel errors and
// the atomic view counter.

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/rocgym/jobboard/internal/auth"
	"github.com/rocgym/jobboard/internal/model"
	"github.com/rocgym/jobboard/internal/repository"
)

type fakeUsers struct {
	mu     sync.Mutex
	nextID uint64
	byMail map[string]model.User
}

func newFakeUsers() *fakeUsers {
	return &fakeUsers{byMail: map[string]model.User{}}
}

func (f *fakeUsers) Create(_ context.Context, email, password, role string, cost int) (uint64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	email = strings.ToLower(strings.TrimSpace(email))
	if _, ok := f.byMail[email]; ok {
		return 0, repository.ErrEmailExists
	}
	hash, err := auth.HashPassword(password, cost)
	if err != nil {
		return 0, err
	}
	f.nextID++
	f.byMail[email] = model.User{
		ID:           f.nextID,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}
	return f.nextID, nil
}

func (f *fakeUsers) GetByEmail(_ context.Context, email string) (model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.byMail[strings.ToLower(strings.TrimSpace(email))]
	if !ok {
		return model.User{}, repository.ErrNotFound
	}
	return u, nil
}

func (f *fakeUsers) GetByID(_ context.Context, id uint64) (model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.byMail {
		if u.ID == id {
			return u, nil
		}
	}
	return model.User{}, repository.ErrNotFound
}

type fakeJobs struct {
	mu     sync.Mutex
	nextID uint64
	byID   map[uint64]model.Job
}

func newFakeJobs() *fakeJobs {
	return &fakeJobs{byID: map[uint64]model.Job{}}
}

func (f *fakeJobs) Create(_ context.Context, j *model.Job) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	j.ID = f.nextID
	j.Views = 0
	j.DatePosted = time.Now().UTC()
	f.byID[j.ID] = *j
	return nil
}

func (f *fakeJobs) List(_ context.Context, flt repository.JobFilter) ([]model.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []model.Job{}
	for _, j := range f.byID {
		if matches(j, flt) {
			out = append(out, j)
		}
	}
	return out, nil
}

// matches reimplements the SQL filter semantics: case-insensitive
// substring on title/location, exact work_type.
func matches(j model.Job, f repository.JobFilter) bool {
	if f.Title != "" && !strings.Contains(strings.ToLower(j.Title), strings.ToLower(f.Title)) {
		return false
	}
	if f.Location != "" && !strings.Contains(strings.ToLower(j.Location), strings.ToLower(f.Location)) {
		return false
	}
	if f.WorkType != "" && j.WorkType != f.WorkType {
		return false
	}
	return true
}

func (f *fakeJobs) GetByID(_ context.Context, id uint64) (model.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	j, ok := f.byID[id]
	if !ok {
		return model.Job{}, repository.ErrNotFound
	}
	return j, nil
}

func (f *fakeJobs) GetAndCountView(_ context.Context, id uint64) (model.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	j, ok := f.byID[id]
	if !ok {
		return model.Job{}, repository.ErrNotFound
	}
	j.Views++
	f.byID[id] = j
	return j, nil
}

func (f *fakeJobs) Update(_ context.Context, id, editorID uint64, p repository.JobPatch) (model.Job, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	j, ok := f.byID[id]
	if !ok {
		return model.Job{}, repository.ErrNotFound
	}
	apply := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	apply(&j.CompanyName, p.CompanyName)
	apply(&j.Title, p.Title)
	apply(&j.Description, p.Description)
	apply(&j.Location, p.Location)
	apply(&j.WorkType, p.WorkType)
	apply(&j.SalaryRange, p.SalaryRange)
	apply(&j.Requirements, p.Requirements)
	now := time.Now().UTC()
	j.UpdatedBy = &editorID
	j.UpdatedAt = &now
	f.byID[id] = j
	return j, nil
}

func (f *fakeJobs) Delete(_ context.Context, id uint64) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.byID[id]; !ok {
		return repository.ErrNotFound
	}
	delete(f.byID, id)
	return nil
}

type fakeApps struct {
	mu     sync.Mutex
	nextID uint64
	apps   []model.Application
	jobs   *fakeJobs
}

func newFakeApps(jobs *fakeJobs) *fakeApps {
	return &fakeApps{jobs: jobs}
}

func (f *fakeApps) Create(_ context.Context, a *model.Application) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, existing := range f.apps {
		if existing.JobID == a.JobID && existing.ApplicantID == a.ApplicantID {
			return repository.ErrAlreadyApplied
		}
	}
	f.nextID++
	a.ID = f.nextID
	a.Status = model.ApplicationStatusPending
	a.AppliedAt = time.Now().UTC()
	f.apps = append(f.apps, *a)
	return nil
}

func (f *fakeApps) ListByApplicant(_ context.Context, applicantID uint64) ([]model.Application, error) {
	return f.filter(func(a model.Application) bool { return a.ApplicantID == applicantID }), nil
}

func (f *fakeApps) ListByRecruiter(ctx context.Context, recruiterID uint64) ([]model.Application, error) {
	return f.filter(func(a model.Application) bool {
		j, err := f.jobs.GetByID(ctx, a.JobID)
		return err == nil && j.PostedBy == recruiterID
	}), nil
}

func (f *fakeApps) ListAll(_ context.Context) ([]model.Application, error) {
	return f.filter(func(model.Application) bool { return true }), nil
}

func (f *fakeApps) ListByJob(_ context.Context, jobID uint64) ([]model.Application, error) {
	return f.filter(func(a model.Application) bool { return a.JobID == jobID }), nil
}

func (f *fakeApps) filter(keep func(model.Application) bool) []model.Application {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := []model.Application{}
	for _, a := range f.apps {
		if keep(a) {
			out = append(out, a)
		}
	}
	return out
}

type fakeMembers struct {
	members []model.Member
}

func (f *fakeMembers) ListAll(_ context.Context) ([]model.Member, error) {
	return f.members, nil
}

type fakePinger struct{ err error }

func (f *fakePinger) PingContext(context.Context) error { return f.err }

type recordingPublisher struct {
	mu     sync.Mutex
	events []uint64 // application IDs seen
}

func (p *recordingPublisher) ApplicationSubmitted(_ model.Job, app model.Application) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, app.ID)
}
