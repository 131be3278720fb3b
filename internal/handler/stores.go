package handler

// Store interfaces consumed by the handlers.  The repository package
// provides the MySQL implementations; tests substitute in-memory fakes.
// Handlers depend on these narrow interfaces rather than on *sql.DB so the
// full HTTP surface, including the authorization behavior, can be
// exercised with httptest.

import (
	"context"

	"github.com/rocgym/jobboard/internal/model"
	"github.com/rocgym/jobboard/internal/repository"
)

// UserStore persists and looks up accounts.
type UserStore interface {
	Create(ctx context.Context, email, password, role string, cost int) (uint64, error)
	GetByEmail(ctx context.Context, email string) (model.User, error)
	GetByID(ctx context.Context, id uint64) (model.User, error)
}

// JobStore persists job postings.  GetAndCountView records the read as a
// side effect; GetByID does not and is used for ownership checks.
type JobStore interface {
	Create(ctx context.Context, j *model.Job) error
	List(ctx context.Context, f repository.JobFilter) ([]model.Job, error)
	GetByID(ctx context.Context, id uint64) (model.Job, error)
	GetAndCountView(ctx context.Context, id uint64) (model.Job, error)
	Update(ctx context.Context, id, editorID uint64, p repository.JobPatch) (model.Job, error)
	Delete(ctx context.Context, id uint64) error
}

// ApplicationStore persists applications and serves the role-scoped
// listings.
type ApplicationStore interface {
	Create(ctx context.Context, a *model.Application) error
	ListByApplicant(ctx context.Context, applicantID uint64) ([]model.Application, error)
	ListByRecruiter(ctx context.Context, recruiterID uint64) ([]model.Application, error)
	ListAll(ctx context.Context) ([]model.Application, error)
	ListByJob(ctx context.Context, jobID uint64) ([]model.Application, error)
}

// MemberStore reads gym member records.
type MemberStore interface {
	ListAll(ctx context.Context) ([]model.Member, error)
}
