package repository

import (
	"context"
	"database/sql"
	"strings"
	"time"

	"github.com/rocgym/jobboard/internal/model"
)

const applicationColumns = "id, job_id, applicant_id, full_name, email, resume_url, cover_letter, additional_info, status, applied_at"

// ApplicationRepo persists job applications in the 'applications' table.
type ApplicationRepo struct{ DB *sql.DB }

func NewApplicationRepo(db *sql.DB) *ApplicationRepo { return &ApplicationRepo{DB: db} }

// Create inserts a new application.  The unique (job_id, applicant_id)
// index rejects a second application from the same user to the same
// posting; that violation surfaces as ErrAlreadyApplied.
func (r *ApplicationRepo) Create(ctx context.Context, a *model.Application) error {
	a.Status = model.ApplicationStatusPending
	a.AppliedAt = time.Now().UTC()
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO applications (job_id, applicant_id, full_name, email, resume_url, cover_letter, additional_info, status, applied_at) VALUES (?,?,?,?,?,?,?,?,?)",
		a.JobID, a.ApplicantID, a.FullName, a.Email, a.ResumeURL, a.CoverLetter, a.AdditionalInfo, a.Status, a.AppliedAt)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return ErrAlreadyApplied
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	a.ID = uint64(id)
	return nil
}

// ListByApplicant returns the applications a user has submitted.
func (r *ApplicationRepo) ListByApplicant(ctx context.Context, applicantID uint64) ([]model.Application, error) {
	return r.list(ctx,
		"SELECT "+applicationColumns+" FROM applications WHERE applicant_id=? ORDER BY applied_at DESC",
		applicantID)
}

// ListByRecruiter returns applications to every posting owned by the
// given recruiter.
func (r *ApplicationRepo) ListByRecruiter(ctx context.Context, recruiterID uint64) ([]model.Application, error) {
	return r.list(ctx,
		"SELECT a.id, a.job_id, a.applicant_id, a.full_name, a.email, a.resume_url, a.cover_letter, a.additional_info, a.status, a.applied_at "+
			"FROM applications a JOIN jobs j ON j.id = a.job_id WHERE j.posted_by=? ORDER BY a.applied_at DESC",
		recruiterID)
}

// ListAll returns every application; admin-only callers.
func (r *ApplicationRepo) ListAll(ctx context.Context) ([]model.Application, error) {
	return r.list(ctx, "SELECT "+applicationColumns+" FROM applications ORDER BY applied_at DESC")
}

// ListByJob returns the applications submitted to one posting.
func (r *ApplicationRepo) ListByJob(ctx context.Context, jobID uint64) ([]model.Application, error) {
	return r.list(ctx,
		"SELECT "+applicationColumns+" FROM applications WHERE job_id=? ORDER BY applied_at DESC",
		jobID)
}

func (r *ApplicationRepo) list(ctx context.Context, query string, args ...any) ([]model.Application, error) {
	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	apps := []model.Application{}
	for rows.Next() {
		var a model.Application
		if err := rows.Scan(&a.ID, &a.JobID, &a.ApplicantID, &a.FullName, &a.Email,
			&a.ResumeURL, &a.CoverLetter, &a.AdditionalInfo, &a.Status, &a.AppliedAt); err != nil {
			return nil, err
		}
		apps = append(apps, a)
	}
	return apps, rows.Err()
}
