package repository

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"github.com/rocgym/jobboard/internal/model"
)

const jobColumns = "id, company_name, title, description, location, work_type, salary_range, requirements, views, posted_by, date_posted, updated_by, updated_at"

// JobFilter narrows a job listing.  Title and Location match as
// case-insensitive substrings; WorkType matches exactly.  Empty fields do
// not filter.
type JobFilter struct {
	Title    string
	Location string
	WorkType string
}

// Where builds the WHERE clause and arguments for the filter.  It is a
// separate method so the matching semantics can be unit tested without a
// database.
func (f JobFilter) Where() (string, []any) {
	conds := []string{}
	args := []any{}
	if f.Title != "" {
		conds = append(conds, "LOWER(title) LIKE ?")
		args = append(args, "%"+strings.ToLower(f.Title)+"%")
	}
	if f.Location != "" {
		conds = append(conds, "LOWER(location) LIKE ?")
		args = append(args, "%"+strings.ToLower(f.Location)+"%")
	}
	if f.WorkType != "" {
		conds = append(conds, "work_type = ?")
		args = append(args, f.WorkType)
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// JobPatch carries the mutable posting fields for an update.  Nil pointers
// leave the column untouched.
type JobPatch struct {
	CompanyName  *string
	Title        *string
	Description  *string
	Location     *string
	WorkType     *string
	SalaryRange  *string
	Requirements *string
}

// JobRepo persists job postings in the 'jobs' table.
type JobRepo struct{ DB *sql.DB }

func NewJobRepo(db *sql.DB) *JobRepo { return &JobRepo{DB: db} }

// Create inserts a new posting.  PostedBy, CompanyName and the optional
// fields must already be set on the job; the repository assigns ID,
// DatePosted and a zero view count.
func (r *JobRepo) Create(ctx context.Context, j *model.Job) error {
	j.DatePosted = time.Now().UTC()
	j.Views = 0
	res, err := r.DB.ExecContext(ctx,
		"INSERT INTO jobs (company_name, title, description, location, work_type, salary_range, requirements, views, posted_by, date_posted) VALUES (?,?,?,?,?,?,?,0,?,?)",
		j.CompanyName, j.Title, j.Description, j.Location, j.WorkType, j.SalaryRange, j.Requirements, j.PostedBy, j.DatePosted)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	j.ID = uint64(id)
	return nil
}

// List returns all postings matching the filter, newest first.
func (r *JobRepo) List(ctx context.Context, f JobFilter) ([]model.Job, error) {
	where, args := f.Where()
	rows, err := r.DB.QueryContext(ctx,
		"SELECT "+jobColumns+" FROM jobs"+where+" ORDER BY date_posted DESC", args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	jobs := []model.Job{}
	for rows.Next() {
		j, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, j)
	}
	return jobs, rows.Err()
}

// GetByID fetches a posting without touching the view counter.  Handlers
// use it for ownership checks before mutations.
func (r *JobRepo) GetByID(ctx context.Context, id uint64) (model.Job, error) {
	row := r.DB.QueryRowContext(ctx, "SELECT "+jobColumns+" FROM jobs WHERE id=? LIMIT 1", id)
	j, err := scanJob(row)
	if errors.Is(err, sql.ErrNoRows) {
		return model.Job{}, ErrNotFound
	}
	return j, err
}

// GetAndCountView fetches a posting and records the read.  The counter is
// bumped with a single relative UPDATE so concurrent reads cannot lose
// increments to a read-modify-write race.
func (r *JobRepo) GetAndCountView(ctx context.Context, id uint64) (model.Job, error) {
	res, err := r.DB.ExecContext(ctx, "UPDATE jobs SET views = views + 1 WHERE id=?", id)
	if err != nil {
		return model.Job{}, err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return model.Job{}, ErrNotFound
	}
	return r.GetByID(ctx, id)
}

// Update applies a patch to a posting and stamps updated_by/updated_at.
// It returns the refreshed row, or ErrNotFound when the id is unknown.
// Ownership is the caller's concern; the repository applies whatever it is
// handed.
func (r *JobRepo) Update(ctx context.Context, id, editorID uint64, p JobPatch) (model.Job, error) {
	sets := []string{}
	args := []any{}
	appendSet := func(col string, v *string) {
		if v != nil {
			sets = append(sets, col+"=?")
			args = append(args, *v)
		}
	}
	appendSet("company_name", p.CompanyName)
	appendSet("title", p.Title)
	appendSet("description", p.Description)
	appendSet("location", p.Location)
	appendSet("work_type", p.WorkType)
	appendSet("salary_range", p.SalaryRange)
	appendSet("requirements", p.Requirements)

	sets = append(sets, "updated_by=?", "updated_at=?")
	args = append(args, editorID, time.Now().UTC(), id)

	res, err := r.DB.ExecContext(ctx,
		"UPDATE jobs SET "+strings.Join(sets, ", ")+" WHERE id=?", args...)
	if err != nil {
		return model.Job{}, err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		// The pool is opened with clientFoundRows, so this is rows matched,
		// not rows changed: zero means the id is gone, even when the patch
		// is a no-op replay of the current values.
		return model.Job{}, ErrNotFound
	}
	return r.GetByID(ctx, id)
}

// Delete removes a posting.  Applications referencing it are removed by
// the schema's ON DELETE CASCADE.
func (r *JobRepo) Delete(ctx context.Context, id uint64) error {
	res, err := r.DB.ExecContext(ctx, "DELETE FROM jobs WHERE id=?", id)
	if err != nil {
		return err
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return ErrNotFound
	}
	return nil
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface{ Scan(dest ...any) error }

func scanJob(s scanner) (model.Job, error) {
	var (
		j         model.Job
		updatedBy sql.NullInt64
		updatedAt sql.NullTime
	)
	err := s.Scan(&j.ID, &j.CompanyName, &j.Title, &j.Description, &j.Location,
		&j.WorkType, &j.SalaryRange, &j.Requirements, &j.Views, &j.PostedBy,
		&j.DatePosted, &updatedBy, &updatedAt)
	if err != nil {
		return model.Job{}, err
	}
	if updatedBy.Valid {
		v := uint64(updatedBy.Int64)
		j.UpdatedBy = &v
	}
	if updatedAt.Valid {
		t := updatedAt.Time
		j.UpdatedAt = &t
	}
	return j, nil
}
