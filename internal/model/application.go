package model

import "time"

// ApplicationStatusPending is the status every new application starts in.
// Review transitions (reviewed/accepted/rejected) are driven by recruiters
// outside the submission flow.
const ApplicationStatusPending = "pending"

// Application represents a job application as stored in the
// `applications` table.  Applications are immutable once submitted and a
// (job, applicant) pair is unique; applying twice to the same posting is
// rejected with a conflict.
//
// Fields:
//  ID             – primary key identifier.
//  JobID          – posting being applied to.
//  ApplicantID    – users.id of the applicant (role "user").
//  FullName       – applicant's display name.
//  Email          – contact email supplied on the form.
//  ResumeURL      – link or path to the applicant's resume.
//  CoverLetter    – optional cover letter text.
//  AdditionalInfo – optional free-text extras.
//  Status         – review status, starts at "pending".
//  AppliedAt      – submission timestamp.
type Application struct {
	ID             uint64    `json:"id"`              // applications.id
	JobID          uint64    `json:"job_id"`          // applications.job_id
	ApplicantID    uint64    `json:"applicant_id"`    // applications.applicant_id
	FullName       string    `json:"full_name"`       // applications.full_name
	Email          string    `json:"email"`           // applications.email
	ResumeURL      string    `json:"resume_url"`      // applications.resume_url
	CoverLetter    string    `json:"cover_letter"`    // applications.cover_letter
	AdditionalInfo string    `json:"additional_info"` // applications.additional_info
	Status         string    `json:"status"`          // applications.status
	AppliedAt      time.Time `json:"applied_at"`      // applications.applied_at
}
