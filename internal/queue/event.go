// Package queue defines message payloads exchanged over the message broker.
package queue

// ApplicationSubmittedEvent is published when a job application is
// successfully stored.  It carries enough information for downstream
// consumers to log or notify recruiters without querying the primary
// database.
type ApplicationSubmittedEvent struct {
	ApplicationID uint64 `json:"application_id"`
	JobID         uint64 `json:"job_id"`
	JobTitle      string `json:"job_title"`
	CompanyName   string `json:"company_name"`
	ApplicantID   uint64 `json:"applicant_id"`
	FullName      string `json:"full_name"`
	Email         string `json:"email"`
	SubmittedAt   string `json:"submitted_at"`
}
