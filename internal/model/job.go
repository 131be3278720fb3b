package model

import "time"

// Job represents a job posting as stored in the `jobs` table.  Every
// posting has exactly one owner (PostedBy); ownership gates updates and
// deletes for recruiters.  Views is a monotonically increasing read
// counter bumped atomically in SQL on every fetch-by-id, including guest
// reads.
//
// Fields:
//  ID          – primary key identifier.
//  CompanyName – employer name shown on the posting.
//  Title       – job title.
//  Description – free-text description of the role.
//  Location    – where the job is based.
//  WorkType    – e.g. "full-time", "part-time", "casual".
//  SalaryRange – optional advertised salary band.
//  Requirements – optional free-text requirements.
//  Views       – number of times the posting detail has been read.
//  PostedBy    – users.id of the recruiter/admin who created the posting.
//  DatePosted  – creation timestamp.
//  UpdatedBy   – users.id of the last editor (nil until first update).
//  UpdatedAt   – timestamp of the last edit (nil until first update).
type Job struct {
	ID           uint64     `json:"id"`            // jobs.id
	CompanyName  string     `json:"company_name"`  // jobs.company_name
	Title        string     `json:"title"`         // jobs.title
	Description  string     `json:"description"`   // jobs.description
	Location     string     `json:"location"`      // jobs.location
	WorkType     string     `json:"work_type"`     // jobs.work_type
	SalaryRange  string     `json:"salary_range"`  // jobs.salary_range
	Requirements string     `json:"requirements"`  // jobs.requirements
	Views        uint64     `json:"views"`         // jobs.views
	PostedBy     uint64     `json:"posted_by"`     // jobs.posted_by
	DatePosted   time.Time  `json:"date_posted"`   // jobs.date_posted
	UpdatedBy    *uint64    `json:"updated_by,omitempty"` // jobs.updated_by (nullable)
	UpdatedAt    *time.Time `json:"updated_at,omitempty"` // jobs.updated_at (nullable)
}
