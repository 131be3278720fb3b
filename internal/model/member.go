package model

import "time"

// Member represents a gym member record as stored in the `members` table.
// Member data is only visible to admins.
type Member struct {
	ID             uint64    `json:"id"`              // members.id
	FullName       string    `json:"full_name"`       // members.full_name
	Email          string    `json:"email"`           // members.email
	MembershipType string    `json:"membership_type"` // members.membership_type
	JoinedAt       time.Time `json:"joined_at"`       // members.joined_at
}
