package repository

import (
	"context"
	"database/sql"

	"github.com/rocgym/jobboard/internal/model"
)

// MemberRepo reads gym member records from the 'members' table.  Members
// are managed by a separate back-office system; this service only lists
// them for admins.
type MemberRepo struct{ DB *sql.DB }

func NewMemberRepo(db *sql.DB) *MemberRepo { return &MemberRepo{DB: db} }

// ListAll returns every member record.
func (r *MemberRepo) ListAll(ctx context.Context) ([]model.Member, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id, full_name, email, membership_type, joined_at FROM members ORDER BY joined_at DESC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	members := []model.Member{}
	for rows.Next() {
		var m model.Member
		if err := rows.Scan(&m.ID, &m.FullName, &m.Email, &m.MembershipType, &m.JoinedAt); err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, rows.Err()
}
