package model

import "time"

// User represents an account record as stored in the `users` table.
// Passwords are only ever persisted as bcrypt hashes; the plaintext never
// leaves the registration/login handlers.  Role is fixed at registration:
// there is no elevation endpoint, admins are seeded out of band by the
// createadmin command.
//
// Fields:
//  ID           – primary key identifier of the user.
//  Email        – unique, lower-cased email address.
//  PasswordHash – bcrypt hashed password.
//  Role         – one of "admin", "recruiter" or "user".
//  CreatedAt    – timestamp of registration.
type User struct {
	ID           uint64    // users.id
	Email        string    // users.email
	PasswordHash string    // users.password_hash
	Role         string    // users.role
	CreatedAt    time.Time // users.created_at
}
