// Package authz implements the role-based access control policy for the
// job board.  The policy is a pure decision function over (role, actor,
// action, resource) with no I/O; handlers evaluate it on every mutating or
// identity-scoped request.  Hiding a button in a client never substitutes
// for a server-side Can check.
package authz

// Role is the fixed capability level assigned to an account at
// registration.  Guests (no token) carry RoleGuest.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleRecruiter Role = "recruiter"
	RoleUser      Role = "user"
	RoleGuest     Role = "guest" // unauthenticated caller; never stored
)

// ValidRegistrationRole reports whether a role string may be chosen at
// registration time.  Guest is a synthetic role and cannot be registered.
func ValidRegistrationRole(s string) bool {
	switch Role(s) {
	case RoleAdmin, RoleRecruiter, RoleUser:
		return true
	}
	return false
}

// Action is a permissioned operation on a resource.
type Action string

const (
	ActionReadJobs         Action = "jobs:read"
	ActionCreateJob        Action = "jobs:create"
	ActionUpdateJob        Action = "jobs:update"
	ActionDeleteJob        Action = "jobs:delete"
	ActionApplyToJob       Action = "jobs:apply"
	ActionReadApplications Action = "applications:read"
	ActionReadMembers      Action = "members:read"
)

// Resource carries the resource-scoped facts a decision may depend on.
// For job mutations OwnerID is the posting's posted_by; actions that are
// not ownership-scoped pass a zero Resource.
type Resource struct {
	OwnerID uint64
}

// Can decides whether an actor may perform an action.  The table is
// default-deny: any action not explicitly allowed below is refused,
// including unknown actions.
//
//	action            guest  user  recruiter        admin
//	read jobs         yes    yes   yes              yes
//	apply to job      no     yes   no               no
//	create job        no     no    yes              yes
//	update job        no     no    iff owner        yes
//	delete job        no     no    iff owner        yes
//	read applications no     yes   yes (own jobs)   yes (all)
//	read members      no     no    no               yes
func Can(role Role, actorID uint64, action Action, res Resource) bool {
	switch action {
	case ActionReadJobs:
		return true
	case ActionApplyToJob:
		return role == RoleUser
	case ActionCreateJob:
		return role == RoleAdmin || role == RoleRecruiter
	case ActionUpdateJob, ActionDeleteJob:
		if role == RoleAdmin {
			return true
		}
		if role == RoleRecruiter {
			return actorID != 0 && res.OwnerID == actorID
		}
		return false
	case ActionReadApplications:
		return role == RoleAdmin || role == RoleRecruiter || role == RoleUser
	case ActionReadMembers:
		return role == RoleAdmin
	}
	return false
}

// Scope describes how wide an application listing may be for a role.
type Scope int

const (
	ScopeNone      Scope = iota // no access
	ScopeOwn                    // applications the actor submitted
	ScopeOwnedJobs              // applications to jobs the actor posted
	ScopeAll                    // every application
)

// ApplicationScope returns the listing scope for GET /applications: users
// see their own submissions, recruiters see applications to their
// postings, admins see everything.
func ApplicationScope(role Role) Scope {
	switch role {
	case RoleUser:
		return ScopeOwn
	case RoleRecruiter:
		return ScopeOwnedJobs
	case RoleAdmin:
		return ScopeAll
	}
	return ScopeNone
}
