package models

// Role classifies an authenticated account.
type Role string

const (
	RoleCandidate Role = "CANDIDATE"
	RoleRecruiter Role = "RECRUITER"
	RoleAdmin     Role = "ADMIN"
)

// contains all valid roles selectable at signup
var ValidSignupRoles = map[Role]bool{
	RoleCandidate: true,
	RoleRecruiter: true,
}

// Actor is the resolved identity of the caller for one request.
// Every core operation takes it as an explicit parameter; there is no
// ambient request-scoped identity state outside the auth middleware.
type Actor struct {
	ID    string `json:"id"`
	Email string `json:"email"` // lower-cased by the auth layer
	Role  Role   `json:"role"`
}

func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// Recruiters and admins may author templates and conduct interviews.
func (a Actor) CanRecruit() bool {
	return a.Role == RoleRecruiter || a.Role == RoleAdmin
}
