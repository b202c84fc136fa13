// Package access decides whether an actor may read or mutate an
// interview session.
package access

import (
	"strings"

	"voicehire/internal/models"
)

// Decision is the outcome of an authorization check.
type Decision struct {
	Allowed bool

	// Claimed is true when this check bound a previously email-only
	// invited session to the actor's account. The caller must persist
	// the session for the claim to stick.
	Claimed bool
}

// Authorize grants access when the actor is the session owner, the
// invited candidate (matched by lower-cased email), the recruiter who
// scheduled the interview, or an admin. It never returns an error; the
// caller maps a denial to its own authorization failure.
//
// Side effect: the first successful access by the invited email while the
// session has no bound account claims the session by setting session.User.
// The transition is one-shot and idempotent — once User is set it matches
// the same actor on every later call.
func Authorize(session *models.InterviewSession, actor models.Actor) Decision {
	if session == nil {
		return Decision{}
	}

	email := strings.ToLower(actor.Email)
	isInvitedCandidate := session.CandidateEmail != "" && email != "" &&
		strings.ToLower(session.CandidateEmail) == email
	isSessionOwner := session.User != "" && actor.ID != "" && session.User == actor.ID
	isConductingRecruiter := session.ConductedBy != "" && actor.ID != "" && session.ConductedBy == actor.ID

	if !isInvitedCandidate && !isSessionOwner && !isConductingRecruiter && !actor.IsAdmin() {
		return Decision{}
	}

	decision := Decision{Allowed: true}
	if isInvitedCandidate && session.User == "" && actor.ID != "" {
		session.User = actor.ID
		decision.Claimed = true
	}
	return decision
}
