package access

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"voicehire/internal/models"
)

func invitedSession() *models.InterviewSession {
	return &models.InterviewSession{
		ID:             "sess-1",
		Template:       "tpl-1",
		ConductedBy:    "recruiter-1",
		CandidateEmail: "a@b.com",
		Status:         models.StatusInProgress,
	}
}

func TestAuthorize_SessionOwner(t *testing.T) {
	session := &models.InterviewSession{ID: "sess-1", User: "user-1"}

	decision := Authorize(session, models.Actor{ID: "user-1", Role: models.RoleCandidate})

	assert.True(t, decision.Allowed)
	assert.False(t, decision.Claimed)
}

func TestAuthorize_ConductingRecruiter(t *testing.T) {
	session := invitedSession()

	decision := Authorize(session, models.Actor{ID: "recruiter-1", Email: "r@corp.com", Role: models.RoleRecruiter})

	assert.True(t, decision.Allowed)
	assert.False(t, decision.Claimed)
	assert.Empty(t, session.User, "recruiter access must not claim the session")
}

func TestAuthorize_Admin(t *testing.T) {
	session := invitedSession()

	decision := Authorize(session, models.Actor{ID: "admin-1", Role: models.RoleAdmin})

	assert.True(t, decision.Allowed)
	assert.Empty(t, session.User)
}

func TestAuthorize_DeniedForStranger(t *testing.T) {
	session := invitedSession()

	decision := Authorize(session, models.Actor{ID: "other", Email: "other@b.com", Role: models.RoleCandidate})

	assert.False(t, decision.Allowed)
	assert.False(t, decision.Claimed)
	assert.Empty(t, session.User)
}

func TestAuthorize_InvitedEmailClaimsOnce(t *testing.T) {
	session := invitedSession()
	actor := models.Actor{ID: "user-9", Email: "a@b.com", Role: models.RoleCandidate}

	first := Authorize(session, actor)
	assert.True(t, first.Allowed)
	assert.True(t, first.Claimed)
	assert.Equal(t, "user-9", session.User)

	// Subsequent calls are no-ops: the session already matches the actor.
	second := Authorize(session, actor)
	assert.True(t, second.Allowed)
	assert.False(t, second.Claimed)
	assert.Equal(t, "user-9", session.User)
}

func TestAuthorize_EmailMatchIsCaseInsensitive(t *testing.T) {
	session := invitedSession()
	session.CandidateEmail = "A@B.com"

	decision := Authorize(session, models.Actor{ID: "user-9", Email: "a@b.com", Role: models.RoleCandidate})

	assert.True(t, decision.Allowed)
	assert.True(t, decision.Claimed)
}

func TestAuthorize_DifferentAccountDeniedAfterClaim(t *testing.T) {
	session := invitedSession()
	Authorize(session, models.Actor{ID: "user-9", Email: "a@b.com", Role: models.RoleCandidate})

	// Same role, different identity and email: no grounds for access.
	decision := Authorize(session, models.Actor{ID: "user-10", Email: "x@y.com", Role: models.RoleCandidate})

	assert.False(t, decision.Allowed)
	assert.Equal(t, "user-9", session.User)
}

func TestAuthorize_EmptyActorNeverMatchesEmptyFields(t *testing.T) {
	session := &models.InterviewSession{ID: "sess-1"}

	decision := Authorize(session, models.Actor{Role: models.RoleCandidate})

	assert.False(t, decision.Allowed)
}

func TestAuthorize_NilSession(t *testing.T) {
	decision := Authorize(nil, models.Actor{ID: "user-1", Role: models.RoleAdmin})
	assert.False(t, decision.Allowed)
}
