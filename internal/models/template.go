package models

import "time"

// InterviewTemplate is an ordered, immutable list of interview questions
// plus metadata. Questions never change after creation; sessions rely on
// that to derive their position in the interview from the transcript.
type InterviewTemplate struct {
	ID            string    `bson:"_id,omitempty" json:"id"`
	Title         string    `bson:"title" json:"title"`
	Description   string    `bson:"description" json:"description"`
	CreatedBy     string    `bson:"createdBy,omitempty" json:"created_by,omitempty"`
	IsPublic      bool      `bson:"isPublic" json:"is_public"`
	IsAIGenerated bool      `bson:"isAIGenerated" json:"is_ai_generated"`
	Questions     []string  `bson:"questions" json:"questions"`
	CreatedAt     time.Time `bson:"createdAt" json:"created_at"`
}

// OwnedBy reports whether the template belongs to the given account.
// Seeded/public templates have no owner and belong to nobody.
func (t *InterviewTemplate) OwnedBy(userID string) bool {
	return t.CreatedBy != "" && t.CreatedBy == userID
}
