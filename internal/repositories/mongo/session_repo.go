package mongo

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"voicehire/internal/models"
	"voicehire/internal/repositories"
)

// SessionRepo wraps the interview session collection. Sessions are
// replaced wholesale on save; concurrent writers get last-write-wins.
type SessionRepo struct{ col *mongo.Collection }

func NewSessionRepo(c *Client) (*SessionRepo, error) {
	db, err := c.DB()
	if err != nil {
		return nil, err
	}

	colName := os.Getenv("SESSIONS_COLLECTION")
	if colName == "" {
		colName = "interview_sessions"
	}

	col := db.Collection(colName)
	r := &SessionRepo{col: col}

	_, _ = r.col.Indexes().CreateOne(context.Background(), mongo.IndexModel{
		Keys: bson.D{{Key: "candidateEmail", Value: 1}},
	})

	return r, nil
}

func (r *SessionRepo) Create(ctx context.Context, s *models.InterviewSession) (*models.InterviewSession, error) {
	if s.Template == "" {
		return nil, errors.New("template reference required")
	}
	if s.ID == "" {
		s.ID = uuid.NewString()
	}
	if s.Status == "" {
		s.Status = models.StatusInProgress
	}
	s.CreatedAt = time.Now().UTC()
	if _, err := r.col.InsertOne(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

func (r *SessionRepo) FindByID(ctx context.Context, id string) (*models.InterviewSession, error) {
	var s models.InterviewSession
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&s)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repositories.ErrNotFound
		}
		return nil, err
	}
	return &s, nil
}

// Save replaces the whole session document.
func (r *SessionRepo) Save(ctx context.Context, s *models.InterviewSession) error {
	res, err := r.col.ReplaceOne(ctx, bson.M{"_id": s.ID}, s)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return repositories.ErrNotFound
	}
	return nil
}

// DeleteUnclaimedBefore removes recruiter-invited sessions that were never
// claimed and never answered, created before the cutoff. Used by the
// invite reaper job only; the interview core never deletes sessions.
func (r *SessionRepo) DeleteUnclaimedBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	filter := bson.M{
		"user":           bson.M{"$in": bson.A{nil, ""}},
		"candidateEmail": bson.M{"$nin": bson.A{nil, ""}},
		"status":         models.StatusInProgress,
		"createdAt":      bson.M{"$lt": cutoff},
		"transcript": bson.M{"$not": bson.M{
			"$elemMatch": bson.M{"speaker": models.SpeakerUser},
		}},
	}
	res, err := r.col.DeleteMany(ctx, filter)
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
