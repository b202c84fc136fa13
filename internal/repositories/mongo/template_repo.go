package mongo

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"voicehire/internal/models"
	"voicehire/internal/repositories"
)

// TemplateRepo wraps the interview template collection.
type TemplateRepo struct{ col *mongo.Collection }

func NewTemplateRepo(c *Client) (*TemplateRepo, error) {
	db, err := c.DB()
	if err != nil {
		return nil, err
	}

	colName := os.Getenv("TEMPLATES_COLLECTION")
	if colName == "" {
		colName = "interview_templates"
	}

	col := db.Collection(colName)
	r := &TemplateRepo{col: col}

	_, _ = r.col.Indexes().CreateOne(context.Background(), mongo.IndexModel{
		Keys: bson.D{{Key: "createdBy", Value: 1}},
	})

	return r, nil
}

// Create inserts a new template. Questions are immutable after this point.
func (r *TemplateRepo) Create(ctx context.Context, t *models.InterviewTemplate) (*models.InterviewTemplate, error) {
	if t.Title == "" {
		return nil, errors.New("title required")
	}
	if len(t.Questions) == 0 {
		return nil, errors.New("questions array cannot be empty")
	}
	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	t.CreatedAt = time.Now().UTC()
	if _, err := r.col.InsertOne(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

func (r *TemplateRepo) FindByID(ctx context.Context, id string) (*models.InterviewTemplate, error) {
	var t models.InterviewTemplate
	err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&t)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repositories.ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

func (r *TemplateRepo) FindByTitle(ctx context.Context, title string) (*models.InterviewTemplate, error) {
	var t models.InterviewTemplate
	err := r.col.FindOne(ctx, bson.M{"title": title}).Decode(&t)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repositories.ErrNotFound
		}
		return nil, err
	}
	return &t, nil
}

// ListVisible retrieves the templates an account may browse: public ones
// plus its own.
func (r *TemplateRepo) ListVisible(ctx context.Context, userID string) ([]models.InterviewTemplate, error) {
	filter := bson.M{"isPublic": true}
	if userID != "" {
		filter = bson.M{"$or": bson.A{
			bson.M{"isPublic": true},
			bson.M{"createdBy": userID},
		}}
	}
	return r.list(ctx, filter)
}

// ListByOwner retrieves the templates a recruiter has authored.
func (r *TemplateRepo) ListByOwner(ctx context.Context, userID string) ([]models.InterviewTemplate, error) {
	return r.list(ctx, bson.M{"createdBy": userID})
}

func (r *TemplateRepo) list(ctx context.Context, filter bson.M) ([]models.InterviewTemplate, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cur, err := r.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []models.InterviewTemplate
	if err := cur.All(ctx, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// SetPublic toggles template visibility.
func (r *TemplateRepo) SetPublic(ctx context.Context, id string, public bool) (*models.InterviewTemplate, error) {
	var updated models.InterviewTemplate
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	err := r.col.FindOneAndUpdate(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"isPublic": public}},
		opts,
	).Decode(&updated)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, repositories.ErrNotFound
		}
		return nil, err
	}
	return &updated, nil
}

func (r *TemplateRepo) Delete(ctx context.Context, id string) error {
	res, err := r.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return repositories.ErrNotFound
	}
	return nil
}
