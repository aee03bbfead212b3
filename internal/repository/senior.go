package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/buddylink/buddylink-api/internal/model"
)

// SeniorRepository defines the interface for senior-profile operations.
// DeleteSenior exists for compensation only: undoing a profile insert after
// the linked credential record failed to be created.
type SeniorRepository interface {
	CreateSenior(ctx context.Context, senior *model.Senior) (*model.Senior, error)
	DeleteSenior(ctx context.Context, id string) error
}

const seniorCollection = "seniors"

type seniorMongoRepository struct {
	db *mongo.Database
}

// NewSeniorMongoRepository creates a MongoDB repository for senior profiles.
func NewSeniorMongoRepository(db *mongo.Database) SeniorRepository {
	return &seniorMongoRepository{db: db}
}

func (r *seniorMongoRepository) CreateSenior(ctx context.Context, senior *model.Senior) (*model.Senior, error) {
	senior.UpdatedAt = time.Now()

	result, err := r.db.Collection(seniorCollection).InsertOne(ctx, senior)
	if err != nil {
		return nil, err
	}

	if objectID, ok := result.InsertedID.(bson.ObjectID); ok {
		senior.ID = objectID
	} else {
		return nil, errors.New("failed to convert inserted ID to ObjectID")
	}

	return senior, nil
}

func (r *seniorMongoRepository) DeleteSenior(ctx context.Context, id string) error {
	objectID, err := bson.ObjectIDFromHex(id)
	if err != nil {
		return err
	}

	_, err = r.db.Collection(seniorCollection).DeleteOne(ctx, bson.M{"_id": objectID})
	return err
}
