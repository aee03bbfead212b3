package repository

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"

	"github.com/buddylink/buddylink-api/internal/model"
)

// VolunteerRepository defines the interface for volunteer-profile operations.
type VolunteerRepository interface {
	CreateVolunteer(ctx context.Context, volunteer *model.Volunteer) (*model.Volunteer, error)
}

const volunteerCollection = "volunteers"

type volunteerMongoRepository struct {
	db *mongo.Database
}

// NewVolunteerMongoRepository creates a MongoDB repository for volunteer profiles.
func NewVolunteerMongoRepository(db *mongo.Database) VolunteerRepository {
	return &volunteerMongoRepository{db: db}
}

func (r *volunteerMongoRepository) CreateVolunteer(
	ctx context.Context,
	volunteer *model.Volunteer,
) (*model.Volunteer, error) {
	volunteer.UpdatedAt = time.Now()

	result, err := r.db.Collection(volunteerCollection).InsertOne(ctx, volunteer)
	if err != nil {
		return nil, err
	}

	if objectID, ok := result.InsertedID.(bson.ObjectID); ok {
		volunteer.ID = objectID
	} else {
		return nil, errors.New("failed to convert inserted ID to ObjectID")
	}

	return volunteer, nil
}
