package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Volunteer represents a volunteer profile document. Availability holds the
// validated weekday/daypart slot labels exactly as submitted.
type Volunteer struct {
	ID              bson.ObjectID `bson:"_id,omitempty"`
	Firstname       string        `bson:"firstname"`
	Lastname        string        `bson:"lastname"`
	Phone           string        `bson:"phone"`
	City            string        `bson:"city"`
	BackgroundCheck string        `bson:"background_check"`
	Availability    []string      `bson:"availability"`
	UpdatedAt       time.Time     `bson:"updated_at"`
}
