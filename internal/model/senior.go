package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Senior represents a senior profile document. It describes the person and
// is linked from a credential record, never the other way around.
type Senior struct {
	ID          bson.ObjectID `bson:"_id,omitempty"`
	Firstname   string        `bson:"firstname"`
	Lastname    string        `bson:"lastname"`
	Age         int           `bson:"age"`
	Phone       string        `bson:"phone"`
	City        string        `bson:"city"`
	Address     string        `bson:"address"`
	ContactPref string        `bson:"contactPref"`
	Language    string        `bson:"language"`
	Notes       string        `bson:"notes"`
	UpdatedAt   time.Time     `bson:"updated_at"`
}
