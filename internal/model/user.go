package model

import (
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Role tags the kind of profile a user account is linked to.
type Role string

const (
	RoleSenior    Role = "senior"
	RoleVolunteer Role = "volunteer"
)

// User represents a credential record. The email is stored normalized
// (trimmed, lowercased) and is unique across the collection.
type User struct {
	ID           bson.ObjectID `bson:"_id,omitempty"`
	Email        string        `bson:"email"`
	PasswordHash string        `bson:"password_hash"`
	Role         Role          `bson:"type"`
	SeniorID     bson.ObjectID `bson:"senior_id,omitempty"`
	CreatedAt    time.Time     `bson:"created_at"`
}
