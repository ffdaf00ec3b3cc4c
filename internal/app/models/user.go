package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Address struct {
	Street     string `bson:"street,omitempty" json:"street,omitempty"`
	City       string `bson:"city,omitempty" json:"city,omitempty"`
	District   string `bson:"district,omitempty" json:"district,omitempty"`
	PostalCode string `bson:"postalCode,omitempty" json:"postal_code,omitempty"`
	Country    string `bson:"country,omitempty" json:"country,omitempty"`
}

// UserRegistrationRecord is the decoded registration form. Extraction never
// fails on a bad field; it fills Errors per field and flips Valid instead,
// so the caller can render granular feedback.
type UserRegistrationRecord struct {
	Name      string            `bson:"name" json:"name"`
	UserID    string            `bson:"userId" json:"user_id"`
	Address   Address           `bson:"address" json:"address"`
	Emails    []string          `bson:"emails" json:"emails"`
	Phones    []string          `bson:"phones" json:"phones"`
	Gender    string            `bson:"gender,omitempty" json:"gender,omitempty"`
	Height    *float64          `bson:"height,omitempty" json:"height"`
	Weight    *float64          `bson:"weight,omitempty" json:"weight"`
	BirthDate string            `bson:"birthDate,omitempty" json:"birth_date,omitempty"`
	Valid     bool              `bson:"-" json:"valid"`
	Errors    map[string]string `bson:"-" json:"errors,omitempty"`
}

// User is the persisted profile document for a registration that passed
// field validation.
type User struct {
	ID        primitive.ObjectID     `bson:"_id,omitempty" json:"id"`
	Profile   UserRegistrationRecord `bson:"profile" json:"profile"`
	CreatedAt time.Time              `bson:"createdAt" json:"created_at"`
	UpdatedAt time.Time              `bson:"updatedAt" json:"updated_at"`
}
