package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// User represents a sales-force member in the MongoDB database
// Collection: users
type User struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Email       string             `bson:"Email" json:"Email"`
	Password    string             `bson:"Password" json:"-"` // bcrypt hash, never exposed
	Role        string             `bson:"Role" json:"Role"`
	Department  string             `bson:"Department" json:"Department"`
	Firstname   string             `bson:"Firstname" json:"Firstname"`
	Lastname    string             `bson:"Lastname" json:"Lastname"`
	ReferenceID string             `bson:"ReferenceID" json:"ReferenceID"`
	CreatedAt   time.Time          `bson:"createdAt" json:"createdAt"`
}

// UserProfile is the part of a user that is safe to return from the API.
type UserProfile struct {
	ID          string    `json:"_id"`
	Email       string    `json:"Email"`
	Role        string    `json:"Role"`
	Department  string    `json:"Department"`
	Firstname   string    `json:"Firstname"`
	Lastname    string    `json:"Lastname"`
	ReferenceID string    `json:"ReferenceID"`
	CreatedAt   time.Time `json:"createdAt"`
}

// RegisterUserInput carries the registration form fields.
type RegisterUserInput struct {
	Email       string `json:"Email"`
	Password    string `json:"Password"`
	Role        string `json:"Role"`
	Department  string `json:"Department"`
	Firstname   string `json:"Firstname"`
	Lastname    string `json:"Lastname"`
	ReferenceID string `json:"ReferenceID"`
}

// LoginInput carries the sign-in form fields.
type LoginInput struct {
	Email      string `json:"Email"`
	Password   string `json:"Password"`
	Department string `json:"Department"`
}

// FullName joins first and last name.
func (u *User) FullName() string {
	switch {
	case u.Firstname == "":
		return u.Lastname
	case u.Lastname == "":
		return u.Firstname
	}
	return u.Firstname + " " + u.Lastname
}

// ToProfile converts a User to a UserProfile (safe for API responses)
func (u *User) ToProfile() UserProfile {
	return UserProfile{
		ID:          u.ID.Hex(),
		Email:       u.Email,
		Role:        u.Role,
		Department:  u.Department,
		Firstname:   u.Firstname,
		Lastname:    u.Lastname,
		ReferenceID: u.ReferenceID,
		CreatedAt:   u.CreatedAt,
	}
}
