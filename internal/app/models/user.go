package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role is the user's role tag controlling authorization scope
type Role string

const (
	RoleStudent    Role = "student"
	RoleInstructor Role = "instructor"
	RoleAdmin      Role = "admin"
)

// IsValidRole reports whether the given string is one of the known roles.
// Validation happens at the boundary, not via parse failures.
func IsValidRole(role string) bool {
	switch Role(role) {
	case RoleStudent, RoleInstructor, RoleAdmin:
		return true
	}
	return false
}

// User defines a document in the 'users' collection
type User struct {
	ID        primitive.ObjectID `json:"id" bson:"_id,omitempty"`
	Email     string             `json:"email" bson:"email"` // stored lowercase, unique index
	Password  string             `json:"-" bson:"password"`  // bcrypt hash, excluded from JSON
	FirstName string             `json:"firstName" bson:"firstName"`
	LastName  string             `json:"lastName" bson:"lastName"`
	Role      Role               `json:"role" bson:"role"`
	CreatedAt time.Time          `json:"createdAt" bson:"createdAt"`
	UpdatedAt time.Time          `json:"updatedAt" bson:"updatedAt"`
}
