// Package user holds the reserved user schema. No endpoint serves it
// yet; the collection exists for future auth and order-contact
// features.
package user

// User is the write model for the user collection.
type User struct {
	Name     string `bson:"name" json:"name" validate:"required"`
	Email    string `bson:"email,omitempty" json:"email,omitempty" validate:"omitempty,email"`
	Phone    string `bson:"phone,omitempty" json:"phone,omitempty"`
	Address  string `bson:"address,omitempty" json:"address,omitempty"`
	IsActive bool   `bson:"is_active" json:"is_active"`
}

// New returns a User with defaults applied.
func New(name string) User {
	return User{Name: name, IsActive: true}
}
