package models

import "time"

// User represents a registered account in the system.
type User struct {
	ID           string    `bson:"_id,omitempty" json:"id"`
	Email        string    `bson:"email" json:"email"`
	Name         string    `bson:"name,omitempty" json:"name,omitempty"`
	PasswordHash string    `bson:"password" json:"-"`
	Role         Role      `bson:"role" json:"role"`
	CreatedAt    time.Time `bson:"createdAt" json:"created_at"`
}

// AsActor converts the stored account into the identity passed to core
// operations.
func (u *User) AsActor() Actor {
	return Actor{ID: u.ID, Email: u.Email, Role: u.Role}
}
