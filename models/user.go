package models

import "time"

// User represents an account entity used for authentication and authorization.
// Password holds the client-supplied digest and is never serialized.
type User struct {
	// ID is the server-assigned unique identifier of the user.
	ID string `json:"id"`

	// Email is the unique user identifier used during sign in.
	Email string `json:"email"`

	// Password is a fixed-length opaque digest computed by the client.
	// It is stored and compared byte-for-byte.
	Password string `json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Principal is the authenticated identity attached to a request after
// its bearer credential has been verified. It lives in the request context
// only and is never persisted.
type Principal struct {
	UserID string
}
