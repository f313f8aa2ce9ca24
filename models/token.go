package models

import "github.com/golang-jwt/jwt/v5"

// Token is an issued or verified bearer credential.
type Token struct {
	*jwt.Token `json:"-"`

	// SignedString is the compact header.payload.signature form sent to clients.
	SignedString string `json:"-"`

	// UserID mirrors the "sub" claim.
	UserID string `json:"-"`
}

func (t Token) String() string {
	return t.SignedString
}
