package models

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a signed JWT together with its registered claims.
//
// UserID caches the "sub" claim. SignedString is the compact form sent to
// clients in the Authorization header.
type Token struct {
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	SignedString string `json:"-"`

	UserID string `json:"-"`
}

// GetUserID returns the "sub" claim of the token.
func (t *Token) GetUserID() (string, error) {
	userID, err := t.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error extracting UserID from token: %w", err)
	}
	if userID == "" {
		return "", fmt.Errorf("error extracting UserID from token: empty subject")
	}

	return userID, nil
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}
