// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// User is the owner of diaries and the sender or receiver of time capsules.
//
// Username and Email are unique across all users. Uniqueness is enforced by
// index documents maintained by the user storage, not by the document store.
type User struct {
	// ID is the document id. It is never part of the stored body.
	ID string `json:"id"`

	Email    string `json:"email"`
	Username string `json:"username"`
	Name     string `json:"name"`
	Surname  string `json:"surname"`

	// Anonymous is true for accounts created by anonymous sign-in that
	// have not been linked to an e-mail and password yet.
	Anonymous bool `json:"anonymous"`

	// DiaryIDs is the authoritative, ordered list of the user's diaries.
	DiaryIDs []string `json:"diaryIds"`

	SentCapsuleIDs     []string `json:"sentCapsuleIds"`
	ReceivedCapsuleIDs []string `json:"receivedCapsuleIds"`

	CreatedAt time.Time `json:"createdAt"`
}

// Credentials holds the password hash of a user. It lives in its own
// collection so that user documents returned to clients never carry secrets.
type Credentials struct {
	// ID equals the owning user's id.
	ID           string    `json:"id"`
	PasswordHash string    `json:"passwordHash"`
	UpdatedAt    time.Time `json:"updatedAt"`
	// ResetTokenID is the jti of the one reset token that may still be
	// exchanged for a new password. Empty when no reset is pending.
	ResetTokenID string `json:"resetTokenId,omitempty"`
}

// IndexEntry maps a unique value (username or e-mail) to the user owning it.
type IndexEntry struct {
	ID     string `json:"id"`
	UserID string `json:"userId"`
}
