package models

import "time"

// RegisterRequest creates an account with e-mail and password.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Username string `json:"username" validate:"required,notblank,max=64"`
	Name     string `json:"name" validate:"max=128"`
	Surname  string `json:"surname" validate:"max=128"`
}

// LoginRequest authenticates with e-mail and password.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// LinkAccountRequest turns an anonymous account into an e-mail account.
type LinkAccountRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Username string `json:"username" validate:"required,notblank,max=64"`
}

// PasswordResetRequest asks for a reset token to be issued for Email.
type PasswordResetRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// PasswordResetConfirm sets a new password using a reset token.
type PasswordResetConfirm struct {
	Token    string `json:"token" validate:"required"`
	Password string `json:"password" validate:"required,min=8"`
}

// ProfileUpdate changes the public profile of the current user.
type ProfileUpdate struct {
	Username string `json:"username" validate:"required,notblank,max=64"`
	Email    string `json:"email" validate:"omitempty,email"`
	Name     string `json:"name" validate:"max=128"`
	Surname  string `json:"surname" validate:"max=128"`
}

// DiaryRequest creates or updates a diary.
type DiaryRequest struct {
	Title       string `json:"title" validate:"required,notblank,max=256"`
	Description string `json:"description" validate:"max=2048"`
}

// PageContentRequest replaces the text of a page.
type PageContentRequest struct {
	Content string `json:"content"`
}

// ImageTransformRequest moves, scales or rotates an image.
type ImageTransformRequest struct {
	Offset   Offset  `json:"offset"`
	Scale    float64 `json:"scale" validate:"gt=0"`
	Rotation float64 `json:"rotation"`
}

// CapsuleRequest creates a time capsule. Receivers may be referenced by id
// or by e-mail; e-mails of registered users are resolved to ids.
type CapsuleRequest struct {
	Title          string    `json:"title" validate:"required,notblank,max=256"`
	Content        string    `json:"content" validate:"required,notblank"`
	Deadline       time.Time `json:"deadline" validate:"required"`
	ReceiverIDs    []string  `json:"receiverIds"`
	ReceiverEmails []string  `json:"receiverEmails" validate:"dive,email"`
	ReceiverPhones []string  `json:"receiverPhones" validate:"dive,e164"`
}

// LayoutReport carries the overflow offset measured by a renderer for one
// sub-page. Iteration must echo the value of the render request.
type LayoutReport struct {
	SubPageID string `json:"subPageId" validate:"required"`
	Iteration int    `json:"iteration"`
	Offset    int    `json:"offset" validate:"gte=0"`
}

// RenderRequest asks a renderer to lay out Content[Start:End] of a page and
// report where the text visually overflowed. Settled is true when the whole
// chain of the page is settled and nothing needs rendering.
type RenderRequest struct {
	PageID    string `json:"pageId"`
	SubPageID string `json:"subPageId,omitempty"`
	Start     int    `json:"start"`
	End       int    `json:"end"`
	Iteration int    `json:"iteration"`
	Text      string `json:"text"`
	Settled   bool   `json:"settled"`
}

// AuthResponse is returned by every sign-in endpoint. The token itself is
// sent in the Authorization header.
type AuthResponse struct {
	User User `json:"user"`
}

// PasswordResetResponse is returned when a reset token has been issued.
type PasswordResetResponse struct {
	Sent bool `json:"sent"`
}
