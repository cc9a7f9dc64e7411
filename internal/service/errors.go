package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrResetTokenUsed          = errors.New("password reset token was already used")

	ErrAccountNotAnonymous   = errors.New("account is already linked")
	ErrVersionIsNotSpecified = errors.New("app version is not specified")

	// ErrForbidden is returned when the user does not own the entity.
	ErrForbidden = errors.New("access to the requested entity is forbidden")

	ErrCapsuleSealed    = errors.New("time capsule is still sealed")
	ErrDeadlineInPast   = errors.New("capsule deadline must be in the future")
	ErrReceiverNotFound = errors.New("capsule receiver does not exist")
	ErrInvalidImage     = errors.New("uploaded file is not a supported image")
	ErrInvalidTimeZone  = errors.New("invalid time zone")
)
