// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-time-diary/internal/config"
	"github.com/MKhiriev/go-time-diary/internal/logger"
	"github.com/MKhiriev/go-time-diary/internal/store"
	"github.com/MKhiriev/go-time-diary/internal/utils"
	"github.com/MKhiriev/go-time-diary/models"
	"golang.org/x/crypto/bcrypt"
)

// authService is the concrete implementation of AuthService.
// Passwords are stored as bcrypt hashes in the credentials collection,
// keyed by user id. Tokens are HS256 JWTs; access and reset tokens differ
// only in their audience and lifetime.
type authService struct {
	users    store.UserStorage
	notifier ResetNotifier

	tokenSignKey       string
	tokenIssuer        string
	tokenDuration      time.Duration
	resetTokenDuration time.Duration

	now    Clock
	logger *logger.Logger
}

func NewAuthService(users store.UserStorage, notifier ResetNotifier, cfg config.App, log *logger.Logger) AuthService {
	log.Debug().Msg("creating auth service")
	return &authService{
		users:              users,
		notifier:           notifier,
		tokenSignKey:       cfg.TokenSignKey,
		tokenIssuer:        cfg.TokenIssuer,
		tokenDuration:      cfg.TokenDuration,
		resetTokenDuration: cfg.ResetTokenDuration,
		now:                time.Now,
		logger:             log,
	}
}

// Register creates a user with an e-mail, a username and a password.
//
// Returns the persisted user or:
//   - ErrInvalidDataProvided if the e-mail or the password is empty.
//   - store.ErrEmailTaken / store.ErrUsernameTaken when already in use.
func (a *authService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if req.Email == "" || req.Password == "" {
		log.Error().Str("email", req.Email).Msg("invalid registration data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		log.Err(err).Str("func", "*authService.Register").Msg("error hashing password")
		return models.User{}, err
	}

	user, err := a.users.SaveUser(ctx, models.User{
		Email:     req.Email,
		Username:  req.Username,
		Name:      req.Name,
		Surname:   req.Surname,
		CreatedAt: a.now(),
	})
	if err != nil {
		log.Err(err).Str("func", "*authService.Register").Str("email", req.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	if err = a.users.SaveCredentials(ctx, models.Credentials{ID: user.ID, PasswordHash: hash, UpdatedAt: a.now()}); err != nil {
		log.Err(err).Str("func", "*authService.Register").Str("user_id", user.ID).Msg("error saving credentials, removing user")
		if delErr := a.users.DeleteUser(ctx, user.ID); delErr != nil {
			log.Err(delErr).Str("func", "*authService.Register").Str("user_id", user.ID).Msg("error removing user without credentials")
		}
		return models.User{}, fmt.Errorf("error saving credentials: %w", err)
	}

	return user, nil
}

// Login authenticates a user by e-mail and password. An unknown e-mail and
// a wrong password both yield ErrWrongPassword.
func (a *authService) Login(ctx context.Context, req models.LoginRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if req.Email == "" || req.Password == "" {
		log.Error().Str("email", req.Email).Msg("invalid login data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	user, err := a.users.FindByEmail(ctx, req.Email)
	if errors.Is(err, store.ErrDocumentNotFound) {
		log.Warn().Str("email", req.Email).Msg("login with unknown email")
		return models.User{}, ErrWrongPassword
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.Login").Str("email", req.Email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	creds, err := a.users.GetCredentials(ctx, user.ID)
	if errors.Is(err, store.ErrDocumentNotFound) {
		log.Warn().Str("user_id", user.ID).Msg("user has no credentials")
		return models.User{}, ErrWrongPassword
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.Login").Str("user_id", user.ID).Msg("error reading credentials")
		return models.User{}, fmt.Errorf("error reading credentials: %w", err)
	}

	if err = bcrypt.CompareHashAndPassword([]byte(creds.PasswordHash), []byte(req.Password)); err != nil {
		log.Warn().Str("user_id", user.ID).Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	return user, nil
}

func (a *authService) SignInAnonymously(ctx context.Context) (models.User, error) {
	user, err := a.users.SaveUser(ctx, models.User{Anonymous: true, CreatedAt: a.now()})
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "*authService.SignInAnonymously").Msg("error creating anonymous user")
		return models.User{}, fmt.Errorf("error creating anonymous user: %w", err)
	}

	return user, nil
}

func (a *authService) LinkAccount(ctx context.Context, userID string, req models.LinkAccountRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := a.users.GetUser(ctx, userID)
	if err != nil {
		log.Err(err).Str("func", "*authService.LinkAccount").Str("user_id", userID).Msg("error reading user")
		return models.User{}, fmt.Errorf("error reading user: %w", err)
	}
	if !user.Anonymous {
		return models.User{}, ErrAccountNotAnonymous
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		return models.User{}, err
	}

	user.Email = req.Email
	user.Username = req.Username
	user.Anonymous = false
	if err = a.users.UpdateUser(ctx, user); err != nil {
		log.Err(err).Str("func", "*authService.LinkAccount").Str("user_id", userID).Msg("error linking account")
		return models.User{}, fmt.Errorf("error linking account: %w", err)
	}

	if err = a.users.SaveCredentials(ctx, models.Credentials{ID: user.ID, PasswordHash: hash, UpdatedAt: a.now()}); err != nil {
		log.Err(err).Str("func", "*authService.LinkAccount").Str("user_id", userID).Msg("error saving credentials")
		return models.User{}, fmt.Errorf("error saving credentials: %w", err)
	}

	return user, nil
}

func (a *authService) RequestPasswordReset(ctx context.Context, req models.PasswordResetRequest) error {
	log := logger.FromContext(ctx)

	user, err := a.users.FindByEmail(ctx, req.Email)
	if errors.Is(err, store.ErrDocumentNotFound) {
		log.Info().Str("email", req.Email).Msg("password reset requested for unknown email")
		return nil
	}
	if err != nil {
		log.Err(err).Str("func", "*authService.RequestPasswordReset").Str("email", req.Email).Msg("user search by email failed")
		return fmt.Errorf("user search by email failed: %w", err)
	}

	creds, err := a.users.GetCredentials(ctx, user.ID)
	if err != nil {
		log.Err(err).Str("func", "*authService.RequestPasswordReset").Str("user_id", user.ID).Msg("error reading credentials")
		return fmt.Errorf("error reading credentials: %w", err)
	}

	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.ID, utils.AudiencePasswordReset, a.resetTokenDuration, a.tokenSignKey)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	// a newer request supersedes every token sent before it
	creds.ResetTokenID = token.RegisteredClaims.ID
	if err = a.users.SaveCredentials(ctx, creds); err != nil {
		log.Err(err).Str("func", "*authService.RequestPasswordReset").Str("user_id", user.ID).Msg("error saving reset token id")
		return fmt.Errorf("error saving credentials: %w", err)
	}

	if err = a.notifier.NotifyPasswordReset(ctx, user.Email, token); err != nil {
		log.Err(err).Str("func", "*authService.RequestPasswordReset").Str("user_id", user.ID).Msg("error sending reset token")
		return fmt.Errorf("error sending reset token: %w", err)
	}

	return nil
}

// ResetPassword exchanges a reset token for a new password. Only the token
// of the latest request is accepted, and only once.
func (a *authService) ResetPassword(ctx context.Context, req models.PasswordResetConfirm) error {
	log := logger.FromContext(ctx)

	token, err := utils.ValidateAndParseJWTToken(req.Token, a.tokenSignKey, a.tokenIssuer, utils.AudiencePasswordReset)
	if err != nil {
		log.Warn().Err(err).Msg("invalid password reset token")
		return ErrTokenIsExpiredOrInvalid
	}

	userID, err := token.GetUserID()
	if err != nil {
		return ErrTokenIsExpiredOrInvalid
	}

	creds, err := a.users.GetCredentials(ctx, userID)
	if err != nil && !errors.Is(err, store.ErrDocumentNotFound) {
		log.Err(err).Str("func", "*authService.ResetPassword").Str("user_id", userID).Msg("error reading credentials")
		return fmt.Errorf("error reading credentials: %w", err)
	}

	if jti := token.RegisteredClaims.ID; jti == "" || jti != creds.ResetTokenID {
		return ErrResetTokenUsed
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		return err
	}

	if err = a.users.SaveCredentials(ctx, models.Credentials{ID: userID, PasswordHash: hash, UpdatedAt: a.now()}); err != nil {
		log.Err(err).Str("func", "*authService.ResetPassword").Str("user_id", userID).Msg("error saving credentials")
		return fmt.Errorf("error saving credentials: %w", err)
	}

	return nil
}

// CreateToken issues a signed access token for the given user.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.ID, utils.AudienceAccess, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates a raw access token. Every validation failure is
// reported as ErrTokenIsExpiredOrInvalid.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer, utils.AudienceAccess)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}

func hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}
	return string(hash), nil
}

// logResetNotifier writes reset tokens to the log. It stands in for a mail
// gateway.
type logResetNotifier struct {
	logger *logger.Logger
}

func NewLogResetNotifier(log *logger.Logger) ResetNotifier {
	return &logResetNotifier{logger: log}
}

func (n *logResetNotifier) NotifyPasswordReset(ctx context.Context, email string, token models.Token) error {
	n.logger.Info().
		Str("email", email).
		Str("token", token.String()).
		Time("expires_at", token.ExpiresAt.Time).
		Msg("password reset token issued")
	return nil
}
