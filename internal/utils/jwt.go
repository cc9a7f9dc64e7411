// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/MKhiriev/go-time-diary/models"
)

// Token audiences. Access tokens authenticate API calls; reset tokens may
// only be exchanged for a new password.
const (
	AudienceAccess        = "access"
	AudiencePasswordReset = "password-reset"
)

// GenerateJWTToken creates a signed HMAC-SHA256 JWT token.
//
// The token includes the following standard claims:
//   - Issuer    (iss): identifies the service that issued the token
//   - Subject   (sub): the user id
//   - Audience  (aud): what the token may be used for
//   - IssuedAt  (iat): the current time
//   - ID        (jti): a random UUID, so two tokens issued in the same
//     second still differ
//   - ExpiresAt (exp): the current time plus tokenDuration
//
// All parameters are required.
//
//	token, err := utils.GenerateJWTToken("go-time-diary", userID, utils.AudienceAccess, time.Hour, "secret")
func GenerateJWTToken(issuer, userID, audience string, tokenDuration time.Duration, signKey string) (models.Token, error) {
	if issuer == "" || userID == "" || audience == "" || tokenDuration <= 0 || signKey == "" {
		return models.Token{}, errors.New("invalid params for generating JWT Token")
	}

	now := time.Now()
	claims := &jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   userID,
		Audience:  jwt.ClaimStrings{audience},
		ExpiresAt: jwt.NewNumericDate(now.Add(tokenDuration)),
		IssuedAt:  jwt.NewNumericDate(now),
		ID:        uuid.NewString(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(signKey))
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred during singing JWT token: %w", err)
	}

	return models.Token{Token: token, RegisteredClaims: *claims, SignedString: tokenString, UserID: userID}, nil
}

// ValidateAndParseJWTToken validates tokenString and extracts its claims.
//
// Validation includes the HS256 signature, the issuer, the expiration, the
// audience and the presence of a subject.
func ValidateAndParseJWTToken(tokenString, tokenSignKey, tokenIssuer, audience string) (models.Token, error) {
	parsed := &models.Token{}
	token, err := jwt.ParseWithClaims(tokenString, parsed, func(token *jwt.Token) (any, error) {
		return []byte(tokenSignKey), nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithAudience(audience),
		jwt.WithExpirationRequired(),
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	)
	if err != nil {
		return models.Token{}, fmt.Errorf("error occurred validating and parsing token: %w", err)
	}

	userID, err := parsed.GetUserID()
	if err != nil {
		return models.Token{}, err
	}

	return models.Token{Token: token, RegisteredClaims: parsed.RegisteredClaims, SignedString: tokenString, UserID: userID}, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Fields(authorizationHeader)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}
