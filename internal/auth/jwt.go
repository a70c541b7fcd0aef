// Package auth validates the HS256 access tokens issued by the account
// service that fronts this API.
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// ErrInvalidToken wraps every validation failure.
var ErrInvalidToken = errors.New("invalid access token")

// Validator checks access tokens against a shared secret and issuer.
type Validator struct {
	secret []byte
	issuer string
	parser *jwt.Parser
}

// NewValidator creates a Validator. leeway absorbs clock skew between this
// service and the issuer when checking exp, nbf and iat.
func NewValidator(secret, issuer string, leeway time.Duration) *Validator {
	return &Validator{
		secret: []byte(secret),
		issuer: issuer,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithIssuer(issuer),
			jwt.WithExpirationRequired(),
			jwt.WithIssuedAt(),
			jwt.WithLeeway(leeway),
		),
	}
}

// claims is the access token payload: subject is the user ID.
type claims struct {
	jwt.RegisteredClaims
	Role string `json:"role,omitempty"`
}

// ValidateToken returns the subject user ID and role of a valid token.
func (v *Validator) ValidateToken(_ context.Context, token string) (uuid.UUID, string, error) {
	if token == "" {
		return uuid.Nil, "", fmt.Errorf("%w: empty", ErrInvalidToken)
	}

	var c claims
	if _, err := v.parser.ParseWithClaims(token, &c, func(*jwt.Token) (any, error) {
		return v.secret, nil
	}); err != nil {
		return uuid.Nil, "", fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	userID, err := uuid.Parse(c.Subject)
	if err != nil {
		return uuid.Nil, "", fmt.Errorf("%w: subject: %w", ErrInvalidToken, err)
	}

	return userID, c.Role, nil
}

// Issue signs a token for userID with the validator's secret and issuer.
// Used by operator tooling; end-user tokens come from the account service.
func (v *Validator) Issue(userID uuid.UUID, role string, ttl time.Duration) (string, error) {
	now := time.Now()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			Issuer:    v.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Role: role,
	}).SignedString(v.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}
