// Package auth resolves a caller to a verified subject identifier or
// to the anonymous identity. Anonymous callers still get full engine
// results; their state is simply never persisted.
package auth

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/golang-jwt/jwt/v5"
)

// Subject identifies the caller. The zero value is anonymous.
type Subject struct {
	ID string
}

// Anonymous reports whether the subject carries no verified identity.
func (s Subject) Anonymous() bool {
	return s.ID == ""
}

// Config holds token verification settings.
type Config struct {
	// Secret is the HS256 signing secret shared with the token issuer.
	Secret string `env:"PULSE_JWT_SECRET"`
}

// LoadConfigFromEnv reads verification configuration from PULSE_* env
// variables.
func LoadConfigFromEnv() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse auth env: %w", err)
	}
	return cfg, nil
}

// Verifier validates HS256 bearer tokens and extracts the subject.
type Verifier struct {
	secret []byte
	now    func() time.Time
}

// NewVerifier creates a Verifier for the given shared secret.
func NewVerifier(secret string) (*Verifier, error) {
	if strings.TrimSpace(secret) == "" {
		return nil, errors.New("jwt secret is required")
	}
	return &Verifier{secret: []byte(secret), now: time.Now}, nil
}

// Verify parses and validates a raw token, returning the subject from
// the "sub" claim. Expired, malformed or foreign-algorithm tokens are
// errors.
func (v *Verifier) Verify(token string) (Subject, error) {
	token = strings.TrimSpace(token)
	if token == "" {
		return Subject{}, errors.New("token is empty")
	}

	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		return v.secret, nil
	},
		jwt.WithValidMethods([]string{"HS256"}),
		jwt.WithTimeFunc(v.now),
	)
	if err != nil {
		return Subject{}, fmt.Errorf("verify token: %w", err)
	}
	if claims.Subject == "" {
		return Subject{}, errors.New(`token is missing the "sub" claim`)
	}
	return Subject{ID: claims.Subject}, nil
}

// VerifyBearer verifies an Authorization header value of the form
// "Bearer <token>".
func (v *Verifier) VerifyBearer(header string) (Subject, error) {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return Subject{}, errors.New("authorization header is not a bearer token")
	}
	return v.Verify(strings.TrimPrefix(header, prefix))
}

// Resolve maps a token to a subject, treating any verification failure
// as anonymous. This mirrors the transient-guest behavior: a broken
// token means the answers are computed but not persisted.
func (v *Verifier) Resolve(token string) Subject {
	if v == nil || token == "" {
		return Subject{}
	}
	sub, err := v.Verify(token)
	if err != nil {
		return Subject{}
	}
	return sub
}
