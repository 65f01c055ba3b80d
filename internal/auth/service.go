package auth

import (
	"context"

	"github.com/crm-portal/crm_portal/internal/config"
)

// Credentials is the username/password pair submitted at login. It is never
// persisted; the API surface only checks both values for presence.
type Credentials struct {
	Username string
	Password string
}

// LoginResult carries the issued token and a human-readable status message.
type LoginResult struct {
	Token   string
	Message string
}

// Issuer produces a bearer token for authenticated credentials. The current
// deployment fronts an external identity provider that is not integrated yet,
// so the issuing strategy lives behind this interface and callers never see
// how the token is produced.
type Issuer interface {
	Issue(ctx context.Context, creds Credentials) (string, error)
}

// StaticIssuer hands out a single fixed token to every caller.
type StaticIssuer struct {
	Token string
}

// Issue returns the configured token. It assumes the caller has already
// verified that both credential fields are non-blank.
func (i StaticIssuer) Issue(_ context.Context, _ Credentials) (string, error) {
	return i.Token, nil
}

// Service manages the login flow.
type Service struct {
	issuer Issuer
}

// NewService builds an auth service around the given issuer.
func NewService(issuer Issuer) *Service {
	return &Service{issuer: issuer}
}

// NewStaticService wires a Service to the fixed token from configuration.
func NewStaticService(cfg config.Config) *Service {
	return NewService(StaticIssuer{Token: cfg.AcceptedToken})
}

// Login issues a token for the supplied credentials. Blank-credential
// rejection happens at the HTTP layer before this point.
func (s *Service) Login(ctx context.Context, creds Credentials) (LoginResult, error) {
	token, err := s.issuer.Issue(ctx, creds)
	if err != nil {
		return LoginResult{}, err
	}
	return LoginResult{Token: token, Message: "Login successful"}, nil
}
