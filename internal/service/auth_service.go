package service

import (
	"context"
	"net/mail"
	"strings"

	"github.com/spec-kit/lead-dashboard/internal/auth"
	"github.com/spec-kit/lead-dashboard/internal/config"
	"github.com/spec-kit/lead-dashboard/internal/domain"
	apperrors "github.com/spec-kit/lead-dashboard/pkg/util/errorutil"
)

const minPasswordLength = 8

// AuthService coordinates dashboard login and logout.
type AuthService struct {
	admin    domain.Admin
	tokenMgr *auth.TokenManager
	denylist auth.Denylist
}

// LoginResult is returned on successful login.
type LoginResult struct {
	Admin       domain.Admin
	AccessToken string
	Token       domain.Token
}

// NewAuthService builds the service, hashing the configured admin password.
func NewAuthService(cfg config.Config, denylist auth.Denylist) (*AuthService, error) {
	hash, err := auth.HashPassword(cfg.Auth.AdminPassword, cfg.Auth.BcryptCost)
	if err != nil {
		return nil, err
	}
	return &AuthService{
		admin: domain.Admin{
			ID:           "admin",
			Email:        strings.ToLower(strings.TrimSpace(cfg.Auth.AdminEmail)),
			PasswordHash: hash,
		},
		tokenMgr: auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.AccessTokenTTLMinutes),
		denylist: denylist,
	}, nil
}

// ValidateCredentials checks the login payload and returns field keyed messages.
func ValidateCredentials(email, password string) error {
	fields := apperrors.FieldErrors{}
	if !validEmail(email) {
		fields.Add("email", "Invalid email address")
	}
	if len(password) < minPasswordLength {
		fields.Add("password", "Password must be at least 8 characters")
	}
	return fields.Err()
}

// Login authenticates the admin and issues an access token.
func (s *AuthService) Login(_ context.Context, email, password string) (*LoginResult, error) {
	if err := ValidateCredentials(email, password); err != nil {
		return nil, err
	}
	if strings.ToLower(strings.TrimSpace(email)) != s.admin.Email {
		return nil, apperrors.NewUnauthorized("invalid credentials")
	}
	if err := auth.ComparePassword(s.admin.PasswordHash, password); err != nil {
		return nil, apperrors.NewUnauthorized("invalid credentials")
	}
	accessToken, meta, err := s.tokenMgr.GenerateToken(s.admin)
	if err != nil {
		return nil, err
	}
	return &LoginResult{Admin: s.admin, AccessToken: accessToken, Token: meta}, nil
}

// Logout revokes the caller's token until it expires.
func (s *AuthService) Logout(ctx context.Context, principal *auth.Principal) error {
	if principal == nil {
		return apperrors.NewUnauthorized("not authenticated")
	}
	if s.denylist == nil {
		return nil
	}
	return s.denylist.Revoke(ctx, principal.TokenID, principal.ExpiresAt)
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokenMgr
}

func validEmail(email string) bool {
	email = strings.TrimSpace(email)
	if email == "" {
		return false
	}
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return false
	}
	at := strings.LastIndex(email, "@")
	return at > 0 && strings.Contains(email[at+1:], ".")
}
