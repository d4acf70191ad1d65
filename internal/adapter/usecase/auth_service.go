package usecase

import (
	"context"
	"log/slog"

	"golang.org/x/crypto/bcrypt"

	"wise-ads/internal/core/domain"
	"wise-ads/internal/core/port"
)

// googleOAuthSentinel marks accounts created via Google sign-in. They
// carry no usable password hash and reject password login.
const googleOAuthSentinel = "GOOGLE_OAUTH"

const minPasswordLen = 6

// AuthService implements port.AuthUseCase. Hashing, signing and OAuth
// verification stay behind their collaborators; this service only
// sequences them.
type AuthService struct {
	users    port.UserRepo
	tokens   port.TokenIssuer
	identity port.IdentityVerifier
	logger   *slog.Logger
}

// NewAuthService wires an auth service.
func NewAuthService(users port.UserRepo, tokens port.TokenIssuer, identity port.IdentityVerifier, logger *slog.Logger) *AuthService {
	return &AuthService{users: users, tokens: tokens, identity: identity, logger: logger}
}

func (s *AuthService) issue(u *domain.User) (*port.AuthResult, error) {
	tok, err := s.tokens.Issue(u.ID, u.Email, u.Role)
	if err != nil {
		return nil, err
	}
	return &port.AuthResult{Token: tok, User: *u}, nil
}

// Register creates an account with the default role and signs it in.
func (s *AuthService) Register(ctx context.Context, email, password string) (*port.AuthResult, error) {
	if email == "" || password == "" {
		return nil, &domain.ValidationError{Message: "email and password are required"}
	}
	if len(password) < minPasswordLen {
		return nil, &domain.ValidationError{Message: "password must be at least 6 characters"}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	u, err := s.users.Create(ctx, email, string(hash))
	if err != nil {
		return nil, err
	}
	return s.issue(u)
}

// Login verifies a password and signs the user in. Unknown emails and
// wrong passwords produce the same error.
func (s *AuthService) Login(ctx context.Context, email, password string) (*port.AuthResult, error) {
	if email == "" || password == "" {
		return nil, &domain.ValidationError{Message: "email and password are required"}
	}

	u, hash, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, port.ErrInvalidCredentials
	}
	if hash == googleOAuthSentinel {
		return nil, port.ErrOAuthAccount
	}
	if bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) != nil {
		return nil, port.ErrInvalidCredentials
	}
	return s.issue(u)
}

// LoginWithGoogle verifies an identity token and signs the matching
// user in, creating the account on first login.
func (s *AuthService) LoginWithGoogle(ctx context.Context, credential string) (*port.AuthResult, error) {
	if credential == "" {
		return nil, &domain.ValidationError{Message: "credential is required"}
	}

	email, err := s.identity.VerifyIDToken(ctx, credential)
	if err != nil {
		s.logger.Warn("google credential rejected", slog.Any("error", err))
		return nil, port.ErrInvalidCredentials
	}

	u, _, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		u, err = s.users.Create(ctx, email, googleOAuthSentinel)
		if err != nil {
			return nil, err
		}
	}
	return s.issue(u)
}
