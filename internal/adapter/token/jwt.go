package token

import (
	"errors"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"wise-ads/internal/config/configs"
	"wise-ads/internal/core/domain"
)

// ErrInvalidToken covers every parse or verification failure. Callers
// get no detail about which check failed.
var ErrInvalidToken = errors.New("invalid token")

// Claims is the token payload: the caller identity plus registered
// claims. The user id travels in the subject claim.
type Claims struct {
	Email string `json:"email"`
	Role  string `json:"role"`
	jwt.RegisteredClaims
}

// Issuer signs and verifies HMAC-SHA256 tokens carrying the caller
// identity. It implements port.TokenIssuer.
type Issuer struct {
	secret []byte
	ttl    time.Duration
}

// NewIssuer builds an issuer from auth configuration.
func NewIssuer(cfg configs.Auth) *Issuer {
	return &Issuer{secret: []byte(cfg.JWTSecret), ttl: cfg.TokenTTL}
}

// Issue signs a token for the given subject.
func (i *Issuer) Issue(userID int64, email, role string) (string, error) {
	now := time.Now()
	claims := Claims{
		Email: email,
		Role:  role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatInt(userID, 10),
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
}

// Parse verifies a token and returns the identity it asserts.
func (i *Issuer) Parse(raw string) (domain.Identity, error) {
	var claims Claims
	tok, err := jwt.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return i.secret, nil
	})
	if err != nil || !tok.Valid {
		return domain.Identity{}, ErrInvalidToken
	}
	id, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil {
		return domain.Identity{}, ErrInvalidToken
	}
	return domain.Identity{ID: id, Email: claims.Email, Role: claims.Role}, nil
}
