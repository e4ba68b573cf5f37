package service

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"club-site/internal/domain"
)

// DefaultTokenTTL bounds a session when no TTL is configured.
const DefaultTokenTTL = time.Hour

// Claims is the payload embedded in a session token.
type Claims struct {
	UID  string      `json:"uid"`
	Role domain.Role `json:"role"`
	jwt.RegisteredClaims
}

// TokenService mints and validates signed session tokens. It holds the
// symmetric secret loaded once at startup and nothing else.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService builds a token service. The secret must be non-empty; an
// unsigned trust boundary is a startup error, not something to limp past.
func NewTokenService(secret string, ttl time.Duration) (*TokenService, error) {
	if secret == "" {
		return nil, errors.New("token signing secret is required")
	}
	if ttl == 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenService{
		secret: []byte(secret),
		ttl:    ttl,
	}, nil
}

// Issue signs a token asserting the subject and role for the configured TTL.
func (s *TokenService) Issue(subjectID string, role domain.Role) (string, error) {
	if subjectID == "" {
		return "", fmt.Errorf("%w: subject id is required", domain.ErrInvalidInput)
	}

	now := time.Now()
	claims := Claims{
		UID:  subjectID,
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Validate verifies the signature and expiry and returns the claims. It is
// side-effect-free and safe to call on every protected request.
func (s *TokenService) Validate(tokenString string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		return s.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrTokenInvalid
	}
	if !token.Valid {
		return nil, domain.ErrTokenInvalid
	}
	return claims, nil
}
