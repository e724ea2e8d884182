package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/precify/pricing-api/internal/core/domain"
)

const defaultTokenTTL = 8 * time.Hour

// TokenService issues and verifies self-contained HS256 bearer tokens.
// Verification is pure computation: no store lookup, no revocation list.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue signs a token carrying the identity claims, expiring ttl from now.
func (s *TokenService) Issue(identity domain.Identity) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"id":       identity.ID,
		"username": identity.Username,
		"role":     identity.Role,
		"iat":      now.Unix(),
		"exp":      now.Add(s.ttl).Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify validates signature and expiry and decodes the identity. It
// returns domain.ErrTokenMissing for empty input, domain.ErrTokenExpired
// past the exp claim, and domain.ErrTokenInvalid for everything else
// (bad signature, wrong algorithm, malformed token). Claims are only read
// after the signature has been validated.
func (s *TokenService) Verify(raw string) (domain.Identity, error) {
	if raw == "" {
		return domain.Identity{}, domain.ErrTokenMissing
	}

	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(raw, claims, func(token *jwt.Token) (interface{}, error) {
		if token.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return domain.Identity{}, domain.ErrTokenExpired
		}
		return domain.Identity{}, domain.ErrTokenInvalid
	}
	if !tkn.Valid {
		return domain.Identity{}, domain.ErrTokenInvalid
	}

	id, _ := claims["id"].(string)
	username, _ := claims["username"].(string)
	role, _ := claims["role"].(string)
	return domain.Identity{ID: id, Username: username, Role: role}, nil
}
