// Package auth issues and verifies the HS256 bearer tokens handed out at
// login.
package auth

import (
	"fmt"
	"maps"
	"time"

	"github.com/dmitrijs2005/notekeeper/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenTTL is used when no positive lifetime is configured.
const DefaultTokenTTL = 30 * time.Minute

// ClaimSubject carries the user id.
const ClaimSubject = "sub"

type TokenService struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

func NewTokenService(secret string, ttl time.Duration) (*TokenService, error) {
	if secret == "" {
		return nil, fmt.Errorf("%w: empty token secret", common.ErrorConfig)
	}
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl, now: time.Now}, nil
}

// Issue signs claims with an exp of now plus the service lifetime.
func (s *TokenService) Issue(claims map[string]any) (string, error) {
	return s.IssueWithTTL(claims, s.ttl)
}

// IssueWithTTL signs claims with an explicit lifetime. A non-positive ttl
// produces a token that Verify never accepts.
func (s *TokenService) IssueWithTTL(claims map[string]any, ttl time.Duration) (string, error) {
	mc := jwt.MapClaims{}
	maps.Copy(mc, claims)
	mc["exp"] = jwt.NewNumericDate(s.now().Add(ttl))

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, mc).SignedString(s.secret)
	if err != nil {
		return "", err
	}
	return token, nil
}

// Verify returns the claims of a token signed with this service's secret
// using HS256 whose exp lies strictly in the future. Any failure yields
// (nil, false).
func (s *TokenService) Verify(tokenString string) (jwt.MapClaims, bool) {
	claims := jwt.MapClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims,
		func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
			}
			return s.secret, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !token.Valid {
		return nil, false
	}
	return claims, true
}

// Subject extracts the sub claim when it is a non-empty string.
func Subject(claims jwt.MapClaims) (string, bool) {
	sub, ok := claims[ClaimSubject].(string)
	if !ok || sub == "" {
		return "", false
	}
	return sub, true
}
