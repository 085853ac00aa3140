package services

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/cuongluu0705/Online-Electronics-Selling-System/models"
)

// SessionClaims is the gateway session token payload. It carries the
// upstream access token so role-gated handlers can call the remote API
// on the user's behalf without a second login.
type SessionClaims struct {
	UserID        int    `json:"userId"`
	Username      string `json:"username"`
	Name          string `json:"name"`
	Role          string `json:"role"`
	UpstreamToken string `json:"upstreamToken"`
	jwt.RegisteredClaims
}

// SessionService signs and verifies the gateway's own session tokens.
type SessionService struct {
	secret []byte
	expiry time.Duration
}

func NewSessionService(secret string, expiry time.Duration) *SessionService {
	return &SessionService{secret: []byte(secret), expiry: expiry}
}

// Issue mints a session token for a logged-in user.
func (s *SessionService) Issue(profile models.SessionProfile, upstreamToken string) (string, error) {
	if len(s.secret) == 0 {
		return "", errors.New("session secret not configured")
	}

	now := time.Now()
	claims := SessionClaims{
		UserID:        profile.UserID,
		Username:      profile.Username,
		Name:          profile.Name,
		Role:          profile.Role,
		UpstreamToken: upstreamToken,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    "oss-gateway",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify parses and validates a session token.
func (s *SessionService) Verify(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, err
	}

	if claims, ok := token.Claims.(*SessionClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, errors.New("invalid token")
}

// Global instance
var sessionService *SessionService

// InitSessionService configures the global session service. Call once
// at startup.
func InitSessionService(secret string, expiry time.Duration) {
	sessionService = NewSessionService(secret, expiry)
}

// GetSessionService returns the global session service instance.
func GetSessionService() *SessionService {
	return sessionService
}
