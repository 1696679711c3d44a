// Package authenticator is the credential service: it hashes and verifies
// passwords, and issues and validates the HMAC-signed session tokens carried
// on every authenticated request.
package authenticator

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/curaious/tasker/internal/config"
)

// ErrInvalidToken covers bad signatures, malformed payloads and expired
// tokens alike. The API layer maps it to 401.
var ErrInvalidToken = errors.New("invalid or expired token")

// UserClaims are the identity claims embedded in a session token.
type UserClaims struct {
	UserID int64  `json:"id"`
	Email  string `json:"email"`
	Name   string `json:"name"`
	jwt.RegisteredClaims
}

type Authenticator struct {
	secret []byte
	expiry time.Duration
}

func New(conf *config.Config) *Authenticator {
	return &Authenticator{
		secret: []byte(conf.JWT_SECRET),
		expiry: conf.JWT_EXPIRY,
	}
}

func (a *Authenticator) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash password: %w", err)
	}
	return string(hash), nil
}

func (a *Authenticator) CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// GenerateToken signs a token embedding the user's identity. There is no
// refresh rotation; clients log in again after expiry.
func (a *Authenticator) GenerateToken(userID int64, email, name string) (string, error) {
	now := time.Now()
	claims := UserClaims{
		UserID: userID,
		Email:  email,
		Name:   name,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(a.expiry)),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(a.secret)
}

func (a *Authenticator) VerifyToken(token string) (*UserClaims, error) {
	var claims UserClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return a.secret, nil
	})
	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}
	if claims.UserID <= 0 {
		return nil, ErrInvalidToken
	}

	return &claims, nil
}
