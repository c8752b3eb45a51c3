// Package auth implements the login contract and JWT session tokens.
package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"smartleave/internal/domain/leave"
)

// FallbackPassword is the legacy default accepted only for accounts whose
// stored password is empty. Kept for imported data sets that never held
// credentials.
const FallbackPassword = "password123"

const tokenTTL = 8 * time.Hour

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
)

func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func CheckPassword(hash, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// Login resolves a username case-insensitively and checks the password
// against the account's stored value. Three forms are accepted: the stored
// plain value (seeded accounts), a bcrypt hash of the supplied password
// (accounts created through Administration), or the legacy fallback when no
// password is stored at all.
func Login(username, password string, users []leave.User) (leave.User, error) {
	name := strings.ToLower(strings.TrimSpace(username))
	for _, u := range users {
		if strings.ToLower(u.Username) != name {
			continue
		}
		switch {
		case u.Password != "" && u.Password == password:
			return u, nil
		case u.Password != "" && CheckPassword(u.Password, password):
			return u, nil
		case u.Password == "" && password == FallbackPassword:
			return u, nil
		}
		return leave.User{}, ErrInvalidCredentials
	}
	return leave.User{}, ErrInvalidCredentials
}

type Claims struct {
	UserID   string `json:"uid"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

func GenerateToken(user leave.User, secret string) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID:   user.ID,
		Username: user.Username,
		Role:     string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func ParseToken(tokenString, secret string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}
	return claims, nil
}
