package utils

import (
	"fmt"
	"time"

	"tokoku/models"

	"github.com/golang-jwt/jwt/v4"
	uuid "github.com/satori/go.uuid"
)

type TokenDetails struct {
	Token     string
	TokenUUID string
	UserID    string
	ExpiresIn int64
}

func CreateToken(user models.UserResponse, ttl time.Duration, secret string) (*TokenDetails, error) {
	now := time.Now().UTC()
	td := &TokenDetails{
		TokenUUID: uuid.NewV4().String(),
		UserID:    user.ID.String(),
		ExpiresIn: now.Add(ttl).Unix(),
	}

	claims := jwt.MapClaims{
		"sub":        user.ID.String(),
		"name":       user.Name,
		"email":      user.Email,
		"roles":      []string{user.Role},
		"token_uuid": td.TokenUUID,
		"exp":        td.ExpiresIn,
		"iat":        now.Unix(),
		"nbf":        now.Unix(),
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
	if err != nil {
		return nil, fmt.Errorf("signing token failed: %w", err)
	}
	td.Token = token

	return td, nil
}

func ValidateToken(token string, secret string) (*TokenDetails, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %s", t.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok || !parsed.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}

	return &TokenDetails{
		TokenUUID: fmt.Sprint(claims["token_uuid"]),
		UserID:    fmt.Sprint(claims["sub"]),
	}, nil
}
