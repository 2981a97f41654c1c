package auth

import (
	"time"

	"github.com/darwincel7/taller-sub001/internal/errs"
	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenTTL roughly covers a double shift, so a session opened at
// the morning register survives the evening closing.
const DefaultTokenTTL = 16 * time.Hour

type TokenManager struct {
	secretKey []byte
	ttl       time.Duration
}

func NewTokenManager(secretKey string, ttl time.Duration) *TokenManager {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenManager{secretKey: []byte(secretKey), ttl: ttl}
}

func (tm *TokenManager) GenerateToken(userID int) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID,
		"exp":     time.Now().Add(tm.ttl).Unix(),
		"iat":     time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(tm.secretKey)
}

func (tm *TokenManager) ParseToken(tokenStr string) (int, error) {
	token, err := jwt.Parse(tokenStr, func(t *jwt.Token) (interface{}, error) {
		if t.Method != jwt.SigningMethodHS256 {
			return nil, errs.ErrInvalidToken
		}
		return tm.secretKey, nil
	})

	if err != nil || !token.Valid {
		return 0, errs.ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, errs.ErrInvalidToken
	}

	idFloat, ok := claims["user_id"].(float64)
	if !ok {
		return 0, errs.ErrInvalidToken
	}

	return int(idFloat), nil
}
