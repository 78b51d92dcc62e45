package auth

import (
	"context"
	"time"

	"github.com/gdugdh24/roomies-backend/internal/domain"
	"github.com/golang-jwt/jwt/v5"
)

// TokenUseCase issues and verifies HS256 access tokens carrying a user_id
// claim. Account registration lives in another service; this one only needs
// to know who is calling.
type TokenUseCase struct {
	jwtSecret string
	expiry    time.Duration
	now       func() time.Time
}

func NewTokenUseCase(jwtSecret string, expiry time.Duration) *TokenUseCase {
	return &TokenUseCase{
		jwtSecret: jwtSecret,
		expiry:    expiry,
		now:       time.Now,
	}
}

// IssueToken signs an access token for userID.
func (uc *TokenUseCase) IssueToken(userID int) (string, time.Time, error) {
	issuedAt := uc.now()
	expiresAt := issuedAt.Add(uc.expiry)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": userID,
		"exp":     expiresAt.Unix(),
		"iat":     issuedAt.Unix(),
	})

	tokenString, err := token.SignedString([]byte(uc.jwtSecret))
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

// VerifyToken verifies JWT token and returns user ID
func (uc *TokenUseCase) VerifyToken(_ context.Context, tokenString string) (int, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, domain.ErrInvalidToken
		}
		return []byte(uc.jwtSecret), nil
	}, jwt.WithTimeFunc(uc.now))

	if err != nil || !token.Valid {
		return 0, domain.ErrInvalidToken
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return 0, domain.ErrInvalidToken
	}

	userID, ok := claims["user_id"].(float64)
	if !ok || userID <= 0 {
		return 0, domain.ErrInvalidToken
	}

	return int(userID), nil
}
