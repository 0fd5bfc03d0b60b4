package helpers

import (
	"fmt"
	"time"

	"github.com/psalmsin1759/menuja-backend/config"

	"github.com/golang-jwt/jwt/v5"
)

// SignedDetails are the claims carried by an admin token.
type SignedDetails struct {
	Admin_id string `json:"admin_id"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

const tokenLifetime = 7 * 24 * time.Hour

// GenerateToken issues a signed token for an admin.
func GenerateToken(adminID, role string) (string, error) {
	claims := &SignedDetails{
		Admin_id: adminID,
		Role:     role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenLifetime)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(config.Load().JWTSecret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return token, nil
}

// ValidateToken parses and verifies a token, returning its claims.
func ValidateToken(signedToken string) (*SignedDetails, error) {
	token, err := jwt.ParseWithClaims(
		signedToken,
		&SignedDetails{},
		func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(config.Load().JWTSecret), nil
		},
	)
	if err != nil {
		return nil, fmt.Errorf("invalid or expired token: %w", err)
	}

	claims, ok := token.Claims.(*SignedDetails)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid or expired token")
	}
	return claims, nil
}
