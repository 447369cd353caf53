package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/webshop-go/storefront-api/models"
)

const tokenTTL = 24 * time.Hour

// IssueUserToken signs an HS256 token for a known user.
func IssueUserToken(u *models.User, secret string) (string, error) {
	claims := jwt.MapClaims{
		"user_id": u.ID,
		"name":    u.Name,
		"role":    u.Role,
		"exp":     time.Now().Add(tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// IssueGuestToken signs a token for an anonymous session. No user_id claim.
func IssueGuestToken(secret string) (string, error) {
	claims := jwt.MapClaims{
		"role": RoleGuest,
		"exp":  time.Now().Add(tokenTTL).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ParseToken validates tokenString and resolves it into an Identity.
func ParseToken(tokenString, secret string) (*Identity, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid token signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}

	ident := &Identity{Role: RoleGuest}
	if role, ok := claims["role"].(string); ok {
		ident.Role = role
	}
	if name, ok := claims["name"].(string); ok {
		ident.Name = name
	}
	if raw, ok := claims["user_id"].(float64); ok {
		id := uint(raw)
		ident.UserID = &id
	}
	return ident, nil
}
