package auth

import (
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// Principal is the authenticated caller taken from the access token.
type Principal struct {
	UserID string
	Role   string
}

type Parser struct {
	secret []byte
}

func NewParser(secret string) *Parser {
	return &Parser{secret: []byte(secret)}
}

// Parse validates a bearer token and extracts the principal claims.
func (p *Parser) Parse(rawToken string) (Principal, error) {
	rawToken = strings.TrimSpace(rawToken)
	if rawToken == "" {
		return Principal{}, fmt.Errorf("empty token")
	}

	token, err := jwt.Parse(rawToken, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return p.secret, nil
	})
	if err != nil {
		return Principal{}, err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return Principal{}, fmt.Errorf("invalid token claims")
	}

	principal := Principal{}
	if sub, ok := claims["sub"].(string); ok {
		principal.UserID = sub
	}
	if role, ok := claims["role"].(string); ok {
		principal.Role = role
	}
	if principal.UserID == "" {
		return Principal{}, fmt.Errorf("token has no subject")
	}
	return principal, nil
}
