package utils

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt"
)

// UserIDClaim is the claim the account service puts the authenticated user in.
const UserIDClaim = "userId"

var ErrInvalidToken = errors.New("invalid token")

// TokenVerifier validates HS256 bearer tokens issued elsewhere with a shared secret.
type TokenVerifier struct {
	secret []byte
}

func NewTokenVerifier(secret string) (*TokenVerifier, error) {
	if secret == "" {
		return nil, errors.New("JWT_SECRET must be set")
	}
	return &TokenVerifier{secret: []byte(secret)}, nil
}

// ValidateToken parses and validates a token string and returns the token if valid.
func (v *TokenVerifier) ValidateToken(tokenString string) (*jwt.Token, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		// Ensure that the token's signing method is HMAC.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", token.Header["alg"])
		}
		return v.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if !token.Valid {
		return nil, ErrInvalidToken
	}
	return token, nil
}

// UserID verifies the token and extracts the userId claim (falling back to sub).
func (v *TokenVerifier) UserID(tokenString string) (string, error) {
	token, err := v.ValidateToken(tokenString)
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidToken
	}
	if id, ok := claims[UserIDClaim].(string); ok && id != "" {
		return id, nil
	}
	if sub, ok := claims["sub"].(string); ok && sub != "" {
		return sub, nil
	}
	return "", fmt.Errorf("%w: token does not contain a %q claim", ErrInvalidToken, UserIDClaim)
}

// SignUserToken issues a token carrying userId; tests and local tooling only.
func SignUserToken(secret, userID string, claims jwt.MapClaims) (string, error) {
	all := jwt.MapClaims{UserIDClaim: userID}
	for k, v := range claims {
		all[k] = v
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, all).SignedString([]byte(secret))
}
