package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenUser is the identity object embedded in a token's payload. The claim
// nests the user id under a "user" key, so verified identities are read as
// claims.user.id by downstream consumers.
type TokenUser struct {
	ID string `json:"id"`
}

// Claims is the JWT payload: the embedded identity plus standard registered
// claims (exp, iat).
type Claims struct {
	User TokenUser `json:"user"`
	jwt.RegisteredClaims
}

// Issuer creates and verifies signed, time-limited tokens. Tokens are
// stateless: no server-side registry is consulted to issue or invalidate them.
type Issuer struct {
	secret []byte
	ttl    time.Duration
}

// NewIssuer creates an Issuer with the process-wide signing secret and the
// fixed token lifetime.
func NewIssuer(secret string, ttl time.Duration) *Issuer {
	return &Issuer{secret: []byte(secret), ttl: ttl}
}

// Issue produces a signed HS256 token embedding userID, expiring ttl from now.
func (i *Issuer) Issue(userID string) (string, error) {
	now := time.Now()
	claims := &Claims{
		User: TokenUser{ID: userID},
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify validates tokenString's signature and expiry and returns the embedded
// user id. Signature trust is the whole authentication check; no datastore
// lookup is performed.
func (i *Issuer) Verify(tokenString string) (string, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return i.secret, nil
	})
	if err != nil {
		return "", err
	}
	if !token.Valid {
		return "", errors.New("token is invalid")
	}
	if claims.User.ID == "" {
		return "", errors.New("token has no user id claim")
	}
	return claims.User.ID, nil
}
