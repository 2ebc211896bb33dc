package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenTTL is how long an issued token stays valid. There is no revocation,
// a token is accepted until it expires.
const TokenTTL = 24 * time.Hour

type JwtClaims struct {
	AdminID string `json:"adminId"`
	jwt.RegisteredClaims
}

// GenerateJWT signs an HS256 token for adminID that expires TokenTTL after
// issuedAt. Token dates have whole second precision, so issuedAt is truncated
// first and the validity window is measured from that second.
func GenerateJWT(adminID uuid.UUID, jwtKey []byte, issuedAt time.Time) (string, error) {
	issuedAt = issuedAt.Truncate(time.Second)
	claims := &JwtClaims{
		AdminID: adminID.String(),
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(TokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtKey)
}

// ValidateJWT checks signature, format and expiry as of now.
func ValidateJWT(tokenStr string, jwtKey []byte, now time.Time) (*JwtClaims, error) {
	claims := &JwtClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims,
		func(token *jwt.Token) (interface{}, error) {
			return jwtKey, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(func() time.Time { return now }),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrSignatureInvalid) {
			return nil, errors.New("invalid token signature")
		}
		return nil, err
	}

	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	if _, err := uuid.Parse(claims.AdminID); err != nil {
		return nil, fmt.Errorf("invalid adminId claim: %w", err)
	}

	return claims, nil
}
