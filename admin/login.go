package admin

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/handlewall/backend/admin/auth"
	"golang.org/x/crypto/bcrypt"
)

// Login checks the password of the first admin named username and issues a
// signed token valid for auth.TokenTTL.
func (s *AdminSrvc) Login(ctx context.Context, username string, password string) (string, error) {
	admin, err := s.repo.FirstByUsername(ctx, username)
	if err != nil {
		return "", newErrLoginFailed().SetDebug(fmt.Errorf("failed to look up admin: %w", err))
	}

	if admin == nil {
		// keep the timing of both failure paths alike
		_ = bcrypt.CompareHashAndPassword(s.getDummyHash(), []byte(password))
		return "", newErrInvalidCredentials()
	}

	err = bcrypt.CompareHashAndPassword([]byte(admin.BcryptPwd), []byte(password))
	if err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return "", newErrInvalidCredentials()
		}
		return "", newErrLoginFailed().SetDebug(fmt.Errorf("failed to compare password hash: %w", err))
	}

	token, err := auth.GenerateJWT(admin.UUID, s.jwtKey, s.now())
	if err != nil {
		return "", newErrLoginFailed().SetDebug(fmt.Errorf("failed to generate JWT: %w", err))
	}

	return token, nil
}

// VerifyToken returns the admin id a token was issued for.
func (s *AdminSrvc) VerifyToken(token string) (uuid.UUID, error) {
	claims, err := auth.ValidateJWT(token, s.jwtKey, s.now())
	if err != nil {
		return uuid.Nil, auth.ErrInvalidToken().SetDebug(err)
	}
	return uuid.MustParse(claims.AdminID), nil
}
