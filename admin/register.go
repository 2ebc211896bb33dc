package admin

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/handlewall/backend/logger"
	"golang.org/x/crypto/bcrypt"
)

// Register stores a new admin. An existing admin with the same username is
// not checked for; login then resolves to the earliest one.
func (s *AdminSrvc) Register(ctx context.Context, username string, password string) (*Admin, error) {
	bcryptPwd, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, newErrRegisterFailed().SetDebug(fmt.Errorf("failed to hash password: %w", err))
	}

	row := Admin{
		UUID:      uuid.New(),
		Username:  username,
		BcryptPwd: string(bcryptPwd),
		CreatedAt: s.now().UTC(),
	}

	err = s.repo.Insert(ctx, row)
	if err != nil {
		return nil, newErrRegisterFailed().SetDebug(fmt.Errorf("failed to insert admin: %w", err))
	}

	logger.FromContext(ctx).Info("admin registered", "admin_id", row.UUID, "username", row.Username)

	return &row, nil
}
