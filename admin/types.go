package admin

import (
	"context"
	"time"

	"github.com/google/uuid"
)

type Admin struct {
	UUID      uuid.UUID
	Username  string
	BcryptPwd string
	CreatedAt time.Time
}

// AdminRepo persists admin credentials. Usernames are not unique.
type AdminRepo interface {
	Insert(ctx context.Context, admin Admin) error
	// FirstByUsername returns the earliest created admin with the given
	// username, or nil when there is none.
	FirstByUsername(ctx context.Context, username string) (*Admin, error)
}
