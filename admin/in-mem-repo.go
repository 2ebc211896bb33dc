package admin

import (
	"context"
	"sync"
)

type inMemRepo struct {
	mu     sync.RWMutex
	admins []Admin // insertion order
}

func NewInMemRepo() AdminRepo {
	return &inMemRepo{}
}

func (r *inMemRepo) Insert(ctx context.Context, admin Admin) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.admins = append(r.admins, admin)
	return nil
}

func (r *inMemRepo) FirstByUsername(ctx context.Context, username string) (*Admin, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, admin := range r.admins {
		if admin.Username == username {
			found := admin
			return &found, nil
		}
	}
	return nil, nil
}
