package subm

import (
	"context"
	"slices"
	"sync"
)

type inMemRepo struct {
	mu    sync.RWMutex
	subms []Subm
}

func NewInMemRepo() SubmRepo {
	return &inMemRepo{}
}

func (r *inMemRepo) Insert(ctx context.Context, subm Subm) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	subm.Images = slices.Clone(subm.Images)
	r.subms = append(r.subms, subm)
	return nil
}

func (r *inMemRepo) List(ctx context.Context) ([]Subm, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	res := make([]Subm, len(r.subms))
	for i, s := range r.subms {
		s.Images = slices.Clone(s.Images)
		res[i] = s
	}
	return res, nil
}
