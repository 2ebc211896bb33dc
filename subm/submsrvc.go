package subm

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/handlewall/backend/logger"
)

type SubmSrvc struct {
	repo SubmRepo
	now  func() time.Time
}

var _ SubmSrvcClient = (*SubmSrvc)(nil)

type Option func(*SubmSrvc)

func WithClock(now func() time.Time) Option {
	return func(s *SubmSrvc) {
		s.now = now
	}
}

func NewSubmSrvc(repo SubmRepo, opts ...Option) *SubmSrvc {
	s := &SubmSrvc{
		repo: repo,
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *SubmSrvc) CreateSubm(ctx context.Context, name string, socialHandle string, imageRefs []string) (*Subm, error) {
	images := make([]string, len(imageRefs))
	copy(images, imageRefs)

	subm := Subm{
		UUID:         uuid.New(),
		Name:         name,
		SocialHandle: socialHandle,
		Images:       images,
		CreatedAt:    s.now().UTC(),
	}

	if err := s.repo.Insert(ctx, subm); err != nil {
		return nil, newErrCreateFailed().SetDebug(fmt.Errorf("failed to insert submission: %w", err))
	}

	logger.FromContext(ctx).Info("submission created",
		"subm_uuid", subm.UUID,
		"image_count", len(subm.Images))

	return &subm, nil
}

// ListSubms returns all submissions, newest first. Submissions created at the
// same instant keep the order the repository returned them in.
func (s *SubmSrvc) ListSubms(ctx context.Context) ([]Subm, error) {
	subms, err := s.repo.List(ctx)
	if err != nil {
		return nil, newErrListFailed().SetDebug(fmt.Errorf("failed to list submissions: %w", err))
	}
	slices.SortStableFunc(subms, func(a, b Subm) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return subms, nil
}
