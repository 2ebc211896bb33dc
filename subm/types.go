package subm

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Subm is a submission sent through the public form. Fields are stored as
// received.
type Subm struct {
	UUID         uuid.UUID
	Name         string
	SocialHandle string
	Images       []string // file references, in upload order
	CreatedAt    time.Time
}

type SubmRepo interface {
	Insert(ctx context.Context, subm Subm) error
	// List returns every submission in no particular order.
	List(ctx context.Context) ([]Subm, error)
}

// SubmSrvcClient is what the http layer needs from the submission service.
type SubmSrvcClient interface {
	CreateSubm(ctx context.Context, name string, socialHandle string, imageRefs []string) (*Subm, error)
	ListSubms(ctx context.Context) ([]Subm, error)
}
