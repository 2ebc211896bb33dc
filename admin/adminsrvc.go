package admin

import (
	"sync"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// bcryptCost is fixed so stored hashes stay comparable in cost.
const bcryptCost = 10

type AdminSrvc struct {
	repo   AdminRepo
	jwtKey []byte
	now    func() time.Time

	dummyHashOnce sync.Once
	dummyHash     []byte
}

type Option func(*AdminSrvc)

// WithClock replaces time.Now for token issuance and verification.
func WithClock(now func() time.Time) Option {
	return func(s *AdminSrvc) {
		s.now = now
	}
}

func NewAdminSrvc(repo AdminRepo, jwtKey []byte, opts ...Option) *AdminSrvc {
	s := &AdminSrvc{
		repo:   repo,
		jwtKey: jwtKey,
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// getDummyHash is compared against when the username is unknown, so both
// login failure paths pay for a bcrypt comparison.
func (s *AdminSrvc) getDummyHash() []byte {
	s.dummyHashOnce.Do(func() {
		hash, err := bcrypt.GenerateFromPassword([]byte("not-a-real-password"), bcryptCost)
		if err == nil {
			s.dummyHash = hash
		}
	})
	return s.dummyHash
}
