package http

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/handlewall/backend/filestore"
	"github.com/handlewall/backend/subm"
)

// FileStorer writes uploaded images and removes them again when the
// submission could not be saved.
type FileStorer interface {
	Store(ctx context.Context, files []filestore.File) ([]string, error)
	Remove(ctx context.Context, refs []string) error
}

type SubmHttpHandler struct {
	submSrvc subm.SubmSrvcClient
	files    FileStorer

	maxUploadBytes int64 // 0 means unlimited
}

func NewSubmHttpHandler(
	submSrvc subm.SubmSrvcClient,
	files FileStorer,
	maxUploadBytes int64,
) *SubmHttpHandler {
	return &SubmHttpHandler{
		submSrvc:       submSrvc,
		files:          files,
		maxUploadBytes: maxUploadBytes,
	}
}

// RegisterRoutes mounts the public submission form and the admin only
// listing behind gate.
func (h *SubmHttpHandler) RegisterRoutes(r chi.Router, gate func(http.Handler) http.Handler) {
	r.Post("/api/submissions", h.PostSubm)
	r.With(gate).Get("/api/submissions", h.GetSubmList)
}
