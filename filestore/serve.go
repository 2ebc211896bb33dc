package filestore

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/handlewall/backend/logger"
)

// ServeFile serves the bytes of a stored file. The route must capture the
// storage name in the "name" URL parameter.
func (fs *FileStore) ServeFile(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if !validName(name) {
		http.NotFound(w, r)
		return
	}

	content, modTime, err := fs.backend.Open(r.Context(), name)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			http.NotFound(w, r)
			return
		}
		logger.FromContext(r.Context()).Error("failed to open stored file", "name", name, "error", err)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	defer content.Close()

	http.ServeContent(w, r, name, modTime, content)
}
