package http

import (
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"

	"github.com/handlewall/backend/filestore"
	"github.com/handlewall/backend/httpjson"
	"github.com/handlewall/backend/logger"
)

// multipartMemory is how much of a form is kept in memory before parts spill
// to temporary files.
const multipartMemory = 32 << 20

// PostSubm accepts the public form: text fields name and socialHandle, and
// any number of files in the images field.
func (h *SubmHttpHandler) PostSubm(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	if h.maxUploadBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadBytes)
	}
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			httpjson.HandleErrorWithContext(r, w, newErrUploadTooLarge().SetDebug(err))
			return
		}
		httpjson.HandleErrorWithContext(r, w, newErrInvalidMultipart().SetDebug(err))
		return
	}
	defer r.MultipartForm.RemoveAll()

	name := r.FormValue("name")
	socialHandle := r.FormValue("socialHandle")

	files, closeFiles, err := openFormFiles(r.MultipartForm.File["images"])
	if err != nil {
		httpjson.HandleErrorWithContext(r, w, newErrStoreImages().SetDebug(err))
		return
	}
	defer closeFiles()

	refs, err := h.files.Store(r.Context(), files)
	if err != nil {
		httpjson.HandleErrorWithContext(r, w, newErrStoreImages().SetDebug(err))
		return
	}

	created, err := h.submSrvc.CreateSubm(r.Context(), name, socialHandle, refs)
	if err != nil {
		if rmErr := h.files.Remove(r.Context(), refs); rmErr != nil {
			log.Error("failed to remove images of unsaved submission", "refs", refs, "error", rmErr)
		}
		httpjson.HandleErrorWithContext(r, w, err)
		return
	}

	httpjson.WriteJson(w, http.StatusCreated, mapSubm(*created))
}

func openFormFiles(headers []*multipart.FileHeader) ([]filestore.File, func(), error) {
	opened := make([]multipart.File, 0, len(headers))
	closeAll := func() {
		for _, f := range opened {
			f.Close()
		}
	}

	files := make([]filestore.File, 0, len(headers))
	for _, fh := range headers {
		f, err := fh.Open()
		if err != nil {
			closeAll()
			return nil, nil, fmt.Errorf("failed to open uploaded file %q: %w", fh.Filename, err)
		}
		opened = append(opened, f)
		files = append(files, filestore.File{
			Filename: fh.Filename,
			Content:  f,
		})
	}
	return files, closeAll, nil
}
