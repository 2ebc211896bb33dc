package http

import (
	"net/http"

	"github.com/handlewall/backend/srvcerror"
)

const (
	ErrCodeInvalidMultipart = "invalid_multipart_body"
	ErrCodeUploadTooLarge   = "upload_too_large"
)

func newErrInvalidMultipart() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeInvalidMultipart,
		"Invalid multipart form data",
	).SetHttpStatusCode(http.StatusBadRequest)
}

func newErrUploadTooLarge() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeUploadTooLarge,
		"Upload too large",
	).SetHttpStatusCode(http.StatusRequestEntityTooLarge)
}

func newErrStoreImages() *srvcerror.Error {
	return srvcerror.ErrInternal("Error creating submission")
}
