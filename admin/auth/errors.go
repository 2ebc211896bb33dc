package auth

import (
	"net/http"

	"github.com/handlewall/backend/srvcerror"
)

const ErrCodeMissingToken = "missing_token"

func ErrMissingToken() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeMissingToken,
		"No token provided",
	).SetHttpStatusCode(http.StatusUnauthorized)
}

const ErrCodeInvalidToken = "invalid_token"

func ErrInvalidToken() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeInvalidToken,
		"Invalid token",
	).SetHttpStatusCode(http.StatusUnauthorized)
}
