package admin

import (
	"net/http"

	"github.com/handlewall/backend/srvcerror"
)

const ErrCodeInvalidCredentials = "invalid_credentials"

// Unknown username and wrong password share this error so callers can not
// tell them apart.
func newErrInvalidCredentials() *srvcerror.Error {
	return srvcerror.New(
		ErrCodeInvalidCredentials,
		"Invalid credentials",
	).SetHttpStatusCode(http.StatusUnauthorized)
}

func newErrRegisterFailed() *srvcerror.Error {
	return srvcerror.ErrInternal("Error registering admin")
}

func newErrLoginFailed() *srvcerror.Error {
	return srvcerror.ErrInternal("Error logging in")
}
