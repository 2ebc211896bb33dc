package srvcerror_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/handlewall/backend/srvcerror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorDefaultsToInternalStatus(t *testing.T) {
	err := srvcerror.New("some_code", "something happened")
	assert.Equal(t, http.StatusInternalServerError, err.HttpStatusCode())
	assert.Equal(t, "something happened", err.Error())
	assert.Equal(t, "some_code", err.ErrorCode())
}

func TestErrorDebugInfoIsNotPublic(t *testing.T) {
	cause := errors.New("connection refused")
	err := srvcerror.ErrInternal("Error fetching submissions").SetDebug(cause)

	assert.Equal(t, "Error fetching submissions", err.Error())
	assert.Equal(t, cause, err.DebugInfo())
	assert.ErrorIs(t, err, cause)
}

func TestErrorSurvivesWrapping(t *testing.T) {
	base := srvcerror.New("invalid_token", "Invalid token").
		SetHttpStatusCode(http.StatusUnauthorized)
	wrapped := fmt.Errorf("verify: %w", base)

	var srvcErr *srvcerror.Error
	require.True(t, errors.As(wrapped, &srvcErr))
	assert.Equal(t, http.StatusUnauthorized, srvcErr.HttpStatusCode())
}
