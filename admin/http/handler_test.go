package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/handlewall/backend/admin"
	adminhttp "github.com/handlewall/backend/admin/http"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupAdminHttpHandler(t *testing.T) (http.Handler, *admin.AdminSrvc) {
	t.Helper()
	adminSrvc := admin.NewAdminSrvc(admin.NewInMemRepo(), []byte("test"))
	r := chi.NewRouter()
	adminhttp.NewAdminHttpHandler(adminSrvc).RegisterRoutes(r)
	return r, adminSrvc
}

func newJsonReq(t *testing.T, method, path string, body map[string]interface{}) *http.Request {
	t.Helper()
	jsonBody, err := json.Marshal(body)
	require.NoError(t, err)

	req := httptest.NewRequest(method, path, bytes.NewBuffer(jsonBody))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func register(t *testing.T, handler http.Handler, data map[string]interface{}) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, newJsonReq(t, http.MethodPost, "/api/admin/register", data))
	return w
}

func login(t *testing.T, handler http.Handler, data map[string]interface{}) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, newJsonReq(t, http.MethodPost, "/api/admin/login", data))
	return w
}

type errorResponse struct {
	Status  string `json:"status"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) errorResponse {
	t.Helper()
	var res errorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res), "body: %s", w.Body.String())
	return res
}

func TestRegisterHttp(t *testing.T) {
	handler, _ := setupAdminHttpHandler(t)

	w := register(t, handler, map[string]interface{}{
		"username": "root",
		"password": "hunter2",
	})
	require.Equal(t, http.StatusCreated, w.Code, "body: %s", w.Body.String())

	var res struct {
		Message string `json:"message"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	assert.Equal(t, "Admin registered successfully", res.Message)
	assert.NotContains(t, w.Body.String(), "hunter2")
}

func TestRegisterHttpInvalidBody(t *testing.T) {
	handler, _ := setupAdminHttpHandler(t)

	req := httptest.NewRequest(http.MethodPost, "/api/admin/register", strings.NewReader("{not json"))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "invalid_request_body", decodeError(t, w).Code)
}

func TestLoginHttp(t *testing.T) {
	handler, adminSrvc := setupAdminHttpHandler(t)
	creds := map[string]interface{}{"username": "root", "password": "hunter2"}

	require.Equal(t, http.StatusCreated, register(t, handler, creds).Code)

	w := login(t, handler, creds)
	require.Equal(t, http.StatusOK, w.Code, "body: %s", w.Body.String())

	var res struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &res))
	require.NotEmpty(t, res.Token)

	_, err := adminSrvc.VerifyToken(res.Token)
	assert.NoError(t, err)
}

func TestLoginHttpInvalidCredentials(t *testing.T) {
	handler, _ := setupAdminHttpHandler(t)
	require.Equal(t, http.StatusCreated, register(t, handler, map[string]interface{}{
		"username": "root",
		"password": "hunter2",
	}).Code)

	testCases := []struct {
		name      string
		loginData map[string]interface{}
	}{
		{
			name:      "Wrong Password",
			loginData: map[string]interface{}{"username": "root", "password": "wrong"},
		},
		{
			name:      "Non-existent Username",
			loginData: map[string]interface{}{"username": "nobody", "password": "hunter2"},
		},
	}

	var bodies []string
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := login(t, handler, tc.loginData)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			res := decodeError(t, w)
			assert.Equal(t, admin.ErrCodeInvalidCredentials, res.Code)
			assert.Equal(t, "Invalid credentials", res.Message)
			bodies = append(bodies, w.Body.String())
		})
	}
	require.Len(t, bodies, 2)
	assert.Equal(t, bodies[0], bodies[1])
}
