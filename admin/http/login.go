package http

import (
	"encoding/json"
	"net/http"

	"github.com/handlewall/backend/httpjson"
)

func (h *AdminHttpHandler) Login(w http.ResponseWriter, r *http.Request) {
	type loginResponse struct {
		Token string `json:"token"`
	}

	var request credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		httpjson.WriteErrorJson(w, "Invalid request body", http.StatusBadRequest, "invalid_request_body")
		return
	}

	token, err := h.adminSrvc.Login(r.Context(), request.Username, request.Password)
	if err != nil {
		httpjson.HandleErrorWithContext(r, w, err)
		return
	}

	httpjson.WriteSuccessJson(w, loginResponse{Token: token})
}
