package http

import (
	"encoding/json"
	"net/http"

	"github.com/handlewall/backend/httpjson"
)

func (h *AdminHttpHandler) Register(w http.ResponseWriter, r *http.Request) {
	type registerResponse struct {
		Message string `json:"message"`
	}

	var request credentialsRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		httpjson.WriteErrorJson(w, "Invalid request body", http.StatusBadRequest, "invalid_request_body")
		return
	}

	_, err := h.adminSrvc.Register(r.Context(), request.Username, request.Password)
	if err != nil {
		httpjson.HandleErrorWithContext(r, w, err)
		return
	}

	httpjson.WriteJson(w, http.StatusCreated, registerResponse{
		Message: "Admin registered successfully",
	})
}
