package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/handlewall/backend/admin"
)

type AdminHttpHandler struct {
	adminSrvc *admin.AdminSrvc
}

func NewAdminHttpHandler(adminSrvc *admin.AdminSrvc) *AdminHttpHandler {
	return &AdminHttpHandler{
		adminSrvc: adminSrvc,
	}
}

func (h *AdminHttpHandler) RegisterRoutes(r chi.Router) {
	r.Post("/api/admin/register", h.Register)
	r.Post("/api/admin/login", h.Login)
}

type credentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}
