package http

import (
	"net/http"

	"github.com/handlewall/backend/httpjson"
	"github.com/handlewall/backend/logger"
)

func (h *SubmHttpHandler) GetSubmList(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())

	subms, err := h.submSrvc.ListSubms(r.Context())
	if err != nil {
		httpjson.HandleErrorWithContext(r, w, err)
		return
	}

	log.Debug("submissions retrieved", "count", len(subms))

	httpjson.WriteSuccessJson(w, mapSubmList(subms))
}
