package admin_me_get

import (
	"encoding/json"
	"net/http"

	"geleverd/internal/dto"
	authmw "geleverd/internal/pkg/middlewares/auth"
	"geleverd/pkg/logger"
)

type Handler struct {
	log handlerLogger
}

func New(log handlerLogger) *Handler {
	handlerLog := log.With()

	return &Handler{
		log: handlerLog,
	}
}

// ServeHTTP returns the admin resolved by the auth middleware. It only
// runs behind that middleware, so a missing admin means a wiring bug.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	admin, ok := authmw.AdminFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err := json.NewEncoder(w).Encode(dto.AdminFromEntity(admin))
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
