package get_policy

import (
	"errors"
	"net/http"

	"github.com/m04kA/DogPlanner-PricingService/internal/api/handlers"
	"github.com/m04kA/DogPlanner-PricingService/internal/service/policy"
)

const (
	msgInvalidOrgID = "ogiltigt organisations-ID"
	msgOrgNotFound  = "organisationen hittades inte"
)

type Handler struct {
	service PolicyService
	logger  Logger
}

func NewHandler(service PolicyService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/orgs/{orgId}/policy
// Публичный endpoint: цены и условия отмены видны до бронирования
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	orgID, err := handlers.PathInt64(r, "orgId")
	if err != nil {
		h.logger.Warn("GET /orgs/{orgId}/policy - Invalid org ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidOrgID)
		return
	}

	result, err := h.service.GetPolicy(r.Context(), orgID)
	if err != nil {
		if errors.Is(err, policy.ErrOrgNotFound) {
			handlers.RespondNotFound(w, msgOrgNotFound)
			return
		}
		h.logger.Error("GET /orgs/{orgId}/policy - Failed to get policy: org_id=%d, error=%v", orgID, err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
