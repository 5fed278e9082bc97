package reset_policy

import (
	"errors"
	"net/http"

	"github.com/m04kA/DogPlanner-PricingService/internal/api/handlers"
	"github.com/m04kA/DogPlanner-PricingService/internal/api/middleware"
	"github.com/m04kA/DogPlanner-PricingService/internal/service/policy"
)

const (
	msgInvalidOrgID  = "ogiltigt organisations-ID"
	msgMissingUserID = "saknar användar-ID"
	msgForbidden     = "endast personal kan ändra prispolicyn"
	msgOrgNotFound   = "organisationen hittades inte"
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

// Handle DELETE /api/v1/orgs/{orgId}/policy
// Возвращает организацию к политике по умолчанию и отдаёт её в ответе
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	orgID, err := handlers.PathInt64(r, "orgId")
	if err != nil {
		handlers.RespondBadRequest(w, msgInvalidOrgID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.service.ResetPolicy(r.Context(), orgID, userID)
	if err != nil {
		switch {
		case errors.Is(err, policy.ErrAccessDenied):
			h.logger.Warn("DELETE /orgs/{orgId}/policy - Access denied: org_id=%d, user_id=%d", orgID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, policy.ErrOrgNotFound):
			handlers.RespondNotFound(w, msgOrgNotFound)

		default:
			h.logger.Error("DELETE /orgs/{orgId}/policy - Failed to reset policy: org_id=%d, error=%v", orgID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("DELETE /orgs/{orgId}/policy - Policy reset to defaults: org_id=%d, user_id=%d", orgID, userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
