package update_policy

import (
	"errors"
	"net/http"

	"github.com/m04kA/DogPlanner-PricingService/internal/api/handlers"
	"github.com/m04kA/DogPlanner-PricingService/internal/api/middleware"
	"github.com/m04kA/DogPlanner-PricingService/internal/service/policy"
)

const (
	msgInvalidOrgID       = "ogiltigt organisations-ID"
	msgInvalidRequestBody = "ogiltig förfrågan"
	msgMissingUserID      = "saknar användar-ID"
	msgForbidden          = "endast personal kan ändra prispolicyn"
	msgOrgNotFound        = "organisationen hittades inte"
	msgInvalidPolicy      = "ogiltig policy"
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

// Handle PUT /api/v1/orgs/{orgId}/policy
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	orgID, err := handlers.PathInt64(r, "orgId")
	if err != nil {
		h.logger.Warn("PUT /orgs/{orgId}/policy - Invalid org ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidOrgID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req UpdatePolicyRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /orgs/{orgId}/policy - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}
	if fields, err := handlers.Validate(&req); err != nil || fields != nil {
		h.logger.Warn("PUT /orgs/{orgId}/policy - Validation failed: fields=%v, err=%v", fields, err)
		handlers.RespondValidationError(w, msgInvalidPolicy, fields)
		return
	}

	result, err := h.service.UpdatePolicy(r.Context(), req.ToServiceRequest(orgID, userID))
	if err != nil {
		switch {
		case errors.Is(err, policy.ErrAccessDenied):
			h.logger.Warn("PUT /orgs/{orgId}/policy - Access denied: org_id=%d, user_id=%d", orgID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, policy.ErrOrgNotFound):
			handlers.RespondNotFound(w, msgOrgNotFound)

		case errors.Is(err, policy.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidPolicy+": "+err.Error())

		default:
			h.logger.Error("PUT /orgs/{orgId}/policy - Failed to update policy: org_id=%d, error=%v", orgID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /orgs/{orgId}/policy - Policy updated: org_id=%d, user_id=%d", orgID, userID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
