package get_org_bookings

import (
	"errors"
	"net/http"

	"github.com/m04kA/DogPlanner-PricingService/internal/api/handlers"
	"github.com/m04kA/DogPlanner-PricingService/internal/api/middleware"
	"github.com/m04kA/DogPlanner-PricingService/internal/service/bookings"
)

const (
	msgInvalidOrgID  = "ogiltigt organisations-ID"
	msgInvalidQuery  = "ogiltiga filterparametrar"
	msgMissingUserID = "saknar användar-ID"
	msgOrgNotFound   = "organisationen hittades inte"
	msgForbidden     = "åtkomst nekad"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/orgs/{orgId}/bookings
//
// Query параметры: roomId, from, to (YYYY-MM-DD), status, includeInactive
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	orgID, err := handlers.PathInt64(r, "orgId")
	if err != nil {
		h.logger.Warn("GET /orgs/{orgId}/bookings - Invalid org ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidOrgID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("GET /orgs/{orgId}/bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var query OrgBookingsQuery
	if err := handlers.DecodeQuery(r, &query); err != nil {
		h.logger.Warn("GET /orgs/{orgId}/bookings - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	result, err := h.service.GetOrgBookings(r.Context(), query.ToServiceRequest(orgID, userID))
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrAccessDenied):
			h.logger.Warn("GET /orgs/{orgId}/bookings - Access denied: org_id=%d, user_id=%d", orgID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, bookings.ErrOrgNotFound):
			h.logger.Warn("GET /orgs/{orgId}/bookings - Org not found: org_id=%d", orgID)
			handlers.RespondNotFound(w, msgOrgNotFound)

		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /orgs/{orgId}/bookings - Invalid filter: %v", err)
			handlers.RespondBadRequest(w, msgInvalidQuery)

		default:
			h.logger.Error("GET /orgs/{orgId}/bookings - Failed to get bookings: org_id=%d, error=%v", orgID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /orgs/{orgId}/bookings - Bookings retrieved successfully: org_id=%d, count=%d",
		orgID, len(result.Bookings))
	handlers.RespondJSON(w, http.StatusOK, result)
}
