package cancellation_preview

import (
	"errors"
	"net/http"

	"github.com/m04kA/DogPlanner-PricingService/internal/api/handlers"
	"github.com/m04kA/DogPlanner-PricingService/internal/api/middleware"
	cancelBooking "github.com/m04kA/DogPlanner-PricingService/internal/usecase/cancel_booking"
)

const (
	msgInvalidBookingID = "ogiltigt boknings-ID"
	msgMissingUserID    = "saknar användar-ID"
	msgNotFound         = "bokningen hittades inte"
	msgForbidden        = "åtkomst nekad"
)

type Handler struct {
	useCase CancellationPreviewer
	logger  Logger
}

func NewHandler(useCase CancellationPreviewer, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/bookings/{bookingId}/cancellation-preview
// Показывает штраф и возврат до подтверждения отмены
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := handlers.PathInt64(r, "bookingId")
	if err != nil {
		h.logger.Warn("GET /bookings/{id}/cancellation-preview - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	result, err := h.useCase.Preview(r.Context(), bookingID, userID)
	if err != nil {
		switch {
		case errors.Is(err, cancelBooking.ErrBookingNotFound):
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, cancelBooking.ErrAccessDenied):
			h.logger.Warn("GET /bookings/{id}/cancellation-preview - Access denied: booking_id=%d, user_id=%d",
				bookingID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		default:
			h.logger.Error("GET /bookings/{id}/cancellation-preview - Failed: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
