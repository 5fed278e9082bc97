package cancel_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/DogPlanner-PricingService/internal/api/handlers"
	"github.com/m04kA/DogPlanner-PricingService/internal/api/middleware"
	cancelBooking "github.com/m04kA/DogPlanner-PricingService/internal/usecase/cancel_booking"
)

const (
	msgInvalidBookingID   = "ogiltigt boknings-ID"
	msgInvalidRequestBody = "ogiltig förfrågan"
	msgMissingUserID      = "saknar användar-ID"
	msgNotFound           = "bokningen hittades inte"
	msgForbidden          = "åtkomst nekad"
	msgCannotCancel       = "bokningen kan inte avbokas i sin nuvarande status"
	msgAlreadyStarted     = "bokningen har redan startat och kan inte avbokas"
)

type Handler struct {
	useCase CancelBookingUseCase
	logger  Logger
}

func NewHandler(useCase CancelBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/bookings/{bookingId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	bookingID, err := handlers.PathInt64(r, "bookingId")
	if err != nil {
		h.logger.Warn("PATCH /bookings/{id}/cancel - Invalid booking ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidBookingID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PATCH /bookings/{id}/cancel - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	// Тело опционально: пустой запрос означает отмену без причины
	var req CancelBookingRequest
	if r.ContentLength != 0 {
		if err := handlers.DecodeJSON(r, &req); err != nil {
			h.logger.Warn("PATCH /bookings/{id}/cancel - Invalid request body: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)
			return
		}
		if fields, err := handlers.Validate(&req); err != nil || fields != nil {
			h.logger.Warn("PATCH /bookings/{id}/cancel - Validation failed: fields=%v, err=%v", fields, err)
			handlers.RespondValidationError(w, msgInvalidRequestBody, fields)
			return
		}
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(bookingID, userID))
	if err != nil {
		switch {
		case errors.Is(err, cancelBooking.ErrBookingNotFound):
			h.logger.Warn("PATCH /bookings/{id}/cancel - Booking not found: booking_id=%d", bookingID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, cancelBooking.ErrAccessDenied):
			h.logger.Warn("PATCH /bookings/{id}/cancel - Access denied: booking_id=%d, user_id=%d", bookingID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, cancelBooking.ErrAlreadyStarted):
			h.logger.Warn("PATCH /bookings/{id}/cancel - Already started: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgAlreadyStarted)

		case errors.Is(err, cancelBooking.ErrCannotCancel):
			h.logger.Warn("PATCH /bookings/{id}/cancel - Cannot cancel: booking_id=%d", bookingID)
			handlers.RespondConflict(w, msgCannotCancel)

		case errors.Is(err, cancelBooking.ErrInvalidInput):
			h.logger.Warn("PATCH /bookings/{id}/cancel - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		default:
			h.logger.Error("PATCH /bookings/{id}/cancel - Failed to cancel booking: booking_id=%d, error=%v", bookingID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /bookings/{id}/cancel - Booking cancelled: booking_id=%d, user_id=%d, fee=%.2f",
		bookingID, userID, result.Cancellation.Fee)
	handlers.RespondJSON(w, http.StatusOK, result)
}
