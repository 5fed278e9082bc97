package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/DogPlanner-PricingService/internal/api/handlers"
	"github.com/m04kA/DogPlanner-PricingService/internal/api/middleware"
	createBooking "github.com/m04kA/DogPlanner-PricingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "ogiltig förfrågan"
	msgInvalidInput       = "ogiltiga bokningsuppgifter"
	msgMissingUserID      = "saknar användar-ID"
	msgDogNotFound        = "hunden hittades inte"
	msgNotDogOwner        = "du kan bara boka för dina egna hundar"
	msgRoomNotFound       = "rummet hittades inte"
	msgRoomInactive       = "rummet är inte i bruk"
	msgRoomNotAvailable   = "rummet är redan bokat under vald period"
	msgStartInPast        = "incheckningsdatum kan inte ligga i det förflutna"
	msgRegistryDown       = "hundregistret är inte tillgängligt, försök igen senare"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /bookings - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	fields, err := handlers.Validate(&req)
	if err != nil {
		h.logger.Error("POST /bookings - Validator failure: %v", err)
		handlers.RespondInternalError(w)
		return
	}
	if fields != nil {
		h.logger.Warn("POST /bookings - Validation failed: user_id=%d, fields=%v", userID, fields)
		handlers.RespondValidationError(w, msgInvalidInput, fields)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrRoomNotAvailable):
			h.logger.Warn("POST /bookings - Room not available: user_id=%d, room_id=%v", userID, req.RoomID)
			handlers.RespondConflict(w, msgRoomNotAvailable)

		case errors.Is(err, createBooking.ErrDogNotFound):
			h.logger.Warn("POST /bookings - Dog not found: dog_id=%d", req.DogID)
			handlers.RespondNotFound(w, msgDogNotFound)

		case errors.Is(err, createBooking.ErrNotDogOwner):
			h.logger.Warn("POST /bookings - Not dog owner: user_id=%d, dog_id=%d", userID, req.DogID)
			handlers.RespondForbidden(w, msgNotDogOwner)

		case errors.Is(err, createBooking.ErrDogRegistryUnavailable):
			h.logger.Warn("POST /bookings - Dog registry unavailable: dog_id=%d, error=%v", req.DogID, err)
			handlers.RespondError(w, http.StatusServiceUnavailable, msgRegistryDown)

		case errors.Is(err, createBooking.ErrRoomNotFound):
			h.logger.Warn("POST /bookings - Room not found: org_id=%d, room_id=%v", req.OrgID, req.RoomID)
			handlers.RespondNotFound(w, msgRoomNotFound)

		case errors.Is(err, createBooking.ErrRoomInactive):
			h.logger.Warn("POST /bookings - Room inactive: room_id=%v", req.RoomID)
			handlers.RespondBadRequest(w, msgRoomInactive)

		case errors.Is(err, createBooking.ErrStartInPast):
			h.logger.Warn("POST /bookings - Start in past: start=%s", req.StartDate)
			handlers.RespondBadRequest(w, msgStartInPast)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /bookings - Failed to create booking: user_id=%d, org_id=%d, error=%v",
				userID, req.OrgID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%d, user_id=%d, org_id=%d, status=%s",
		result.ID, userID, req.OrgID, result.Status)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
