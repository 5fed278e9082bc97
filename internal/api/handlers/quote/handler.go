package quote

import (
	"errors"
	"net/http"

	"github.com/m04kA/DogPlanner-PricingService/internal/api/handlers"
	quotePrice "github.com/m04kA/DogPlanner-PricingService/internal/usecase/quote_price"
)

const (
	msgInvalidRequestBody = "ogiltig förfrågan"
	msgInvalidInput       = "ogiltiga uppgifter för prisberäkning"
	msgDogNotFound        = "hunden hittades inte"
)

type Handler struct {
	useCase QuotePriceUseCase
	logger  Logger
}

func NewHandler(useCase QuotePriceUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/quotes
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req QuoteRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /quotes - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	fields, err := handlers.Validate(&req)
	if err != nil {
		h.logger.Error("POST /quotes - Validator failure: %v", err)
		handlers.RespondInternalError(w)
		return
	}
	if fields != nil {
		h.logger.Warn("POST /quotes - Validation failed: %v", fields)
		handlers.RespondValidationError(w, msgInvalidInput, fields)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, quotePrice.ErrInvalidInput):
			h.logger.Warn("POST /quotes - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, quotePrice.ErrDogNotFound):
			h.logger.Warn("POST /quotes - Dog not found: dog_id=%v", req.DogID)
			handlers.RespondNotFound(w, msgDogNotFound)

		default:
			h.logger.Error("POST /quotes - Failed to compute quote: org_id=%d, error=%v", req.OrgID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /quotes - Quote computed: org_id=%d, tier=%s, size=%s, total=%.2f",
		result.OrgID, result.Tier, result.SizeBand, result.TotalCost)
	handlers.RespondJSON(w, http.StatusOK, result)
}
