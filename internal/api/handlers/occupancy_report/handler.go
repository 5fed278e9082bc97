package occupancy_report

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/DogPlanner-PricingService/internal/api/handlers"
	"github.com/m04kA/DogPlanner-PricingService/internal/api/middleware"
	occupancyReport "github.com/m04kA/DogPlanner-PricingService/internal/usecase/occupancy_report"
)

const (
	msgInvalidOrgID  = "ogiltigt organisations-ID"
	msgInvalidQuery  = "ogiltiga datum"
	msgMissingUserID = "saknar användar-ID"
	msgForbidden     = "endast personal kan se rapporter"
	msgOrgNotFound   = "organisationen hittades inte"
)

type Handler struct {
	useCase OccupancyReportUseCase
	logger  Logger
	now     func() time.Time
}

func NewHandler(useCase OccupancyReportUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
		now:     time.Now,
	}
}

// Handle GET /api/v1/orgs/{orgId}/reports/occupancy?start=2025-09-01&end=2025-09-30
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	orgID, err := handlers.PathInt64(r, "orgId")
	if err != nil {
		h.logger.Warn("GET /orgs/{orgId}/reports/occupancy - Invalid org ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidOrgID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var query ReportQuery
	if err := handlers.DecodeQuery(r, &query); err != nil {
		h.logger.Warn("GET /orgs/{orgId}/reports/occupancy - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}
	start, end := query.Window(h.now())

	result, err := h.useCase.Execute(r.Context(), &occupancyReport.Request{
		OrgID:     orgID,
		UserID:    userID,
		StartDate: start,
		EndDate:   end,
	})
	if err != nil {
		switch {
		case errors.Is(err, occupancyReport.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidQuery)

		case errors.Is(err, occupancyReport.ErrAccessDenied):
			h.logger.Warn("GET /orgs/{orgId}/reports/occupancy - Access denied: org_id=%d, user_id=%d", orgID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, occupancyReport.ErrOrgNotFound):
			handlers.RespondNotFound(w, msgOrgNotFound)

		default:
			h.logger.Error("GET /orgs/{orgId}/reports/occupancy - Failed: org_id=%d, error=%v", orgID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
