package export_report

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/m04kA/DogPlanner-PricingService/internal/api/handlers"
	"github.com/m04kA/DogPlanner-PricingService/internal/api/middleware"
	"github.com/m04kA/DogPlanner-PricingService/internal/domain"
	exportReport "github.com/m04kA/DogPlanner-PricingService/internal/usecase/export_report"
	"github.com/m04kA/DogPlanner-PricingService/pkg/types"
)

const (
	msgInvalidOrgID  = "ogiltigt organisations-ID"
	msgInvalidQuery  = "ogiltiga datum"
	msgMissingUserID = "saknar användar-ID"
	msgForbidden     = "endast personal kan exportera rapporter"
	msgOrgNotFound   = "organisationen hittades inte"
)

// ExportQuery query-параметры экспорта
type ExportQuery struct {
	Start *types.Date `query:"start"`
	End   *types.Date `query:"end"`
}

type Handler struct {
	useCase ExportReportUseCase
	logger  Logger
	now     func() time.Time
}

func NewHandler(useCase ExportReportUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
		now:     time.Now,
	}
}

// Handle GET /api/v1/orgs/{orgId}/reports/export?start=2025-09-01&end=2025-09-30
// Отдаёт xlsx файл как вложение
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	orgID, err := handlers.PathInt64(r, "orgId")
	if err != nil {
		h.logger.Warn("GET /orgs/{orgId}/reports/export - Invalid org ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidOrgID)
		return
	}

	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var query ExportQuery
	if err := handlers.DecodeQuery(r, &query); err != nil {
		h.logger.Warn("GET /orgs/{orgId}/reports/export - Invalid query: %v", err)
		handlers.RespondBadRequest(w, msgInvalidQuery)
		return
	}

	start, end := domain.DefaultReportWindow(types.NewDate(h.now()))
	if query.Start != nil && !query.Start.IsZero() {
		start = *query.Start
	}
	if query.End != nil && !query.End.IsZero() {
		end = *query.End
	}

	result, err := h.useCase.Execute(r.Context(), &exportReport.Request{
		OrgID:     orgID,
		UserID:    userID,
		StartDate: start,
		EndDate:   end,
	})
	if err != nil {
		switch {
		case errors.Is(err, exportReport.ErrInvalidInput):
			handlers.RespondBadRequest(w, msgInvalidQuery)

		case errors.Is(err, exportReport.ErrAccessDenied):
			h.logger.Warn("GET /orgs/{orgId}/reports/export - Access denied: org_id=%d, user_id=%d", orgID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, exportReport.ErrOrgNotFound):
			handlers.RespondNotFound(w, msgOrgNotFound)

		default:
			h.logger.Error("GET /orgs/{orgId}/reports/export - Failed: org_id=%d, error=%v", orgID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /orgs/{orgId}/reports/export - Exported %s (%d bytes): org_id=%d, user_id=%d",
		result.Filename, len(result.Content), orgID, userID)

	w.Header().Set("Content-Type", exportReport.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.Filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(result.Content)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(result.Content); err != nil {
		h.logger.Warn("GET /orgs/{orgId}/reports/export - Failed to write response: %v", err)
	}
}
