package export_report

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/DogPlanner-PricingService/internal/api/middleware"
	exportReport "github.com/m04kA/DogPlanner-PricingService/internal/usecase/export_report"
	"github.com/m04kA/DogPlanner-PricingService/pkg/types"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *exportReport.Request) (*exportReport.Response, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*exportReport.Response), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(uc ExportReportUseCase, target string) *httptest.ResponseRecorder {
	h := NewHandler(uc, nopLogger{})
	h.now = func() time.Time { return time.Date(2025, 9, 17, 10, 0, 0, 0, time.UTC) }

	router := mux.NewRouter()
	router.Use(middleware.Auth)
	router.HandleFunc("/api/v1/orgs/{orgId}/reports/export", h.Handle).Methods(http.MethodGet)

	r := httptest.NewRequest(http.MethodGet, target, nil)
	r.Header.Set(middleware.UserIDHeader, "3")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)
	return w
}

func TestHandle_WritesAttachment(t *testing.T) {
	start := types.MustParseDate("2025-09-01")
	end := types.MustParseDate("2025-09-17")
	content := []byte("PK-fake-xlsx")

	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, &exportReport.Request{OrgID: 12, UserID: 3, StartDate: start, EndDate: end}).
		Return(&exportReport.Response{Filename: exportReport.Filename(start, end), Content: content}, nil)

	w := serve(uc, "/api/v1/orgs/12/reports/export")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, exportReport.ContentType, w.Header().Get("Content-Type"))
	assert.Equal(t, `attachment; filename="DogPlanner_Rapport_2025-09-01_till_2025-09-17.xlsx"`,
		w.Header().Get("Content-Disposition"))
	assert.Equal(t, content, w.Body.Bytes())
	uc.AssertExpectations(t)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{name: "invalid window", err: exportReport.ErrInvalidInput, status: http.StatusBadRequest},
		{name: "access denied", err: exportReport.ErrAccessDenied, status: http.StatusForbidden},
		{name: "workbook", err: exportReport.ErrWorkbook, status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}
			uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.err)

			w := serve(uc, "/api/v1/orgs/12/reports/export?start=2025-08-01&end=2025-08-31")

			assert.Equal(t, tt.status, w.Code)
			assert.Contains(t, w.Header().Get("Content-Type"), "application/json")
		})
	}
}
