package update_status

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/DogPlanner-PricingService/internal/api/middleware"
	"github.com/m04kA/DogPlanner-PricingService/internal/service/bookings/models"
	updateStatus "github.com/m04kA/DogPlanner-PricingService/internal/usecase/update_status"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *updateStatus.Request) (*models.BookingResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BookingResponse), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(uc UpdateStatusUseCase, body string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.Use(middleware.Auth)
	router.HandleFunc("/api/v1/bookings/{bookingId}/status", NewHandler(uc, nopLogger{}).Handle).Methods(http.MethodPatch)

	r := httptest.NewRequest(http.MethodPatch, "/api/v1/bookings/7/status", strings.NewReader(body))
	r.Header.Set(middleware.UserIDHeader, "3")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)
	return w
}

func TestHandle_Success(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, &updateStatus.Request{BookingID: 7, UserID: 3, Status: "checked_in"}).
		Return(&models.BookingResponse{ID: 7, Status: "checked_in"}, nil)

	w := serve(uc, `{"status":"checked_in"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"checked_in"`)
	uc.AssertExpectations(t)
}

func TestHandle_RejectsCancelledStatus(t *testing.T) {
	uc := &mockUseCase{}

	w := serve(uc, `{"status":"cancelled"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"oneof`)
	uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{name: "not found", err: updateStatus.ErrBookingNotFound, status: http.StatusNotFound},
		{name: "access denied", err: updateStatus.ErrAccessDenied, status: http.StatusForbidden},
		{name: "invalid transition", err: updateStatus.ErrInvalidTransition, status: http.StatusConflict},
		{name: "internal", err: updateStatus.ErrInternal, status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}
			uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.err)

			assert.Equal(t, tt.status, serve(uc, `{"status":"confirmed"}`).Code)
		})
	}
}
