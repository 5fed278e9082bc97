package cancel_booking

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
	cancelBooking "github.com/m04kA/DogPlanner-PricingService/internal/usecase/cancel_booking"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *cancelBooking.Request) (*cancelBooking.Response, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cancelBooking.Response), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(uc CancelBookingUseCase, bookingID string, body string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.Use(middleware.Auth)
	router.HandleFunc("/api/v1/bookings/{bookingId}/cancel", NewHandler(uc, nopLogger{}).Handle).Methods(http.MethodPatch)

	r := httptest.NewRequest(http.MethodPatch, "/api/v1/bookings/"+bookingID+"/cancel", strings.NewReader(body))
	r.Header.Set(middleware.UserIDHeader, "11")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)
	return w
}

func TestHandle_WithReason(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, mock.MatchedBy(func(req *cancelBooking.Request) bool {
		return req.BookingID == 42 && req.UserID == 11 && req.Reason != nil && *req.Reason == "sjuk"
	})).Return(&cancelBooking.Response{
		Booking:      &models.BookingResponse{ID: 42, Status: "cancelled"},
		Cancellation: cancelBooking.CalculationResponse{Fee: 455, Refund: 455, CanCancel: true},
	}, nil)

	w := serve(uc, "42", `{"reason":"sjuk"}`)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"refund":455`)
}

func TestHandle_EmptyBody(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, mock.MatchedBy(func(req *cancelBooking.Request) bool {
		return req.BookingID == 42 && req.Reason == nil
	})).Return(&cancelBooking.Response{Booking: &models.BookingResponse{ID: 42}}, nil)

	assert.Equal(t, http.StatusOK, serve(uc, "42", "").Code)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
	}{
		{name: "not found", err: cancelBooking.ErrBookingNotFound, status: http.StatusNotFound},
		{name: "forbidden", err: cancelBooking.ErrAccessDenied, status: http.StatusForbidden},
		{name: "started", err: cancelBooking.ErrAlreadyStarted, status: http.StatusConflict},
		{name: "status", err: cancelBooking.ErrCannotCancel, status: http.StatusConflict},
		{name: "internal", err: cancelBooking.ErrInternal, status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}
			uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.err)

			assert.Equal(t, tt.status, serve(uc, "42", "").Code)
		})
	}
}

func TestHandle_ReasonTooLong(t *testing.T) {
	w := serve(&mockUseCase{}, "42", `{"reason":"`+strings.Repeat("x", 501)+`"}`)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
