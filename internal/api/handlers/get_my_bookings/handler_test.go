package get_my_bookings

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/DogPlanner-PricingService/internal/api/middleware"
	"github.com/m04kA/DogPlanner-PricingService/internal/service/bookings"
	"github.com/m04kA/DogPlanner-PricingService/internal/service/bookings/models"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) GetMyBookings(ctx context.Context, req *models.GetMyBookingsRequest) (*models.BookingListResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.BookingListResponse), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func serve(svc BookingService, target string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.Use(middleware.Auth)
	router.HandleFunc("/api/v1/bookings/my", NewHandler(svc, nopLogger{}).Handle).Methods(http.MethodGet)

	r := httptest.NewRequest(http.MethodGet, target, nil)
	r.Header.Set(middleware.UserIDHeader, "11")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)
	return w
}

func TestHandle_WithStatusFilter(t *testing.T) {
	svc := &mockService{}
	svc.On("GetMyBookings", mock.Anything, mock.MatchedBy(func(req *models.GetMyBookingsRequest) bool {
		return req.UserID == 11 && req.Status != nil && *req.Status == "confirmed"
	})).Return(&models.BookingListResponse{
		Bookings: []models.BookingResponse{{ID: 1, Status: "confirmed"}},
	}, nil)

	w := serve(svc, "/api/v1/bookings/my?status=confirmed")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"id":1`)
	svc.AssertExpectations(t)
}

func TestHandle_EmptyList(t *testing.T) {
	svc := &mockService{}
	svc.On("GetMyBookings", mock.Anything, mock.MatchedBy(func(req *models.GetMyBookingsRequest) bool {
		return req.Status == nil
	})).Return(&models.BookingListResponse{Bookings: []models.BookingResponse{}}, nil)

	w := serve(svc, "/api/v1/bookings/my")

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"bookings":[]}`, w.Body.String())
}

func TestHandle_InvalidStatus(t *testing.T) {
	svc := &mockService{}
	svc.On("GetMyBookings", mock.Anything, mock.Anything).Return(nil, bookings.ErrInvalidInput)

	assert.Equal(t, http.StatusBadRequest, serve(svc, "/api/v1/bookings/my?status=lost").Code)
}
