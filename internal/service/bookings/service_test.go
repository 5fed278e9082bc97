package bookings

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/DogPlanner-PricingService/internal/domain"
	bookingRepo "github.com/m04kA/DogPlanner-PricingService/internal/infra/storage/booking"
	"github.com/m04kA/DogPlanner-PricingService/internal/service/access"
	"github.com/m04kA/DogPlanner-PricingService/internal/service/bookings/models"
	"github.com/m04kA/DogPlanner-PricingService/pkg/ptr"
	"github.com/m04kA/DogPlanner-PricingService/pkg/types"
)

type mockRepo struct {
	mock.Mock
}

func (m *mockRepo) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *mockRepo) GetByOwner(ctx context.Context, ownerUserID int64, status *domain.BookingStatus) ([]*domain.Booking, error) {
	args := m.Called(ctx, ownerUserID, status)
	return args.Get(0).([]*domain.Booking), args.Error(1)
}

func (m *mockRepo) GetByOrgWithFilter(ctx context.Context, filter domain.OrgBookingsFilter) ([]*domain.Booking, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]*domain.Booking), args.Error(1)
}

type mockAccess struct {
	mock.Mock
}

func (m *mockAccess) RequireStaff(ctx context.Context, orgID int64, userID int64) error {
	return m.Called(ctx, orgID, userID).Error(0)
}

func (m *mockAccess) RequireOwnerOrStaff(ctx context.Context, booking *domain.Booking, userID int64) (bool, error) {
	args := m.Called(ctx, booking, userID)
	return args.Bool(0), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestGetByID(t *testing.T) {
	ctx := context.Background()
	booking := &domain.Booking{
		ID:          1,
		OrgID:       5,
		OwnerUserID: 7,
		StartDate:   types.MustParseDate("2025-09-01"),
		EndDate:     types.MustParseDate("2025-09-04"),
		Status:      domain.StatusConfirmed,
		TotalPrice:  910,
	}

	repo := &mockRepo{}
	repo.On("GetByID", ctx, int64(1)).Return(booking, nil)
	repo.On("GetByID", ctx, int64(2)).Return(nil, bookingRepo.ErrBookingNotFound)

	acc := &mockAccess{}
	acc.On("RequireOwnerOrStaff", ctx, booking, int64(7)).Return(false, nil)
	acc.On("RequireOwnerOrStaff", ctx, booking, int64(8)).Return(false, access.ErrAccessDenied)

	s := NewService(repo, acc, nopLogger{})

	resp, err := s.GetByID(ctx, 1, 7)
	require.NoError(t, err)
	assert.Equal(t, 910.0, resp.Price.TotalPrice)
	assert.Equal(t, "Bekräftad", resp.StatusLabel)
	assert.Nil(t, resp.Cancellation)

	_, err = s.GetByID(ctx, 1, 8)
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = s.GetByID(ctx, 2, 7)
	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestGetMyBookings_InvalidStatus(t *testing.T) {
	s := NewService(&mockRepo{}, &mockAccess{}, nopLogger{})

	_, err := s.GetMyBookings(context.Background(), &models.GetMyBookingsRequest{UserID: 7, Status: ptr.Ptr("lost")})

	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestGetOrgBookings(t *testing.T) {
	ctx := context.Background()
	from, to := types.MustParseDate("2025-09-01"), types.MustParseDate("2025-09-30")

	repo := &mockRepo{}
	repo.On("GetByOrgWithFilter", ctx, domain.OrgBookingsFilter{OrgID: 5, From: &from, To: &to}).
		Return([]*domain.Booking{{ID: 1, OrgID: 5, Status: domain.StatusPending}}, nil)

	acc := &mockAccess{}
	acc.On("RequireStaff", ctx, int64(5), int64(3)).Return(nil)
	acc.On("RequireStaff", ctx, int64(5), int64(4)).Return(access.ErrAccessDenied)

	s := NewService(repo, acc, nopLogger{})

	resp, err := s.GetOrgBookings(ctx, &models.GetOrgBookingsRequest{UserID: 3, OrgID: 5, From: &from, To: &to})
	require.NoError(t, err)
	require.Len(t, resp.Bookings, 1)
	assert.Equal(t, "Väntande", resp.Bookings[0].StatusLabel)

	_, err = s.GetOrgBookings(ctx, &models.GetOrgBookingsRequest{UserID: 4, OrgID: 5})
	assert.ErrorIs(t, err, ErrAccessDenied)

	_, err = s.GetOrgBookings(ctx, &models.GetOrgBookingsRequest{UserID: 3, OrgID: 5, From: &to, To: &from})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
