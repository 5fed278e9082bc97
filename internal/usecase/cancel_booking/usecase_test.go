package cancel_booking

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/DogPlanner-PricingService/internal/domain"
	bookingRepo "github.com/m04kA/DogPlanner-PricingService/internal/infra/storage/booking"
	"github.com/m04kA/DogPlanner-PricingService/internal/service/access"
	"github.com/m04kA/DogPlanner-PricingService/pkg/ptr"
	"github.com/m04kA/DogPlanner-PricingService/pkg/types"
)

type mockBookingRepo struct {
	mock.Mock
}

func (m *mockBookingRepo) GetByID(ctx context.Context, id int64) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

func (m *mockBookingRepo) Cancel(ctx context.Context, id int64, params bookingRepo.CancelParams) (*domain.Booking, error) {
	args := m.Called(ctx, id, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Booking), args.Error(1)
}

type mockPolicies struct {
	mock.Mock
}

func (m *mockPolicies) GetEffective(ctx context.Context, orgID int64) (*domain.OrgPolicy, error) {
	args := m.Called(ctx, orgID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.OrgPolicy), args.Error(1)
}

type mockAccess struct {
	mock.Mock
}

func (m *mockAccess) RequireOwnerOrStaff(ctx context.Context, booking *domain.Booking, userID int64) (bool, error) {
	args := m.Called(ctx, booking, userID)
	return args.Bool(0), args.Error(1)
}

type mockCache struct {
	mock.Mock
}

func (m *mockCache) InvalidateOrg(ctx context.Context, orgID int64) error {
	return m.Called(ctx, orgID).Error(0)
}

type mockMetrics struct {
	mock.Mock
}

func (m *mockMetrics) ObserveCancellation(feeRate float64) {
	m.Called(feeRate)
}

type inlineTx struct{}

func (inlineTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type fixture struct {
	bookings *mockBookingRepo
	policies *mockPolicies
	access   *mockAccess
	cache    *mockCache
	metrics  *mockMetrics
	uc       *UseCase
}

func newFixture() *fixture {
	f := &fixture{
		bookings: &mockBookingRepo{},
		policies: &mockPolicies{},
		access:   &mockAccess{},
		cache:    &mockCache{},
		metrics:  &mockMetrics{},
	}
	f.uc = NewUseCase(f.bookings, f.policies, f.access, f.cache, f.metrics, inlineTx{}, nopLogger{})
	f.uc.timeProvider = fixedTime{t: time.Date(2025, 8, 20, 9, 0, 0, 0, time.UTC)}
	f.policies.On("GetEffective", mock.Anything, int64(5)).Return(&domain.OrgPolicy{
		OrgID:        5,
		Pricing:      domain.DefaultPricingPolicy(),
		Cancellation: domain.DefaultCancellationPolicy(),
		IsDefault:    true,
	}, nil).Maybe()
	return f
}

func newBooking(start string, status domain.BookingStatus) *domain.Booking {
	startDate := types.MustParseDate(start)
	return &domain.Booking{
		ID:          42,
		OrgID:       5,
		DogID:       7,
		OwnerUserID: 11,
		StartDate:   startDate,
		EndDate:     startDate.AddDays(2),
		Status:      status,
		Tier:        domain.TierStandard,
		SizeBand:    domain.SizeMedium,
		Nights:      2,
		TotalPrice:  910,
	}
}

func cancelledCopy(b *domain.Booking, fee, refund float64) *domain.Booking {
	c := *b
	c.Status = domain.StatusCancelled
	c.CancellationFee = ptr.Ptr(fee)
	c.RefundAmount = ptr.Ptr(refund)
	c.CancelledBy = ptr.Ptr(int64(11))
	return &c
}

func TestExecute_FreeCancellation(t *testing.T) {
	f := newFixture()
	booking := newBooking("2025-09-01", domain.StatusConfirmed)

	f.bookings.On("GetByID", mock.Anything, int64(42)).Return(booking, nil)
	f.access.On("RequireOwnerOrStaff", mock.Anything, booking, int64(11)).Return(false, nil)
	f.bookings.On("Cancel", mock.Anything, int64(42), bookingRepo.CancelParams{
		Fee: 0, Refund: 910, Reason: ptr.Ptr("sjuk hund"), CancelledBy: 11,
	}).Return(cancelledCopy(booking, 0, 910), nil)
	f.metrics.On("ObserveCancellation", 0.0).Once()
	f.cache.On("InvalidateOrg", mock.Anything, int64(5)).Return(nil).Once()

	resp, err := f.uc.Execute(context.Background(), &Request{BookingID: 42, UserID: 11, Reason: ptr.Ptr("sjuk hund")})

	require.NoError(t, err)
	assert.Equal(t, "cancelled", resp.Booking.Status)
	assert.Equal(t, 12, resp.Cancellation.DaysUntilStart)
	assert.Equal(t, 0.0, resp.Cancellation.Fee)
	assert.Equal(t, 910.0, resp.Cancellation.Refund)
	assert.True(t, resp.Cancellation.CanCancel)
	assert.Contains(t, resp.Cancellation.Message, "utan kostnad")
	f.bookings.AssertExpectations(t)
	f.metrics.AssertExpectations(t)
	f.cache.AssertExpectations(t)
}

func TestExecute_HalfFee(t *testing.T) {
	f := newFixture()
	booking := newBooking("2025-08-25", domain.StatusPending)

	f.bookings.On("GetByID", mock.Anything, int64(42)).Return(booking, nil)
	f.access.On("RequireOwnerOrStaff", mock.Anything, booking, int64(11)).Return(false, nil)
	f.bookings.On("Cancel", mock.Anything, int64(42), mock.MatchedBy(func(p bookingRepo.CancelParams) bool {
		return p.Fee == 455 && p.Refund == 455 && p.Reason == nil && p.CancelledBy == 11
	})).Return(cancelledCopy(booking, 455, 455), nil)
	f.metrics.On("ObserveCancellation", 0.5).Once()
	f.cache.On("InvalidateOrg", mock.Anything, int64(5)).Return(errors.New("redis down"))

	resp, err := f.uc.Execute(context.Background(), &Request{BookingID: 42, UserID: 11})

	require.NoError(t, err)
	assert.Equal(t, 5, resp.Cancellation.DaysUntilStart)
	assert.Equal(t, 0.5, resp.Cancellation.FeeRate)
	assert.Equal(t, 455.0, resp.Cancellation.Fee)
	assert.Contains(t, resp.Cancellation.Message, "Avbokningsavgift")
	f.metrics.AssertExpectations(t)
}

func TestExecute_AlreadyStarted(t *testing.T) {
	f := newFixture()
	booking := newBooking("2025-08-19", domain.StatusConfirmed)

	f.bookings.On("GetByID", mock.Anything, int64(42)).Return(booking, nil)
	f.access.On("RequireOwnerOrStaff", mock.Anything, booking, int64(11)).Return(false, nil)

	resp, err := f.uc.Execute(context.Background(), &Request{BookingID: 42, UserID: 11})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, ErrAlreadyStarted)
	f.bookings.AssertNotCalled(t, "Cancel", mock.Anything, mock.Anything, mock.Anything)
}

func TestExecute_StatusDoesNotAllowCancel(t *testing.T) {
	f := newFixture()
	booking := newBooking("2025-09-01", domain.StatusCheckedIn)

	f.bookings.On("GetByID", mock.Anything, int64(42)).Return(booking, nil)
	f.access.On("RequireOwnerOrStaff", mock.Anything, booking, int64(3)).Return(true, nil)

	_, err := f.uc.Execute(context.Background(), &Request{BookingID: 42, UserID: 3})

	assert.ErrorIs(t, err, ErrCannotCancel)
}

func TestExecute_StartDayUsesLowestTier(t *testing.T) {
	f := newFixture()
	booking := newBooking("2025-08-20", domain.StatusConfirmed)

	f.bookings.On("GetByID", mock.Anything, int64(42)).Return(booking, nil)
	f.access.On("RequireOwnerOrStaff", mock.Anything, booking, int64(11)).Return(false, nil)
	f.bookings.On("Cancel", mock.Anything, int64(42), mock.Anything).Return(cancelledCopy(booking, 910, 0), nil)
	f.metrics.On("ObserveCancellation", 1.0).Once()
	f.cache.On("InvalidateOrg", mock.Anything, int64(5)).Return(nil)

	resp, err := f.uc.Execute(context.Background(), &Request{BookingID: 42, UserID: 11})

	require.NoError(t, err)
	assert.Equal(t, 0, resp.Cancellation.DaysUntilStart)
	assert.Equal(t, 910.0, resp.Cancellation.Fee)
	assert.Equal(t, 0.0, resp.Cancellation.Refund)
}

func TestExecute_AccessDenied(t *testing.T) {
	f := newFixture()
	booking := newBooking("2025-09-01", domain.StatusConfirmed)

	f.bookings.On("GetByID", mock.Anything, int64(42)).Return(booking, nil)
	f.access.On("RequireOwnerOrStaff", mock.Anything, booking, int64(99)).Return(false, access.ErrAccessDenied)

	_, err := f.uc.Execute(context.Background(), &Request{BookingID: 42, UserID: 99})

	assert.ErrorIs(t, err, ErrAccessDenied)
}

func TestExecute_NotFound(t *testing.T) {
	f := newFixture()
	f.bookings.On("GetByID", mock.Anything, int64(42)).Return(nil, bookingRepo.ErrBookingNotFound)

	_, err := f.uc.Execute(context.Background(), &Request{BookingID: 42, UserID: 11})

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestExecute_InvalidInput(t *testing.T) {
	long := make([]rune, domain.MaxCancellationReasonLength+1)
	for i := range long {
		long[i] = 'a'
	}

	tests := []struct {
		name string
		req  *Request
	}{
		{name: "zero booking", req: &Request{BookingID: 0, UserID: 1}},
		{name: "zero user", req: &Request{BookingID: 1, UserID: 0}},
		{name: "reason too long", req: &Request{BookingID: 1, UserID: 1, Reason: ptr.Ptr(string(long))}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			_, err := f.uc.Execute(context.Background(), tt.req)
			assert.ErrorIs(t, err, ErrInvalidInput)
		})
	}
}

func TestPreview(t *testing.T) {
	f := newFixture()
	booking := newBooking("2025-08-22", domain.StatusConfirmed)

	f.bookings.On("GetByID", mock.Anything, int64(42)).Return(booking, nil)
	f.access.On("RequireOwnerOrStaff", mock.Anything, booking, int64(11)).Return(false, nil)

	resp, err := f.uc.Preview(context.Background(), 42, 11)

	require.NoError(t, err)
	assert.Equal(t, 2, resp.DaysUntilStart)
	assert.Equal(t, 1.0, resp.FeeRate)
	assert.Equal(t, 910.0, resp.Fee)
	assert.True(t, resp.CanCancel)
	f.bookings.AssertNotCalled(t, "Cancel", mock.Anything, mock.Anything, mock.Anything)
}

func TestPreview_Started(t *testing.T) {
	f := newFixture()
	booking := newBooking("2025-08-18", domain.StatusConfirmed)

	f.bookings.On("GetByID", mock.Anything, int64(42)).Return(booking, nil)
	f.access.On("RequireOwnerOrStaff", mock.Anything, booking, int64(11)).Return(false, nil)

	resp, err := f.uc.Preview(context.Background(), 42, 11)

	require.NoError(t, err)
	assert.False(t, resp.CanCancel)
	assert.Equal(t, -2, resp.DaysUntilStart)
	assert.Contains(t, resp.Message, "redan startat")
}

func TestPreview_CancelledBooking(t *testing.T) {
	f := newFixture()
	booking := newBooking("2025-09-01", domain.StatusCancelled)

	f.bookings.On("GetByID", mock.Anything, int64(42)).Return(booking, nil)
	f.access.On("RequireOwnerOrStaff", mock.Anything, booking, int64(11)).Return(false, nil)

	resp, err := f.uc.Preview(context.Background(), 42, 11)

	require.NoError(t, err)
	assert.False(t, resp.CanCancel)
	assert.Contains(t, resp.Message, "Avbokad")
}
