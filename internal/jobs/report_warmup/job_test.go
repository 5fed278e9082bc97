package report_warmup

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/DogPlanner-PricingService/internal/domain"
	"github.com/m04kA/DogPlanner-PricingService/pkg/types"
)

type mockOrgs struct {
	mock.Mock
}

func (m *mockOrgs) GetOrgIDsWithBookings(ctx context.Context, from, to types.Date) ([]int64, error) {
	args := m.Called(ctx, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]int64), args.Error(1)
}

type mockReports struct {
	mock.Mock
}

func (m *mockReports) Refresh(ctx context.Context, orgID int64, start, end types.Date) (*domain.ReportStats, error) {
	args := m.Called(ctx, orgID, start, end)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ReportStats), args.Error(1)
}

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestRun_RefreshesEveryOrg(t *testing.T) {
	orgs := &mockOrgs{}
	reports := &mockReports{}
	job := NewJob(orgs, reports, time.Minute, nopLogger{})
	job.timeProvider = fixedTime{t: time.Date(2025, 9, 17, 2, 0, 0, 0, time.UTC)}

	start := types.MustParseDate("2025-09-01")
	end := types.MustParseDate("2025-09-17")

	orgs.On("GetOrgIDsWithBookings", mock.Anything, start, end).Return([]int64{5, 6, 7}, nil)
	reports.On("Refresh", mock.Anything, int64(5), start, end).Return(&domain.ReportStats{OrgID: 5}, nil)
	reports.On("Refresh", mock.Anything, int64(6), start, end).Return(nil, errors.New("db timeout"))
	reports.On("Refresh", mock.Anything, int64(7), start, end).Return(&domain.ReportStats{OrgID: 7}, nil)

	refreshed, err := job.Run(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, refreshed)
	reports.AssertExpectations(t)
}

func TestRun_ListFailure(t *testing.T) {
	orgs := &mockOrgs{}
	job := NewJob(orgs, &mockReports{}, time.Minute, nopLogger{})

	orgs.On("GetOrgIDsWithBookings", mock.Anything, mock.Anything, mock.Anything).Return(nil, errors.New("db down"))

	_, err := job.Run(context.Background())

	assert.Error(t, err)
}

func TestRun_StopsOnCancelledContext(t *testing.T) {
	orgs := &mockOrgs{}
	reports := &mockReports{}
	job := NewJob(orgs, reports, time.Minute, nopLogger{})

	orgs.On("GetOrgIDsWithBookings", mock.Anything, mock.Anything, mock.Anything).Return([]int64{5}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	refreshed, err := job.Run(ctx)

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 0, refreshed)
	reports.AssertNotCalled(t, "Refresh", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestRegister(t *testing.T) {
	job := NewJob(&mockOrgs{}, &mockReports{}, time.Minute, nopLogger{})
	c := cron.New()

	id, err := job.Register(c, "0 2 * * *")
	require.NoError(t, err)
	assert.NotZero(t, id)
	assert.Len(t, c.Entries(), 1)

	_, err = job.Register(c, "not a schedule")
	assert.Error(t, err)
}
