package access

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/DogPlanner-PricingService/internal/domain"
	"github.com/m04kA/DogPlanner-PricingService/internal/integrations/orgservice"
)

type mockOrgClient struct {
	mock.Mock
}

func (m *mockOrgClient) GetOrganization(ctx context.Context, orgID int64) (*orgservice.Organization, error) {
	args := m.Called(ctx, orgID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*orgservice.Organization), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func TestRequireStaff(t *testing.T) {
	ctx := context.Background()
	client := &mockOrgClient{}
	client.On("GetOrganization", ctx, int64(1)).Return(&orgservice.Organization{ID: 1, StaffUserIDs: []int64{10}}, nil)
	client.On("GetOrganization", ctx, int64(2)).Return(nil, orgservice.ErrOrgNotFound)
	client.On("GetOrganization", ctx, int64(3)).Return(nil, errors.New("timeout"))

	c := NewChecker(client, nopLogger{})

	assert.NoError(t, c.RequireStaff(ctx, 1, 10))
	assert.ErrorIs(t, c.RequireStaff(ctx, 1, 11), ErrAccessDenied)
	assert.ErrorIs(t, c.RequireStaff(ctx, 2, 10), ErrOrgNotFound)
	assert.ErrorIs(t, c.RequireStaff(ctx, 3, 10), ErrInternal)
}

func TestRequireOwnerOrStaff(t *testing.T) {
	ctx := context.Background()
	client := &mockOrgClient{}
	client.On("GetOrganization", ctx, int64(1)).Return(&orgservice.Organization{ID: 1, StaffUserIDs: []int64{10}}, nil)

	c := NewChecker(client, nopLogger{})
	booking := &domain.Booking{ID: 5, OrgID: 1, OwnerUserID: 7}

	asStaff, err := c.RequireOwnerOrStaff(ctx, booking, 7)
	require.NoError(t, err)
	assert.False(t, asStaff)
	client.AssertNotCalled(t, "GetOrganization", ctx, int64(1))

	asStaff, err = c.RequireOwnerOrStaff(ctx, booking, 10)
	require.NoError(t, err)
	assert.True(t, asStaff)

	_, err = c.RequireOwnerOrStaff(ctx, booking, 99)
	assert.ErrorIs(t, err, ErrAccessDenied)
}
