package quote

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/DogPlanner-PricingService/internal/api/handlers"
	quotePrice "github.com/m04kA/DogPlanner-PricingService/internal/usecase/quote_price"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *quotePrice.Request) (*quotePrice.Response, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*quotePrice.Response), args.Error(1)
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func post(h *Handler, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	h.Handle(w, httptest.NewRequest(http.MethodPost, "/api/v1/quotes", strings.NewReader(body)))
	return w
}

func TestHandle_OK(t *testing.T) {
	uc := &mockUseCase{}
	h := NewHandler(uc, nopLogger{})

	uc.On("Execute", mock.Anything, mock.MatchedBy(func(req *quotePrice.Request) bool {
		return req.OrgID == 5 && req.Tier == "standard" &&
			req.StartDate.String() == "2025-09-01" && req.EndDate.String() == "2025-09-04" &&
			req.HeightCm != nil && *req.HeightCm == 40
	})).Return(&quotePrice.Response{OrgID: 5, Tier: "standard", SizeBand: "medium", Nights: 3, TotalCost: 1365}, nil)

	w := post(h, `{"orgId":5,"heightCm":40,"tier":"standard","startDate":"2025-09-01","endDate":"2025-09-04"}`)

	require.Equal(t, http.StatusOK, w.Code)
	var resp quotePrice.Response
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 1365.0, resp.TotalCost)
	assert.Equal(t, 3, resp.Nights)
}

func TestHandle_ValidationFields(t *testing.T) {
	h := NewHandler(&mockUseCase{}, nopLogger{})

	w := post(h, `{"orgId":5,"tier":"gold","startDate":"2025-09-01","endDate":"2025-09-04"}`)

	require.Equal(t, http.StatusBadRequest, w.Code)
	var body handlers.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Contains(t, body.Fields, "tier")
}

func TestHandle_BadJSON(t *testing.T) {
	h := NewHandler(&mockUseCase{}, nopLogger{})

	assert.Equal(t, http.StatusBadRequest, post(h, `{"orgId":`).Code)
	assert.Equal(t, http.StatusBadRequest, post(h, `{"tier":"budget","startDate":"1/9/2025"}`).Code)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		err    error
		status int
	}{
		{err: fmt.Errorf("%w: end before start", quotePrice.ErrInvalidInput), status: http.StatusBadRequest},
		{err: quotePrice.ErrDogNotFound, status: http.StatusNotFound},
		{err: quotePrice.ErrInternal, status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			uc := &mockUseCase{}
			uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.err)

			w := post(NewHandler(uc, nopLogger{}), `{"tier":"budget","dogId":3,"startDate":"2025-09-01","endDate":"2025-09-02"}`)

			assert.Equal(t, tt.status, w.Code)
		})
	}
}
