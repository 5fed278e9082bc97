package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/DogPlanner-PricingService/pkg/types"
)

type windowQuery struct {
	Start  types.Date `query:"start"`
	End    types.Date `query:"end"`
	Status *string    `query:"status"`
}

type quoteBody struct {
	OrgID int64  `json:"orgId" validate:"required,gt=0"`
	Tier  string `json:"tier" validate:"required,oneof=budget standard premium"`
}

func TestDecodeQuery(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/x?start=2025-09-01&end=2025-09-30&status=confirmed&page=2", nil)

	var q windowQuery
	require.NoError(t, DecodeQuery(r, &q))
	assert.Equal(t, "2025-09-01", q.Start.String())
	assert.Equal(t, "2025-09-30", q.End.String())
	require.NotNil(t, q.Status)
	assert.Equal(t, "confirmed", *q.Status)
}

func TestDecodeQuery_InvalidDate(t *testing.T) {
	r := httptest.NewRequest(http.MethodGet, "/x?start=01.09.2025", nil)

	var q windowQuery
	assert.Error(t, DecodeQuery(r, &q))
}

func TestDecodeJSON_RejectsUnknownFields(t *testing.T) {
	r := httptest.NewRequest(http.MethodPost, "/x", strings.NewReader(`{"orgId":1,"tier":"budget","extra":true}`))

	var body quoteBody
	assert.Error(t, DecodeJSON(r, &body))
}

func TestValidate(t *testing.T) {
	fields, err := Validate(&quoteBody{OrgID: 0, Tier: "gold"})
	require.NoError(t, err)
	assert.Equal(t, map[string]string{
		"orgId": "required",
		"tier":  "oneof=budget standard premium",
	}, fields)

	fields, err = Validate(&quoteBody{OrgID: 5, Tier: "premium"})
	require.NoError(t, err)
	assert.Nil(t, fields)
}

func TestPathInt64(t *testing.T) {
	r := mux.SetURLVars(httptest.NewRequest(http.MethodGet, "/", nil), map[string]string{"bookingId": "42"})
	id, err := PathInt64(r, "bookingId")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	r = mux.SetURLVars(r, map[string]string{"bookingId": "-1"})
	_, err = PathInt64(r, "bookingId")
	assert.Error(t, err)

	r = mux.SetURLVars(r, map[string]string{"bookingId": "abc"})
	_, err = PathInt64(r, "bookingId")
	assert.Error(t, err)
}

func TestRespondValidationError(t *testing.T) {
	w := httptest.NewRecorder()
	RespondValidationError(w, "ogiltig förfrågan", map[string]string{"tier": "required"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	var body ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "required", body.Fields["tier"])
}
