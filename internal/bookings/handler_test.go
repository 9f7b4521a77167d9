package bookings

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func postBooking(t *testing.T, h *Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/book", strings.NewReader(body))
	h.CreateBooking(rec, req)
	return rec
}

func TestCreateBooking(t *testing.T) {
	svc := newTestService(t, "919823125293")
	h := NewHandler(svc, nil, nil)

	rec := postBooking(t, h, `{"name":"Asha Rao","phone":"9876543210","address":"12 MG Road, Pune","pincode":"411001","service_id":3}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp createResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.OK)
	assert.Len(t, resp.ID, 8)
	assert.Contains(t, resp.WALink, "https://wa.me/919823125293?text=New Booking")
	assert.Contains(t, resp.WALink, "ServiceID:3")
}

func TestCreateBookingMissingFields(t *testing.T) {
	h := NewHandler(newTestService(t, ""), nil, nil)

	rec := postBooking(t, h, `{"name":"Asha Rao","service_id":3}`)
	require.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `{"ok": false, "error": "Missing fields"}`, rec.Body.String())
}

func TestCreateBookingInvalidJSON(t *testing.T) {
	h := NewHandler(newTestService(t, ""), nil, nil)

	rec := postBooking(t, h, `{"name":`)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var resp struct {
		OK bool `json:"ok"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.False(t, resp.OK)
}
