package integration_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dineres/booking-backend/integration"
	"github.com/dineres/booking-backend/utils"
)

func summaryFixture() integration.ReservationSummary {
	return integration.ReservationSummary{
		ReservationID:       1,
		CustomerName:        "John Doe",
		CustomerEmail:       "john@example.com",
		CustomerPhone:       "0123456789",
		TableNumber:         1,
		ReservationDateTime: "2025-08-25T19:00",
		Status:              "BOOKED",
	}
}

func TestNotifierPostsSummary(t *testing.T) {
	utils.InitLogger()

	var received integration.ReservationSummary
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	crm := integration.NewCRMNotifier(server.URL)
	assert.NoError(t, crm.Notify(summaryFixture()))
	assert.Equal(t, summaryFixture(), received)
}

func TestNotifierReportsServerError(t *testing.T) {
	utils.InitLogger()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	gastro := integration.NewGastroNotifier(server.URL)
	assert.Error(t, gastro.Notify(summaryFixture()))
}

func TestNotifierWithoutEndpointOnlyLogs(t *testing.T) {
	utils.InitLogger()

	crm := integration.NewCRMNotifier("")
	assert.NoError(t, crm.Notify(summaryFixture()))
}
