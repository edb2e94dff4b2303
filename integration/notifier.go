// Package integration holds the outbound gateways that receive a one-way
// summary of every completed booking. Delivery is best-effort: the booking
// workflow logs a failed notification and carries on.
package integration

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// ReservationSummary is the payload forwarded to the external systems. Both
// CRM and Gastro receive the same shape.
type ReservationSummary struct {
	ReservationID       uint   `json:"reservation_id"`
	CustomerName        string `json:"customer_name"`
	CustomerEmail       string `json:"customer_email"`
	CustomerPhone       string `json:"customer_phone"`
	TableNumber         int    `json:"table_number"`
	ReservationDateTime string `json:"reservation_date_time"`
	Status              string `json:"status"`
}

type Notifier interface {
	Name() string
	Notify(summary ReservationSummary) error
}

// httpClient is shared by the notifiers. The timeout keeps a slow external
// system from stalling a booking response indefinitely.
var httpClient = &http.Client{Timeout: 5 * time.Second}

func postSummary(endpoint string, summary ReservationSummary) error {
	body, err := json.Marshal(summary)
	if err != nil {
		return err
	}

	resp, err := httpClient.Post(endpoint, "application/json", bytes.NewReader(body))
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, endpoint)
	}
	return nil
}
