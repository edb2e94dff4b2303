package integration

import "github.com/dineres/booking-backend/utils"

// GastroNotifier forwards booking summaries to the Gastro system.
type GastroNotifier struct {
	Endpoint string
}

func NewGastroNotifier(endpoint string) *GastroNotifier {
	return &GastroNotifier{Endpoint: endpoint}
}

func (n *GastroNotifier) Name() string {
	return "gastro"
}

func (n *GastroNotifier) Notify(summary ReservationSummary) error {
	utils.InfoLogger.Printf("Sending reservation %d to Gastro (table %d, %s)",
		summary.ReservationID, summary.TableNumber, summary.ReservationDateTime)

	if n.Endpoint == "" {
		return nil
	}
	return postSummary(n.Endpoint, summary)
}
