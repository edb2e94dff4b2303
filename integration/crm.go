package integration

import "github.com/dineres/booking-backend/utils"

// CRMNotifier forwards booking summaries to the CRM system. With an empty
// endpoint it only logs the summary, which is enough for local development.
type CRMNotifier struct {
	Endpoint string
}

func NewCRMNotifier(endpoint string) *CRMNotifier {
	return &CRMNotifier{Endpoint: endpoint}
}

func (n *CRMNotifier) Name() string {
	return "crm"
}

func (n *CRMNotifier) Notify(summary ReservationSummary) error {
	utils.InfoLogger.Printf("Sending reservation %d to CRM (table %d, %s)",
		summary.ReservationID, summary.TableNumber, summary.ReservationDateTime)

	if n.Endpoint == "" {
		return nil
	}
	return postSummary(n.Endpoint, summary)
}
