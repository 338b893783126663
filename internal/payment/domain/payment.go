package domain

import (
	"bytes"
	"fmt"
)

// CurrencyID is submitted on every preference line item. The fleet
// operates in a single market; this is a literal, not configuration.
const CurrencyID = "MXN"

// ActionPaymentCreated is the only webhook action this service reacts to.
const ActionPaymentCreated = "payment.created"

// StatusApproved is the provider status that releases stock.
const StatusApproved = "approved"

// Item is one requested product line on a payment.
type Item struct {
	Name      string  `json:"nombre"`
	UnitPrice float64 `json:"precio"`
	Quantity  int     `json:"cantidad"`
}

// Total returns the purchase total over all items.
func Total(items []Item) float64 {
	var total float64
	for _, it := range items {
		total += it.UnitPrice * float64(it.Quantity)
	}
	return total
}

// PreferenceRequest is the checkout definition submitted to the provider.
type PreferenceRequest struct {
	Items             []Item
	ExternalReference string
	NotificationURL   string
}

// Preference is what the provider returns for a created checkout: the URL
// the buyer opens and the provider's identifier for the preference.
type Preference struct {
	ID         string
	PaymentURL string
}

// Payment is the provider's record of a payment, fetched on notification.
type Payment struct {
	ID                string
	Status            string
	ExternalReference string
}

// Notification is the webhook body the provider posts on payment events.
type Notification struct {
	Action string           `json:"action"`
	Data   NotificationData `json:"data"`
}

type NotificationData struct {
	ID PaymentID `json:"id"`
}

// PaymentID tolerates the provider sending the payment id as either a
// JSON string or a JSON number.
type PaymentID string

func (p *PaymentID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || string(b) == "null" {
		*p = ""
		return nil
	}
	if b[0] == '"' {
		if len(b) < 2 || b[len(b)-1] != '"' {
			return fmt.Errorf("malformed payment id %q", b)
		}
		*p = PaymentID(b[1 : len(b)-1])
		return nil
	}
	*p = PaymentID(b)
	return nil
}
