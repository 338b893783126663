package application

import (
	"context"

	"github.com/servivending/payment-relay/internal/payment/domain"
)

// Provider is the payment-provider port: create a checkout preference,
// fetch a payment's record by id.
type Provider interface {
	CreatePreference(ctx context.Context, req domain.PreferenceRequest) (domain.Preference, error)
	GetPayment(ctx context.Context, paymentID string) (domain.Payment, error)
}

// MachineStore is the slice of the machine context this service needs:
// consume stock on the machine a payment references.
type MachineStore interface {
	ApplyPurchase(ctx context.Context, machineID string) error
}
