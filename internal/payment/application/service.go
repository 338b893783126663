package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/servivending/payment-relay/internal/payment/domain"
)

var ErrInvalidRequest = errors.New("missing machine id or products")

// Outcome classifies how a webhook notification was handled so the HTTP
// layer can map it to a status code.
type Outcome int

const (
	// OutcomeIgnored: the notification's action is not one this service
	// reacts to. Terminal, nothing was looked up or written.
	OutcomeIgnored Outcome = iota
	// OutcomeApproved: payment approved, stock update attempted.
	OutcomeApproved
	// OutcomeNotApproved: the provider reported a non-approved status.
	OutcomeNotApproved
)

type Service struct {
	log             *slog.Logger
	provider        Provider
	machines        MachineStore
	notificationURL string
}

func NewService(log *slog.Logger, provider Provider, machines MachineStore, notificationURL string) *Service {
	return &Service{
		log:             log,
		provider:        provider,
		machines:        machines,
		notificationURL: notificationURL,
	}
}

// CreatePayment validates the purchase request and opens a checkout
// preference with the provider: one line item per product, the machine id
// as external reference so the webhook can route the payment back.
func (s *Service) CreatePayment(ctx context.Context, machineID string, items []domain.Item) (domain.Preference, error) {
	if machineID == "" || len(items) == 0 {
		return domain.Preference{}, ErrInvalidRequest
	}

	total := domain.Total(items)

	pref, err := s.provider.CreatePreference(ctx, domain.PreferenceRequest{
		Items:             items,
		ExternalReference: machineID,
		NotificationURL:   s.notificationURL,
	})
	if err != nil {
		return domain.Preference{}, fmt.Errorf("create preference: %w", err)
	}

	s.log.Info("payment preference created",
		"maquina_id", machineID,
		"preference_id", pref.ID,
		"items", len(items),
		"total", total,
	)
	return pref, nil
}

// HandleNotification reacts to a provider webhook. Only "payment.created"
// is acted on; the payment is then fetched from the provider, and an
// approved status consumes stock on the referenced machine.
func (s *Service) HandleNotification(ctx context.Context, n domain.Notification) (Outcome, error) {
	if n.Action != domain.ActionPaymentCreated {
		s.log.Debug("webhook action ignored", "action", n.Action)
		return OutcomeIgnored, nil
	}

	p, err := s.provider.GetPayment(ctx, string(n.Data.ID))
	if err != nil {
		return 0, fmt.Errorf("get payment %s: %w", n.Data.ID, err)
	}

	if p.Status != domain.StatusApproved {
		s.log.Info("payment not approved", "payment_id", p.ID, "status", p.Status)
		return OutcomeNotApproved, nil
	}

	if err := s.machines.ApplyPurchase(ctx, p.ExternalReference); err != nil {
		return 0, fmt.Errorf("apply purchase: %w", err)
	}

	s.log.Info("payment approved, stock consumed",
		"payment_id", p.ID,
		"maquina_id", p.ExternalReference,
	)
	return OutcomeApproved, nil
}
