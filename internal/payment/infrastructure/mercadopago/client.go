package mercadopago

import (
	"context"
	"fmt"
	"strconv"

	"github.com/mercadopago/sdk-go/pkg/config"
	mppayment "github.com/mercadopago/sdk-go/pkg/payment"
	"github.com/mercadopago/sdk-go/pkg/preference"

	"github.com/servivending/payment-relay/internal/payment/domain"
)

// Client adapts the official Mercado Pago SDK to the provider port.
type Client struct {
	preferences preference.Client
	payments    mppayment.Client
}

func NewClient(accessToken string) (*Client, error) {
	cfg, err := config.New(accessToken)
	if err != nil {
		return nil, fmt.Errorf("mercadopago config: %w", err)
	}
	return &Client{
		preferences: preference.NewClient(cfg),
		payments:    mppayment.NewClient(cfg),
	}, nil
}

func (c *Client) CreatePreference(ctx context.Context, req domain.PreferenceRequest) (domain.Preference, error) {
	items := make([]preference.ItemRequest, 0, len(req.Items))
	for _, it := range req.Items {
		items = append(items, preference.ItemRequest{
			Title:      it.Name,
			Quantity:   it.Quantity,
			UnitPrice:  it.UnitPrice,
			CurrencyID: domain.CurrencyID,
		})
	}

	resp, err := c.preferences.Create(ctx, preference.Request{
		Items:             items,
		ExternalReference: req.ExternalReference,
		NotificationURL:   req.NotificationURL,
	})
	if err != nil {
		return domain.Preference{}, fmt.Errorf("create preference: %w", err)
	}
	return domain.Preference{ID: resp.ID, PaymentURL: resp.InitPoint}, nil
}

func (c *Client) GetPayment(ctx context.Context, paymentID string) (domain.Payment, error) {
	id, err := strconv.Atoi(paymentID)
	if err != nil {
		return domain.Payment{}, fmt.Errorf("payment id %q: %w", paymentID, err)
	}

	resp, err := c.payments.Get(ctx, id)
	if err != nil {
		return domain.Payment{}, fmt.Errorf("get payment %d: %w", id, err)
	}
	return domain.Payment{
		ID:                strconv.Itoa(resp.ID),
		Status:            resp.Status,
		ExternalReference: resp.ExternalReference,
	}, nil
}
