package payments

import (
	"context"
	"fmt"

	mpconfig "github.com/mercadopago/sdk-go/pkg/config"
	"github.com/mercadopago/sdk-go/pkg/preference"
)

// Client creates a checkout for a consultation fee. Booking never fails on
// payment errors; callers log and move on.
type Client interface {
	CheckoutURL(ctx context.Context, title string, fee float64, appointmentID string) (string, error)
}

type MercadoPago struct {
	preferences preference.Client
}

func NewMercadoPago(accessToken string) (*MercadoPago, error) {
	cfg, err := mpconfig.New(accessToken)
	if err != nil {
		return nil, fmt.Errorf("payments: mercadopago config: %w", err)
	}

	return &MercadoPago{
		preferences: preference.NewClient(cfg),
	}, nil
}

func (m *MercadoPago) CheckoutURL(
	ctx context.Context,
	title string,
	fee float64,
	appointmentID string,
) (string, error) {

	resource, err := m.preferences.Create(ctx, preference.Request{
		ExternalReference: appointmentID,
		Items: []preference.ItemRequest{
			{
				Title:     title,
				Quantity:  1,
				UnitPrice: fee,
			},
		},
	})
	if err != nil {
		return "", fmt.Errorf("payments: creating preference: %w", err)
	}

	return resource.InitPoint, nil
}
