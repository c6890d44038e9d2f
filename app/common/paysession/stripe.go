package paysession

import (
	"context"
	"errors"

	"github.com/stripe/stripe-go/v79"
	"github.com/stripe/stripe-go/v79/checkout/session"
	"github.com/zeromicro/go-zero/core/logx"
)

type StripeConf struct {
	SecretKey  string `json:",optional"`
	SuccessURL string `json:",default=http://localhost:3000/checkout/success"`
	CancelURL  string `json:",default=http://localhost:3000"`
	Currency   string `json:",default=usd"`
	// BackendURL overrides the Stripe API endpoint, e.g. stripe-mock.
	BackendURL string `json:",optional"`
}

var ErrEmptySession = errors.New("stripe returned an empty checkout session")

type StripeCreator struct {
	client *session.Client
}

var _ Creator = (*StripeCreator)(nil)

// NewStripeCreator builds a Stripe checkout client bound to c.SecretKey.
// Network retries are disabled.
func NewStripeCreator(c StripeConf) *StripeCreator {
	cfg := &stripe.BackendConfig{
		MaxNetworkRetries: stripe.Int64(0),
		LeveledLogger:     &stripe.LeveledLogger{Level: stripe.LevelError},
	}
	if c.BackendURL != "" {
		cfg.URL = stripe.String(c.BackendURL)
	}

	return &StripeCreator{
		client: &session.Client{
			B:   stripe.GetBackendWithConfig(stripe.APIBackend, cfg),
			Key: c.SecretKey,
		},
	}
}

func (s *StripeCreator) CreateSession(ctx context.Context, req *SessionRequest) (*Session, error) {
	params := toStripeParams(req)
	params.Context = ctx

	cs, err := s.client.New(params)
	if err != nil {
		logx.WithContext(ctx).Errorf("stripe: create checkout session failed: %v", err)
		return nil, err
	}
	if cs == nil || cs.ID == "" {
		return nil, ErrEmptySession
	}

	return &Session{
		Id:  cs.ID,
		Url: cs.URL,
	}, nil
}

func toStripeParams(req *SessionRequest) *stripe.CheckoutSessionParams {
	params := &stripe.CheckoutSessionParams{
		PaymentMethodTypes: stripe.StringSlice(req.PaymentMethodTypes),
		Mode:               stripe.String(req.Mode),
		SuccessURL:         stripe.String(req.SuccessURL),
		CancelURL:          stripe.String(req.CancelURL),
	}
	if req.CustomerEmail != "" {
		params.CustomerEmail = stripe.String(req.CustomerEmail)
	}

	params.LineItems = make([]*stripe.CheckoutSessionLineItemParams, 0, len(req.LineItems))
	for _, li := range req.LineItems {
		params.LineItems = append(params.LineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency: stripe.String(li.Currency),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(li.ProductName),
				},
				UnitAmount: stripe.Int64(li.UnitAmount),
			},
			Quantity: stripe.Int64(li.Quantity),
		})
	}

	for k, v := range req.Metadata {
		params.AddMetadata(k, v)
	}

	return params
}
