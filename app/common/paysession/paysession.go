package paysession

import "context"

const (
	PaymentMethodCard = "card"
	ModePayment       = "payment"
)

type LineItem struct {
	Currency    string
	ProductName string
	UnitAmount  int64 // minor units
	Quantity    int64
}

type SessionRequest struct {
	PaymentMethodTypes []string
	CustomerEmail      string
	Mode               string
	SuccessURL         string
	CancelURL          string
	LineItems          []LineItem
	Metadata           map[string]string
}

type Session struct {
	Id  string
	Url string
}

// Creator opens a hosted checkout session at the payment provider.
type Creator interface {
	CreateSession(ctx context.Context, req *SessionRequest) (*Session, error)
}
