package order

import (
	"bytes"
	"encoding/json"

	"github.com/shopspring/decimal"
)

// CheckoutAddresses keeps both addresses exactly as the client sent them.
type CheckoutAddresses struct {
	Billing  json.RawMessage `json:"billingAddress"`
	Shipping json.RawMessage `json:"shippingAddress"`
}

// ParseCheckoutAddresses pulls the two address values out of a create order
// body. An empty body yields no addresses.
func ParseCheckoutAddresses(body []byte) (*CheckoutAddresses, error) {
	addrs := &CheckoutAddresses{}
	if len(bytes.TrimSpace(body)) == 0 {
		return addrs, nil
	}
	if err := json.Unmarshal(body, addrs); err != nil {
		return nil, err
	}
	return addrs, nil
}

// Complete reports whether both addresses carry a value. Missing, null,
// false, "" and 0 all count as absent.
func (a *CheckoutAddresses) Complete() bool {
	return a != nil && !blank(a.Billing) && !blank(a.Shipping)
}

func blank(raw json.RawMessage) bool {
	v := bytes.TrimSpace(raw)
	if len(v) == 0 {
		return true
	}
	switch string(v) {
	case "null", "false", `""`:
		return true
	}
	if v[0] == '-' || (v[0] >= '0' && v[0] <= '9') {
		d, err := decimal.NewFromString(string(v))
		return err == nil && d.IsZero()
	}
	return false
}

// compact renders an address for session metadata, keeping the client's keys
// and their order.
func compact(raw json.RawMessage) (string, error) {
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return "", err
	}
	return buf.String(), nil
}
