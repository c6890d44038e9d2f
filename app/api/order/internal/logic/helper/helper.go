package helper

import (
	"encoding/json"
	"time"

	"Storefront/app/api/order/internal/types"
	orderdal "Storefront/app/dal/order"
)

func ToProducts(raw string) []types.ProductRef {
	products := []types.ProductRef{}
	if raw == "" {
		return products
	}
	if err := json.Unmarshal([]byte(raw), &products); err != nil {
		return []types.ProductRef{}
	}
	return products
}

func formatTime(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}

func ToOrderInfo(src *orderdal.Orders) types.OrderInfo {
	if src == nil {
		return types.OrderInfo{}
	}
	return types.OrderInfo{
		Id:                src.Id,
		UserName:          src.UserName,
		Products:          ToProducts(src.Products),
		StripeSessionId:   src.StripeSessionId,
		Email:             src.Email,
		PhoneNumber:       src.PhoneNumber,
		BillingFirstName:  src.BillingFirstName,
		BillingLastName:   src.BillingLastName,
		BillingCountry:    src.BillingCountry,
		Billingstreet1:    src.Billingstreet1,
		BillingStreet2:    src.BillingStreet2,
		BillingCity:       src.BillingCity,
		BillingState:      src.BillingState,
		BillingZipCode:    src.BillingZipCode,
		ShippingFirstName: src.ShippingFirstName,
		ShippingLastName:  src.ShippingLastName,
		ShippingCountry:   src.ShippingCountry,
		Shippingstreet1:   src.Shippingstreet1,
		ShippingStreet2:   src.ShippingStreet2,
		ShippingCity:      src.ShippingCity,
		ShippingState:     src.ShippingState,
		ShippingZipCode:   src.ShippingZipCode,
		CreatedAt:         formatTime(src.CreatedAt),
		UpdatedAt:         formatTime(src.UpdatedAt),
	}
}
