package errno

// Codes carried by errors.CodeMsg. Each one is also the HTTP status
// returned to the caller.
const (
	InvalidParam  = 400
	NotFound      = 404
	InternalError = 500
)

// Client-facing messages.
const (
	AddressRequired = "Both billingAddress and shippingAddress are required"
	ChargeFailed    = "There was a problem creating the charge"
	OrderNotFound   = "order not found"
	InvalidOrderId  = "invalid order id"
	InvalidSession  = "invalid session id"
	Internal        = "internal server error"
)
