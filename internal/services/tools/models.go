package tools

// OrderParams is the argument payload shared by both order functions.
// The upstream model is asked for a JSON object with a required string
// order_id; anything else fails validation as ErrInvalidArguments.
type OrderParams struct {
	OrderID string `json:"order_id" validate:"required"`
}
