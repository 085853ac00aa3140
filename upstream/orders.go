package upstream

import (
	"context"

	"github.com/cuongluu0705/Online-Electronics-Selling-System/models"
)

// Checkout places the order. The upstream API validates stock, prices
// every line itself and echoes back the authoritative totals.
func (c *Client) Checkout(ctx context.Context, token string, payload models.CheckoutPayload) (models.CheckoutResponse, error) {
	var resp models.CheckoutResponse
	if err := c.sendJSON(ctx, "POST", "/buyer/orders/checkout", token, payload, &resp); err != nil {
		return models.CheckoutResponse{}, err
	}
	return resp, nil
}
