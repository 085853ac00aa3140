package order_controller

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/cuongluu0705/Online-Electronics-Selling-System/cart"
	"github.com/cuongluu0705/Online-Electronics-Selling-System/checkout"
	"github.com/cuongluu0705/Online-Electronics-Selling-System/config"
	"github.com/cuongluu0705/Online-Electronics-Selling-System/models"
	"github.com/cuongluu0705/Online-Electronics-Selling-System/upstream"
)

// Confirmations are kept long enough for the buyer to review and
// download the invoice, then expire.
const confirmationTTL = 24 * time.Hour

var (
	client *upstream.Client
	store  *cart.Store
	policy checkout.PricingPolicy
)

// Init wires the upstream client, cart store and pricing policy. Call
// once at startup.
func Init(c *upstream.Client, s *cart.Store, p checkout.PricingPolicy) {
	client = c
	store = s
	policy = p
}

func orderKey(orderID string) string {
	return "oss:order:" + orderID
}

func saveConfirmation(order models.Order) error {
	raw, err := json.Marshal(order)
	if err != nil {
		return err
	}
	return config.RedisClient.Set(config.Ctx, orderKey(order.ID), raw, confirmationTTL).Err()
}

func loadConfirmation(orderID string) (models.Order, error) {
	raw, err := config.RedisClient.Get(config.Ctx, orderKey(orderID)).Bytes()
	if err != nil {
		return models.Order{}, err
	}
	var order models.Order
	if err := json.Unmarshal(raw, &order); err != nil {
		return models.Order{}, fmt.Errorf("corrupt confirmation %s: %w", orderID, err)
	}
	return order, nil
}
