package order_controller

import (
	"encoding/json"
	"log"
	"sort"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/cuongluu0705/Online-Electronics-Selling-System/config"
	"github.com/cuongluu0705/Online-Electronics-Selling-System/models"
)

const orderKeyPrefix = "oss:order:"

// listConfirmations scans every stored order confirmation and returns
// them newest first. A corrupt entry is skipped, not fatal: one bad
// record must not blank the whole console.
func listConfirmations() ([]models.Order, error) {
	orders := []models.Order{}
	var cursor uint64
	for {
		keys, next, err := config.RedisClient.Scan(config.Ctx, cursor, orderKeyPrefix+"*", 100).Result()
		if err != nil {
			return nil, err
		}
		for _, key := range keys {
			raw, err := config.RedisClient.Get(config.Ctx, key).Bytes()
			if err == redis.Nil {
				// Expired between scan and read
				continue
			}
			if err != nil {
				return nil, err
			}
			var order models.Order
			if err := json.Unmarshal(raw, &order); err != nil {
				log.Printf("[backoffice.orders] skipping corrupt confirmation %s: %v", key, err)
				continue
			}
			orders = append(orders, order)
		}
		cursor = next
		if cursor == 0 {
			break
		}
	}
	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	return orders, nil
}

func loadConfirmation(orderID string) (models.Order, error) {
	raw, err := config.RedisClient.Get(config.Ctx, orderKeyPrefix+orderID).Bytes()
	if err != nil {
		return models.Order{}, err
	}
	var order models.Order
	if err := json.Unmarshal(raw, &order); err != nil {
		return models.Order{}, err
	}
	return order, nil
}

// matchesSearch mirrors the console's search box: order ID, customer
// name or recipient name, case-insensitive substring.
func matchesSearch(order models.Order, q string) bool {
	if q == "" {
		return true
	}
	q = strings.ToLower(q)
	return strings.Contains(strings.ToLower(order.ID), q) ||
		strings.Contains(strings.ToLower(order.CustomerName), q) ||
		strings.Contains(strings.ToLower(order.RecipientName), q)
}
