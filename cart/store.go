// Package cart persists per-buyer shopping carts in Redis so a cart
// survives logout and follows the buyer across devices.
package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/cuongluu0705/Online-Electronics-Selling-System/models"
)

// ErrOutOfStock is returned when an add would exceed available stock
// entirely (the product has none to sell).
var ErrOutOfStock = errors.New("cart: product is out of stock")

const keyPrefix = "oss:cart:"

type Store struct {
	rdb *redis.Client
}

func NewStore(rdb *redis.Client) *Store {
	return &Store{rdb: rdb}
}

func cartKey(buyerID int) string {
	return fmt.Sprintf("%s%d", keyPrefix, buyerID)
}

// Get loads the buyer's cart. A missing key is an empty cart, not an
// error.
func (s *Store) Get(ctx context.Context, buyerID int) ([]models.CartItem, error) {
	raw, err := s.rdb.Get(ctx, cartKey(buyerID)).Bytes()
	if err == redis.Nil {
		return []models.CartItem{}, nil
	}
	if err != nil {
		return nil, err
	}
	var items []models.CartItem
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("cart: corrupt cart for buyer %d: %w", buyerID, err)
	}
	return items, nil
}

// Add puts quantity units of the product in the cart, merging with an
// existing line for the same product. The resulting quantity is capped
// at available stock; a product with no stock at all is rejected.
func (s *Store) Add(ctx context.Context, buyerID int, product models.Product, quantity int) ([]models.CartItem, error) {
	if product.Stock <= 0 {
		return nil, ErrOutOfStock
	}
	if quantity < 1 {
		quantity = 1
	}

	items, err := s.Get(ctx, buyerID)
	if err != nil {
		return nil, err
	}

	merged := false
	for i := range items {
		if items[i].Product.ID == product.ID {
			items[i].Product = product
			items[i].Quantity = clamp(items[i].Quantity+quantity, 1, product.Stock)
			merged = true
			break
		}
	}
	if !merged {
		items = append(items, models.CartItem{
			Product:  product,
			Quantity: clamp(quantity, 1, product.Stock),
		})
	}

	if err := s.save(ctx, buyerID, items); err != nil {
		return nil, err
	}
	return items, nil
}

// UpdateQuantity sets a line's quantity, clamped to [1, stock]. A
// productID not in the cart is a no-op.
func (s *Store) UpdateQuantity(ctx context.Context, buyerID int, productID string, quantity int) ([]models.CartItem, error) {
	items, err := s.Get(ctx, buyerID)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].Product.ID == productID {
			items[i].Quantity = clamp(quantity, 1, items[i].Product.Stock)
			if err := s.save(ctx, buyerID, items); err != nil {
				return nil, err
			}
			break
		}
	}
	return items, nil
}

// Remove deletes a line from the cart. Removing an absent productID is
// a no-op.
func (s *Store) Remove(ctx context.Context, buyerID int, productID string) ([]models.CartItem, error) {
	items, err := s.Get(ctx, buyerID)
	if err != nil {
		return nil, err
	}
	kept := items[:0]
	removed := false
	for _, item := range items {
		if item.Product.ID == productID {
			removed = true
			continue
		}
		kept = append(kept, item)
	}
	if removed {
		if err := s.save(ctx, buyerID, kept); err != nil {
			return nil, err
		}
	}
	return kept, nil
}

// Clear empties the buyer's cart. Called after a successful checkout.
func (s *Store) Clear(ctx context.Context, buyerID int) error {
	return s.rdb.Del(ctx, cartKey(buyerID)).Err()
}

func (s *Store) save(ctx context.Context, buyerID int, items []models.CartItem) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, cartKey(buyerID), raw, 0).Err()
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
