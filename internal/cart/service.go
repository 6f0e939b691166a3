package cart

import (
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/fitmantra/fitmantra-backend/internal/catalog"
	"github.com/fitmantra/fitmantra-backend/internal/store"
)

// Service loads and saves per-user carts through the key-value store and
// funnels every mutation through the Cart invariants.
type Service struct {
	store store.Store
}

func NewService(st store.Store) *Service {
	return &Service{store: st}
}

func cartKey(userID string) string {
	return "cart:" + userID
}

// Load rehydrates the user's cart. Malformed stored data is discarded and
// logged and the cart starts empty; loading never fails the request.
func (s *Service) Load(userID string) *Cart {
	c := New()
	defer func() { c.hydrated = true }()

	data, err := s.store.Get(cartKey(userID))
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			slog.Error("failed to read cart", "user_id", userID, "error", err)
		}
		return c
	}

	var items []LineItem
	if err := json.Unmarshal(data, &items); err != nil {
		slog.Warn("discarding corrupted cart data", "user_id", userID, "error", err)
		return c
	}

	for _, item := range items {
		if item.ProductID == "" {
			continue
		}
		if item.Quantity < 1 {
			item.Quantity = 1
		}
		c.items = append(c.items, item)
	}
	return c
}

// Save persists the cart as a denormalized JSON array.
func (s *Service) Save(userID string, c *Cart) error {
	data, err := json.Marshal(c.Items())
	if err != nil {
		return err
	}
	return s.store.Set(cartKey(userID), data)
}

// AddItem loads the cart, adds or increments the product, and persists.
func (s *Service) AddItem(userID string, p catalog.Product) (*Cart, error) {
	c := s.Load(userID)
	c.AddItem(p)
	if err := s.Save(userID, c); err != nil {
		return nil, err
	}
	return c, nil
}

// RemoveItem loads the cart, deletes the line if present, and persists.
func (s *Service) RemoveItem(userID, productID string) (*Cart, error) {
	c := s.Load(userID)
	c.RemoveItem(productID)
	if err := s.Save(userID, c); err != nil {
		return nil, err
	}
	return c, nil
}

// UpdateQuantity loads the cart, applies the clamped quantity, and persists.
func (s *Service) UpdateQuantity(userID, productID string, quantity int) (*Cart, error) {
	c := s.Load(userID)
	c.UpdateQuantity(productID, quantity)
	if err := s.Save(userID, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Clear empties the user's cart in storage; called on checkout completion.
func (s *Service) Clear(userID string) error {
	return s.store.Delete(cartKey(userID))
}
