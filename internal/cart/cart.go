package cart

import "github.com/fitmantra/fitmantra-backend/internal/catalog"

// LineItem is a cart row: a catalog product denormalized with a quantity.
// Quantity is never below 1; removing a row is always an explicit RemoveItem.
type LineItem struct {
	ProductID string  `json:"product_id"`
	Name      string  `json:"name"`
	PriceINR  float64 `json:"price_inr"`
	PriceUSD  float64 `json:"price_usd"`
	Image     string  `json:"image"`
	Quantity  int     `json:"quantity"`
}

// Cart holds at most one line item per product id, in insertion order.
// Counts and totals read as zero until the cart has been hydrated from
// storage, so callers never see stale numbers mid-load.
type Cart struct {
	items    []LineItem
	hydrated bool
}

func New() *Cart {
	return &Cart{}
}

// AddItem appends a new line with quantity 1, or increments the quantity if
// the product is already in the cart. Existing item order is preserved.
func (c *Cart) AddItem(p catalog.Product) {
	for i := range c.items {
		if c.items[i].ProductID == p.ID {
			c.items[i].Quantity++
			return
		}
	}
	c.items = append(c.items, LineItem{
		ProductID: p.ID,
		Name:      p.Name,
		PriceINR:  p.PriceINR,
		PriceUSD:  p.PriceUSD,
		Image:     p.Image,
		Quantity:  1,
	})
}

// RemoveItem deletes the line for the product id; no-op if absent.
func (c *Cart) RemoveItem(productID string) {
	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

// UpdateQuantity sets the item's quantity to max(1, quantity). The cart
// never drops an item implicitly: a zero or negative quantity clamps to 1,
// and callers that mean "remove" must call RemoveItem.
func (c *Cart) UpdateQuantity(productID string, quantity int) {
	if quantity < 1 {
		quantity = 1
	}
	for i := range c.items {
		if c.items[i].ProductID == productID {
			c.items[i].Quantity = quantity
			return
		}
	}
}

// ItemCount is the sum of quantities, or 0 before hydration.
func (c *Cart) ItemCount() int {
	if !c.hydrated {
		return 0
	}
	total := 0
	for _, item := range c.items {
		total += item.Quantity
	}
	return total
}

// TotalINR is the sum of price × quantity in the primary currency, or 0
// before hydration.
func (c *Cart) TotalINR() float64 {
	if !c.hydrated {
		return 0
	}
	var total float64
	for _, item := range c.items {
		total += item.PriceINR * float64(item.Quantity)
	}
	return total
}

// Clear empties the cart; used on checkout completion.
func (c *Cart) Clear() {
	c.items = nil
}

// Items returns a copy of the lines in insertion order.
func (c *Cart) Items() []LineItem {
	out := make([]LineItem, len(c.items))
	copy(out, c.items)
	return out
}

func (c *Cart) IsEmpty() bool {
	return len(c.items) == 0
}

func (c *Cart) Hydrated() bool {
	return c.hydrated
}
