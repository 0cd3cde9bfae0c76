package entity

import "errors"

var ErrInvalidQuantity = errors.New("quantity must be a positive integer")

type CartItem struct {
	Product      Product `json:"product"`
	Quantity     int     `json:"quantity"`
	Observations string  `json:"observations,omitempty"`
}

// Cart holds at most one entry per product id, in the order items were
// first added. All derived values are recomputed from the entries on
// every call.
type Cart struct {
	Items []CartItem `json:"items"`
}

// AddItem merges into an existing entry when the product is already
// present. An existing observation is only overwritten when a new one
// is supplied.
func (c *Cart) AddItem(product Product, quantity int, observations string) error {
	if quantity <= 0 {
		return ErrInvalidQuantity
	}

	for i := range c.Items {
		if c.Items[i].Product.ID == product.ID {
			c.Items[i].Quantity += quantity
			if observations != "" {
				c.Items[i].Observations = observations
			}
			return nil
		}
	}

	c.Items = append(c.Items, CartItem{Product: product, Quantity: quantity, Observations: observations})
	return nil
}

// RemoveItem is a no-op when the product is not in the cart.
func (c *Cart) RemoveItem(productID string) {
	for i := range c.Items {
		if c.Items[i].Product.ID == productID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return
		}
	}
}

// UpdateQuantity overwrites the entry quantity; a quantity of zero or
// less removes the entry.
func (c *Cart) UpdateQuantity(productID string, quantity int) {
	if quantity <= 0 {
		c.RemoveItem(productID)
		return
	}

	for i := range c.Items {
		if c.Items[i].Product.ID == productID {
			c.Items[i].Quantity = quantity
			return
		}
	}
}

func (c *Cart) Clear() {
	c.Items = nil
}

func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}

// ItemCount is the sum of entry quantities.
func (c *Cart) ItemCount() int {
	count := 0
	for _, item := range c.Items {
		count += item.Quantity
	}
	return count
}

// Subtotal is the sum of price times quantity over all entries.
func (c *Cart) Subtotal() float64 {
	total := 0.0
	for _, item := range c.Items {
		total += item.Product.Price * float64(item.Quantity)
	}
	return total
}

// Snapshot returns a decoupled copy of the entries so an in-flight
// checkout is never affected by later cart mutations.
func (c *Cart) Snapshot() []CartItem {
	items := make([]CartItem, len(c.Items))
	copy(items, c.Items)
	return items
}
