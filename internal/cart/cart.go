// Package cart holds the in-memory cart state used to price a basket.
// A Cart is owned by a single caller and is not safe for concurrent use.
package cart

import (
	"github.com/google/uuid"
)

// Key identifies a line: the same product in another size or colour is a separate line.
type Key struct {
	ProductID uuid.UUID
	Size      string
	Color     string
}

type Item struct {
	Key
	Name     string
	Image    string
	Price    float64
	Quantity int
}

func (i Item) Subtotal() float64 {
	return i.Price * float64(i.Quantity)
}

type Cart struct {
	items     map[Key]*Item
	order     []Key
	total     float64
	itemCount int
}

func New() *Cart {
	return &Cart{items: make(map[Key]*Item)}
}

// Add inserts the item or, when its key is already present, increases the quantity.
// Non-positive quantities are ignored.
func (c *Cart) Add(item Item) {
	if item.Quantity < 1 {
		return
	}

	if existing, ok := c.items[item.Key]; ok {
		existing.Quantity += item.Quantity
	} else {
		stored := item
		c.items[item.Key] = &stored
		c.order = append(c.order, item.Key)
	}

	c.recompute()
}

// UpdateQuantity sets the quantity of an existing line; below 1 removes it.
func (c *Cart) UpdateQuantity(key Key, quantity int) {
	if quantity < 1 {
		c.Remove(key)
		return
	}

	item, ok := c.items[key]
	if !ok {
		return
	}

	item.Quantity = quantity
	c.recompute()
}

func (c *Cart) Remove(key Key) {
	if _, ok := c.items[key]; !ok {
		return
	}

	delete(c.items, key)

	for i, k := range c.order {
		if k == key {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}

	c.recompute()
}

func (c *Cart) Clear() {
	c.items = make(map[Key]*Item)
	c.order = nil
	c.recompute()
}

// Items returns the lines in insertion order.
func (c *Cart) Items() []Item {
	out := make([]Item, 0, len(c.order))
	for _, k := range c.order {
		out = append(out, *c.items[k])
	}

	return out
}

func (c *Cart) Total() float64 {
	return c.total
}

func (c *Cart) ItemCount() int {
	return c.itemCount
}

func (c *Cart) Len() int {
	return len(c.order)
}

func (c *Cart) recompute() {
	c.total = 0
	c.itemCount = 0

	for _, item := range c.items {
		c.total += item.Subtotal()
		c.itemCount += item.Quantity
	}
}
