// Package cart holds a customer's in-progress class selection. A cart lives
// in memory for the session lifetime and is never persisted.
package cart

import (
	"sync"

	"yogabooker/internal/models"
)

// MaxItems is the hard cap on distinct classes in one cart.
const MaxItems = 10

// Outcome reports the result of an Add.
type Outcome int

const (
	Added Outcome = iota
	AlreadyPresent
	Full
)

func (o Outcome) String() string {
	switch o {
	case Added:
		return "added"
	case AlreadyPresent:
		return "already_present"
	case Full:
		return "full"
	default:
		return "unknown"
	}
}

// Cart is an ordered set of cart items, unique by instance id, bounded by
// MaxItems. Handlers for one session may run on different goroutines, so
// mutations are mutex-guarded.
type Cart struct {
	mu    sync.Mutex
	items []models.CartItem
}

func New() *Cart {
	return &Cart{}
}

// Add snapshots the instance into the cart. The uniqueness check runs before
// the capacity check, so re-adding a present item in a full cart reports
// AlreadyPresent, not Full.
func (c *Cart) Add(instance models.ClassInstance) Outcome {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, item := range c.items {
		if item.InstanceID == instance.ID {
			return AlreadyPresent
		}
	}

	if len(c.items) >= MaxItems {
		return Full
	}

	c.items = append(c.items, models.NewCartItem(instance))

	return Added
}

// Remove deletes the item with the given instance id. Removing an absent id
// is a no-op.
func (c *Cart) Remove(instanceID int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for i, item := range c.items {
		if item.InstanceID == instanceID {
			c.items = append(c.items[:i], c.items[i+1:]...)
			return
		}
	}
}

func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.items = nil
}

func (c *Cart) IsEmpty() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.items) == 0
}

func (c *Cart) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.items)
}

// Items returns a copy of the cart contents in insertion order.
func (c *Cart) Items() []models.CartItem {
	c.mu.Lock()
	defer c.mu.Unlock()

	items := make([]models.CartItem, len(c.items))
	copy(items, c.items)

	return items
}

// InstanceIDs returns the selected instance ids in insertion order.
func (c *Cart) InstanceIDs() []int {
	c.mu.Lock()
	defer c.mu.Unlock()

	ids := make([]int, 0, len(c.items))
	for _, item := range c.items {
		ids = append(ids, item.InstanceID)
	}

	return ids
}
