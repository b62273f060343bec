package tower

import "strings"

// DefaultInventoryCapacity is the standard inventory size.
const DefaultInventoryCapacity = 20

// Inventory is an ordered, fixed-capacity item container.
type Inventory struct {
	capacity int
	items    []Item
}

// NewInventory creates an empty inventory with the default capacity.
func NewInventory() *Inventory {
	return &Inventory{capacity: DefaultInventoryCapacity}
}

func (inv *Inventory) Size() int {
	return len(inv.items)
}

// Names returns the item names in order.
func (inv *Inventory) Names() []string {
	names := make([]string, 0, len(inv.items))
	for _, item := range inv.items {
		names = append(names, item.Name())
	}
	return names
}

// NamesString joins the item names for chat output.
func (inv *Inventory) NamesString() string {
	return strings.Join(inv.Names(), ", ")
}

func (inv *Inventory) IsEmpty() bool {
	return len(inv.items) == 0
}

func (inv *Inventory) IsFull() bool {
	return len(inv.items) >= inv.capacity
}

func (inv *Inventory) Clear() {
	inv.items = inv.items[:0]
}

// AddItem appends an item. Adding to a full inventory is an invalid
// operation; there is no silent drop.
func (inv *Inventory) AddItem(item Item) error {
	if inv.IsFull() {
		return InvalidOperationf("Inventory is full. Cannot add %s.", item.Name())
	}
	inv.items = append(inv.items, item)
	return nil
}

// FindItem returns the first item whose normalized name starts with the
// normalized query.
func (inv *Inventory) FindItem(query string) (int, Item, bool) {
	normalized := NormalizeItemName(query)
	for index, item := range inv.items {
		if strings.HasPrefix(NormalizeItemName(item.Name()), normalized) {
			return index, item, true
		}
	}
	return 0, nil, false
}

// PeekItem returns the item at index without removing it.
func (inv *Inventory) PeekItem(index int) (Item, error) {
	if index < 0 || index >= len(inv.items) {
		return nil, InvalidOperationf("No item at index %d. Inventory size: %d.", index, len(inv.items))
	}
	return inv.items[index], nil
}

// TakeItem removes and returns the item at index.
func (inv *Inventory) TakeItem(index int) (Item, error) {
	item, err := inv.PeekItem(index)
	if err != nil {
		return nil, err
	}
	inv.items = append(inv.items[:index], inv.items[index+1:]...)
	return item, nil
}
