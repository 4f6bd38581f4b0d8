// Package inventory provides a fixed-capacity container of item stacks, as held
// by chests, barrels and other container blocks. Empty slots hold nil.
//
// Slot indexes may be negative, counting back from the last slot (-1 is the last
// slot). An Inventory is not safe for concurrent mutation; it belongs to the block
// or entity that owns it.
package inventory

import (
	"errors"
	"fmt"
	"sort"

	"github.com/dyluth/mcobj/pkg/item"
)

// ErrSlotOutOfRange is returned for slot indexes outside the inventory.
var ErrSlotOutOfRange = errors.New("slot out of range")

// Inventory is an ordered list of slots, each holding an item stack or nil.
type Inventory struct {
	slots []*item.Stack
}

// New creates an empty inventory with the given number of slots.
func New(capacity int) *Inventory {
	if capacity < 0 {
		capacity = 0
	}
	return &Inventory{slots: make([]*item.Stack, capacity)}
}

// FromSlice creates an inventory with one slot per element of stacks.
// The stacks are stored as given, not cloned.
func FromSlice(stacks []*item.Stack) *Inventory {
	inv := New(len(stacks))
	copy(inv.slots, stacks)
	return inv
}

// Len returns the number of slots.
func (inv *Inventory) Len() int { return len(inv.slots) }

func (inv *Inventory) resolve(slot int) (int, error) {
	i := slot
	if i < 0 {
		i += len(inv.slots)
	}
	if i < 0 || i >= len(inv.slots) {
		return 0, fmt.Errorf("%w: %d (inventory has %d slots)", ErrSlotOutOfRange, slot, len(inv.slots))
	}
	return i, nil
}

// Get returns the stack in slot, or nil when the slot is empty.
func (inv *Inventory) Get(slot int) (*item.Stack, error) {
	i, err := inv.resolve(slot)
	if err != nil {
		return nil, err
	}
	return inv.slots[i], nil
}

// Set stores stack in slot. A nil stack empties the slot.
func (inv *Inventory) Set(slot int, stack *item.Stack) error {
	i, err := inv.resolve(slot)
	if err != nil {
		return err
	}
	inv.slots[i] = stack
	return nil
}

// Delete empties slot.
func (inv *Inventory) Delete(slot int) error {
	return inv.Set(slot, nil)
}

// Pop empties slot and returns what it held.
func (inv *Inventory) Pop(slot int) (*item.Stack, error) {
	i, err := inv.resolve(slot)
	if err != nil {
		return nil, err
	}
	s := inv.slots[i]
	inv.slots[i] = nil
	return s, nil
}

// PopLast empties the last non-empty slot and returns its stack.
// Returns nil when the inventory is empty.
func (inv *Inventory) PopLast() *item.Stack {
	for i := len(inv.slots) - 1; i >= 0; i-- {
		if s := inv.slots[i]; s != nil {
			inv.slots[i] = nil
			return s
		}
	}
	return nil
}

// Remove empties the first slot whose stack equals stack.
// Removing nil empties nothing.
func (inv *Inventory) Remove(stack *item.Stack) {
	if i := inv.Index(stack); i >= 0 {
		inv.slots[i] = nil
	}
}

// Clear empties every slot.
func (inv *Inventory) Clear() {
	clear(inv.slots)
}

// Contains reports whether any slot equals stack (nil matches an empty slot).
func (inv *Inventory) Contains(stack *item.Stack) bool {
	return inv.Index(stack) >= 0
}

// Count returns the number of slots equal to stack.
func (inv *Inventory) Count(stack *item.Stack) int {
	n := 0
	for _, s := range inv.slots {
		if s.Equal(stack) {
			n++
		}
	}
	return n
}

// Index returns the first slot equal to stack, or -1.
func (inv *Inventory) Index(stack *item.Stack) int {
	for i, s := range inv.slots {
		if s.Equal(stack) {
			return i
		}
	}
	return -1
}

// IsEmpty reports whether every slot is empty.
func (inv *Inventory) IsEmpty() bool {
	for _, s := range inv.slots {
		if s != nil {
			return false
		}
	}
	return true
}

// Reverse reverses the slot order.
func (inv *Inventory) Reverse() {
	for i, j := 0, len(inv.slots)-1; i < j; i, j = i+1, j-1 {
		inv.slots[i], inv.slots[j] = inv.slots[j], inv.slots[i]
	}
}

// Sort orders the slots with less. Sorting is stable.
func (inv *Inventory) Sort(less func(a, b *item.Stack) bool) {
	sort.SliceStable(inv.slots, func(i, j int) bool {
		return less(inv.slots[i], inv.slots[j])
	})
}

// Slots returns a copy of the slot list.
func (inv *Inventory) Slots() []*item.Stack {
	out := make([]*item.Stack, len(inv.slots))
	copy(out, inv.slots)
	return out
}

// Copy returns a shallow copy: a new slot list holding the same stacks.
func (inv *Inventory) Copy() *Inventory {
	return FromSlice(inv.slots)
}

// Clone returns a deep copy with every stack cloned.
func (inv *Inventory) Clone() *Inventory {
	out := New(len(inv.slots))
	for i, s := range inv.slots {
		out.slots[i] = s.Clone()
	}
	return out
}
