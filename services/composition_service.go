// services/composition_service.go
package services

import (
	"sync"

	"github.com/matheuarenivas/Hygieia/models"
	"github.com/matheuarenivas/Hygieia/utils"
)

// CompositionStore holds each user's in-progress, unsaved meal. One
// composition per user; it only leaves memory when saved into the ledger.
type CompositionStore struct {
	mu     sync.Mutex
	byUser map[uint]*models.Composition
}

func NewCompositionStore() *CompositionStore {
	return &CompositionStore{byUser: make(map[uint]*models.Composition)}
}

func (s *CompositionStore) get(userID uint) *models.Composition {
	c := s.byUser[userID]
	if c == nil {
		c = &models.Composition{MealType: "Breakfast"}
		s.byUser[userID] = c
	}
	return c
}

func copyComposition(c *models.Composition) models.Composition {
	out := models.Composition{MealType: c.MealType}
	out.Foods = append([]models.SelectedFood(nil), c.Foods...)
	return out
}

// Get returns a snapshot of the user's composition.
func (s *CompositionStore) Get(userID uint) models.Composition {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyComposition(s.get(userID))
}

func (s *CompositionStore) SetMealType(userID uint, mealType string) models.Composition {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.get(userID)
	c.MealType = mealType
	return copyComposition(c)
}

// AddFood appends the item with quantity 1. Duplicates are allowed; the
// composition is an ordered sequence, not a set.
func (s *CompositionStore) AddFood(userID uint, food models.FoodItem) models.Composition {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.get(userID)
	c.Foods = append(c.Foods, models.SelectedFood{Food: food, Quantity: 1})
	return copyComposition(c)
}

// RemoveFood drops every row of that catalog item.
func (s *CompositionStore) RemoveFood(userID uint, foodID uint) models.Composition {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.get(userID)
	kept := c.Foods[:0]
	for _, f := range c.Foods {
		if f.Food.ID != foodID {
			kept = append(kept, f)
		}
	}
	c.Foods = kept
	return copyComposition(c)
}

// SetQuantity sets the quantity for every row of the item, floored at 1.
func (s *CompositionStore) SetQuantity(userID uint, foodID uint, quantity int) models.Composition {
	if quantity < 1 {
		quantity = 1
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.get(userID)
	for i := range c.Foods {
		if c.Foods[i].Food.ID == foodID {
			c.Foods[i].Quantity = quantity
		}
	}
	return copyComposition(c)
}

func (s *CompositionStore) IncrementQuantity(userID uint, foodID uint) models.Composition {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.get(userID)
	for i := range c.Foods {
		if c.Foods[i].Food.ID == foodID {
			c.Foods[i].Quantity++
		}
	}
	return copyComposition(c)
}

// DecrementQuantity clamps at 1; going below is a no-op, not an error.
func (s *CompositionStore) DecrementQuantity(userID uint, foodID uint) models.Composition {
	s.mu.Lock()
	defer s.mu.Unlock()
	c := s.get(userID)
	for i := range c.Foods {
		if c.Foods[i].Food.ID == foodID && c.Foods[i].Quantity > 1 {
			c.Foods[i].Quantity--
		}
	}
	return copyComposition(c)
}

// Totals recomputes the running macro sums for the composition.
func (s *CompositionStore) Totals(userID uint) models.MacroTotals {
	s.mu.Lock()
	defer s.mu.Unlock()
	return utils.CompositionTotals(s.get(userID).Foods)
}

// Clear resets the user's composition after a save or cancel.
func (s *CompositionStore) Clear(userID uint) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.byUser, userID)
}
