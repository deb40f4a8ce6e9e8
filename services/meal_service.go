package services

import (
	"errors"
	"strings"
	"sync"

	"github.com/Satya2834/PubFitnessStudio-web/models"

	"github.com/google/uuid"
)

// ErrEmptySelection blocks submission of a day with no line items, so an
// all-zero record is never persisted.
var ErrEmptySelection = errors.New("please add at least one item")

// MealService holds the in-progress day's working selection. Line items live
// only here: submission persists the aggregate and clears them.
type MealService struct {
	catalog *CatalogService

	mu       sync.Mutex
	selected []models.MealLineItem
	water    float64
}

func NewMealService(catalog *CatalogService) *MealService {
	return &MealService{catalog: catalog}
}

// AddSelection looks foodName up in the catalog and appends a fresh line item
// for the slot. An unknown food is a silent no-op, matching the app's
// behavior when a search input doesn't resolve to a catalog entry.
func (s *MealService) AddSelection(slot models.MealSlot, foodName string) (*models.MealLineItem, bool) {
	food, found := s.catalog.FindByName(foodName)
	if !found {
		return nil, false
	}

	item := models.MealLineItem{
		ID:   uuid.NewString(),
		Slot: slot,
		Food: food,
	}
	s.mu.Lock()
	s.selected = append(s.selected, item)
	s.mu.Unlock()
	return &item, true
}

// RemoveSelection drops the line item with the given id; no-op if absent.
func (s *MealService) RemoveSelection(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, item := range s.selected {
		if item.ID == id {
			s.selected = append(s.selected[:i], s.selected[i+1:]...)
			return
		}
	}
}

// ItemsForSlot returns the current selection for one slot, in insertion order.
func (s *MealService) ItemsForSlot(slot models.MealSlot) []models.MealLineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.MealLineItem, 0)
	for _, item := range s.selected {
		if item.Slot == slot {
			out = append(out, item)
		}
	}
	return out
}

// Items returns the whole working selection in insertion order.
func (s *MealService) Items() []models.MealLineItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.MealLineItem, len(s.selected))
	copy(out, s.selected)
	return out
}

// SetWater records the day's water intake in milliliters alongside the
// selection.
func (s *MealService) SetWater(ml float64) {
	s.mu.Lock()
	s.water = ml
	s.mu.Unlock()
}

func (s *MealService) Water() float64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.water
}

// Aggregate reduces line items to per-nutrient daily sums. Empty input yields
// all zeros; the sum is order-independent.
func Aggregate(items []models.MealLineItem) models.DayTotals {
	var t models.DayTotals
	for _, item := range items {
		t.Calories += item.Food.EnergyKcal
		t.Proteins += item.Food.ProteinG
		t.Carbs += item.Food.CarbG
		t.Fats += item.Food.FatG
	}
	return t
}

// slotNames joins the food names selected for one slot, comma-separated.
// This is the breakdown format the remote store records.
func slotNames(items []models.MealLineItem, slot models.MealSlot) string {
	names := make([]string, 0)
	for _, item := range items {
		if item.Slot == slot {
			names = append(names, item.Food.Name)
		}
	}
	return strings.Join(names, ", ")
}

// Submit aggregates the working selection into a day record for date, pushes
// it to the remote store and upserts the local ledger. The local write is
// attempted regardless of the remote outcome; a remote failure is returned
// separately so the caller can surface an alert without losing the day.
// On success the selection and water intake are cleared.
func (s *MealService) Submit(ledger *LedgerService, remote *RemoteClient, deviceID, username, date string) (rec *models.DayRecord, remoteErr error, err error) {
	s.mu.Lock()
	items := make([]models.MealLineItem, len(s.selected))
	copy(items, s.selected)
	water := s.water
	s.mu.Unlock()

	if len(items) == 0 {
		return nil, nil, ErrEmptySelection
	}

	totals := Aggregate(items)
	rec = &models.DayRecord{
		Date:      date,
		Breakfast: slotNames(items, models.SlotBreakfast),
		Lunch:     slotNames(items, models.SlotLunch),
		Snacks:    slotNames(items, models.SlotSnacks),
		Dinner:    slotNames(items, models.SlotDinner),
		Calories:  totals.Calories,
		Proteins:  totals.Proteins,
		Carbs:     totals.Carbs,
		Fats:      totals.Fats,
		Water:     water,
	}

	// Remote push first, local write unconditionally after.
	remoteErr = remote.UploadNutritions(*rec, deviceID, username)
	if err := ledger.Upsert(rec); err != nil {
		return nil, remoteErr, err
	}

	s.mu.Lock()
	s.selected = nil
	s.water = 0
	s.mu.Unlock()
	return rec, remoteErr, nil
}
