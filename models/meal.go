package models

// MealSlot partitions a day's food log.
type MealSlot string

const (
	SlotBreakfast MealSlot = "breakfast"
	SlotLunch     MealSlot = "lunch"
	SlotSnacks    MealSlot = "snacks"
	SlotDinner    MealSlot = "dinner"
)

// MealSlots lists the slots in display order.
var MealSlots = []MealSlot{SlotBreakfast, SlotLunch, SlotSnacks, SlotDinner}

// ValidSlot reports whether s is one of the four meal slots. Reject unknown
// values with 400 at the API boundary rather than letting them pollute the
// working selection.
func ValidSlot(s MealSlot) bool {
	switch s {
	case SlotBreakfast, SlotLunch, SlotSnacks, SlotDinner:
		return true
	}
	return false
}

// MealLineItem is one selected food in the in-progress day's working
// selection: a catalog snapshot plus an opaque id and a slot. Line items are
// never persisted individually; only the day's aggregate survives submission.
type MealLineItem struct {
	ID   string   `json:"id"`
	Slot MealSlot `json:"slot"`
	Food FoodItem `json:"food"`
}

// DayTotals is the elementwise nutrient sum of a day's line items.
type DayTotals struct {
	Calories float64 `json:"calories"`
	Proteins float64 `json:"proteins"`
	Carbs    float64 `json:"carbs"`
	Fats     float64 `json:"fats"`
}
