package services

import (
	"fmt"
	"log"
	"strconv"
	"strings"
	"sync"

	"github.com/Satya2834/PubFitnessStudio-web/models"

	"github.com/xuri/excelize/v2"
)

// CatalogService holds the food composition table: loaded once from an xlsx
// workbook, read-only afterwards. A failed load leaves the catalog empty and
// the app degraded (no foods to find) rather than down.
type CatalogService struct {
	mu    sync.RWMutex
	items []models.FoodItem
}

func NewCatalogService() *CatalogService {
	return &CatalogService{}
}

// LoadAsync loads the workbook in the background so startup is not blocked on
// parsing. Load failure is logged and yields an empty catalog.
func (s *CatalogService) LoadAsync(path string) {
	go func() {
		if err := s.Load(path); err != nil {
			log.Printf("food catalog load failed, serving empty catalog: %v", err)
		}
	}()
}

// Load reads the first sheet of the workbook at path. The header row names
// the columns; rows with a malformed numeric field are skipped, never loaded
// as NaN.
func (s *CatalogService) Load(path string) error {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return fmt.Errorf("failed to open food workbook: %w", err)
	}
	defer f.Close()

	sheet := f.GetSheetName(0)
	rows, err := f.GetRows(sheet)
	if err != nil {
		return fmt.Errorf("failed to read sheet %q: %w", sheet, err)
	}

	items, err := parseFoodRows(rows)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.items = items
	s.mu.Unlock()
	log.Printf("food catalog loaded: %d items", len(items))
	return nil
}

// parseFoodRows converts sheet rows (header first) into catalog entries.
func parseFoodRows(rows [][]string) ([]models.FoodItem, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("food workbook has no header row")
	}

	cols := map[string]int{}
	for i, name := range rows[0] {
		cols[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{"food_name", "energy_kcal", "carb_g", "protein_g", "fat_g"} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("food workbook missing column %q", required)
		}
	}

	cell := func(row []string, name string) string {
		i := cols[name]
		if i >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[i])
	}

	items := make([]models.FoodItem, 0, len(rows)-1)
	for n, row := range rows[1:] {
		item, err := parseFoodRow(
			cell(row, "food_name"),
			cell(row, "energy_kcal"),
			cell(row, "protein_g"),
			cell(row, "carb_g"),
			cell(row, "fat_g"),
		)
		if err != nil {
			log.Printf("skipping food row %d: %v", n+2, err)
			continue
		}
		items = append(items, item)
	}
	return items, nil
}

// parseFoodRow builds one catalog entry. Any unparseable numeric field fails
// the whole row.
func parseFoodRow(name, energy, protein, carb, fat string) (models.FoodItem, error) {
	if name == "" {
		return models.FoodItem{}, fmt.Errorf("empty food_name")
	}
	parse := func(field, raw string) (float64, error) {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return 0, fmt.Errorf("bad %s %q for %q", field, raw, name)
		}
		return v, nil
	}

	var (
		item = models.FoodItem{Name: name}
		err  error
	)
	if item.EnergyKcal, err = parse("energy_kcal", energy); err != nil {
		return models.FoodItem{}, err
	}
	if item.ProteinG, err = parse("protein_g", protein); err != nil {
		return models.FoodItem{}, err
	}
	if item.CarbG, err = parse("carb_g", carb); err != nil {
		return models.FoodItem{}, err
	}
	if item.FatG, err = parse("fat_g", fat); err != nil {
		return models.FoodItem{}, err
	}
	return item, nil
}

// FindByName returns the first entry with an exact name match.
func (s *CatalogService) FindByName(name string) (models.FoodItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, item := range s.items {
		if item.Name == name {
			return item, true
		}
	}
	return models.FoodItem{}, false
}

// Items returns the table in load order.
func (s *CatalogService) Items() []models.FoodItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.FoodItem, len(s.items))
	copy(out, s.items)
	return out
}

// Search returns entries whose name contains q, case-insensitive, in load
// order. Backs the type-to-search inputs on the calculator screen.
func (s *CatalogService) Search(q string) []models.FoodItem {
	q = strings.ToLower(strings.TrimSpace(q))
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.FoodItem, 0)
	for _, item := range s.items {
		if q == "" || strings.Contains(strings.ToLower(item.Name), q) {
			out = append(out, item)
		}
	}
	return out
}
