package services

import (
	"fmt"
	"math"
	"os"
	"sort"
	"strings"

	"github.com/MohammadaminAlbooyeh/diet-diary/models"

	"gopkg.in/yaml.v3"
)

// DefaultFoods is the built-in reference table. Keys are already normalized.
var DefaultFoods = map[string]models.CalorieInfo{
	"apple":           {Calories: 95, Unit: "1 medium"},
	"banana":          {Calories: 105, Unit: "1 medium"},
	"orange":          {Calories: 62, Unit: "1 medium"},
	"chicken breast":  {Calories: 165, Unit: "100g cooked"},
	"rice":            {Calories: 130, Unit: "100g cooked"},
	"bread (slice)":   {Calories: 80, Unit: "1 slice"},
	"egg":             {Calories: 78, Unit: "1 large"},
	"milk (cup)":      {Calories: 103, Unit: "1 cup"},
	"yogurt (plain)":  {Calories: 150, Unit: "1 cup"},
	"salmon":          {Calories: 208, Unit: "100g cooked"},
	"broccoli":        {Calories: 55, Unit: "1 cup chopped"},
	"potato (medium)": {Calories: 161, Unit: "1 medium baked"},
	"carrot":          {Calories: 52, Unit: "1 cup chopped"},
}

// FoodService is the read-only food reference table.
type FoodService struct {
	foods map[string]models.CalorieInfo
}

// NewFoodService copies foods under normalized keys.
func NewFoodService(foods map[string]models.CalorieInfo) *FoodService {
	table := make(map[string]models.CalorieInfo, len(foods))
	for name, info := range foods {
		table[NormalizeFoodName(name)] = info
	}
	return &FoodService{foods: table}
}

func NormalizeFoodName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Lookup matches the exact normalized name; there is no fuzzy matching.
func (s *FoodService) Lookup(name string) (models.CalorieInfo, bool) {
	info, ok := s.foods[NormalizeFoodName(name)]
	return info, ok
}

// All returns a copy of the whole table.
func (s *FoodService) All() map[string]models.CalorieInfo {
	out := make(map[string]models.CalorieInfo, len(s.foods))
	for k, v := range s.foods {
		out[k] = v
	}
	return out
}

// Names returns the table keys in sorted order.
func (s *FoodService) Names() []string {
	names := make([]string, 0, len(s.foods))
	for k := range s.foods {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

type foodFile struct {
	Foods map[string]models.CalorieInfo `yaml:"foods"`
}

// LoadFoodReferences builds the effective table: DefaultFoods with the rows
// of the YAML file at path merged over it. An empty path yields the defaults.
func LoadFoodReferences(path string) (map[string]models.CalorieInfo, error) {
	out := make(map[string]models.CalorieInfo, len(DefaultFoods))
	for k, v := range DefaultFoods {
		out[k] = v
	}
	if path == "" {
		return out, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading food file: %w", err)
	}
	var f foodFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parsing food file %s: %w", path, err)
	}
	for name, info := range f.Foods {
		key := NormalizeFoodName(name)
		if key == "" {
			return nil, fmt.Errorf("food file %s: empty food name", path)
		}
		if math.IsNaN(info.Calories) || math.IsInf(info.Calories, 0) || info.Calories <= 0 {
			return nil, fmt.Errorf("food file %s: %q must have positive calories", path, name)
		}
		out[key] = info
	}
	return out, nil
}
