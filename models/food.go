package models

// A row of the food reference table
type CalorieInfo struct {
	Calories float64 `json:"calories" yaml:"calories"`
	Unit     string  `json:"unit,omitempty" yaml:"unit"` // serving size, e.g. "1 cup"
}
