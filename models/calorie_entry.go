package models

import "time"

// One recorded food consumption
type CalorieEntry struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	FoodName   string    `gorm:"index;not null" json:"food_name"`
	Calories   float64   `gorm:"not null" json:"calories"`
	ConsumedAt time.Time `gorm:"not null" json:"consumed_at"` // set by the store on insert
}

func (CalorieEntry) TableName() string {
	return "calorie_entries"
}

// Aggregate view of the diary, used by the dashboard
type EntrySummary struct {
	Count         int                `json:"count"`
	TotalCalories float64            `json:"total_calories"`
	Goal          float64            `json:"goal"`
	GoalPercent   float64            `json:"goal_percent"` // capped at 100
	ByFood        map[string]float64 `json:"by_food"`
}
