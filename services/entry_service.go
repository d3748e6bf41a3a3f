package services

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/MohammadaminAlbooyeh/diet-diary/logger"
	"github.com/MohammadaminAlbooyeh/diet-diary/metrics"
	"github.com/MohammadaminAlbooyeh/diet-diary/models"
	"github.com/MohammadaminAlbooyeh/diet-diary/store"

	"go.uber.org/zap"
)

const (
	DefaultListLimit   = 100
	MaxListLimit       = 1000
	DefaultCalorieGoal = 2000
	// Upper bound for one entry. Keeps every stored value and the summary
	// totals finite.
	MaxEntryCalories = 1e6
)

type EntryService struct {
	store  store.EntryStore
	foods  *FoodService
	events EntryPublisher
	goal   float64
}

type EntryOption func(*EntryService)

// WithCalorieGoal sets the daily goal reported by Summary.
func WithCalorieGoal(goal float64) EntryOption {
	return func(s *EntryService) { s.goal = goal }
}

// NewEntryService wires the store and reference table. events may be nil.
func NewEntryService(s store.EntryStore, foods *FoodService, events EntryPublisher, opts ...EntryOption) *EntryService {
	if events == nil {
		events = (*EventBus)(nil)
	}
	svc := &EntryService{store: s, foods: foods, events: events, goal: DefaultCalorieGoal}
	for _, o := range opts {
		o(svc)
	}
	return svc
}

type CreateEntryRequest struct {
	FoodName string   `json:"food_name"`
	Calories *float64 `json:"calories"`
	// Servings of the reference unit. Validated whenever present, but only
	// applied when Calories is omitted.
	Quantity *float64 `json:"quantity"`
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

func (s *EntryService) CreateEntry(ctx context.Context, req CreateEntryRequest) (*models.CalorieEntry, error) {
	name := strings.TrimSpace(req.FoodName)
	if name == "" {
		return nil, &ValidationError{Field: "food_name", Message: "is required"}
	}

	qty := 1.0
	if req.Quantity != nil {
		qty = *req.Quantity
		if !finite(qty) || qty <= 0 {
			return nil, &ValidationError{Field: "quantity", Message: "must be a finite number > 0"}
		}
	}

	var (
		calories float64
		source   string
	)
	if req.Calories != nil {
		calories = *req.Calories
		if !finite(calories) || calories < 0 || calories > MaxEntryCalories {
			return nil, &ValidationError{
				Field:   "calories",
				Message: fmt.Sprintf("must be a finite number between 0 and %g", float64(MaxEntryCalories)),
			}
		}
		source = metrics.SourceManual
	} else {
		info, ok := s.foods.Lookup(name)
		if !ok {
			metrics.RecordLookupMiss()
			return nil, &LookupError{FoodName: name}
		}
		calories = info.Calories * qty
		if !finite(calories) || calories > MaxEntryCalories {
			return nil, &ValidationError{
				Field:   "quantity",
				Message: fmt.Sprintf("resolves to more than %g calories", float64(MaxEntryCalories)),
			}
		}
		source = metrics.SourceReference
	}

	entry := &models.CalorieEntry{FoodName: name, Calories: calories}
	if err := s.store.Insert(ctx, entry); err != nil {
		return nil, fmt.Errorf("insert entry: %w", err)
	}

	metrics.RecordEntryCreated(source)
	logger.Debug("entry created",
		zap.Uint("id", entry.ID), zap.String("food_name", entry.FoodName),
		zap.Float64("calories", entry.Calories), zap.String("source", source))
	s.events.Publish(EntryEvent{Kind: EventEntryCreated, Entry: *entry})
	return entry, nil
}

// ListEntries returns entries in insertion order. A limit above
// MaxListLimit is clamped to it.
func (s *EntryService) ListEntries(ctx context.Context, skip, limit int) ([]models.CalorieEntry, error) {
	if skip < 0 {
		return nil, &ValidationError{Field: "skip", Message: "must be >= 0"}
	}
	if limit < 1 {
		return nil, &ValidationError{Field: "limit", Message: "must be >= 1"}
	}
	if limit > MaxListLimit {
		limit = MaxListLimit
	}
	entries, err := s.store.SelectRange(ctx, skip, limit)
	if err != nil {
		return nil, fmt.Errorf("list entries: %w", err)
	}
	return entries, nil
}

func (s *EntryService) GetEntry(ctx context.Context, id uint) (*models.CalorieEntry, error) {
	e, err := s.store.Get(ctx, id)
	if errors.Is(err, store.ErrNotFound) {
		return nil, &NotFoundError{ID: id}
	}
	if err != nil {
		return nil, fmt.Errorf("get entry %d: %w", id, err)
	}
	return e, nil
}

func (s *EntryService) DeleteEntry(ctx context.Context, id uint) error {
	// Fetched first so the deleted event carries the full entry.
	e, err := s.GetEntry(ctx, id)
	if err != nil {
		return err
	}
	found, err := s.store.DeleteByID(ctx, id)
	if err != nil {
		return fmt.Errorf("delete entry %d: %w", id, err)
	}
	if !found {
		return &NotFoundError{ID: id}
	}

	metrics.RecordEntryDeleted()
	s.events.Publish(EntryEvent{Kind: EventEntryDeleted, Entry: *e})
	return nil
}

// Summary totals every stored entry against the calorie goal. ByFood is
// keyed by normalized name.
func (s *EntryService) Summary(ctx context.Context) (*models.EntrySummary, error) {
	entries, err := s.store.All(ctx)
	if err != nil {
		return nil, fmt.Errorf("summarize entries: %w", err)
	}
	sum := &models.EntrySummary{Goal: s.goal, ByFood: make(map[string]float64)}
	for _, e := range entries {
		sum.Count++
		sum.TotalCalories += e.Calories
		sum.ByFood[NormalizeFoodName(e.FoodName)] += e.Calories
	}
	if !finite(sum.TotalCalories) {
		return nil, errors.New("summarize entries: calorie total is not finite")
	}
	if s.goal > 0 {
		sum.GoalPercent = math.Min(100, sum.TotalCalories/s.goal*100)
	}
	return sum, nil
}
