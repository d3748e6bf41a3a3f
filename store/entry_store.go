package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MohammadaminAlbooyeh/diet-diary/models"

	"gorm.io/gorm"
)

var ErrNotFound = errors.New("entry not found")

// EntryStore owns the persisted calorie entries.
type EntryStore interface {
	// Insert assigns ID and ConsumedAt on e.
	Insert(ctx context.Context, e *models.CalorieEntry) error
	SelectRange(ctx context.Context, skip, limit int) ([]models.CalorieEntry, error)
	Get(ctx context.Context, id uint) (*models.CalorieEntry, error)
	DeleteByID(ctx context.Context, id uint) (bool, error)
	All(ctx context.Context) ([]models.CalorieEntry, error)
}

// GormEntryStore keeps entries in a gorm-backed table. Every operation runs
// under one mutex, so there is a single writer at any time.
type GormEntryStore struct {
	mu  sync.Mutex
	db  *gorm.DB
	now func() time.Time
}

type Option func(*GormEntryStore)

// WithClock overrides the timestamp source used on insert.
func WithClock(now func() time.Time) Option {
	return func(s *GormEntryStore) { s.now = now }
}

func NewGormEntryStore(db *gorm.DB, opts ...Option) *GormEntryStore {
	s := &GormEntryStore{db: db, now: time.Now}
	for _, o := range opts {
		o(s)
	}
	return s
}

func (s *GormEntryStore) Insert(ctx context.Context, e *models.CalorieEntry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	row := models.CalorieEntry{
		FoodName:   e.FoodName,
		Calories:   e.Calories,
		ConsumedAt: s.now().UTC(),
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return err
	}
	*e = row
	return nil
}

func (s *GormEntryStore) SelectRange(ctx context.Context, skip, limit int) ([]models.CalorieEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := []models.CalorieEntry{}
	err := s.db.WithContext(ctx).
		Order("id ASC").
		Offset(skip).
		Limit(limit).
		Find(&entries).Error
	return entries, err
}

func (s *GormEntryStore) Get(ctx context.Context, id uint) (*models.CalorieEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var e models.CalorieEntry
	if err := s.db.WithContext(ctx).First(&e, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &e, nil
}

func (s *GormEntryStore) DeleteByID(ctx context.Context, id uint) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	res := s.db.WithContext(ctx).Delete(&models.CalorieEntry{}, id)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (s *GormEntryStore) All(ctx context.Context) ([]models.CalorieEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entries := []models.CalorieEntry{}
	err := s.db.WithContext(ctx).Order("id ASC").Find(&entries).Error
	return entries, err
}
