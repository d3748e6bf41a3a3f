package store_test

import (
	"context"
	"testing"
	"time"

	"github.com/MohammadaminAlbooyeh/diet-diary/config"
	"github.com/MohammadaminAlbooyeh/diet-diary/models"
	"github.com/MohammadaminAlbooyeh/diet-diary/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T, opts ...store.Option) *store.GormEntryStore {
	t.Helper()
	db, err := config.OpenDB(config.DBConfig{Driver: config.DriverSQLite, Path: "file::memory:"})
	require.NoError(t, err)
	t.Cleanup(func() { _ = config.CloseDB(db) })
	return store.NewGormEntryStore(db, opts...)
}

func TestInsertAssignsIDAndTimestamp(t *testing.T) {
	fixed := time.Date(2026, 10, 19, 8, 30, 0, 0, time.UTC)
	s := newTestStore(t, store.WithClock(func() time.Time { return fixed }))
	ctx := context.Background()

	e := &models.CalorieEntry{FoodName: "apple", Calories: 95, ConsumedAt: time.Unix(0, 0)}
	require.NoError(t, s.Insert(ctx, e))

	assert.Equal(t, uint(1), e.ID)
	assert.Equal(t, "apple", e.FoodName)
	assert.Equal(t, 95.0, e.Calories)
	assert.True(t, fixed.Equal(e.ConsumedAt), "consumed_at comes from the store clock, got %v", e.ConsumedAt)

	e2 := &models.CalorieEntry{FoodName: "egg", Calories: 78}
	require.NoError(t, s.Insert(ctx, e2))
	assert.Equal(t, uint(2), e2.ID)
}

func TestSelectRangeKeepsInsertionOrder(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	names := []string{"apple", "banana", "rice", "egg", "carrot"}
	for i, n := range names {
		require.NoError(t, s.Insert(ctx, &models.CalorieEntry{FoodName: n, Calories: float64(i)}))
	}

	all, err := s.SelectRange(ctx, 0, 100)
	require.NoError(t, err)
	require.Len(t, all, len(names))
	for i, e := range all {
		assert.Equal(t, names[i], e.FoodName)
	}

	page, err := s.SelectRange(ctx, 1, 2)
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "banana", page[0].FoodName)
	assert.Equal(t, "rice", page[1].FoodName)

	past, err := s.SelectRange(ctx, 10, 5)
	require.NoError(t, err)
	assert.Empty(t, past)
}

func TestGetAndDelete(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	e := &models.CalorieEntry{FoodName: "salmon", Calories: 208}
	require.NoError(t, s.Insert(ctx, e))

	got, err := s.Get(ctx, e.ID)
	require.NoError(t, err)
	assert.Equal(t, "salmon", got.FoodName)

	found, err := s.DeleteByID(ctx, e.ID)
	require.NoError(t, err)
	assert.True(t, found)

	_, err = s.Get(ctx, e.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)

	found, err = s.DeleteByID(ctx, e.ID)
	require.NoError(t, err)
	assert.False(t, found)

	all, err := s.All(ctx)
	require.NoError(t, err)
	assert.Empty(t, all)
}
