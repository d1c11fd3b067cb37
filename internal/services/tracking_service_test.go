package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aleksmelnikov/fitness-helper/internal/apperrors"
	"github.com/aleksmelnikov/fitness-helper/internal/domain"
	"github.com/aleksmelnikov/fitness-helper/internal/storage"
)

const testUserID int64 = 42

// newTrackingFixture builds a tracking service over a memory store with a
// complete profile already saved.
func newTrackingFixture(t *testing.T) (*TrackingService, *storage.MemoryStore, *fakeDates) {
	t.Helper()

	store := storage.NewMemoryStore()
	require.NoError(t, store.SaveProfile(context.Background(), &domain.UserProfile{
		TelegramID:      testUserID,
		Name:            "Анна",
		WeightKG:        70,
		HeightCM:        175,
		AgeYears:        30,
		ActivityMinutes: 60,
		City:            "Москва",
		WaterGoalML:     3000,
		CalorieGoalKcal: 2000,
		Complete:        true,
	}))

	dates := &fakeDates{date: "2026-08-29"}
	svc := NewTrackingService(store, dates, &fakeFood{})
	return svc, store, dates
}

func TestLogWater_AccumulatesAndReportsResidual(t *testing.T) {
	svc, _, _ := newTrackingFixture(t)
	ctx := context.Background()

	result, err := svc.LogWater(ctx, testUserID, 300)
	require.NoError(t, err)
	assert.Equal(t, 300.0, result.TotalML)
	assert.Equal(t, 2700.0, result.ResidualML)

	result, err = svc.LogWater(ctx, testUserID, 200)
	require.NoError(t, err)
	assert.Equal(t, 500.0, result.TotalML)
	assert.Equal(t, 2500.0, result.ResidualML)
}

func TestLogWater_ResidualIncludesWorkoutBonus(t *testing.T) {
	svc, _, _ := newTrackingFixture(t)
	ctx := context.Background()

	_, err := svc.LogWorkout(ctx, testUserID, "бег", 30)
	require.NoError(t, err)

	result, err := svc.LogWater(ctx, testUserID, 500)
	require.NoError(t, err)
	// 3000 − 500 + 200
	assert.Equal(t, 2700.0, result.ResidualML)
}

func TestLogWater_GoalMetAllowsResidualAtOrBelowZero(t *testing.T) {
	svc, _, _ := newTrackingFixture(t)
	ctx := context.Background()

	result, err := svc.LogWater(ctx, testUserID, 3500)
	require.NoError(t, err)
	assert.Equal(t, -500.0, result.ResidualML)
}

func TestLogWater_RejectsNonPositiveAmount(t *testing.T) {
	svc, store, _ := newTrackingFixture(t)
	ctx := context.Background()

	for _, amount := range []float64{0, -100} {
		_, err := svc.LogWater(ctx, testUserID, amount)
		require.Error(t, err)
		assert.True(t, errors.Is(err, apperrors.ErrInvalidInput))
	}

	// Invalid input never mutates the ledger.
	rec, err := store.Day(ctx, testUserID, "2026-08-29")
	require.NoError(t, err)
	assert.Zero(t, rec.WaterML)
}

func TestLogWater_IncompleteProfile(t *testing.T) {
	store := storage.NewMemoryStore()
	svc := NewTrackingService(store, &fakeDates{date: "2026-08-29"}, &fakeFood{})

	_, err := svc.LogWater(context.Background(), 99, 300)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrProfileIncomplete))
}

func TestLogWater_ConcurrentCallsDoNotLoseUpdates(t *testing.T) {
	svc, _, _ := newTrackingFixture(t)
	ctx := context.Background()

	const callers = 100
	var wg sync.WaitGroup
	wg.Add(callers)
	for i := 0; i < callers; i++ {
		go func() {
			defer wg.Done()
			_, err := svc.LogWater(ctx, testUserID, 1)
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	progress, err := svc.CheckProgress(ctx, testUserID)
	require.NoError(t, err)
	assert.Equal(t, 100.0, progress.WaterML)
}

func TestLogFood_AccumulatesCalories(t *testing.T) {
	svc, _, _ := newTrackingFixture(t)
	ctx := context.Background()

	// 250 kcal/100g × 150 g = 375 kcal
	result, err := svc.LogFood(ctx, testUserID, 250, 150)
	require.NoError(t, err)
	assert.Equal(t, 375.0, result.ConsumedKcal)
	assert.Equal(t, 375.0, result.TotalKcal)
	assert.Equal(t, 1625.0, result.ResidualKcal)
}

func TestLogFood_RejectsNonPositiveGrams(t *testing.T) {
	svc, _, _ := newTrackingFixture(t)

	_, err := svc.LogFood(context.Background(), testUserID, 250, 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrInvalidInput))
}

func TestResolveFood_MissIsNotAnErrorAndMutatesNothing(t *testing.T) {
	store := storage.NewMemoryStore()
	require.NoError(t, store.SaveProfile(context.Background(), &domain.UserProfile{
		TelegramID: testUserID, Complete: true, City: "Москва", WaterGoalML: 3000, CalorieGoalKcal: 2000,
	}))
	svc := NewTrackingService(store, &fakeDates{date: "2026-08-29"}, &fakeFood{found: false})

	_, found, err := svc.ResolveFood(context.Background(), "несуществующий продукт")
	require.NoError(t, err)
	assert.False(t, found)

	rec, err := store.Day(context.Background(), testUserID, "2026-08-29")
	require.NoError(t, err)
	assert.Zero(t, rec.CaloriesKcal)
}

func TestResolveFood_ZeroCalorieMatchIsDistinguishableFromMiss(t *testing.T) {
	svc := NewTrackingService(storage.NewMemoryStore(), &fakeDates{date: "2026-08-29"},
		&fakeFood{info: domain.FoodInfo{Name: "Вода минеральная", CaloriesPer100g: 0}, found: true})

	info, found, err := svc.ResolveFood(context.Background(), "вода")
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, "Вода минеральная", info.Name)
	assert.Zero(t, info.CaloriesPer100g)
}

func TestLogWorkout_TwoSequentialWorkouts(t *testing.T) {
	svc, _, _ := newTrackingFixture(t)
	ctx := context.Background()

	for i := 0; i < 2; i++ {
		result, err := svc.LogWorkout(ctx, testUserID, "бег", 30)
		require.NoError(t, err)
		assert.Equal(t, 300.0, result.BurnedKcal)
		assert.Equal(t, 200.0, result.ExtraWaterML)
	}

	progress, err := svc.CheckProgress(ctx, testUserID)
	require.NoError(t, err)
	assert.Equal(t, 600.0, progress.BurnedKcal)
	assert.Equal(t, 3400.0, progress.EffectiveWaterGoalML)
}

func TestLogWorkout_RejectsNonPositiveMinutes(t *testing.T) {
	svc, _, _ := newTrackingFixture(t)

	_, err := svc.LogWorkout(context.Background(), testUserID, "бег", 0)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrInvalidInput))
}

func TestCheckProgress_EmptyDayReadsAsZeros(t *testing.T) {
	svc, _, _ := newTrackingFixture(t)

	progress, err := svc.CheckProgress(context.Background(), testUserID)
	require.NoError(t, err)

	assert.Zero(t, progress.WaterML)
	assert.Zero(t, progress.CaloriesKcal)
	assert.Zero(t, progress.BurnedKcal)
	assert.Zero(t, progress.CalorieBalanceKcal)
	assert.Equal(t, 3000.0, progress.EffectiveWaterGoalML)
	assert.Equal(t, 3000.0, progress.WaterResidualML)
}

func TestCheckProgress_Balance(t *testing.T) {
	svc, _, _ := newTrackingFixture(t)
	ctx := context.Background()

	_, err := svc.LogFood(ctx, testUserID, 200, 250) // 500 kcal
	require.NoError(t, err)
	_, err = svc.LogWorkout(ctx, testUserID, "плавание", 20) // 200 kcal
	require.NoError(t, err)

	progress, err := svc.CheckProgress(ctx, testUserID)
	require.NoError(t, err)
	assert.Equal(t, 500.0, progress.CaloriesKcal)
	assert.Equal(t, 200.0, progress.BurnedKcal)
	assert.Equal(t, 300.0, progress.CalorieBalanceKcal)
}

func TestMidnightRollover_WritesToDistinctRecords(t *testing.T) {
	svc, store, dates := newTrackingFixture(t)
	ctx := context.Background()

	_, err := svc.LogWater(ctx, testUserID, 300)
	require.NoError(t, err)

	// City-local midnight passes between the two calls.
	dates.set("2026-08-30")

	result, err := svc.LogWater(ctx, testUserID, 200)
	require.NoError(t, err)
	assert.Equal(t, 200.0, result.TotalML)

	yesterday, err := store.Day(ctx, testUserID, "2026-08-29")
	require.NoError(t, err)
	today, err := store.Day(ctx, testUserID, "2026-08-30")
	require.NoError(t, err)
	assert.Equal(t, 300.0, yesterday.WaterML)
	assert.Equal(t, 200.0, today.WaterML)
}

func TestDateResolutionFailurePropagates(t *testing.T) {
	store := storage.NewMemoryStore()
	require.NoError(t, store.SaveProfile(context.Background(), &domain.UserProfile{
		TelegramID: testUserID, Complete: true, City: "Атлантида", WaterGoalML: 3000, CalorieGoalKcal: 2000,
	}))
	svc := NewTrackingService(store, &fakeDates{err: apperrors.CityNotFound("Атлантида")}, &fakeFood{})

	_, err := svc.LogWater(context.Background(), testUserID, 300)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrCityNotFound))
}
