package services

import (
	"context"

	"github.com/aleksmelnikov/fitness-helper/internal/apperrors"
	"github.com/aleksmelnikov/fitness-helper/internal/domain"
	"github.com/aleksmelnikov/fitness-helper/internal/logger"
	"github.com/aleksmelnikov/fitness-helper/internal/storage"
)

const (
	burnedKcalPerMinute  = 10
	extraWaterMLPer30Min = 200
)

// TrackingService is the daily ledger: it accumulates water, food calories
// and workout burn per user per city-local calendar day.
//
// Every operation resolves today's date in the user's city before touching
// the store, so the same user rolls over to a fresh record at city-local
// midnight. The date resolution is a network call and happens outside any
// store lock.
type TrackingService struct {
	store storage.Store
	dates domain.DateResolver
	food  domain.FoodProvider
}

func NewTrackingService(store storage.Store, dates domain.DateResolver, food domain.FoodProvider) *TrackingService {
	return &TrackingService{store: store, dates: dates, food: food}
}

// today loads the profile and resolves the current city-local date. All
// ledger operations require a complete profile, goals are undefined otherwise.
func (s *TrackingService) today(ctx context.Context, telegramID int64) (*domain.UserProfile, string, error) {
	profile, err := s.store.GetOrCreateProfile(ctx, telegramID)
	if err != nil {
		return nil, "", err
	}
	if !profile.Complete {
		return nil, "", apperrors.ErrProfileIncomplete
	}

	date, err := s.dates.CurrentDate(ctx, profile.City)
	if err != nil {
		return nil, "", err
	}
	return profile, date, nil
}

// LogWater adds amountML to today's water consumption and reports the
// remaining amount against the effective goal.
func (s *TrackingService) LogWater(ctx context.Context, telegramID int64, amountML float64) (domain.WaterLogResult, error) {
	if amountML <= 0 {
		return domain.WaterLogResult{}, apperrors.InvalidInput("water amount must be positive")
	}

	profile, date, err := s.today(ctx, telegramID)
	if err != nil {
		return domain.WaterLogResult{}, err
	}

	rec, err := s.store.UpdateDay(ctx, telegramID, date, func(r *domain.DailyRecord) {
		r.WaterML += amountML
	})
	if err != nil {
		return domain.WaterLogResult{}, err
	}

	logger.Info("water logged", "telegram_id", telegramID, "date", date, "amount_ml", amountML)
	return domain.WaterLogResult{
		TotalML:    rec.WaterML,
		ResidualML: profile.WaterGoalML - rec.WaterML + rec.ExtraWaterML,
	}, nil
}

// ResolveFood is phase one of food logging: it resolves a free-text food name
// to its display name and energy density. A no-match performs no mutation and
// must not enter the awaiting-grams state.
func (s *TrackingService) ResolveFood(ctx context.Context, name string) (domain.FoodInfo, bool, error) {
	return s.food.Lookup(ctx, name)
}

// LogFood is phase two: given the energy density resolved in phase one and
// the consumed grams, it adds the calories to today's record.
func (s *TrackingService) LogFood(ctx context.Context, telegramID int64, caloriesPer100g, grams float64) (domain.FoodLogResult, error) {
	if grams <= 0 {
		return domain.FoodLogResult{}, apperrors.InvalidInput("grams must be positive")
	}

	profile, date, err := s.today(ctx, telegramID)
	if err != nil {
		return domain.FoodLogResult{}, err
	}

	consumed := caloriesPer100g * grams / 100
	rec, err := s.store.UpdateDay(ctx, telegramID, date, func(r *domain.DailyRecord) {
		r.CaloriesKcal += consumed
	})
	if err != nil {
		return domain.FoodLogResult{}, err
	}

	logger.Info("food logged", "telegram_id", telegramID, "date", date, "consumed_kcal", consumed)
	return domain.FoodLogResult{
		ConsumedKcal: consumed,
		TotalKcal:    rec.CaloriesKcal,
		ResidualKcal: profile.CalorieGoalKcal - rec.CaloriesKcal,
	}, nil
}

// LogWorkout adds the workout burn and the extra water the workout earns to
// today's record. The workout type is display-only.
func (s *TrackingService) LogWorkout(ctx context.Context, telegramID int64, workoutType string, minutes int) (domain.WorkoutLogResult, error) {
	if minutes <= 0 {
		return domain.WorkoutLogResult{}, apperrors.InvalidInput("workout minutes must be positive")
	}

	_, date, err := s.today(ctx, telegramID)
	if err != nil {
		return domain.WorkoutLogResult{}, err
	}

	burned := float64(minutes) * burnedKcalPerMinute
	extraWater := extraWaterMLPer30Min * float64(minutes) / 30

	_, err = s.store.UpdateDay(ctx, telegramID, date, func(r *domain.DailyRecord) {
		r.BurnedKcal += burned
		r.ExtraWaterML += extraWater
	})
	if err != nil {
		return domain.WorkoutLogResult{}, err
	}

	logger.Info("workout logged",
		"telegram_id", telegramID,
		"date", date,
		"workout_type", workoutType,
		"minutes", minutes)
	return domain.WorkoutLogResult{
		BurnedKcal:   burned,
		ExtraWaterML: extraWater,
	}, nil
}

// CheckProgress reads today's record against the goals. A day without any
// logging reads as all zeros; nothing is mutated.
func (s *TrackingService) CheckProgress(ctx context.Context, telegramID int64) (domain.ProgressSnapshot, error) {
	profile, date, err := s.today(ctx, telegramID)
	if err != nil {
		return domain.ProgressSnapshot{}, err
	}

	rec, err := s.store.Day(ctx, telegramID, date)
	if err != nil {
		return domain.ProgressSnapshot{}, err
	}

	effectiveWaterGoal := profile.WaterGoalML + rec.ExtraWaterML
	return domain.ProgressSnapshot{
		WaterML:              rec.WaterML,
		EffectiveWaterGoalML: effectiveWaterGoal,
		WaterResidualML:      effectiveWaterGoal - rec.WaterML,
		CaloriesKcal:         rec.CaloriesKcal,
		CalorieGoalKcal:      profile.CalorieGoalKcal,
		BurnedKcal:           rec.BurnedKcal,
		CalorieBalanceKcal:   rec.CaloriesKcal - rec.BurnedKcal,
	}, nil
}
