package domain

import (
	"context"
)

// WeatherProvider returns the current weather for a named city.
type WeatherProvider interface {
	CurrentWeather(ctx context.Context, city string) (Weather, error)
}

// DateResolver returns the current calendar date ("2006-01-02") in the
// timezone of a named city.
type DateResolver interface {
	CurrentDate(ctx context.Context, city string) (string, error)
}

// FoodProvider looks up a food by free-text name. A miss is reported through
// the boolean, not an error.
type FoodProvider interface {
	Lookup(ctx context.Context, name string) (FoodInfo, bool, error)
}

// UserService handles profile operations.
type UserService interface {
	RegisterUser(ctx context.Context, telegramID int64) (*UserProfile, error)
	GetProfile(ctx context.Context, telegramID int64) (*UserProfile, error)
	SetProfile(ctx context.Context, telegramID int64, input ProfileInput) (*UserProfile, error)
}

// TrackingService is the daily ledger: it accumulates water, food calories
// and workouts per user per city-local day and answers progress queries.
type TrackingService interface {
	LogWater(ctx context.Context, telegramID int64, amountML float64) (WaterLogResult, error)
	ResolveFood(ctx context.Context, name string) (FoodInfo, bool, error)
	LogFood(ctx context.Context, telegramID int64, caloriesPer100g, grams float64) (FoodLogResult, error)
	LogWorkout(ctx context.Context, telegramID int64, workoutType string, minutes int) (WorkoutLogResult, error)
	CheckProgress(ctx context.Context, telegramID int64) (ProgressSnapshot, error)
}
