package domain

// UserProfile represents a telegram user in the system together with the
// physical attributes the daily goals are derived from. Goals are snapshotted
// at profile-set time and only change when the profile is re-submitted.
type UserProfile struct {
	TelegramID      int64
	Name            string
	WeightKG        float64
	HeightCM        float64
	AgeYears        int
	ActivityMinutes int
	City            string
	WaterGoalML     float64
	CalorieGoalKcal float64
	// Complete is false until all profile fields have been set once;
	// goals are undefined while it is false.
	Complete bool
}

// DailyRecord accumulates consumption and burn for one user for one
// city-local calendar day. All counters start at zero and only grow.
type DailyRecord struct {
	Date         string // "2006-01-02" in the user's city-local timezone
	WaterML      float64
	CaloriesKcal float64
	BurnedKcal   float64
	ExtraWaterML float64
}

// ProfileInput carries the six profile fields collected by the set-profile flow.
type ProfileInput struct {
	Name            string
	WeightKG        float64
	HeightCM        float64
	AgeYears        int
	ActivityMinutes int
	City            string
}

// Weather is a current-weather reading for a city. Goal computation uses
// TempC only; the rest is surfaced to the user.
type Weather struct {
	TempC       float64
	FeelsLikeC  float64
	Description string
}

// FoodInfo is the first match of a food-database search.
type FoodInfo struct {
	Name            string
	CaloriesPer100g float64
}

// WaterLogResult is what logging water reports back.
type WaterLogResult struct {
	TotalML    float64
	ResidualML float64 // water goal + extra goal - consumed; <= 0 means goal met
}

// FoodLogResult is what logging food (phase two) reports back.
type FoodLogResult struct {
	ConsumedKcal float64
	TotalKcal    float64
	ResidualKcal float64 // calorie goal - consumed; <= 0 means goal met
}

// WorkoutLogResult is what logging a workout reports back.
type WorkoutLogResult struct {
	BurnedKcal   float64
	ExtraWaterML float64
}

// ProgressSnapshot is a pure read of today's record against the goals.
type ProgressSnapshot struct {
	WaterML              float64
	EffectiveWaterGoalML float64
	WaterResidualML      float64
	CaloriesKcal         float64
	CalorieGoalKcal      float64
	BurnedKcal           float64
	CalorieBalanceKcal   float64
}
