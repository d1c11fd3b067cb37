package services

import (
	"context"

	"github.com/aleksmelnikov/fitness-helper/internal/domain"
	"github.com/aleksmelnikov/fitness-helper/internal/logger"
)

// Temperature above which the daily water goal gets a hot-weather bonus.
const hotTempThresholdC = 25

// GoalService computes daily water and calorie targets from a profile. The
// water goal additionally depends on the current temperature in the user's
// city, so it requires a successful weather fetch.
type GoalService struct {
	weather domain.WeatherProvider
}

func NewGoalService(weather domain.WeatherProvider) *GoalService {
	return &GoalService{weather: weather}
}

// WaterGoal returns the daily water target in milliliters:
// weight×30 + 500 per 30 minutes of activity + 500 when it is hotter than 25°C.
// A weather failure propagates unchanged, the goal cannot be computed without
// a temperature.
func (s *GoalService) WaterGoal(ctx context.Context, profile *domain.UserProfile) (float64, error) {
	w, err := s.weather.CurrentWeather(ctx, profile.City)
	if err != nil {
		return 0, err
	}

	goal := profile.WeightKG*30 + 500*float64(profile.ActivityMinutes)/30
	if w.TempC > hotTempThresholdC {
		goal += 500
	}

	logger.Info("computed water goal",
		"telegram_id", profile.TelegramID,
		"city", profile.City,
		"temp_c", w.TempC,
		"goal_ml", goal)
	return goal, nil
}

// CalorieGoal returns the daily calorie target in kilocalories:
// weight×10 + 6.25×height − 5×age + 300 per hour of activity.
func (s *GoalService) CalorieGoal(profile *domain.UserProfile) float64 {
	return profile.WeightKG*10 +
		6.25*profile.HeightCM -
		5*float64(profile.AgeYears) +
		300*float64(profile.ActivityMinutes)/60
}
