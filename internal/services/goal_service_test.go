package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aleksmelnikov/fitness-helper/internal/apperrors"
	"github.com/aleksmelnikov/fitness-helper/internal/domain"
)

func TestCalorieGoal(t *testing.T) {
	svc := NewGoalService(&fakeWeather{})

	profile := &domain.UserProfile{
		WeightKG:        70,
		HeightCM:        175,
		AgeYears:        30,
		ActivityMinutes: 60,
	}

	// 70×10 + 6.25×175 − 5×30 + 300 = 1943.75
	assert.Equal(t, 1943.75, svc.CalorieGoal(profile))
}

func TestWaterGoal_HotWeather(t *testing.T) {
	svc := NewGoalService(&fakeWeather{weather: domain.Weather{TempC: 30}})

	profile := &domain.UserProfile{WeightKG: 70, ActivityMinutes: 30, City: "Дубай"}

	goal, err := svc.WaterGoal(context.Background(), profile)
	require.NoError(t, err)
	// 70×30 + 500 + 500 = 3100
	assert.Equal(t, 3100.0, goal)
}

func TestWaterGoal_MildWeather(t *testing.T) {
	svc := NewGoalService(&fakeWeather{weather: domain.Weather{TempC: 20}})

	profile := &domain.UserProfile{WeightKG: 70, ActivityMinutes: 30, City: "Осло"}

	goal, err := svc.WaterGoal(context.Background(), profile)
	require.NoError(t, err)
	assert.Equal(t, 2600.0, goal)
}

func TestWaterGoal_ThresholdIsExclusive(t *testing.T) {
	// Exactly 25°C does not earn the hot-weather bonus.
	svc := NewGoalService(&fakeWeather{weather: domain.Weather{TempC: 25}})

	profile := &domain.UserProfile{WeightKG: 60, ActivityMinutes: 0, City: "Сочи"}

	goal, err := svc.WaterGoal(context.Background(), profile)
	require.NoError(t, err)
	assert.Equal(t, 1800.0, goal)
}

func TestWaterGoal_WeatherFailurePropagates(t *testing.T) {
	svc := NewGoalService(&fakeWeather{err: apperrors.CityNotFound("Атлантида")})

	profile := &domain.UserProfile{WeightKG: 70, ActivityMinutes: 30, City: "Атлантида"}

	_, err := svc.WaterGoal(context.Background(), profile)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrCityNotFound))
}
