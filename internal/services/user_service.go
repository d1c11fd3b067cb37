package services

import (
	"context"
	"strings"

	"github.com/aleksmelnikov/fitness-helper/internal/apperrors"
	"github.com/aleksmelnikov/fitness-helper/internal/domain"
	"github.com/aleksmelnikov/fitness-helper/internal/logger"
	"github.com/aleksmelnikov/fitness-helper/internal/storage"
)

// UserService handles profile operations.
type UserService struct {
	store storage.Store
	goals *GoalService
}

func NewUserService(store storage.Store, goals *GoalService) *UserService {
	return &UserService{store: store, goals: goals}
}

// RegisterUser returns the user's profile, creating a placeholder one on
// first interaction.
func (s *UserService) RegisterUser(ctx context.Context, telegramID int64) (*domain.UserProfile, error) {
	return s.store.GetOrCreateProfile(ctx, telegramID)
}

// GetProfile returns the user's profile.
func (s *UserService) GetProfile(ctx context.Context, telegramID int64) (*domain.UserProfile, error) {
	return s.store.GetOrCreateProfile(ctx, telegramID)
}

// SetProfile validates the collected fields, recomputes both goals and saves
// the profile. Goal computation happens before anything is stored, so either
// the whole profile with fresh goals lands or nothing changes.
func (s *UserService) SetProfile(ctx context.Context, telegramID int64, input domain.ProfileInput) (*domain.UserProfile, error) {
	if err := validateProfileInput(input); err != nil {
		return nil, err
	}

	profile, err := s.store.GetOrCreateProfile(ctx, telegramID)
	if err != nil {
		return nil, err
	}

	profile.Name = input.Name
	profile.WeightKG = input.WeightKG
	profile.HeightCM = input.HeightCM
	profile.AgeYears = input.AgeYears
	profile.ActivityMinutes = input.ActivityMinutes
	profile.City = strings.TrimSpace(input.City)

	profile.CalorieGoalKcal = s.goals.CalorieGoal(profile)

	waterGoal, err := s.goals.WaterGoal(ctx, profile)
	if err != nil {
		return nil, err
	}
	profile.WaterGoalML = waterGoal
	profile.Complete = true

	if err := s.store.SaveProfile(ctx, profile); err != nil {
		return nil, err
	}

	logger.Info("profile set",
		"telegram_id", telegramID,
		"city", profile.City,
		"water_goal_ml", profile.WaterGoalML,
		"calorie_goal_kcal", profile.CalorieGoalKcal)
	return profile, nil
}

func validateProfileInput(input domain.ProfileInput) error {
	switch {
	case strings.TrimSpace(input.Name) == "":
		return apperrors.ErrProfileIncomplete
	case strings.TrimSpace(input.City) == "":
		return apperrors.ErrProfileIncomplete
	case input.WeightKG <= 0:
		return apperrors.InvalidInput("weight must be positive")
	case input.HeightCM <= 0:
		return apperrors.InvalidInput("height must be positive")
	case input.AgeYears <= 0:
		return apperrors.InvalidInput("age must be positive")
	case input.ActivityMinutes < 0:
		return apperrors.InvalidInput("activity minutes must not be negative")
	}
	return nil
}
