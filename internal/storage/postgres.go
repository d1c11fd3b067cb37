package storage

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/aleksmelnikov/fitness-helper/internal/config"
	"github.com/aleksmelnikov/fitness-helper/internal/domain"
)

// profileRow is the persisted form of domain.UserProfile.
type profileRow struct {
	gorm.Model
	TelegramID      int64 `gorm:"uniqueIndex"`
	Name            string
	WeightKG        float64
	HeightCM        float64
	AgeYears        int
	ActivityMinutes int
	City            string
	WaterGoalML     float64
	CalorieGoalKcal float64
	Complete        bool
}

func (profileRow) TableName() string { return "user_profiles" }

// dailyRecordRow is the persisted form of domain.DailyRecord, unique per
// (user, city-local date).
type dailyRecordRow struct {
	gorm.Model
	TelegramID   int64  `gorm:"uniqueIndex:idx_user_date"`
	Date         string `gorm:"uniqueIndex:idx_user_date;size:10"`
	WaterML      float64
	CaloriesKcal float64
	BurnedKcal   float64
	ExtraWaterML float64
}

func (dailyRecordRow) TableName() string { return "daily_records" }

// PostgresStore is the durable Store backed by PostgreSQL. Per-user
// serialization of day mutations is enforced with row-level locks.
type PostgresStore struct {
	db *gorm.DB
}

// NewPostgresStore connects to PostgreSQL and migrates the schema.
func NewPostgresStore(cfg config.DBConfig) (*PostgresStore, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName)

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := db.AutoMigrate(&profileRow{}, &dailyRecordRow{}); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	return &PostgresStore{db: db}, nil
}

func (s *PostgresStore) GetOrCreateProfile(ctx context.Context, telegramID int64) (*domain.UserProfile, error) {
	row := profileRow{TelegramID: telegramID, Name: placeholderName}
	result := s.db.WithContext(ctx).
		Where(profileRow{TelegramID: telegramID}).
		FirstOrCreate(&row)
	if result.Error != nil {
		return nil, fmt.Errorf("failed to get or create profile: %w", result.Error)
	}
	return rowToProfile(&row), nil
}

func (s *PostgresStore) SaveProfile(ctx context.Context, profile *domain.UserProfile) error {
	updates := map[string]interface{}{
		"name":              profile.Name,
		"weight_kg":         profile.WeightKG,
		"height_cm":         profile.HeightCM,
		"age_years":         profile.AgeYears,
		"activity_minutes":  profile.ActivityMinutes,
		"city":              profile.City,
		"water_goal_ml":     profile.WaterGoalML,
		"calorie_goal_kcal": profile.CalorieGoalKcal,
		"complete":          profile.Complete,
	}

	result := s.db.WithContext(ctx).
		Model(&profileRow{}).
		Where("telegram_id = ?", profile.TelegramID).
		Updates(updates)
	if result.Error != nil {
		return fmt.Errorf("failed to save profile: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		row := profileRow{TelegramID: profile.TelegramID}
		applyProfile(&row, profile)
		if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
			return fmt.Errorf("failed to save profile: %w", err)
		}
	}
	return nil
}

func (s *PostgresStore) UpdateDay(ctx context.Context, telegramID int64, date string, fn func(*domain.DailyRecord)) (domain.DailyRecord, error) {
	var updated domain.DailyRecord

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var row dailyRecordRow
		result := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where(dailyRecordRow{TelegramID: telegramID, Date: date}).
			FirstOrCreate(&row, dailyRecordRow{TelegramID: telegramID, Date: date})
		if result.Error != nil {
			return result.Error
		}

		rec := rowToDay(&row)
		fn(&rec)

		row.WaterML = rec.WaterML
		row.CaloriesKcal = rec.CaloriesKcal
		row.BurnedKcal = rec.BurnedKcal
		row.ExtraWaterML = rec.ExtraWaterML
		if err := tx.Save(&row).Error; err != nil {
			return err
		}

		updated = rec
		return nil
	})
	if err != nil {
		return domain.DailyRecord{}, fmt.Errorf("failed to update day record: %w", err)
	}
	return updated, nil
}

func (s *PostgresStore) Day(ctx context.Context, telegramID int64, date string) (domain.DailyRecord, error) {
	var row dailyRecordRow
	err := s.db.WithContext(ctx).
		Where("telegram_id = ? AND date = ?", telegramID, date).
		First(&row).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.DailyRecord{Date: date}, nil
	}
	if err != nil {
		return domain.DailyRecord{}, fmt.Errorf("failed to get day record: %w", err)
	}
	return rowToDay(&row), nil
}

func rowToProfile(row *profileRow) *domain.UserProfile {
	return &domain.UserProfile{
		TelegramID:      row.TelegramID,
		Name:            row.Name,
		WeightKG:        row.WeightKG,
		HeightCM:        row.HeightCM,
		AgeYears:        row.AgeYears,
		ActivityMinutes: row.ActivityMinutes,
		City:            row.City,
		WaterGoalML:     row.WaterGoalML,
		CalorieGoalKcal: row.CalorieGoalKcal,
		Complete:        row.Complete,
	}
}

func applyProfile(row *profileRow, p *domain.UserProfile) {
	row.Name = p.Name
	row.WeightKG = p.WeightKG
	row.HeightCM = p.HeightCM
	row.AgeYears = p.AgeYears
	row.ActivityMinutes = p.ActivityMinutes
	row.City = p.City
	row.WaterGoalML = p.WaterGoalML
	row.CalorieGoalKcal = p.CalorieGoalKcal
	row.Complete = p.Complete
}

func rowToDay(row *dailyRecordRow) domain.DailyRecord {
	return domain.DailyRecord{
		Date:         row.Date,
		WaterML:      row.WaterML,
		CaloriesKcal: row.CaloriesKcal,
		BurnedKcal:   row.BurnedKcal,
		ExtraWaterML: row.ExtraWaterML,
	}
}
