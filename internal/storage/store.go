package storage

import (
	"context"

	"github.com/aleksmelnikov/fitness-helper/internal/domain"
)

// Store holds user profiles and their per-day accounting records.
//
// UpdateDay is the single mutation path for day records: it atomically
// gets-or-creates the record for (user, date) and applies fn to it while the
// user's records are locked, so concurrent first-events for the same day never
// create divergent records and concurrent increments never lose updates.
// Implementations must not call out to the network inside UpdateDay.
type Store interface {
	GetOrCreateProfile(ctx context.Context, telegramID int64) (*domain.UserProfile, error)
	SaveProfile(ctx context.Context, profile *domain.UserProfile) error
	UpdateDay(ctx context.Context, telegramID int64, date string, fn func(*domain.DailyRecord)) (domain.DailyRecord, error)
	Day(ctx context.Context, telegramID int64, date string) (domain.DailyRecord, error)
}

// placeholderName is assigned to a profile created on first interaction,
// before the set-profile flow has run.
const placeholderName = "user"
