package storage

import (
	"context"
	"sync"

	"github.com/aleksmelnikov/fitness-helper/internal/domain"
)

// MemoryStore is the in-process Store. Each user owns an entry guarded by its
// own mutex, so operations for one user serialize while different users never
// contend. Profiles and day records live for the process lifetime.
type MemoryStore struct {
	mu    sync.RWMutex
	users map[int64]*userEntry
}

type userEntry struct {
	mu      sync.Mutex
	profile domain.UserProfile
	days    map[string]*domain.DailyRecord
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{users: make(map[int64]*userEntry)}
}

func (s *MemoryStore) entry(telegramID int64) *userEntry {
	s.mu.RLock()
	e, ok := s.users[telegramID]
	s.mu.RUnlock()
	if ok {
		return e
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if e, ok = s.users[telegramID]; ok {
		return e
	}
	e = &userEntry{
		profile: domain.UserProfile{TelegramID: telegramID, Name: placeholderName},
		days:    make(map[string]*domain.DailyRecord),
	}
	s.users[telegramID] = e
	return e
}

// GetOrCreateProfile returns a copy of the user's profile, creating a
// placeholder profile on first interaction.
func (s *MemoryStore) GetOrCreateProfile(ctx context.Context, telegramID int64) (*domain.UserProfile, error) {
	e := s.entry(telegramID)
	e.mu.Lock()
	defer e.mu.Unlock()
	p := e.profile
	return &p, nil
}

// SaveProfile replaces the stored profile for the user.
func (s *MemoryStore) SaveProfile(ctx context.Context, profile *domain.UserProfile) error {
	e := s.entry(profile.TelegramID)
	e.mu.Lock()
	defer e.mu.Unlock()
	e.profile = *profile
	return nil
}

// UpdateDay atomically gets-or-creates the day record and applies fn to it.
// The updated record is returned by value.
func (s *MemoryStore) UpdateDay(ctx context.Context, telegramID int64, date string, fn func(*domain.DailyRecord)) (domain.DailyRecord, error) {
	e := s.entry(telegramID)
	e.mu.Lock()
	defer e.mu.Unlock()

	rec, ok := e.days[date]
	if !ok {
		rec = &domain.DailyRecord{Date: date}
		e.days[date] = rec
	}
	fn(rec)
	return *rec, nil
}

// Day returns the day record, or a zero record when nothing was logged yet.
func (s *MemoryStore) Day(ctx context.Context, telegramID int64, date string) (domain.DailyRecord, error) {
	e := s.entry(telegramID)
	e.mu.Lock()
	defer e.mu.Unlock()

	if rec, ok := e.days[date]; ok {
		return *rec, nil
	}
	return domain.DailyRecord{Date: date}, nil
}
