package services

import (
	"context"
	"sync"

	"github.com/aleksmelnikov/fitness-helper/internal/domain"
)

// fakeWeather returns a fixed weather reading or a fixed error.
type fakeWeather struct {
	weather domain.Weather
	err     error
	calls   int
}

func (f *fakeWeather) CurrentWeather(ctx context.Context, city string) (domain.Weather, error) {
	f.calls++
	if f.err != nil {
		return domain.Weather{}, f.err
	}
	return f.weather, nil
}

// fakeDates returns a settable date, simulating city-local midnight rollover.
type fakeDates struct {
	mu   sync.Mutex
	date string
	err  error
}

func (f *fakeDates) CurrentDate(ctx context.Context, city string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return "", f.err
	}
	return f.date, nil
}

func (f *fakeDates) set(date string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.date = date
}

// fakeFood returns a fixed lookup outcome.
type fakeFood struct {
	info  domain.FoodInfo
	found bool
	err   error
	calls int
}

func (f *fakeFood) Lookup(ctx context.Context, name string) (domain.FoodInfo, bool, error) {
	f.calls++
	if f.err != nil {
		return domain.FoodInfo{}, false, f.err
	}
	return f.info, f.found, nil
}
