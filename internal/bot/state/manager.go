package state

import "sync"

// User states constants
const (
	None = "none"

	// set-profile form, one state per field
	WaitingForName     = "waiting_for_name"
	WaitingForHeight   = "waiting_for_height"
	WaitingForWeight   = "waiting_for_weight"
	WaitingForAge      = "waiting_for_age"
	WaitingForActivity = "waiting_for_activity"
	WaitingForCity     = "waiting_for_city"

	// logging flows started from the menu
	WaitingForWaterAmount = "waiting_for_water_amount"
	WaitingForFoodName    = "waiting_for_food_name"
	WaitingForFoodGrams   = "waiting_for_food_grams"
	WaitingForWorkout     = "waiting_for_workout"
)

// Temp data keys used by the multi-step flows.
const (
	TempName       = "name"
	TempHeight     = "height"
	TempWeight     = "weight"
	TempAge        = "age"
	TempActivity   = "activity"
	TempFoodName   = "food_name"
	TempCalPer100g = "cal_per_100"
)

// StateManager manages per-user conversational state and the temporary data
// a multi-step flow accumulates before it completes.
type StateManager interface {
	SetUserState(userID int64, state string)
	GetUserState(userID int64) string
	ClearUserState(userID int64)
	SetTempData(userID int64, key string, value interface{})
	GetTempData(userID int64, key string) (interface{}, bool)
	ClearTempData(userID int64)
}

// Manager is the in-memory StateManager.
type Manager struct {
	userStates map[int64]string
	tempData   map[int64]map[string]interface{}
	mu         sync.RWMutex
}

// NewManager creates a new state manager
func NewManager() *Manager {
	return &Manager{
		userStates: make(map[int64]string),
		tempData:   make(map[int64]map[string]interface{}),
	}
}

// SetUserState sets the state for a user
func (m *Manager) SetUserState(userID int64, state string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.userStates[userID] = state
}

// GetUserState gets the state for a user
func (m *Manager) GetUserState(userID int64) string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	state, exists := m.userStates[userID]
	if !exists {
		return None
	}
	return state
}

// ClearUserState clears the state for a user
func (m *Manager) ClearUserState(userID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.userStates, userID)
}

// SetTempData sets temporary data for a user
func (m *Manager) SetTempData(userID int64, key string, value interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.tempData[userID] == nil {
		m.tempData[userID] = make(map[string]interface{})
	}
	m.tempData[userID][key] = value
}

// GetTempData gets temporary data for a user
func (m *Manager) GetTempData(userID int64, key string) (interface{}, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	userData, exists := m.tempData[userID]
	if !exists {
		return nil, false
	}
	value, exists := userData[key]
	return value, exists
}

// ClearTempData clears all temporary data for a user
func (m *Manager) ClearTempData(userID int64) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.tempData, userID)
}
