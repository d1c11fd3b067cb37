package state

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestManager_StateLifecycle(t *testing.T) {
	m := NewManager()

	assert.Equal(t, None, m.GetUserState(1))

	m.SetUserState(1, WaitingForWeight)
	assert.Equal(t, WaitingForWeight, m.GetUserState(1))
	assert.Equal(t, None, m.GetUserState(2))

	m.ClearUserState(1)
	assert.Equal(t, None, m.GetUserState(1))
}

func TestManager_TempData(t *testing.T) {
	m := NewManager()

	_, ok := m.GetTempData(1, TempName)
	assert.False(t, ok)

	m.SetTempData(1, TempName, "Алексей")
	m.SetTempData(1, TempWeight, 70.0)

	name, ok := m.GetTempData(1, TempName)
	assert.True(t, ok)
	assert.Equal(t, "Алексей", name)

	weight, ok := m.GetTempData(1, TempWeight)
	assert.True(t, ok)
	assert.Equal(t, 70.0, weight)

	// Per-user isolation.
	_, ok = m.GetTempData(2, TempName)
	assert.False(t, ok)

	m.ClearTempData(1)
	_, ok = m.GetTempData(1, TempName)
	assert.False(t, ok)
}

func TestManager_ConcurrentAccess(t *testing.T) {
	m := NewManager()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			m.SetUserState(id, WaitingForCity)
			m.SetTempData(id, TempName, "user")
			m.GetUserState(id)
			m.GetTempData(id, TempName)
			m.ClearUserState(id)
			m.ClearTempData(id)
		}(int64(i))
	}
	wg.Wait()
}
