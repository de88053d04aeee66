package settings

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newManager(t *testing.T) *Manager {
	t.Helper()
	m, err := NewManager(filepath.Join(t.TempDir(), "settings.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = m.Close() })
	return m
}

func TestToggleResultsSubscription(t *testing.T) {
	m := newManager(t)

	subscribed, err := m.IsSubscribed("42")
	require.NoError(t, err)
	assert.False(t, subscribed)

	subscribed, err = m.ToggleResultsSubscription("42", "oscar", "1001")
	require.NoError(t, err)
	assert.True(t, subscribed)

	subscribed, err = m.IsSubscribed("42")
	require.NoError(t, err)
	assert.True(t, subscribed)

	subscribed, err = m.ToggleResultsSubscription("42", "oscar", "1001")
	require.NoError(t, err)
	assert.False(t, subscribed)
}

func TestListSubscribers(t *testing.T) {
	m := newManager(t)

	users, err := m.ListSubscribers()
	require.NoError(t, err)
	assert.Empty(t, users)

	for _, u := range []TelegramUser{{"2", "b", "20"}, {"1", "a", "10"}, {"3", "c", "30"}} {
		_, err := m.ToggleResultsSubscription(u.ID, u.Name, u.ChatID)
		require.NoError(t, err)
	}
	_, err = m.ToggleResultsSubscription("3", "c", "30")
	require.NoError(t, err)

	users, err = m.ListSubscribers()
	require.NoError(t, err)
	assert.Equal(t, []TelegramUser{{"1", "a", "10"}, {"2", "b", "20"}}, users)
}

func TestNamesAreNotInterpretedAsSQL(t *testing.T) {
	m := newManager(t)
	_, err := m.ToggleResultsSubscription("1'; DROP TABLE subscriptions; --", "x'y", "10")
	require.NoError(t, err)

	users, err := m.ListSubscribers()
	require.NoError(t, err)
	require.Len(t, users, 1)
	assert.Equal(t, "x'y", users[0].Name)
}

func TestInMemoryDatabase(t *testing.T) {
	m, err := NewManager(":memory:")
	require.NoError(t, err)
	defer m.Close()

	_, err = m.ToggleResultsSubscription("1", "a", "10")
	require.NoError(t, err)
	users, err := m.ListSubscribers()
	require.NoError(t, err)
	assert.Len(t, users, 1)
}
