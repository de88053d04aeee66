package settings

import (
	"database/sql"
	"sync"

	_ "github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"

	"f1champsseason/pkg/log"
)

const (
	DbName = "./f1season-bot.db"
)

type TelegramUser struct {
	ID     string
	Name   string
	ChatID string
}

// Manager stores which telegram chats want result announcements.
type Manager struct {
	db *sql.DB
	mu sync.Mutex
}

func NewManager(dbPath string) (*Manager, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, errors.Wrapf(err, "opening database %s", dbPath)
	}
	// a single connection keeps ":memory:" databases shared
	db.SetMaxOpenConns(1)

	if _, err = db.Exec(buildCreateSubscriptionsTable()); err != nil {
		db.Close()
		return nil, errors.Wrap(err, "init database")
	}
	log.Debug("settings database ready", log.String("path", dbPath))

	return &Manager{
		db: db,
	}, nil
}

func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.db.Close()
}

// ToggleResultsSubscription flips the subscription of the user and returns
// the new state.
func (m *Manager) ToggleResultsSubscription(userID, name, chatID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	subscribed, err := m.isSubscribed(userID)
	if err != nil {
		return false, err
	}
	subscribed = !subscribed
	flag := 0
	if subscribed {
		flag = 1
	}
	if _, err = m.db.Exec(buildUpsertUserCommand(), userID, name, chatID, flag); err != nil {
		return false, errors.Wrap(err, "updating subscription")
	}
	return subscribed, nil
}

func (m *Manager) IsSubscribed(userID string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.isSubscribed(userID)
}

func (m *Manager) ListSubscribers() ([]TelegramUser, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	query, read := buildSelectSubscribersCommand()
	rows, err := m.db.Query(query)
	if err != nil {
		return []TelegramUser{}, errors.Wrap(err, "listing subscribers")
	}
	return read(rows)
}

func (m *Manager) isSubscribed(userID string) (bool, error) {
	query, read := buildSelectUserCommand()
	rows, err := m.db.Query(query, userID)
	if err != nil {
		return false, errors.Wrap(err, "reading subscription")
	}
	return read(rows)
}
