package settings

import (
	"database/sql"
)

func buildCreateSubscriptionsTable() string {
	return `CREATE TABLE IF NOT EXISTS subscriptions (
		userid TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		chatid TEXT NOT NULL,
		results INTEGER NOT NULL DEFAULT 0);`
}

func buildSelectUserCommand() (string, func(*sql.Rows) (bool, error)) {
	return `SELECT results FROM subscriptions WHERE userid = ?`, processSelectUserRows
}

func processSelectUserRows(rows *sql.Rows) (bool, error) {
	defer rows.Close()

	// only can be one row
	if rows.Next() {
		var results int
		if err := rows.Scan(&results); err != nil {
			return false, err
		}
		return results == 1, nil
	}
	return false, rows.Err()
}

func buildSelectSubscribersCommand() (string, func(*sql.Rows) ([]TelegramUser, error)) {
	return `SELECT userid, name, chatid FROM subscriptions WHERE results = 1 ORDER BY userid`, processSelectSubscribersRows
}

func processSelectSubscribersRows(rows *sql.Rows) ([]TelegramUser, error) {
	defer rows.Close()

	users := make([]TelegramUser, 0)
	for rows.Next() {
		var u TelegramUser
		if err := rows.Scan(&u.ID, &u.Name, &u.ChatID); err != nil {
			return users, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func buildUpsertUserCommand() string {
	return `INSERT OR REPLACE INTO subscriptions (userid, name, chatid, results) VALUES (?, ?, ?, ?)`
}
