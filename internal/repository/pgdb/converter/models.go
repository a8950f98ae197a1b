package converter

import "time"

// SessionModel представляет запись таблицы sessions в PostgreSQL.
type SessionModel struct {
	ID        string    `db:"id"`
	LoggedIn  bool      `db:"logged_in"`
	UpdatedAt time.Time `db:"updated_at"`
	ExpiresAt time.Time `db:"expires_at"`
}
