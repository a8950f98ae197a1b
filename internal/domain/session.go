package domain

import "time"

// Session описывает сессию браузера и её флаг входа
type Session struct {
	ID        string
	LoggedIn  bool
	UpdatedAt time.Time
}

func NewSession(id string, loggedIn bool) *Session {
	return &Session{
		ID:        id,
		LoggedIn:  loggedIn,
		UpdatedAt: time.Now().UTC(),
	}
}
