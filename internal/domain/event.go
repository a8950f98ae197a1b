package domain

import "time"

// EventType — тип события витрины
type EventType string

const (
	EventLogin         EventType = "session.login"
	EventLogout        EventType = "session.logout"
	EventProductViewed EventType = "product.viewed"
)

// Event описывает событие витрины для аналитики
type Event struct {
	ID         string
	Type       EventType
	SessionID  string
	ProductID  int64
	OccurredAt time.Time
}

func NewEvent(id string, eventType EventType, sessionID string, productID int64) *Event {
	return &Event{
		ID:         id,
		Type:       eventType,
		SessionID:  sessionID,
		ProductID:  productID,
		OccurredAt: time.Now().UTC(),
	}
}
