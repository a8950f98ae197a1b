package converter

import (
	"time"

	"github.com/DRSN-tech/storefront/internal/domain"
)

// SessionConverter преобразует сессии между domain и моделью PostgreSQL.
type SessionConverter interface {
	ToModel(entity *domain.Session, ttl time.Duration) *SessionModel
	ToEntity(model *SessionModel) *domain.Session
}

type SessionConverterImpl struct{}

func (c *SessionConverterImpl) ToModel(entity *domain.Session, ttl time.Duration) *SessionModel {
	if entity == nil {
		return nil
	}

	updatedAt := entity.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now().UTC()
	}

	return &SessionModel{
		ID:        entity.ID,
		LoggedIn:  entity.LoggedIn,
		UpdatedAt: updatedAt,
		ExpiresAt: updatedAt.Add(ttl),
	}
}

func (c *SessionConverterImpl) ToEntity(model *SessionModel) *domain.Session {
	if model == nil {
		return nil
	}

	return &domain.Session{
		ID:        model.ID,
		LoggedIn:  model.LoggedIn,
		UpdatedAt: model.UpdatedAt,
	}
}
