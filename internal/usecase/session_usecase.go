package usecase

import (
	"context"
	"errors"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/DRSN-tech/storefront/pkg/logger"
	"github.com/google/uuid"
)

// SessionUseCase управляет флагом входа. Флаг пережидает перезапуск процесса,
// если репозиторий хранит его вне памяти.
type SessionUseCase struct {
	sessionRepo SessionRepository
	views       ViewDropper
	producer    EventProducer
	logger      logger.Logger
}

func NewSessionUC(sessionRepo SessionRepository, views ViewDropper, producer EventProducer, logger logger.Logger) *SessionUseCase {
	return &SessionUseCase{
		sessionRepo: sessionRepo,
		views:       views,
		producer:    producer,
		logger:      logger,
	}
}

// IsAuthenticated возвращает флаг входа сессии. Неизвестная сессия считается не вошедшей,
// состояние её списка сбрасывается.
func (s *SessionUseCase) IsAuthenticated(ctx context.Context, sessionID string) (bool, error) {
	const op = "SessionUseCase.IsAuthenticated"

	if sessionID == "" {
		return false, nil
	}

	session, err := s.sessionRepo.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, e.ErrSessionNotFound) {
			s.views.Drop(sessionID)
			return false, nil
		}
		return false, e.Wrap(op, err)
	}

	if !session.LoggedIn {
		s.views.Drop(sessionID)
	}

	return session.LoggedIn, nil
}

// Login выставляет флаг входа. Для пустого или незнакомого хранилищу sessionID создаётся новая сессия.
func (s *SessionUseCase) Login(ctx context.Context, sessionID string) (*domain.Session, error) {
	const op = "SessionUseCase.Login"

	known, err := s.isKnown(ctx, sessionID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if !known {
		sessionID = uuid.NewString()
	}

	session := domain.NewSession(sessionID, true)
	if err := s.sessionRepo.Save(ctx, session); err != nil {
		return nil, e.Wrap(op, err)
	}

	s.publish(ctx, op, domain.EventLogin, sessionID)
	s.logger.Infof("session logged in: %s", sessionID)

	return session, nil
}

// Logout снимает флаг входа и сбрасывает состояние списка товаров сессии.
func (s *SessionUseCase) Logout(ctx context.Context, sessionID string) error {
	const op = "SessionUseCase.Logout"

	if sessionID == "" {
		return nil
	}

	if err := s.sessionRepo.Save(ctx, domain.NewSession(sessionID, false)); err != nil {
		return e.Wrap(op, err)
	}
	s.views.Drop(sessionID)

	s.publish(ctx, op, domain.EventLogout, sessionID)
	s.logger.Infof("session logged out: %s", sessionID)

	return nil
}

func (s *SessionUseCase) publish(ctx context.Context, op string, eventType domain.EventType, sessionID string) {
	event := domain.NewEvent(uuid.NewString(), eventType, sessionID, 0)
	if err := s.producer.WriteEvent(ctx, event); err != nil {
		s.logger.Warnf("Failed to publish %s event: %v", eventType, e.Wrap(op, err))
	}
}

func (s *SessionUseCase) isKnown(ctx context.Context, sessionID string) (bool, error) {
	if sessionID == "" {
		return false, nil
	}

	if _, err := s.sessionRepo.Get(ctx, sessionID); err != nil {
		if errors.Is(err, e.ErrSessionNotFound) {
			return false, nil
		}
		return false, err
	}

	return true, nil
}
