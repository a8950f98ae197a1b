package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/pkg/clients"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/jimlawless/whereami"
	goredis "github.com/redis/go-redis/v9"
)

// SessionRepo хранит флаг входа строкой "true"/"false" под ключом session:{id}.
type SessionRepo struct {
	client *clients.RedisClient
	ttl    time.Duration
}

func NewSessionRepo(client *clients.RedisClient, ttl time.Duration) *SessionRepo {
	return &SessionRepo{
		client: client,
		ttl:    ttl,
	}
}

func (r *SessionRepo) Get(ctx context.Context, id string) (*domain.Session, error) {
	val, err := r.client.Client.Get(ctx, r.sessionKey(id)).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrSessionNotFound)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	loggedIn, err := strconv.ParseBool(val)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), fmt.Errorf("corrupted session flag %q: %w", val, err))
	}

	return &domain.Session{ID: id, LoggedIn: loggedIn}, nil
}

// Save записывает флаг и продлевает TTL сессии.
func (r *SessionRepo) Save(ctx context.Context, session *domain.Session) error {
	err := r.client.Client.Set(ctx, r.sessionKey(session.ID), strconv.FormatBool(session.LoggedIn), r.ttl).Err()
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

func (r *SessionRepo) sessionKey(id string) string {
	return "session:" + id
}
