package pgdb

import (
	"context"
	"errors"
	"time"

	"github.com/DRSN-tech/storefront/internal/domain"
	"github.com/DRSN-tech/storefront/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/storefront/pkg/e"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jimlawless/whereami"
)

// Querier — часть *pgxpool.Pool, нужная репозиторию
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// SessionRepo реализует репозиторий сессий поверх PostgreSQL.
type SessionRepo struct {
	pool Querier
	conv converter.SessionConverter
	ttl  time.Duration
}

func NewSessionRepo(pool Querier, conv converter.SessionConverter, ttl time.Duration) *SessionRepo {
	return &SessionRepo{pool: pool, conv: conv, ttl: ttl}
}

// Get возвращает действующую сессию. Истёкшая сессия считается отсутствующей.
func (r *SessionRepo) Get(ctx context.Context, id string) (*domain.Session, error) {
	query := `
		SELECT id, logged_in, updated_at, expires_at
		FROM sessions
		WHERE id = $1 AND expires_at > NOW();
	`

	var model converter.SessionModel
	if err := r.pool.QueryRow(ctx, query, id).
		Scan(
			&model.ID, &model.LoggedIn, &model.UpdatedAt, &model.ExpiresAt,
		); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrSessionNotFound)
		}
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return r.conv.ToEntity(&model), nil
}

// Save идемпотентно записывает флаг сессии и продлевает срок её действия.
func (r *SessionRepo) Save(ctx context.Context, session *domain.Session) error {
	model := r.conv.ToModel(session, r.ttl)

	query := `
		INSERT INTO sessions(id, logged_in, updated_at, expires_at) VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO UPDATE
		SET logged_in = EXCLUDED.logged_in,
		    updated_at = EXCLUDED.updated_at,
		    expires_at = EXCLUDED.expires_at;
	`

	if _, err := r.pool.Exec(ctx, query, model.ID, model.LoggedIn, model.UpdatedAt, model.ExpiresAt); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// DeleteExpired удаляет истёкшие сессии и возвращает их число.
func (r *SessionRepo) DeleteExpired(ctx context.Context) (int64, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM sessions WHERE expires_at <= NOW();`)
	if err != nil {
		return 0, e.Wrap(whereami.WhereAmI(), err)
	}

	return tag.RowsAffected(), nil
}
