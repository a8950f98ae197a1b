package http

import (
	"context"
	"net/http"
	"time"

	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/DRSN-tech/storefront/pkg/logger"
	"github.com/go-chi/chi/v5/middleware"
)

type ctxKey int

const (
	sessionIDKey ctxKey = iota
	loggedInKey
)

// SessionFromContext возвращает идентификатор сессии и флаг входа, загруженные middleware.
func SessionFromContext(ctx context.Context) (string, bool) {
	id, _ := ctx.Value(sessionIDKey).(string)
	loggedIn, _ := ctx.Value(loggedInKey).(bool)
	return id, loggedIn
}

// requestLogger пишет строку лога на каждый запрос.
func requestLogger(log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			// Строка пишется и при панике обработчика
			defer func() {
				log.Infof("%s %s %d %dB %s request_id=%s",
					r.Method,
					r.URL.Path,
					ww.Status(),
					ww.BytesWritten(),
					time.Since(start),
					middleware.GetReqID(r.Context()),
				)
			}()

			next.ServeHTTP(ww, r)
		})
	}
}

// sessionLoader читает cookie сессии и кладёт в контекст её идентификатор и флаг входа.
// Ошибка хранилища не прерывает запрос: сессия считается не вошедшей.
func sessionLoader(sessionUC usecase.SessionUC, cookieName string, log logger.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var sessionID string
			if c, err := r.Cookie(cookieName); err == nil {
				sessionID = c.Value
			}

			loggedIn, err := sessionUC.IsAuthenticated(r.Context(), sessionID)
			if err != nil {
				log.Errorf(err, "failed to load session %s", sessionID)
				loggedIn = false
			}

			ctx := context.WithValue(r.Context(), sessionIDKey, sessionID)
			ctx = context.WithValue(ctx, loggedInKey, loggedIn)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// requireLogin перенаправляет на страницу входа, если флаг входа не выставлен.
func requireLogin(loginPath string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if _, loggedIn := SessionFromContext(r.Context()); !loggedIn {
				WriteRedirect(w, loginPath, SessionResponse{
					LoggedIn: false,
					Message:  msgLoginRequired,
					Redirect: loginPath,
				})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
