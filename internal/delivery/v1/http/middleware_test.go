package http

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type lineLogger struct {
	mu    sync.Mutex
	lines []string
}

func (l *lineLogger) Debugf(format string, args ...any) {}

func (l *lineLogger) Infof(format string, args ...any) {
	l.mu.Lock()
	l.lines = append(l.lines, fmt.Sprintf(format, args...))
	l.mu.Unlock()
}

func (l *lineLogger) Warnf(format string, args ...any) {}

func (l *lineLogger) Errorf(err error, format string, args ...any) {}

func (l *lineLogger) Lines() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.lines...)
}

func TestRequestLogger_LogsPanickingRequest(t *testing.T) {
	log := &lineLogger{}

	r := chi.NewRouter()
	r.Use(requestLogger(log))
	r.Use(middleware.Recoverer)
	r.Get("/boom", func(http.ResponseWriter, *http.Request) {
		panic("handler failure")
	})

	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	lines := log.Lines()
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], "GET /boom 500")
}

func TestRequestLogger_LogsWhenPanicPropagates(t *testing.T) {
	log := &lineLogger{}
	handler := requestLogger(log)(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic(http.ErrAbortHandler)
	}))

	assert.Panics(t, func() {
		handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/abort", nil))
	})
	require.Len(t, log.Lines(), 1)
	assert.Contains(t, log.Lines()[0], "GET /abort")
}
