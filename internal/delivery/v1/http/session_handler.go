package http

import (
	"net/http"
	"time"

	"github.com/DRSN-tech/storefront/internal/usecase"
	"github.com/DRSN-tech/storefront/pkg/logger"
)

// CookieConfig — параметры cookie сессии
type CookieConfig struct {
	Name   string
	Secure bool
	TTL    time.Duration
}

type SessionHandler struct {
	sessionUsecase usecase.SessionUC
	cookie         CookieConfig
	paths          routePaths
	logger         logger.Logger
}

func NewSessionHandler(sessionUsecase usecase.SessionUC, cookie CookieConfig, paths routePaths, logger logger.Logger) *SessionHandler {
	return &SessionHandler{sessionUsecase: sessionUsecase, cookie: cookie, paths: paths, logger: logger}
}

// loginPage
//
//	@Summary		Страница входа
//	@Description	Для вошедшей сессии перенаправляет на список товаров
//	@Tags			session
//	@Produce		json
//	@Success		200	{object}	SessionResponse	"Требуется вход"
//	@Success		303	{object}	SessionResponse	"Сессия уже вошла"
//	@Router			/login [get]
func (s *SessionHandler) loginPage(w http.ResponseWriter, r *http.Request) {
	if _, loggedIn := SessionFromContext(r.Context()); loggedIn {
		WriteRedirect(w, s.paths.products, SessionResponse{LoggedIn: true, Redirect: s.paths.products})
		return
	}

	WriteSuccess(w, http.StatusOK, SessionResponse{LoggedIn: false, Message: msgLoginRequired})
}

// login
//
//	@Summary		Вход
//	@Description	Выставляет флаг входа без проверки учётных данных
//	@Tags			session
//	@Produce		json
//	@Success		303	{object}	SessionResponse	"Вход выполнен"
//	@Failure		500	{object}	ErrorResponse
//	@Router			/login [post]
func (s *SessionHandler) login(w http.ResponseWriter, r *http.Request) {
	sessionID, _ := SessionFromContext(r.Context())

	session, err := s.sessionUsecase.Login(r.Context(), sessionID)
	if err != nil {
		s.logger.Errorf(err, "login failed")
		WriteError(w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     s.cookie.Name,
		Value:    session.ID,
		Path:     "/",
		MaxAge:   int(s.cookie.TTL.Seconds()),
		HttpOnly: true,
		Secure:   s.cookie.Secure,
		SameSite: http.SameSiteLaxMode,
	})

	WriteRedirect(w, s.paths.products, SessionResponse{LoggedIn: true, Redirect: s.paths.products})
}

// logout
//
//	@Summary		Выход
//	@Description	Снимает флаг входа и сбрасывает состояние списка товаров
//	@Tags			session
//	@Produce		json
//	@Success		303	{object}	SessionResponse	"Выход выполнен"
//	@Failure		500	{object}	ErrorResponse
//	@Router			/logout [post]
func (s *SessionHandler) logout(w http.ResponseWriter, r *http.Request) {
	sessionID, _ := SessionFromContext(r.Context())

	if err := s.sessionUsecase.Logout(r.Context(), sessionID); err != nil {
		s.logger.Errorf(err, "logout failed")
		WriteError(w, err)
		return
	}

	WriteRedirect(w, s.paths.login, SessionResponse{LoggedIn: false, Redirect: s.paths.login})
}
