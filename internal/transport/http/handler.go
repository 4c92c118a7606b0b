package http

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gorilla/websocket"

	"quizbank-service/internal/app"
	"quizbank-service/internal/domain"
	"quizbank-service/internal/identity"
)

// Handler exposes the account and quiz use cases over HTTP.
type Handler struct {
	accounts *app.AccountService
	quizzes  *app.QuizService
	cookie   string
	log      *slog.Logger
	upgrader websocket.Upgrader
}

func NewHandler(accounts *app.AccountService, quizzes *app.QuizService, cookieName string, log *slog.Logger) *Handler {
	if log == nil {
		log = slog.Default()
	}
	return &Handler{
		accounts: accounts,
		quizzes:  quizzes,
		cookie:   cookieName,
		log:      log,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// Routes builds the router. Everything except health, register and login
// requires a session cookie.
func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})
	r.Post("/register", h.register)
	r.Post("/login", h.login)
	r.Post("/logout", h.logout)

	r.Group(func(r chi.Router) {
		r.Use(h.requireSession)
		r.Get("/home", h.home)
		r.Get("/quizzes", h.listQuizzes)
		r.Post("/quizzes", h.createQuiz)
		r.Get("/quizzes/{id}", h.getQuiz)
		r.Put("/quizzes/{id}", h.editQuiz)
		r.Delete("/quizzes/{id}", h.deleteQuiz)
		r.Post("/submit", h.submit)
		r.Get("/ws", h.ServeWS)
	})
	return r
}

func (h *Handler) requireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(h.cookie)
		if err != nil {
			writeMessage(w, http.StatusUnauthorized, "authentication required")
			return
		}
		principal, err := h.accounts.Resolve(r.Context(), cookie.Value)
		if errors.Is(err, domain.ErrSessionNotFound) {
			writeMessage(w, http.StatusUnauthorized, "authentication required")
			return
		}
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		next.ServeHTTP(w, r.WithContext(identity.WithPrincipal(r.Context(), principal)))
	})
}

type registerRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type quizRequest struct {
	QuestionText  string   `json:"questionText"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
}

func (q quizRequest) toQuiz(id int) domain.Quiz {
	return domain.Quiz{ID: id, QuestionText: q.QuestionText, Options: q.Options, CorrectAnswer: q.CorrectAnswer}
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid registration payload")
		return
	}
	principal, token, err := h.accounts.Register(r.Context(), req.Username, req.Email, req.Password, req.Role)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.setSession(w, token)
	writeJSON(w, http.StatusCreated, principal)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid login payload")
		return
	}
	principal, token, err := h.accounts.Login(r.Context(), req.Username, req.Password)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.setSession(w, token)
	writeJSON(w, http.StatusOK, principal)
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie(h.cookie); err == nil {
		if err := h.accounts.Logout(r.Context(), cookie.Value); err != nil {
			h.writeError(w, r, err)
			return
		}
	}
	http.SetCookie(w, &http.Cookie{Name: h.cookie, Value: "", Path: "/", MaxAge: -1, HttpOnly: true})
	writeMessage(w, http.StatusOK, "logged out")
}

func (h *Handler) home(w http.ResponseWriter, r *http.Request) {
	p := principal(r)
	home, err := h.quizzes.Home(r.Context(), p)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, newHomeView(p, home))
}

func (h *Handler) listQuizzes(w http.ResponseWriter, r *http.Request) {
	p := principal(r)
	quizzes, err := h.quizzes.List(r.Context(), p)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, quizViews(p, quizzes))
}

func (h *Handler) getQuiz(w http.ResponseWriter, r *http.Request) {
	id, ok := quizID(w, r)
	if !ok {
		return
	}
	p := principal(r)
	quiz, err := h.quizzes.Get(r.Context(), p, id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, quizViews(p, []domain.Quiz{quiz})[0])
}

func (h *Handler) createQuiz(w http.ResponseWriter, r *http.Request) {
	var req quizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid quiz payload")
		return
	}
	p := principal(r)
	quiz, err := h.quizzes.Create(r.Context(), p, req.toQuiz(0))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, quizViews(p, []domain.Quiz{quiz})[0])
}

func (h *Handler) editQuiz(w http.ResponseWriter, r *http.Request) {
	id, ok := quizID(w, r)
	if !ok {
		return
	}
	var req quizRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid quiz payload")
		return
	}
	if err := h.quizzes.Edit(r.Context(), principal(r), req.toQuiz(id)); err != nil {
		h.writeError(w, r, err)
		return
	}
	writeMessage(w, http.StatusOK, "quiz updated")
}

func (h *Handler) deleteQuiz(w http.ResponseWriter, r *http.Request) {
	id, ok := quizID(w, r)
	if !ok {
		return
	}
	if err := h.quizzes.Delete(r.Context(), principal(r), id); err != nil {
		h.writeError(w, r, err)
		return
	}
	writeMessage(w, http.StatusOK, "quiz deleted")
}

// submit accepts either a flat JSON object or a urlencoded form of answer<N> fields.
func (h *Handler) submit(w http.ResponseWriter, r *http.Request) {
	fields := map[string]string{}
	if strings.HasPrefix(r.Header.Get("Content-Type"), "application/x-www-form-urlencoded") {
		if err := r.ParseForm(); err != nil {
			writeMessage(w, http.StatusBadRequest, "invalid submission")
			return
		}
		for key := range r.PostForm {
			fields[key] = r.PostForm.Get(key)
		}
	} else if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid submission")
		return
	}

	result, err := h.quizzes.Submit(r.Context(), principal(r), ParseAttempt(fields))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (h *Handler) setSession(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookie,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// principal is only called behind requireSession.
func principal(r *http.Request) domain.Principal {
	p, _ := identity.PrincipalFrom(r.Context())
	return p
}

func quizID(w http.ResponseWriter, r *http.Request) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeMessage(w, http.StatusBadRequest, "invalid quiz id")
		return 0, false
	}
	return id, true
}
