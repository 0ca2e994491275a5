package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	log "github.com/sirupsen/logrus"

	"github.com/dvukovic/trainlog/internal/telemetry/metrics"
	"github.com/dvukovic/trainlog/pkg"
)

type Handler struct {
	usersStore  *UsersStore
	authService *Service
	metrics     *metrics.Manager
}

func NewHandler(usersStore *UsersStore, authService *Service, metricsManager *metrics.Manager) *Handler {
	return &Handler{
		usersStore:  usersStore,
		authService: authService,
		metrics:     metricsManager,
	}
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
	Name     string `json:"name"`
}

func (h *Handler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "request decode error", http.StatusBadRequest)
		return
	}

	user, err := h.usersStore.Verify(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, ErrWrongCredentials) {
			http.Error(w, "wrong credentials", http.StatusBadRequest)
			return
		}
		log.Errorf("login, verify credentials: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	token, err := h.authService.Login(r.Context(), req.Username)
	if err != nil {
		log.Errorf("login, create session: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	h.metrics.CounterLogins.Inc()

	respBytes, err := json.Marshal(loginResponse{
		Token:    token,
		Username: req.Username,
		Name:     user.Name,
	})
	if err != nil {
		log.Errorf("login, marshal response: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytesOK(w, pkg.ContentType.JSON, respBytes)
}

func (h *Handler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var params RegisterParams
	if err := json.NewDecoder(r.Body).Decode(&params); err != nil {
		http.Error(w, "request decode error", http.StatusBadRequest)
		return
	}

	user, err := h.usersStore.Register(params)
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingField),
			errors.Is(err, ErrPasswordMismatch),
			errors.Is(err, ErrPasswordTooShort),
			errors.Is(err, ErrUsernameTaken):
			http.Error(w, err.Error(), http.StatusBadRequest)
		default:
			log.Errorf("register user: %s", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
		}
		return
	}

	h.metrics.CounterRegistrations.Inc()
	log.Debugf("new user registered: %s", user.Name)

	pkg.WriteResponse(
		w, pkg.ContentType.JSON,
		fmt.Sprintf(`{"registered":true,"name":%q}`, user.Name),
		http.StatusCreated,
	)
}

func (h *Handler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	token := r.Header.Get(AuthTokenHeader)
	if token == "" {
		http.Error(w, "no token", http.StatusBadRequest)
		return
	}

	loggedOut, err := h.authService.Logout(r.Context(), token)
	if err != nil {
		log.Errorf("logout: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if !loggedOut {
		http.Error(w, "not logged in", http.StatusBadRequest)
		return
	}

	pkg.WriteTextResponseOK(w, "logged-out")
}
