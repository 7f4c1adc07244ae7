package http

import (
	"context"
	"net/http"
	"time"

	"userapi/internal/common/config"
	commonerrors "userapi/internal/common/errors"
	commonhttp "userapi/internal/common/http"
	"userapi/internal/common/logger"
	"userapi/internal/common/response"
	"userapi/internal/user/service"
)

// UserService is the slice of the user service the HTTP layer calls.
type UserService interface {
	CreateUser(ctx context.Context, input service.CreateInput) (response.Envelope, error)
	GetUserByID(ctx context.Context, id string) (response.Envelope, error)
	LoginUser(ctx context.Context, input service.LoginInput) (response.Envelope, error)
}

type userRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type Handler struct {
	users      UserService
	errHandler *commonhttp.ErrorHandler
	timeout    time.Duration
	log        *logger.Logger
}

func NewHandler(users UserService, cfg config.UsersConfig, log *logger.Logger) http.Handler {
	h := &Handler{
		users:      users,
		errHandler: commonhttp.NewErrorHandler(log),
		timeout:    cfg.RequestTimeout,
		log:        log,
	}
	mux := http.NewServeMux()
	mux.HandleFunc("/health", commonhttp.HealthHandler(log))
	mux.HandleFunc("/users", h.createUser)
	mux.HandleFunc("/users/login", h.loginUser)
	mux.HandleFunc("/users/", commonhttp.RequireMethod(http.MethodGet)(commonhttp.WithTimeout(cfg.RequestTimeout)(h.getUserByID)))
	return mux
}

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		commonhttp.WriteError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req userRequest
	if err := commonhttp.DecodeJSON(r, &req); err != nil {
		h.log.Warnf("create user failed: invalid json: %v", err)
		commonhttp.WriteError(w, http.StatusBadRequest, "invalid json")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	env, err := h.users.CreateUser(ctx, service.CreateInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		h.errHandler.HandleError(w, r, err)
		return
	}

	commonhttp.WriteEnvelope(w, env)
}

func (h *Handler) getUserByID(w http.ResponseWriter, r *http.Request) {
	userID, ok := commonhttp.ExtractUserIDFromPath(r.URL.Path)
	if !ok {
		h.log.WithFields(r.Context(), logger.Fields{
			"path":   r.URL.Path,
			"action": "get_user_missing_id",
		}).Warn("get user failed: missing id")
		h.errHandler.HandleError(w, r, commonerrors.ErrMissingUserID)
		return
	}

	env, err := h.users.GetUserByID(r.Context(), userID)
	if err != nil {
		h.errHandler.HandleError(w, r, err)
		return
	}

	commonhttp.WriteEnvelope(w, env)
}

func (h *Handler) loginUser(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		commonhttp.WriteError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req userRequest
	if err := commonhttp.DecodeJSON(r, &req); err != nil {
		h.log.Warnf("login failed: invalid json: %v", err)
		commonhttp.WriteError(w, http.StatusBadRequest, "invalid json")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), h.timeout)
	defer cancel()

	env, err := h.users.LoginUser(ctx, service.LoginInput{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		h.errHandler.HandleError(w, r, err)
		return
	}

	commonhttp.WriteEnvelope(w, env)
}
