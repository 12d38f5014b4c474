package handlers

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/ivmolchanov/goshop/internal/models"
	"github.com/ivmolchanov/goshop/internal/server/storage"
	"github.com/ivmolchanov/goshop/internal/validation"
	"github.com/ivmolchanov/goshop/pkg/api"
)

// AuthHandler обрабатывает запросы авторизации
type AuthHandler struct {
	logger    *slog.Logger
	users     storage.UserStorage
	jwtConfig JWTConfig
}

// NewAuthHandler создает новый handler для авторизации
func NewAuthHandler(logger *slog.Logger, users storage.UserStorage, jwtConfig JWTConfig) *AuthHandler {
	return &AuthHandler{
		logger:    logger,
		users:     users,
		jwtConfig: jwtConfig,
	}
}

// Register обрабатывает POST /api/v1/auth/register
// Регистрация нового покупателя. Роль всегда "user":
// повысить роль через регистрацию нельзя.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// Парсим request body
	var req api.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode register request", slog.Any("error", err))
		sendError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	// Валидация входных данных. Пароль в логи не попадает.
	if err := validation.ValidateName(req.Name); err != nil {
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := validation.ValidateEmail(req.Email); err != nil {
		h.logger.WarnContext(ctx, "invalid email", slog.String("email", req.Email), slog.Any("error", err))
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}
	if err := validation.ValidatePassword(req.Password); err != nil {
		sendError(w, err.Error(), http.StatusBadRequest)
		return
	}

	// Хешируем пароль. Открытый текст нигде не сохраняется.
	passwordHash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to hash password", slog.Any("error", err))
		sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	user := &models.User{
		ID:           uuid.New().String(),
		Name:         req.Name,
		Email:        req.Email,
		PasswordHash: string(passwordHash),
		Role:         models.RoleUser,
		CreatedAt:    time.Now(),
	}

	// Сохраняем в БД
	if err := h.users.CreateUser(ctx, user); err != nil {
		if errors.Is(err, storage.ErrUserAlreadyExists) {
			h.logger.WarnContext(ctx, "user already exists", slog.String("email", req.Email))
			sendError(w, "email already taken", http.StatusConflict)
			return
		}
		h.logger.ErrorContext(ctx, "failed to create user", slog.Any("error", err))
		sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	// Сразу выдаем токен: после регистрации пользователь залогинен
	token, expiresIn, err := GenerateToken(h.jwtConfig, user)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to generate token", slog.Any("error", err))
		sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	h.logger.InfoContext(ctx, "user registered successfully",
		slog.String("email", req.Email),
		slog.String("user_id", user.ID))

	sendJSON(w, api.TokenResponse{
		Token:     token,
		ExpiresIn: expiresIn,
		User:      userPayload(user),
	}, http.StatusCreated)
}

// Login обрабатывает POST /api/v1/auth/login
// Аутентификация пользователя. Все варианты отказа возвращают один и тот же
// generic 401, чтобы по ответу нельзя было перечислять аккаунты.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	// Парсим request body
	var req api.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.ErrorContext(ctx, "failed to decode login request", slog.Any("error", err))
		sendError(w, "invalid request body", http.StatusBadRequest)
		return
	}

	if req.Email == "" || req.Password == "" {
		sendError(w, "email and password are required", http.StatusBadRequest)
		return
	}

	// Получаем пользователя из БД
	user, err := h.users.GetUserByEmail(ctx, req.Email)
	if err != nil {
		if errors.Is(err, storage.ErrUserNotFound) {
			h.logger.WarnContext(ctx, "login failed: user not found", slog.String("email", req.Email))
			sendError(w, "invalid credentials", http.StatusUnauthorized)
			return
		}
		h.logger.ErrorContext(ctx, "failed to get user", slog.Any("error", err))
		sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	// Сравниваем пароль с bcrypt-хешем. Plaintext никогда не сравнивается
	// напрямую и не логируется.
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		h.logger.WarnContext(ctx, "login failed: invalid password", slog.String("email", req.Email))
		sendError(w, "invalid credentials", http.StatusUnauthorized)
		return
	}

	// Отключенный аккаунт получает тот же generic ответ
	if user.Disabled {
		h.logger.WarnContext(ctx, "login failed: account disabled", slog.String("user_id", user.ID))
		sendError(w, "invalid credentials", http.StatusUnauthorized)
		return
	}

	// Генерируем session token с id и ролью
	token, expiresIn, err := GenerateToken(h.jwtConfig, user)
	if err != nil {
		h.logger.ErrorContext(ctx, "failed to generate token", slog.Any("error", err))
		sendError(w, "internal server error", http.StatusInternalServerError)
		return
	}

	// Обновляем last_login
	if err := h.users.UpdateLastLogin(ctx, user.ID, time.Now()); err != nil {
		// Не критичная ошибка, логируем но не прерываем
		h.logger.WarnContext(ctx, "failed to update last login", slog.Any("error", err))
	}

	h.logger.InfoContext(ctx, "user logged in successfully",
		slog.String("email", req.Email),
		slog.String("user_id", user.ID))

	sendJSON(w, api.TokenResponse{
		Token:     token,
		ExpiresIn: expiresIn,
		User:      userPayload(user),
	}, http.StatusOK)
}

// Verify обрабатывает GET /api/v1/auth/verify и /api/v1/auth/verify-admin.
// Вся работа уже сделана middleware: сюда запрос доходит только
// с резолвнутым пользователем в контексте. Эндпоинт идемпотентный.
func (h *AuthHandler) Verify(w http.ResponseWriter, r *http.Request) {
	user, ok := UserFromContext(r.Context())
	if !ok {
		// Сюда можно попасть только при ошибке композиции роутера
		h.logger.ErrorContext(r.Context(), "verify handler called without authenticated user")
		sendError(w, "authentication required", http.StatusUnauthorized)
		return
	}

	sendJSON(w, api.VerifyResponse{User: userPayload(user)}, http.StatusOK)
}
