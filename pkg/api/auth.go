package api

// RegisterRequest представляет запрос на регистрацию нового покупателя
type RegisterRequest struct {
	Name     string `json:"name"`     // отображаемое имя
	Email    string `json:"email"`    // уникальный email, используется для входа
	Password string `json:"password"` // пароль открытым текстом, передается только по TLS
}

// LoginRequest представляет запрос на аутентификацию
type LoginRequest struct {
	Email    string `json:"email"`    // email пользователя
	Password string `json:"password"` // пароль открытым текстом
}

// UserPayload представляет публичное описание пользователя.
// Хеш пароля никогда не попадает в этот тип.
type UserPayload struct {
	ID    string `json:"id"`    // UUID пользователя
	Name  string `json:"name"`  // отображаемое имя
	Email string `json:"email"` // email
	Role  string `json:"role"`  // роль: "user" или "admin"
}

// TokenResponse представляет ответ с токеном доступа
type TokenResponse struct {
	Token     string      `json:"token"`      // подписанный JWT
	ExpiresIn int64       `json:"expires_in"` // время жизни токена в секундах
	User      UserPayload `json:"user"`       // данные пользователя
}

// VerifyResponse представляет ответ verify-эндпоинтов
type VerifyResponse struct {
	User UserPayload `json:"user"` // пользователь, которому принадлежит токен
}

// UsersResponse представляет список пользователей для админки
type UsersResponse struct {
	Users []UserPayload `json:"users"`
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`             // описание ошибки
	Message string `json:"message,omitempty"` // дополнительное сообщение
}
