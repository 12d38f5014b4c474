package models

import "time"

// Role определяет роль пользователя в системе
type Role string

const (
	// RoleUser обычный покупатель
	RoleUser Role = "user"
	// RoleAdmin администратор магазина
	RoleAdmin Role = "admin"
)

// IsValid проверяет, что роль одна из предопределенных
func (r Role) IsValid() bool {
	switch r {
	case RoleUser, RoleAdmin:
		return true
	default:
		return false
	}
}

// Satisfies проверяет, достаточно ли роли для требуемого уровня доступа.
// Один и тот же предикат используется клиентскими guard'ами и серверным
// middleware, чтобы проверки не расходились.
func (r Role) Satisfies(required Role) bool {
	roleLevel := map[Role]int{
		RoleUser:  0,
		RoleAdmin: 1,
	}

	level, ok := roleLevel[r]
	if !ok {
		return false
	}
	requiredLevel, ok := roleLevel[required]
	if !ok {
		return false
	}

	return level >= requiredLevel
}

// User представляет пользователя в системе
type User struct {
	ID           string     `json:"id"`         // UUID пользователя
	Name         string     `json:"name"`       // отображаемое имя
	Email        string     `json:"email"`      // уникальный email
	PasswordHash string     `json:"-"`          // bcrypt хеш пароля, не сериализуется
	Role         Role       `json:"role"`       // роль пользователя
	Disabled     bool       `json:"disabled"`   // отключенный аккаунт не проходит аутентификацию
	CreatedAt    time.Time  `json:"created_at"` // время создания
	LastLogin    *time.Time `json:"last_login,omitempty"`
}
