package validation

import (
	"fmt"
	"regexp"
)

// EmailPattern определяет допустимый формат email.
// Упрощенная проверка: локальная часть, @, домен с точкой.
// Полная валидация по RFC здесь не нужна — уникальность проверяет БД.
var EmailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+\-]+@[a-zA-Z0-9.\-]+\.[a-zA-Z]{2,}$`)

const (
	// MaxEmailLen максимальная длина email
	MaxEmailLen = 254
	// MinPasswordLen минимальная длина пароля
	MinPasswordLen = 6
	// MaxNameLen максимальная длина имени
	MaxNameLen = 64
)

// ValidateEmail проверяет, что email соответствует требованиям
func ValidateEmail(email string) error {
	if email == "" {
		return fmt.Errorf("email cannot be empty")
	}

	if len(email) > MaxEmailLen {
		return fmt.Errorf("email must not exceed %d characters", MaxEmailLen)
	}

	if !EmailPattern.MatchString(email) {
		return fmt.Errorf("email has invalid format")
	}

	return nil
}

// ValidatePassword проверяет минимальные требования к паролю
// Минимум 6 символов
func ValidatePassword(password string) error {
	if password == "" {
		return fmt.Errorf("password cannot be empty")
	}

	if len(password) < MinPasswordLen {
		return fmt.Errorf("password must be at least %d characters long", MinPasswordLen)
	}

	return nil
}

// ValidateName проверяет отображаемое имя пользователя
func ValidateName(name string) error {
	if name == "" {
		return fmt.Errorf("name cannot be empty")
	}

	if len(name) > MaxNameLen {
		return fmt.Errorf("name must not exceed %d characters", MaxNameLen)
	}

	return nil
}
