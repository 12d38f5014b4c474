package storage

import "errors"

var (
	// ErrUserNotFound возвращается, когда пользователь не найден
	ErrUserNotFound = errors.New("user not found")

	// ErrUserAlreadyExists возвращается при попытке создать пользователя
	// с занятым email
	ErrUserAlreadyExists = errors.New("user already exists")

	// ErrProductNotFound возвращается, когда товар не найден
	ErrProductNotFound = errors.New("product not found")
)
