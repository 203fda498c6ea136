package service

import "errors"

// Категории ошибок сервисного слоя.
// Хендлеры переводят их в HTTP-статусы через errors.Is,
// всё остальное считается внутренней ошибкой сервера
var (
	ErrConflict     = errors.New("нарушение уникальности")
	ErrUnauthorized = errors.New("не авторизован")
	ErrBadRequest   = errors.New("некорректный запрос")
	ErrNotFound     = errors.New("не найдено")
)
