package snapshot

import "errors"

var (
	// ErrConfigNotFound возвращается, когда у салона нет конфигурации расписания
	ErrConfigNotFound = errors.New("salon schedule config not found")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("snapshot service: internal error")
)
