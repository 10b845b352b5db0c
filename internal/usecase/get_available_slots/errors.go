package get_available_slots

import "errors"

var (
	// ErrConfigNotFound возвращается, когда у салона нет конфигурации расписания
	ErrConfigNotFound = errors.New("salon schedule config not found")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
