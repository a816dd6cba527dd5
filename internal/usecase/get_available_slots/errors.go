package get_available_slots

import "errors"

var (
	// ErrWrongMode возвращается, когда пакет выполняется в дневном режиме и слотов не имеет
	ErrWrongMode = errors.New("slots are available only in hours mode")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
