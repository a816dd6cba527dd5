package get_completion

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrTimeRequired возвращается, когда для часового режима не указано время начала
	ErrTimeRequired = errors.New("start time is required in hours mode")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
