package planner

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается, когда не удалось получить конфигурацию или снапшот
	ErrInternal = errors.New("planner: internal error")
)
