package manualblock

import "errors"

var (
	// ErrBlockNotFound возвращается, когда ручная блокировка не найдена
	ErrBlockNotFound = errors.New("manualblock.repository: block not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("manualblock.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("manualblock.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("manualblock.repository: failed to scan row")
)
