package snapshot

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках загрузки снапшота
	ErrInternal = errors.New("snapshot: internal error")
)
