package marketplace

import "errors"

var (
	// ErrProjectNotFound возвращается, когда маркетплейс не знает проект
	ErrProjectNotFound = errors.New("marketplace: project not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("marketplace client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("marketplace client: invalid response")

	// ErrUnsuccessful возвращается, когда сервис ответил success=false
	ErrUnsuccessful = errors.New("marketplace client: request was not successful")

	// ErrCircuitOpen возвращается, пока circuit breaker не пропускает запросы
	ErrCircuitOpen = errors.New("marketplace client: circuit breaker is open")
)
