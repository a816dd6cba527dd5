package marketplace

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Metrics метрики обращений к маркетплейсу
type Metrics interface {
	IncCollaboratorRequest(endpoint, outcome string)
	SetBreakerState(name string, state int)
}
