package marketplace

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/sony/gobreaker/v2"
)

// BreakerConfig настройки circuit breaker
type BreakerConfig struct {
	MaxRequests      uint32        // Запросов в half-open состоянии
	Interval         time.Duration // Период сброса счетчиков в closed состоянии
	Timeout          time.Duration // Время в open состоянии
	FailureThreshold uint32        // Подряд неудачных запросов до размыкания
}

// DefaultBreakerConfig настройки по умолчанию
func DefaultBreakerConfig() BreakerConfig {
	return BreakerConfig{
		MaxRequests:      1,
		Interval:         time.Minute,
		Timeout:          30 * time.Second,
		FailureThreshold: 5,
	}
}

// Client клиент для работы с API маркетплейса
type Client struct {
	baseURL    string
	httpClient *http.Client
	breaker    *gobreaker.CircuitBreaker[[]byte]
	metrics    Metrics
	log        Logger
}

// NewClient создает новый экземпляр клиента маркетплейса
func NewClient(baseURL string, timeout time.Duration, breakerCfg BreakerConfig, metrics Metrics, log Logger) *Client {
	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		metrics: metrics,
		log:     log,
	}

	c.breaker = gobreaker.NewCircuitBreaker[[]byte](gobreaker.Settings{
		Name:        "marketplace",
		MaxRequests: breakerCfg.MaxRequests,
		Interval:    breakerCfg.Interval,
		Timeout:     breakerCfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= breakerCfg.FailureThreshold
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			c.log.Warn("Circuit breaker '%s' state changed: %s -> %s", name, from.String(), to.String())
			if c.metrics != nil {
				c.metrics.SetBreakerState(name, int(to))
			}
		},
		// Ответ "проект не найден" - корректный ответ живого сервиса
		IsSuccessful: func(err error) bool {
			return err == nil || errors.Is(err, ErrProjectNotFound)
		},
	})

	return c
}

// GetAvailability получает занятость специалиста по проекту (и пакету, если указан)
func (c *Client) GetAvailability(ctx context.Context, projectID int64, subprojectIndex *int) (*AvailabilityResponse, error) {
	endpoint := fmt.Sprintf("%s/internal/projects/%d/availability%s", c.baseURL, projectID, subprojectQuery(subprojectIndex))

	var resp AvailabilityResponse
	if err := c.get(ctx, EndpointAvailability, endpoint, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, fmt.Errorf("%w: %s: %s", ErrUnsuccessful, EndpointAvailability, resp.Message)
	}

	return &resp, nil
}

// GetWorkingHours получает недельное расписание и часовой пояс специалиста
func (c *Client) GetWorkingHours(ctx context.Context, projectID int64) (*WorkingHoursResponse, error) {
	endpoint := fmt.Sprintf("%s/internal/projects/%d/working-hours", c.baseURL, projectID)

	var resp WorkingHoursResponse
	if err := c.get(ctx, EndpointWorkingHours, endpoint, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, fmt.Errorf("%w: %s: %s", ErrUnsuccessful, EndpointWorkingHours, resp.Message)
	}

	return &resp, nil
}

// GetScheduleProposals получает подсказки о ближайшей дате и кратчайшем окне
func (c *Client) GetScheduleProposals(ctx context.Context, projectID int64, subprojectIndex *int) (*ScheduleProposalsResponse, error) {
	endpoint := fmt.Sprintf("%s/internal/projects/%d/schedule-proposals%s", c.baseURL, projectID, subprojectQuery(subprojectIndex))

	var resp ScheduleProposalsResponse
	if err := c.get(ctx, EndpointScheduleProposals, endpoint, &resp); err != nil {
		return nil, err
	}
	if !resp.Success {
		return nil, fmt.Errorf("%w: %s: %s", ErrUnsuccessful, EndpointScheduleProposals, resp.Message)
	}

	return &resp, nil
}

// get выполняет GET запрос через circuit breaker и декодирует ответ в dest
func (c *Client) get(ctx context.Context, name, endpoint string, dest interface{}) error {
	body, err := c.breaker.Execute(func() ([]byte, error) {
		return c.fetch(ctx, endpoint)
	})
	if err != nil {
		if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
			c.observe(name, "circuit_open")
			return fmt.Errorf("%w: %s", ErrCircuitOpen, name)
		}
		c.observe(name, "error")
		return err
	}

	if err := json.Unmarshal(body, dest); err != nil {
		c.observe(name, "invalid")
		return fmt.Errorf("%w: failed to decode %s response: %v", ErrInvalidResponse, name, err)
	}

	c.observe(name, "ok")
	return nil
}

func (c *Client) fetch(ctx context.Context, endpoint string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		return nil, ErrProjectNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %v", ErrInvalidResponse, err)
	}

	return body, nil
}

func (c *Client) observe(endpoint, outcome string) {
	if c.metrics != nil {
		c.metrics.IncCollaboratorRequest(endpoint, outcome)
	}
}

func subprojectQuery(subprojectIndex *int) string {
	if subprojectIndex == nil {
		return ""
	}
	q := url.Values{}
	q.Set("subprojectIndex", strconv.Itoa(*subprojectIndex))
	return "?" + q.Encode()
}
