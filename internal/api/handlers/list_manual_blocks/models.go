package list_manual_blocks

import (
	"fmt"
	"net/http"
	"time"

	"github.com/m04kA/SMC-SchedulingService/internal/service/blocks/models"
)

// ToServiceRequest создает запрос сервиса из query параметров from и to (RFC3339)
func ToServiceRequest(r *http.Request, userID, projectID int64) (*models.ListBlocksRequest, error) {
	from, err := parseOptionalTime(r, "from")
	if err != nil {
		return nil, err
	}

	to, err := parseOptionalTime(r, "to")
	if err != nil {
		return nil, err
	}

	return &models.ListBlocksRequest{
		UserID:    userID,
		ProjectID: projectID,
		From:      from,
		To:        to,
	}, nil
}

func parseOptionalTime(r *http.Request, name string) (*time.Time, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}

	t, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	return &t, nil
}
