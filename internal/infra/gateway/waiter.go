package gateway

import (
	"context"
	"net/http"

	"waiter/internal/domain/entity"
)

type attendancePayload struct {
	StationID string `json:"stationId"`
}

func (c *Client) GetProfile(ctx context.Context) (*entity.Profile, error) {
	raw, err := c.do(ctx, http.MethodGet, "/waiter/profile", nil, nil)
	if err != nil {
		return nil, err
	}

	return decodeProfile(raw), nil
}

// MarkAttendanceToday posts an empty body unless a station was scanned.
func (c *Client) MarkAttendanceToday(ctx context.Context, stationID string) error {
	var payload any
	if stationID != "" {
		payload = attendancePayload{StationID: stationID}
	}

	_, err := c.do(ctx, http.MethodPost, "/waiter/attendance/mark-today", nil, payload)

	return err
}
