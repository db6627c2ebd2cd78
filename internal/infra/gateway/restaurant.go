package gateway

import (
	"context"
	"net/http"

	"waiter/internal/domain/entity"
)

func (c *Client) GetSettings(ctx context.Context) (*entity.RestaurantSettings, error) {
	raw, err := c.do(ctx, http.MethodGet, "/restaurant/settings", nil, nil)
	if err != nil {
		return nil, err
	}

	return decodeSettings(raw), nil
}

func (c *Client) ReportIssue(ctx context.Context, report entity.IssueReport) error {
	_, err := c.do(ctx, http.MethodPost, "/restaurant/report-issue", nil, report)

	return err
}
