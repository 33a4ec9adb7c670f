package client

import (
	"context"

	"hostelhub_client/domain"
)

func (c *Client) MyReports(ctx context.Context) ([]domain.Report, error) {
	var reports []domain.Report
	if err := c.getJSON(ctx, "/reports/my", &reports); err != nil {
		return nil, err
	}
	return reports, nil
}

func (c *Client) CreateReport(ctx context.Context, bookingID, description string) (*domain.Report, error) {
	in := map[string]string{
		"bookingId":   bookingID,
		"description": description,
	}
	var report domain.Report
	if err := c.postJSON(ctx, "/reports", in, &report); err != nil {
		return nil, err
	}
	return &report, nil
}
