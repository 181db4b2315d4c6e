package client

import (
	"context"
	"fmt"
	"net/http"
)

// Schedule is the wire shape echoed by the schedule service.
type Schedule struct {
	ScheduleID  int64  `json:"schedule_id"`
	StaffID     int64  `json:"staff_id"`
	Date        string `json:"date"`
	RequestID   int64  `json:"request_id"`
	ApprovedBy  *int64 `json:"approved_by"`
	RequestType string `json:"request_type"`
	Status      string `json:"status"`
}

// ScheduleClient talks to the schedule service.
type ScheduleClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewScheduleClient(baseURL string) *ScheduleClient {
	return &ScheduleClient{baseURL: baseURL, httpClient: http.DefaultClient}
}

func (c *ScheduleClient) Create(ctx context.Context, requestID int64) (*Schedule, error) {
	var schedule Schedule
	url := c.baseURL + "/schedule/create_schedule"
	body := map[string]int64{"request_id": requestID}
	if err := do(ctx, c.httpClient, http.MethodPost, url, body, &schedule); err != nil {
		return nil, err
	}
	return &schedule, nil
}

func (c *ScheduleClient) UpdateStatus(ctx context.Context, requestID int64, status string) (*Schedule, error) {
	var schedule Schedule
	url := fmt.Sprintf("%s/schedule/%d/update_status", c.baseURL, requestID)
	body := map[string]string{"status": status}
	if err := do(ctx, c.httpClient, http.MethodPut, url, body, &schedule); err != nil {
		return nil, err
	}
	return &schedule, nil
}
