package client

import (
	"context"
	"fmt"
	"net/http"
)

// SchedulerClient talks to the saga orchestrator. Used by the autorejector,
// which goes through the orchestrator so work request, schedule and
// notification stay consistent.
type SchedulerClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewSchedulerClient(baseURL string) *SchedulerClient {
	return &SchedulerClient{baseURL: baseURL, httpClient: http.DefaultClient}
}

func (c *SchedulerClient) UpdateWorkRequestAndSchedule(ctx context.Context, requestID int64, status, comments string) error {
	url := fmt.Sprintf("%s/scheduler/%d/update_work_request_and_schedule", c.baseURL, requestID)
	body := map[string]string{"status": status, "comments": comments}
	return do(ctx, c.httpClient, http.MethodPut, url, body, nil)
}
