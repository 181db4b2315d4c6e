package client

import (
	"context"
	"fmt"
	"net/http"
)

// WorkRequest is the wire shape echoed by the work request service.
type WorkRequest struct {
	RequestID         int64  `json:"request_id"`
	StaffID           int64  `json:"staff_id"`
	RequestType       string `json:"request_type"`
	RequestDate       string `json:"request_date"`
	Reason            string `json:"reason"`
	Status            string `json:"status"`
	ApprovalManagerID *int64 `json:"approval_manager_id"`
	Comments          string `json:"comments"`
}

// SubmitWorkRequestPayload is the body for submit_work_request.
type SubmitWorkRequestPayload struct {
	StaffID     int64  `json:"staff_id"`
	RequestType string `json:"request_type"`
	RequestDate string `json:"request_date"`
	Reason      string `json:"reason"`
	Comments    string `json:"comments,omitempty"`
}

// WorkRequestClient talks to the work request service.
type WorkRequestClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewWorkRequestClient(baseURL string) *WorkRequestClient {
	return &WorkRequestClient{baseURL: baseURL, httpClient: http.DefaultClient}
}

func (c *WorkRequestClient) Submit(ctx context.Context, payload SubmitWorkRequestPayload) (*WorkRequest, error) {
	var request WorkRequest
	url := c.baseURL + "/work_request/submit_work_request"
	if err := do(ctx, c.httpClient, http.MethodPost, url, payload, &request); err != nil {
		return nil, err
	}
	return &request, nil
}

func (c *WorkRequestClient) UpdateStatus(ctx context.Context, requestID int64, status, comments string) (*WorkRequest, error) {
	var request WorkRequest
	url := fmt.Sprintf("%s/work_request/%d/update_status", c.baseURL, requestID)
	body := map[string]string{"status": status, "comments": comments}
	if err := do(ctx, c.httpClient, http.MethodPut, url, body, &request); err != nil {
		return nil, err
	}
	return &request, nil
}

func (c *WorkRequestClient) Delete(ctx context.Context, requestID int64) error {
	url := fmt.Sprintf("%s/work_request/%d", c.baseURL, requestID)
	return do(ctx, c.httpClient, http.MethodDelete, url, nil, nil)
}
