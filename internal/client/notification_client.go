package client

import (
	"context"
	"net/http"
)

// Notification is the wire shape echoed by the notification service.
type Notification struct {
	NotificationID int64  `json:"notification_id"`
	SenderID       int64  `json:"sender_id"`
	ReceiverID     int64  `json:"receiver_id"`
	RequestID      int64  `json:"request_id"`
	Message        string `json:"message"`
	IsRead         bool   `json:"is_read"`
}

// CreateNotificationPayload is the body for create_notification.
type CreateNotificationPayload struct {
	SenderID    int64  `json:"sender_id"`
	ReceiverID  int64  `json:"receiver_id"`
	RequestID   int64  `json:"request_id"`
	RequestType string `json:"request_type"`
	Status      string `json:"status"`
	RequestDate string `json:"request_date"`
	Exceed      bool   `json:"exceed,omitempty"`
}

// NotificationClient talks to the notification service.
type NotificationClient struct {
	baseURL    string
	httpClient *http.Client
}

func NewNotificationClient(baseURL string) *NotificationClient {
	return &NotificationClient{baseURL: baseURL, httpClient: http.DefaultClient}
}

func (c *NotificationClient) Create(ctx context.Context, payload CreateNotificationPayload) ([]Notification, error) {
	var notifications []Notification
	url := c.baseURL + "/notification/create_notification"
	if err := do(ctx, c.httpClient, http.MethodPost, url, payload, &notifications); err != nil {
		return nil, err
	}
	return notifications, nil
}
