// Package client holds the typed HTTP clients services use to talk to each
// other. Calls are synchronous and blocking with no timeouts and no retries;
// a non-2xx answer is propagated verbatim as a downstream error.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"wfh-backend/pkg/apperr"
)

// envelope mirrors pkg/response.Body with the data left raw for the caller
// to decode.
type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

// do performs one JSON round trip. On a 2xx answer the data field is decoded
// into out (when out is non-nil); otherwise the downstream code and message
// are wrapped into an apperr.Downstream.
func do(ctx context.Context, httpClient *http.Client, method, url string, body interface{}, out interface{}) error {
	var reader *bytes.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return apperr.Unexpected(err)
		}
		reader = bytes.NewReader(encoded)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return apperr.Unexpected(err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := httpClient.Do(req)
	if err != nil {
		return apperr.Downstream(http.StatusInternalServerError, fmt.Sprintf("An error occurred while processing the request: %v", err))
	}
	defer resp.Body.Close()

	var env envelope
	if decodeErr := json.NewDecoder(resp.Body).Decode(&env); decodeErr != nil && resp.StatusCode < http.StatusMultipleChoices {
		return apperr.Unexpected(decodeErr)
	}

	if resp.StatusCode >= http.StatusMultipleChoices {
		message := env.Message
		if message == "" {
			message = "Unknown error"
		}
		return apperr.Downstream(resp.StatusCode, message)
	}

	if out != nil && env.Data != nil {
		if err := json.Unmarshal(env.Data, out); err != nil {
			return apperr.Unexpected(err)
		}
	}
	return nil
}
