package activity

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/white/fluxx-sales/internal/models"
)

// HTTPSubmitter posts payloads to the activities endpoint of the API.
type HTTPSubmitter struct {
	Endpoint string // e.g. http://localhost:8080/api/v1/activities
	Token    string // bearer token, optional
	Client   *http.Client
}

// Submit sends payload as JSON. Any non-2xx answer is an error carrying the
// response text.
func (s *HTTPSubmitter) Submit(ctx context.Context, payload models.ActivityPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal activity: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.Endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if s.Token != "" {
		req.Header.Set("Authorization", "Bearer "+s.Token)
	}

	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to post activity: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		text, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("activity endpoint returned %d: %s", resp.StatusCode, strings.TrimSpace(string(text)))
	}
	return nil
}
