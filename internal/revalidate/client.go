package revalidate

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"
)

// Client notifies a downstream revalidation endpoint that cached pages
// derived from the content are stale. The call is best-effort with no
// retry; callers fire it from a detached goroutine and never let its
// outcome affect a save result.
type Client struct {
	endpoint string
	secret   string
	http     *http.Client
}

func NewClient(endpoint, secret string) *Client {
	return &Client{
		endpoint: endpoint,
		secret:   secret,
		http:     &http.Client{Timeout: 10 * time.Second},
	}
}

type triggerRequest struct {
	Secret string `json:"secret"`
}

type triggerResponse struct {
	Revalidated bool `json:"revalidated"`
}

// Trigger posts the shared secret to the revalidation endpoint.
func (c *Client) Trigger(ctx context.Context) error {
	if c.endpoint == "" {
		return nil
	}

	body, err := json.Marshal(triggerRequest{Secret: c.secret})
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint, bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return fmt.Errorf("revalidate endpoint returned status %d", res.StatusCode)
	}

	var out triggerResponse
	if err := json.NewDecoder(res.Body).Decode(&out); err != nil {
		return err
	}
	if !out.Revalidated {
		logrus.Warn("revalidate endpoint accepted the request but did not revalidate")
	}

	return nil
}
