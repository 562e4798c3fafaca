package advice

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"
)

const maxResponseBytes = 64 << 10

// HTTPAdvisor posts the request to a coach function that already speaks the
// Request/Advice contract.
type HTTPAdvisor struct {
	client *http.Client
	url    string
	token  string
}

// NewHTTPAdvisor constructs an HTTPAdvisor.
func NewHTTPAdvisor(endpoint, token string, timeout time.Duration) *HTTPAdvisor {
	return &HTTPAdvisor{
		client: &http.Client{Timeout: timeout},
		url:    strings.TrimRight(endpoint, "/"),
		token:  token,
	}
}

// Advise implements Advisor.
func (h *HTTPAdvisor) Advise(ctx context.Context, in Request) (*Advice, error) {
	body, err := json.Marshal(in)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, h.url, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if h.token != "" {
		req.Header.Set("Authorization", "Bearer "+h.token)
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &StatusError{Status: resp.StatusCode, Body: string(raw)}
	}
	return decodeAdvice(raw)
}
