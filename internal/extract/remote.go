package extract

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"time"
)

// RemoteProvider posts the raw file to a server-side extraction
// endpoint and uses a non-empty response body verbatim. Any network
// failure, non-2xx status or empty body makes the caller fall through
// to local extraction; nothing is surfaced to the user.
type RemoteProvider struct {
	endpoint            string
	handwritingEndpoint string
	client              *http.Client
}

func NewRemoteProvider(endpoint, handwritingEndpoint string, timeout time.Duration) *RemoteProvider {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &RemoteProvider{
		endpoint:            endpoint,
		handwritingEndpoint: handwritingEndpoint,
		client:              &http.Client{Timeout: timeout},
	}
}

func (p *RemoteProvider) Name() string { return "remote" }

func (p *RemoteProvider) Extract(ctx context.Context, req Request) (string, error) {
	url := p.endpoint
	if req.Enhanced && p.handwritingEndpoint != "" {
		url = p.handwritingEndpoint
	}
	if url == "" {
		return "", fmt.Errorf("remote extraction not configured")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(req.Data))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", req.MediaType)
	httpReq.Header.Set("X-File-Name", req.FileName)

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return "", fmt.Errorf("remote extraction status %d", resp.StatusCode)
	}
	body, err := io.ReadAll(io.LimitReader(resp.Body, 4<<20))
	if err != nil {
		return "", err
	}
	return string(body), nil
}
