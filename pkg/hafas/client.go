package hafas

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
)

// Client issues the fixed StationBoard request of a Profile. It never retries.
type Client struct {
	Endpoint string

	body       []byte
	httpClient *http.Client
}

func NewClient(profile Profile) (*Client, error) {
	body, err := json.Marshal(newStationBoardRequest(profile))
	if err != nil {
		return nil, fmt.Errorf("encode StationBoard request: %w", err)
	}

	return &Client{
		Endpoint:   profile.Endpoint,
		body:       body,
		httpClient: &http.Client{Timeout: profile.Timeout},
	}, nil
}

// Fetch returns the raw response body of one StationBoard request. Failures are *Error
// values of kind ErrTransport, ErrTimeout or ErrBadStatus.
func (c *Client) Fetch(ctx context.Context) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Endpoint, bytes.NewReader(c.body))
	if err != nil {
		return nil, &Error{Kind: ErrTransport, Message: err.Error(), Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, transportError(err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)

		return nil, &Error{
			Kind:       ErrBadStatus,
			StatusCode: resp.StatusCode,
			Message:    fmt.Sprintf("HTTP %d", resp.StatusCode),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, transportError(err)
	}

	return body, nil
}

func transportError(err error) *Error {
	var netErr net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
		return &Error{Kind: ErrTimeout, Message: "Request timeout", Err: err}
	}

	return &Error{Kind: ErrTransport, Message: err.Error(), Err: err}
}
