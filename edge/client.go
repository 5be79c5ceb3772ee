package edge

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/cbstream/cbstream/room"
)

// maxBodySize caps how much of an API answer is read.
const maxBodySize = 1 << 20

// TransportError reports a failed request or a non-success HTTP status.
type TransportError struct {
	Status  int // zero when no response was received
	Message string
	Err     error
}

func (e *TransportError) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("edge API error (status %d): %s", e.Status, e.Message)
	}
	return fmt.Sprintf("edge API request failed: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Client executes availability requests.
type Client struct {
	httpClient *http.Client
}

func NewClient(httpClient *http.Client) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	return &Client{httpClient: httpClient}
}

// Fetch sends spec exactly once. Transport failures and non-2xx statuses are
// *TransportError; a body that fails validation is ErrMalformedResponse.
func (c *Client) Fetch(ctx context.Context, spec *room.RequestSpec) (*Response, error) {
	req, err := spec.HTTPRequest(ctx)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &TransportError{Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, &TransportError{Status: resp.StatusCode, Message: "read body", Err: err}
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &TransportError{
			Status:  resp.StatusCode,
			Message: strings.TrimSpace(string(body)),
		}
	}

	return Decode(body)
}
