package upstream

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
)

// Result is the outcome of one upstream call, collapsed into the three cases
// the relay has to translate into an HTTP response.
type Result struct {
	Kind        Kind
	Status      int    // upstream status, set for Success and UpstreamError
	ContentType string // upstream content-type, set when a response arrived
	Body        []byte // full upstream body, set when a response arrived
	Err         error  // transport failure, set for TransportError only
}

// Kind discriminates the Result variants.
type Kind int

const (
	// Success means the upstream answered with a 2xx status.
	Success Kind = iota
	// UpstreamError means the upstream answered with a non-2xx status.
	UpstreamError
	// TransportError means no response was obtained at all.
	TransportError
)

// Client talks to the two external game-data APIs. It deliberately keeps the
// default http.Client timeouts (none); callers bound calls via context.
type Client struct {
	playerInfoBase string
	imageBase      string
	http           *http.Client
}

// New creates an upstream client for the given API base URLs.
func New(playerInfoBase, imageBase string) *Client {
	return &Client{
		playerInfoBase: playerInfoBase,
		imageBase:      imageBase,
		http:           &http.Client{},
	}
}

// FetchPlayerInfo calls the player-info API with the given uid and region.
// Both values are interpolated into the query string as-is, matching what
// the upstream expects for its opaque identifiers.
func (c *Client) FetchPlayerInfo(ctx context.Context, uid, region string) Result {
	u := fmt.Sprintf("%s/ff_info?uid=%s&region=%s", c.playerInfoBase, uid, region)
	return c.get(ctx, u)
}

// FetchIcon calls the icon API for a single icon file, returning the binary
// body and its content-type.
func (c *Client) FetchIcon(ctx context.Context, iconName string) Result {
	q := url.Values{"image": {iconName}}
	return c.get(ctx, c.imageBase+"?"+q.Encode())
}

func (c *Client) get(ctx context.Context, rawURL string) Result {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return Result{Kind: TransportError, Err: err}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return Result{Kind: TransportError, Err: err}
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Result{Kind: TransportError, Err: fmt.Errorf("read upstream body: %w", err)}
	}

	kind := Success
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		kind = UpstreamError
	}
	return Result{
		Kind:        kind,
		Status:      resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        body,
	}
}
