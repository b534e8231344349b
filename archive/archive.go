package archive

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/ONSdigital/dp-healthcheck/healthcheck"
	"github.com/ONSdigital/log.go/v2/log"
)

// HTTPClient is the subset of an HTTP client the archive client needs.
// dp-net's Clienter satisfies it.
type HTTPClient interface {
	Get(ctx context.Context, url string) (*http.Response, error)
	Head(ctx context.Context, url string) (*http.Response, error)
}

// Client reads asset files from a remote HTTP(S) archive. It implements
// the fetch engine's Source contract.
type Client struct {
	baseURL string
	cli     HTTPClient
}

// NewClient returns an archive client for baseURL.
func NewClient(baseURL string, cli HTTPClient) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		cli:     cli,
	}
}

// Size returns the Content-Length advertised for the file at href, or a
// negative value when the archive does not advertise one.
func (c *Client) Size(ctx context.Context, href string) (int64, error) {
	resp, err := c.cli.Head(ctx, c.resolve(href))
	if err != nil {
		return -1, err
	}
	defer drain(ctx, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return -1, fmt.Errorf("archive returned status %d for HEAD %s", resp.StatusCode, href)
	}
	return resp.ContentLength, nil
}

// Open streams the file at href. The caller owns the returned body.
func (c *Client) Open(ctx context.Context, href string) (io.ReadCloser, int64, error) {
	resp, err := c.cli.Get(ctx, c.resolve(href))
	if err != nil {
		return nil, -1, err
	}

	if resp.StatusCode != http.StatusOK {
		drain(ctx, resp.Body)
		return nil, -1, fmt.Errorf("archive returned status %d for GET %s", resp.StatusCode, href)
	}
	return resp.Body, resp.ContentLength, nil
}

// Checker probes the archive base URL for the healthcheck library.
func (c *Client) Checker(ctx context.Context, state *healthcheck.CheckState) error {
	resp, err := c.cli.Head(ctx, c.baseURL)
	if err != nil {
		return state.Update(healthcheck.StatusCritical, err.Error(), 0)
	}
	defer drain(ctx, resp.Body)

	if resp.StatusCode >= http.StatusInternalServerError {
		return state.Update(healthcheck.StatusCritical, "archive is unavailable", resp.StatusCode)
	}
	return state.Update(healthcheck.StatusOK, "archive is reachable", resp.StatusCode)
}

// resolve turns a relative href into an absolute archive URL. Absolute
// hrefs are used as-is.
func (c *Client) resolve(href string) string {
	if strings.Contains(href, "://") {
		return href
	}
	return c.baseURL + "/" + strings.TrimLeft(href, "/")
}

func drain(ctx context.Context, body io.ReadCloser) {
	if body == nil {
		return
	}
	if _, err := io.Copy(io.Discard, body); err != nil {
		log.Warn(ctx, "error draining response body", log.Data{"error": err.Error()})
	}
	if err := body.Close(); err != nil {
		log.Warn(ctx, "error closing response body", log.Data{"error": err.Error()})
	}
}
