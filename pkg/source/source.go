// Package source fetches state datasets from the dashboard's data endpoint.
//
// Transient failures (network errors and 5xx responses) are retried with
// backoff; any other status fails immediately.
package source

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/matzehuels/statebars/pkg/buildinfo"
	"github.com/matzehuels/statebars/pkg/chart/data"
	"github.com/matzehuels/statebars/pkg/errors"
	"github.com/matzehuels/statebars/pkg/httputil"
	dataio "github.com/matzehuels/statebars/pkg/io"
)

const httpTimeout = 10 * time.Second

// Client fetches datasets over HTTP.
type Client struct {
	HTTP    *http.Client
	Policy  httputil.Policy
	Headers map[string]string
}

// NewClient returns a client with a 10s timeout and [httputil.DefaultPolicy].
func NewClient() *Client {
	return &Client{
		HTTP:   &http.Client{Timeout: httpTimeout},
		Policy: httputil.DefaultPolicy,
		Headers: map[string]string{
			"Accept":     "application/json",
			"User-Agent": "statebars/" + buildinfo.Version,
		},
	}
}

// IsRemote reports whether path names an HTTP(S) resource.
func IsRemote(path string) bool {
	return strings.HasPrefix(path, "http://") || strings.HasPrefix(path, "https://")
}

// Fetch downloads and decodes the dataset at url.
func (c *Client) Fetch(ctx context.Context, url string) (*data.Dataset, error) {
	var ds *data.Dataset
	err := httputil.Retry(ctx, c.Policy, func() error {
		body, err := c.get(ctx, url)
		if err != nil {
			return err
		}
		defer body.Close()
		ds, err = dataio.ReadJSON(body)
		return err
	})
	if err != nil {
		if ctx.Err() != nil {
			return nil, errors.Wrap(errors.ErrCodeCanceled, err, "fetch %s", url)
		}
		if errors.GetCode(err) != "" {
			return nil, errors.Wrap(errors.GetCode(err), err, "fetch %s", url)
		}
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "fetch %s", url)
	}
	return ds, nil
}

func (c *Client) get(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidInput, err, "request")
	}
	for k, v := range c.Headers {
		req.Header.Set(k, v)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, &httputil.RetryableError{Err: fmt.Errorf("network: %w", err)}
	}
	if err := checkStatus(resp.StatusCode); err != nil {
		resp.Body.Close()
		return nil, err
	}
	return resp.Body, nil
}

func checkStatus(code int) error {
	switch {
	case code == http.StatusOK:
		return nil
	case code == http.StatusNotFound:
		return errors.New(errors.ErrCodeNotFound, "dataset not found")
	case code >= 500:
		return &httputil.RetryableError{Err: fmt.Errorf("status %d", code)}
	default:
		return errors.New(errors.ErrCodeInvalidInput, "unexpected status %d", code)
	}
}
