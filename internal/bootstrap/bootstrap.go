// Package bootstrap implements the first-run remote configuration check. The
// endpoint returns an opaque string; when it parses as "token#link" the app
// routes to the content view, otherwise to the habit tracker. This decision
// never touches habit data.
package bootstrap

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/habitlab/habitlab/internal/constants"
)

// Route is the first-run routing decision.
type Route int

const (
	RouteMainApp Route = iota
	RouteContentView
)

type Client struct {
	baseURL string
	http    *http.Client
}

func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = constants.DefaultBootstrapURL
	}
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: constants.BootstrapTimeoutSeconds * time.Second},
	}
}

// Fetch performs the bootstrap request and returns the raw response body.
func (c *Client) Fetch(ctx context.Context) (string, error) {
	u, err := url.Parse(c.baseURL)
	if err != nil {
		return "", fmt.Errorf("invalid bootstrap URL: %w", err)
	}

	q := u.Query()
	q.Set("os", runtime.GOOS)
	q.Set("lng", language())
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return "", err
	}

	res, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("bootstrap request failed: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return "", fmt.Errorf("bootstrap request failed with status %d", res.StatusCode)
	}

	body, err := io.ReadAll(res.Body)
	if err != nil {
		return "", err
	}

	return string(body), nil
}

// Parse splits a bootstrap response into its token and link halves. ok is
// true only when the response contains a '#' with non-empty text on both
// sides; anything else routes to the main app.
func Parse(response string) (token, link string, ok bool) {
	if !strings.Contains(response, "#") {
		return "", "", false
	}
	parts := strings.SplitN(response, "#", 2)
	token = parts[0]
	link = parts[1]
	if token == "" || link == "" {
		return "", "", false
	}
	return token, link, true
}

func language() string {
	for _, env := range []string{"LC_ALL", "LC_MESSAGES", "LANG"} {
		if v, ok := lookupEnv(env); ok && v != "" {
			if i := strings.IndexAny(v, "_."); i > 0 {
				return v[:i]
			}
			return v
		}
	}
	return "en"
}

// stubbed in tests
var lookupEnv = os.LookupEnv
