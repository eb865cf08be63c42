// Package pypi queries the package index JSON API for the latest release
// of a package. Used by the check command to report stale version pins.
package pypi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"
)

const (
	defaultIndex      = "https://pypi.org"
	httpClientTimeout = 30 * time.Second
)

// Client fetches package release info from a PyPI-compatible index.
type Client struct {
	httpClient *http.Client
	userAgent  string
	indexURL   string
}

// NewClient creates a Client that reads the TYPETAB_INDEX_URL environment
// variable for the index base URL. If unset, it defaults to
// "https://pypi.org". The userAgent identifies the caller, typically
// "typetab/<version>".
func NewClient(userAgent string) *Client {
	index := strings.TrimSpace(os.Getenv("TYPETAB_INDEX_URL"))
	if index == "" {
		index = defaultIndex
	}
	return NewClientWithIndex(index, userAgent)
}

// NewClientWithIndex creates a Client against an explicit index base URL.
func NewClientWithIndex(index, userAgent string) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: httpClientTimeout},
		userAgent:  userAgent,
		indexURL:   strings.TrimRight(index, "/"),
	}
}

// releaseInfo is the subset of the index JSON response we consume.
type releaseInfo struct {
	Info struct {
		Version string `json:"version"`
	} `json:"info"`
}

// LatestVersion fetches the latest released version string for the given
// package name.
func (c *Client) LatestVersion(ctx context.Context, name string) (string, error) {
	if name == "" {
		return "", fmt.Errorf("empty package name")
	}

	infoURL := fmt.Sprintf("%s/pypi/%s/json", c.indexURL, url.PathEscape(name))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, infoURL, nil)
	if err != nil {
		return "", fmt.Errorf("building request for %s: %w", infoURL, err)
	}
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("fetching %s: %w", infoURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return "", fmt.Errorf("package %s not found on index", name)
	}
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status %d from %s", resp.StatusCode, infoURL)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("reading response body from %s: %w", infoURL, err)
	}

	var info releaseInfo
	if err := json.Unmarshal(body, &info); err != nil {
		return "", fmt.Errorf("parsing release info for %s: %w", name, err)
	}

	if info.Info.Version == "" {
		return "", fmt.Errorf("index response for %s has no version", name)
	}

	return info.Info.Version, nil
}
