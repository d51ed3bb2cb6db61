// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package mediawiki fetches raw wikitext through the MediaWiki action API.
package mediawiki

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"regexp"

	"github.com/davidhcefx/Wikipedia-Duplicated-Citations-Merger/internal/httputil"
	"github.com/davidhcefx/Wikipedia-Duplicated-Citations-Merger/pkg/types"
)

// wikiPageRe splits a canonical page URL like
// https://en.wikipedia.org/wiki/Go_(programming_language) into the site
// host part and the page title part.
var wikiPageRe = regexp.MustCompile(`^(.+)/wiki/(.+)$`)

// Client calls the action API of a MediaWiki site.
type Client struct {
	HTTPClient *http.Client
	Config     types.FetchConfig
}

// New returns a Client with an http.Client configured from cfg.
func New(cfg types.FetchConfig) *Client {
	return &Client{
		HTTPClient: &http.Client{Timeout: cfg.Timeout},
		Config:     cfg,
	}
}

// parseResponse mirrors the action=parse JSON envelope (formatversion 2).
type parseResponse struct {
	Parse struct {
		Title    string `json:"title"`
		Wikitext string `json:"wikitext"`
	} `json:"parse"`
	Error *struct {
		Code string `json:"code"`
		Info string `json:"info"`
	} `json:"error"`
}

// PageWikitext resolves a wiki page URL to its raw wikitext via
// action=parse&prop=wikitext. The URL must contain a /wiki/ page segment;
// anything else is rejected before any network traffic.
func (c *Client) PageWikitext(ctx context.Context, pageURL string) (string, error) {
	m := wikiPageRe.FindStringSubmatch(pageURL)
	if m == nil {
		return "", fmt.Errorf("invalid or unrecognized wiki URL: %q", pageURL)
	}
	host, page := m[1], m[2]
	if unescaped, err := url.PathUnescape(page); err == nil {
		page = unescaped
	}

	params := url.Values{
		"action":        {"parse"},
		"prop":          {"wikitext"},
		"format":        {"json"},
		"formatversion": {"2"},
		"page":          {page},
	}
	reqURL := host + "/w/api.php?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", c.Config.UserAgent)

	resp, err := httputil.DoWithRetry(ctx, c.HTTPClient, req, c.Config.MaxRetries)
	if err != nil {
		return "", fmt.Errorf("wiki API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("wiki API returned HTTP %d for %s", resp.StatusCode, page)
	}

	var pr parseResponse
	if err := json.NewDecoder(resp.Body).Decode(&pr); err != nil {
		return "", fmt.Errorf("parsing wiki API response: %w", err)
	}
	if pr.Error != nil {
		return "", fmt.Errorf("wiki API error %s: %s", pr.Error.Code, pr.Error.Info)
	}
	return pr.Parse.Wikitext, nil
}
