// Package egov provides an HTTP implementation of hourei.LawService backed
// by the e-Gov law API v2.
package egov

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/beevik/etree"
	"golang.org/x/time/rate"

	hourei "github.com/ToAmano/hourei-api"
)

// DefaultBaseURL is the production endpoint of the law API.
const DefaultBaseURL = "https://laws.e-gov.go.jp/api/2"

// DefaultTimeout is the default timeout for API requests.
const DefaultTimeout = 10 * time.Second

// Ensure Client implements hourei.LawService at compile time.
var _ hourei.LawService = (*Client)(nil)

// Client talks to the e-Gov law API v2 over HTTP.
type Client struct {
	client  *http.Client
	baseURL string
	timeout time.Duration
	limiter *rate.Limiter
}

// Option configures a Client.
type Option func(*Client)

// WithBaseURL overrides the API endpoint. Used by tests to point the
// client at an httptest server.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimSuffix(baseURL, "/")
	}
}

// WithTimeout sets the timeout for API requests.
// Defaults to DefaultTimeout (10s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.timeout = d
	}
}

// WithHTTPClient replaces the underlying HTTP client. The client's own
// timeout applies; WithTimeout is ignored when this option is used.
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.client = client
	}
}

// WithRateLimit throttles requests to rps requests per second with a burst
// of 1. The API is a shared government service; a polite client keeps a
// steady pace rather than bursting.
func WithRateLimit(rps float64) Option {
	return func(c *Client) {
		c.limiter = rate.NewLimiter(rate.Limit(rps), 1)
	}
}

// NewClient creates a new Client for the e-Gov law API.
func NewClient(opts ...Option) *Client {
	c := &Client{
		baseURL: DefaultBaseURL,
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}

	if c.client == nil {
		c.client = &http.Client{Timeout: c.timeout}
	}

	return c
}

// SearchLaws queries the law index by title. Entries missing their
// law_info or revision_info element are skipped.
func (c *Client) SearchLaws(ctx context.Context, title string) ([]*hourei.Law, error) {
	params := url.Values{
		"response_format": {"xml"},
		"law_title":       {title},
	}

	body, err := c.get(ctx, c.baseURL+"/laws?"+params.Encode())
	if err != nil {
		return nil, err
	}
	defer body.Close()

	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(body); err != nil {
		return nil, hourei.Errorf(hourei.EINVALID, "parsing law search response: %v", err)
	}

	root := doc.Root()
	if root == nil {
		return nil, hourei.Errorf(hourei.EINVALID, "empty law search response")
	}

	lawsEl := root.SelectElement("laws")
	if lawsEl == nil {
		return nil, hourei.Errorf(hourei.EINVALID, "law search response has no laws element")
	}

	laws := []*hourei.Law{}
	for _, el := range lawsEl.SelectElements("law") {
		info := el.SelectElement("law_info")
		rev := el.SelectElement("revision_info")
		if info == nil || rev == nil {
			continue
		}
		laws = append(laws, &hourei.Law{
			ID:    childText(info, "law_id"),
			Num:   childText(info, "law_num"),
			Title: childText(rev, "law_title"),
		})
	}

	return laws, nil
}

// ResolveLawID returns the ID of the law whose title matches exactly.
func (c *Client) ResolveLawID(ctx context.Context, title string) (string, error) {
	laws, err := c.SearchLaws(ctx, title)
	if err != nil {
		return "", err
	}

	for _, law := range laws {
		if law.Title == title {
			return law.ID, nil
		}
	}

	return "", hourei.Errorf(hourei.ENOTFOUND, "law titled %q not found", title)
}

// FetchLawData returns the statute's full XML by law ID.
func (c *Client) FetchLawData(ctx context.Context, lawID string) (string, error) {
	if lawID == "" {
		return "", hourei.Errorf(hourei.EINVALID, "law ID required")
	}

	body, err := c.get(ctx, c.baseURL+"/law_data/"+url.PathEscape(lawID)+"?response_format=xml")
	if err != nil {
		return "", err
	}
	defer body.Close()

	data, err := io.ReadAll(body)
	if err != nil {
		return "", err
	}

	return string(data), nil
}

// get performs a rate-limited GET and returns the response body for 200
// responses. The caller owns the returned body.
func (c *Client) get(ctx context.Context, targetURL string) (io.ReadCloser, error) {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return nil, err
		}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, err
	}

	switch {
	case resp.StatusCode == http.StatusOK:
		return resp.Body, nil
	case resp.StatusCode == http.StatusNotFound:
		resp.Body.Close()
		return nil, hourei.Errorf(hourei.ENOTFOUND, "law API returned HTTP 404 for %s", targetURL)
	default:
		resp.Body.Close()
		return nil, hourei.Errorf(hourei.EUNAVAILABLE, "law API returned HTTP %d for %s", resp.StatusCode, targetURL)
	}
}

// childText returns the trimmed text of a direct child element, or ""
// when the child is absent.
func childText(parent *etree.Element, tag string) string {
	el := parent.SelectElement(tag)
	if el == nil {
		return ""
	}
	return strings.TrimSpace(el.Text())
}
