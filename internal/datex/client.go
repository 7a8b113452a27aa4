package datex

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"golang.org/x/net/html"
)

// DefaultBaseURL is the DGT controlled zone publication index.
const DefaultBaseURL = "https://infocar.dgt.es/datex2/v3/dgt/zbe/ControledZonePublication/"

type HTTPDoer interface {
	Do(*http.Request) (*http.Response, error)
}

// Client reads the DATEX II controlled zone publication: an HTML
// index page linking one XML document per publication batch.
type Client struct {
	HTTP      HTTPDoer
	BaseURL   string
	UserAgent string
}

var DefaultClient = &Client{
	HTTP: defaultHTTP(),
}

func (c *Client) http() HTTPDoer {
	if c.HTTP == nil {
		return DefaultClient.HTTP
	}

	return c.HTTP
}

func (c *Client) baseURL() string {
	if c.BaseURL == "" {
		return DefaultBaseURL
	}

	return c.BaseURL
}

func (c *Client) get(ctx context.Context, url string) (*http.Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed creating GET request: %w", err)
	}

	if c.UserAgent != "" {
		req.Header.Set("User-Agent", c.UserAgent)
	}

	res, err := c.http().Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to execute GET request: %w", err)
	}

	if res.StatusCode != http.StatusOK {
		res.Body.Close()
		return nil, &StatusCodeError{StatusCode: res.StatusCode, URL: url}
	}

	return res, nil
}

// ListResources fetches the publication index page and returns the
// address of every linked XML document, in document order.
//
// Each address is the base address concatenated with the anchor href
// exactly as published. The index lists bare filenames relative to
// itself, so plain concatenation is the correct join there; an href
// that is already absolute produces an invalid composite address.
func (c *Client) ListResources(ctx context.Context) ([]string, error) {
	res, err := c.get(ctx, c.baseURL())
	if err != nil {
		return nil, fmt.Errorf("failed fetching publication index: %w", err)
	}
	defer res.Body.Close()

	doc, err := html.Parse(res.Body)
	if err != nil {
		return nil, fmt.Errorf("failed parsing publication index: %w", err)
	}

	var urls []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == "a" {
			if href, ok := anchorHref(n); ok && strings.HasSuffix(href, ".xml") {
				urls = append(urls, c.baseURL()+href)
			}
		}

		for child := n.FirstChild; child != nil; child = child.NextSibling {
			walk(child)
		}
	}
	walk(doc)

	return urls, nil
}

func anchorHref(n *html.Node) (string, bool) {
	for _, attr := range n.Attr {
		if attr.Key == "href" && attr.Val != "" {
			return attr.Val, true
		}
	}

	return "", false
}

// GetControlledZones fetches one publication document and returns the
// controlled zones it declares. A document without zones returns an
// empty slice and no error.
func (c *Client) GetControlledZones(ctx context.Context, url string) ([]ControlledZone, error) {
	res, err := c.get(ctx, url)
	if err != nil {
		return nil, fmt.Errorf("failed getting http response: %w", err)
	}
	defer res.Body.Close()

	doc, err := ParseDocument(res.Body)
	if err != nil {
		return nil, fmt.Errorf("failed parsing publication document: %w", err)
	}

	zones, err := parseControlledZones(doc)
	if err != nil {
		return nil, fmt.Errorf("failed parsing controlled zones: %w", err)
	}

	return zones, nil
}
