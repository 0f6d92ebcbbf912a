package mirror

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/ledgerscope/explorer/internal/app"
)

var _ app.MirrorService = (*Client)(nil)

const apiPrefix = "/api/v1"

type Client struct {
	*app.MirrorConfig

	base    *url.URL
	limiter *rate.Limiter
}

func NewClient(cfg *app.MirrorConfig) (*Client, error) {
	base, err := url.Parse(strings.TrimSuffix(cfg.URL, "/"))
	if err != nil {
		return nil, errors.Wrapf(err, "parse mirror url '%s'", cfg.URL)
	}
	if base.Scheme == "" || base.Host == "" {
		return nil, errors.Errorf("wrong mirror url '%s'", cfg.URL)
	}

	c := &Client{MirrorConfig: cfg, base: base}
	if c.HTTPClient == nil {
		c.HTTPClient = &http.Client{Timeout: 10 * time.Second}
	}
	if c.RateLimit > 0 {
		burst := c.Burst
		if burst < 1 {
			burst = 1
		}
		c.limiter = rate.NewLimiter(c.RateLimit, burst)
	}

	return c, nil
}

// resolve joins an already escaped path to the base url.
func (c *Client) resolve(path string, query url.Values) string {
	u := *c.base
	if !strings.HasPrefix(path, apiPrefix) {
		path = apiPrefix + path
	}
	escaped := u.EscapedPath() + path
	if unescaped, err := url.PathUnescape(escaped); err == nil {
		u.Path, u.RawPath = unescaped, escaped
	} else {
		u.Path += path
	}
	if len(query) > 0 {
		u.RawQuery = query.Encode()
	}
	return u.String()
}

// Get requests path relative to /api/v1 with the given query and decodes json into out.
func (c *Client) Get(ctx context.Context, path string, query url.Values, out any) error {
	return c.do(ctx, http.MethodGet, c.resolve(path, query), nil, out)
}

// GetNext follows links.next of a paged response.
// The link is relative to the mirror node root, e.g. "/api/v1/transactions?limit=25&timestamp=lt:1.2".
func (c *Client) GetNext(ctx context.Context, next string, out any) error {
	ref, err := url.Parse(next)
	if err != nil {
		return errors.Wrapf(err, "parse next link '%s'", next)
	}
	return c.do(ctx, http.MethodGet, c.base.ResolveReference(ref).String(), nil, out)
}

func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	raw, err := json.Marshal(body)
	if err != nil {
		return errors.Wrap(err, "marshal request body")
	}
	return c.do(ctx, http.MethodPost, c.resolve(path, nil), raw, out)
}

// FetchURL gets json from an absolute url outside of the mirror node, e.g. an IPFS gateway.
func (c *Client) FetchURL(ctx context.Context, rawURL string, out any) error {
	return c.do(ctx, http.MethodGet, rawURL, nil, out)
}

func (c *Client) do(ctx context.Context, method, u string, body []byte, out any) error {
	defer app.TimeTrack(time.Now(), "%s %s", method, u)

	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return errors.Wrap(err, "rate limit wait")
		}
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, u, reader)
	if err != nil {
		return errors.Wrap(err, "creating request")
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.HTTPClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "%s %s", method, u)
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return errors.Wrap(err, "read response body")
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		var er errorResponse
		_ = json.Unmarshal(raw, &er)
		log.Debug().Str("method", method).Str("url", u).Int("status", res.StatusCode).Msg("mirror node error")
		return &Error{Status: res.StatusCode, URL: u, Message: er.message()}
	}

	if out == nil {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return errors.Wrapf(err, "decode %s response", u)
	}

	return nil
}
