package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"movie-browser/pkg/utils"

	"go.uber.org/zap"
	"golang.org/x/time/rate"
)

// Client is the HTTP implementation of MovieGateway against a TMDB-shaped
// API. Calls are rate limited client-side so a burst of profile views does
// not burn through the upstream quota.
type Client struct {
	apiKey  string
	baseURL string
	http    *http.Client
	limiter *rate.Limiter
	log     *zap.Logger
}

func NewClient(config utils.TMDBConfig, log *zap.Logger) *Client {
	rps := config.RPS
	if rps <= 0 {
		rps = 10
	}
	return &Client{
		apiKey:  config.APIKey,
		baseURL: config.BaseURL,
		http:    &http.Client{Timeout: 10 * time.Second},
		limiter: rate.NewLimiter(rate.Limit(rps), rps),
		log:     log.With(zap.String("component", "gateway")),
	}
}

func (c *Client) Popular(ctx context.Context, page int) (*MoviePage, error) {
	var out MoviePage
	if err := c.get(ctx, "/movie/popular", pageQuery(page), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) TopRated(ctx context.Context, page int) (*MoviePage, error) {
	var out MoviePage
	if err := c.get(ctx, "/movie/top_rated", pageQuery(page), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Details(ctx context.Context, movieID int64) (*MovieDetail, error) {
	var out MovieDetail
	if err := c.get(ctx, fmt.Sprintf("/movie/%d", movieID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Videos(ctx context.Context, movieID int64) ([]Video, error) {
	var out struct {
		Results []Video `json:"results"`
	}
	if err := c.get(ctx, fmt.Sprintf("/movie/%d/videos", movieID), nil, &out); err != nil {
		return nil, err
	}
	return out.Results, nil
}

func (c *Client) Recommendations(ctx context.Context, movieID int64) (*MoviePage, error) {
	var out MoviePage
	if err := c.get(ctx, fmt.Sprintf("/movie/%d/recommendations", movieID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Images(ctx context.Context, movieID int64) (*ImageSet, error) {
	var out ImageSet
	if err := c.get(ctx, fmt.Sprintf("/movie/%d/images", movieID), nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) Search(ctx context.Context, query string, page int) (*MoviePage, error) {
	q := pageQuery(page)
	q.Set("query", query)
	var out MoviePage
	if err := c.get(ctx, "/search/movie", q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// get performs one API call and decodes the JSON body into out.
func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("gateway rate limit: %w", err)
	}

	u, err := url.Parse(c.baseURL + path)
	if err != nil {
		return fmt.Errorf("gateway url %s: %w", path, err)
	}
	if query == nil {
		query = url.Values{}
	}
	query.Set("api_key", c.apiKey)
	u.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return fmt.Errorf("gateway request %s: %w", path, err)
	}

	start := time.Now()
	res, err := c.http.Do(req)
	if err != nil {
		c.log.Error("Gateway call failed", zap.String("path", path), zap.Error(err))
		return fmt.Errorf("gateway call %s: %w", path, err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		c.log.Warn("Gateway returned non-200",
			zap.String("path", path),
			zap.Int("status", res.StatusCode),
		)
		return fmt.Errorf("gateway call %s: status %d", path, res.StatusCode)
	}

	if err := json.NewDecoder(res.Body).Decode(out); err != nil {
		return fmt.Errorf("gateway decode %s: %w", path, err)
	}

	c.log.Debug("Gateway call",
		zap.String("path", path),
		zap.Duration("duration", time.Since(start)),
	)

	return nil
}

func pageQuery(page int) url.Values {
	q := url.Values{}
	if page > 0 {
		q.Set("page", fmt.Sprint(page))
	}
	return q
}
