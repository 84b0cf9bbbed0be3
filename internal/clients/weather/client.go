// Package weather is the client for the weather collaborator. The call is
// advisory: every failure maps to the silent WEATHER_FETCH_FAILED class and
// the caller degrades to an itinerary without a forecast.
package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"wanderwise-client/internal/common/config"
	"wanderwise-client/internal/common/errors"
	commonhttp "wanderwise-client/internal/common/http"
	"wanderwise-client/internal/common/logger"
	"wanderwise-client/internal/common/metrics"
	"wanderwise-client/internal/models"

	"github.com/redis/go-redis/v9"
)

const weatherPath = "/api/weather/"

type Client struct {
	baseURL    string
	httpClient *commonhttp.Client
	logger     logger.Logger
	cache      *redis.Client
	cacheTTL   time.Duration
}

func NewClient(cfg config.APIConfig, log logger.Logger) *Client {
	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: commonhttp.NewClient(config.GetDuration(cfg.Timeout)),
		logger:     log.WithFields(map[string]interface{}{"client": "weather"}),
	}
}

// WithCache enables the Redis-backed response cache. Weather for a given
// (destination, date) pair is stable on the TTL's timescale, so repeat
// lookups within a cycle or across sessions skip the backend. Cache errors
// never fail the fetch.
func (c *Client) WithCache(rdb *redis.Client, ttl time.Duration) *Client {
	c.cache = rdb
	c.cacheTTL = ttl
	return c
}

// Fetch issues the secondary weather call keyed by destination and date.
func (c *Client) Fetch(ctx context.Context, destination, date string) (*models.WeatherInfo, error) {
	cacheKey := "wx:" + destination + ":" + date

	if c.cache != nil {
		if val, err := c.cache.Get(ctx, cacheKey).Result(); err == nil {
			var info models.WeatherInfo
			if err := json.Unmarshal([]byte(val), &info); err == nil {
				metrics.WeatherCacheLookups.WithLabelValues(metrics.CacheHit).Inc()
				return &info, nil
			}
			metrics.WeatherCacheLookups.WithLabelValues(metrics.CacheError).Inc()
		} else if err == redis.Nil {
			metrics.WeatherCacheLookups.WithLabelValues(metrics.CacheMiss).Inc()
		} else {
			metrics.WeatherCacheLookups.WithLabelValues(metrics.CacheError).Inc()
			c.logger.Debug("weather cache lookup failed", map[string]interface{}{
				"key":   cacheKey,
				"error": err.Error(),
			})
		}
	}

	info, err := c.fetchRemote(ctx, destination, date)
	if err != nil {
		return nil, err
	}

	if c.cache != nil {
		if data, err := json.Marshal(info); err == nil {
			if err := c.cache.Set(ctx, cacheKey, data, c.cacheTTL).Err(); err != nil {
				c.logger.Debug("weather cache write failed", map[string]interface{}{
					"key":   cacheKey,
					"error": err.Error(),
				})
			}
		}
	}

	return info, nil
}

func (c *Client) fetchRemote(ctx context.Context, destination, date string) (*models.WeatherInfo, error) {
	endpoint := c.baseURL + weatherPath + url.PathEscape(destination)
	if date != "" {
		endpoint += "?date=" + url.QueryEscape(date)
	}

	req, err := http.NewRequest(http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, errors.NewWeatherFetchFailedError(err)
	}

	resp, err := c.httpClient.DoWithContext(ctx, req)
	if err != nil {
		return nil, errors.NewWeatherFetchFailedError(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.NewWeatherFetchFailedError(err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, errors.NewWeatherFetchFailedError(
			fmt.Errorf("unexpected status %d", resp.StatusCode))
	}

	var info models.WeatherInfo
	if err := json.Unmarshal(raw, &info); err != nil {
		return nil, errors.NewWeatherFetchFailedError(err)
	}

	return &info, nil
}
