// Package itinerary is the client for the itinerary-generation collaborator.
// Any non-success status or malformed body is a primary-call failure; no
// partial result is ever returned.
package itinerary

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"wanderwise-client/internal/common/config"
	"wanderwise-client/internal/common/errors"
	commonhttp "wanderwise-client/internal/common/http"
	"wanderwise-client/internal/common/logger"
	"wanderwise-client/internal/common/metrics"
	"wanderwise-client/internal/models"

	"github.com/xeipuuv/gojsonschema"
)

const generatePath = "/api/generate-itinerary"

type Client struct {
	baseURL    string
	httpClient *commonhttp.Client
	logger     logger.Logger
	schema     *gojsonschema.Schema
}

func NewClient(cfg config.APIConfig, log logger.Logger) (*Client, error) {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(resultSchema))
	if err != nil {
		return nil, fmt.Errorf("compile itinerary result schema: %w", err)
	}

	return &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		httpClient: commonhttp.NewClient(config.GetDuration(cfg.Timeout)),
		logger:     log.WithFields(map[string]interface{}{"client": "itinerary"}),
		schema:     schema,
	}, nil
}

// Generate issues the primary itinerary call with the full coerced request.
func (c *Client) Generate(ctx context.Context, trip *models.TripRequest) (*models.ItineraryResult, error) {
	body, err := json.Marshal(trip)
	if err != nil {
		return nil, errors.NewItineraryRequestFailedError(err)
	}

	req, err := http.NewRequest(http.MethodPost, c.baseURL+generatePath, bytes.NewReader(body))
	if err != nil {
		return nil, errors.NewItineraryRequestFailedError(err)
	}
	req.Header.Set("Content-Type", "application/json")

	c.logger.Info("requesting itinerary", map[string]interface{}{
		"destination":  trip.Destination,
		"durationDays": trip.DurationDays,
		"travelStyle":  trip.TravelStyle,
	})

	start := time.Now()
	resp, err := c.httpClient.DoWithContext(ctx, req)
	metrics.ItineraryRequestDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		return nil, errors.NewItineraryRequestFailedError(err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.NewItineraryRequestFailedError(err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, errors.NewItineraryRequestFailedError(
			fmt.Errorf("unexpected status %d: %s", resp.StatusCode, truncate(raw, 256)))
	}

	if err := c.validateBody(raw); err != nil {
		return nil, err
	}

	var result models.ItineraryResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, errors.NewItineraryResponseInvalidError(err.Error())
	}

	c.logger.Info("itinerary received", map[string]interface{}{
		"id":             result.ID,
		"destination":    result.Destination,
		"costCategories": result.EstimatedCosts.Len(),
	})

	return &result, nil
}

func (c *Client) validateBody(raw []byte) error {
	docResult, err := c.schema.Validate(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		return errors.NewItineraryResponseInvalidError(err.Error())
	}
	if !docResult.Valid() {
		msgs := make([]string, 0, len(docResult.Errors()))
		for _, desc := range docResult.Errors() {
			msgs = append(msgs, desc.String())
		}
		return errors.NewItineraryResponseInvalidError(strings.Join(msgs, "; "))
	}
	return nil
}

func truncate(raw []byte, limit int) string {
	if len(raw) <= limit {
		return string(raw)
	}
	return string(raw[:limit]) + "..."
}
