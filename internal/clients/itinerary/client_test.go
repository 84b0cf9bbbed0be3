package itinerary

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wanderwise-client/internal/common/config"
	"wanderwise-client/internal/common/errors"
	"wanderwise-client/internal/common/logger"
	"wanderwise-client/internal/models"
)

// ==========================
// Test Helper Functions
// ==========================

func createTestClient(t *testing.T, baseURL string) *Client {
	client, err := NewClient(config.APIConfig{BaseURL: baseURL, Timeout: 5000}, logger.NewTestLogger(t))
	require.NoError(t, err)
	return client
}

func createTripRequest() *models.TripRequest {
	return &models.TripRequest{
		Destination:  "Tokyo",
		Budget:       3000,
		DurationDays: 7,
		StartDate:    "2025-09-10",
		Interests:    []string{"Food", "Culture"},
		TravelStyle:  "balanced",
	}
}

const validResponse = `{
	"id": "7b0f7f2a-4a3e-4e08-9f5b-0a9a39c1f0aa",
	"destination": "Tokyo",
	"budget": 3000,
	"duration_days": 7,
	"start_date": "2025-09-10",
	"interests": ["Food", "Culture"],
	"travel_style": "balanced",
	"itinerary": "Day 1: arrive in Shinjuku...",
	"recommendations": "Crafted for your interests in Food, Culture.",
	"estimated_costs": {"accommodation": 1200, "food": 900, "activities": 600, "transport": 300},
	"created_at": "2025-09-01T10:00:00Z"
}`

// ==========================
// Success Path
// ==========================

func TestClient_Generate_Success(t *testing.T) {
	var received map[string]interface{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/generate-itinerary", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(validResponse))
	}))
	defer server.Close()

	client := createTestClient(t, server.URL)
	result, err := client.Generate(context.Background(), createTripRequest())
	require.NoError(t, err)

	// The request carries the full coerced trip.
	assert.Equal(t, "Tokyo", received["destination"])
	assert.Equal(t, float64(3000), received["budget"])
	assert.Equal(t, float64(7), received["duration_days"])
	assert.Equal(t, "2025-09-10", received["start_date"])
	assert.Equal(t, []interface{}{"Food", "Culture"}, received["interests"])
	assert.Equal(t, "balanced", received["travel_style"])

	assert.Equal(t, "Tokyo", result.Destination)
	assert.Equal(t, 3000, result.Budget)
	assert.Equal(t, 7, result.DurationDays)
	assert.Contains(t, result.Itinerary, "Shinjuku")

	categories := result.EstimatedCosts.Categories()
	require.Len(t, categories, 4)
	assert.Equal(t, "accommodation", categories[0].Name)
	assert.Equal(t, 1200.0, categories[0].Amount)
	assert.Equal(t, "transport", categories[3].Name)
}

// ==========================
// Failure Modes
// ==========================

func TestClient_Generate_Failures(t *testing.T) {
	tests := []struct {
		name         string
		status       int
		body         string
		expectedCode errors.ErrorCode
	}{
		{
			name:         "server error",
			status:       http.StatusInternalServerError,
			body:         `{"detail": "Failed to generate itinerary"}`,
			expectedCode: errors.ErrCodeItineraryRequestFailed,
		},
		{
			name:         "not found",
			status:       http.StatusNotFound,
			body:         "not here",
			expectedCode: errors.ErrCodeItineraryRequestFailed,
		},
		{
			name:         "unparseable body",
			status:       http.StatusOK,
			body:         `{"destination": "Tok`,
			expectedCode: errors.ErrCodeItineraryResponseInvalid,
		},
		{
			name:         "missing itinerary narrative",
			status:       http.StatusOK,
			body:         `{"destination": "Tokyo", "budget": 3000, "duration_days": 7, "start_date": "2025-09-10", "recommendations": "x", "estimated_costs": {}}`,
			expectedCode: errors.ErrCodeItineraryResponseInvalid,
		},
		{
			name:         "non-numeric cost breakdown",
			status:       http.StatusOK,
			body:         `{"destination": "Tokyo", "budget": 3000, "duration_days": 7, "start_date": "2025-09-10", "itinerary": "x", "recommendations": "x", "estimated_costs": {"food": "cheap"}}`,
			expectedCode: errors.ErrCodeItineraryResponseInvalid,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := createTestClient(t, server.URL)
			result, err := client.Generate(context.Background(), createTripRequest())

			assert.Nil(t, result)
			require.Error(t, err)
			assert.Equal(t, tt.expectedCode, errors.CodeOf(err))
			assert.True(t, errors.IsPrimaryCallFailure(err))
			assert.True(t, errors.IsUserVisible(err))
		})
	}
}

func TestClient_Generate_NetworkFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close() // connection refused

	client := createTestClient(t, server.URL)
	result, err := client.Generate(context.Background(), createTripRequest())

	assert.Nil(t, result)
	require.Error(t, err)
	assert.Equal(t, errors.ErrCodeItineraryRequestFailed, errors.CodeOf(err))
}

func TestClient_Generate_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer server.Close()

	client := createTestClient(t, server.URL)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	result, err := client.Generate(ctx, createTripRequest())
	assert.Nil(t, result)
	assert.Error(t, err)
}
