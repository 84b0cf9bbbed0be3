package models

import (
	"time"
)

// TravelStyle is the set of itinerary styles understood by the backend.
type TravelStyle string

const (
	StyleBudget    TravelStyle = "budget"
	StyleBalanced  TravelStyle = "balanced"
	StyleLuxury    TravelStyle = "luxury"
	StyleAdventure TravelStyle = "adventure"
	StyleCultural  TravelStyle = "cultural"

	DefaultTravelStyle = StyleBalanced
)

func (s TravelStyle) Valid() bool {
	switch s {
	case StyleBudget, StyleBalanced, StyleLuxury, StyleAdventure, StyleCultural:
		return true
	}
	return false
}

// TripRequest is the coerced, submission-ready trip request. Budget and
// DurationDays are integers here; the text-to-number boundary lives in the
// form package.
type TripRequest struct {
	Destination  string   `json:"destination"`
	Budget       int      `json:"budget"`
	DurationDays int      `json:"duration_days"`
	StartDate    string   `json:"start_date"`
	Interests    []string `json:"interests"`
	TravelStyle  string   `json:"travel_style"`
}

// ItineraryResult is the immutable primary-call result. The backend echoes
// the request fields and adds the generated narrative plus a server-minted
// id and creation timestamp.
type ItineraryResult struct {
	ID              string         `json:"id"`
	Destination     string         `json:"destination"`
	Budget          int            `json:"budget"`
	DurationDays    int            `json:"duration_days"`
	StartDate       string         `json:"start_date"`
	Interests       []string       `json:"interests"`
	TravelStyle     string         `json:"travel_style"`
	Itinerary       string         `json:"itinerary"`
	Recommendations string         `json:"recommendations"`
	EstimatedCosts  EstimatedCosts `json:"estimated_costs"`
	CreatedAt       time.Time      `json:"created_at"`
}

// WeatherInfo is the immutable, optional secondary-call result.
type WeatherInfo struct {
	Destination        string `json:"destination"`
	Date               string `json:"date"`
	WeatherDescription string `json:"weather_description"`
	Temperature        string `json:"temperature"`
	Recommendations    string `json:"recommendations"`
}
