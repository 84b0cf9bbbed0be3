// Package session drives the two-call sequence and the session state machine:
// Drafting -> Submitting -> Displaying, with reset back to Drafting. The
// weather call is decoupled from the primary call's success/failure contract;
// the session degrades to "itinerary without forecast" on a secondary outage.
package session

import (
	"context"
	"sync"
	"time"

	"wanderwise-client/internal/common/errors"
	"wanderwise-client/internal/common/logger"
	"wanderwise-client/internal/common/metrics"
	"wanderwise-client/internal/common/observability"
	"wanderwise-client/internal/models"
	"wanderwise-client/internal/tripform"

	"github.com/google/uuid"
)

// State is the session lifecycle position. Exactly one holds at a time.
type State int

const (
	Drafting State = iota
	Submitting
	Displaying
)

func (s State) String() string {
	switch s {
	case Drafting:
		return "drafting"
	case Submitting:
		return "submitting"
	case Displaying:
		return "displaying"
	}
	return "unknown"
}

// ItineraryService is the primary, authoritative backend call.
type ItineraryService interface {
	Generate(ctx context.Context, trip *models.TripRequest) (*models.ItineraryResult, error)
}

// WeatherService is the secondary, advisory backend call.
type WeatherService interface {
	Fetch(ctx context.Context, destination, date string) (*models.WeatherInfo, error)
}

type Dependencies struct {
	Itinerary     ItineraryService
	Weather       WeatherService
	Logger        logger.Logger
	Observability *observability.Observability
	// WeatherTimeout bounds the detached secondary call. Defaults to 10s.
	WeatherTimeout time.Duration
}

// Snapshot is a point-in-time view of the session for rendering. Weather is
// nil until the secondary call lands, and stays nil if it never does.
type Snapshot struct {
	State   State
	Result  *models.ItineraryResult
	Weather *models.WeatherInfo
}

// Orchestrator owns the single SessionState. There is one session per
// client; the mutex only serializes the detached weather attach against
// foreground transitions.
type Orchestrator struct {
	mu      sync.Mutex
	form    *tripform.Form
	state   State
	result  *models.ItineraryResult
	weather *models.WeatherInfo
	cycleID string

	itinerary      ItineraryService
	weatherSvc     WeatherService
	logger         logger.Logger
	obs            *observability.Observability
	weatherTimeout time.Duration

	wg sync.WaitGroup
}

func New(deps Dependencies) *Orchestrator {
	timeout := deps.WeatherTimeout
	if timeout == 0 {
		timeout = 10 * time.Second
	}
	return &Orchestrator{
		form:           tripform.New(),
		state:          Drafting,
		itinerary:      deps.Itinerary,
		weatherSvc:     deps.Weather,
		logger:         deps.Logger.WithFields(map[string]interface{}{"component": "session"}),
		obs:            deps.Observability,
		weatherTimeout: timeout,
	}
}

// Form returns the mutable draft owned by this session.
func (o *Orchestrator) Form() *tripform.Form {
	return o.form
}

func (o *Orchestrator) State() State {
	o.mu.Lock()
	defer o.mu.Unlock()
	return o.state
}

func (o *Orchestrator) Snapshot() Snapshot {
	o.mu.Lock()
	defer o.mu.Unlock()
	return Snapshot{State: o.state, Result: o.result, Weather: o.weather}
}

// Submit validates the draft and, on success, issues the primary itinerary
// call. A validation failure short-circuits with zero network activity and
// the session stays Drafting. A primary failure reverts to Drafting with the
// draft preserved. On primary success the session transitions to Displaying
// immediately and the weather fetch is issued detached; it never delays or
// reverts the transition.
func (o *Orchestrator) Submit(ctx context.Context) error {
	o.mu.Lock()
	switch o.state {
	case Submitting:
		o.mu.Unlock()
		metrics.TripSubmissions.WithLabelValues(metrics.OutcomeRejected).Inc()
		return errors.NewSubmitInProgressError()
	case Displaying:
		o.mu.Unlock()
		metrics.TripSubmissions.WithLabelValues(metrics.OutcomeRejected).Inc()
		return errors.NewSubmitNotAllowedError(Displaying.String())
	}

	payload, err := o.form.ToRequestPayload()
	if err != nil {
		o.mu.Unlock()
		metrics.TripSubmissions.WithLabelValues(metrics.OutcomeValidationFailed).Inc()
		o.logger.Warn("submission blocked by validation", map[string]interface{}{
			"fields": errors.ValidationFields(err),
		})
		return err
	}

	o.state = Submitting
	o.mu.Unlock()

	start := time.Now()
	result, genErr := o.itinerary.Generate(ctx, payload)
	if o.obs != nil {
		o.obs.RecordCallDuration(ctx, "itinerary", time.Since(start))
	}

	o.mu.Lock()
	defer o.mu.Unlock()

	if genErr != nil {
		// Back to Drafting; the user's entered values stay intact.
		o.state = Drafting
		metrics.TripSubmissions.WithLabelValues(metrics.OutcomePrimaryFailed).Inc()
		if o.obs != nil {
			o.obs.RecordCycle(ctx, "primary_failed")
		}
		o.logger.WithError(genErr).Error("itinerary request failed", map[string]interface{}{
			"destination": payload.Destination,
		})
		return genErr
	}

	o.result = result
	o.weather = nil
	o.state = Displaying
	o.cycleID = uuid.NewString()
	metrics.TripSubmissions.WithLabelValues(metrics.OutcomeAccepted).Inc()
	if o.obs != nil {
		o.obs.RecordCycle(ctx, "displayed")
	}

	o.logger.Info("itinerary displayed", map[string]interface{}{
		"cycleId":     o.cycleID,
		"destination": result.Destination,
	})

	o.wg.Add(1)
	go o.fetchWeather(o.cycleID, payload.Destination, payload.StartDate)

	return nil
}

func (o *Orchestrator) fetchWeather(cycleID, destination, date string) {
	defer o.wg.Done()

	ctx, cancel := context.WithTimeout(context.Background(), o.weatherTimeout)
	defer cancel()

	info, err := o.weatherSvc.Fetch(ctx, destination, date)
	if err != nil {
		// Advisory call: logged only, never surfaced, never retried.
		metrics.WeatherFetches.WithLabelValues(metrics.OutcomeFailed).Inc()
		o.logger.WithError(err).Warn("weather fetch failed, continuing without forecast", map[string]interface{}{
			"cycleId":     cycleID,
			"destination": destination,
		})
		return
	}

	o.attachWeather(cycleID, info)
}

// attachWeather applies a secondary result to the Displaying state it was
// issued for. A response arriving after reset belongs to a dead cycle and
// must not leak into a newer one.
func (o *Orchestrator) attachWeather(cycleID string, info *models.WeatherInfo) {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.state != Displaying || o.cycleID != cycleID {
		metrics.WeatherFetches.WithLabelValues(metrics.OutcomeStale).Inc()
		o.logger.Debug("discarding stale weather response", map[string]interface{}{
			"cycleId": cycleID,
		})
		return
	}

	o.weather = info
	metrics.WeatherFetches.WithLabelValues(metrics.OutcomeSuccess).Inc()
	o.logger.Info("weather attached", map[string]interface{}{
		"cycleId":     cycleID,
		"destination": info.Destination,
	})
}

// Reset returns the session to an empty Drafting state. Only valid from
// Displaying.
func (o *Orchestrator) Reset() error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.state != Displaying {
		return errors.NewResetNotAllowedError(o.state.String())
	}

	o.result = nil
	o.weather = nil
	o.cycleID = ""
	o.form.Reset()
	o.state = Drafting

	o.logger.Info("session reset", nil)
	return nil
}

// WaitWeather blocks until no secondary fetch is in flight. Rendering code
// does not need this; it exists for orderly shutdown and tests.
func (o *Orchestrator) WaitWeather() {
	o.wg.Wait()
}
