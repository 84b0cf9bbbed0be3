// cmd/trip-planner/main.go
package main

import (
	"context"
	"os"
	"strings"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"wanderwise-client/internal/clients/itinerary"
	"wanderwise-client/internal/clients/weather"
	"wanderwise-client/internal/common/config"
	"wanderwise-client/internal/common/logger"
	"wanderwise-client/internal/common/observability"
	"wanderwise-client/internal/session"
	"wanderwise-client/internal/tripform"
)

func main() {
	zapLog := logger.New("info", "console")
	defer zapLog.Sync()

	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting trip planner...")

	cfg, err := config.Load()
	if err != nil {
		zapLog.Fatal("config load failed", zap.Error(err))
	}

	obs := observability.New(cfg.App.Name)
	defer obs.Shutdown()

	itineraryClient, err := itinerary.NewClient(cfg.Services.Itinerary, log)
	if err != nil {
		zapLog.Fatal("itinerary client init failed", zap.Error(err))
	}

	weatherClient := weather.NewClient(cfg.Services.Weather, log)
	if cfg.Cache.Enabled {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Cache.Redis.Address,
			Password: cfg.Cache.Redis.Password,
			DB:       cfg.Cache.Redis.DB,
		})
		weatherClient = weatherClient.WithCache(rdb,
			config.GetDuration(cfg.Cache.WeatherTTLMinutes*60*1000))
		zapLog.Info("weather cache enabled", zap.String("redis", cfg.Cache.Redis.Address))
	}

	orch := session.New(session.Dependencies{
		Itinerary:      itineraryClient,
		Weather:        weatherClient,
		Logger:         log,
		Observability:  obs,
		WeatherTimeout: config.GetDuration(cfg.Services.Weather.Timeout),
	})

	if err := fillDraftFromEnv(orch.Form()); err != nil {
		zapLog.Fatal("draft setup failed", zap.Error(err))
	}

	ctx := context.Background()
	if err := orch.Submit(ctx); err != nil {
		zapLog.Fatal("submission failed", zap.Error(err))
	}

	orch.WaitWeather()

	snap := orch.Snapshot()
	zapLog.Info("itinerary ready",
		zap.String("destination", snap.Result.Destination),
		zap.Int("durationDays", snap.Result.DurationDays),
		zap.Float64("estimatedTotal", snap.Result.EstimatedCosts.Total()),
	)
	for _, cost := range snap.Result.EstimatedCosts.Categories() {
		zapLog.Info("estimated cost",
			zap.String("category", cost.Name),
			zap.Float64("amount", cost.Amount),
		)
	}
	if snap.Weather != nil {
		zapLog.Info("forecast",
			zap.String("description", snap.Weather.WeatherDescription),
			zap.String("temperature", snap.Weather.Temperature),
		)
	} else {
		zapLog.Info("forecast unavailable")
	}
}

// fillDraftFromEnv seeds the draft from TRIP_* environment variables. This is
// a wiring harness for one scripted session cycle; the core itself exposes no
// command-line surface.
func fillDraftFromEnv(form *tripform.Form) error {
	fields := map[string]string{
		tripform.FieldDestination:  envOr("TRIP_DESTINATION", "Tokyo"),
		tripform.FieldBudget:       envOr("TRIP_BUDGET", "3000"),
		tripform.FieldDurationDays: envOr("TRIP_DURATION_DAYS", "7"),
		tripform.FieldStartDate:    envOr("TRIP_START_DATE", "2025-09-10"),
	}
	for name, value := range fields {
		if err := form.SetField(name, value); err != nil {
			return err
		}
	}

	if style := os.Getenv("TRIP_TRAVEL_STYLE"); style != "" {
		if err := form.SetField(tripform.FieldTravelStyle, style); err != nil {
			return err
		}
	}

	for _, interest := range strings.Split(envOr("TRIP_INTERESTS", "Food,Culture"), ",") {
		if interest = strings.TrimSpace(interest); interest != "" {
			form.ToggleInterest(interest)
		}
	}

	return nil
}

func envOr(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
