// internal/common/config/config.go
package config

// Config is the main application configuration struct.
type Config struct {
	App      AppConfig      `mapstructure:"app"`
	Services ServicesConfig `mapstructure:"services"`
	Cache    CacheConfig    `mapstructure:"cache"`
	Logging  LoggingConfig  `mapstructure:"logging"`
}

type AppConfig struct {
	Name        string `mapstructure:"name"`
	Version     string `mapstructure:"version"`
	Environment string `mapstructure:"environment"`
}

// ServicesConfig holds the two backend collaborators.
type ServicesConfig struct {
	Itinerary APIConfig `mapstructure:"itinerary"`
	Weather   APIConfig `mapstructure:"weather"`
}

type APIConfig struct {
	BaseURL string `mapstructure:"base_url"`
	Timeout int    `mapstructure:"timeout"` // milliseconds
}

// CacheConfig controls the optional Redis-backed weather cache.
type CacheConfig struct {
	Enabled           bool        `mapstructure:"enabled"`
	Redis             RedisConfig `mapstructure:"redis"`
	WeatherTTLMinutes int         `mapstructure:"weather_ttl_minutes"`
}

type RedisConfig struct {
	Address  string `mapstructure:"address"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	Output string `mapstructure:"output"`
}
