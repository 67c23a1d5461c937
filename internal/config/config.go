package config

// Config holds runtime configuration for the server.
type Config struct {
	Port        string
	CORSOrigins []string
	Statsapi    StatsapiConfig
	Reference   ReferenceConfig
	Logging     LoggingConfig
	Metrics     MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:        envOrDefault(envPort, defaultPort),
		CORSOrigins: listEnvOrDefault(envCORSOrigins, []string{defaultCORSOrigin}),
		Statsapi:    loadStatsapi(),
		Reference:   loadReference(),
		Logging:     loadLogging(),
		Metrics:     loadMetrics(),
	}
}
