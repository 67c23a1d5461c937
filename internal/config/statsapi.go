package config

import "time"

// StatsapiConfig controls how we talk to the MLB Stats API.
type StatsapiConfig struct {
	BaseURL           string
	Timezone          string
	HTTPTimeout       time.Duration
	MaxConcurrency    int     // 0 means every request of a bundle runs at once
	RequestsPerSecond float64 // 0 disables client-side pacing
	TraceURLs         bool
	KeepOriginalKeys  bool
}

// ReferenceConfig points at optional CSV overrides of the built-in tables.
type ReferenceConfig struct {
	TeamsCSV   string
	LeaguesCSV string
}

// LoggingConfig controls the process logger.
type LoggingConfig struct {
	Level  string
	Format string
}

func loadStatsapi() StatsapiConfig {
	return StatsapiConfig{
		BaseURL:           envOrDefault(envStatsapiBaseURL, defaultStatsapiBaseURL),
		Timezone:          envOrDefault(envStatsapiTimezone, defaultStatsapiTimezone),
		HTTPTimeout:       durationEnvOrDefault(envStatsapiTimeout, defaultStatsapiTimeout),
		MaxConcurrency:    intEnvOrDefault(envStatsapiMaxConc, 0),
		RequestsPerSecond: floatEnvOrDefault(envStatsapiRPS, 0),
		TraceURLs:         boolEnvOrDefault(envStatsapiTrace, false),
		KeepOriginalKeys:  boolEnvOrDefault(envStatsapiKeepKeys, false),
	}
}

func loadReference() ReferenceConfig {
	return ReferenceConfig{
		TeamsCSV:   envOrDefault(envTeamsCSV, ""),
		LeaguesCSV: envOrDefault(envLeaguesCSV, ""),
	}
}

func loadLogging() LoggingConfig {
	return LoggingConfig{
		Level:  envOrDefault(envLogLevel, defaultLogLevel),
		Format: envOrDefault(envLogFormat, defaultLogFormat),
	}
}
