package config

import "time"

const (
	envPort             = "PORT"
	envCORSOrigins      = "CORS_ALLOWED_ORIGINS"
	envStatsapiBaseURL  = "STATSAPI_BASE_URL"
	envStatsapiTimezone = "STATSAPI_TIMEZONE"
	envStatsapiTimeout  = "STATSAPI_HTTP_TIMEOUT"
	envStatsapiMaxConc  = "STATSAPI_MAX_CONCURRENCY"
	envStatsapiRPS      = "STATSAPI_REQUESTS_PER_SECOND"
	envStatsapiTrace    = "STATSAPI_TRACE_URLS"
	envStatsapiKeepKeys = "STATSAPI_KEEP_ORIGINAL_KEYS"
	envTeamsCSV         = "REFERENCE_TEAMS_CSV"
	envLeaguesCSV       = "REFERENCE_LEAGUES_CSV"
	envLogLevel         = "LOG_LEVEL"
	envLogFormat        = "LOG_FORMAT"
	envMetricsPort      = "METRICS_PORT"
	envMetricsOn        = "METRICS_ENABLED"
	envOtelEndpoint     = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService      = "OTEL_SERVICE_NAME"
	envOtelInsecure     = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort             = "4000"
	defaultCORSOrigin       = "*"
	defaultStatsapiBaseURL  = "https://statsapi.mlb.com/api/v1"
	defaultStatsapiTimezone = "America/New_York"
	// A team page fans out to nine requests; the roster hydrations are the slow ones.
	defaultStatsapiTimeout = 20 * Duration(time.Second)
	defaultLogLevel        = "info"
	defaultLogFormat       = "text"
	defaultMetricsPort     = "9090"
	defaultServiceName     = "mlb-stats-service"
)
