// Package config defines environment variable keys for configuration.
package config

//nolint:gosec,revive // Environment variable keys are not credentials and do not need per-const comments.
const (
	// Calculator
	EnvGatePolicy        = "SGPA_GATE_POLICY"
	EnvDefaultDepartment = "SGPA_DEFAULT_DEPARTMENT"
	EnvDefaultSemester   = "SGPA_DEFAULT_SEMESTER"

	// Logging
	EnvLogLevel = "SGPA_LOG_LEVEL"

	// Metrics
	EnvMetricsTextfile      = "SGPA_METRICS_TEXTFILE"
	EnvMetricsFlushInterval = "SGPA_METRICS_FLUSH_INTERVAL"

	// Observability (Optional)
	EnvBetterStackToken    = "SGPA_BETTERSTACK_TOKEN"
	EnvBetterStackEndpoint = "SGPA_BETTERSTACK_ENDPOINT"
	EnvSentryToken         = "SGPA_SENTRY_TOKEN"
	EnvSentryHost          = "SGPA_SENTRY_HOST"
	EnvEnvironment         = "SGPA_ENVIRONMENT"
)
