package config

import "time"

// Background timings for the terminal front-end.
const (
	// MetricsFlush is the default interval between metrics textfile writes
	// while a session is running. A final write always happens on exit.
	MetricsFlush = 30 * time.Second

	// MinMetricsFlush keeps a misconfigured interval from turning the
	// flush loop into a busy loop.
	MinMetricsFlush = time.Second

	// SentryFlush bounds how long shutdown waits for buffered events.
	SentryFlush = 2 * time.Second
)
