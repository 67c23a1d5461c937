package server

import "time"

// writeTimeout stays above STATSAPI_HTTP_TIMEOUT so a slow team page can
// still be written.
const (
	readTimeout  = 10 * time.Second
	writeTimeout = 45 * time.Second
	idleTimeout  = 60 * time.Second
)

// shutdownTimeout remains a var for tests to override.
var shutdownTimeout = 10 * time.Second
