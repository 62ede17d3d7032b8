package server

import "time"

// Server settings
const (
	ReadHeaderTimeout = 5 * time.Second
	MaxRequestBytes   = 1 << 20
)

// Routes
const (
	RouteHealthz   = "/healthz"
	RouteReadyz    = "/readyz"
	RouteVersion   = "/version"
	RouteMetrics   = "/metrics"
	RouteAPIPrefix = "/api/v1"
	RouteTemplate  = "/templates/{id}"
	RouteBuffs     = "/buffs/{name}"
	RouteOverrides = "/overrides"
)

// Log messages for server lifecycle and request handling
const (
	LogMsgServerStarting   = "Server starting"
	LogMsgRequestStarted   = "Request started"
	LogMsgRequestCompleted = "Request completed"
)

// HTTP header names
const (
	HeaderRequestID      = "X-Request-ID"
	HeaderContentType    = "X-Content-Type-Options"
	HeaderFrameOptions   = "X-Frame-Options"
	HeaderXSSProtection  = "X-XSS-Protection"
	HeaderReferrerPolicy = "Referrer-Policy"
)

// Security header values
const (
	HeaderValueNoSniff              = "nosniff"
	HeaderValueSameOrigin           = "SAMEORIGIN"
	HeaderValueXSSBlock             = "1; mode=block"
	HeaderValueReferrerStrictOrigin = "strict-origin-when-cross-origin"
)

// QuietPaths are served without request logging
var QuietPaths = []string{
	RouteHealthz,
	RouteReadyz,
	RouteMetrics,
}
