package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Override pass metric names
const (
	MetricNameOverridePasses       = "override_passes_total"
	MetricNameOverrideEntries      = "override_entries_total"
	MetricNameOverrideBuffLists    = "override_buff_lists_replaced_total"
	MetricNameOverridePassDuration = "override_pass_duration_seconds"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Override pass metric help text
const (
	HelpTextOverridePasses       = "Total number of override passes by category and status"
	HelpTextOverrideEntries      = "Total number of configuration entries processed by outcome"
	HelpTextOverrideBuffLists    = "Total number of stimulator buff lists replaced"
	HelpTextOverridePassDuration = "Override pass duration in seconds"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod   = "method"
	LabelPath     = "path"
	LabelStatus   = "status"
	LabelCategory = "category"
	LabelOutcome  = "outcome"
)

// Label values
const (
	StatusSuccess = "success"
	StatusError   = "error"

	OutcomeApplied   = "applied"
	OutcomeMissed    = "missed"
	OutcomeUnmatched = "unmatched"

	// unmatchedRoute labels requests that did not hit a registered route
	unmatchedRoute = "unmatched"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds, from 1ms to 10s.
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// PassDurationBuckets covers passes from 100µs to 5s.
var PassDurationBuckets = []float64{.0001, .0005, .001, .005, .01, .05, .1, .5, 1, 5}
