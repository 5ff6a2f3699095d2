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

// Business metric names
const (
	MetricNameEnchantsPerformed = "enchants_performed_total"
	MetricNameEnchantsApplied   = "enchants_applied_per_run"
	MetricNameCandidatePoolSize = "enchant_candidate_pool_size"
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

// Business metric help text
const (
	HelpTextEnchantsPerformed = "Total number of enchanting runs performed"
	HelpTextEnchantsApplied   = "Number of enchantments applied per run"
	HelpTextCandidatePoolSize = "Size of the candidate pool generated per request"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod   = "method"
	LabelPath     = "path"
	LabelStatus   = "status"
	LabelMaterial = "material"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds. These buckets range from 1ms to 10s to capture various latency
// patterns: fast (1-10ms), normal (10-100ms), slow (100ms-1s), very slow (1-10s)
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// PickCountBuckets covers how many enchantments a single run applies. Runs
// past a handful of picks are vanishingly rare at sane level budgets.
var PickCountBuckets = []float64{0, 1, 2, 3, 4, 5, 6, 8, 10}

// PoolSizeBuckets covers candidate pool sizes; the full default catalog tops
// out under forty records.
var PoolSizeBuckets = []float64{0, 1, 2, 4, 8, 12, 16, 24, 32, 40}
