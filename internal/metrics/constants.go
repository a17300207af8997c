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

// Pipeline metric names
const (
	MetricNameParsesTotal      = "parses_total"
	MetricNameParseRowsSkipped = "parse_rows_skipped_total"
	MetricNameRecordOps        = "record_operations_total"
	MetricNameDocumentsTotal   = "documents_total"
	MetricNameDocumentBytes    = "document_bytes"
	MetricNameSessionsActive   = "sessions_active"
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

// Pipeline metric help text
const (
	HelpTextParsesTotal      = "Total number of paste parse attempts"
	HelpTextParseRowsSkipped = "Total number of data rows skipped during parsing"
	HelpTextRecordOps        = "Total number of record operations on sessions"
	HelpTextDocumentsTotal   = "Total number of printer documents encoded"
	HelpTextDocumentBytes    = "Size of encoded printer documents in bytes"
	HelpTextSessionsActive   = "Current number of live sessions"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelSchema  = "schema"
	LabelOutcome = "outcome"
	LabelOp      = "op"
	LabelProfile = "profile"
)

// Outcome label values for MetricNameParsesTotal
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// Op label values for MetricNameRecordOps
const (
	OpAdd    = "add"
	OpUpdate = "update"
	OpRemove = "remove"
	OpClear  = "clear"
)

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds. These buckets range from 1ms to 10s to capture various latency
// patterns: fast (1-10ms), normal (10-100ms), slow (100ms-1s), very slow (1-10s)
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// DocumentBytesBuckets covers documents from a single residual block
// (~200 bytes) up to the largest batches a session can hold.
var DocumentBytesBuckets = []float64{256, 1024, 4096, 16384, 65536, 262144, 1048576, 4194304}
