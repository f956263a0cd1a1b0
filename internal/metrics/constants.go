package metrics

// ============================================================================
// Metric Names
// ============================================================================

// Conversion metric names
const (
	MetricNameItemsConverted = "arktools_items_converted_total"
	MetricNameItemFailures   = "arktools_item_failures_total"
)

// Batch metric names
const (
	MetricNameBatchDuration   = "arktools_batch_duration_seconds"
	MetricNameBatchesInFlight = "arktools_batches_in_flight"
	MetricNameFilesProcessed  = "arktools_files_processed_total"
)

// Pool cache metric names
const (
	MetricNamePoolCacheHits   = "arktools_pool_cache_hits_total"
	MetricNamePoolCacheMisses = "arktools_pool_cache_misses_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

const (
	HelpTextItemsConverted  = "Items converted, by direction and outcome"
	HelpTextItemFailures    = "Items rejected, by reason"
	HelpTextBatchDuration   = "Batch duration in seconds, by command"
	HelpTextBatchesInFlight = "Batches currently being converted"
	HelpTextFilesProcessed  = "Input files processed, by command and outcome"
	HelpTextPoolCacheHits   = "Inventory id set lookups served from cache"
	HelpTextPoolCacheMisses = "Inventory id set lookups that rebuilt the set"
)

// ============================================================================
// Labels
// ============================================================================

const (
	LabelDirection = "direction"
	LabelOutcome   = "outcome"
	LabelReason    = "reason"
	LabelCommand   = "command"
)

// Direction label values
const (
	DirectionJSONToCluster = "json_to_cluster"
	DirectionJSONToLive    = "json_to_live"
	DirectionClusterToJSON = "cluster_to_json"
	DirectionLiveToJSON    = "live_to_json"
)

// Outcome label values
const (
	OutcomeOK     = "ok"
	OutcomeFailed = "failed"
)

// Reason label values
const (
	ReasonMissingField        = "missing_field"
	ReasonUnresolvedBlueprint = "unresolved_blueprint"
	ReasonExhaustedNames      = "exhausted_names"
	ReasonExhaustedIDs        = "exhausted_ids"
	ReasonInventoryNotFound   = "inventory_not_found"
	ReasonOther               = "other"
)

// BatchLatencyBuckets spans single-item batches up to whole-save rewrites
var BatchLatencyBuckets = []float64{.001, .005, .01, .05, .1, .5, 1, 5, 30}

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgMetricsRecorded = "Metrics recorded"
	LogMsgMetricsWritten  = "Metrics written"
	ErrMsgWriteTextfile   = "failed to write metrics file %s: %w"
)
