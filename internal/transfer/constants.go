package transfer

import "time"

// Cache defaults
const (
	DefaultCacheSize = 128
	DefaultCacheTTL  = 10 * time.Minute
)

// NoPosition marks a failure that concerns a whole inventory rather than one record
const NoPosition = -1

// Error formats
const (
	ErrFmtItemFailure      = "item %d (%s): %v"
	ErrFmtInventoryFailure = "inventory %d: %v"
	ErrFmtBatchAborted     = "batch aborted at inventory %d item %d: %w"
	ErrFmtClusterAborted   = "batch aborted at item %d: %w"
	ErrFmtInventoryID      = "%w: %d"
)

// Log messages
const (
	LogMsgItemRejected      = "Item rejected"
	LogMsgInventoryMissing  = "Target inventory not found"
	LogMsgBatchAborted      = "Batch aborted"
	LogMsgClusterUploaded   = "Cluster upload converted"
	LogMsgInventoriesAdded  = "Items added to inventories"
	LogMsgClusterImported   = "Cluster entries imported"
	LogMsgInventoryExported = "Inventory exported"
)
