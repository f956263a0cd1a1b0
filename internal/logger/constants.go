package logger

// ==================== Levels and Formats ====================

const (
	LogLevelDebug   = "debug"
	LogLevelInfo    = "info"
	LogLevelWarn    = "warn"
	LogLevelWarning = "warning"
	LogLevelError   = "error"
)

const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)

// ==================== Defaults ====================

const (
	DefaultServiceName = "arktools"
	DefaultVersion     = "dev"
	DefaultEnvironment = "dev"
)

// ==================== Attribute Keys ====================

// Keys attached to every record
const (
	AttrKeyService     = "service"
	AttrKeyVersion     = "version"
	AttrKeyEnvironment = "environment"
	AttrKeyBatchID     = "batch_id"
)

// Keys used by batch commands
const (
	AttrKeyCommand = "command"
	AttrKeyInput   = "input"
	AttrKeyOutput  = "output"
	AttrKeyElapsed = "elapsed"
)

// ==================== Messages ====================

const (
	LogMsgBatchStarted  = "Batch started"
	LogMsgBatchFinished = "Batch finished"
)
