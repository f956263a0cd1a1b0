package modfile

// SchemaName is the name the embedded schema is registered under
const SchemaName = "modfile.schema.json"

// CurrentVersion is the only supported file version
const CurrentVersion = "1"

// Error messages
const (
	ErrMsgReadFileFailed    = "failed to read modification file: %w"
	ErrMsgRegisterSchema    = "failed to register modification schema: %w"
	ErrMsgSchemaFailed      = "schema validation failed for %s: %w"
	ErrMsgParseFailed       = "failed to parse modification file: %w"
	ErrMsgFileNil           = "file is nil"
	ErrMsgNothingToDo       = "no inventories or cluster items defined"
	ErrFmtInvalidValidation = "%w: %s"
)

// Log messages
const (
	LogMsgLoaded = "Modification file loaded"
)
