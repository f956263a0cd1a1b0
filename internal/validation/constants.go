package validation

import "errors"

// ErrSchemaValidation is wrapped by every document that fails its schema
var ErrSchemaValidation = errors.New("schema validation failed")

// Error formats
const (
	ErrFmtParseSchema   = "failed to parse schema %s: %w"
	ErrFmtAddResource   = "failed to add schema resource %s: %w"
	ErrFmtCompileSchema = "failed to compile schema %s: %w"
	ErrFmtUnknownSchema = "schema %s is not registered"
	ErrFmtReadData      = "failed to read data file %s: %w"
	ErrFmtParseData     = "failed to parse JSON data: %w"
)
