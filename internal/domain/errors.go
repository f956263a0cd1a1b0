package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// Decode errors
	ErrMsgMissingMandatoryField = "missing mandatory field"

	// Encode errors
	ErrMsgUnresolvedBlueprint = "blueprintGeneratedClass is not set"
	ErrMsgExhaustedNameSpace  = "no free name token left"
	ErrMsgExhaustedIDSpace    = "no free item id found"

	// Archive errors
	ErrMsgInventoryNotFound = "inventory not found"

	// Input errors
	ErrMsgInvalidInput = "invalid input"
)

// Common domain errors
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// ErrMissingMandatoryField is fatal for one item only
	ErrMissingMandatoryField = errors.New(ErrMsgMissingMandatoryField)

	// ErrUnresolvedBlueprint rejects a cluster encode; the item is skipped
	ErrUnresolvedBlueprint = errors.New(ErrMsgUnresolvedBlueprint)

	// ErrExhaustedNameSpace and ErrExhaustedIDSpace abort the whole batch
	ErrExhaustedNameSpace = errors.New(ErrMsgExhaustedNameSpace)
	ErrExhaustedIDSpace   = errors.New(ErrMsgExhaustedIDSpace)

	ErrInventoryNotFound = errors.New(ErrMsgInventoryNotFound)

	ErrInvalidInput = errors.New(ErrMsgInvalidInput)
)

// IsBatchFatal reports whether err must stop the rest of a batch
func IsBatchFatal(err error) bool {
	return errors.Is(err, ErrExhaustedNameSpace) || errors.Is(err, ErrExhaustedIDSpace)
}
