package transfer

import (
	"errors"
	"fmt"
)

// ItemFailure reports one record that could not be converted. Inventory-level
// failures carry Position NoPosition.
type ItemFailure struct {
	Inventory int32
	Position  int
	ClassName string
	Err       error
}

func (f ItemFailure) Error() string {
	if f.Position == NoPosition {
		return fmt.Sprintf(ErrFmtInventoryFailure, f.Inventory, f.Err)
	}
	return fmt.Sprintf(ErrFmtItemFailure, f.Position, f.ClassName, f.Err)
}

func (f ItemFailure) Unwrap() error {
	return f.Err
}

// JoinFailures folds failures into one error, nil when there are none
func JoinFailures(failures []ItemFailure) error {
	errs := make([]error, len(failures))
	for i, f := range failures {
		errs[i] = f
	}
	return errors.Join(errs...)
}
