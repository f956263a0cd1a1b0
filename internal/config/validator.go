package config

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Validate checks every field against its constraints
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return fmt.Errorf(ErrFmtInvalidField, fieldErrs[0].Field(), fieldErrs[0].Tag())
	}
	return fmt.Errorf(ErrMsgValidate, err)
}

// Warnings returns non-fatal issues with an otherwise valid configuration
func (c *Config) Warnings() []string {
	var warnings []string
	if c.Seed != 0 && c.Environment == "prod" {
		warnings = append(warnings, WarnMsgSeedInProduction)
	}
	if c.Workers > c.QueueSize {
		warnings = append(warnings, WarnMsgManyWorkers)
	}
	return warnings
}
