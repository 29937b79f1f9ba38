/*
Package task defines the task entity, its repository contract and its errors.
*/
package task

import (
	"tasklist/domain/shared"
)

const entityName = "task"

// NewMissingFieldError reports a required field absent from an add request.
func NewMissingFieldError(field string) error {
	return shared.NewValidationError(entityName, field, field+" is required")
}
