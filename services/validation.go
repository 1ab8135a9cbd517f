package services

import (
	"chat-gate/domain"
	"chat-gate/errors"
	errs "errors"

	"github.com/go-playground/validator/v10"
	"github.com/samber/lo"
)

var validate = validator.New()

// validateGateRequest checks the room before the people, both before any network call.
func validateGateRequest(req domain.GateRequest) error {
	err := validate.Struct(req)
	if err == nil {
		return nil
	}
	var fieldErrors validator.ValidationErrors
	if !errs.As(err, &fieldErrors) {
		return err
	}
	failed := lo.Map(fieldErrors, func(fe validator.FieldError, _ int) string {
		return fe.StructField()
	})
	if lo.Contains(failed, "Room") {
		return errors.ErrMissingRoom
	}
	return errors.ErrMissingPeople
}
