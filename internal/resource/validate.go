package resource

import (
	"github.com/go-playground/validator/v10"

	apperrors "github.com/openlearn-labs/lms-console/pkg/errors"
)

var validate = validator.New()

// checkPayload runs client-side required-field validation before any network
// call is made. Invalid payloads never reach the server.
func checkPayload(payload interface{}) error {
	if err := validate.Struct(payload); err != nil {
		return apperrors.Wrap(err, apperrors.ErrValidation.Code, apperrors.ErrValidation.Status, "invalid payload")
	}
	return nil
}
