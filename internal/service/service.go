package service

import (
	"errors"
	"strings"

	"go-faktur-api/internal/apperr"
	"go-faktur-api/pkg/validator"

	"gorm.io/gorm"
)

// classify maps a repository error to the API taxonomy: record-not-found
// becomes NotFound with the given message, anything else is Internal.
func classify(err error, notFoundMsg string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return apperr.New(apperr.NotFound, notFoundMsg)
	}
	return apperr.Wrap(apperr.Internal, "internal server error", err)
}

// validateStruct runs the declarative rule table and fails the request
// before any database call.
func validateStruct(data interface{}) error {
	if errs := validator.ValidateStruct(data); len(errs) > 0 {
		return apperr.New(apperr.Validation, validator.Describe(errs))
	}
	return nil
}

// isDuplicateKey reports whether err is a unique-constraint violation.
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate key") || strings.Contains(msg, "unique constraint") || strings.Contains(msg, "unique failed")
}
