package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	ErrNotFound     = errors.New("not found")
	ErrConstraint   = errors.New("constraint violation")
	ErrInvalidInput = errors.New("invalid input")
	// ErrWriteFailed marks an insert or delete the store refused for a
	// reason other than a known constraint.
	ErrWriteFailed = errors.New("write failed")
)

func classify(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return fmt.Errorf("%w: %v", ErrNotFound, err)
	case errors.Is(err, gorm.ErrForeignKeyViolated),
		errors.Is(err, gorm.ErrDuplicatedKey),
		errors.Is(err, gorm.ErrCheckConstraintViolated):
		return fmt.Errorf("%w: %v", ErrConstraint, err)
	}
	return err
}

func classifyWrite(err error) error {
	err = classify(err)
	if err == nil || errors.Is(err, ErrNotFound) || errors.Is(err, ErrConstraint) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrWriteFailed, err)
}
