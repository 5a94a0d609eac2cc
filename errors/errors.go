/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
)

// Common sentinel errors
var (
	// ErrNotFound is returned when an entity is not found
	ErrNotFound = errors.New("entity not found")

	// ErrDuplicateKey is returned when a commit assigns a key that is already tracked
	ErrDuplicateKey = errors.New("duplicate key")

	// ErrUnsafeReset is returned when a key generator reset is requested while
	// records holding its keys are still tracked
	ErrUnsafeReset = errors.New("unsafe key generator reset")

	// ErrInvalidInput is returned when input validation fails
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnknownEntityType is returned when no factory is registered for an entity type
	ErrUnknownEntityType = errors.New("unknown entity type")
)

// NotFoundError represents an error when an entity is not found
type NotFoundError struct {
	Type string
	Key  string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s with key %q not found", e.Type, e.Key)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

// DuplicateKeyError is returned by Commit when the identity map already holds
// a record of Type under Key.
type DuplicateKeyError struct {
	Type string
	Key  int64
}

func (e *DuplicateKeyError) Error() string {
	return fmt.Sprintf("%s with key %d is already being tracked", e.Type, e.Key)
}

func (e *DuplicateKeyError) Is(target error) bool {
	return target == ErrDuplicateKey
}

// UnsafeResetError reports a generator reset refused because Tracked records
// of Type still hold previously issued keys.
type UnsafeResetError struct {
	Type    string
	Tracked int
}

func (e *UnsafeResetError) Error() string {
	return fmt.Sprintf("cannot reset key generator for %s: %d record(s) still tracked", e.Type, e.Tracked)
}

func (e *UnsafeResetError) Is(target error) bool {
	return target == ErrUnsafeReset
}

// ValidationError represents an input validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for field %q: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalidInput
}

// Helper functions for creating errors

// NewNotFoundError creates a new NotFoundError
func NewNotFoundError(entityType, key string) error {
	return &NotFoundError{Type: entityType, Key: key}
}

// NewDuplicateKeyError creates a new DuplicateKeyError
func NewDuplicateKeyError(entityType string, key int64) error {
	return &DuplicateKeyError{Type: entityType, Key: key}
}

// NewUnsafeResetError creates a new UnsafeResetError
func NewUnsafeResetError(entityType string, tracked int) error {
	return &UnsafeResetError{Type: entityType, Tracked: tracked}
}

// NewValidationError creates a new ValidationError
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// IsNotFound checks if an error is a not found error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsDuplicateKey checks if an error is a duplicate key error
func IsDuplicateKey(err error) bool {
	return errors.Is(err, ErrDuplicateKey)
}

// IsUnsafeReset checks if an error is an unsafe reset error
func IsUnsafeReset(err error) bool {
	return errors.Is(err, ErrUnsafeReset)
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsUnknownEntityType checks if an error is an unknown entity type error
func IsUnknownEntityType(err error) bool {
	return errors.Is(err, ErrUnknownEntityType)
}
