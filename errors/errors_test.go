/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNotFoundError(t *testing.T) {
	err := NewNotFoundError("Item", "7")

	// Test error message
	expected := `Item with key "7" not found`
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	// Test Is method
	if !errors.Is(err, ErrNotFound) {
		t.Error("NotFoundError should match ErrNotFound")
	}

	// Test helper function
	if !IsNotFound(err) {
		t.Error("IsNotFound should return true for NotFoundError")
	}
}

func TestDuplicateKeyError(t *testing.T) {
	err := NewDuplicateKeyError("Item", 1)

	expected := "Item with key 1 is already being tracked"
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	if !errors.Is(err, ErrDuplicateKey) {
		t.Error("DuplicateKeyError should match ErrDuplicateKey")
	}

	if !IsDuplicateKey(err) {
		t.Error("IsDuplicateKey should return true for DuplicateKeyError")
	}

	var dke *DuplicateKeyError
	if !errors.As(err, &dke) || dke.Key != 1 || dke.Type != "Item" {
		t.Errorf("errors.As should expose type and key, got %+v", dke)
	}
}

func TestUnsafeResetError(t *testing.T) {
	err := NewUnsafeResetError("Item", 2)

	expected := "cannot reset key generator for Item: 2 record(s) still tracked"
	if err.Error() != expected {
		t.Errorf("Expected error message %q, got %q", expected, err.Error())
	}

	if !errors.Is(err, ErrUnsafeReset) {
		t.Error("UnsafeResetError should match ErrUnsafeReset")
	}

	if !IsUnsafeReset(err) {
		t.Error("IsUnsafeReset should return true for UnsafeResetError")
	}
}

func TestValidationError(t *testing.T) {
	tests := []struct {
		name     string
		field    string
		message  string
		expected string
	}{
		{
			name:     "with field",
			field:    "key",
			message:  "record already has a key",
			expected: `validation failed for field "key": record already has a key`,
		},
		{
			name:     "without field",
			field:    "",
			message:  "nil record",
			expected: "validation failed: nil record",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := NewValidationError(tt.field, tt.message)

			if err.Error() != tt.expected {
				t.Errorf("Expected error message %q, got %q", tt.expected, err.Error())
			}

			if !errors.Is(err, ErrInvalidInput) {
				t.Error("ValidationError should match ErrInvalidInput")
			}

			if !IsValidationError(err) {
				t.Error("IsValidationError should return true for ValidationError")
			}
		})
	}
}

func TestErrorWrapping(t *testing.T) {
	// Test that wrapped errors still match
	original := NewDuplicateKeyError("Item", 3)
	wrapped := fmt.Errorf("commit failed: %w", original)

	if !errors.Is(wrapped, ErrDuplicateKey) {
		t.Error("Wrapped DuplicateKeyError should still match ErrDuplicateKey")
	}

	if !IsDuplicateKey(wrapped) {
		t.Error("IsDuplicateKey should work with wrapped errors")
	}

	unknown := fmt.Errorf("type %q: %w", "Widget", ErrUnknownEntityType)
	if !IsUnknownEntityType(unknown) {
		t.Error("IsUnknownEntityType should work with wrapped sentinel")
	}
}

func TestSentinelErrors(t *testing.T) {
	// Ensure sentinel errors are distinct
	sentinels := []error{
		ErrNotFound,
		ErrDuplicateKey,
		ErrUnsafeReset,
		ErrInvalidInput,
		ErrUnknownEntityType,
	}

	for i, err1 := range sentinels {
		for j, err2 := range sentinels {
			if i != j && errors.Is(err1, err2) {
				t.Errorf("Sentinel errors should be distinct: %v matches %v", err1, err2)
			}
		}
	}
}
