/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package scenario

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/suparena/inmemstore"
	"github.com/suparena/inmemstore/errors"
)

// Op names a scenario step.
type Op string

const (
	OpAdd            Op = "add"
	OpCommit         Op = "commit"
	OpClear          Op = "clear"
	OpReset          Op = "reset"
	OpResetUnchecked Op = "reset-unchecked"
	OpFind           Op = "find"
	OpCount          Op = "count"
)

// Scenario is a scripted sequence of store operations with expectations.
type Scenario struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`
	// Database names a shared store; runs of scenarios with the same database
	// on one Runner see each other's records and key generators. Empty means
	// a fresh store per run.
	Database string            `yaml:"database,omitempty"`
	Config   inmemstore.Config `yaml:"config"`
	Steps    []Step            `yaml:"steps"`
}

// Step is one operation. Type and Key apply to add, find, count and the reset
// ops; a reset without a type resets every generator.
type Step struct {
	Op     Op             `yaml:"op"`
	Type   string         `yaml:"type,omitempty"`
	Key    int64          `yaml:"key,omitempty"`
	Fields map[string]any `yaml:"fields,omitempty"`
	Expect *Expect        `yaml:"expect,omitempty"`
}

// Expect lists what a step must observe. Unset fields are not checked, except
// Error: a step without an expected error must succeed.
type Expect struct {
	// Keys assigned by a commit, in staging order.
	Keys []int64 `yaml:"keys,omitempty"`
	// Error is one of duplicate_key, unsafe_reset, validation.
	Error  string         `yaml:"error,omitempty"`
	Found  *bool          `yaml:"found,omitempty"`
	Count  *int           `yaml:"count,omitempty"`
	Fields map[string]any `yaml:"fields,omitempty"`
}

// Parse decodes and validates a YAML scenario.
func Parse(r io.Reader) (*Scenario, error) {
	var sc Scenario
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&sc); err != nil {
		return nil, fmt.Errorf("failed to decode scenario: %w", err)
	}
	if err := sc.Validate(); err != nil {
		return nil, err
	}
	return &sc, nil
}

// LoadFile reads and validates a YAML scenario file.
func LoadFile(path string) (*Scenario, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open scenario: %w", err)
	}
	defer f.Close()

	sc, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sc, nil
}

// Validate checks that every step is well formed.
func (sc *Scenario) Validate() error {
	if sc.Name == "" {
		return errors.NewValidationError("name", "scenario name is required")
	}
	if len(sc.Steps) == 0 {
		return errors.NewValidationError("steps", "scenario has no steps")
	}

	for i, step := range sc.Steps {
		field := fmt.Sprintf("steps[%d]", i)
		switch step.Op {
		case OpAdd, OpFind, OpCount, OpResetUnchecked:
			if step.Type == "" {
				return errors.NewValidationError(field, fmt.Sprintf("op %q requires a type", step.Op))
			}
		case OpCommit, OpClear, OpReset:
		default:
			return errors.NewValidationError(field, fmt.Sprintf("unknown op %q", step.Op))
		}

		if step.Op == OpFind && step.Key == 0 {
			return errors.NewValidationError(field, "find requires a non-zero key")
		}
		if step.Expect != nil {
			switch step.Expect.Error {
			case "", errDuplicateKey, errUnsafeReset, errValidation:
			default:
				return errors.NewValidationError(field, fmt.Sprintf("unknown expected error %q", step.Expect.Error))
			}
		}
	}
	return nil
}
