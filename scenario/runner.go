/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package scenario

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"go.uber.org/zap"

	"github.com/suparena/inmemstore"
	"github.com/suparena/inmemstore/errors"
	"github.com/suparena/inmemstore/registry"
)

const (
	errDuplicateKey = "duplicate_key"
	errUnsafeReset  = "unsafe_reset"
	errValidation   = "validation"
)

// StepResult records what a step observed and whether it met its expectations.
type StepResult struct {
	Index    int      `json:"index"`
	Op       Op       `json:"op"`
	Type     string   `json:"type,omitempty"`
	Keys     []int64  `json:"keys,omitempty"`
	Found    *bool    `json:"found,omitempty"`
	Count    *int     `json:"count,omitempty"`
	Error    string   `json:"error,omitempty"`
	Passed   bool     `json:"passed"`
	Failures []string `json:"failures,omitempty"`

	payload any
}

// Report is the outcome of one scenario run.
type Report struct {
	Scenario string       `json:"scenario"`
	Database string       `json:"database"`
	Steps    []StepResult `json:"steps"`
}

// Passed reports whether every step met its expectations.
func (r *Report) Passed() bool {
	return r.Failures() == 0
}

// Failures returns the number of failed steps.
func (r *Report) Failures() int {
	n := 0
	for _, step := range r.Steps {
		if !step.Passed {
			n++
		}
	}
	return n
}

// Runner executes scenarios. Scenarios naming a database share stores
// through the runner's Databases registry.
type Runner struct {
	logger    *zap.Logger
	databases *inmemstore.Databases
	opts      []inmemstore.Option
}

// NewRunner creates a Runner. opts are applied to every store it creates,
// after the scenario's own config.
func NewRunner(logger *zap.Logger, opts ...inmemstore.Option) *Runner {
	if logger == nil {
		logger = zap.L()
	}
	return &Runner{
		logger:    logger,
		databases: inmemstore.NewDatabases(),
		opts:      opts,
	}
}

// Databases returns the registry holding the runner's named stores.
func (r *Runner) Databases() *inmemstore.Databases {
	return r.databases
}

// Run executes every step of sc against a store and checks expectations.
// Failed expectations are reported, not returned; Run keeps going after a
// failed step.
func (r *Runner) Run(sc *Scenario) *Report {
	opts := append([]inmemstore.Option{
		inmemstore.WithConfig(sc.Config),
		inmemstore.WithLogger(r.logger),
	}, r.opts...)

	var store *inmemstore.Store
	if sc.Database != "" {
		store = r.databases.Open(sc.Database, opts...)
	} else {
		store = inmemstore.New(opts...)
	}

	logger := r.logger.With(zap.String("scenario", sc.Name), zap.String("database", store.Name()))
	report := &Report{Scenario: sc.Name, Database: store.Name()}

	var pending []*inmemstore.Record
	for i, step := range sc.Steps {
		result := StepResult{Index: i, Op: step.Op, Type: step.Type}

		var err error
		switch step.Op {
		case OpAdd:
			var payload any
			payload, err = buildPayload(step.Type, step.Fields)
			if err == nil {
				rec := &inmemstore.Record{Type: step.Type, Payload: payload}
				if err = store.Add(rec); err == nil {
					pending = append(pending, rec)
				}
			}

		case OpCommit:
			err = store.Commit()
			var still []*inmemstore.Record
			for _, rec := range pending {
				if rec.Key != 0 {
					result.Keys = append(result.Keys, rec.Key)
				} else {
					still = append(still, rec)
				}
			}
			pending = still

		case OpClear:
			store.Clear()

		case OpReset:
			if step.Type == "" {
				err = store.ResetGenerators()
			} else {
				err = store.ResetGenerator(step.Type)
			}

		case OpResetUnchecked:
			store.Generator(step.Type).Reset()

		case OpFind:
			rec, ok := store.FindByKey(step.Type, step.Key)
			result.Found = &ok
			if ok {
				result.payload = rec.Payload
			}

		case OpCount:
			n := store.Count(step.Type)
			result.Count = &n
		}

		if err != nil {
			result.Error = err.Error()
		}
		result.Failures = check(step.Expect, result, err)
		result.Passed = len(result.Failures) == 0

		logger.Debug("step",
			zap.Int("index", i),
			zap.String("op", string(step.Op)),
			zap.Int64s("keys", result.Keys),
			zap.Bool("passed", result.Passed),
			zap.Error(err),
		)
		report.Steps = append(report.Steps, result)
	}

	return report
}

// buildPayload turns declarative fields into a payload through the type
// registry, falling back to the field map itself for unregistered types.
func buildPayload(entityType string, fields map[string]any) (any, error) {
	if fields == nil {
		fields = map[string]any{}
	}

	unmarshalFn, err := registry.GetUnmarshalFunc(entityType)
	if err != nil {
		if errors.IsUnknownEntityType(err) {
			generic := make(map[string]any, len(fields))
			for k, v := range fields {
				generic[k] = v
			}
			return generic, nil
		}
		return nil, err
	}

	item, err := attributevalue.MarshalMap(fields)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal fields for %s: %w", entityType, err)
	}
	return unmarshalFn(item)
}

func check(expect *Expect, result StepResult, err error) []string {
	var failures []string

	wantErr := ""
	if expect != nil {
		wantErr = expect.Error
	}
	switch {
	case wantErr == "" && err != nil:
		failures = append(failures, fmt.Sprintf("unexpected error: %v", err))
	case wantErr != "" && !errorMatches(wantErr, err):
		failures = append(failures, fmt.Sprintf("expected %s error, got %v", wantErr, err))
	}

	if expect == nil {
		return failures
	}

	if expect.Keys != nil && !reflect.DeepEqual(expect.Keys, result.Keys) {
		failures = append(failures, fmt.Sprintf("expected keys %v, got %v", expect.Keys, result.Keys))
	}
	if expect.Found != nil && (result.Found == nil || *expect.Found != *result.Found) {
		failures = append(failures, fmt.Sprintf("expected found=%t", *expect.Found))
	}
	if expect.Count != nil && (result.Count == nil || *expect.Count != *result.Count) {
		got := "none"
		if result.Count != nil {
			got = fmt.Sprint(*result.Count)
		}
		failures = append(failures, fmt.Sprintf("expected count %d, got %s", *expect.Count, got))
	}
	if len(expect.Fields) > 0 {
		failures = append(failures, checkFields(expect.Fields, result.payload)...)
	}
	return failures
}

func errorMatches(kind string, err error) bool {
	switch kind {
	case errDuplicateKey:
		return errors.IsDuplicateKey(err)
	case errUnsafeReset:
		return errors.IsUnsafeReset(err)
	case errValidation:
		return errors.IsValidationError(err)
	}
	return false
}

func checkFields(want map[string]any, payload any) []string {
	if payload == nil {
		return []string{"no payload to compare fields against"}
	}

	got, err := attributevalue.MarshalMap(payload)
	if err != nil {
		return []string{fmt.Sprintf("failed to marshal payload: %v", err)}
	}
	expected, err := attributevalue.MarshalMap(want)
	if err != nil {
		return []string{fmt.Sprintf("failed to marshal expected fields: %v", err)}
	}

	names := make([]string, 0, len(expected))
	for name := range expected {
		names = append(names, name)
	}
	sort.Strings(names)

	var failures []string
	for _, name := range names {
		if !reflect.DeepEqual(expected[name], got[name]) {
			failures = append(failures, fmt.Sprintf("field %s does not match", name))
		}
	}
	return failures
}
