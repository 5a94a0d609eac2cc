/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

// Package memory implements datastore.DataStore on top of an inmemstore.Store.
package memory

import (
	"bytes"
	"context"
	"fmt"
	"reflect"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/suparena/inmemstore"
	"github.com/suparena/inmemstore/datastore"
	"github.com/suparena/inmemstore/errors"
	"github.com/suparena/inmemstore/storagemodels"
)

var _ datastore.DataStore[struct{}] = (*DataStore[struct{}])(nil)

// DataStore serves reads of the T entities tracked by a Store.
type DataStore[T any] struct {
	set *inmemstore.EntitySet[T]
}

// New creates a DataStore reading the T entities of store.
func New[T any](store *inmemstore.Store) *DataStore[T] {
	return &DataStore[T]{
		set: inmemstore.Set[T](store),
	}
}

// GetOne retrieves an entity by key
func (d *DataStore[T]) GetOne(ctx context.Context, key int64) (*T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entity, ok := d.set.Find(key)
	if !ok {
		return nil, errors.NewNotFoundError(d.set.TypeName(), strconv.FormatInt(key, 10))
	}
	return &entity, nil
}

// Query returns the entities matching params, ordered by key.
func (d *DataStore[T]) Query(ctx context.Context, params *storagemodels.QueryParams) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	entities, err := d.collect(params)
	if err != nil {
		return nil, err
	}

	results := make([]T, 0, len(entities))
	for _, e := range entities {
		results = append(results, e.Value)
	}
	return results, nil
}

// Stream emits the entities matching params on a channel that is closed when
// the stream ends or ctx is cancelled. The result set is a snapshot taken
// when Stream is called.
func (d *DataStore[T]) Stream(ctx context.Context, params *storagemodels.QueryParams, opts ...storagemodels.StreamOption) <-chan storagemodels.StreamResult[T] {
	options := storagemodels.DefaultStreamOptions()
	for _, opt := range opts {
		opt(&options)
	}
	defaults := storagemodels.DefaultStreamOptions()
	if options.PageSize <= 0 {
		options.PageSize = defaults.PageSize
	}
	// zero is a valid unbuffered channel
	if options.BufferSize < 0 {
		options.BufferSize = defaults.BufferSize
	}

	resultCh := make(chan storagemodels.StreamResult[T], options.BufferSize)
	entities, err := d.collect(params)

	go func() {
		defer close(resultCh)

		if err != nil {
			select {
			case <-ctx.Done():
			case resultCh <- storagemodels.StreamResult[T]{
				Error: err,
				Meta:  storagemodels.StreamMeta{PageNumber: 1, Timestamp: time.Now()},
			}:
			}
			return
		}

		d.streamWorker(ctx, entities, options, resultCh)
	}()

	return resultCh
}

func (d *DataStore[T]) streamWorker(
	ctx context.Context,
	entities []inmemstore.Entity[T],
	options storagemodels.StreamOptions,
	resultCh chan<- storagemodels.StreamResult[T],
) {
	startTime := time.Now()
	pageSize := int(options.PageSize)

	progress := storagemodels.StreamProgress{StartTime: startTime}
	reportProgress := func() {
		if options.ProgressHandler == nil {
			return
		}
		if elapsed := time.Since(startTime).Seconds(); elapsed > 0 {
			progress.CurrentRate = float64(progress.ItemsProcessed) / elapsed
		}
		options.ProgressHandler(progress)
	}

	for i, e := range entities {
		result := storagemodels.StreamResult[T]{
			Item: e.Value,
			Key:  e.Key,
			Meta: storagemodels.StreamMeta{
				Index:      int64(i),
				PageNumber: i/pageSize + 1,
				Timestamp:  time.Now(),
			},
		}

		select {
		case <-ctx.Done():
			return
		case resultCh <- result:
		}

		progress.ItemsProcessed++
		progress.LastKey = e.Key
		if (i+1)%pageSize == 0 || i == len(entities)-1 {
			progress.PagesProcessed++
			reportProgress()
		}
	}
}

// collect applies params to a snapshot of the tracked entities.
func (d *DataStore[T]) collect(params *storagemodels.QueryParams) ([]inmemstore.Entity[T], error) {
	entities := d.set.All()
	if params == nil {
		return entities, nil
	}

	forward := params.ScanIndexForward == nil || aws.ToBool(params.ScanIndexForward)
	if !forward {
		for i, j := 0, len(entities)-1; i < j; i, j = i+1, j-1 {
			entities[i], entities[j] = entities[j], entities[i]
		}
	}

	limit := int(aws.ToInt32(params.Limit))
	results := make([]inmemstore.Entity[T], 0, len(entities))
	for _, e := range entities {
		if start := params.ExclusiveStartKey; start != nil {
			if (forward && e.Key <= *start) || (!forward && e.Key >= *start) {
				continue
			}
		}

		if len(params.Filter) > 0 {
			ok, err := matches(e.Value, params.Filter)
			if err != nil {
				return nil, fmt.Errorf("failed to filter %s with key %d: %w", d.set.TypeName(), e.Key, err)
			}
			if !ok {
				continue
			}
		}

		results = append(results, e)
		if limit > 0 && len(results) >= limit {
			break
		}
	}
	return results, nil
}

func matches(value any, filter map[string]types.AttributeValue) (bool, error) {
	av, err := attributevalue.MarshalMap(value)
	if err != nil {
		return false, fmt.Errorf("failed to marshal entity: %w", err)
	}

	for name, want := range filter {
		got, ok := av[name]
		if !ok || !attributeEqual(got, want) {
			return false, nil
		}
	}
	return true, nil
}

func attributeEqual(a, b types.AttributeValue) bool {
	switch av := a.(type) {
	case *types.AttributeValueMemberS:
		bv, ok := b.(*types.AttributeValueMemberS)
		return ok && av.Value == bv.Value

	case *types.AttributeValueMemberN:
		bv, ok := b.(*types.AttributeValueMemberN)
		if !ok {
			return false
		}
		if av.Value == bv.Value {
			return true
		}
		// "1" and "1.0" name the same number
		x, errX := strconv.ParseFloat(av.Value, 64)
		y, errY := strconv.ParseFloat(bv.Value, 64)
		return errX == nil && errY == nil && x == y

	case *types.AttributeValueMemberBOOL:
		bv, ok := b.(*types.AttributeValueMemberBOOL)
		return ok && av.Value == bv.Value

	case *types.AttributeValueMemberNULL:
		_, ok := b.(*types.AttributeValueMemberNULL)
		return ok

	case *types.AttributeValueMemberB:
		bv, ok := b.(*types.AttributeValueMemberB)
		return ok && bytes.Equal(av.Value, bv.Value)

	default:
		// sets, lists and maps
		return reflect.DeepEqual(a, b)
	}
}
