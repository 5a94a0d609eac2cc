/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package datastore

import (
	"context"

	"github.com/suparena/inmemstore/storagemodels"
)

// DataStore is the read side a query layer needs from an entity store.
type DataStore[T any] interface {
	GetOne(ctx context.Context, key int64) (*T, error)

	Query(ctx context.Context, params *storagemodels.QueryParams) ([]T, error)

	Stream(ctx context.Context, params *storagemodels.QueryParams, opts ...storagemodels.StreamOption) <-chan storagemodels.StreamResult[T]
}
