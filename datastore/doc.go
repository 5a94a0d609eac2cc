/*
Package datastore defines the query-layer interface over the entity store.

The main interface is DataStore[T], a read-only view of the tracked entities of type T:

	type DataStore[T any] interface {
	    GetOne(ctx context.Context, key int64) (*T, error)
	    Query(ctx context.Context, params *storagemodels.QueryParams) ([]T, error)
	    Stream(ctx context.Context, params *storagemodels.QueryParams, opts ...storagemodels.StreamOption) <-chan storagemodels.StreamResult[T]
	}

Writes go through the store itself (Add, Commit, Clear) so that key
assignment and identity tracking stay in one place.

Implementations:
  - memory: backed by an inmemstore.Store
*/
package datastore
