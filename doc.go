/*
Package inmemstore provides an in-memory entity store with generated surrogate
integer keys and an identity map.

Records are staged with Add and receive keys on Commit. Each entity type draws
keys from its own strictly increasing generator, and the identity map rejects
a commit whose key is already tracked for that type. Clear drops every tracked
record but does not restart key numbering unless the store is configured to:

	store := inmemstore.New()

	zach := &inmemstore.Record{Type: "Item", Payload: "Zach"}
	george := &inmemstore.Record{Type: "Item", Payload: "George"}
	store.Add(zach)
	store.Add(george)
	store.Commit() // zach.Key == 1, george.Key == 2

	store.Clear()
	next := &inmemstore.Record{Type: "Item", Payload: "Steve"}
	store.Add(next)
	store.Commit() // next.Key == 3

Restarting numbering is explicit. Either configure the store to reset its
generators as part of Clear, or call ResetGenerator once no record of the type
is tracked:

	store := inmemstore.New(inmemstore.WithResetGeneratorsOnClear(true))

	if err := store.ResetGenerator("Item"); errors.IsUnsafeReset(err) {
	    // records of type Item still hold keys the generator would reissue
	}

Key Features:
  - Per-type atomic key generators, injectable through keygen.Cache
  - Identity map with atomic check-and-insert on commit
  - Typed access through Set[T] and EntitySet[T]
  - Named, shared stores through Databases
  - Structured logging with zap
  - Read-side query adapter in datastore/memory
*/
package inmemstore
