/*
Package keygen produces surrogate integer keys for entity types.

A Generator is a strictly increasing counter. The first key it issues is 1 and
every later call to Next returns a larger value until Reset puts the counter
back to zero:

	gen := keygen.New()
	gen.Next() // 1
	gen.Next() // 2
	gen.Reset()
	gen.Next() // 1 again

Reset is unchecked. Reissued keys collide with any record that still holds
them, so callers reset only after every record of the type has been dropped
from tracking. The store's ResetGenerator performs that check.

A Cache holds one Generator per entity type name and is safe for concurrent use:

	cache := keygen.NewCache()
	cache.GetOrAdd("Item").Next()
*/
package keygen
