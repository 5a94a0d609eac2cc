/*
Package registry manages entity type naming and payload factories.

Entity Type Names:
The store keys generators and identity-map entries by an entity type name.
Typed access derives that name from the Go type, optionally overridden:

	registry.RegisterEntityType[Item]("Items")
	registry.EntityTypeName[Item]()  // "Items"
	registry.EntityTypeName[Order]() // "Order" (unregistered: Go type name)

Type Registry:
Maps entity type names to functions that build a payload from an attribute map.
The scenario runner uses it to turn declarative field maps into typed payloads:

	registry.RegisterType("Item", func(item map[string]types.AttributeValue) (interface{}, error) {
	    var it Item
	    err := attributevalue.UnmarshalMap(item, &it)
	    return it, err
	})

The registry is thread-safe and should be populated during initialization,
typically in init() functions.
*/
package registry
