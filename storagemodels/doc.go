/*
Package storagemodels defines the data structures shared by query-layer implementations.

Key Types:

QueryParams:
Parameters for reading the tracked entities of one type:

	params := &QueryParams{
	    Filter: map[string]types.AttributeValue{
	        "Name": &types.AttributeValueMemberS{Value: "Zach"},
	    },
	    Limit:            aws.Int32(10),
	    ScanIndexForward: aws.Bool(false),
	}

StreamResult:
Results from streaming operations with metadata:

	type StreamResult[T any] struct {
	    Item  T          // The entity payload
	    Key   int64      // The entity's surrogate key
	    Error error      // Item-specific error, if any
	    Meta  StreamMeta // Metadata about this item
	}

StreamOptions:
Configuration for streaming behavior:

	opts := []StreamOption{
	    WithBufferSize(100),
	    WithPageSize(25),
	    WithProgressHandler(progressFunc),
	}
*/
package storagemodels
