/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package storagemodels

import (
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

// QueryParams defines parameters for a read of all tracked entities of one type.
// Used for both regular queries and streaming queries.
type QueryParams struct {
	// Filter restricts results to entities whose marshaled attributes equal
	// every value given here, keyed by attribute name.
	Filter map[string]types.AttributeValue
	// Limit defines an optional cap on the number of results.
	Limit *int32
	// ExclusiveStartKey resumes a previous query after (or, descending, before) this key.
	ExclusiveStartKey *int64
	// ScanIndexForward specifies the key order.
	// If true (default), results are in ascending key order.
	// If false, results are in descending key order.
	ScanIndexForward *bool
}
