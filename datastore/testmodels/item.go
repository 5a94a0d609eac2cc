// Package testmodels holds payload types shared by tests and scenario fixtures.
package testmodels

import (
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/go-openapi/strfmt"

	"github.com/suparena/inmemstore/registry"
)

// ItemType is the entity type name Item is stored under.
const ItemType = "Item"

type Item struct {

	// Name of the item.
	// Required: true
	Name string `json:"Name" dynamodbav:"Name"`

	// Optional grouping used by filtered queries.
	Category string `json:"Category,omitempty" dynamodbav:"Category,omitempty"`

	// Quantity on hand.
	Quantity int `json:"Quantity,omitempty" dynamodbav:"Quantity,omitempty"`

	// Timestamp when the item was created.
	// Format: date-time
	CreatedAt *strfmt.DateTime `json:"CreatedAt,omitempty" dynamodbav:"-"`
}

func init() {
	registry.RegisterEntityType[Item](ItemType)
}

// Register adds the Item factory to the type registry. Call it once, from init
// or test setup.
func Register() {
	registry.RegisterType(ItemType, UnmarshalItem)
}

// UnmarshalItem builds an Item from an attribute map. A string CreatedAt
// attribute is parsed as an RFC 3339 date-time; without one the item is
// stamped with the current time.
func UnmarshalItem(item map[string]types.AttributeValue) (interface{}, error) {
	var it Item
	if err := attributevalue.UnmarshalMap(item, &it); err != nil {
		return nil, fmt.Errorf("failed to unmarshal Item: %w", err)
	}

	created := strfmt.DateTime(time.Now().UTC())
	if attr, ok := item["CreatedAt"].(*types.AttributeValueMemberS); ok {
		parsed, err := strfmt.ParseDateTime(attr.Value)
		if err != nil {
			return nil, fmt.Errorf("failed to parse CreatedAt: %w", err)
		}
		created = parsed
	}
	it.CreatedAt = &created
	return it, nil
}
