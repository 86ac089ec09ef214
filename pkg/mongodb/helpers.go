package mongodb

import (
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GenerateID generates a new MongoDB ObjectID
func GenerateID() primitive.ObjectID {
	return primitive.NewObjectID()
}

// GenerateIDString generates a new MongoDB ObjectID as a string
func GenerateIDString() string {
	return primitive.NewObjectID().Hex()
}

// ParseID parses a string into a MongoDB ObjectID
func ParseID(id string) (primitive.ObjectID, error) {
	return primitive.ObjectIDFromHex(id)
}

// Now returns the current time in UTC
func Now() time.Time {
	return time.Now().UTC()
}

// DateRangeFilter adds an inclusive createdAt range to a filter. Either
// bound may be nil.
func DateRangeFilter(filter bson.M, from, to *time.Time) bson.M {
	if from == nil && to == nil {
		return filter
	}

	rangeFilter := bson.M{}
	if from != nil {
		rangeFilter["$gte"] = *from
	}
	if to != nil {
		rangeFilter["$lte"] = *to
	}
	filter["createdAt"] = rangeFilter
	return filter
}

// SortAscending creates an ascending sort option
func SortAscending(field string) bson.D {
	return bson.D{{Key: field, Value: 1}}
}

// SortDescending creates a descending sort option
func SortDescending(field string) bson.D {
	return bson.D{{Key: field, Value: -1}}
}
