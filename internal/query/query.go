// Package query parses the list-endpoint query parameters (where, sort,
// select, skip, limit, count) into a specification the repositories can pass
// straight to the store. Malformed expressions degrade to defaults instead of
// erroring.
package query

import (
	"net/url"
	"strconv"

	"go.mongodb.org/mongo-driver/bson"
)

// ListQuery is an opaque filter/sort/projection specification for a list
// endpoint. Filter is never nil.
type ListQuery struct {
	Filter     bson.D
	Sort       bson.D
	Projection bson.D
	Skip       int64
	Limit      int64
	Count      bool
}

// Parse reads the recognized parameters from raw URL query values.
// defaultLimit of 0 means no limit.
func Parse(values url.Values, defaultLimit int64) ListQuery {
	return ListQuery{
		Filter:     parseDoc(values.Get("where"), bson.D{}),
		Sort:       parseDoc(values.Get("sort"), nil),
		Projection: parseDoc(values.Get("select"), nil),
		Skip:       parseInt(values.Get("skip"), 0),
		Limit:      parseInt(values.Get("limit"), defaultLimit),
		Count:      values.Get("count") == "true",
	}
}

// ParseProjection reads only the select parameter, for get-one endpoints.
func ParseProjection(values url.Values) bson.D {
	return parseDoc(values.Get("select"), nil)
}

func parseDoc(raw string, fallback bson.D) bson.D {
	if raw == "" {
		return fallback
	}
	var doc bson.D
	if err := bson.UnmarshalExtJSON([]byte(raw), false, &doc); err != nil {
		return fallback
	}
	return doc
}

func parseInt(raw string, fallback int64) int64 {
	if raw == "" {
		return fallback
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return fallback
	}
	return n
}
