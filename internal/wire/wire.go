// Package wire converts stored documents into their client-facing
// form. The store's internal identifier never leaves the process as an
// ObjectID: it is re-exposed as a string field "id".
package wire

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Document maps a raw document to its wire form. The "_id" field is
// removed and its string form added as "id"; any other ObjectID value,
// including ones nested in sub-documents or arrays, is stringified.
// A nil document passes through unchanged.
func Document(doc bson.M) bson.M {
	if doc == nil {
		return nil
	}

	out := bson.M{}
	for key, value := range doc {
		if key == "_id" {
			if id, ok := value.(primitive.ObjectID); ok {
				out["id"] = id.Hex()
				continue
			}
		}
		out[key] = convertValue(value)
	}
	return out
}

// Documents applies Document to every element of a result set.
func Documents(docs []bson.M) []bson.M {
	out := make([]bson.M, 0, len(docs))
	for _, doc := range docs {
		out = append(out, Document(doc))
	}
	return out
}

func convertValue(value any) any {
	switch v := value.(type) {
	case primitive.ObjectID:
		return v.Hex()
	case bson.M:
		nested := bson.M{}
		for key, inner := range v {
			nested[key] = convertValue(inner)
		}
		return nested
	case bson.A:
		nested := make(bson.A, 0, len(v))
		for _, inner := range v {
			nested = append(nested, convertValue(inner))
		}
		return nested
	default:
		return value
	}
}
