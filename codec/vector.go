package codec

import (
	"fmt"

	"github.com/hupe1980/hepvec/engine"
)

// MarshalVec encodes v as its field document. A nil codec means Default.
func MarshalVec(c Codec, v engine.Vec) ([]byte, error) {
	if c == nil {
		c = Default
	}
	if v.Type.IsZero() {
		return nil, fmt.Errorf("codec %s: cannot encode a vector without a type", c.Name())
	}
	return c.Marshal(v.Fields())
}

// UnmarshalVec decodes a field document, inferring the vector type from the
// field names.
func UnmarshalVec(c Codec, data []byte) (engine.Vec, error) {
	if c == nil {
		c = Default
	}
	var fields map[string]float64
	if err := c.Unmarshal(data, &fields); err != nil {
		return engine.Vec{}, err
	}
	return engine.FromMap(fields)
}

// MarshalVecs encodes a list of vectors as an array of field documents.
func MarshalVecs(c Codec, vs []engine.Vec) ([]byte, error) {
	if c == nil {
		c = Default
	}
	docs := make([]map[string]float64, len(vs))
	for i, v := range vs {
		if v.Type.IsZero() {
			return nil, fmt.Errorf("codec %s: vector %d has no type", c.Name(), i)
		}
		docs[i] = v.Fields()
	}
	return c.Marshal(docs)
}

// UnmarshalVecs decodes an array of field documents. The documents may name
// different coordinate systems.
func UnmarshalVecs(c Codec, data []byte) ([]engine.Vec, error) {
	if c == nil {
		c = Default
	}
	var docs []map[string]float64
	if err := c.Unmarshal(data, &docs); err != nil {
		return nil, err
	}
	out := make([]engine.Vec, len(docs))
	for i, doc := range docs {
		v, err := engine.FromMap(doc)
		if err != nil {
			return nil, fmt.Errorf("vector %d: %w", i, err)
		}
		out[i] = v
	}
	return out, nil
}
