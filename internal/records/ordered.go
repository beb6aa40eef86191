package records

import (
	"bytes"
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Ordered is a record that marshals its fields in a fixed key order.
// Keys missing from the record marshal as null.
type Ordered struct {
	Keys   []string
	Record Record
}

// Project returns the records as Ordered values limited to keys.
func Project(recs []Record, keys []string) []Ordered {
	out := make([]Ordered, len(recs))
	for i, r := range recs {
		out[i] = Ordered{Keys: keys, Record: r}
	}
	return out
}

// MarshalJSON implements json.Marshaler.
func (o Ordered) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range o.Keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		value, err := json.Marshal(o.Record[k])
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// MarshalYAML implements yaml.Marshaler.
func (o Ordered) MarshalYAML() (interface{}, error) {
	node := &yaml.Node{Kind: yaml.MappingNode, Tag: "!!map"}
	for _, k := range o.Keys {
		var value yaml.Node
		if err := value.Encode(o.Record[k]); err != nil {
			return nil, err
		}
		node.Content = append(node.Content,
			&yaml.Node{Kind: yaml.ScalarNode, Tag: "!!str", Value: k},
			&value,
		)
	}
	return node, nil
}
