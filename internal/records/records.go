package records

import (
	"context"
	"errors"
	"fmt"
	"os"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"
)

// Decoding errors.
var (
	ErrNotSequence = errors.New("records file must contain a list of objects")
	ErrNotMapping  = errors.New("record must be an object")
)

// Record is one data row keyed by field name.
type Record = map[string]any

// Set is a list of records plus the order in which their keys first appear.
type Set struct {
	Records []Record
	Keys    []string
}

// Len returns the number of records.
func (s *Set) Len() int {
	return len(s.Records)
}

// Append adds the records of other, extending Keys with keys not seen yet.
func (s *Set) Append(other *Set) {
	seen := make(map[string]bool, len(s.Keys))
	for _, k := range s.Keys {
		seen[k] = true
	}
	for _, k := range other.Keys {
		if !seen[k] {
			seen[k] = true
			s.Keys = append(s.Keys, k)
		}
	}
	s.Records = append(s.Records, other.Records...)
}

// Decode parses YAML or JSON data holding a list of objects.
// Key order is taken from the documents, first record first.
func Decode(data []byte) (*Set, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}

	set := &Set{}
	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}
	if root.Kind == 0 || (root.Kind == yaml.DocumentNode && len(root.Content) == 0) {
		// Empty document.
		return set, nil
	}
	if root.Kind != yaml.SequenceNode {
		return nil, ErrNotSequence
	}

	seen := make(map[string]bool)
	for i, item := range root.Content {
		if item.Kind != yaml.MappingNode {
			return nil, fmt.Errorf("record %d: %w", i, ErrNotMapping)
		}

		rec := make(Record, len(item.Content)/2)
		for j := 0; j+1 < len(item.Content); j += 2 {
			key := item.Content[j].Value

			var value any
			if err := item.Content[j+1].Decode(&value); err != nil {
				return nil, fmt.Errorf("record %d field %q: %w", i, key, err)
			}
			rec[key] = value

			if !seen[key] {
				seen[key] = true
				set.Keys = append(set.Keys, key)
			}
		}
		set.Records = append(set.Records, rec)
	}

	return set, nil
}

// LoadFile reads and decodes one records file.
func LoadFile(path string) (*Set, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	set, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", path, err)
	}
	return set, nil
}

// LoadFiles loads every path concurrently and concatenates the results in
// argument order. The first failure cancels the remaining loads.
func LoadFiles(ctx context.Context, paths []string) (*Set, error) {
	sets := make([]*Set, len(paths))

	g, gctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			set, err := LoadFile(path)
			if err != nil {
				return err
			}
			sets[i] = set
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := &Set{}
	for _, s := range sets {
		out.Append(s)
	}
	return out, nil
}
