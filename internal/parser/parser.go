// Package parser turns raw recipe file bytes into a YAML document tree,
// keeping source positions so downstream checks can point at the offending
// line.
package parser

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// ParseError reports bytes that are not well-formed YAML. It is the only
// fatal outcome of parsing; everything else is a matter for validation.
type ParseError struct {
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse: %v", e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Document is a parsed recipe file.
type Document struct {
	root yaml.Node
}

// Parse decodes data into a document tree. A *ParseError is returned when
// the bytes are not valid YAML.
func Parse(data []byte) (*Document, error) {
	d := &Document{}
	if err := yaml.Unmarshal(data, &d.root); err != nil {
		return nil, &ParseError{Err: err}
	}
	return d, nil
}

// Root returns the document's top-level node, or nil when the document is
// empty. Callers must check the node kind: a recipe is a mapping, but YAML
// permits any node at the top level.
func (d *Document) Root() *yaml.Node {
	if d.root.Kind == 0 || len(d.root.Content) == 0 {
		return nil
	}
	return d.root.Content[0]
}

// Decode unmarshals the document into out using standard yaml semantics.
// Unknown fields are ignored; structural validation covers those.
func (d *Document) Decode(out any) error {
	if d.Root() == nil {
		return fmt.Errorf("parser: empty document")
	}
	return d.root.Decode(out)
}
