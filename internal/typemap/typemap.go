// Package typemap classifies schema type references for code generation.
//
// It answers one question per named type: does a field targeting it become a
// leaf presence check (scalar) or a nested trail (composite)? List and non-null
// wrappers never change the answer.
package typemap

import (
	language "github.com/hanpama/querytrail/internal/language"
)

type Kind int

const (
	KindScalar Kind = iota
	KindComposite
)

// Map is built once per schema document and read-only afterwards.
type Map struct {
	scalars map[string]bool
}

// Build collects every type name whose fields terminate a trail: the built-in
// scalars plus schema-declared scalars and enums.
func Build(doc *language.SchemaDocument) *Map {
	m := &Map{scalars: map[string]bool{
		"String":  true,
		"Int":     true,
		"Float":   true,
		"Boolean": true,
		"ID":      true,
	}}
	for _, def := range doc.Definitions {
		switch def.Kind {
		case language.Scalar, language.Enum:
			m.scalars[def.Name] = true
		}
	}
	return m
}

// Classify reports whether a named type is a scalar leaf or a composite target.
// Unknown names classify as composite: the document is assumed valid upstream,
// so an unresolved name is somebody else's diagnostic.
func (m *Map) Classify(name string) Kind {
	if m.scalars[name] {
		return KindScalar
	}
	return KindComposite
}

// BaseName unwraps list and non-null wrappers down to the named type.
func BaseName(t *language.Type) string {
	for t.Elem != nil {
		t = t.Elem
	}
	return t.NamedType
}
