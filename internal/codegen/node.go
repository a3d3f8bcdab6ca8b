package codegen

import (
	language "github.com/hanpama/querytrail/internal/language"
)

type trailNodeKind int

const (
	trailObject trailNodeKind = iota
	trailInterface
	trailUnion
)

// trailNode unifies the three trail-bearing definition shapes under one
// (name, fields) capability. A union node carries its resolved field set
// inline; objects and interfaces read their declared fields directly.
type trailNode struct {
	kind        trailNodeKind
	def         *language.Definition
	unionFields map[string]*language.FieldDefinition
}

func (n trailNode) name() string {
	return n.def.Name
}

// fields yields the accessor-eligible set for this node: declaration order
// for objects and interfaces, unordered for unions.
func (n trailNode) fields() []*language.FieldDefinition {
	if n.kind != trailUnion {
		return n.def.Fields
	}
	fields := make([]*language.FieldDefinition, 0, len(n.unionFields))
	for _, field := range n.unionFields {
		fields = append(fields, field)
	}
	return fields
}
