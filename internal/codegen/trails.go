package codegen

import (
	"fmt"

	ident "github.com/hanpama/querytrail/internal/ident"
	language "github.com/hanpama/querytrail/internal/language"
	typemap "github.com/hanpama/querytrail/internal/typemap"
)

// genQueryTrails emits one companion type per object, interface and union
// definition. Other definition kinds are inert here. Union consistency is
// checked before emission, but its diagnostics never suppress the union's
// companion type.
func (p *pass) genQueryTrails(doc *language.SchemaDocument) {
	index := buildFieldIndex(doc)

	for _, def := range doc.Definitions {
		switch def.Kind {
		case language.Object:
			p.genTrailType(trailNode{kind: trailObject, def: def})
		case language.Interface:
			p.genTrailType(trailNode{kind: trailInterface, def: def})
		case language.Union:
			p.checkUnionFieldConsistency(def, index)
			p.genTrailType(trailNode{
				kind:        trailUnion,
				def:         def,
				unionFields: buildUnionFieldSet(def, index),
			})
		}
	}
}

// genTrailType emits the walked and not-walked trail pair for one node plus
// one accessor per field.
func (p *pass) genTrailType(node trailNode) {
	name := node.name()
	typeName := ident.ToTypeName(name)

	fmt.Fprintf(&p.buf, `
// %[1]sQueryTrail is the walked selection trail for the %[2]s type.
type %[1]sQueryTrail struct {
	lookAhead *lookahead.Selection
}

func (t *%[1]sQueryTrail) bindLookAhead(la *lookahead.Selection) {
	t.lookAhead = la
}

// %[1]sQueryTrailNotWalked is a %[2]s trail that has not been walked yet.
type %[1]sQueryTrailNotWalked struct {
	lookAhead *lookahead.Selection
}

// Walk reports whether the trail is present in the query being executed.
func (t %[1]sQueryTrailNotWalked) Walk() (%[1]sQueryTrail, bool) {
	if t.lookAhead == nil {
		return %[1]sQueryTrail{}, false
	}
	return %[1]sQueryTrail{lookAhead: t.lookAhead}, true
}
`, typeName, name)

	for _, field := range node.fields() {
		p.genFieldAccessor(typeName, field)
	}
}

// genFieldAccessor emits one accessor on the walked trail type: a presence
// check for scalar targets, a descent into a not-walked child trail for
// composite targets.
func (p *pass) genFieldAccessor(typeName string, field *language.FieldDefinition) {
	target := typemap.BaseName(field.Type)
	accessor := ident.ToAccessorName(field.Name)

	switch p.types.Classify(target) {
	case typemap.KindScalar:
		fmt.Fprintf(&p.buf, `
// %[1]s reports whether the scalar field %[2]q is queried for.
func (t %[3]sQueryTrail) %[1]s() bool {
	return t.lookAhead.SelectChild(%[2]q) != nil
}
`, accessor, field.Name, typeName)

	case typemap.KindComposite:
		fmt.Fprintf(&p.buf, `
// %[1]s walks the trail into the %[2]q field.
func (t %[3]sQueryTrail) %[1]s() %[4]sQueryTrailNotWalked {
	return %[4]sQueryTrailNotWalked{lookAhead: t.lookAhead.SelectChild(%[2]q)}
}
`, accessor, field.Name, typeName, ident.ToTypeName(target))
	}
}
