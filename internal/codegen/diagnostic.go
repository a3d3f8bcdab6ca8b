package codegen

import (
	"fmt"

	language "github.com/hanpama/querytrail/internal/language"
)

// Diagnostic reports a schema-authoring ambiguity found while generating
// trails. Diagnostics are non-fatal: generation always completes and the
// caller decides whether a non-empty set constitutes failure.
//
// The only kind produced here is a union field type mismatch: two member
// types of a union declare the same field name with different target types,
// so the union's single accessor for that name is ambiguous.
type Diagnostic struct {
	UnionName  string `json:"unionName"`
	FieldName  string `json:"fieldName"`
	TypeA      string `json:"typeA"`
	TypeB      string `json:"typeB"`
	FieldTypeA string `json:"fieldTypeA"`
	FieldTypeB string `json:"fieldTypeB"`

	File   string `json:"file,omitempty"`
	Line   int    `json:"line,omitempty"`
	Column int    `json:"column,omitempty"`
}

func (d Diagnostic) Message() string {
	return fmt.Sprintf(
		"Union %q has field %q with mismatching types: %s.%s is of type %q but %s.%s is of type %q",
		d.UnionName, d.FieldName,
		d.TypeA, d.FieldName, d.FieldTypeA,
		d.TypeB, d.FieldName, d.FieldTypeB,
	)
}

// Pos renders the source position, or "" when the union carried none.
func (d Diagnostic) Pos() string {
	if d.File == "" && d.Line == 0 {
		return ""
	}
	return fmt.Sprintf("%s:%d:%d", d.File, d.Line, d.Column)
}

func diagnosticUnionFieldTypeMismatch(union *language.Definition, fieldName string, a, b fieldOccurrence) Diagnostic {
	d := Diagnostic{
		UnionName:  union.Name,
		FieldName:  fieldName,
		TypeA:      a.ownerType,
		TypeB:      b.ownerType,
		FieldTypeA: a.targetType,
		FieldTypeB: b.targetType,
	}
	if pos := union.Position; pos != nil {
		if pos.Src != nil {
			d.File = pos.Src.Name
		}
		d.Line = pos.Line
		d.Column = pos.Column
	}
	return d
}
