package codegen

import (
	language "github.com/hanpama/querytrail/internal/language"
	typemap "github.com/hanpama/querytrail/internal/typemap"
)

// buildUnionFieldSet resolves a union's accessor surface: one representative
// field per distinct field name across all member types. Members are visited
// in declaration order and the first occurrence of a name wins; members with
// no indexed fields (interfaces, undefined names) are skipped. Identity is
// the field name alone, never the rest of the field definition.
func buildUnionFieldSet(union *language.Definition, index fieldIndex) map[string]*language.FieldDefinition {
	set := map[string]*language.FieldDefinition{}
	for _, member := range union.Types {
		for _, field := range index[member] {
			if _, ok := set[field.Name]; !ok {
				set[field.Name] = field
			}
		}
	}
	return set
}

type fieldOccurrence struct {
	ownerType  string
	targetType string
}

// checkUnionFieldConsistency flags same-named member fields whose target
// types disagree, making the union's unified accessor ambiguous.
//
// The scan is linear over members in declaration order with a rolling map of
// the most recently seen occurrence per field name. Each occurrence is
// compared against the nearest earlier one only, and then overwrites the
// rolling entry whether or not it matched. With three or more overlapping
// members this can under-report combinations where adjacent occurrences agree
// while the extremes differ; that is the intended scan behavior.
func (p *pass) checkUnionFieldConsistency(union *language.Definition, index fieldIndex) {
	prev := map[string]fieldOccurrence{}
	for _, member := range union.Types {
		for _, field := range index[member] {
			cur := fieldOccurrence{ownerType: member, targetType: typemap.BaseName(field.Type)}
			if earlier, ok := prev[field.Name]; ok && earlier.targetType != cur.targetType {
				p.addDiagnostic(diagnosticUnionFieldTypeMismatch(union, field.Name, earlier, cur))
			}
			prev[field.Name] = cur
		}
	}
}
