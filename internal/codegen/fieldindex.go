package codegen

import (
	language "github.com/hanpama/querytrail/internal/language"
)

// fieldIndex maps an object type name to its declared fields in declaration
// order. Only object types contribute: interfaces expose their fields
// directly and unions declare none of their own.
type fieldIndex map[string]language.FieldList

func buildFieldIndex(doc *language.SchemaDocument) fieldIndex {
	index := fieldIndex{}
	for _, def := range doc.Definitions {
		if def.Kind != language.Object {
			continue
		}
		index[def.Name] = append(index[def.Name], def.Fields...)
	}
	return index
}
