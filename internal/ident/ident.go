// Package ident normalizes GraphQL wire names into exported Go identifiers.
package ident

import (
	"github.com/iancoleman/strcase"
)

// ToAccessorName converts a field's wire name into the exported method name of
// its trail accessor: "id" -> "Id", "homeWorld" -> "HomeWorld".
func ToAccessorName(fieldName string) string {
	return strcase.ToCamel(fieldName)
}

// ToTypeName converts a schema type name into an exported Go type name.
func ToTypeName(typeName string) string {
	return strcase.ToCamel(typeName)
}
