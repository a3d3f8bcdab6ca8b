package codegen

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/hanpama/querytrail/internal/language"
	"github.com/hanpama/querytrail/internal/typemap"
)

func parseSchema(t *testing.T, sdl string) *language.SchemaDocument {
	t.Helper()
	doc, err := language.ParseSchema("schema.graphql", sdl)
	require.NoError(t, err)
	return doc
}

func findDefinition(t *testing.T, doc *language.SchemaDocument, name string) *language.Definition {
	t.Helper()
	for _, def := range doc.Definitions {
		if def.Name == name {
			return def
		}
	}
	t.Fatalf("definition %q not found", name)
	return nil
}

func TestBuildFieldIndexObjectsOnly(t *testing.T) {
	doc := parseSchema(t, `
		type User {
			id: ID!
			name: String!
		}

		interface Node {
			id: ID!
		}

		union Entity = User
	`)

	index := buildFieldIndex(doc)

	require.Len(t, index, 1)
	require.Len(t, index["User"], 2)
	require.Equal(t, "id", index["User"][0].Name)
	require.Equal(t, "name", index["User"][1].Name)
	require.NotContains(t, index, "Node")
	require.NotContains(t, index, "Entity")
}

func TestBuildUnionFieldSetFirstSeenWins(t *testing.T) {
	doc := parseSchema(t, `
		union Entity = User | Company

		type User {
			id: ID!
			country: Country!
		}

		type Company {
			country: OtherCountry!
			vat: String!
		}
	`)
	index := buildFieldIndex(doc)
	union := findDefinition(t, doc, "Entity")

	set := buildUnionFieldSet(union, index)

	require.Len(t, set, 3)
	// The representative for a shared name comes from the first member that
	// declared it, even when a later member disagrees.
	require.Equal(t, "Country", typemap.BaseName(set["country"].Type))
	require.Equal(t, "ID", typemap.BaseName(set["id"].Type))
	require.Equal(t, "String", typemap.BaseName(set["vat"].Type))
}

func TestBuildUnionFieldSetSkipsUnindexedMembers(t *testing.T) {
	doc := parseSchema(t, `
		union Entity = Node | User

		interface Node {
			id: ID!
		}

		type User {
			name: String!
		}
	`)
	index := buildFieldIndex(doc)
	union := findDefinition(t, doc, "Entity")

	set := buildUnionFieldSet(union, index)

	require.Len(t, set, 1)
	require.Contains(t, set, "name")
}

func TestCheckUnionFieldConsistencyRollingOverwrite(t *testing.T) {
	doc := parseSchema(t, `
		union Entity = A | B | C

		type A { f: X! }
		type B { f: Y! }
		type C { f: Y! }
	`)
	index := buildFieldIndex(doc)
	union := findDefinition(t, doc, "Entity")

	p := newPass(typemap.Build(doc))
	p.checkUnionFieldConsistency(union, index)

	// A vs B mismatch; B vs C agree, and C is compared against B, not A.
	require.Len(t, p.diags, 1)
	require.Equal(t, "A", p.diags[0].TypeA)
	require.Equal(t, "B", p.diags[0].TypeB)
	require.Equal(t, "X", p.diags[0].FieldTypeA)
	require.Equal(t, "Y", p.diags[0].FieldTypeB)
}

func TestCheckUnionFieldConsistencyComparesBaseNames(t *testing.T) {
	doc := parseSchema(t, `
		union Entity = A | B

		type A { f: Country }
		type B { f: [Country!]! }
	`)
	index := buildFieldIndex(doc)
	union := findDefinition(t, doc, "Entity")

	p := newPass(typemap.Build(doc))
	p.checkUnionFieldConsistency(union, index)

	// Wrapper shapes are the classifier's concern; only the named type is
	// compared here.
	require.Empty(t, p.diags)
}
