// Package codegen generates "query trail" companion types from a GraphQL
// schema document. For every object, interface and union type it emits a pair
// of Go types that let resolver code ask whether a nested field was requested
// by the executed query, without re-walking the raw selection set.
package codegen

import (
	"fmt"
	"go/format"
	"strings"

	language "github.com/hanpama/querytrail/internal/language"
	typemap "github.com/hanpama/querytrail/internal/typemap"
)

type Options struct {
	// PackageName is the package clause of the generated file.
	PackageName string
}

// Generate runs the full trail pass over doc and returns the gofmt'd source
// of the generated file together with the accumulated diagnostic set.
// Diagnostics never abort generation: a best-effort companion type is emitted
// for every definition, and the caller decides what a non-empty set means.
func Generate(doc *language.SchemaDocument, opts Options) ([]byte, []Diagnostic, error) {
	if opts.PackageName == "" {
		opts.PackageName = "querytrails"
	}

	p := newPass(typemap.Build(doc))
	p.genScaffolding(opts.PackageName)
	p.genQueryTrails(doc)

	src, err := format.Source([]byte(p.buf.String()))
	if err != nil {
		return nil, p.diags, fmt.Errorf("formatting generated source: %w", err)
	}
	return src, p.diags, nil
}

// pass owns the output buffer and the append-only diagnostic set. One pass
// instance serves one document; nothing else crosses component boundaries.
type pass struct {
	buf   strings.Builder
	types *typemap.Map
	diags []Diagnostic
	seen  map[Diagnostic]bool
}

func newPass(types *typemap.Map) *pass {
	return &pass{types: types, seen: map[Diagnostic]bool{}}
}

// addDiagnostic appends d unless an identical diagnostic was already recorded.
func (p *pass) addDiagnostic(d Diagnostic) {
	if p.seen[d] {
		return
	}
	p.seen[d] = true
	p.diags = append(p.diags, d)
}
