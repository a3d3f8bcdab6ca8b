package codegen

import "fmt"

// genScaffolding emits the file header and the shared block every generated
// file carries: the runtime import and the root entry point turning a live
// look-ahead selection into a walked trail of a caller-chosen type.
func (p *pass) genScaffolding(packageName string) {
	fmt.Fprintf(&p.buf, "// Code generated by querytrail. DO NOT EDIT.\n\npackage %s\n\n", packageName)

	p.buf.WriteString(`import (
	lookahead "github.com/hanpama/querytrail/lookahead"
)

// queryTrailBinder matches the pointer form of any walked trail type, so the
// root entry point can construct one without knowing it by name.
type queryTrailBinder[T any] interface {
	*T
	bindLookAhead(la *lookahead.Selection)
}

// MakeQueryTrail adapts a live look-ahead selection into a walked trail of
// the chosen trail type:
//
//	trail := MakeQueryTrail[UserQueryTrail](selection)
func MakeQueryTrail[T any, PT queryTrailBinder[T]](la *lookahead.Selection) T {
	var t T
	PT(&t).bindLookAhead(la)
	return t
}
`)
}
