// Package lookahead exposes the selection structure of an executed GraphQL
// query as a navigable tree. Generated trail types hold a *Selection and probe
// it with SelectChild; everything here is nil-receiver-safe so an unselected
// path reads as "nothing selected" all the way down.
package lookahead

import (
	"fmt"

	language "github.com/hanpama/querytrail/internal/language"
)

// Selection is one selected field and the fields selected beneath it. The root
// Selection represents the operation itself and has an empty name.
type Selection struct {
	name     string
	children []*Selection
	index    map[string]int
}

// Name returns the response name of this selection: the alias when the query
// used one, the field name otherwise.
func (s *Selection) Name() string {
	if s == nil {
		return ""
	}
	return s.name
}

// SelectChild returns the child selection with the given response name, or nil
// when that field was not selected. Safe on a nil receiver.
func (s *Selection) SelectChild(name string) *Selection {
	if s == nil {
		return nil
	}
	i, ok := s.index[name]
	if !ok {
		return nil
	}
	return s.children[i]
}

// Children returns the child selections in query order.
func (s *Selection) Children() []*Selection {
	if s == nil {
		return nil
	}
	return s.children
}

func (s *Selection) child(name string) *Selection {
	if i, ok := s.index[name]; ok {
		return s.children[i]
	}
	c := &Selection{name: name, index: map[string]int{}}
	s.index[name] = len(s.children)
	s.children = append(s.children, c)
	return c
}

// Collect parses an executed query and returns the selection tree of the named
// operation. operationName may be empty when the document contains exactly one
// operation.
func Collect(query, operationName string) (*Selection, error) {
	doc, err := language.ParseQuery(query)
	if err != nil {
		return nil, err
	}
	var op *language.OperationDefinition
	if operationName == "" {
		if len(doc.Operations) != 1 {
			return nil, fmt.Errorf("document defines %d operations, operation name required", len(doc.Operations))
		}
		op = doc.Operations[0]
	} else {
		if op = doc.Operations.ForName(operationName); op == nil {
			return nil, fmt.Errorf("operation %q not found", operationName)
		}
	}

	root := &Selection{index: map[string]int{}}
	collect(doc, op.SelectionSet, root, map[string]bool{})
	return root, nil
}

// collect flattens a selection set into parent. visited holds the fragment
// spreads on the current expansion path, breaking spread cycles. Type
// conditions are not narrowed: the tree reflects every field the query could
// select, which is the contract trails are generated against.
func collect(doc *language.QueryDocument, set language.SelectionSet, parent *Selection, visited map[string]bool) {
	for _, selection := range set {
		switch sel := selection.(type) {
		case *language.Field:
			responseName := sel.Alias
			if responseName == "" {
				responseName = sel.Name
			}
			child := parent.child(responseName)
			collect(doc, sel.SelectionSet, child, visited)

		case *language.InlineFragment:
			collect(doc, sel.SelectionSet, parent, visited)

		case *language.FragmentSpread:
			if visited[sel.Name] {
				continue
			}
			visited[sel.Name] = true
			if def := doc.Fragments.ForName(sel.Name); def != nil {
				collect(doc, def.SelectionSet, parent, visited)
			}
			delete(visited, sel.Name)
		}
	}
}
