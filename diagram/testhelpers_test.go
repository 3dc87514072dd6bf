package diagram

import (
	"testing"

	"github.com/momenmotaz/ergo/erd"
	"github.com/stretchr/testify/require"
)

// companySource is the end-to-end scenario: 5 entities (one weak, identified
// by a two-attribute composite key) and 3 relationships (one identifying).
const companySource = `
Entity Employee:
  id PK
  name: string
  address Composite:
    street
    city
  phones Multivalued
  age Derived

Entity Department:
  id PK
  name

Entity Project:
  id PK
  budget: decimal

Entity Client:
  id PK

Weak Entity Dependent:
  name
  birthdate: date
  Identified By Employee.id + Dependent.name

Relation Employee (M, total) -- (1, partial) Department: works_in

Relation Project (M) -- (1) Client: funded_by
  since: date

Identifying Relation Employee (1) -- (M) Dependent: supports
`

func mustParse(t *testing.T, src string) *erd.Document {
	t.Helper()
	doc, err := erd.Parse([]byte(src))
	require.NoError(t, err)
	return doc
}

func nodesOfType(g *Graph, typ NodeType) []*Node {
	var result []*Node
	for _, n := range g.Nodes {
		if n.Type == typ {
			result = append(result, n)
		}
	}
	return result
}

func nodeByLabel(g *Graph, label string) *Node {
	for _, n := range g.Nodes {
		if n.Label == label {
			return n
		}
	}
	return nil
}
