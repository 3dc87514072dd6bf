package diagram

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayoutIsDeterministic(t *testing.T) {
	doc := mustParse(t, companySource)

	first := FromDocument(doc)
	Layout(first)

	second := FromDocument(doc)
	Layout(second)
	// A second run on an identical graph, and a rerun on the same graph,
	// produce identical coordinates.
	assert.Equal(t, first, second)

	Layout(second)
	assert.Equal(t, first, second)
}

func TestLayoutEntityRow(t *testing.T) {
	doc := mustParse(t, companySource)
	g := FromDocument(doc)
	Layout(g)

	var prev float64
	count := 0
	for _, n := range g.Nodes {
		if !n.Type.IsEntity() {
			continue
		}
		assert.Equal(t, entityRowY, n.Rect.Y, "entity %s", n.Label)
		if count > 0 {
			assert.Equal(t, entitySpacing, n.Rect.X-prev, "entity %s", n.Label)
		}
		prev = n.Rect.X
		count++
	}
	assert.Equal(t, 5, count)
}

func TestLayoutRelationshipCenteredOnItsEntities(t *testing.T) {
	doc := mustParse(t, companySource)
	g := FromDocument(doc)
	Layout(g)

	employee := nodeByLabel(g, "Employee")
	department := nodeByLabel(g, "Department")
	worksIn := nodeByLabel(g, "works_in")

	wantX := (employee.Rect.CenterX() + department.Rect.CenterX()) / 2
	assert.Equal(t, wantX, worksIn.Rect.CenterX())
	assert.Equal(t, relationRowY, worksIn.Rect.Y)
}

func TestLayoutUnconnectedRelationshipFallsBack(t *testing.T) {
	g := &Graph{
		Nodes: []*Node{{ID: "n1", Type: NodeRelationship, Label: "orphan"}},
	}
	Layout(g)
	assert.Equal(t, entityStartX+entityWidth/2, g.Nodes[0].Rect.CenterX())
}

func TestLayoutAttributeBands(t *testing.T) {
	doc := mustParse(t, companySource)
	g := FromDocument(doc)
	Layout(g)

	employee := nodeByLabel(g, "Employee")
	for _, child := range g.Children(employee.ID) {
		assert.Equal(t, entityRowY-bandOffset, child.Rect.Y, "attribute %s", child.Label)
	}

	fundedBy := nodeByLabel(g, "funded_by")
	for _, child := range g.Children(fundedBy.ID) {
		assert.Equal(t, relationRowY+bandOffset, child.Rect.Y, "attribute %s", child.Label)
	}
}

func TestLayoutSiblingGroupCenteredOnParent(t *testing.T) {
	doc := mustParse(t, companySource)
	g := FromDocument(doc)
	Layout(g)

	employee := nodeByLabel(g, "Employee")
	children := g.Children(employee.ID)
	require.Len(t, children, 5)

	sum := 0.0
	for i, child := range children {
		sum += child.Rect.CenterX()
		if i > 0 {
			assert.Equal(t, siblingSpacing, child.Rect.CenterX()-children[i-1].Rect.CenterX())
		}
	}
	assert.InDelta(t, employee.Rect.CenterX(), sum/float64(len(children)), 1e-9)
}

func TestLayoutCompositeChildrenOneBandFurther(t *testing.T) {
	doc := mustParse(t, companySource)
	g := FromDocument(doc)
	Layout(g)

	address := nodeByLabel(g, "address")
	nested := g.Children(address.ID)
	require.Len(t, nested, 2)

	for _, child := range nested {
		assert.Equal(t, entityRowY-2*bandOffset, child.Rect.Y, "sub-attribute %s", child.Label)
	}

	sum := 0.0
	for _, child := range nested {
		sum += child.Rect.CenterX()
	}
	assert.InDelta(t, address.Rect.CenterX(), sum/float64(len(nested)), 1e-9)
}

func TestLayoutPlacesCyclicContainmentOnce(t *testing.T) {
	// An editor wired two attributes into a containment loop; every node still
	// gets exactly one position.
	g := &Graph{
		Nodes: []*Node{
			{ID: "n1", Type: NodeEntity, Label: "A"},
			{ID: "n2", Type: NodeAttribute, Label: "x"},
			{ID: "n3", Type: NodeAttribute, Label: "y"},
		},
		Edges: []*Edge{
			{ID: "e1", Kind: EdgeContainment, Source: "n1", Target: "n2"},
			{ID: "e2", Kind: EdgeContainment, Source: "n2", Target: "n3"},
			{ID: "e3", Kind: EdgeContainment, Source: "n3", Target: "n2"},
		},
	}
	Layout(g)

	assert.Equal(t, entityRowY-bandOffset, g.Nodes[1].Rect.Y)
	assert.Equal(t, entityRowY-2*bandOffset, g.Nodes[2].Rect.Y)
}

func TestLayoutAssignsSizes(t *testing.T) {
	doc := mustParse(t, companySource)
	g := FromDocument(doc)
	Layout(g)

	for _, n := range g.Nodes {
		assert.Positive(t, n.Rect.Width, "node %s", n.Label)
		assert.Positive(t, n.Rect.Height, "node %s", n.Label)
	}
	assert.Equal(t, entityWidth, nodeByLabel(g, "Employee").Rect.Width)
	assert.Equal(t, relationWidth, nodeByLabel(g, "works_in").Rect.Width)
	assert.Equal(t, attrWidth, nodeByLabel(g, "street").Rect.Width)
}
