package diagram

import (
	"fmt"

	"github.com/momenmotaz/ergo/erd"
)

// allocator hands out monotonic node and edge identifiers. Each transform
// invocation owns its own allocator, so concurrent or repeated transforms do
// not interfere, and the same input always yields the same IDs.
type allocator struct {
	node int
	edge int
}

func (a *allocator) nodeID() string {
	a.node++
	return fmt.Sprintf("n%d", a.node)
}

func (a *allocator) edgeID() string {
	a.edge++
	return fmt.Sprintf("e%d", a.edge)
}

// FromDocument expands a parsed Document into a diagram Graph: one node per
// entity, relationship, and attribute (recursively for composites), one
// containment edge per attribute, and one relational edge per relationship
// side. The expansion is a single pass in document order and is deterministic.
//
// Positions are left zeroed; run Layout to seed them.
func FromDocument(doc *erd.Document) *Graph {
	b := &builder{
		ids:      &allocator{},
		graph:    &Graph{},
		entities: make(map[string]string),
	}

	for _, e := range doc.Entities {
		b.addEntity(e)
	}
	for _, r := range doc.Relationships {
		b.addRelationship(r)
	}

	return b.graph
}

type builder struct {
	ids      *allocator
	graph    *Graph
	entities map[string]string // entity name -> node ID
}

func (b *builder) addEntity(e *erd.EntityNode) {
	typ := NodeEntity
	if e.Kind == erd.EntityWeak {
		typ = NodeWeakEntity
	}

	node := &Node{
		ID:           b.ids.nodeID(),
		Type:         typ,
		Label:        e.Name,
		IdentifiedBy: e.IdentifiedBy,
	}
	b.graph.Nodes = append(b.graph.Nodes, node)
	b.entities[e.Name] = node.ID

	for _, a := range e.Attributes {
		b.addAttribute(node.ID, a)
	}
}

func (b *builder) addAttribute(ownerID string, a *erd.AttributeNode) {
	node := &Node{
		ID:         b.ids.nodeID(),
		Type:       NodeAttribute,
		Label:      a.Name,
		Parent:     ownerID,
		AttrKind:   a.Kind,
		DataType:   a.Type,
		PrimaryKey: a.Key == erd.KeyPrimary,
		ForeignKey: a.Key == erd.KeyForeign,
		Ref:        a.Ref,
	}
	b.graph.Nodes = append(b.graph.Nodes, node)

	b.graph.Edges = append(b.graph.Edges, &Edge{
		ID:     b.ids.edgeID(),
		Kind:   EdgeContainment,
		Source: ownerID,
		Target: node.ID,
	})

	for _, child := range a.Children {
		b.addAttribute(node.ID, child)
	}
}

func (b *builder) addRelationship(r *erd.RelationshipNode) {
	typ := NodeRelationship
	if r.Kind == erd.RelationshipIdentifying {
		typ = NodeIdentifyingRelationship
	}

	node := &Node{
		ID:    b.ids.nodeID(),
		Type:  typ,
		Label: r.Name,
	}
	b.graph.Nodes = append(b.graph.Nodes, node)

	for _, a := range r.Attributes {
		b.addAttribute(node.ID, a)
	}

	for _, side := range r.Sides {
		b.graph.Edges = append(b.graph.Edges, &Edge{
			ID:            b.ids.edgeID(),
			Kind:          EdgeRelational,
			Source:        b.ensureEntity(side.Entity),
			Target:        node.ID,
			Cardinality:   side.Cardinality,
			Participation: side.Participation,
		})
	}
}

// ensureEntity returns the node ID for an entity name, materializing a node
// for sides that reference an entity the document never declared. The lint
// pass flags such references; the transform keeps the graph connected.
func (b *builder) ensureEntity(name string) string {
	if id, ok := b.entities[name]; ok {
		return id
	}
	node := &Node{
		ID:    b.ids.nodeID(),
		Type:  NodeEntity,
		Label: name,
	}
	b.graph.Nodes = append(b.graph.Nodes, node)
	b.entities[name] = node.ID
	return node.ID
}
