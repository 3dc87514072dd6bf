package diagram

import "github.com/momenmotaz/ergo/erd"

// NodeType is the closed discriminant for diagram node classification.
// Consumers must compare against these values by equality.
type NodeType string

const (
	NodeEntity                  NodeType = "entity"
	NodeWeakEntity              NodeType = "weak-entity"
	NodeRelationship            NodeType = "relationship"
	NodeIdentifyingRelationship NodeType = "identifying-relationship"
	NodeAttribute               NodeType = "attribute"
)

// IsEntity reports whether the type tags an entity vertex.
func (t NodeType) IsEntity() bool {
	return t == NodeEntity || t == NodeWeakEntity
}

// IsRelationship reports whether the type tags a relationship vertex.
func (t NodeType) IsRelationship() bool {
	return t == NodeRelationship || t == NodeIdentifyingRelationship
}

// Rect is a mutable 2-D rectangle: position plus size. The layout engine
// fills it in; the external renderer owns it afterwards.
type Rect struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// CenterX returns the horizontal center of the rectangle.
func (r Rect) CenterX() float64 { return r.X + r.Width/2 }

// Node is a materialized diagram vertex for an entity, relationship, or
// attribute. Parent records ownership (an attribute's owning node), not
// rendering nesting.
type Node struct {
	ID           string              `json:"id"`
	Type         NodeType            `json:"type"`
	Label        string              `json:"label"`
	Parent       string              `json:"parent,omitempty"`
	AttrKind     erd.AttributeKind   `json:"attrKind,omitempty"`
	DataType     string              `json:"dataType,omitempty"`
	PrimaryKey   bool                `json:"primaryKey,omitempty"`
	ForeignKey   bool                `json:"foreignKey,omitempty"`
	Ref          *erd.ForeignKeyRef  `json:"ref,omitempty"`
	IdentifiedBy []erd.ForeignKeyRef `json:"identifiedBy,omitempty"`
	Rect         Rect                `json:"rect"`
}

// EdgeKind is the explicit tagged variant for edge classification.
type EdgeKind string

const (
	// EdgeContainment denotes "target is an attribute of source".
	EdgeContainment EdgeKind = "containment"
	// EdgeRelational denotes "source entity participates in target relationship".
	EdgeRelational EdgeKind = "relational"
)

// Edge is a directed diagram link. Cardinality and Participation are set only
// on relational edges.
type Edge struct {
	ID            string            `json:"id"`
	Kind          EdgeKind          `json:"kind,omitempty"`
	Source        string            `json:"source"`
	Target        string            `json:"target"`
	Cardinality   erd.Cardinality   `json:"cardinality,omitempty"`
	Participation erd.Participation `json:"participation,omitempty"`
}

// IsRelational classifies the edge. The explicit Kind tag wins when present;
// for graphs that passed through editors which drop unknown fields, presence
// of a cardinality or participation value marks the edge relational.
func (e *Edge) IsRelational() bool {
	switch e.Kind {
	case EdgeRelational:
		return true
	case EdgeContainment:
		return false
	}
	return e.Cardinality != "" || e.Participation != ""
}

// Graph is the complete diagram representation handed to the renderer.
type Graph struct {
	Nodes []*Node `json:"nodes"`
	Edges []*Edge `json:"edges"`
}

// NodeByID returns the node with the given ID, or nil if not found.
func (g *Graph) NodeByID(id string) *Node {
	for _, n := range g.Nodes {
		if n.ID == id {
			return n
		}
	}
	return nil
}

// EdgesFrom returns all edges originating from the given node ID.
func (g *Graph) EdgesFrom(id string) []*Edge {
	var result []*Edge
	for _, e := range g.Edges {
		if e.Source == id {
			result = append(result, e)
		}
	}
	return result
}

// EdgesTo returns all edges targeting the given node ID.
func (g *Graph) EdgesTo(id string) []*Edge {
	var result []*Edge
	for _, e := range g.Edges {
		if e.Target == id {
			result = append(result, e)
		}
	}
	return result
}

// Children returns the attribute nodes owned by the given node, following
// containment edges in declaration order.
func (g *Graph) Children(id string) []*Node {
	var result []*Node
	for _, e := range g.Edges {
		if e.Source != id || e.IsRelational() {
			continue
		}
		if child := g.NodeByID(e.Target); child != nil {
			result = append(result, child)
		}
	}
	return result
}
