package diagram

import (
	"fmt"

	"github.com/momenmotaz/ergo/erd"
)

// Warning reports a structural default applied while reconstructing a
// document from an externally edited graph. Defaults are deliberate leniency,
// not errors: the reconstruction always succeeds, and warnings let callers
// surface the spots where edits may have lost information.
type Warning struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	NodeID  string `json:"nodeId,omitempty"`
}

func (w Warning) String() string {
	if w.NodeID != "" {
		return fmt.Sprintf("%s: %s (node: %s)", w.Code, w.Message, w.NodeID)
	}
	return fmt.Sprintf("%s: %s", w.Code, w.Message)
}

// ToDocument reconstructs an AST-equivalent Document from a diagram Graph
// whose nodes and edges may have been added, moved, relabeled, or deleted by
// the external renderer. It never fails: missing relationship sides and
// absent cardinality or participation values fall back to documented defaults
// (empty entity, one, partial), each reported as a Warning.
func ToDocument(g *Graph) (*erd.Document, []Warning) {
	r := &restorer{graph: g}

	doc := &erd.Document{}
	for _, n := range g.Nodes {
		switch {
		case n.Type.IsEntity():
			doc.Entities = append(doc.Entities, r.restoreEntity(n))
		case n.Type.IsRelationship():
			doc.Relationships = append(doc.Relationships, r.restoreRelationship(n))
		}
	}

	return doc, r.warnings
}

type restorer struct {
	graph    *Graph
	warnings []Warning
}

func (r *restorer) warnf(code, nodeID, format string, args ...any) {
	r.warnings = append(r.warnings, Warning{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		NodeID:  nodeID,
	})
}

func (r *restorer) restoreEntity(n *Node) *erd.EntityNode {
	kind := erd.EntityStrong
	if n.Type == NodeWeakEntity {
		kind = erd.EntityWeak
	}
	return &erd.EntityNode{
		Name:         n.Label,
		Kind:         kind,
		Attributes:   r.restoreAttributes(n),
		IdentifiedBy: n.IdentifiedBy,
	}
}

func (r *restorer) restoreRelationship(n *Node) *erd.RelationshipNode {
	kind := erd.RelationshipNormal
	if n.Type == NodeIdentifyingRelationship {
		kind = erd.RelationshipIdentifying
	}

	rel := &erd.RelationshipNode{
		Name:       n.Label,
		Kind:       kind,
		Attributes: r.restoreAttributes(n),
	}

	// Sides are recovered from relational edges incident to the relationship
	// node; the far endpoint supplies the entity.
	filled := 0
	for _, e := range r.graph.Edges {
		if !e.IsRelational() {
			continue
		}
		farID := ""
		switch n.ID {
		case e.Target:
			farID = e.Source
		case e.Source:
			farID = e.Target
		default:
			continue
		}

		if filled == len(rel.Sides) {
			r.warnf("duplicate_side", n.ID, "relationship %q has more than two relational edges; extra edge %s ignored", n.Label, e.ID)
			continue
		}
		rel.Sides[filled] = r.restoreSide(n, e, farID)
		filled++
	}

	for ; filled < len(rel.Sides); filled++ {
		r.warnf("missing_side", n.ID, "relationship %q has no relational edge for side %d; defaulting to an empty entity reference", n.Label, filled+1)
		rel.Sides[filled] = erd.RelationshipSide{
			Cardinality:   erd.CardinalityOne,
			Participation: defaultParticipation(kind),
		}
	}

	return rel
}

func (r *restorer) restoreSide(n *Node, e *Edge, farID string) erd.RelationshipSide {
	side := erd.RelationshipSide{
		Cardinality:   e.Cardinality,
		Participation: e.Participation,
	}

	if far := r.graph.NodeByID(farID); far != nil {
		side.Entity = far.Label
	} else {
		r.warnf("missing_side_entity", n.ID, "relational edge %s of relationship %q points at a node that no longer exists", e.ID, n.Label)
	}

	if side.Cardinality == "" {
		side.Cardinality = erd.CardinalityOne
		r.warnf("default_cardinality", n.ID, "relational edge %s of relationship %q carries no cardinality; defaulting to one", e.ID, n.Label)
	}
	if side.Participation == "" {
		side.Participation = erd.ParticipationPartial
		if n.Type != NodeIdentifyingRelationship {
			r.warnf("default_participation", n.ID, "relational edge %s of relationship %q carries no participation; defaulting to partial", e.ID, n.Label)
		}
	}
	// Identifying relationships bind two totals regardless of edge values.
	if n.Type == NodeIdentifyingRelationship {
		side.Participation = erd.ParticipationTotal
	}

	return side
}

func defaultParticipation(kind erd.RelationshipKind) erd.Participation {
	if kind == erd.RelationshipIdentifying {
		return erd.ParticipationTotal
	}
	return erd.ParticipationPartial
}

// restoreAttributes walks containment edges from an owner node, rebuilding
// the attribute list recursively for composites. Edited graphs can wire
// containment edges into a cycle; the walk visits each node at most once and
// reports the edge that would close a loop.
func (r *restorer) restoreAttributes(owner *Node) []*erd.AttributeNode {
	return r.restoreAttributeList(owner, map[string]bool{owner.ID: true})
}

func (r *restorer) restoreAttributeList(owner *Node, visited map[string]bool) []*erd.AttributeNode {
	var attrs []*erd.AttributeNode
	for _, child := range r.graph.Children(owner.ID) {
		if visited[child.ID] {
			r.warnf("containment_cycle", child.ID, "containment edges reach node %q more than once; the repeated edge from %q is ignored", child.Label, owner.Label)
			continue
		}
		visited[child.ID] = true
		attrs = append(attrs, r.restoreAttribute(child, visited))
	}
	return attrs
}

func (r *restorer) restoreAttribute(n *Node, visited map[string]bool) *erd.AttributeNode {
	attr := &erd.AttributeNode{
		Name: n.Label,
		Kind: n.AttrKind,
		Key:  erd.KeyNone,
		Type: n.DataType,
		Ref:  n.Ref,
	}
	if attr.Kind == "" {
		attr.Kind = erd.AttrSimple
	}
	switch {
	case n.PrimaryKey:
		attr.Key = erd.KeyPrimary
	case n.ForeignKey:
		attr.Key = erd.KeyForeign
	}

	attr.Children = r.restoreAttributeList(n, visited)
	// An editor may attach children without retagging the kind; children make
	// the attribute composite by construction.
	if len(attr.Children) > 0 {
		attr.Kind = erd.AttrComposite
	}

	return attr
}
