package diagram

// Layout geometry constants. All coordinates are in canvas units with the
// origin at the top left, so "above" means a smaller y.
const (
	entityStartX   = 80.0
	entitySpacing  = 240.0
	entityRowY     = 320.0
	relationRowY   = 520.0
	bandOffset     = 110.0
	siblingSpacing = 150.0

	entityWidth    = 160.0
	entityHeight   = 60.0
	relationWidth  = 150.0
	relationHeight = 70.0
	attrWidth      = 130.0
	attrHeight     = 45.0
)

// Layout assigns a position and size to every node in the graph. It is a
// pure function of the graph's structural topology: re-running it on an
// unchanged graph produces identical coordinates.
//
// Entities are placed on a single horizontal row at fixed spacing, in node
// order. Each relationship is centered under the arithmetic mean of the
// entities it connects to. Attributes stack above their entity owner or below
// their relationship owner, each sibling group centered on its parent;
// composite children repeat the centering one band further out.
func Layout(g *Graph) {
	// Entity row, strictly increasing x.
	i := 0
	for _, n := range g.Nodes {
		if !n.Type.IsEntity() {
			continue
		}
		n.Rect = rectAt(entityStartX+float64(i)*entitySpacing+entityWidth/2, entityRowY, entityWidth, entityHeight)
		i++
	}

	// Relationship row: x is the mean of the connected entities' centers.
	for _, n := range g.Nodes {
		if !n.Type.IsRelationship() {
			continue
		}
		n.Rect = rectAt(relationshipCenterX(g, n), relationRowY, relationWidth, relationHeight)
	}

	// Attribute bands: above entities, below relationships.
	for _, n := range g.Nodes {
		switch {
		case n.Type.IsEntity():
			layoutChildren(g, n, -1, map[string]bool{n.ID: true})
		case n.Type.IsRelationship():
			layoutChildren(g, n, +1, map[string]bool{n.ID: true})
		}
	}
}

// relationshipCenterX averages the center x of every entity connected to the
// relationship by a relational edge. Relationships with no positioned entity
// yet fall back to the first entity slot.
func relationshipCenterX(g *Graph, rel *Node) float64 {
	sum := 0.0
	count := 0
	for _, e := range g.Edges {
		if !e.IsRelational() {
			continue
		}
		farID := ""
		switch rel.ID {
		case e.Target:
			farID = e.Source
		case e.Source:
			farID = e.Target
		default:
			continue
		}
		if far := g.NodeByID(farID); far != nil && far.Type.IsEntity() {
			sum += far.Rect.CenterX()
			count++
		}
	}
	if count == 0 {
		return entityStartX + entityWidth/2
	}
	return sum / float64(count)
}

// layoutChildren places the owner's attribute nodes one band away in the
// given vertical direction, centered as a group on the owner's x, and recurses
// for composite children one band further. Edited graphs can hold cyclic
// containment edges, so each node is placed at most once.
func layoutChildren(g *Graph, owner *Node, dir float64, visited map[string]bool) {
	var children []*Node
	for _, child := range g.Children(owner.ID) {
		if visited[child.ID] {
			continue
		}
		visited[child.ID] = true
		children = append(children, child)
	}
	if len(children) == 0 {
		return
	}

	centerX := owner.Rect.CenterX()
	y := owner.Rect.Y + dir*bandOffset
	startX := centerX - siblingSpacing*float64(len(children)-1)/2

	for i, child := range children {
		child.Rect = rectAt(startX+float64(i)*siblingSpacing, y, attrWidth, attrHeight)
		layoutChildren(g, child, dir, visited)
	}
}

// rectAt builds a Rect of the given size centered horizontally on cx with its
// top edge at y.
func rectAt(cx, y, w, h float64) Rect {
	return Rect{X: cx - w/2, Y: y, Width: w, Height: h}
}
