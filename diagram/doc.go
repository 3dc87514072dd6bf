// Package diagram turns parsed ERD documents into positioned node/edge graphs
// for visual rendering, and back again after external edits.
//
// The forward transform (FromDocument) is a deterministic single-pass
// expansion: every entity, relationship, and attribute becomes a typed Node,
// attribute ownership becomes a containment Edge, and every relationship side
// becomes a relational Edge carrying cardinality and participation. Layout
// then seeds each node's rectangle; afterwards the external renderer owns and
// mutates the graph.
//
// The reverse transform (ToDocument) re-derives a document snapshot from the
// graph's current state on demand. It tolerates arbitrary external edits:
// missing relationship sides and absent cardinality or participation values
// fall back to documented defaults, each reported as a Warning rather than an
// error, so the editor state is always representable.
package diagram
