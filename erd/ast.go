package erd

// Position tracks a source location for error messages.
type Position struct {
	Line   int // 1-based line number
	Column int // 1-based column number
	Offset int // 0-based byte offset into source
}

// EntityKind discriminates strong and weak entities.
type EntityKind string

const (
	EntityStrong EntityKind = "strong"
	EntityWeak   EntityKind = "weak"
)

// AttributeKind is the semantic kind of an attribute.
type AttributeKind string

const (
	AttrSimple      AttributeKind = "simple"
	AttrComposite   AttributeKind = "composite"
	AttrMultivalued AttributeKind = "multivalued"
	AttrDerived     AttributeKind = "derived"
	AttrTyped       AttributeKind = "typed"
)

// KeyRole is the key role an attribute plays in its entity.
type KeyRole string

const (
	KeyPrimary KeyRole = "primary"
	KeyForeign KeyRole = "foreign"
	KeyNone    KeyRole = "none"
)

// Cardinality is the multiplicity of a relationship side.
type Cardinality string

const (
	CardinalityOne  Cardinality = "one"
	CardinalityMany Cardinality = "many"
)

// Participation is the involvement of an entity in a relationship.
type Participation string

const (
	ParticipationTotal   Participation = "total"
	ParticipationPartial Participation = "partial"
)

// RelationshipKind discriminates normal and identifying relationships.
type RelationshipKind string

const (
	RelationshipNormal      RelationshipKind = "normal"
	RelationshipIdentifying RelationshipKind = "identifying"
)

// ForeignKeyRef names an attribute of another entity, e.g. Employee.id.
type ForeignKeyRef struct {
	Entity    string `json:"entity"`
	Attribute string `json:"attribute"`
}

// AttributeNode is a parsed attribute declaration. Children is populated only
// for composite attributes, which own their children exclusively. Ref is set
// only for foreign-key attributes that declared a target.
type AttributeNode struct {
	Name     string           `json:"name"`
	Kind     AttributeKind    `json:"kind"`
	Key      KeyRole          `json:"key"`
	Type     string           `json:"type,omitempty"`
	Ref      *ForeignKeyRef   `json:"ref,omitempty"`
	Children []*AttributeNode `json:"children,omitempty"`
	Pos      Position         `json:"-"`
}

// EntityNode is a parsed entity declaration. IdentifiedBy is populated only
// for weak entities that carry an Identified By clause.
type EntityNode struct {
	Name         string           `json:"name"`
	Kind         EntityKind       `json:"kind"`
	Attributes   []*AttributeNode `json:"attributes"`
	IdentifiedBy []ForeignKeyRef  `json:"identifiedBy,omitempty"`
	Pos          Position         `json:"-"`
}

// RelationshipSide is one end of a relationship.
type RelationshipSide struct {
	Entity        string        `json:"entity"`
	Cardinality   Cardinality   `json:"cardinality"`
	Participation Participation `json:"participation"`
}

// RelationshipNode is a parsed relationship declaration. Identifying
// relationships always bind total participation on both sides; the parser
// enforces this and it is not independently settable.
type RelationshipNode struct {
	Name       string              `json:"name"`
	Kind       RelationshipKind    `json:"kind"`
	Sides      [2]RelationshipSide `json:"sides"`
	Attributes []*AttributeNode    `json:"attributes,omitempty"`
	Pos        Position            `json:"-"`
}

// Document is the complete parsed representation of an ERD source file.
// A Document is produced fresh per parse call and is immutable once built.
type Document struct {
	Entities      []*EntityNode       `json:"entities"`
	Relationships []*RelationshipNode `json:"relationships"`
}

// EntityByName returns the entity with the given name, or nil if not found.
func (d *Document) EntityByName(name string) *EntityNode {
	for _, e := range d.Entities {
		if e.Name == name {
			return e
		}
	}
	return nil
}

// RelationshipsWith returns all relationships that have the given entity on
// either side.
func (d *Document) RelationshipsWith(entity string) []*RelationshipNode {
	var result []*RelationshipNode
	for _, r := range d.Relationships {
		if r.Sides[0].Entity == entity || r.Sides[1].Entity == entity {
			result = append(result, r)
		}
	}
	return result
}
