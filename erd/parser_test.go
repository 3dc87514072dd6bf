package erd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEmptyDocument(t *testing.T) {
	doc, err := Parse([]byte(""))
	require.NoError(t, err)
	assert.Empty(t, doc.Entities)
	assert.Empty(t, doc.Relationships)
}

func TestParseSimpleEntity(t *testing.T) {
	src := `
Entity Employee:
  id PK
  name
  salary: decimal
`
	doc, err := Parse([]byte(src))
	require.NoError(t, err)
	require.Len(t, doc.Entities, 1)

	e := doc.Entities[0]
	assert.Equal(t, "Employee", e.Name)
	assert.Equal(t, EntityStrong, e.Kind)
	require.Len(t, e.Attributes, 3)

	assert.Equal(t, "id", e.Attributes[0].Name)
	assert.Equal(t, KeyPrimary, e.Attributes[0].Key)
	assert.Equal(t, AttrSimple, e.Attributes[0].Kind)

	assert.Equal(t, "name", e.Attributes[1].Name)
	assert.Equal(t, KeyNone, e.Attributes[1].Key)
	assert.Equal(t, AttrSimple, e.Attributes[1].Kind)

	assert.Equal(t, "salary", e.Attributes[2].Name)
	assert.Equal(t, AttrTyped, e.Attributes[2].Kind)
	assert.Equal(t, "decimal", e.Attributes[2].Type)
}

func TestParseAttributeKinds(t *testing.T) {
	src := `
Entity Person:
  phones Multivalued
  age Derived
  address Composite:
    street
    city
`
	doc, err := Parse([]byte(src))
	require.NoError(t, err)
	require.Len(t, doc.Entities, 1)

	attrs := doc.Entities[0].Attributes
	require.Len(t, attrs, 3)

	assert.Equal(t, AttrMultivalued, attrs[0].Kind)
	assert.Equal(t, AttrDerived, attrs[1].Kind)

	comp := attrs[2]
	assert.Equal(t, AttrComposite, comp.Kind)
	require.Len(t, comp.Children, 2)
	assert.Equal(t, "street", comp.Children[0].Name)
	assert.Equal(t, "city", comp.Children[1].Name)
	assert.Equal(t, AttrSimple, comp.Children[0].Kind)
}

func TestParseForeignKeyWithTarget(t *testing.T) {
	src := `
Entity Employee:
  dept_id FK -> Department.id
`
	doc, err := Parse([]byte(src))
	require.NoError(t, err)

	attr := doc.Entities[0].Attributes[0]
	assert.Equal(t, KeyForeign, attr.Key)
	require.NotNil(t, attr.Ref)
	assert.Equal(t, "Department", attr.Ref.Entity)
	assert.Equal(t, "id", attr.Ref.Attribute)
}

func TestParseForeignKeyWithoutTarget(t *testing.T) {
	// The arrow is optional in the grammar; the lint pass reports the gap.
	src := `
Entity Employee:
  dept_id FK
  name
`
	doc, err := Parse([]byte(src))
	require.NoError(t, err)

	attrs := doc.Entities[0].Attributes
	require.Len(t, attrs, 2)
	assert.Equal(t, KeyForeign, attrs[0].Key)
	assert.Nil(t, attrs[0].Ref)
	assert.Equal(t, "name", attrs[1].Name)
}

func TestParseCompositeStopsBeforeModifiedSibling(t *testing.T) {
	src := `
Entity Person:
  address Composite:
    street
    city
  email: string
  nickname PK
`
	doc, err := Parse([]byte(src))
	require.NoError(t, err)

	attrs := doc.Entities[0].Attributes
	require.Len(t, attrs, 3)
	assert.Equal(t, "address", attrs[0].Name)
	require.Len(t, attrs[0].Children, 2)
	assert.Equal(t, "email", attrs[1].Name)
	assert.Equal(t, "nickname", attrs[2].Name)
}

func TestParseCompositeStopsAtDeclarationKeyword(t *testing.T) {
	src := `
Entity Person:
  address Composite:
    street
    city
Entity Company:
  id PK
`
	doc, err := Parse([]byte(src))
	require.NoError(t, err)
	require.Len(t, doc.Entities, 2)

	comp := doc.Entities[0].Attributes[0]
	require.Len(t, comp.Children, 2)
	assert.Equal(t, "city", comp.Children[1].Name)
	assert.Equal(t, "Company", doc.Entities[1].Name)
}

func TestParseCompositeStopsAtIdentified(t *testing.T) {
	src := `
Weak Entity Dependent:
  key Composite:
    first
    last
  Identified By Employee.id
`
	doc, err := Parse([]byte(src))
	require.NoError(t, err)

	e := doc.Entities[0]
	require.Len(t, e.Attributes, 1)
	require.Len(t, e.Attributes[0].Children, 2)
	require.Len(t, e.IdentifiedBy, 1)
	assert.Equal(t, ForeignKeyRef{Entity: "Employee", Attribute: "id"}, e.IdentifiedBy[0])
}

func TestParseCompositeRequiresChildren(t *testing.T) {
	src := `
Entity Person:
  address Composite:
Entity Next:
`
	_, err := Parse([]byte(src))
	require.Error(t, err)
	var synErr *SyntaxError
	require.ErrorAs(t, err, &synErr)
	assert.Contains(t, synErr.Expected, "sub-attribute")
}

func TestParseWeakEntity(t *testing.T) {
	src := `
Weak Entity Dependent:
  name
  birthdate: date
  Identified By Employee.id + Dependent.name
`
	doc, err := Parse([]byte(src))
	require.NoError(t, err)

	e := doc.Entities[0]
	assert.Equal(t, EntityWeak, e.Kind)
	require.Len(t, e.IdentifiedBy, 2)
	assert.Equal(t, ForeignKeyRef{Entity: "Employee", Attribute: "id"}, e.IdentifiedBy[0])
	assert.Equal(t, ForeignKeyRef{Entity: "Dependent", Attribute: "name"}, e.IdentifiedBy[1])
}

func TestParseWeakEntityWithoutIdentifiedBy(t *testing.T) {
	// Parses successfully with an empty identifier list; the lint pass warns.
	doc, err := Parse([]byte("Weak Entity Dependent:\n  name\n"))
	require.NoError(t, err)

	e := doc.Entities[0]
	assert.Equal(t, EntityWeak, e.Kind)
	assert.Empty(t, e.IdentifiedBy)
}

func TestParseRelation(t *testing.T) {
	src := `Relation Employee (M, total) -- (1, partial) Department: works_in`
	doc, err := Parse([]byte(src))
	require.NoError(t, err)
	require.Len(t, doc.Relationships, 1)

	r := doc.Relationships[0]
	assert.Equal(t, "works_in", r.Name)
	assert.Equal(t, RelationshipNormal, r.Kind)

	assert.Equal(t, "Employee", r.Sides[0].Entity)
	assert.Equal(t, CardinalityMany, r.Sides[0].Cardinality)
	assert.Equal(t, ParticipationTotal, r.Sides[0].Participation)

	assert.Equal(t, "Department", r.Sides[1].Entity)
	assert.Equal(t, CardinalityOne, r.Sides[1].Cardinality)
	assert.Equal(t, ParticipationPartial, r.Sides[1].Participation)
}

func TestParseRelationDefaultParticipation(t *testing.T) {
	doc, err := Parse([]byte(`Relation A (1) -- (M) B: owns`))
	require.NoError(t, err)

	r := doc.Relationships[0]
	assert.Equal(t, ParticipationPartial, r.Sides[0].Participation)
	assert.Equal(t, ParticipationPartial, r.Sides[1].Participation)
}

func TestParseRelationEmDash(t *testing.T) {
	doc, err := Parse([]byte(`Relation A (1) — (M) B: owns`))
	require.NoError(t, err)
	require.Len(t, doc.Relationships, 1)
}

func TestParseRelationWithAttributes(t *testing.T) {
	src := `
Relation Employee (M) -- (M) Project: works_on
  since: date
  hours
`
	doc, err := Parse([]byte(src))
	require.NoError(t, err)

	r := doc.Relationships[0]
	require.Len(t, r.Attributes, 2)
	assert.Equal(t, "since", r.Attributes[0].Name)
	assert.Equal(t, AttrTyped, r.Attributes[0].Kind)
	assert.Equal(t, "hours", r.Attributes[1].Name)
}

func TestParseIdentifyingRelation(t *testing.T) {
	doc, err := Parse([]byte(`Identifying Relation Employee (1) -- (M) Dependent: supports`))
	require.NoError(t, err)

	r := doc.Relationships[0]
	assert.Equal(t, RelationshipIdentifying, r.Kind)
	assert.Equal(t, "supports", r.Name)
	// Identifying relationships always bind two totals.
	assert.Equal(t, ParticipationTotal, r.Sides[0].Participation)
	assert.Equal(t, ParticipationTotal, r.Sides[1].Participation)
	assert.Equal(t, CardinalityOne, r.Sides[0].Cardinality)
	assert.Equal(t, CardinalityMany, r.Sides[1].Cardinality)
}

func TestParseBadCardinality(t *testing.T) {
	_, err := Parse([]byte(`Relation A (2) -- (M) B: owns`))
	require.Error(t, err)
	var synErr *SyntaxError
	require.ErrorAs(t, err, &synErr)
	assert.Contains(t, synErr.Expected, "cardinality")
	assert.Contains(t, err.Error(), "cardinality")
}

func TestParseBadParticipation(t *testing.T) {
	_, err := Parse([]byte(`Relation A (1, sometimes) -- (M) B: owns`))
	require.Error(t, err)
	var synErr *SyntaxError
	require.ErrorAs(t, err, &synErr)
	assert.Contains(t, synErr.Expected, "participation")
}

func TestParseSyntaxErrorCarriesPosition(t *testing.T) {
	_, err := Parse([]byte("Entity Employee\n  id PK\n"))
	require.Error(t, err)
	var synErr *SyntaxError
	require.ErrorAs(t, err, &synErr)
	assert.Equal(t, 2, synErr.Pos.Line)
	assert.Contains(t, err.Error(), "line 2")
}

func TestParseIsAtomic(t *testing.T) {
	// A mismatch after valid declarations still yields no document at all.
	src := `
Entity Good:
  id PK
Relation Good (X) -- (1) Bad: broken
`
	doc, err := Parse([]byte(src))
	require.Error(t, err)
	assert.Nil(t, doc)
}

func TestParseSkipsUnknownTopLevelTokens(t *testing.T) {
	src := `
42 + stray tokens
Entity Employee:
  id PK
`
	doc, err := Parse([]byte(src))
	require.NoError(t, err)
	require.Len(t, doc.Entities, 1)
	assert.Equal(t, "Employee", doc.Entities[0].Name)
}

func TestParseComments(t *testing.T) {
	src := `
# company schema
Entity Employee: # inline trailer
  id PK # the key
`
	doc, err := Parse([]byte(src))
	require.NoError(t, err)
	require.Len(t, doc.Entities, 1)
	require.Len(t, doc.Entities[0].Attributes, 1)
}

const endToEndSource = `
# Company schema exercised end to end.

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

Relation Project (M) — (1) Client: funded_by
  since: date

Identifying Relation Employee (1) -- (M) Dependent: supports
`

func TestParseEndToEndScenario(t *testing.T) {
	doc, err := Parse([]byte(endToEndSource))
	require.NoError(t, err)

	require.Len(t, doc.Entities, 5)
	require.Len(t, doc.Relationships, 3)

	weak := doc.EntityByName("Dependent")
	require.NotNil(t, weak)
	assert.Equal(t, EntityWeak, weak.Kind)
	assert.Len(t, weak.IdentifiedBy, 2)

	identifying := 0
	for _, r := range doc.Relationships {
		if r.Kind == RelationshipIdentifying {
			identifying++
		}
	}
	assert.Equal(t, 1, identifying)

	assert.Len(t, doc.RelationshipsWith("Employee"), 2)
}
