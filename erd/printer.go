package erd

import (
	"fmt"
	"strings"
)

// Print renders a Document back to canonical ERD source text. It is the
// inverse in spirit of Parse: the output is not guaranteed byte-identical to
// the original source, but parsing it yields a structurally equal Document
// (with participation normalized to its explicit default where omitted).
//
// That guarantee holds for any Document produced by Parse. Documents built by
// hand or reconstructed from an edited diagram can hold one shape the grammar
// cannot spell: a bare simple attribute placed directly after a composite
// sibling prints on the same footing as the composite's children, so
// reparsing absorbs it into the composite.
func Print(doc *Document) string {
	var sb strings.Builder

	var blocks []string
	for _, e := range doc.Entities {
		blocks = append(blocks, printEntity(e))
	}
	for _, r := range doc.Relationships {
		blocks = append(blocks, printRelationship(r))
	}

	sb.WriteString(strings.Join(blocks, "\n"))
	return sb.String()
}

func printEntity(e *EntityNode) string {
	var sb strings.Builder

	if e.Kind == EntityWeak {
		fmt.Fprintf(&sb, "Weak Entity %s:\n", e.Name)
	} else {
		fmt.Fprintf(&sb, "Entity %s:\n", e.Name)
	}

	for _, a := range e.Attributes {
		printAttribute(&sb, a, 1)
	}

	if len(e.IdentifiedBy) > 0 {
		refs := make([]string, len(e.IdentifiedBy))
		for i, ref := range e.IdentifiedBy {
			refs[i] = fmt.Sprintf("%s.%s", ref.Entity, ref.Attribute)
		}
		fmt.Fprintf(&sb, "  Identified By %s\n", strings.Join(refs, " + "))
	}

	return sb.String()
}

func printRelationship(r *RelationshipNode) string {
	var sb strings.Builder

	if r.Kind == RelationshipIdentifying {
		fmt.Fprintf(&sb, "Identifying Relation %s (%s) -- (%s) %s: %s\n",
			r.Sides[0].Entity, cardToken(r.Sides[0].Cardinality),
			cardToken(r.Sides[1].Cardinality), r.Sides[1].Entity, r.Name)
	} else {
		fmt.Fprintf(&sb, "Relation %s (%s, %s) -- (%s, %s) %s: %s\n",
			r.Sides[0].Entity, cardToken(r.Sides[0].Cardinality), r.Sides[0].Participation,
			cardToken(r.Sides[1].Cardinality), r.Sides[1].Participation,
			r.Sides[1].Entity, r.Name)
	}

	for _, a := range r.Attributes {
		printAttribute(&sb, a, 1)
	}

	return sb.String()
}

func printAttribute(sb *strings.Builder, a *AttributeNode, depth int) {
	indent := strings.Repeat("  ", depth)

	switch {
	case a.Key == KeyPrimary:
		fmt.Fprintf(sb, "%s%s PK\n", indent, a.Name)
	case a.Key == KeyForeign && a.Ref != nil:
		fmt.Fprintf(sb, "%s%s FK -> %s.%s\n", indent, a.Name, a.Ref.Entity, a.Ref.Attribute)
	case a.Key == KeyForeign:
		fmt.Fprintf(sb, "%s%s FK\n", indent, a.Name)
	case a.Kind == AttrComposite:
		fmt.Fprintf(sb, "%s%s Composite:\n", indent, a.Name)
		for _, child := range a.Children {
			printAttribute(sb, child, depth+1)
		}
	case a.Kind == AttrMultivalued:
		fmt.Fprintf(sb, "%s%s Multivalued\n", indent, a.Name)
	case a.Kind == AttrDerived:
		fmt.Fprintf(sb, "%s%s Derived\n", indent, a.Name)
	case a.Kind == AttrTyped:
		fmt.Fprintf(sb, "%s%s: %s\n", indent, a.Name, a.Type)
	default:
		fmt.Fprintf(sb, "%s%s\n", indent, a.Name)
	}
}

func cardToken(c Cardinality) string {
	if c == CardinalityMany {
		return "M"
	}
	return "1"
}
