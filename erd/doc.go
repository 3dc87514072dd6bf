// Package erd implements the entity-relationship description language front
// end: lexer, parser, printer, and a diagnostic lint pass.
//
// The language describes entities (strong and weak), their attributes (simple,
// composite, multivalued, derived, or explicitly typed, with optional primary
// and foreign key roles), and relationships between entities with per-side
// cardinality and participation. A document looks like:
//
//	Entity Employee:
//	  id PK
//	  name: string
//	  address Composite:
//	    street
//	    city
//
//	Weak Entity Dependent:
//	  name
//	  Identified By Employee.id + Dependent.name
//
//	Identifying Relation Employee (1) -- (M) Dependent: supports
//
// The front end is structured as a hand-rolled recursive-descent parser with
// three layers:
//
//   - Lexer: converts raw bytes into a token stream, stripping # comments and
//     whitespace. The lexer never fails; unrecognized characters are skipped.
//   - Parser: consumes tokens according to the grammar and builds a Document.
//     Parsing is atomic: a syntax error yields no partial result.
//   - Printer: renders a Document back to canonical source text, such that
//     Parse(Print(doc)) is structurally equal to doc.
//
// Usage:
//
//	doc, err := erd.Parse(src)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(len(doc.Entities), len(doc.Relationships))
package erd
