package erd

// TokenKind identifies the type of a lexical token.
type TokenKind int

const (
	TokenEOF        TokenKind = iota
	TokenIdentifier           // [A-Za-z_][A-Za-z0-9_]*
	TokenNumber               // [0-9]+ other than the bare cardinality "1"
	TokenOne                  // the literal "1", a distinct cardinality token
	TokenColon                // :
	TokenLParen               // (
	TokenRParen               // )
	TokenComma                // ,
	TokenDot                  // .
	TokenPlus                 // +
	TokenArrow                // ->
	TokenDash                 // em-dash or --

	// Keywords (identifier text checked against keyword map)
	TokenEntity      // Entity
	TokenWeak        // Weak
	TokenRelation    // Relation
	TokenIdentifying // Identifying
	TokenIdentified  // Identified
	TokenBy          // By
	TokenPK          // PK
	TokenFK          // FK
	TokenComposite   // Composite
	TokenMultivalued // Multivalued
	TokenDerived     // Derived
	TokenTotal       // total
	TokenPartial     // partial
)

var tokenNames = map[TokenKind]string{
	TokenEOF:         "EOF",
	TokenIdentifier:  "identifier",
	TokenNumber:      "number",
	TokenOne:         "'1'",
	TokenColon:       "':'",
	TokenLParen:      "'('",
	TokenRParen:      "')'",
	TokenComma:       "','",
	TokenDot:         "'.'",
	TokenPlus:        "'+'",
	TokenArrow:       "'->'",
	TokenDash:        "'--'",
	TokenEntity:      "'Entity'",
	TokenWeak:        "'Weak'",
	TokenRelation:    "'Relation'",
	TokenIdentifying: "'Identifying'",
	TokenIdentified:  "'Identified'",
	TokenBy:          "'By'",
	TokenPK:          "'PK'",
	TokenFK:          "'FK'",
	TokenComposite:   "'Composite'",
	TokenMultivalued: "'Multivalued'",
	TokenDerived:     "'Derived'",
	TokenTotal:       "'total'",
	TokenPartial:     "'partial'",
}

func (k TokenKind) String() string {
	if name, ok := tokenNames[k]; ok {
		return name
	}
	return "unknown"
}

// Token is a single lexical unit produced by the Lexer.
type Token struct {
	Kind    TokenKind
	Literal string
	Pos     Position
}

// keywords maps keyword strings to their token kinds.
var keywords = map[string]TokenKind{
	"Entity":      TokenEntity,
	"Weak":        TokenWeak,
	"Relation":    TokenRelation,
	"Identifying": TokenIdentifying,
	"Identified":  TokenIdentified,
	"By":          TokenBy,
	"PK":          TokenPK,
	"FK":          TokenFK,
	"Composite":   TokenComposite,
	"Multivalued": TokenMultivalued,
	"Derived":     TokenDerived,
	"total":       TokenTotal,
	"partial":     TokenPartial,
}
