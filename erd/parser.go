package erd

import "fmt"

// Parse parses ERD source text and returns a Document.
// Returns a *SyntaxError on failure. The parse is all-or-nothing: on error no
// partial Document is returned.
func Parse(src []byte) (*Document, error) {
	p := &parser{lex: NewLexer(src)}
	return p.parseDocument()
}

type parser struct {
	lex           *Lexer
	entities      []*EntityNode
	relationships []*RelationshipNode
}

func (p *parser) peek() Token {
	return p.lex.Peek()
}

func (p *parser) next() Token {
	return p.lex.Next()
}

func (p *parser) expect(kind TokenKind) (Token, error) {
	tok := p.next()
	if tok.Kind != kind {
		return Token{}, &SyntaxError{
			ParseError: ParseError{Pos: tok.Pos},
			Expected:   kind.String(),
			Got:        fmt.Sprintf("%s (%q)", tok.Kind, tok.Literal),
		}
	}
	return tok, nil
}

func (p *parser) parseDocument() (*Document, error) {
	for {
		tok := p.peek()
		switch tok.Kind {
		case TokenEOF:
			return &Document{
				Entities:      p.entities,
				Relationships: p.relationships,
			}, nil

		case TokenEntity:
			if err := p.parseEntityDecl(); err != nil {
				return nil, err
			}

		case TokenWeak:
			if err := p.parseWeakEntityDecl(); err != nil {
				return nil, err
			}

		case TokenRelation:
			if err := p.parseRelationDecl(); err != nil {
				return nil, err
			}

		case TokenIdentifying:
			if err := p.parseIdentifyingRelationDecl(); err != nil {
				return nil, err
			}

		default:
			// Tokens that do not open a declaration are skipped, matching the
			// lexer's leniency toward unrecognized characters.
			p.next()
		}
	}
}

// parseEntityDecl parses: "Entity" IDENT ":" attribute*
func (p *parser) parseEntityDecl() error {
	if _, err := p.expect(TokenEntity); err != nil {
		return err
	}

	nameTok, err := p.expect(TokenIdentifier)
	if err != nil {
		return err
	}

	if _, err := p.expect(TokenColon); err != nil {
		return err
	}

	attrs, err := p.parseAttributes()
	if err != nil {
		return err
	}

	p.entities = append(p.entities, &EntityNode{
		Name:       nameTok.Literal,
		Kind:       EntityStrong,
		Attributes: attrs,
		Pos:        nameTok.Pos,
	})
	return nil
}

// parseWeakEntityDecl parses:
// "Weak" "Entity" IDENT ":" attribute* ("Identified" "By" fkTarget ("+" fkTarget)*)?
func (p *parser) parseWeakEntityDecl() error {
	if _, err := p.expect(TokenWeak); err != nil {
		return err
	}
	if _, err := p.expect(TokenEntity); err != nil {
		return err
	}

	nameTok, err := p.expect(TokenIdentifier)
	if err != nil {
		return err
	}

	if _, err := p.expect(TokenColon); err != nil {
		return err
	}

	attrs, err := p.parseAttributes()
	if err != nil {
		return err
	}

	// The Identified By clause is optional; a weak entity without one still
	// parses (the lint pass reports it).
	var identifiedBy []ForeignKeyRef
	if p.peek().Kind == TokenIdentified {
		p.next()
		if _, err := p.expect(TokenBy); err != nil {
			return err
		}
		ref, err := p.parseFKTarget()
		if err != nil {
			return err
		}
		identifiedBy = append(identifiedBy, ref)
		for p.peek().Kind == TokenPlus {
			p.next()
			ref, err := p.parseFKTarget()
			if err != nil {
				return err
			}
			identifiedBy = append(identifiedBy, ref)
		}
	}

	p.entities = append(p.entities, &EntityNode{
		Name:         nameTok.Literal,
		Kind:         EntityWeak,
		Attributes:   attrs,
		IdentifiedBy: identifiedBy,
		Pos:          nameTok.Pos,
	})
	return nil
}

// parseRelationDecl parses:
// "Relation" IDENT "(" card ("," part)? ")" DASH "(" card ("," part)? ")" IDENT ":" IDENT relAttr*
func (p *parser) parseRelationDecl() error {
	if _, err := p.expect(TokenRelation); err != nil {
		return err
	}

	leftTok, err := p.expect(TokenIdentifier)
	if err != nil {
		return err
	}

	left, err := p.parseSide()
	if err != nil {
		return err
	}
	left.Entity = leftTok.Literal

	if _, err := p.expect(TokenDash); err != nil {
		return err
	}

	right, err := p.parseSide()
	if err != nil {
		return err
	}

	rightTok, err := p.expect(TokenIdentifier)
	if err != nil {
		return err
	}
	right.Entity = rightTok.Literal

	if _, err := p.expect(TokenColon); err != nil {
		return err
	}

	verbTok, err := p.expect(TokenIdentifier)
	if err != nil {
		return err
	}

	attrs, err := p.parseAttributes()
	if err != nil {
		return err
	}

	p.relationships = append(p.relationships, &RelationshipNode{
		Name:       verbTok.Literal,
		Kind:       RelationshipNormal,
		Sides:      [2]RelationshipSide{left, right},
		Attributes: attrs,
		Pos:        verbTok.Pos,
	})
	return nil
}

// parseIdentifyingRelationDecl parses:
// "Identifying" "Relation" IDENT "(" card ")" DASH "(" card ")" IDENT ":" IDENT
//
// Identifying relationships always bind total participation on both sides, so
// the grammar does not admit a participation word inside the parentheses.
func (p *parser) parseIdentifyingRelationDecl() error {
	if _, err := p.expect(TokenIdentifying); err != nil {
		return err
	}
	if _, err := p.expect(TokenRelation); err != nil {
		return err
	}

	leftTok, err := p.expect(TokenIdentifier)
	if err != nil {
		return err
	}

	leftCard, err := p.parseBareCardinality()
	if err != nil {
		return err
	}

	if _, err := p.expect(TokenDash); err != nil {
		return err
	}

	rightCard, err := p.parseBareCardinality()
	if err != nil {
		return err
	}

	rightTok, err := p.expect(TokenIdentifier)
	if err != nil {
		return err
	}

	if _, err := p.expect(TokenColon); err != nil {
		return err
	}

	verbTok, err := p.expect(TokenIdentifier)
	if err != nil {
		return err
	}

	p.relationships = append(p.relationships, &RelationshipNode{
		Name: verbTok.Literal,
		Kind: RelationshipIdentifying,
		Sides: [2]RelationshipSide{
			{Entity: leftTok.Literal, Cardinality: leftCard, Participation: ParticipationTotal},
			{Entity: rightTok.Literal, Cardinality: rightCard, Participation: ParticipationTotal},
		},
		Pos: verbTok.Pos,
	})
	return nil
}

// parseSide parses "(" card ("," part)? ")". Participation defaults to partial
// when omitted. The entity name is filled in by the caller.
func (p *parser) parseSide() (RelationshipSide, error) {
	if _, err := p.expect(TokenLParen); err != nil {
		return RelationshipSide{}, err
	}

	card, err := p.parseCardinality()
	if err != nil {
		return RelationshipSide{}, err
	}

	part := ParticipationPartial
	if p.peek().Kind == TokenComma {
		p.next()
		part, err = p.parseParticipation()
		if err != nil {
			return RelationshipSide{}, err
		}
	}

	if _, err := p.expect(TokenRParen); err != nil {
		return RelationshipSide{}, err
	}

	return RelationshipSide{Cardinality: card, Participation: part}, nil
}

// parseBareCardinality parses "(" card ")".
func (p *parser) parseBareCardinality() (Cardinality, error) {
	if _, err := p.expect(TokenLParen); err != nil {
		return "", err
	}
	card, err := p.parseCardinality()
	if err != nil {
		return "", err
	}
	if _, err := p.expect(TokenRParen); err != nil {
		return "", err
	}
	return card, nil
}

func (p *parser) parseCardinality() (Cardinality, error) {
	tok := p.next()
	switch {
	case tok.Kind == TokenOne:
		return CardinalityOne, nil
	case tok.Kind == TokenIdentifier && tok.Literal == "M":
		return CardinalityMany, nil
	default:
		return "", &SyntaxError{
			ParseError: ParseError{Pos: tok.Pos},
			Expected:   "cardinality '1' or 'M'",
			Got:        fmt.Sprintf("%s (%q)", tok.Kind, tok.Literal),
		}
	}
}

func (p *parser) parseParticipation() (Participation, error) {
	tok := p.next()
	switch tok.Kind {
	case TokenTotal:
		return ParticipationTotal, nil
	case TokenPartial:
		return ParticipationPartial, nil
	default:
		return "", &SyntaxError{
			ParseError: ParseError{Pos: tok.Pos},
			Expected:   "participation 'total' or 'partial'",
			Got:        fmt.Sprintf("%s (%q)", tok.Kind, tok.Literal),
		}
	}
}

// parseAttributes parses attribute* — the list runs until the next token is no
// longer an identifier (the next declaration keyword, Identified, or EOF).
func (p *parser) parseAttributes() ([]*AttributeNode, error) {
	var attrs []*AttributeNode
	for p.peek().Kind == TokenIdentifier {
		attr, err := p.parseAttribute()
		if err != nil {
			return nil, err
		}
		attrs = append(attrs, attr)
	}
	return attrs, nil
}

// parseAttribute parses:
// IDENT ( "PK" | "FK" ("->" fkTarget)? | "Composite" ":" subAttribute+
//       | "Multivalued" | "Derived" | ":" IDENT )?
func (p *parser) parseAttribute() (*AttributeNode, error) {
	nameTok, err := p.expect(TokenIdentifier)
	if err != nil {
		return nil, err
	}

	attr := &AttributeNode{
		Name: nameTok.Literal,
		Kind: AttrSimple,
		Key:  KeyNone,
		Pos:  nameTok.Pos,
	}

	switch p.peek().Kind {
	case TokenPK:
		p.next()
		attr.Key = KeyPrimary

	case TokenFK:
		p.next()
		attr.Key = KeyForeign
		// The target arrow is optional in the grammar; a missing target is a
		// lint finding, not a parse error.
		if p.peek().Kind == TokenArrow {
			p.next()
			ref, err := p.parseFKTarget()
			if err != nil {
				return nil, err
			}
			attr.Ref = &ref
		}

	case TokenComposite:
		p.next()
		if _, err := p.expect(TokenColon); err != nil {
			return nil, err
		}
		attr.Kind = AttrComposite
		children, err := p.parseSubAttributes()
		if err != nil {
			return nil, err
		}
		attr.Children = children

	case TokenMultivalued:
		p.next()
		attr.Kind = AttrMultivalued

	case TokenDerived:
		p.next()
		attr.Kind = AttrDerived

	case TokenColon:
		p.next()
		typeTok, err := p.expect(TokenIdentifier)
		if err != nil {
			return nil, err
		}
		attr.Kind = AttrTyped
		attr.Type = typeTok.Literal
	}

	return attr, nil
}

// parseSubAttributes parses subAttribute+ for a composite attribute.
//
// Sub-attributes are bare identifiers. The list ends at the next declaration
// keyword or Identified clause (those are not identifiers, so the loop stops
// before them), or when two tokens of lookahead show an identifier followed by
// an attribute modifier — that identifier starts a sibling attribute of the
// composite's owner, not another child.
func (p *parser) parseSubAttributes() ([]*AttributeNode, error) {
	var children []*AttributeNode
	for {
		tok := p.peek()
		if tok.Kind != TokenIdentifier {
			break
		}
		if startsModifiedAttribute(p.lex.Peek2().Kind) {
			break
		}
		p.next()
		children = append(children, &AttributeNode{
			Name: tok.Literal,
			Kind: AttrSimple,
			Key:  KeyNone,
			Pos:  tok.Pos,
		})
	}

	if len(children) == 0 {
		tok := p.peek()
		return nil, &SyntaxError{
			ParseError: ParseError{Pos: tok.Pos},
			Expected:   "sub-attribute",
			Got:        fmt.Sprintf("%s (%q)", tok.Kind, tok.Literal),
		}
	}
	return children, nil
}

// startsModifiedAttribute reports whether a token kind, seen one past an
// identifier, marks that identifier as the start of an attribute declaration
// with a modifier.
func startsModifiedAttribute(kind TokenKind) bool {
	switch kind {
	case TokenPK, TokenFK, TokenComposite, TokenMultivalued, TokenDerived, TokenColon:
		return true
	}
	return false
}

// parseFKTarget parses: IDENT "." IDENT
func (p *parser) parseFKTarget() (ForeignKeyRef, error) {
	entityTok, err := p.expect(TokenIdentifier)
	if err != nil {
		return ForeignKeyRef{}, err
	}
	if _, err := p.expect(TokenDot); err != nil {
		return ForeignKeyRef{}, err
	}
	attrTok, err := p.expect(TokenIdentifier)
	if err != nil {
		return ForeignKeyRef{}, err
	}
	return ForeignKeyRef{Entity: entityTok.Literal, Attribute: attrTok.Literal}, nil
}
