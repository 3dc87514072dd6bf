package erd

// Lexer tokenizes ERD source text into a stream of tokens.
//
// The lexer never fails: characters it does not recognize are skipped, and
// the stream is always terminated by a TokenEOF. This leniency is part of the
// language contract, not an accident.
type Lexer struct {
	src    []byte
	pos    int // current byte offset
	line   int // current line (1-based)
	col    int // current column (1-based)
	peeked []Token
}

// NewLexer creates a new Lexer for the given source bytes.
func NewLexer(src []byte) *Lexer {
	return &Lexer{src: src, line: 1, col: 1}
}

// Peek returns the next token without consuming it.
func (l *Lexer) Peek() Token {
	return l.peekAhead(0)
}

// Peek2 returns the token after the next one without consuming anything.
// The parser needs it to tell a composite sub-attribute from the start of a
// sibling attribute declaration.
func (l *Lexer) Peek2() Token {
	return l.peekAhead(1)
}

func (l *Lexer) peekAhead(n int) Token {
	for len(l.peeked) <= n {
		l.peeked = append(l.peeked, l.scan())
	}
	return l.peeked[n]
}

// Next returns the next token and advances the lexer.
func (l *Lexer) Next() Token {
	if len(l.peeked) > 0 {
		tok := l.peeked[0]
		l.peeked = l.peeked[1:]
		return tok
	}
	return l.scan()
}

func (l *Lexer) currentPos() Position {
	return Position{Line: l.line, Column: l.col, Offset: l.pos}
}

func (l *Lexer) atEnd() bool {
	return l.pos >= len(l.src)
}

func (l *Lexer) peekByte() byte {
	if l.atEnd() {
		return 0
	}
	return l.src[l.pos]
}

func (l *Lexer) advance() byte {
	ch := l.src[l.pos]
	l.pos++
	if ch == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return ch
}

func (l *Lexer) skipWhitespaceAndComments() {
	for !l.atEnd() {
		ch := l.peekByte()
		switch {
		case ch == ' ' || ch == '\t' || ch == '\r' || ch == '\n':
			l.advance()
		case ch == '#':
			// Line comment: skip to end of line
			for !l.atEnd() && l.peekByte() != '\n' {
				l.advance()
			}
		default:
			return
		}
	}
}

// emDash is the UTF-8 encoding of U+2014.
var emDash = []byte{0xe2, 0x80, 0x94}

func (l *Lexer) atEmDash() bool {
	return l.pos+2 < len(l.src) &&
		l.src[l.pos] == emDash[0] && l.src[l.pos+1] == emDash[1] && l.src[l.pos+2] == emDash[2]
}

func (l *Lexer) scan() Token {
	for {
		l.skipWhitespaceAndComments()

		if l.atEnd() {
			return Token{Kind: TokenEOF, Pos: l.currentPos()}
		}

		pos := l.currentPos()
		ch := l.peekByte()

		switch ch {
		case ':':
			l.advance()
			return Token{Kind: TokenColon, Literal: ":", Pos: pos}
		case '(':
			l.advance()
			return Token{Kind: TokenLParen, Literal: "(", Pos: pos}
		case ')':
			l.advance()
			return Token{Kind: TokenRParen, Literal: ")", Pos: pos}
		case ',':
			l.advance()
			return Token{Kind: TokenComma, Literal: ",", Pos: pos}
		case '.':
			l.advance()
			return Token{Kind: TokenDot, Literal: ".", Pos: pos}
		case '+':
			l.advance()
			return Token{Kind: TokenPlus, Literal: "+", Pos: pos}
		case '-':
			if l.pos+1 < len(l.src) && l.src[l.pos+1] == '>' {
				l.advance()
				l.advance()
				return Token{Kind: TokenArrow, Literal: "->", Pos: pos}
			}
			if l.pos+1 < len(l.src) && l.src[l.pos+1] == '-' {
				l.advance()
				l.advance()
				return Token{Kind: TokenDash, Literal: "--", Pos: pos}
			}
			// A lone hyphen is inert
			l.advance()
			continue
		}

		if l.atEmDash() {
			l.advance()
			l.advance()
			l.advance()
			return Token{Kind: TokenDash, Literal: "—", Pos: pos}
		}

		if isDigit(ch) {
			return l.scanNumber()
		}

		if isIdentStart(ch) {
			return l.scanIdentifier()
		}

		// Unrecognized character: skip it and keep scanning
		l.advance()
	}
}

func (l *Lexer) scanNumber() Token {
	pos := l.currentPos()
	start := l.pos

	for !l.atEnd() && isDigit(l.peekByte()) {
		l.advance()
	}

	literal := string(l.src[start:l.pos])
	if literal == "1" {
		// The bare numeral 1 is the "one" cardinality token
		return Token{Kind: TokenOne, Literal: literal, Pos: pos}
	}
	return Token{Kind: TokenNumber, Literal: literal, Pos: pos}
}

func (l *Lexer) scanIdentifier() Token {
	pos := l.currentPos()
	start := l.pos

	for !l.atEnd() && isIdentPart(l.peekByte()) {
		l.advance()
	}

	literal := string(l.src[start:l.pos])

	if kind, ok := keywords[literal]; ok {
		return Token{Kind: kind, Literal: literal, Pos: pos}
	}

	return Token{Kind: TokenIdentifier, Literal: literal, Pos: pos}
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}

func isIdentStart(ch byte) bool {
	return (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z') || ch == '_'
}

func isIdentPart(ch byte) bool {
	return isIdentStart(ch) || isDigit(ch)
}
