package query

import (
	"fmt"
	"strings"
	"unicode"
)

type TokenType int

const (
	// specials
	TokenEOF TokenType = iota
	TokenError

	// literals
	TokenField
	TokenValue

	// ops
	TokenColon // :
	TokenAt    // @ category mention
	TokenHash  // # tag mention
	TokenTilde // ~ fuzzy
	TokenMinus // - exclusion
)

// fields recognised before a colon
var knownFields = []string{"category", "tag", "kind", "since", "until", "sort", "featured"}

type Token struct {
	Type  TokenType
	Value string
	Pos   int
}

func (t Token) String() string {
	switch t.Type {
	case TokenEOF:
		return "EOF"
	case TokenError:
		return fmt.Sprintf("ERROR(%s)", t.Value)
	case TokenField:
		return fmt.Sprintf("FIELD(%s)", t.Value)
	case TokenValue:
		return fmt.Sprintf("VALUE(%s)", t.Value)
	case TokenColon:
		return "COLON"
	case TokenAt:
		return "AT"
	case TokenHash:
		return "HASH"
	case TokenTilde:
		return "TILDE"
	case TokenMinus:
		return "MINUS"
	default:
		return fmt.Sprintf("UNKNOWN(%s)", t.Value)
	}
}

type Lexer struct {
	input  []rune
	pos    int
	ch     rune
	tokens []Token
}

func NewLexer(input string) *Lexer {
	l := &Lexer{
		input:  []rune(input),
		tokens: []Token{},
	}
	if len(l.input) > 0 {
		l.ch = l.input[0]
	}
	return l
}

func Tokenize(input string) ([]Token, error) {
	return NewLexer(input).tokenize()
}

func (l *Lexer) tokenize() ([]Token, error) {
	for {
		token := l.nextToken()
		l.tokens = append(l.tokens, token)

		if token.Type == TokenEOF {
			break
		}
		if token.Type == TokenError {
			return l.tokens, fmt.Errorf("lexer error at position %d: %s", token.Pos, token.Value)
		}
	}
	return l.tokens, nil
}

func (l *Lexer) nextToken() Token {
	l.skipWhitespace()

	if l.ch == 0 {
		return Token{Type: TokenEOF, Pos: l.pos}
	}

	pos := l.pos

	switch l.ch {
	case ':':
		l.advance()
		return Token{Type: TokenColon, Value: ":", Pos: pos}
	case '@':
		l.advance()
		return Token{Type: TokenAt, Value: "@", Pos: pos}
	case '#':
		l.advance()
		return Token{Type: TokenHash, Value: "#", Pos: pos}
	case '~':
		l.advance()
		return Token{Type: TokenTilde, Value: "~", Pos: pos}
	case '-':
		next := l.peek()
		if unicode.IsLetter(next) || next == '@' || next == '#' {
			l.advance()
			return Token{Type: TokenMinus, Value: "-", Pos: pos}
		}
		return l.readValue()
	case '"', '\'':
		return l.readQuotedValue()
	}

	if unicode.IsLetter(l.ch) || unicode.IsDigit(l.ch) {
		return l.readIdentifier()
	}
	return l.readValue()
}

func (l *Lexer) readIdentifier() Token {
	pos := l.pos
	var sb strings.Builder

	for l.ch != 0 && (unicode.IsLetter(l.ch) || unicode.IsDigit(l.ch) || l.ch == '_' || l.ch == '-' || l.ch == '.' || l.ch == '\'') {
		sb.WriteRune(l.ch)
		l.advance()
	}

	value := sb.String()

	// a field name only counts as one when a colon follows
	if l.ch == ':' {
		lower := strings.ToLower(value)
		for _, f := range knownFields {
			if lower == f {
				return Token{Type: TokenField, Value: lower, Pos: pos}
			}
		}
	}

	return Token{Type: TokenValue, Value: value, Pos: pos}
}

func (l *Lexer) readValue() Token {
	pos := l.pos
	var sb strings.Builder

	for l.ch != 0 && !unicode.IsSpace(l.ch) && l.ch != ':' && l.ch != '@' && l.ch != '#' {
		sb.WriteRune(l.ch)
		l.advance()
	}

	if sb.Len() == 0 {
		ch := l.ch
		l.advance()
		return Token{Type: TokenError, Value: fmt.Sprintf("unexpected character: %c", ch), Pos: pos}
	}
	return Token{Type: TokenValue, Value: sb.String(), Pos: pos}
}

func (l *Lexer) readQuotedValue() Token {
	pos := l.pos
	quote := l.ch
	l.advance()

	var sb strings.Builder

	for l.ch != 0 && l.ch != quote {
		if l.ch == '\\' && l.peek() == quote {
			l.advance()
		}
		sb.WriteRune(l.ch)
		l.advance()
	}

	if l.ch != quote {
		return Token{Type: TokenError, Value: "unterminated quoted string", Pos: pos}
	}
	l.advance()

	return Token{Type: TokenValue, Value: sb.String(), Pos: pos}
}

func (l *Lexer) skipWhitespace() {
	for l.ch != 0 && unicode.IsSpace(l.ch) {
		l.advance()
	}
}

func (l *Lexer) advance() {
	l.pos++
	if l.pos < len(l.input) {
		l.ch = l.input[l.pos]
	} else {
		l.ch = 0
	}
}

func (l *Lexer) peek() rune {
	if l.pos+1 < len(l.input) {
		return l.input[l.pos+1]
	}
	return 0
}

// IsQueryLanguage reports whether input uses any query syntax beyond plain
// search words.
func IsQueryLanguage(input string) bool {
	input = strings.ToLower(strings.TrimSpace(input))

	for _, word := range strings.Fields(input) {
		word = strings.TrimPrefix(word, "-")
		if strings.HasPrefix(word, "@") || strings.HasPrefix(word, "#") {
			return true
		}
		for _, field := range knownFields {
			if strings.HasPrefix(word, field+":") {
				return true
			}
		}
	}
	return false
}
