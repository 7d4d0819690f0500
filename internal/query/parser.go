package query

import (
	"fmt"
	"strings"
)

// FieldText holds a free search word.
const FieldText = "text"

type QueryFilter struct {
	Field   string
	Value   string
	IsNot   bool // prefixed with -
	IsFuzzy bool // @~ mention
}

func (qf QueryFilter) String() string {
	prefix := ""
	if qf.IsNot {
		prefix = "-"
	}
	if qf.IsFuzzy {
		prefix += "~"
	}
	if qf.Field == FieldText {
		return prefix + qf.Value
	}
	return fmt.Sprintf("%s%s:%s", prefix, qf.Field, qf.Value)
}

type ParsedQuery struct {
	Filters []QueryFilter
	Errors  []ParseError
}

type ParseError struct {
	Message string
	Pos     int
}

func (e ParseError) String() string {
	return fmt.Sprintf("parse error at position %d: %s", e.Pos, e.Message)
}

type Parser struct {
	tokens []Token
	pos    int
	errors []ParseError
}

func NewParser(tokens []Token) *Parser {
	return &Parser{
		tokens: tokens,
		errors: []ParseError{},
	}
}

// ParseQuery parses a search line such as
// `budget @politics -#opinion since:24h sort:popular`.
func ParseQuery(input string) (*ParsedQuery, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return &ParsedQuery{Filters: []QueryFilter{}, Errors: []ParseError{}}, nil
	}

	tokens, err := Tokenize(input)
	if err != nil {
		return nil, err
	}

	return NewParser(tokens).parse()
}

func (p *Parser) parse() (*ParsedQuery, error) {
	filters := []QueryFilter{}

	for !p.isAtEnd() {
		filter, err := p.parseFilter()
		if err != nil {
			p.errors = append(p.errors, ParseError{
				Message: err.Error(),
				Pos:     p.current().Pos,
			})
			p.skipToNextFilter()
			continue
		}

		if filter != nil {
			filters = append(filters, *filter)
		}
	}

	query := &ParsedQuery{
		Filters: filters,
		Errors:  p.errors,
	}

	if len(p.errors) > 0 {
		return query, fmt.Errorf("%s", p.errors[0].String())
	}

	return query, nil
}

func (p *Parser) parseFilter() (*QueryFilter, error) {
	switch p.current().Type {
	case TokenMinus:
		p.advance()
		filter, err := p.parsePositive()
		if err != nil {
			return nil, err
		}
		if filter.Field == FieldText {
			return nil, fmt.Errorf("cannot exclude a search word")
		}
		filter.IsNot = true
		return filter, nil
	default:
		return p.parsePositive()
	}
}

func (p *Parser) parsePositive() (*QueryFilter, error) {
	token := p.current()

	switch token.Type {
	case TokenAt:
		return p.parseMention("category")
	case TokenHash:
		return p.parseMention("tag")
	case TokenField:
		return p.parseFieldFilter()
	case TokenValue:
		p.advance()
		return &QueryFilter{Field: FieldText, Value: token.Value}, nil
	case TokenColon:
		p.advance()
		return nil, fmt.Errorf("unexpected ':'")
	default:
		p.advance()
		return nil, fmt.Errorf("unexpected %s", token.String())
	}
}

func (p *Parser) parseMention(field string) (*QueryFilter, error) {
	p.advance() // @ or #

	isFuzzy := false
	if p.current().Type == TokenTilde {
		isFuzzy = true
		p.advance()
	}

	if p.current().Type != TokenValue && p.current().Type != TokenField {
		return nil, fmt.Errorf("expected %s name", field)
	}

	value := p.current().Value
	p.advance()

	return &QueryFilter{Field: field, Value: value, IsFuzzy: isFuzzy}, nil
}

func (p *Parser) parseFieldFilter() (*QueryFilter, error) {
	field := p.current().Value
	p.advance()

	if p.current().Type != TokenColon {
		return nil, fmt.Errorf("expected ':' after field name '%s'", field)
	}
	p.advance()

	value, err := p.parseValue()
	if err != nil {
		return nil, err
	}

	return &QueryFilter{Field: field, Value: value}, nil
}

func (p *Parser) parseValue() (string, error) {
	token := p.current()

	if token.Type == TokenValue || token.Type == TokenField {
		p.advance()
		return token.Value, nil
	}

	return "", fmt.Errorf("expected value, got %s", token.String())
}

func (p *Parser) skipToNextFilter() {
	for !p.isAtEnd() {
		switch p.current().Type {
		case TokenAt, TokenHash, TokenMinus, TokenField:
			return
		}
		p.advance()
	}
}

func (p *Parser) current() Token {
	if p.pos >= len(p.tokens) {
		return Token{Type: TokenEOF}
	}
	return p.tokens[p.pos]
}

func (p *Parser) advance() {
	if p.pos < len(p.tokens) {
		p.pos++
	}
}

func (p *Parser) isAtEnd() bool {
	return p.pos >= len(p.tokens) || p.current().Type == TokenEOF
}

func (q *ParsedQuery) HasField(field string) bool {
	return q.GetField(field) != nil
}

func (q *ParsedQuery) GetField(field string) *QueryFilter {
	for _, filter := range q.Filters {
		if filter.Field == field && !filter.IsNot {
			return &filter
		}
	}
	return nil
}

func (q *ParsedQuery) GetAllFields(field string) []QueryFilter {
	var filters []QueryFilter
	for _, filter := range q.Filters {
		if filter.Field == field {
			filters = append(filters, filter)
		}
	}
	return filters
}

// Text joins the free search words.
func (q *ParsedQuery) Text() string {
	words := make([]string, 0)
	for _, filter := range q.GetAllFields(FieldText) {
		words = append(words, filter.Value)
	}
	return strings.Join(words, " ")
}

func (q *ParsedQuery) HasErrors() bool {
	return len(q.Errors) > 0
}
