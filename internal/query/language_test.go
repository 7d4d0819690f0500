package query

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []TokenType
	}{
		{
			name:     "field:value",
			input:    "kind:video",
			expected: []TokenType{TokenField, TokenColon, TokenValue, TokenEOF},
		},
		{
			name:     "free words",
			input:    "budget vote",
			expected: []TokenType{TokenValue, TokenValue, TokenEOF},
		},
		{
			name:     "field name without colon is a word",
			input:    "tag league",
			expected: []TokenType{TokenValue, TokenValue, TokenEOF},
		},
		{
			name:     "@category",
			input:    "@politics",
			expected: []TokenType{TokenAt, TokenValue, TokenEOF},
		},
		{
			name:     "@~fuzzy category",
			input:    "@~pol",
			expected: []TokenType{TokenAt, TokenTilde, TokenValue, TokenEOF},
		},
		{
			name:     "#tag",
			input:    "#election",
			expected: []TokenType{TokenHash, TokenValue, TokenEOF},
		},
		{
			name:     "negated tag",
			input:    "-#opinion",
			expected: []TokenType{TokenMinus, TokenHash, TokenValue, TokenEOF},
		},
		{
			name:     "negated field",
			input:    "-kind:photo",
			expected: []TokenType{TokenMinus, TokenField, TokenColon, TokenValue, TokenEOF},
		},
		{
			name:     "offset value",
			input:    "since:-3h",
			expected: []TokenType{TokenField, TokenColon, TokenValue, TokenEOF},
		},
		{
			name:     "quoted value",
			input:    `"state budget" sort:popular`,
			expected: []TokenType{TokenValue, TokenField, TokenColon, TokenValue, TokenEOF},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokens, err := Tokenize(tt.input)
			require.NoError(t, err)

			types := make([]TokenType, len(tokens))
			for i, tok := range tokens {
				types[i] = tok.Type
			}
			assert.Equal(t, tt.expected, types)
		})
	}
}

func TestTokenizeValues(t *testing.T) {
	tokens, err := Tokenize(`Kind:Video "état d'urgence" since:2026-03-01`)
	require.NoError(t, err)

	assert.Equal(t, "kind", tokens[0].Value)
	assert.Equal(t, "Video", tokens[2].Value)
	assert.Equal(t, "état d'urgence", tokens[3].Value)
	assert.Equal(t, "2026-03-01", tokens[6].Value)
}

func TestTokenizeErrors(t *testing.T) {
	_, err := Tokenize(`"unterminated`)
	assert.Error(t, err)
}

func TestIsQueryLanguage(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"budget vote", false},
		{"@politics", true},
		{"budget #election", true},
		{"-@sport", true},
		{"kind:video", true},
		{"SORT:popular", true},
		{"ratio 3:1", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, IsQueryLanguage(tt.input))
		})
	}
}
