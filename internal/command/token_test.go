package command

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Tokenize(t *testing.T) {
	testCases := []struct {
		name   string
		input  string
		expect []Token
	}{
		{
			name:   "blank string",
			input:  "",
			expect: []Token{},
		},
		{
			name:   "only whitespace",
			input:  "  \t  ",
			expect: []Token{},
		},
		{
			name:  "keyword is case-insensitive",
			input: "mOvE north",
			expect: []Token{
				{Kind: Keyword, Command: Move, Text: "mOvE"},
				{Kind: Variable, Text: "north"},
			},
		},
		{
			name:  "use with preposition",
			input: "USE key on chest",
			expect: []Token{
				{Kind: Keyword, Command: Use, Text: "USE"},
				{Kind: Variable, Text: "key"},
				{Kind: Preposition, Text: "on"},
				{Kind: Variable, Text: "chest"},
			},
		},
		{
			name:  "extra whitespace collapsed",
			input: "   combine   butter   AND  cream  ",
			expect: []Token{
				{Kind: Keyword, Command: Combine, Text: "combine"},
				{Kind: Variable, Text: "butter"},
				{Kind: Preposition, Text: "AND"},
				{Kind: Variable, Text: "cream"},
			},
		},
		{
			name:  "keyword only recognized in first position",
			input: "look status",
			expect: []Token{
				{Kind: Keyword, Command: Look, Text: "look"},
				{Kind: Variable, Text: "status"},
			},
		},
		{
			name:  "unknown first word is a variable",
			input: "dance with me",
			expect: []Token{
				{Kind: Variable, Text: "dance"},
				{Kind: Preposition, Text: "with"},
				{Kind: Variable, Text: "me"},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert := assert.New(t)

			actual := Tokenize(tc.input)

			assert.Equal(tc.expect, actual)
		})
	}
}

func Test_IsQuit(t *testing.T) {
	assert := assert.New(t)

	assert.True(IsQuit("quit"))
	assert.True(IsQuit("QUIT"))
	assert.True(IsQuit("  Quit \n"))
	assert.False(IsQuit("quit now"))
	assert.False(IsQuit("help quit"))
}
