//go:build unit

package prompt

import (
	"bufio"
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestPrompt(input string, out *bytes.Buffer) *realPrompt {
	return &realPrompt{
		reader: bufio.NewReader(strings.NewReader(input)),
		writer: out,
	}
}

func TestRealPrompt_PromptForProjectName(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expected    string
		expectedErr error
	}{
		{
			name:     "simple name",
			input:    "demo\n",
			expected: "demo",
		},
		{
			name:     "name with whitespace",
			input:    "  ../projects/demo  \n",
			expected: "../projects/demo",
		},
		{
			name:     "last line without newline",
			input:    "demo",
			expected: "demo",
		},
		{
			name:        "empty input",
			input:       "\n",
			expectedErr: ErrEmptyProjectName,
		},
		{
			name:        "closed input",
			input:       "",
			expectedErr: ErrReadInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out bytes.Buffer
			p := newTestPrompt(tt.input, &out)

			result, err := p.PromptForProjectName()
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, result)
			assert.Equal(t, ProjectNameMessage+" ", out.String())
		})
	}
}

func TestRealPrompt_PromptForPlaceholder(t *testing.T) {
	var out bytes.Buffer
	p := newTestPrompt("  café \r\nsecond\n", &out)

	result, err := p.PromptForPlaceholder("Enter a value for {{AUTHOR}}:")
	assert.NoError(t, err)
	assert.Equal(t, "  café ", result)
	assert.Equal(t, "Enter a value for {{AUTHOR}}: ", out.String())

	result, err = p.PromptForPlaceholder("Enter a value for {{APP_ID}}:")
	assert.NoError(t, err)
	assert.Equal(t, "second", result)
}

func TestRealPrompt_PromptForPlaceholder_EOF(t *testing.T) {
	var out bytes.Buffer
	p := newTestPrompt("", &out)

	_, err := p.PromptForPlaceholder("Enter a value for {{AUTHOR}}:")
	assert.ErrorIs(t, err, ErrReadInput)
	assert.ErrorIs(t, err, io.EOF)
}
