package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

//go:generate go run go.uber.org/mock/mockgen@latest  -source=prompt.go -destination=mocks/prompt.gen.go -package=mocks

// ProjectNameMessage is the question asked when no target directory is given.
const ProjectNameMessage = "What is your project named?"

// Prompter interface provides user interaction functionality.
type Prompter interface {
	// PromptForProjectName asks for the directory of the project to create.
	PromptForProjectName() (string, error)

	// PromptForPlaceholder shows message and returns the line typed by the user.
	PromptForPlaceholder(message string) (string, error)
}

type realPrompt struct {
	reader *bufio.Reader
	writer io.Writer
}

// NewPrompt creates a new Prompt instance.
func NewPrompt() Prompter {
	return &realPrompt{
		reader: bufio.NewReader(os.Stdin),
		writer: os.Stdout,
	}
}

// PromptForProjectName asks for the directory of the project to create.
func (p *realPrompt) PromptForProjectName() (string, error) {
	input, err := p.ask(ProjectNameMessage)
	if err != nil {
		return "", err
	}

	input = strings.TrimSpace(input)
	if input == "" {
		return "", ErrEmptyProjectName
	}

	return input, nil
}

// PromptForPlaceholder shows message and returns the line typed by the user.
// Only the line terminator is stripped from the answer.
func (p *realPrompt) PromptForPlaceholder(message string) (string, error) {
	return p.ask(message)
}

func (p *realPrompt) ask(message string) (string, error) {
	if _, err := fmt.Fprintf(p.writer, "%s ", message); err != nil {
		return "", fmt.Errorf("%w: %w", ErrReadInput, err)
	}

	input, err := p.reader.ReadString('\n')
	// A final line without newline is still an answer
	if err != nil && !(errors.Is(err, io.EOF) && input != "") {
		return "", fmt.Errorf("%w: %w", ErrReadInput, err)
	}

	return strings.TrimRight(input, "\r\n"), nil
}
