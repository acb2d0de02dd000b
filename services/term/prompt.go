package term

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

// Prompter reads single-line answers from an injected reader, so tests can
// script responses instead of driving a real terminal.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Ask writes the question and blocks on one line of input. EOF without a
// newline yields whatever was read, which may be empty.
func (p *Prompter) Ask(question string) (string, error) {
	fmt.Fprint(p.out, question)

	line, err := p.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read answer: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
