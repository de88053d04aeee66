package apps

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"f1champsseason/pkg/menus"
)

const doneKeyword = "done"

type Handler func(ctx context.Context, p *Prompter) error

type Accepter interface {
	AcceptChoice(choice menus.Choice) (bool, Handler)
}

// Prompter reads answers line by line and writes prompts and reports.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewScanner(in),
		out: out,
	}
}

// Ask writes the prompt and returns the next input line without its line
// ending. io.EOF is returned once the input is exhausted.
func (p *Prompter) Ask(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimRight(p.in.Text(), "\r"), nil
}

func (p *Prompter) Println(a ...any) {
	fmt.Fprintln(p.out, a...)
}

func (p *Prompter) Printf(format string, a ...any) {
	fmt.Fprintf(p.out, format, a...)
}

func IsDone(line string) bool {
	return strings.EqualFold(strings.TrimSpace(line), doneKeyword)
}

// SplitPair splits "left, right" into its two trimmed parts.
func SplitPair(line string) (string, string, bool) {
	parts := strings.Split(line, ",")
	if len(parts) != 2 {
		return "", "", false
	}
	return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]), true
}
