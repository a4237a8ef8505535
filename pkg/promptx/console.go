package promptx

import (
	"bufio"
	"context"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
)

// DefaultPrompt is the fixed prompt written before reading.
const DefaultPrompt = "By how much should every age change? "

// Console reads the adjustment from an interactive terminal: it writes the
// prompt, reads one line and parses it as a base-10 signed integer.
type Console struct {
	in     io.Reader
	out    io.Writer
	prompt string
}

// ConsoleOption configures a Console reader.
type ConsoleOption func(*Console)

// WithPrompt overrides the prompt string.
func WithPrompt(prompt string) ConsoleOption {
	return func(c *Console) {
		if prompt != "" {
			c.prompt = prompt
		}
	}
}

// WithStreams overrides stdin/stdout, mainly for tests.
func WithStreams(in io.Reader, out io.Writer) ConsoleOption {
	return func(c *Console) {
		c.in = in
		c.out = out
	}
}

// NewConsole creates a console adjustment reader on stdin/stdout.
func NewConsole(options ...ConsoleOption) *Console {
	c := &Console{
		in:     os.Stdin,
		out:    os.Stdout,
		prompt: DefaultPrompt,
	}
	for _, o := range options {
		o(c)
	}
	return c
}

// ReadAdjustment writes the prompt, reads one line and parses it.
// Returns ErrInvalidInput when the line is not a base-10 integer and
// ErrReadFailed when the underlying read fails.
func (c *Console) ReadAdjustment(ctx context.Context) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, promptxErrors.NewWithCause(ErrReadFailed, err)
	}

	prompt := c.prompt
	if f, ok := c.out.(*os.File); ok && isTerminal(f) {
		prompt = color.New(color.FgCyan, color.Bold).Sprint(c.prompt)
	}
	if _, err := io.WriteString(c.out, prompt); err != nil {
		return 0, promptxErrors.NewWithCause(ErrReadFailed, err)
	}

	line, err := bufio.NewReader(c.in).ReadString('\n')
	if err != nil && err != io.EOF {
		return 0, promptxErrors.NewWithCause(ErrReadFailed, err)
	}

	raw := strings.TrimSpace(line)
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, promptxErrors.New(ErrInvalidInput).WithDetail("input", raw)
	}
	return n, nil
}

func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}

var _ AdjustmentReader = (*Console)(nil)
