// Package console wraps the launcher's interactive line-oriented I/O.
//
// The menu loop and any program that prompts the user share one Console, so
// a single buffered reader owns stdin and no input is lost between the two.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Console reads lines from one reader and writes prompts to one writer.
type Console struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// New creates a Console over the given reader and writer.
func New(in io.Reader, out io.Writer) *Console {
	return &Console{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

// Printf writes formatted output to the console.
func (c *Console) Printf(format string, args ...any) {
	fmt.Fprintf(c.out, format, args...)
}

// Println writes a line to the console.
func (c *Console) Println(args ...any) {
	fmt.Fprintln(c.out, args...)
}

// Out exposes the underlying writer for programs that stream output.
func (c *Console) Out() io.Writer {
	return c.out
}

// ReadLine reads one line of input, trimmed of surrounding whitespace. It
// returns io.EOF when input is exhausted.
func (c *Console) ReadLine() (string, error) {
	if !c.scanner.Scan() {
		if err := c.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(c.scanner.Text()), nil
}

// Ask prints a prompt and reads the reply.
func (c *Console) Ask(prompt string) (string, error) {
	c.Printf("%s", prompt)
	return c.ReadLine()
}

// Confirm prints a yes/no prompt and re-asks until it gets a recognizable
// answer. EOF counts as declining.
func (c *Console) Confirm(prompt string) (bool, error) {
	for {
		reply, err := c.Ask(prompt + " [y/n]: ")
		if err == io.EOF {
			return false, nil
		}
		if err != nil {
			return false, err
		}
		switch strings.ToLower(reply) {
		case "y", "yes":
			return true, nil
		case "n", "no":
			return false, nil
		default:
			c.Println("Please answer 'y' or 'n'.")
		}
	}
}
