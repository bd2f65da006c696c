package cli

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Prompter reads answers line by line. Every method returns io.EOF once the
// input is exhausted.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

// NewPrompter creates a Prompter reading from in and writing prompts to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(in), out: out}
}

// Line prints msg and returns the next input line, trimmed.
func (p *Prompter) Line(msg string) (string, error) {
	fmt.Fprint(p.out, msg)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", fmt.Errorf("read input: %w", err)
		}
		return "", io.EOF
	}
	return strings.TrimSpace(p.in.Text()), nil
}

// Text asks until the answer is non-empty and at most max characters long.
func (p *Prompter) Text(msg string, max int) (string, error) {
	for {
		s, err := p.Line(msg)
		if err != nil {
			return "", err
		}
		switch {
		case s == "":
			fmt.Fprintln(p.out, "Empty values are not allowed. Try again.")
		case utf8.RuneCountInString(s) > max:
			fmt.Fprintf(p.out, "The text exceeds the maximum allowed (%d characters).\n", max)
		default:
			return s, nil
		}
	}
}

// Int asks until the answer is an integer >= 1, or >= 0 when allowZero.
// Only plain decimal digits are accepted.
func (p *Prompter) Int(msg string, allowZero bool) (int64, error) {
	for {
		s, err := p.Line(msg)
		if err != nil {
			return 0, err
		}
		if n, ok := parseDigits(s); ok && (n > 0 || (allowZero && n == 0)) {
			return n, nil
		}
		if allowZero {
			fmt.Fprintln(p.out, "Invalid input. Must be an integer greater than or equal to 0.")
		} else {
			fmt.Fprintln(p.out, "Invalid input. Must be an integer greater than 0.")
		}
	}
}

// Option reads a single menu choice. It returns 0 when the answer is not a
// number in [min, max]; it never asks twice.
func (p *Prompter) Option(min, max int) (int, error) {
	s, err := p.Line(fmt.Sprintf("Select an option (%d-%d): ", min, max))
	if err != nil {
		return 0, err
	}
	n, ok := parseDigits(s)
	if !ok || n < int64(min) || n > int64(max) {
		return 0, nil
	}
	return int(n), nil
}

// Pause waits for ENTER.
func (p *Prompter) Pause() error {
	_, err := p.Line("\nPress ENTER to continue...")
	return err
}

func parseDigits(s string) (int64, bool) {
	if s == "" {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return 0, false
		}
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
