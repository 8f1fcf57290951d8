package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/vk/tripplanner/internal/ctxlog"
)

const (
	kindInteger = "integer"
	kindDecimal = "decimal"
)

// Prompter writes questions to out and reads answers from in, one line each.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// New wraps the given streams. The reader is buffered internally, so the
// same io.Reader must not be shared with another Prompter.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Say writes each line followed by a newline.
func (p *Prompter) Say(lines ...string) error {
	for _, line := range lines {
		if _, err := fmt.Fprintln(p.out, line); err != nil {
			return err
		}
	}
	return nil
}

// Text writes label without a newline and returns the next line of input
// with its line terminator removed.
func (p *Prompter) Text(ctx context.Context, label string) (string, error) {
	if label != "" {
		if _, err := io.WriteString(p.out, label); err != nil {
			return "", err
		}
	}
	line, err := p.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", err
		}
		if line == "" {
			return "", ErrNoInput
		}
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	ctxlog.FromContext(ctx).Debug("Answer read.", "label", strings.TrimSpace(label), "length", len(line))
	return line, nil
}

// Int asks for a whole number. Surrounding whitespace is ignored.
func (p *Prompter) Int(ctx context.Context, field, label string) (int, error) {
	raw, err := p.Text(ctx, label)
	if err != nil {
		return 0, err
	}
	digits, ok := stripDigitSeparators(strings.TrimSpace(raw))
	if !ok {
		return 0, &ParseError{Field: field, Input: raw, Kind: kindInteger, Err: errBadSeparator}
	}
	n, err := strconv.Atoi(digits)
	if err != nil {
		return 0, &ParseError{Field: field, Input: raw, Kind: kindInteger, Err: err}
	}
	return n, nil
}

// Float asks for a decimal number. Overflowing input saturates to ±Inf
// rather than failing.
func (p *Prompter) Float(ctx context.Context, field, label string) (float64, error) {
	raw, err := p.Text(ctx, label)
	if err != nil {
		return 0, err
	}
	digits, ok := stripDigitSeparators(strings.TrimSpace(raw))
	if !ok {
		return 0, &ParseError{Field: field, Input: raw, Kind: kindDecimal, Err: errBadSeparator}
	}
	if hasHexPrefix(digits) {
		return 0, &ParseError{Field: field, Input: raw, Kind: kindDecimal, Err: errHexFloat}
	}
	v, err := strconv.ParseFloat(digits, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, &ParseError{Field: field, Input: raw, Kind: kindDecimal, Err: err}
	}
	return v, nil
}

// Menu prints title and a numbered list of options, then asks for the
// number of the chosen option. The answer is not range-checked here.
func (p *Prompter) Menu(ctx context.Context, field, title string, options []string) (int, error) {
	lines := make([]string, 0, len(options)+1)
	lines = append(lines, title)
	for i, opt := range options {
		lines = append(lines, fmt.Sprintf("%d. %s", i+1, opt))
	}
	if err := p.Say(lines...); err != nil {
		return 0, err
	}
	return p.Int(ctx, field, fmt.Sprintf("Enter your choice (1-%d): ", len(options)))
}

var (
	errBadSeparator = errors.New("underscore must sit between two digits")
	errHexFloat     = errors.New("hexadecimal notation is not accepted")
)

// stripDigitSeparators removes digit-group underscores ("1_000" -> "1000").
// It reports false when an underscore is not flanked by digits on both sides.
func stripDigitSeparators(s string) (string, bool) {
	if !strings.Contains(s, "_") {
		return s, true
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] != '_' {
			b.WriteByte(s[i])
			continue
		}
		if i == 0 || i == len(s)-1 || !isDigit(s[i-1]) || !isDigit(s[i+1]) {
			return "", false
		}
	}
	return b.String(), true
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// hasHexPrefix matches an optionally signed 0x/0X literal.
func hasHexPrefix(s string) bool {
	s = strings.TrimLeft(s, "+-")
	return len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}
