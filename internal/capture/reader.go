package capture

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrMalformedLine indicates a line that is not a list of readings.
var ErrMalformedLine = errors.New("malformed reading line")

// Reader parses comma-separated readings, one line per sample time.
// Blank lines and lines starting with '#' are skipped, as are firmware
// status messages when SkipText is set.
type Reader struct {
	scanner  *bufio.Scanner
	channels int
	line     int

	// SkipText skips lines starting with a letter instead of failing.
	SkipText bool
}

// NewReader returns a reader expecting the given number of channels per
// line. Zero accepts any non-zero count.
func NewReader(r io.Reader, channels int) *Reader {
	return &Reader{scanner: bufio.NewScanner(r), channels: channels}
}

// Line returns the number of the last line read.
func (r *Reader) Line() int {
	return r.line
}

// Next returns the next reading. It returns io.EOF at the end of input.
func (r *Reader) Next(ctx context.Context) ([]float64, error) {
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if !r.scanner.Scan() {
			if err := r.scanner.Err(); err != nil {
				return nil, err
			}
			return nil, io.EOF
		}
		r.line++

		text := strings.TrimSpace(r.scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		if r.SkipText && isLetter(text[0]) {
			continue
		}

		reading, err := r.parse(text)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrMalformedLine, r.line, err)
		}
		return reading, nil
	}
}

func (r *Reader) parse(text string) ([]float64, error) {
	fields := strings.Split(text, ",")
	// The firmware prints a trailing separator.
	if last := len(fields) - 1; last > 0 && strings.TrimSpace(fields[last]) == "" {
		fields = fields[:last]
	}

	if r.channels > 0 && len(fields) != r.channels {
		return nil, fmt.Errorf("got %d values, want %d", len(fields), r.channels)
	}

	reading := make([]float64, len(fields))
	for i, f := range fields {
		v, err := strconv.ParseFloat(strings.TrimSpace(f), 64)
		if err != nil {
			return nil, err
		}
		reading[i] = v
	}
	return reading, nil
}

func isLetter(b byte) bool {
	return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z')
}
