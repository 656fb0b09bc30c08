// Package input supplies the sequence of dates to classify: either lines
// read from a pipe, or the current moment exactly once.
package input

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/ncruces/go-strftime"
)

// DefaultFormat is the default strftime format for piped input. It matches
// the output of the Unix `date` command.
const DefaultFormat = "%a %b %d %H:%M:%S %Z %Y"

// Source yields dates one at a time, returning [io.EOF] when exhausted.
// A parse failure is fatal for the run and is returned as-is.
type Source interface {
	Next() (time.Time, error)
}

// LineSource parses one date per non-empty line using a strftime format.
type LineSource struct {
	scanner *bufio.Scanner
	format  string
}

// NewLineSource creates a [LineSource] reading from r. An empty format
// falls back to [DefaultFormat].
func NewLineSource(r io.Reader, format string) *LineSource {
	if format == "" {
		format = DefaultFormat
	}

	return &LineSource{
		scanner: bufio.NewScanner(r),
		format:  format,
	}
}

func (s *LineSource) Next() (time.Time, error) {
	for s.scanner.Scan() {
		line := strings.TrimRight(s.scanner.Text(), "\r\n")
		if strings.TrimSpace(line) == "" {
			continue
		}

		t, err := strftime.Parse(s.format, line)
		if err != nil {
			return time.Time{}, fmt.Errorf("parse line %q with format %q: %w", line, s.format, err)
		}

		return t, nil
	}

	if err := s.scanner.Err(); err != nil {
		return time.Time{}, fmt.Errorf("read input: %w", err)
	}

	return time.Time{}, io.EOF
}

// ClockSource yields a single date, then [io.EOF]. It is the interactive
// fallback when nothing is piped in.
type ClockSource struct {
	now  func() time.Time
	done bool
}

// NewClockSource creates a [ClockSource] for the current moment.
func NewClockSource() *ClockSource {
	return &ClockSource{now: time.Now}
}

// NewClockSourceAt creates a [ClockSource] with a fixed clock, for tests.
func NewClockSourceAt(now func() time.Time) *ClockSource {
	return &ClockSource{now: now}
}

func (s *ClockSource) Next() (time.Time, error) {
	if s.done {
		return time.Time{}, io.EOF
	}

	s.done = true

	return s.now(), nil
}
