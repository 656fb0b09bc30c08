// Package message renders the output associated with a matched rule. A
// message is either a literal strftime template or a function computed from
// the matched date.
package message

import (
	"strconv"
	"strings"
	"time"

	"github.com/ncruces/go-strftime"
)

// WeekToken is replaced in literal templates with the 1-indexed ordinal of
// the date's week within its month.
const WeekToken = "%J"

// Message produces the output text for a matched date.
type Message interface {
	// Render returns the text to emit for t.
	Render(t time.Time) string
	// String returns the template or a placeholder for display purposes.
	String() string
}

// Literal is a strftime template. In addition to the standard conversions
// (%A, %B, ...), every occurrence of %J is replaced with the week-of-month
// ordinal before the template is formatted.
type Literal string

func (m Literal) Render(t time.Time) string {
	s := string(m)
	if strings.Contains(s, WeekToken) {
		s = strings.ReplaceAll(s, WeekToken, strconv.Itoa(weekOfMonth(t)))
	}

	return strftime.Format(s, t)
}

func (m Literal) String() string {
	return string(m)
}

// Func derives the message from the matched date. Its output is emitted
// verbatim, with no template substitution.
type Func func(t time.Time) string

func (m Func) Render(t time.Time) string {
	return m(t)
}

func (m Func) String() string {
	return "(computed)"
}

// weekOfMonth counts, over a fixed five-week lookback window, how many
// whole-week offsets from t still land in t's month. For any real calendar
// month this equals the 1-indexed week-of-month ordinal.
func weekOfMonth(t time.Time) int {
	count := 0

	for w := range 5 {
		if t.AddDate(0, 0, -7*w).Month() == t.Month() {
			count++
		}
	}

	return count
}
