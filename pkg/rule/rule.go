package rule

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/cel-go/cel"

	"github.com/rwjstewart/gfsbuddy/pkg/datecheck"
	"github.com/rwjstewart/gfsbuddy/pkg/expr"
	"github.com/rwjstewart/gfsbuddy/pkg/message"
)

var (
	// ErrNilCheck is returned when a rule is constructed without a predicate.
	ErrNilCheck = errors.New("rule has no check")
	// ErrNilMessage is returned when a rule is constructed without a message.
	ErrNilMessage = errors.New("rule has no message")
	// ErrEmptyName is returned when a rule is constructed without a name.
	ErrEmptyName = errors.New("rule has no name")
)

// Rule pairs a date predicate with the message to emit when it passes.
//
// Name doubles as the rule's CLI flag, so it should be a stable kebab-case
// identifier like `last-workday-of-month`.
type Rule struct {
	check datecheck.Check
	msg   message.Message

	// Name is the unique, stable identifier of the rule.
	Name string `json:"name" jsonschema:"title=Rule Name"`
	// Match is the CEL expression the check was compiled from, if any.
	Match string `json:"match,omitempty" jsonschema:"title=Match Expression"`
	// Enabled reports whether the engine may evaluate this rule.
	Enabled bool `json:"enabled,omitempty" jsonschema:"title=Enabled"`
}

// Opt configures a [Rule] at construction time.
type Opt func(*Rule)

// WithEnabled sets the rule's initial enabled state.
func WithEnabled(enabled bool) Opt {
	return func(r *Rule) {
		r.Enabled = enabled
	}
}

// New creates a rule from a named predicate and message.
func New(name string, msg message.Message, check datecheck.Check, opts ...Opt) (*Rule, error) {
	if name == "" {
		return nil, ErrEmptyName
	}
	if msg == nil {
		return nil, fmt.Errorf("rule %q: %w", name, ErrNilMessage)
	}
	if check == nil {
		return nil, fmt.Errorf("rule %q: %w", name, ErrNilCheck)
	}

	r := &Rule{
		Name:  name,
		msg:   msg,
		check: check,
	}
	for _, opt := range opts {
		opt(r)
	}

	return r, nil
}

// MustNew creates a rule and panics if there's an error. It is intended for
// the static catalogue, where a failure is a programming error.
func MustNew(name string, msg message.Message, check datecheck.Check, opts ...Opt) *Rule {
	r, err := New(name, msg, check, opts...)
	if err != nil {
		panic(err)
	}

	return r
}

// NewMatch creates a rule whose predicate is compiled from a CEL match
// expression. The expression sees the date under evaluation as the `date`
// timestamp variable and must return a boolean.
func NewMatch(env *expr.Environment, name string, msg message.Message, match string, opts ...Opt) (*Rule, error) {
	prog, err := env.Compile(match)
	if err != nil {
		return nil, fmt.Errorf("rule %q: %w", name, err)
	}

	r, err := New(name, msg, celCheck(prog), opts...)
	if err != nil {
		return nil, err
	}

	r.Match = match

	return r, nil
}

// celCheck adapts a compiled CEL program into a [datecheck.Check].
func celCheck(prog cel.Program) datecheck.Check {
	return func(t time.Time) bool {
		result, _, err := prog.Eval(map[string]any{"date": t})
		if err != nil {
			// Evaluation failure is treated as a non-match.
			return false
		}

		boolVal, ok := result.Value().(bool)

		return ok && boolVal
	}
}

// Matches evaluates the rule's predicate against t. The enabled state is not
// consulted here; that short-circuit belongs to the engine.
func (r *Rule) Matches(t time.Time) bool {
	return r.check(t)
}

// Render produces the rule's output for a matched date.
func (r *Rule) Render(t time.Time) string {
	return r.msg.Render(t)
}

// Message returns the rule's current message.
func (r *Rule) Message() message.Message {
	return r.msg
}

// SetMessage replaces the rule's message.
func (r *Rule) SetMessage(msg message.Message) {
	if msg != nil {
		r.msg = msg
	}
}

func (r *Rule) String() string {
	return fmt.Sprintf("%s: %s", r.Name, r.msg)
}
