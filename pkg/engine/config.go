package engine

import (
	"fmt"
	"time"

	"github.com/rwjstewart/gfsbuddy/pkg/datecheck"
	"github.com/rwjstewart/gfsbuddy/pkg/expr"
	"github.com/rwjstewart/gfsbuddy/pkg/message"
	"github.com/rwjstewart/gfsbuddy/pkg/rule"
	"github.com/rwjstewart/gfsbuddy/pkg/yaml"
)

// DefaultRegistry builds the GFS rotation catalogue. Order matters: the most
// specific boundary rules come first, the catch-alls last. The legacy subset
// (workday and the four last-workday rules) starts enabled; everything else
// is opt-in.
func DefaultRegistry() *rule.Registry {
	return rule.NewRegistry(
		rule.MustNew("last-workday-of-financial-year",
			message.Literal("End of Financial Year"), datecheck.LastWorkdayOfFinancialYear,
			rule.WithEnabled(true)),
		rule.MustNew("last-workday-of-year",
			message.Literal("End of Year"), datecheck.LastWorkdayOfYear,
			rule.WithEnabled(true)),
		rule.MustNew("last-workday-of-month",
			message.Literal("End of Month"), datecheck.LastWorkdayOfMonth,
			rule.WithEnabled(true)),
		rule.MustNew("last-workday-of-week",
			message.Literal("Friday %J"), datecheck.LastWorkdayOfWeek,
			rule.WithEnabled(true)),
		rule.MustNew("last-day-of-financial-year",
			message.Literal("Last Day of Financial Year"), datecheck.LastDayOfFinancialYear),
		rule.MustNew("last-day-of-year",
			message.Literal("Last Day of Year"), datecheck.LastDayOfYear),
		rule.MustNew("last-day-of-month",
			message.Literal("Last Day of Month"), datecheck.LastDayOfMonth),
		rule.MustNew("last-day-of-week",
			message.Literal("Last Day of Week"), datecheck.LastDayOfWeek),
		rule.MustNew("first-day-of-financial-year",
			message.Literal("First Day of Financial Year"), datecheck.FirstDayOfFinancialYear),
		rule.MustNew("first-day-of-year",
			message.Literal("First Day of Year"), datecheck.FirstDayOfYear),
		rule.MustNew("first-day-of-month",
			message.Literal("First Day of Month"), datecheck.FirstDayOfMonth),
		rule.MustNew("first-day-of-week",
			message.Literal("First Day of Week"), datecheck.FirstDayOfWeek),
		rule.MustNew("workday",
			message.Func(dayName), datecheck.Workday,
			rule.WithEnabled(true)),
		rule.MustNew("day",
			message.Func(dayName), datecheck.Day),
	)
}

func dayName(t time.Time) string {
	name, err := datecheck.DayName(datecheck.Weekday(t))
	if err != nil {
		// Weekday is always in range; keep a sane fallback anyway.
		return t.Weekday().String()
	}

	return name
}

// Config defines the rules section of the gfsbuddy configuration.
type Config struct {
	// Rules adjusts catalogue rules or defines new CEL-matched rules.
	Rules []*RuleConfig `json:"rules,omitempty" jsonschema:"title=Rules"`
}

// RuleConfig adjusts a single rule. Naming an existing catalogue rule
// mutates it in place; a new name requires a match expression and appends a
// new rule at the end of the schedule.
type RuleConfig struct {
	// Enabled toggles the rule. Unset keeps the rule's current state.
	Enabled *bool `json:"enabled,omitempty" jsonschema:"title=Enabled"`
	// Name identifies the rule to adjust or create.
	Name string `json:"name" jsonschema:"title=Rule Name"`
	// Match is a CEL expression over the `date` timestamp variable.
	Match string `json:"match,omitempty" jsonschema:"title=Match Expression"`
	// Message is a strftime template (with the %J week-of-month extension).
	Message string `json:"message,omitempty" jsonschema:"title=Message Template"`
}

// Validate reports whether the configuration compiles onto the catalogue.
func (c *Config) Validate() error {
	_, err := c.Compile()

	return err
}

// Compile applies the configuration to a fresh default registry and returns
// the result.
func (c *Config) Compile() (*rule.Registry, error) {
	registry := DefaultRegistry()
	pb := yaml.NewPathBuilder()

	var env *expr.Environment

	for i, rc := range c.Rules {
		//nolint:gosec // G115: index from range.
		path := pb.Root().Child("rules").Index(uint(i))

		if rc.Name == "" {
			return nil, yaml.NewError(
				fmt.Errorf("rule %d: %w", i, rule.ErrEmptyName),
				yaml.WithPath(path.Child("name").Build()),
			)
		}

		existing, exists := registry.Get(rc.Name)

		if rc.Match == "" {
			if !exists {
				return nil, yaml.NewError(
					fmt.Errorf("rule %q is not in the catalogue and has no match expression", rc.Name),
					yaml.WithPath(path.Child("match").Build()),
				)
			}

			if rc.Message != "" {
				existing.SetMessage(message.Literal(rc.Message))
			}
			if rc.Enabled != nil {
				existing.Enabled = *rc.Enabled
			}

			continue
		}

		if env == nil {
			var err error

			env, err = expr.NewEnvironment()
			if err != nil {
				return nil, fmt.Errorf("create expression environment: %w", err)
			}
		}

		r, err := compileMatchRule(env, rc, existing)
		if err != nil {
			return nil, yaml.NewError(err, yaml.WithPath(path.Child("match").Build()))
		}

		registry.Set(r)
	}

	return registry, nil
}

// compileMatchRule builds a CEL rule from rc, inheriting message and enabled
// state from a replaced catalogue rule where rc leaves them unset.
func compileMatchRule(env *expr.Environment, rc *RuleConfig, existing *rule.Rule) (*rule.Rule, error) {
	var msg message.Message

	switch {
	case rc.Message != "":
		msg = message.Literal(rc.Message)
	case existing != nil:
		msg = existing.Message()
	default:
		return nil, fmt.Errorf("rule %q: %w", rc.Name, rule.ErrNilMessage)
	}

	enabled := false
	if existing != nil {
		enabled = existing.Enabled
	}
	if rc.Enabled != nil {
		enabled = *rc.Enabled
	}

	return rule.NewMatch(env, rc.Name, msg, rc.Match, rule.WithEnabled(enabled))
}
