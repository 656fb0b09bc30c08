package expr

import (
	"github.com/google/cel-go/cel"
	"github.com/google/cel-go/common/types"
	"github.com/google/cel-go/common/types/ref"
	"github.com/google/cel-go/ext"

	"github.com/rwjstewart/gfsbuddy/pkg/datecheck"
)

type lib struct{}

func (lib) CompileOptions() []cel.EnvOption {
	return []cel.EnvOption{
		ext.Math(),
		ext.Strings(),
		ext.Lists(),

		// `weekday` returns the Monday=0 .. Sunday=6 ordinal of a date.
		// Example: weekday(date) == 4.
		cel.Function("weekday",
			cel.Overload("weekday_timestamp", []*cel.Type{cel.TimestampType}, cel.IntType,
				cel.UnaryBinding(func(date ref.Val) ref.Val {
					ts, ok := date.(types.Timestamp)
					if !ok {
						return types.NewErr("weekday: invalid timestamp value")
					}

					return types.Int(datecheck.Weekday(ts.Time))
				}),
			),
		),

		// `weekOfMonth` returns the 1-indexed week ordinal of a date within
		// its month.
		// Example: weekday(date) == 4 && weekOfMonth(date) == 1.
		cel.Function("weekOfMonth",
			cel.Overload("week_of_month_timestamp", []*cel.Type{cel.TimestampType}, cel.IntType,
				cel.UnaryBinding(func(date ref.Val) ref.Val {
					ts, ok := date.(types.Timestamp)
					if !ok {
						return types.NewErr("weekOfMonth: invalid timestamp value")
					}

					return types.Int(datecheck.WeekOfMonth(ts.Time))
				}),
			),
		),
	}
}

func (lib) ProgramOptions() []cel.ProgramOption {
	return nil
}
