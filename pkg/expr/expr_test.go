package expr_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rwjstewart/gfsbuddy/pkg/expr"
)

func TestCompileAndEval(t *testing.T) {
	t.Parallel()

	env, err := expr.NewEnvironment()
	require.NoError(t, err)

	tests := []struct {
		name       string
		expression string
		date       time.Time
		want       bool
	}{
		{
			name:       "weekday friday",
			expression: `weekday(date) == 4`,
			date:       time.Date(2023, time.June, 30, 0, 0, 0, 0, time.UTC),
			want:       true,
		},
		{
			name:       "weekday not friday",
			expression: `weekday(date) == 4`,
			date:       time.Date(2023, time.March, 15, 0, 0, 0, 0, time.UTC),
			want:       false,
		},
		{
			name:       "week of month",
			expression: `weekOfMonth(date) == 5`,
			date:       time.Date(2023, time.December, 29, 0, 0, 0, 0, time.UTC),
			want:       true,
		},
		{
			name:       "standard timestamp functions",
			expression: `date.getMonth() == 5 && date.getDate() == 30`,
			date:       time.Date(2023, time.June, 30, 0, 0, 0, 0, time.UTC),
			want:       true,
		},
		{
			name:       "composed expression",
			expression: `weekday(date) == 4 && weekOfMonth(date) == 1`,
			date:       time.Date(2023, time.March, 3, 0, 0, 0, 0, time.UTC),
			want:       true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			prog, err := env.Compile(tt.expression)
			require.NoError(t, err)

			out, _, err := prog.Eval(map[string]any{"date": tt.date})
			require.NoError(t, err)
			assert.Equal(t, tt.want, out.Value())
		})
	}
}

func TestCompileErrors(t *testing.T) {
	t.Parallel()

	env, err := expr.NewEnvironment()
	require.NoError(t, err)

	t.Run("unknown function", func(t *testing.T) {
		t.Parallel()

		_, err := env.Compile(`frobnicate(date)`)
		require.Error(t, err)
	})

	t.Run("non-boolean result", func(t *testing.T) {
		t.Parallel()

		_, err := env.Compile(`weekday(date)`)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "boolean")
	})
}
