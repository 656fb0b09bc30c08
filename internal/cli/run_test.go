package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rwjstewart/gfsbuddy/internal/cli"
)

// execute runs the root command with stdin content and returns stdout.
// XDG_CONFIG_HOME is pointed at a temp dir so runs never touch the real
// user configuration.
func execute(t *testing.T, in string, args ...string) (string, error) {
	t.Helper()

	t.Setenv("XDG_CONFIG_HOME", t.TempDir())

	cmd := cli.NewRootCmd()

	outBuf := &bytes.Buffer{}
	cmd.SetIn(strings.NewReader(in))
	cmd.SetOut(outBuf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)

	err := cmd.Execute()

	return outBuf.String(), err
}

func TestRun_PipedDates(t *testing.T) {
	tcs := map[string]struct {
		input string
		args  []string
		want  []string
	}{
		"default format": {
			input: "Fri Jun 30 00:00:00 UTC 2023\n",
			args:  []string{"--stdin"},
			want:  []string{"End of Financial Year"},
		},
		"custom format": {
			input: "2023-12-29\n2023-07-03\n",
			args:  []string{"--stdin", "--date-format", "%Y-%m-%d"},
			want:  []string{"End of Year", "Monday"},
		},
		"blank lines skipped": {
			input: "\n2023-07-31\n\n",
			args:  []string{"--stdin", "--date-format", "%Y-%m-%d"},
			want:  []string{"End of Month"},
		},
		"weekend matches nothing by default": {
			input: "2023-07-08\n",
			args:  []string{"--stdin", "--date-format", "%Y-%m-%d"},
			want:  nil,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			out, err := execute(t, tc.input, tc.args...)
			require.NoError(t, err)

			var want string
			if len(tc.want) > 0 {
				want = strings.Join(tc.want, "\n") + "\n"
			}

			assert.Equal(t, want, out)
		})
	}
}

func TestRun_ParseError(t *testing.T) {
	_, err := execute(t, "not a date\n", "--stdin")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a date")
}

func TestRun_RuleFlags(t *testing.T) {
	// Sunday, with the rule enabled via flag.
	out, err := execute(t, "2023-07-02\n",
		"--stdin", "--date-format", "%Y-%m-%d", "--last-day-of-week")
	require.NoError(t, err)
	assert.Equal(t, "Last Day of Week\n", out)

	// Same date with the catch-all enabled but the workweek rules off.
	out, err = execute(t, "2023-07-02\n",
		"--stdin", "--date-format", "%Y-%m-%d", "--day")
	require.NoError(t, err)
	assert.Equal(t, "Sunday\n", out)
}

func TestRun_RuleFlagMessageOverride(t *testing.T) {
	out, err := execute(t, "2023-07-07\n",
		"--stdin", "--date-format", "%Y-%m-%d", "--last-workday-of-week=Weekly %A %J")
	require.NoError(t, err)
	assert.Equal(t, "Weekly Friday 1\n", out)
}

func TestRun_RuleFlagBoolWordIsMessage(t *testing.T) {
	// On the flag surface any value is a message template, even words
	// that look like booleans.
	out, err := execute(t, "2023-07-07\n",
		"--stdin", "--date-format", "%Y-%m-%d", "--last-workday-of-week=no")
	require.NoError(t, err)
	assert.Equal(t, "no\n", out)
}

func TestRun_RuleEnvDisable(t *testing.T) {
	t.Setenv("GFSBUDDY_LAST_WORKDAY_OF_WEEK", "no")

	out, err := execute(t, "2023-07-07\n",
		"--stdin", "--date-format", "%Y-%m-%d")
	require.NoError(t, err)

	// With the weekly rule off, the workday catch-all matches instead.
	assert.Equal(t, "Friday\n", out)
}

func TestRun_UnknownFlag(t *testing.T) {
	_, err := execute(t, "", "--no-such-rule")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown flag")
}

func TestRun_ListRules(t *testing.T) {
	out, err := execute(t, "", "--list-rules")
	require.NoError(t, err)

	assert.Contains(t, out, "enabled")
	assert.Contains(t, out, "disabled")
	assert.Contains(t, out, "last-workday-of-week: Friday %J")
	assert.Contains(t, out, "day: (computed)")
}

func TestRun_ShowConfig(t *testing.T) {
	out, err := execute(t, "", "--show-config")
	require.NoError(t, err)

	assert.Contains(t, out, "apiVersion: gfsbuddy.rwjstewart.com/v1beta1")
	assert.Contains(t, out, "kind: Configuration")
}

func TestRun_WriteConfig(t *testing.T) {
	configHome := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", configHome)

	cmd := cli.NewRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"--write-config"})

	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(filepath.Join(configHome, "gfsbuddy", "config.yaml"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "apiVersion: gfsbuddy.rwjstewart.com/v1beta1")
}

func TestRun_ConfigFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	content := `apiVersion: gfsbuddy.rwjstewart.com/v1beta1
kind: Configuration
input:
  format: "%Y-%m-%d"
rules:
  - name: workday
    enabled: false
  - name: payday
    match: date.getDate() == 15
    message: Payday %A
    enabled: true
`
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o600))

	out, err := execute(t, "2023-06-15\n", "--stdin", "--config", configPath)
	require.NoError(t, err)
	assert.Equal(t, "Payday Thursday\n", out)
}

func TestRun_InvalidConfigFile(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	content := `apiVersion: gfsbuddy.rwjstewart.com/v1beta1
kind: Configuration
schedule: daily
`
	require.NoError(t, os.WriteFile(configPath, []byte(content), 0o600))

	_, err := execute(t, "", "--config", configPath, "--list-rules")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid config")
}
