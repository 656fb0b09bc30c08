package cli

import (
	"fmt"
	"log/slog"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// bindEnvVars automatically binds environment variables to cobra command flags.
// Environment variable names are generated as GFSBUDDY_<FLAG_NAME> where the
// flag name is converted to uppercase and dashes are replaced with underscores.
//
// For example:
//   - Flag "log-level" becomes environment variable "GFSBUDDY_LOG_LEVEL"
//   - Flag "config" becomes environment variable "GFSBUDDY_CONFIG"
//
// Arguments take precedence over environment variables, which take precedence
// over default values.
//
// This function also updates flag usage descriptions to include the environment
// variable name, making it visible in help output.
func bindEnvVars(cmd *cobra.Command) {
	cmd.Flags().VisitAll(func(flag *pflag.Flag) {
		bindFlagToEnv(flag)
	})

	cmd.PersistentFlags().VisitAll(func(flag *pflag.Flag) {
		bindFlagToEnv(flag)
	})
}

// bindFlagToEnv binds a single flag to its corresponding environment variable.
func bindFlagToEnv(flag *pflag.Flag) {
	envName := flagToEnvName(flag.Name)

	// Update the flag usage to include the environment variable name.
	if !strings.Contains(flag.Usage, envName) {
		flag.Usage = fmt.Sprintf("%s ($%s)", flag.Usage, envName)
	}

	// Skip if flag was already set via command line arguments.
	if flag.Changed {
		return
	}

	envValue, ok := os.LookupEnv(envName)
	if ok {
		switch {
		case flag.Value.Type() == "bool":
			envValue = normalizeBool(envValue)

		case flag.NoOptDefVal == enabledSentinel:
			envValue = normalizeRuleValue(envValue)
		}

		err := flag.Value.Set(envValue)
		if err != nil {
			// Log error but don't fail - use default value instead.
			slog.Error("failed to set flag from environment variable",
				slog.String("flag", flag.Name),
				slog.String("env", envName),
				slog.String("value", envValue),
				slog.Any("error", err),
			)

			return
		}

		flag.Changed = true
	}
}

// truthyValues and falsyValues are matched exactly, case as given.
var (
	truthyValues = []string{"true", "t", "yes", "y", "1"}
	falsyValues  = []string{"false", "f", "no", "n", "0"}
)

// normalizeBool maps env values onto pflag's bool parser: the truthy set
// true,t,yes,y,1 enables, anything else is false.
func normalizeBool(value string) string {
	if isTruthy(value) {
		return "true"
	}

	return "false"
}

// normalizeRuleValue maps env values onto the rule flag sentinels. Unlike
// the flag surface, where any value is a message template, the environment
// keeps boolean ergonomics: a truthy value enables the rule, a falsy value
// disables it, and anything else is a message template.
func normalizeRuleValue(value string) string {
	switch {
	case isTruthy(value):
		return enabledSentinel

	case isFalsy(value):
		return disabledSentinel
	}

	return value
}

func isTruthy(value string) bool {
	return slices.Contains(truthyValues, value)
}

func isFalsy(value string) bool {
	return slices.Contains(falsyValues, value)
}

// flagToEnvName converts a flag name to its corresponding environment variable name.
// Example: "log-level" -> "GFSBUDDY_LOG_LEVEL".
func flagToEnvName(flagName string) string {
	envName := strings.ReplaceAll(flagName, "-", "_")
	return strings.ToUpper(cmdName + "_" + envName)
}
