package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/rwjstewart/gfsbuddy/pkg/config"
	"github.com/rwjstewart/gfsbuddy/pkg/engine"
	"github.com/rwjstewart/gfsbuddy/pkg/input"
	"github.com/rwjstewart/gfsbuddy/pkg/mcp"
	"github.com/rwjstewart/gfsbuddy/pkg/message"
	"github.com/rwjstewart/gfsbuddy/pkg/rule"
)

const (
	cmdExamples = `  # Classify the current moment:
  gfsbuddy

  # Classify dates piped from stdin:
  date | gfsbuddy

  # Use a custom date format:
  printf '2023-06-30\n' | gfsbuddy --date-format '%Y-%m-%d'

  # Enable a rule that is off by default:
  gfsbuddy --last-day-of-week

  # Enable a rule and override its message template:
  gfsbuddy --last-workday-of-week='Weekly %A %J'

  # Print the rule schedule and exit:
  gfsbuddy --list-rules

  # Serve the MCP server on stdio:
  gfsbuddy --serve-mcp stdio`

	// enabledSentinel marks a rule flag passed without a value, meaning
	// "enable the rule, keep its message". disabledSentinel is only ever
	// produced by the environment binding, which translates falsy values
	// into it. Any other value is a message template.
	enabledSentinel  = "\x00"
	disabledSentinel = "\x01"
)

type RunArgs struct {
	*RootArgs

	Rules       map[string]*string
	ConfigPath  string
	DateFormat  string
	ServeMCP    string
	ruleNames   []string
	Stdin       bool
	ListRules   bool
	WriteConfig bool
	ShowConfig  bool
}

func NewRunArgs(rootArgs *RootArgs) *RunArgs {
	return &RunArgs{
		RootArgs: rootArgs,
		Rules:    map[string]*string{},
	}
}

func (ra *RunArgs) AddFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&ra.ConfigPath, "config", "", "Path to the gfsbuddy configuration file")
	cmd.Flags().StringVar(&ra.DateFormat, "date-format", "",
		fmt.Sprintf("strftime format for piped dates (default %q)", input.DefaultFormat))
	cmd.Flags().BoolVar(&ra.Stdin, "stdin", false, "Read dates from stdin even when it is a terminal")
	cmd.Flags().StringVar(&ra.ServeMCP, "serve-mcp", "", "Serve the MCP server at the specified address, or 'stdio'")
	cmd.Flags().BoolVar(&ra.ListRules, "list-rules", false, "Print the rule schedule and exit")
	cmd.Flags().BoolVar(&ra.WriteConfig, "write-config", false, "Write the default configuration file and exit")
	cmd.Flags().BoolVar(&ra.ShowConfig, "show-config", false, "Print the active configuration and exit")

	ra.addRuleFlags(cmd)

	err := cmd.MarkFlagFilename("config", "yaml", "yml")
	if err != nil {
		panic(fmt.Errorf("mark config flag: %w", err))
	}
}

// addRuleFlags registers one flag per catalogue rule. Passing the flag
// enables the rule; an optional value overrides its message template.
func (ra *RunArgs) addRuleFlags(cmd *cobra.Command) {
	if len(ra.ruleNames) == 0 {
		for _, r := range engine.DefaultRegistry().All() {
			ra.ruleNames = append(ra.ruleNames, r.Name)
			ra.Rules[r.Name] = new(string)
		}
	}

	for _, name := range ra.ruleNames {
		cmd.Flags().StringVar(ra.Rules[name], name, "",
			fmt.Sprintf("Enable the %s rule, optionally overriding its message template", name))

		f := cmd.Flags().Lookup(name)
		f.NoOptDefVal = enabledSentinel
	}
}

func NewRunCmd(ra *RunArgs) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "run",
		Short:   "Default command, classifies dates against the rule schedule",
		Example: cmdExamples,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, ra)
		},
	}
	ra.AddFlags(cmd)

	bindEnvVars(cmd)

	return cmd
}

func run(cmd *cobra.Command, rc *RunArgs) error {
	cfg := config.New()

	var configPath string
	if rc.ConfigPath != "" {
		configPath = rc.ConfigPath
	} else {
		configPath = config.GetPath()
	}

	err := config.WriteDefault(configPath, false)
	if err != nil {
		slog.Error("write default config", slog.Any("err", err))
	}
	if rc.WriteConfig {
		// Exit early after writing the default config.
		// Also, if there was an error, it should be fatal.
		return err
	}

	cl, err := config.NewLoaderFromFile(configPath)
	if err != nil {
		slog.Warn("could not read config, using defaults", slog.Any("err", err))
	} else {
		err = cl.Validate()
		if err != nil {
			return fmt.Errorf("invalid config %q: %w", configPath, err)
		}

		cfg, err = cl.Load()
		if err != nil {
			return fmt.Errorf("invalid config %q: %w", configPath, err)
		}
	}

	if rc.ShowConfig {
		// Print the active configuration and exit.
		slog.Info("active configuration", slog.String("path", configPath))

		yamlBytes, err := cfg.MarshalYAML()
		if err != nil {
			return fmt.Errorf("marshal config yaml: %w", err)
		}

		mustN(fmt.Fprint(cmd.OutOrStdout(), string(yamlBytes)))

		return nil
	}

	registry, err := cfg.Engine.Compile()
	if err != nil {
		return fmt.Errorf("compile rules: %w", err)
	}

	err = applyRuleFlags(cmd, rc, registry)
	if err != nil {
		return err
	}

	if rc.ListRules {
		listRules(cmd, registry)

		return nil
	}

	eng := engine.New(registry, engine.WithWriter(cmd.OutOrStdout()))

	if rc.ServeMCP != "" {
		srv, err := mcp.NewServer(rc.ServeMCP, eng)
		if err != nil {
			return fmt.Errorf("create MCP server: %w", err)
		}

		err = srv.Serve(cmd.Context())
		if err != nil {
			return fmt.Errorf("serve MCP: %w", err)
		}

		return nil
	}

	dateFormat := rc.DateFormat
	forceStdin := rc.Stdin

	if cfg.Input != nil {
		if dateFormat == "" {
			dateFormat = cfg.Input.Format
		}

		forceStdin = forceStdin || cfg.Input.Stdin
	}

	var src input.Source
	if forceStdin || !term.IsTerminal(int(os.Stdin.Fd())) {
		src = input.NewLineSource(cmd.InOrStdin(), dateFormat)
	} else {
		src = input.NewClockSource()
	}

	err = eng.Run(cmd.Context(), src)
	if err != nil {
		return fmt.Errorf("classify: %w", err)
	}

	return nil
}

// applyRuleFlags applies per-rule flag overrides on top of the compiled
// registry. A bare flag enables the rule, and a value enables it with a
// new message template. The disable sentinel is set from the environment
// binding only, there is no flag syntax for it.
func applyRuleFlags(cmd *cobra.Command, rc *RunArgs, registry *rule.Registry) error {
	for _, name := range rc.ruleNames {
		if !cmd.Flags().Changed(name) {
			continue
		}

		switch value := *rc.Rules[name]; value {
		case enabledSentinel:
			registry.SetEnabled(name, true)

		case disabledSentinel:
			registry.SetEnabled(name, false)

		default:
			if !registry.SetMessage(name, message.Literal(value)) {
				return fmt.Errorf("unknown rule %q", name)
			}

			registry.SetEnabled(name, true)
		}
	}

	return nil
}

func listRules(cmd *cobra.Command, registry *rule.Registry) {
	w := cmd.OutOrStdout()

	for _, r := range registry.All() {
		status := "disabled"
		if r.Enabled {
			status = "enabled"
		}

		mustN(fmt.Fprintf(w, "%-8s  %s\n", status, r))
	}
}
