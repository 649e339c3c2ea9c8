package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"github.com/jask/sumform/internal/config"
	"github.com/jask/sumform/internal/form"
	"github.com/jask/sumform/internal/logging"
	"github.com/jask/sumform/internal/numfmt"
	"github.com/jask/sumform/internal/tui"
)

type rootFlags struct {
	configPath string
	locale     string
	strict     bool
	logFile    string
	logLevel   string
}

// env bundles what both commands need once config and flags are resolved.
type env struct {
	cfg       config.Config
	log       *zap.Logger
	cleanup   func()
	formatter *numfmt.Formatter
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	cmd := &cobra.Command{
		Use:           "sumform",
		Short:         "Add up a list of numbers in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, err := setup(cmd.Flags().Changed, flags)
			if err != nil {
				return err
			}
			defer e.cleanup()
			return runTUI(e)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "config file (default $SUMFORM_CONFIG or ~/.config/sumform/config.toml)")
	pf.StringVar(&flags.locale, "locale", "", "display locale for the total, e.g. vi-VN or en-US")
	pf.BoolVar(&flags.strict, "strict", false, "reject values with trailing garbage instead of using their numeric prefix")
	pf.StringVar(&flags.logFile, "log-file", "", "write logs to this file")
	pf.StringVar(&flags.logLevel, "log-level", "", "log level (debug, info, warn, error)")

	cmd.AddCommand(newSumCmd(flags))
	return cmd
}

// setup loads config and lets explicitly set flags win over it.
func setup(changed func(name string) bool, flags *rootFlags) (*env, error) {
	cfg, err := config.Load(flags.configPath)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if changed("locale") {
		cfg.UI.Locale = flags.locale
	}
	if changed("strict") {
		cfg.Parse.Mode = form.Lenient.String()
		if flags.strict {
			cfg.Parse.Mode = form.Strict.String()
		}
	}
	if changed("log-file") {
		cfg.Log.Path = flags.logFile
	}
	if changed("log-level") {
		cfg.Log.Level = flags.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	formatter, err := numfmt.New(cfg.UI.Locale)
	if err != nil {
		return nil, err
	}
	logger, cleanup, err := logging.New(logging.Config{
		Level:  cfg.Log.Level,
		Path:   cfg.Log.Path,
		Format: cfg.Log.Format,
	})
	if err != nil {
		return nil, fmt.Errorf("logger: %w", err)
	}
	return &env{cfg: cfg, log: logger, cleanup: cleanup, formatter: formatter}, nil
}

func runTUI(e *env) error {
	keys := tui.NewKeyRegistry()
	if err := keys.ApplyKeybindingConfig(e.cfg.Keybindings); err != nil {
		return fmt.Errorf("keybindings: %w", err)
	}

	f := form.New(form.WithParseMode(e.cfg.ParseMode()), form.WithLogger(e.log))
	model := tui.New(tui.Options{
		Form:      f,
		Formatter: e.formatter,
		Keys:      keys,
		Logger:    e.log,
		Labels: tui.Labels{
			Title:       e.cfg.UI.Title,
			Subtitle:    e.cfg.UI.Subtitle,
			Placeholder: e.cfg.UI.Placeholder,
			ResultLabel: e.cfg.UI.ResultLabel,
			AddButton:   e.cfg.UI.AddLabel,
			CalcButton:  e.cfg.UI.CalculateLabel,
		},
	})

	e.log.Info("starting", zap.String("locale", e.formatter.Locale()), zap.Stringer("parse_mode", f.ParseMode()))
	if _, err := tea.NewProgram(model, tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}

// newSumCmd parses its own flags so that negative values such as -5 are
// read as numbers rather than shorthand flags.
func newSumCmd(flags *rootFlags) *cobra.Command {
	var raw bool
	cmd := &cobra.Command{
		Use:   "sum [values...]",
		Short: "Print the total of the given values without starting the UI",
		Example: `  sumform sum 10 20 abc        # 30
  sumform sum -5 10             # 5
  sumform --locale en-US sum 1000 234.5
  sumform --strict sum 12abc 3  # 3`,
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			fs := pflag.NewFlagSet(cmd.Name(), pflag.ContinueOnError)
			fs.SetOutput(io.Discard)
			fs.AddFlagSet(cmd.Flags())
			fs.AddFlagSet(cmd.InheritedFlags())

			flagArgs, values := splitSumArgs(fs, args)
			if err := fs.Parse(flagArgs); err != nil {
				return err
			}
			if help, _ := fs.GetBool("help"); help {
				return cmd.Help()
			}

			e, err := setup(fs.Changed, flags)
			if err != nil {
				return err
			}
			defer e.cleanup()

			f := form.FromValues(values, form.WithParseMode(e.cfg.ParseMode()), form.WithLogger(e.log))
			total := f.Calculate()
			out := e.formatter.Format(total)
			if raw {
				out = strconv.FormatFloat(total, 'g', -1, 64)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "print the unformatted float")
	return cmd
}

// splitSumArgs separates flags (and their values) from the numbers to add.
// Anything after "--" is a value, as is any token that starts like a
// negative number.
func splitSumArgs(fs *pflag.FlagSet, args []string) (flagArgs, values []string) {
	for i := 0; i < len(args); i++ {
		a := args[i]
		switch {
		case a == "--":
			return flagArgs, append(values, args[i+1:]...)
		case !strings.HasPrefix(a, "-") || a == "-" || looksNegative(a):
			values = append(values, a)
		default:
			flagArgs = append(flagArgs, a)
			if strings.Contains(a, "=") {
				continue
			}
			var fl *pflag.Flag
			if name, ok := strings.CutPrefix(a, "--"); ok {
				fl = fs.Lookup(name)
			} else if len(a) == 2 {
				fl = fs.ShorthandLookup(a[1:])
			}
			if fl != nil && fl.NoOptDefVal == "" && i+1 < len(args) {
				i++
				flagArgs = append(flagArgs, args[i])
			}
		}
	}
	return flagArgs, values
}

func looksNegative(a string) bool {
	rest := a[1:]
	if rest == "" {
		return false
	}
	return (rest[0] >= '0' && rest[0] <= '9') || rest[0] == '.' || strings.HasPrefix(rest, "Infinity")
}
