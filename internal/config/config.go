package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/jask/sumform/internal/form"
	"github.com/jask/sumform/internal/numfmt"
)

// Config holds application configuration.
type Config struct {
	UI          UIConfig
	Parse       ParseConfig
	Log         LogConfig
	Keybindings []KeybindingConfig
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Locale         string
	Title          string
	Subtitle       string
	Placeholder    string
	ResultLabel    string `mapstructure:"result_label"`
	AddLabel       string `mapstructure:"add_label"`
	CalculateLabel string `mapstructure:"calculate_label"`
}

// ParseConfig selects lenient or strict number parsing.
type ParseConfig struct {
	Mode string
}

// LogConfig holds logger settings. An empty Path disables logging.
type LogConfig struct {
	Level  string
	Path   string
	Format string
}

// KeybindingConfig overrides the keys of one action in one scope.
type KeybindingConfig struct {
	Scope  string
	Action string
	Keys   []string
}

// Default returns the configuration used when no file or env is present.
func Default() Config {
	return Config{
		UI: UIConfig{
			Locale:         numfmt.DefaultLocale,
			Title:          "Sum Calculator",
			Subtitle:       "Enter numbers to add them up",
			Placeholder:    "Enter a number...",
			ResultLabel:    "Total",
			AddLabel:       "Add number",
			CalculateLabel: "Calculate",
		},
		Parse: ParseConfig{Mode: form.Lenient.String()},
		Log:   LogConfig{Level: "info", Format: "console"},
	}
}

// Path returns the config file location: $SUMFORM_CONFIG or
// ~/.config/sumform/config.toml.
func Path() string {
	if p := os.Getenv("SUMFORM_CONFIG"); p != "" {
		return p
	}
	return filepath.Join(os.Getenv("HOME"), ".config", "sumform", "config.toml")
}

// Load reads configuration from file and env. Env var overrides use prefix SUMFORM_.
// An explicit path overrides Path(); a missing default file is not an error.
func Load(path string) (Config, error) {
	v := viper.New()

	def := Default()
	v.SetDefault("ui.locale", def.UI.Locale)
	v.SetDefault("ui.title", def.UI.Title)
	v.SetDefault("ui.subtitle", def.UI.Subtitle)
	v.SetDefault("ui.placeholder", def.UI.Placeholder)
	v.SetDefault("ui.result_label", def.UI.ResultLabel)
	v.SetDefault("ui.add_label", def.UI.AddLabel)
	v.SetDefault("ui.calculate_label", def.UI.CalculateLabel)
	v.SetDefault("parse.mode", def.Parse.Mode)
	v.SetDefault("log.level", def.Log.Level)
	v.SetDefault("log.path", def.Log.Path)
	v.SetDefault("log.format", def.Log.Format)

	v.SetConfigType("toml")
	explicit := path != ""
	if !explicit {
		path = Path()
		explicit = os.Getenv("SUMFORM_CONFIG") != ""
	}
	v.SetConfigFile(path)

	v.SetEnvPrefix("SUMFORM")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if explicit || !os.IsNotExist(err) {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate rejects values the rest of the program cannot use.
func (c Config) Validate() error {
	if _, err := form.ParseModeFromString(c.Parse.Mode); err != nil {
		return fmt.Errorf("parse.mode: %w", err)
	}
	if _, err := numfmt.New(c.UI.Locale); err != nil {
		return fmt.Errorf("ui.locale: %w", err)
	}
	switch strings.ToLower(c.Log.Format) {
	case "", "console", "json":
	default:
		return fmt.Errorf("log.format: unknown format %q", c.Log.Format)
	}
	for i, kb := range c.Keybindings {
		if strings.TrimSpace(kb.Scope) == "" || strings.TrimSpace(kb.Action) == "" || len(kb.Keys) == 0 {
			return fmt.Errorf("keybindings[%d]: scope, action and keys are required", i)
		}
	}
	return nil
}

// ParseMode returns the validated parse mode.
func (c Config) ParseMode() form.ParseMode {
	m, _ := form.ParseModeFromString(c.Parse.Mode)
	return m
}
