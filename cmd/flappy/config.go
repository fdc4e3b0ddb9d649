package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/config"
	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/registry"
)

var flagForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print, check or export game configuration",
	Long: `Inspect the configuration a profile will run with.

Configuration is searched in order:
  --config <path>
  ~/.flappy/configs/flappy.yaml
  ./configs/flappy.yaml
  built-in defaults

Examples:
  flappy config show rush --difficulty hard
  flappy config check --config ./my-flappy.yaml
  flappy config init`,
}

var configShowCmd = &cobra.Command{
	Use:   "show [profile]",
	Short: "Print the effective configuration as YAML",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		cfg, err := loadProfileConfig(profileArg(args))
		if err != nil {
			return err
		}
		out, err := config.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("encoding config: %w", err)
		}
		fmt.Print(string(out))
		return nil
	},
}

var configCheckCmd = &cobra.Command{
	Use:   "check [profile]",
	Short: "Validate the effective configuration",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		id := profileArg(args)
		if err := checkConfig(id); err != nil {
			return err
		}
		fmt.Printf("Configuration for %s is valid.\n", id)
		return nil
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write the default configuration to a file",
	Long: `Write the built-in defaults as a starting point for tuning.
The default destination is ~/.flappy/configs/flappy.yaml.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runConfigInit,
}

func init() {
	configInitCmd.Flags().BoolVar(&flagForce, "force", false, "Overwrite an existing file")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configCheckCmd)
	configCmd.AddCommand(configInitCmd)
}

func profileArg(args []string) string {
	if len(args) == 1 {
		return args[0]
	}
	return "classic"
}

// loadProfileConfig resolves a profile's configuration with the global flags.
func loadProfileConfig(id string) (config.FlappyConfig, error) {
	p, ok := flappy.ProfileByID(id)
	if !ok {
		return config.FlappyConfig{}, fmt.Errorf("unknown profile %q", id)
	}
	return p.Load(registry.Env{ConfigPath: flagConfig, Preset: flagDifficulty})
}

// checkConfig reports whether a profile can start with the current flags.
func checkConfig(id string) error {
	if _, err := loadProfileConfig(id); err != nil {
		if errors.Is(err, config.ErrInvalidConfig) {
			return fmt.Errorf("configuration rejected:\n%w", err)
		}
		return err
	}
	return nil
}

func runConfigInit(_ *cobra.Command, args []string) error {
	path := ""
	if len(args) == 1 {
		path = args[0]
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("cannot get home directory: %w", err)
		}
		path = filepath.Join(home, ".flappy", "configs", "flappy.yaml")
	}

	if _, err := os.Stat(path); err == nil && !flagForce {
		return fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("cannot create config directory: %w", err)
	}
	if err := os.WriteFile(path, config.DefaultFlappyYAML(), 0o644); err != nil {
		return fmt.Errorf("cannot write config: %w", err)
	}

	fmt.Printf("Wrote default configuration to %s\n", path)
	return nil
}
