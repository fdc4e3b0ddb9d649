package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a profile picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to pick a profile and Tab for
the scoreboard. Leaving a game returns to the menu.

Examples:
  flappy menu
  flappy menu --difficulty hard
  flappy menu --db ./scores.db`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	logger, closer, err := newLogger()
	if err != nil {
		return err
	}
	defer closer.Close()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	envFor := tui.StoreEnv(store, logger, flagConfig, flagDifficulty)
	if err := tui.RunSession(store, logger, runtimeConfig(), envFor); err != nil {
		return fmt.Errorf("running menu: %w", err)
	}
	return nil
}
