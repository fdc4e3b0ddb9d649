package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/platform/tui"
	"github.com/vovakirdan/tui-flappy/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [profile]",
	Short: "Play a profile",
	Long: `Start playing the given profile (default: classic).

Controls:
  Enter/Space  - Start / restart
  Space/Up/W   - Flap
  Left/Right   - Move horizontally
  P            - Pause
  Esc/B        - Leave (when not flying)
  Ctrl+S       - Save a text screenshot
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - Slower base speed
  normal - Default speed curve
  hard   - Faster base speed
  fixed  - No speed progression

Examples:
  flappy play
  flappy play rush
  flappy play --difficulty fixed
  flappy play --config ./my-flappy.yaml --seed 42`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := "classic"
	if len(args) == 1 {
		gameID = args[0]
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown profile %q (run 'flappy profiles' to list them)", gameID)
	}

	// Reject a bad config before taking over the terminal.
	if err := checkConfig(gameID); err != nil {
		return err
	}

	logger, closer, err := newLogger()
	if err != nil {
		return err
	}
	defer closer.Close()

	store := openStore(logger)
	if store != nil {
		defer store.Close()
	}

	env := tui.StoreEnv(store, logger, flagConfig, flagDifficulty)(gameID)
	game, err := registry.Create(gameID, env)
	if err != nil {
		return fmt.Errorf("creating game: %w", err)
	}

	if err := tui.Run(game, store, logger, runtimeConfig()); err != nil {
		return fmt.Errorf("running game: %w", err)
	}
	return nil
}
