package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-flappy/internal/games/flappy"
	"github.com/vovakirdan/tui-flappy/internal/registry"
)

var profilesCmd = &cobra.Command{
	Use:     "profiles",
	Aliases: []string{"list"},
	Short:   "List available profiles",
	Args:    cobra.NoArgs,
	Run:     runProfiles,
}

func runProfiles(_ *cobra.Command, _ []string) {
	games := registry.List()

	fmt.Println("Available profiles:")
	fmt.Println()

	for _, g := range games {
		spawn := "config"
		if p, ok := flappy.ProfileByID(g.ID); ok && p.SpawnPeriod > 0 {
			spawn = fmt.Sprintf("%dms", p.SpawnPeriod)
		}
		fmt.Printf("  %-10s  %-16s  pipes every %s\n", g.ID, g.Title, spawn)
	}

	fmt.Println()
	fmt.Println("Play with: flappy play <profile>")
}
