package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/loop-arcade/internal/registry"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List all available games",
	Long:  `Shows a list of all games registered in the arcade with their controls.`,
	Run:   runList,
}

func runList(_ *cobra.Command, _ []string) {
	games := registry.List()
	if len(games) == 0 {
		fmt.Println("No games available.")
		return
	}

	fmt.Println("Available games:")
	fmt.Println()

	idW, titleW := 2, 5
	for _, g := range games {
		idW = max(idW, len(g.ID))
		titleW = max(titleW, len(g.Title))
	}

	fmt.Printf("  %-*s  %-*s  %s\n", idW, "ID", titleW, "Title", "Controls")
	fmt.Printf("  %-*s  %-*s  %s\n", idW, "--", titleW, "-----", "--------")
	for _, info := range games {
		controls := ""
		if g, err := registry.Create(info.ID); err == nil {
			if c, ok := g.(registry.Controls); ok {
				controls = c.Controls()
			}
		}
		fmt.Printf("  %-*s  %-*s  %s\n", idW, info.ID, titleW, info.Title, controls)
	}

	fmt.Println()
	fmt.Println("Run 'arcade play <id>' to play a game.")
}
