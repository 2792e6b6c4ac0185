package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"gridpad/pkg/dataset"
	"gridpad/pkg/pad"
)

var (
	headerStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	subHeaderStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	successStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	dimStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

type SetupCommand struct{}

// gridPreset describes one seedable demo grid.
type gridPreset struct {
	name string
	cols int
	rows int
	rots []int
}

var presets = []gridPreset{
	{"3x3, all eight facings", 3, 3, []int{0, 45, 90, 135, 180, 225, 270, 315}},
	{"5x5, cardinal facings", 5, 5, []int{0, 90, 180, 270}},
	{"7x3, fixed facing", 7, 3, []int{0}},
}

func (c *SetupCommand) Execute(args []string) error {
	fmt.Println(headerStyle.Render("Gridpad Setup"))
	fmt.Println(dimStyle.Render("━━━━━━━━━━━━━━"))
	fmt.Println()

	cfg := pad.DefaultConfig()
	if pad.ConfigExists() {
		loaded, err := pad.LoadConfig()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error reading existing config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
		fmt.Printf("Using existing configuration from %s\n\n", pad.DefaultConfigFile)
	}

	preset, ok := choosePreset()
	if !ok {
		fmt.Println("Setup cancelled.")
		return nil
	}

	fmt.Println()
	fmt.Println(subHeaderStyle.Render("━━━ Seeding position grid ━━━"))
	fmt.Println()

	store, err := dataset.Open(cfg.Database)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening dataset: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	ctx := context.Background()
	if err := store.Seed(ctx, preset.cols, preset.rows, preset.rots); err != nil {
		fmt.Fprintf(os.Stderr, "Error seeding grid: %v\n", err)
		os.Exit(1)
	}

	records, err := store.Positions(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading grid back: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Grid seeded: %d positions in %s\n", len(records), cfg.Database)

	if err := cfg.Save(); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving config: %v\n", err)
		os.Exit(1)
	}

	fmt.Println()
	fmt.Println(dimStyle.Render("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━"))
	fmt.Println(successStyle.Render("Setup complete!"))
	fmt.Printf("Configuration saved to %s\n", pad.DefaultConfigFile)
	fmt.Println()
	fmt.Println("Start the pad with: " + headerStyle.Render("gridpad run"))

	return nil
}

func choosePreset() (gridPreset, bool) {
	options := make([]huh.Option[int], len(presets))
	for i, p := range presets {
		label := fmt.Sprintf("%s (%d positions)", p.name, p.cols*p.rows*len(p.rots))
		options[i] = huh.NewOption(label, i)
	}

	var idx int
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[int]().
				Title("Which grid should be seeded?").
				Description("Existing positions and the active selection are kept").
				Options(options...).
				Value(&idx),
		),
	)

	if err := form.Run(); err != nil {
		return gridPreset{}, false
	}
	return presets[idx], true
}
