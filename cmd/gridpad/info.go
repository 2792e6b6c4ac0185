package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"gridpad/pkg/dataset"
	"gridpad/pkg/nav"
	"gridpad/pkg/pad"
)

type InfoCommand struct{}

func (c *InfoCommand) Execute(args []string) error {
	cfg, err := pad.LoadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "No configuration found. Run 'gridpad setup' first.")
		os.Exit(1)
	}

	store, err := dataset.Open(cfg.Database)
	if err != nil {
		return fmt.Errorf("open dataset: %w", err)
	}
	defer store.Close()

	ctx := context.Background()
	records, err := store.Positions(ctx)
	if err != nil {
		return fmt.Errorf("enumerate positions: %w", err)
	}
	tab := nav.NewTable(records)

	fmt.Println(headerStyle.Render("Gridpad Dataset"))
	fmt.Printf("Database: %s\n\n", cfg.Database)

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(dimStyle).
		Headers("Axis", "Values", "Count").
		Row("horizontal", joinInts(tab.Horizontals()), fmt.Sprint(len(tab.Horizontals()))).
		Row("vertical", joinInts(tab.Verticals()), fmt.Sprint(len(tab.Verticals()))).
		Row("rotation", joinInts(tab.Rotations()), fmt.Sprint(len(tab.Rotations())))
	fmt.Println(t)

	fmt.Printf("\n%d positions total\n", tab.Len())

	id, err := store.ActiveID(ctx)
	if err != nil {
		return fmt.Errorf("read selection: %w", err)
	}
	if id == "" {
		fmt.Println(dimStyle.Render("No active selection"))
	} else {
		fmt.Printf("Active selection: %s\n", successStyle.Render(id))
	}

	return nil
}

func joinInts(vals []int) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, ", ")
}
