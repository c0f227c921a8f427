package main

import (
	"context"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jask/wanderlist/internal/destination"
	"github.com/jask/wanderlist/internal/tui"
)

func main() {
	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "wanderlist",
		Short: "Reorder travel destinations by dragging them",
		Long: `Wanderlist shows a list of destination cards in the terminal.

Drag a card with the mouse, or pick it up with space and move it with
the arrow keys, to change the order. With the store enabled the order
survives restarts.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd.Context(), *opts)
		},
	}
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default ~/.config/wanderlist/config.toml)")
	rootCmd.PersistentFlags().BoolVar(&opts.store, "store", false, "persist the order in sqlite regardless of config")

	rootCmd.AddCommand(
		orderCmd(opts),
		movesCmd(opts),
		resetCmd(opts),
		configCmd(opts),
	)
	return rootCmd
}

func runTUI(ctx context.Context, opts options) error {
	e, err := setup(opts, opts.store)
	if err != nil {
		return err
	}
	defer e.Close()

	var repos tui.Repos
	if e.db != nil {
		repos = tui.Repos{Order: e.orders, Moves: e.moves}
	}
	e.log.Info("starting", "store", e.db != nil, "mouse_distance", e.cfg.Drag.MouseDistance)

	p := tea.NewProgram(
		tui.New(ctx, e.cfg, destination.MustDefaults(), repos, e.log),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	if _, err := p.Run(); err != nil {
		e.log.Error("program exited", "error", err)
		return err
	}
	return nil
}
