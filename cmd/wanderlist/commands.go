package main

import (
	"database/sql"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/jask/wanderlist/internal/config"
	"github.com/jask/wanderlist/internal/database"
	"github.com/jask/wanderlist/internal/database/repository"
	"github.com/jask/wanderlist/internal/destination"
	"github.com/jask/wanderlist/internal/logging"
)

type options struct {
	configPath string
	store      bool
}

// env is everything a command needs after config is loaded. db and the
// repositories are nil when the store is off.
type env struct {
	cfg    config.Config
	log    logging.Logger
	db     *sql.DB
	orders *repository.OrderRepo
	moves  *repository.MoveRepo
}

func (e *env) Close() {
	if e.db != nil {
		_ = e.db.Close()
	}
	_ = e.log.Sync()
}

// useConfigPath points config.Path at the --config flag, when set.
func useConfigPath(opts options) error {
	if opts.configPath == "" {
		return nil
	}
	return os.Setenv("WANDERLIST_CONFIG", opts.configPath)
}

func setup(opts options, forceStore bool) (*env, error) {
	if err := useConfigPath(opts); err != nil {
		return nil, err
	}
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if forceStore {
		cfg.Store.Enabled = true
	}

	log, err := logging.New(cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("logging: %w", err)
	}
	e := &env{cfg: cfg, log: log}
	if !cfg.Store.Enabled {
		return e, nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.Store.Path), 0o755); err != nil {
		e.Close()
		return nil, fmt.Errorf("mkdir db dir: %w", err)
	}
	db, err := database.OpenMigrated(cfg.Store.Path)
	if err != nil {
		e.Close()
		return nil, fmt.Errorf("open db: %w", err)
	}
	e.db = db
	e.orders = repository.NewOrderRepo(db)
	e.moves = repository.NewMoveRepo(db)
	return e, nil
}

func orderCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "order",
		Short: "Print the saved destination order",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(*opts, true)
			if err != nil {
				return err
			}
			defer e.Close()

			ids, err := e.orders.Load(cmd.Context())
			if err != nil {
				return fmt.Errorf("load order: %w", err)
			}
			printOrder(cmd.OutOrStdout(), destination.MustDefaults().Reorder(ids))
			return nil
		},
	}
}

func printOrder(w io.Writer, list destination.List) {
	for i, d := range list.Items() {
		fmt.Fprintf(w, "%d. %s %s (%s)\n", i+1, d.Image.Glyph, d.Name, d.Location)
	}
}

func movesCmd(opts *options) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "moves",
		Short: "List recent reorders, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(*opts, true)
			if err != nil {
				return err
			}
			defer e.Close()

			moves, err := e.moves.Recent(cmd.Context(), limit)
			if err != nil {
				return fmt.Errorf("recent moves: %w", err)
			}
			names := destination.MustDefaults()
			out := cmd.OutOrStdout()
			if len(moves) == 0 {
				fmt.Fprintln(out, "no moves recorded")
				return nil
			}
			for _, m := range moves {
				fmt.Fprintf(out, "%s  %s: position %d -> %d (dropped on %s)\n",
					m.CreatedAt.Local().Format("2006-01-02 15:04:05"),
					nameOf(names, m.DestinationID), m.FromIndex+1, m.ToIndex+1, nameOf(names, m.TargetID))
			}
			return nil
		},
	}
	cmd.Flags().IntVarP(&limit, "limit", "n", 20, "number of moves to show")
	return cmd
}

func nameOf(list destination.List, id destination.ID) string {
	if d, ok := list.Find(id); ok {
		return d.Name
	}
	return fmt.Sprintf("#%d", id)
}

func resetCmd(opts *options) *cobra.Command {
	var keepMoves bool

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Forget the saved order and return to the default",
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := setup(*opts, true)
			if err != nil {
				return err
			}
			defer e.Close()

			if err := e.orders.Clear(cmd.Context()); err != nil {
				return fmt.Errorf("clear order: %w", err)
			}
			if !keepMoves {
				if err := e.moves.Clear(cmd.Context()); err != nil {
					return fmt.Errorf("clear moves: %w", err)
				}
			}
			e.log.Info("order reset", "keep_moves", keepMoves)
			fmt.Fprintln(cmd.OutOrStdout(), "order reset")
			return nil
		},
	}
	cmd.Flags().BoolVar(&keepMoves, "keep-moves", false, "keep the move history")
	return cmd
}

func configCmd(opts *options) *cobra.Command {
	var initFile, force bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show the effective settings or write a default config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := useConfigPath(*opts); err != nil {
				return err
			}
			path := config.Path()
			out := cmd.OutOrStdout()

			if initFile {
				if _, err := os.Stat(path); err == nil && !force {
					return fmt.Errorf("%s already exists (use --force to overwrite)", path)
				}
				if err := config.Save(config.Default()); err != nil {
					return err
				}
				fmt.Fprintf(out, "wrote %s\n", path)
				return nil
			}

			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("config: %w", err)
			}
			fmt.Fprintf(out, "file:                %s\n", path)
			fmt.Fprintf(out, "drag.mouse_distance: %d\n", cfg.Drag.MouseDistance)
			fmt.Fprintf(out, "drag.touch_distance: %d\n", cfg.Drag.TouchDistance)
			fmt.Fprintf(out, "store.enabled:       %t\n", cfg.Store.Enabled)
			fmt.Fprintf(out, "store.path:          %s\n", cfg.Store.Path)
			fmt.Fprintf(out, "log.path:            %s\n", cfg.Log.Path)
			fmt.Fprintf(out, "log.level:           %s\n", cfg.Log.Level)
			fmt.Fprintf(out, "ui.preview_width:    %d\n", cfg.UI.PreviewWidth)
			fmt.Fprintf(out, "ui.card_width:       %d\n", cfg.UI.CardWidth)
			return nil
		},
	}
	cmd.Flags().BoolVar(&initFile, "init", false, "write the default settings to the config file")
	cmd.Flags().BoolVar(&force, "force", false, "overwrite an existing config file with --init")
	return cmd
}
