package main

import (
	"errors"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"mad-life/internal/app"
	"mad-life/internal/config"
	"mad-life/internal/core"
	"mad-life/internal/pattern"
	"mad-life/internal/session"
	"mad-life/internal/term"
)

func main() {
	log.SetPrefix("mad-life: ")
	log.SetFlags(0)

	if err := newRootCmd().Execute(); err != nil {
		if errors.Is(err, core.ErrNoGUI) {
			fmt.Fprintln(os.Stderr, "Re-run with `go run -tags ebiten ./cmd/life` or use `life term`.")
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	flags := config.DefaultConfig()
	var configFile string

	load := func(fs *pflag.FlagSet) (*config.Config, *session.State, error) {
		cfg := flags
		if configFile != "" {
			fileCfg, err := config.Load(configFile)
			if err != nil {
				return nil, nil, fmt.Errorf("load config: %w", err)
			}
			fileCfg.Overlay(fs, flags)
			cfg = fileCfg
			log.Printf("loaded %s", configFile)
		}
		state, err := newState(cfg)
		if err != nil {
			return nil, nil, err
		}
		log.Printf("pattern %q seeded %d cells", cfg.Pattern, state.Cells.Len())
		return cfg, state, nil
	}

	root := &cobra.Command{
		Use:          "life",
		Short:        "Conway's Game of Life on an unbounded grid",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, state, err := load(cmd.Flags())
			if err != nil {
				return err
			}
			return app.Run(state, app.Options{
				Title:  "mad-life",
				Width:  cfg.Width,
				Height: cfg.Height,
				TPS:    cfg.TPS,
			})
		},
	}
	root.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	flags.Bind(root.PersistentFlags())

	termCmd := &cobra.Command{
		Use:   "term",
		Short: "run in the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, state, err := load(cmd.Flags())
			if err != nil {
				return err
			}
			return term.Run(state, term.Options{
				Interval: time.Second / time.Duration(cfg.TPS),
				LogFile:  cfg.Logging.File,
			})
		},
	}

	patternsCmd := &cobra.Command{
		Use:   "patterns",
		Short: "list seed patterns",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range pattern.Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
		},
	}

	root.AddCommand(termCmd, patternsCmd)
	return root
}

// newState validates cfg and builds the initial session.
func newState(cfg *config.Config) (*session.State, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	bg, fg, err := cfg.Colors()
	if err != nil {
		return nil, err
	}
	factory, err := pattern.Lookup(cfg.Pattern)
	if err != nil {
		return nil, err
	}
	params := cfg.PatternParams()
	seeder := func(seed int64) core.CellSet {
		p := params
		p.Seed = seed
		return factory(p)
	}

	return session.New(session.Options{
		View:       cfg.Viewport(),
		Background: bg,
		Foreground: fg,
		Paused:     cfg.Paused,
		Cells:      factory(params),
		Seed:       params.Seed,
		Seeder:     seeder,
		History:    cfg.History,
	}), nil
}
