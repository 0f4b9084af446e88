// Copyright 2023 Gustavo C. Viegas. All rights reserved.

// Orrery builds a solar system scene graph and inspects it.
//
// Usage:
//
//	orrery describe [--config file]
//	orrery step [--frames n] [--dt seconds] [--config file]
//	orrery draw [--frames n] [--dt seconds] [--config file]
//	orrery find path [--config file]
//
// Without --config, the built-in system is used.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/gviegas/orrery/config"
	"github.com/gviegas/orrery/solar"
)

type app struct {
	configPath string
	logLevel   string
	log        *slog.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := new(app)
	root := &cobra.Command{
		Use:           "orrery",
		Short:         "Build and inspect an animated solar system scene graph",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			var lvl slog.Level
			if err := lvl.UnmarshalText([]byte(a.logLevel)); err != nil {
				return fmt.Errorf("invalid --log-level %q", a.logLevel)
			}
			a.log = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: lvl}))
			return nil
		},
	}
	pf := root.PersistentFlags()
	pf.StringVarP(&a.configPath, "config", "c", "", "system description (.toml, .yaml or .yml)")
	pf.StringVar(&a.logLevel, "log-level", "warn", "log level (debug, info, warn or error)")

	root.AddCommand(
		newDescribeCmd(a),
		newStepCmd(a),
		newDrawCmd(a),
		newFindCmd(a),
	)
	return root
}

// build loads the configured system and builds it.
func (a *app) build() (*solar.Scene, error) {
	sys := config.Default()
	if a.configPath != "" {
		var err error
		if sys, err = config.Load(a.configPath); err != nil {
			return nil, err
		}
		a.log.Info("config loaded", "path", a.configPath, "name", sys.Name)
	}
	return solar.NewBuilder(a.log).Build(sys)
}
