// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the quran-reader CLI.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pdiddy/quran-reader/internal/config"
	"github.com/pdiddy/quran-reader/internal/equran"
	"github.com/pdiddy/quran-reader/internal/logger"
	"github.com/pdiddy/quran-reader/internal/session"
	"github.com/pdiddy/quran-reader/pkg/types"
)

// version is set at build time via ldflags.
var version = "dev"

// v holds defaults, environment lookup, and bound flags.
var v *viper.Viper

// app is populated by the root PersistentPreRunE before any command runs.
var app struct {
	cfg    types.Config
	log    *zap.Logger
	client *equran.Client
}

// rootCmd is the base command. Without a subcommand it starts the
// interactive menu.
var rootCmd = &cobra.Command{
	Use:   "quran-reader",
	Short: "Browse Quran chapters and verses from the eQuran.id API",
	Long: `quran-reader fetches the list of the 114 chapters of the Quran from the
eQuran.id API and lets you list, search, and inspect them. Run it without a
subcommand for the interactive menu, or use list, search, show, and stats
for scripted output in table, JSON, or YAML form.`,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: setup,
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if app.log != nil {
			_ = app.log.Sync()
		}
	},
	RunE: runMenu,
}

func init() {
	v = config.New(version)

	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "config file (default: ./quran-reader.yaml or ~/.config/quran-reader/quran-reader.yaml)")
	pf.String("base-url", "", "eQuran.id API base URL (default "+types.DefaultBaseURL+")")
	pf.Duration("timeout", 0, "HTTP request timeout (default 10s)")
	pf.BoolP("verbose", "v", false, "log requests at debug level")

	bindFlag("api.base_url", "base-url")
	bindFlag("api.timeout", "timeout")
}

func bindFlag(key, name string) {
	if err := v.BindPFlag(key, rootCmd.PersistentFlags().Lookup(name)); err != nil {
		panic(err)
	}
}

func setup(cmd *cobra.Command, args []string) error {
	cfgFile, _ := cmd.Flags().GetString("config")
	cfg, used, err := config.Load(v, cfgFile)
	if err != nil {
		return err
	}
	if used != "" {
		fmt.Fprintln(os.Stderr, "Using config file:", used)
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	log, err := logger.New(cfg, verbose)
	if err != nil {
		return err
	}

	app.cfg = cfg
	app.log = log
	app.client = equran.NewClient(cfg.API, log)
	return nil
}

func runMenu(cmd *cobra.Command, args []string) error {
	s := session.New(app.client, cmd.InOrStdin(), cmd.OutOrStdout(), app.cfg.Display, app.log)
	return s.Run(cmd.Context())
}

// finish reports the outcome of a command and returns the exit code. A
// cancelled context means the user pressed Ctrl-C; that prints a farewell
// and is not a failure, whichever command was running.
func finish(err error, stdout, stderr io.Writer) int {
	switch {
	case err == nil:
		return 0
	case errors.Is(err, context.Canceled):
		fmt.Fprintln(stdout, "\n\nStopped by user.")
		return 0
	default:
		fmt.Fprintln(stderr, "Error:", err)
		return 1
	}
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	code := finish(rootCmd.ExecuteContext(ctx), os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
