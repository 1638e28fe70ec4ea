//go:build windows

package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"proctiller/internal/config"
)

// options is shared by every subcommand. cfg is filled in before any
// subcommand runs.
type options struct {
	configPath string
	logLevel   string
	cfg        *config.Config
}

func NewRootCmd() *cobra.Command {
	root, _ := newRootCommand()
	return root
}

func newRootCommand() (*cobra.Command, *options) {
	opts := &options{}

	root := &cobra.Command{
		Use:   "proctiller",
		Short: "Find, open, launch and terminate Windows processes",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			if opts.logLevel != "" {
				cfg.Log.Level = opts.logLevel
			}
			if err := configureLogger(logrus.StandardLogger(), cfg.Log, cmd.ErrOrStderr()); err != nil {
				return err
			}
			opts.cfg = cfg
			return nil
		},
	}

	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "Path to a YAML configuration file")
	root.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Override the configured log level")

	root.AddCommand(newListCmd(opts))
	root.AddCommand(newFindCmd(opts))
	root.AddCommand(newOpenCmd(opts))
	root.AddCommand(newLaunchCmd(opts))
	root.AddCommand(newKillCmd(opts))
	root.AddCommand(newPeekCmd(opts))
	root.AddCommand(newPokeCmd(opts))
	root.AddCommand(newInfoCmd(opts))
	root.AddCommand(newUICmd(opts))

	root.SilenceUsage = true
	root.SilenceErrors = true

	return root, opts
}

// Execute runs the CLI entrypoint.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	root := NewRootCmd()
	if err := root.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
