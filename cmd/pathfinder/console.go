package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/aretw0/pathfinder"
	"github.com/aretw0/pathfinder/internal/cli"
	"github.com/aretw0/pathfinder/internal/presentation/tui"
	"github.com/aretw0/pathfinder/pkg/observability"
	"github.com/spf13/cobra"
)

var consoleCmd = &cobra.Command{
	Use:   "console",
	Short: "Edit the board and run searches interactively",
	Long: `Starts a line-oriented console over one board. Place obstacles, move the
start and finish, scatter random walls and run the search as often as you like.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runConsole(cmd); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(consoleCmd)

	addScenarioFlags(consoleCmd.Flags())
	consoleCmd.Flags().BoolP("animate", "a", false, "Redraw the board after every step")
	consoleCmd.Flags().Duration("delay", 0, "Pause between animated frames (overrides the scenario)")
	consoleCmd.Flags().Bool("plain", false, "Disable colors and cursor movement")
}

func runConsole(cmd *cobra.Command) error {
	logger, err := newLogger(cmd)
	if err != nil {
		return err
	}
	sc, err := loadScenario(cmd)
	if err != nil {
		return err
	}

	opts := cli.RunOptions{Format: cli.FormatBoard, Delay: sc.Delay}
	opts.Animate, _ = cmd.Flags().GetBool("animate")
	opts.Plain, _ = cmd.Flags().GetBool("plain")
	if cmd.Flags().Changed("delay") {
		opts.Delay, _ = cmd.Flags().GetDuration("delay")
	}

	sess, err := cli.NewSession(sc, logger, observability.LogHooks(logger))
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if !opts.Plain {
		tui.PrintBanner(os.Stdout, cli.Profile(os.Stdout, false), pathfinder.Version)
	}
	return cli.NewConsole(sess, os.Stdin, os.Stdout, opts).Serve(ctx)
}
