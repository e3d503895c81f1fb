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

// runCmd represents the run command
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one search and print the result",
	Long: `Loads a board from --config (or the built-in demo board), applies the board
flags and runs A* once. With --animate the board is redrawn after every step.`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := runSearch(cmd); err != nil {
			fmt.Printf("Error: %v\n", err)
			os.Exit(1)
		}
	},
}

func init() {
	rootCmd.AddCommand(runCmd)

	addScenarioFlags(runCmd.Flags())
	runCmd.Flags().StringP("format", "f", cli.FormatBoard, "Output: board, mermaid or json")
	runCmd.Flags().BoolP("animate", "a", false, "Redraw the board after every step")
	runCmd.Flags().Duration("delay", 0, "Pause between animated frames (overrides the scenario)")
	runCmd.Flags().Bool("plain", false, "Disable colors and cursor movement")
	runCmd.Flags().Bool("visited", false, "Include expanded cells in mermaid output")
}

func runSearch(cmd *cobra.Command) error {
	logger, err := newLogger(cmd)
	if err != nil {
		return err
	}
	sc, err := loadScenario(cmd)
	if err != nil {
		return err
	}

	opts := cli.RunOptions{Delay: sc.Delay}
	opts.Format, _ = cmd.Flags().GetString("format")
	opts.Animate, _ = cmd.Flags().GetBool("animate")
	opts.Plain, _ = cmd.Flags().GetBool("plain")
	opts.Visited, _ = cmd.Flags().GetBool("visited")
	if cmd.Flags().Changed("delay") {
		opts.Delay, _ = cmd.Flags().GetDuration("delay")
	}
	if err := opts.Validate(); err != nil {
		return err
	}

	sess, err := cli.NewSession(sc, logger, observability.LogHooks(logger))
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out := os.Stdout
	if opts.Format == cli.FormatBoard && cli.IsTerminal(out) && !opts.Plain {
		tui.PrintBanner(out, cli.Profile(out, false), pathfinder.Version)
	}

	_, err = cli.Run(ctx, out, sess, opts)
	return err
}
