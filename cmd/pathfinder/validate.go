package main

import (
	"context"
	"fmt"
	"os"

	"github.com/aretw0/pathfinder/internal/cli"
	"github.com/aretw0/pathfinder/internal/config"
	"github.com/aretw0/pathfinder/internal/logging"
	"github.com/aretw0/pathfinder/pkg/domain"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate <scenario>",
	Short: "Check a scenario file",
	Long: `Loads a scenario, reports decoding and bounds errors, then runs the search
once without output to tell whether the finish is reachable.`,
	Args: cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		steps, err := runValidate(args[0])
		if err != nil {
			fmt.Printf("Validation failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Scenario is valid! ✅ Shortest path: %d steps\n", steps)
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(path string) (int, error) {
	sc, err := config.LoadScenario(path)
	if err != nil {
		return 0, err
	}
	sess, err := cli.NewSession(sc, logging.NewNop(), domain.LifecycleHooks{})
	if err != nil {
		return 0, err
	}
	res, err := sess.Run(context.Background())
	if err != nil {
		return 0, err
	}
	if !res.Found() {
		return 0, fmt.Errorf("finish is unreachable (%d cells expanded)", res.Expanded)
	}
	return res.StepCount, nil
}
