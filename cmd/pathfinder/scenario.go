package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/aretw0/pathfinder/internal/config"
	"github.com/aretw0/pathfinder/pkg/domain"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// addScenarioFlags registers the board flags shared by run, console and serve.
func addScenarioFlags(fs *pflag.FlagSet) {
	fs.StringP("config", "c", "", "Scenario file (YAML or JSON)")
	fs.Int("rows", 0, "Cells per side (default 10)")
	fs.Int("width", 0, "Display extent in pixels (default 500)")
	fs.String("start", "", "Start cell as row,col")
	fs.String("finish", "", "Finish cell as row,col")
	fs.Int("scatter", 0, "Random obstacles to drop")
	fs.Uint64("seed", 0, "Seed for --scatter (0 picks one from the clock)")
}

// loadScenario starts from the scenario file (or the demo board) and lets
// explicit flags override it.
func loadScenario(cmd *cobra.Command) (config.Scenario, error) {
	fs := cmd.Flags()
	sc := config.Default()

	if path, _ := fs.GetString("config"); path != "" {
		loaded, err := config.LoadScenario(path)
		if err != nil {
			return config.Scenario{}, err
		}
		sc = loaded
	}

	if fs.Changed("rows") {
		rows, _ := fs.GetInt("rows")
		sc = sc.WithRows(rows)
	}
	if fs.Changed("width") {
		sc.Width, _ = fs.GetInt("width")
	}
	for _, role := range []struct {
		flag string
		dst  **domain.Position
	}{
		{"start", &sc.Start},
		{"finish", &sc.Finish},
	} {
		if !fs.Changed(role.flag) {
			continue
		}
		raw, _ := fs.GetString(role.flag)
		p, err := parsePosition(raw)
		if err != nil {
			return config.Scenario{}, fmt.Errorf("--%s: %w", role.flag, err)
		}
		*role.dst = &p
	}
	if fs.Changed("scatter") {
		sc.Scatter, _ = fs.GetInt("scatter")
	}
	if fs.Changed("seed") {
		sc.Seed, _ = fs.GetUint64("seed")
	}

	if err := sc.Validate(); err != nil {
		return config.Scenario{}, err
	}
	return sc, nil
}

// parsePosition reads "row,col".
func parsePosition(s string) (domain.Position, error) {
	rowText, colText, ok := strings.Cut(s, ",")
	if !ok {
		return domain.Position{}, fmt.Errorf("want row,col, got %q", s)
	}
	row, err := strconv.Atoi(strings.TrimSpace(rowText))
	if err != nil {
		return domain.Position{}, fmt.Errorf("bad row in %q", s)
	}
	col, err := strconv.Atoi(strings.TrimSpace(colText))
	if err != nil {
		return domain.Position{}, fmt.Errorf("bad col in %q", s)
	}
	return domain.Pos(row, col), nil
}
