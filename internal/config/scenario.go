package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/aretw0/pathfinder/pkg/domain"
	"github.com/aretw0/pathfinder/pkg/grid"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Scenario describes a board to load before a run.
type Scenario struct {
	Rows      int               `mapstructure:"rows"`
	Width     int               `mapstructure:"width"`
	Start     *domain.Position  `mapstructure:"start"`
	Finish    *domain.Position  `mapstructure:"finish"`
	Obstacles []domain.Position `mapstructure:"obstacles"`
	Scatter   int               `mapstructure:"scatter"`
	Seed      uint64            `mapstructure:"seed"`
	Delay     time.Duration     `mapstructure:"delay"`
}

// Default is the stock 10×10 demo board.
func Default() Scenario {
	start, finish := domain.Pos(0, 0), domain.Pos(9, 9)
	return Scenario{
		Rows:   10,
		Width:  500,
		Start:  &start,
		Finish: &finish,
		Obstacles: []domain.Position{
			domain.Pos(9, 7),
			domain.Pos(8, 7),
			domain.Pos(6, 7),
			domain.Pos(6, 8),
		},
	}
}

// LoadScenario reads a YAML or JSON scenario file. Keys missing from the file
// keep their Default values.
func LoadScenario(path string) (Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("failed to read scenario: %w", err)
	}

	var raw map[string]any
	ext := strings.ToLower(filepath.Ext(path))

	if ext == ".json" {
		if err := json.Unmarshal(data, &raw); err != nil {
			return Scenario{}, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	} else {
		// Default to YAML
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return Scenario{}, fmt.Errorf("failed to parse %s: %w", filepath.Base(path), err)
		}
	}

	return Decode(raw)
}

// Decode converts a generic map (as produced by YAML or JSON) into a Scenario.
func Decode(raw map[string]any) (Scenario, error) {
	sc := Default()
	// Explicit obstacle lists replace the demo walls rather than appending to them.
	if _, ok := raw["obstacles"]; ok {
		sc.Obstacles = nil
	}

	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &sc,
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			positionHook,
		),
	})
	if err != nil {
		return Scenario{}, err
	}
	if err := dec.Decode(raw); err != nil {
		return Scenario{}, fmt.Errorf("invalid scenario: %w", err)
	}

	// A resized board without its own finish or walls takes the demo ones,
	// fitted to the new size.
	if def := Default(); sc.Rows != def.Rows && sc.Rows > 0 {
		fitted := def.WithRows(sc.Rows)
		if _, ok := raw["finish"]; !ok {
			sc.Finish = fitted.Finish
		}
		if _, ok := raw["obstacles"]; !ok {
			sc.Obstacles = fitted.Obstacles
		}
	}

	if err := sc.Validate(); err != nil {
		return Scenario{}, err
	}
	return sc, nil
}

// positionHook accepts the compact [row, col] form for positions.
func positionHook(from, to reflect.Type, data any) (any, error) {
	if to != reflect.TypeOf(domain.Position{}) || (from.Kind() != reflect.Slice && from.Kind() != reflect.Array) {
		return data, nil
	}
	v := reflect.ValueOf(data)
	if v.Len() != 2 {
		return nil, fmt.Errorf("position needs exactly [row, col], got %d values", v.Len())
	}
	return map[string]any{"row": v.Index(0).Interface(), "col": v.Index(1).Interface()}, nil
}

// WithRows returns a copy sized to rows. A finish on the old bottom-right
// corner moves to the new one; fixed obstacles that no longer fit are dropped.
func (s Scenario) WithRows(rows int) Scenario {
	out := s
	out.Rows = rows
	if s.Finish != nil && *s.Finish == domain.Pos(s.Rows-1, s.Rows-1) {
		corner := domain.Pos(rows-1, rows-1)
		out.Finish = &corner
	}
	out.Obstacles = nil
	for _, o := range s.Obstacles {
		if o.Row < rows && o.Col < rows {
			out.Obstacles = append(out.Obstacles, o)
		}
	}
	return out
}

// Validate checks the scenario against its own grid size.
func (s Scenario) Validate() error {
	if s.Rows < 1 {
		return fmt.Errorf("%w: rows=%d", domain.ErrInvalidSize, s.Rows)
	}
	in := func(p domain.Position) bool {
		return p.Row >= 0 && p.Row < s.Rows && p.Col >= 0 && p.Col < s.Rows
	}
	var errs []error
	if s.Start != nil && !in(*s.Start) {
		errs = append(errs, fmt.Errorf("start %s: %w", *s.Start, domain.ErrOutOfBounds))
	}
	if s.Finish != nil && !in(*s.Finish) {
		errs = append(errs, fmt.Errorf("finish %s: %w", *s.Finish, domain.ErrOutOfBounds))
	}
	if s.Start != nil && s.Finish != nil && *s.Start == *s.Finish {
		errs = append(errs, fmt.Errorf("start and finish share %s", *s.Start))
	}
	for _, o := range s.Obstacles {
		if !in(o) {
			errs = append(errs, fmt.Errorf("obstacle %s: %w", o, domain.ErrOutOfBounds))
		}
	}
	if s.Scatter < 0 {
		errs = append(errs, fmt.Errorf("scatter must not be negative, got %d", s.Scatter))
	}
	return errors.Join(errs...)
}

// Apply places the roles and fixed obstacles on g. Scattering is left to the
// session, which owns the random source.
func (s Scenario) Apply(g *grid.Grid) {
	if s.Start != nil {
		g.SetStart(*s.Start)
	}
	if s.Finish != nil {
		g.SetFinish(*s.Finish)
	}
	for _, o := range s.Obstacles {
		g.SetObstacle(o)
	}
}
