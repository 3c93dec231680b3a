// Package config provides YAML-based round rules and the application
// settings layer for NumRush.
package config

import (
	"errors"
	"fmt"
	"time"
)

// Rules contains the tunable parameters of a round.
type Rules struct {
	TotalNumbers   int             `yaml:"total_numbers"`
	GridSize       int             `yaml:"grid_size"`
	GridColumns    int             `yaml:"grid_columns"`
	InitialDisplay int             `yaml:"initial_display"`
	CorrectSettle  time.Duration   `yaml:"correct_settle"`
	WrongSettle    time.Duration   `yaml:"wrong_settle"`
	Countdown      CountdownConfig `yaml:"countdown"`
	LeaderboardCap int             `yaml:"leaderboard_cap"`
}

// CountdownConfig defines the pre-round countdown sequence.
type CountdownConfig struct {
	Steps []string      `yaml:"steps"`
	Step  time.Duration `yaml:"step"`
	Tail  time.Duration `yaml:"tail"`
}

// ErrInvalidRules is returned by Validate for an unplayable rule set.
var ErrInvalidRules = errors.New("config: invalid rules")

// Validate checks that a round can be laid out with these rules.
func (r Rules) Validate() error {
	switch {
	case r.TotalNumbers <= 0:
		return fmt.Errorf("%w: total_numbers must be positive, got %d", ErrInvalidRules, r.TotalNumbers)
	case r.GridSize <= 0:
		return fmt.Errorf("%w: grid_size must be positive, got %d", ErrInvalidRules, r.GridSize)
	case r.GridColumns <= 0:
		return fmt.Errorf("%w: grid_columns must be positive, got %d", ErrInvalidRules, r.GridColumns)
	case r.InitialDisplay <= 0:
		return fmt.Errorf("%w: initial_display must be positive, got %d", ErrInvalidRules, r.InitialDisplay)
	case r.InitialDisplay > r.GridSize:
		return fmt.Errorf("%w: initial_display %d exceeds grid_size %d", ErrInvalidRules, r.InitialDisplay, r.GridSize)
	case r.InitialDisplay > r.TotalNumbers:
		return fmt.Errorf("%w: initial_display %d exceeds total_numbers %d", ErrInvalidRules, r.InitialDisplay, r.TotalNumbers)
	case r.CorrectSettle < 0 || r.WrongSettle < 0:
		return fmt.Errorf("%w: settle delays must not be negative", ErrInvalidRules)
	case r.LeaderboardCap <= 0:
		return fmt.Errorf("%w: leaderboard_cap must be positive, got %d", ErrInvalidRules, r.LeaderboardCap)
	}
	return nil
}

// GridRows returns the number of rows needed to render the board.
func (r Rules) GridRows() int {
	if r.GridColumns <= 0 {
		return 0
	}
	return (r.GridSize + r.GridColumns - 1) / r.GridColumns
}

// CountdownDuration returns the total time of the countdown sequence.
func (c CountdownConfig) CountdownDuration() time.Duration {
	return time.Duration(len(c.Steps))*c.Step + c.Tail
}
