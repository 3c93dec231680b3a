package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/rules.yaml
var defaultRulesYAML []byte

// DefaultRules returns the standard 1-to-50 rule set.
func DefaultRules() Rules {
	return Rules{
		TotalNumbers:   50,
		GridSize:       30,
		GridColumns:    5,
		InitialDisplay: 10,
		CorrectSettle:  100 * time.Millisecond,
		WrongSettle:    200 * time.Millisecond,
		Countdown: CountdownConfig{
			Steps: []string{"3", "2", "1", "START!"},
			Step:  800 * time.Millisecond,
			Tail:  500 * time.Millisecond,
		},
		LeaderboardCap: 20,
	}
}

// DefaultRulesYAML returns the embedded default rules file.
func DefaultRulesYAML() []byte {
	return defaultRulesYAML
}
