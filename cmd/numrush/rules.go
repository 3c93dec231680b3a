package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/numrush/internal/config"
)

var rulesCmd = &cobra.Command{
	Use:   "rules",
	Short: "Print the effective round rules",
	Long: `Print the rules a round would use, after applying --rules or the
search path (~/.numrush/rules.yaml, ./configs/rules.yaml, built-in default).
The output is valid input for --rules.

Examples:
  numrush rules
  numrush rules --rules ./quick.yaml`,
	Args: cobra.NoArgs,
	Run:  runRules,
}

func runRules(cmd *cobra.Command, _ []string) {
	settings, err := config.LoadSettings(cmd.Flags(), flagSettings)
	if err != nil {
		fail("%v", err)
	}

	rules, err := config.LoadRules(settings.RulesPath)
	if err != nil {
		fail("%v", err)
	}

	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(rules); err != nil {
		fail("encoding rules: %v", err)
	}
	if err := enc.Close(); err != nil {
		fail("%v", err)
	}

	fmt.Fprintf(os.Stderr, "# countdown %s, grid %dx%d\n",
		rules.Countdown.CountdownDuration(), rules.GridColumns, rules.GridRows())
}
