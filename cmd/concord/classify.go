package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ShayCichocki/concord/internal/conflict"
)

var (
	classifyKeywords   []string
	classifyPredicates []string
	classifyPrompt     bool
)

var classifyCmd = &cobra.Command{
	Use:   "classify",
	Short: "Classify a conflict signal against the taxonomy",
	Long: `Classify an already-extracted conflict signal into one of the fourteen
conflict types. Strategies are tried in ascending priority order and
the first match wins; a signal matching no strategy is an error, never
a silent default.

Keyword hits are passed with --keyword and structural predicates with
--predicate key=value. With --prompt, prints the detection prompt
section for the classified type.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(classifyKeywords) == 0 && len(classifyPredicates) == 0 {
			return fmt.Errorf("at least one --keyword or --predicate is required")
		}

		predicates := make(map[string]string)
		for _, p := range classifyPredicates {
			key, value, ok := strings.Cut(p, "=")
			if !ok {
				return fmt.Errorf("invalid predicate %q: expected key=value", p)
			}
			predicates[key] = value
		}

		taxonomy := conflict.Default()
		sig := conflict.Signal{Keywords: classifyKeywords, Predicates: predicates}

		conflictType, err := taxonomy.Classify(sig)
		if err != nil {
			if errors.Is(err, conflict.ErrNoMatchingStrategy) {
				return fmt.Errorf("signal matches no detection strategy")
			}
			return err
		}

		strategy, _ := taxonomy.StrategyFor(conflictType)
		fmt.Printf("type: %s\n", conflictType)
		fmt.Printf("family: %s\n", conflictType.Family())
		fmt.Printf("priority: %d\n", strategy.Priority)
		fmt.Printf("action: %s\n", strategy.Default)
		fmt.Printf("principle: %s\n", strategy.Principle)

		if classifyPrompt {
			section, err := taxonomy.DetectionPrompt(conflictType)
			if err != nil {
				return err
			}
			fmt.Println()
			fmt.Println(section)
		}
		return nil
	},
}

func init() {
	classifyCmd.Flags().StringArrayVar(&classifyKeywords, "keyword", nil, "Keyword hit from the policy text (repeatable)")
	classifyCmd.Flags().StringArrayVar(&classifyPredicates, "predicate", nil, "Structural predicate as key=value (repeatable)")
	classifyCmd.Flags().BoolVar(&classifyPrompt, "prompt", false, "Print the detection prompt for the classified type")
}
