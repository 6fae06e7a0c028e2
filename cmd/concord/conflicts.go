package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ShayCichocki/concord/internal/conflict"
)

var conflictsPrompt bool

var conflictsCmd = &cobra.Command{
	Use:   "conflicts [type]",
	Short: "List the conflict taxonomy",
	Long: `List the conflict detection strategies in priority order. With a type
argument, shows only that type. With --prompt, prints the full
detection prompt section(s) instead of the summary lines.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		taxonomy := conflict.Default()

		strategies := taxonomy.Strategies()
		if len(args) == 1 {
			conflictType := conflict.Type(args[0])
			strategy, ok := taxonomy.StrategyFor(conflictType)
			if !ok {
				return fmt.Errorf("unknown conflict type %q", args[0])
			}
			strategies = []conflict.Strategy{strategy}
		}

		for _, s := range strategies {
			if conflictsPrompt {
				section, err := taxonomy.DetectionPrompt(s.Conflict)
				if err != nil {
					return err
				}
				fmt.Println(section)
				continue
			}

			fmt.Printf("%2d. %s (%s)\n", s.Priority, s.Conflict, s.Conflict.Family())
			fmt.Printf("    action: %s, principle: %s\n", s.Default, s.Principle)
			if len(s.Keywords) > 0 {
				fmt.Printf("    keywords: %s\n", strings.Join(s.Keywords, ", "))
			}
		}
		return nil
	},
}

func init() {
	conflictsCmd.Flags().BoolVar(&conflictsPrompt, "prompt", false, "Print full detection prompt sections")
}
