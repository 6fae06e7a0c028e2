package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ShayCichocki/concord/internal/config"
	"github.com/ShayCichocki/concord/internal/report"
	"github.com/ShayCichocki/concord/pkg/policy"
)

var validateFeedback bool

var validateCmd = &cobra.Command{
	Use:   "validate <file>",
	Short: "Validate an ODRL Turtle document",
	Long: `Validate an ODRL Turtle document against the structural shape rules
and the operand/operator compatibility table.

Exits non-zero when the document has any findings, warnings included.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read document: %w", err)
		}

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		engine, err := buildEngine(cfg)
		if err != nil {
			return err
		}

		doc, err := policy.DecodeTurtle(string(data))
		if err != nil {
			return fmt.Errorf("parse document: %w", err)
		}

		rep := report.New("", string(data), engine.Evaluate(doc))

		if validateFeedback {
			fmt.Println(rep.RenderFeedback())
		} else {
			printReport(rep)
		}

		if !rep.IsValid() {
			os.Exit(1)
		}
		return nil
	},
}

// printReport writes a human-readable violation listing.
func printReport(rep *report.Report) {
	if rep.IsValid() {
		printStatus("✓", "Document is valid", color.FgGreen)
		return
	}
	printStatus("✗", rep.Summary(), color.FgRed)
	fmt.Println()

	for _, cat := range rep.Categories() {
		fmt.Printf("%s:\n", cat)
		for _, v := range rep.ByCategory(cat) {
			c := color.New(severityColor(v.Severity))
			fmt.Printf("  %s %s", c.Sprint("•"), v.Constraint)
			if v.FocusNode != "" {
				fmt.Printf(" (node: %s", v.FocusNode)
				if v.Path != "" {
					fmt.Printf(", path: %s", v.Path)
				}
				fmt.Print(")")
			}
			fmt.Println()
			if v.Observed != "" {
				fmt.Printf("    observed: %s\n", v.Observed)
			}
		}
		fmt.Println()
	}
}

func init() {
	validateCmd.Flags().BoolVar(&validateFeedback, "feedback", false, "Print the regeneration feedback report instead of the listing")
}
