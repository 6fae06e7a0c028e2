package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ShayCichocki/concord/internal/config"
	"github.com/ShayCichocki/concord/internal/repair"
)

var fixOutput string

var fixCmd = &cobra.Command{
	Use:   "fix <file>",
	Short: "Repair an invalid ODRL Turtle document",
	Long: `Run an existing ODRL Turtle document through the bounded repair loop.

The document is validated and, while violations remain and attempts
are left, regenerated by the LLM from the violation feedback. The
final document is printed regardless of outcome; the exit code is
non-zero when the attempt budget is exhausted.`,
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

		client, err := newAPIClient(cfg)
		if err != nil {
			return err
		}

		res, err := runRepair(cmd.Context(), cfg, client, "", string(data))
		if res != nil {
			reportOutcome(res)
			if fixOutput != "" {
				if werr := os.WriteFile(fixOutput, []byte(res.FinalDocument+"\n"), 0644); werr != nil {
					return fmt.Errorf("write output: %w", werr)
				}
				printStatus("✓", fmt.Sprintf("Wrote %s", fixOutput), color.FgGreen)
			} else {
				fmt.Println(res.FinalDocument)
			}
		}
		if err != nil {
			return err
		}
		if res != nil && res.State == repair.StateExhaustedBudget {
			os.Exit(1)
		}
		return nil
	},
}

func init() {
	fixCmd.Flags().StringVarP(&fixOutput, "output", "o", "", "Write the final document to a file instead of stdout")
	fixCmd.Flags().StringVar(&generateLogPath, "log", "", "Write a session debug log to this path")
}
