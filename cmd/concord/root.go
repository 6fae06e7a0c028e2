package main

import (
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "concord",
	Short: "ODRL policy conformance and conflict classification",
	Long: `Concord validates ODRL 2.2 rights-expression documents, classifies
policy conflicts against a closed taxonomy, and drives a bounded
repair loop that fixes non-conformant documents with an LLM.

Core capabilities:
- Validates Turtle documents against structural shape rules
- Checks operand/operator compatibility from the operand registry
- Classifies conflict signals into fourteen conflict types
- Generates ODRL Turtle from approved policy text
- Repairs invalid documents with validate/regenerate attempts`,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(fixCmd)
	rootCmd.AddCommand(classifyCmd)
	rootCmd.AddCommand(operandsCmd)
	rootCmd.AddCommand(conflictsCmd)
	rootCmd.AddCommand(sessionsCmd)
	rootCmd.AddCommand(configCmd)
	rootCmd.AddCommand(versionCmd)
}
