package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ShayCichocki/concord/internal/config"
)

var operandsCmd = &cobra.Command{
	Use:   "operands",
	Short: "List the operand registry",
	Long: `List the operand vocabulary and the operators each operand is
compatible with. Uses the configured YAML operand table when one is
set, the built-in ODRL table otherwise.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		reg, err := loadRegistry(cfg)
		if err != nil {
			return err
		}

		for _, op := range reg.Operands() {
			fmt.Printf("%s (%s)\n", op.Name, op.IRI)
			if op.Definition != "" {
				fmt.Printf("  %s\n", op.Definition)
			}
			ops := make([]string, len(op.Operators))
			for i, o := range op.Operators {
				ops[i] = string(o)
			}
			fmt.Printf("  operators: %s\n", strings.Join(ops, ", "))
			if op.Datatype != "" {
				fmt.Printf("  datatype: %s\n", op.Datatype)
			}
			fmt.Println()
		}
		return nil
	},
}
