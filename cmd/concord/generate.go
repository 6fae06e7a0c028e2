package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ShayCichocki/concord/internal/api"
	"github.com/ShayCichocki/concord/internal/config"
	"github.com/ShayCichocki/concord/internal/repair"
	"github.com/ShayCichocki/concord/internal/state"
	"github.com/ShayCichocki/concord/pkg/policy"
)

var (
	generatePolicyID string
	generateNoRepair bool
	generateOutput   string
	generateLogPath  string
)

var generateCmd = &cobra.Command{
	Use:   "generate <policy text>",
	Short: "Generate an ODRL Turtle document from policy text",
	Long: `Generate an ODRL Turtle document from approved policy text.

The generated document is validated and, unless --no-repair is set,
invalid documents are run through the bounded repair loop before
being printed.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		policyText := strings.Join(args, " ")

		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		client, err := newAPIClient(cfg)
		if err != nil {
			return err
		}

		generator := api.NewGenerator(client)
		generated, err := generator.Generate(cmd.Context(), policyText, generatePolicyID)
		if err != nil {
			return err
		}

		document := generated.Turtle
		if !generateNoRepair {
			res, err := runRepair(cmd.Context(), cfg, client, policyText, document)
			if res != nil {
				document = res.FinalDocument
				reportOutcome(res)
			}
			if err != nil {
				return err
			}
		}

		if generateOutput != "" {
			if err := os.WriteFile(generateOutput, []byte(document+"\n"), 0644); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
			printStatus("✓", fmt.Sprintf("Wrote %s", generateOutput), color.FgGreen)
			return nil
		}
		fmt.Println(document)
		return nil
	},
}

// newAPIClient builds the Anthropic client from configuration.
func newAPIClient(cfg *config.Config) (*api.Client, error) {
	key, err := config.APIKey(cfg)
	if err != nil && !cfg.Anthropic.UseAWSBedrock {
		return nil, err
	}
	return api.NewClient(api.ClientConfig{
		Model:         anthropic.Model(cfg.Anthropic.Model),
		APIKey:        key,
		UseAWSBedrock: cfg.Anthropic.UseAWSBedrock,
		AWSRegion:     cfg.Anthropic.AWSRegion,
		AWSProfile:    cfg.Anthropic.AWSProfile,
	})
}

// runRepair drives the bounded repair loop over a candidate document.
func runRepair(ctx context.Context, cfg *config.Config, client *api.Client, userText, document string) (*repair.Result, error) {
	engine, err := buildEngine(cfg)
	if err != nil {
		return nil, err
	}

	repairCfg := repair.Config{
		MaxAttempts:    cfg.Repair.MaxAttempts,
		AttemptTimeout: cfg.Repair.AttemptTimeout,
	}
	if repairCfg.MaxAttempts < 1 {
		repairCfg = repair.DefaultConfig()
	}

	var opts []repair.Option

	store, err := sessionStore(cfg)
	if err != nil {
		return nil, fmt.Errorf("open session store: %w", err)
	}
	if store != nil {
		defer store.Close()
		opts = append(opts, repair.WithStore(store))
	}

	if generateLogPath != "" {
		logger, err := repair.NewSessionLogger(generateLogPath)
		if err != nil {
			return nil, err
		}
		defer logger.Close()
		opts = append(opts, repair.WithLogger(logger))
	}

	orch, err := repair.NewOrchestrator(engine, api.NewFixer(client), policy.TurtleDecoder{}, repairCfg, opts...)
	if err != nil {
		return nil, err
	}
	return orch.Run(ctx, userText, document)
}

// reportOutcome prints the terminal state of a repair session.
func reportOutcome(res *repair.Result) {
	switch res.State {
	case repair.StateConformant:
		printStatus("✓", fmt.Sprintf("Document conformant after %d attempt(s)", res.AttemptsUsed), color.FgGreen)
	case repair.StateExhaustedBudget:
		printStatus("✗", fmt.Sprintf("Attempt budget exhausted after %d attempt(s); %d issue(s) unresolved",
			res.AttemptsUsed, len(res.Unresolved)), color.FgRed)
	}
}

// sessionStore opens the configured session store, or returns nil when
// persistence is disabled.
func sessionStore(cfg *config.Config) (*state.Store, error) {
	if cfg.Store.Disabled {
		return nil, nil
	}
	path := cfg.Store.Path
	if path == "" {
		path = state.DefaultPath()
	}
	return state.Open(path)
}

func init() {
	generateCmd.Flags().StringVar(&generatePolicyID, "policy-id", "", "Policy identifier embedded in the document URI")
	generateCmd.Flags().BoolVar(&generateNoRepair, "no-repair", false, "Skip the repair loop on invalid output")
	generateCmd.Flags().StringVarP(&generateOutput, "output", "o", "", "Write the document to a file instead of stdout")
	generateCmd.Flags().StringVar(&generateLogPath, "log", "", "Write a session debug log to this path")
}
