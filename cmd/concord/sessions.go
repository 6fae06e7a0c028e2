package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/ShayCichocki/concord/internal/config"
	"github.com/ShayCichocki/concord/internal/repair"
	"github.com/ShayCichocki/concord/internal/state"
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions [session-id]",
	Short: "List persisted repair sessions",
	Long: `List persisted repair sessions, most recent first. With a session ID,
shows that session's full attempt trace.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		store, err := sessionStore(cfg)
		if err != nil {
			return fmt.Errorf("open session store: %w", err)
		}
		if store == nil {
			return fmt.Errorf("session persistence is disabled")
		}
		defer store.Close()

		if len(args) == 1 {
			return showAttempts(store, args[0])
		}

		sessions, err := store.Sessions()
		if err != nil {
			return err
		}
		if len(sessions) == 0 {
			fmt.Println("No sessions recorded.")
			return nil
		}
		for _, s := range sessions {
			symbol, attr := "✗", color.FgRed
			if s.State == repair.StateConformant {
				symbol, attr = "✓", color.FgGreen
			}
			printStatus(symbol, fmt.Sprintf("%s  %s  %d/%d attempt(s)  %s",
				s.ID, s.State, s.AttemptsUsed, s.MaxAttempts,
				s.StartedAt.Local().Format("2006-01-02 15:04:05")), attr)
		}
		return nil
	},
}

// showAttempts prints one session's attempt trace.
func showAttempts(store *state.Store, sessionID string) error {
	attempts, err := store.Attempts(sessionID)
	if err != nil {
		return err
	}
	if len(attempts) == 0 {
		return fmt.Errorf("no attempts recorded for session %s", sessionID)
	}

	for _, a := range attempts {
		status := fmt.Sprintf("%d issue(s)", len(a.Violations))
		attr := color.FgRed
		if a.Valid {
			status = "valid"
			attr = color.FgGreen
		}
		marker := ""
		if a.Terminal {
			marker = " [final]"
		}
		printStatus("•", fmt.Sprintf("attempt %d: %s%s", a.Index, status, marker), attr)
		for _, v := range a.Violations {
			fmt.Printf("    %s: %s\n", v.Category, v.Constraint)
		}
	}
	return nil
}
