// ABOUTME: Root Cobra command for coach CLI.
// ABOUTME: Handles storage and session lifecycle via PersistentPre/PostRunE.
package main

import (
	"fmt"

	"github.com/harperreed/coach/internal/config"
	"github.com/harperreed/coach/internal/session"
	"github.com/harperreed/coach/internal/storage"
	"github.com/spf13/cobra"
)

var (
	cfg      *config.Config
	kvStore  *storage.Store
	appStore *session.Store
)

var rootCmd = &cobra.Command{
	Use:   "coach",
	Short: "AI fitness coach with local tracking",
	Long: `Coach is a local-first AI fitness coach.

It generates personalized workout and nutrition plans with Gemini, tracks
your workout sessions set by set, and logs food, cardio, and steps. All
records are stored per user in a local key-value database.

QUICK START:

  $ coach login alice                  # Pick a username (no account needed)
  $ coach onboard                      # Answer the onboarding questions
  $ coach plan generate                # Generate your weekly plan
  $ coach workout start "Day 1"        # Track a workout interactively
  $ coach food search koshari          # Look up food nutrition
  $ coach steps set 8500               # Log today's steps

PLANS:

  $ coach plan show                    # View the weekly split
  $ coach plan custom                  # Build a plan by hand from the exercise library
  $ coach plan nutrition               # Generate a matching nutrition plan

TRACKING:

  $ coach history                      # Completed workout sessions
  $ coach cardio log "Rowing" --duration 20 --distance 4.5
  $ coach food analyze meal.jpg        # Estimate nutrition from a photo
  $ coach activity                     # Today's food, steps, and cardio

DATA STORAGE:

  Records live in a local KV store, namespaced per username. The default
  backend syncs through Charm Cloud (E2E encrypted with your SSH key); set
  "backend": "badger" in the config for local-only storage.

MCP INTEGRATION:

  Run 'coach mcp' to expose logging and query tools to MCP-compatible AI
  assistants:

  {
    "mcpServers": {
      "coach": { "command": "coach", "args": ["mcp"] }
    }
  }`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" || cmd.Name() == "help" {
			return nil
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		kvStore, err = cfg.OpenStorage()
		if err != nil {
			return fmt.Errorf("failed to open storage: %w", err)
		}

		appStore = session.New(kvStore)
		appStore.Resume()
		return nil
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if kvStore != nil {
			return kvStore.Close()
		}
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// requireLogin returns the active user or an instructive error.
func requireLogin() (string, error) {
	user := appStore.CurrentUser()
	if user == "" {
		return "", fmt.Errorf("not logged in - run 'coach login <username>' first")
	}
	return user, nil
}
