// ABOUTME: Login, logout, and whoami commands.
// ABOUTME: Identity is a plain username; records are namespaced by it.
package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var loginCmd = &cobra.Command{
	Use:   "login [username]",
	Short: "Log in as a user",
	Long: `Log in with a username. No password, no account: the name only
namespaces your local records. Logging in again with the same name
restores everything you logged before.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var username string
		if len(args) == 1 {
			username = args[0]
		} else {
			username = promptLine(stdinReader(), "Username", appStore.LastLoggedInUser())
		}

		if err := appStore.Login(username); err != nil {
			return err
		}

		color.Green("✓ Logged in as %s", appStore.CurrentUser())
		if n := len(appStore.History()); n > 0 {
			fmt.Printf("  %d workout sessions on record\n", n)
		}
		return nil
	},
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Log out",
	RunE: func(cmd *cobra.Command, args []string) error {
		user := appStore.CurrentUser()
		if user == "" {
			fmt.Println("Not logged in.")
			return nil
		}
		appStore.Logout()
		color.Green("✓ Logged out %s (records kept)", user)
		return nil
	},
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the active user",
	RunE: func(cmd *cobra.Command, args []string) error {
		user := appStore.CurrentUser()
		if user == "" {
			fmt.Println("Not logged in.")
			return nil
		}
		fmt.Println(user)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(loginCmd)
	rootCmd.AddCommand(logoutCmd)
	rootCmd.AddCommand(whoamiCmd)
}
