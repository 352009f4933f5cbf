package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"leetterm/app"
	"leetterm/config"
	"leetterm/log"
)

var version = "1.0.0"

var (
	sessionFlag string
	csrfFlag    string
)

var rootCmd = &cobra.Command{
	Use:   "leetterm",
	Short: "A terminal client for solving coding problems",
	Long: `leetterm is a keyboard-driven terminal client for browsing coding
problems, reading their statements, and running and submitting solutions
without leaving the terminal.

Sign in by pasting your LEETCODE_SESSION and csrftoken cookie values into the
settings screen (S), or pass them with --session and --csrf.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		log.Initialize()
		defer log.Close()
		log.InfoLog.Printf("starting leetterm %s", version)
		return app.Run(cmd.Context(), sessionFlag, csrfFlag)
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("leetterm version %s\n", version)
	},
}

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Remove the stored configuration, including credentials",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Reset(); err != nil {
			return fmt.Errorf("failed to reset config: %w", err)
		}
		fmt.Println("configuration removed")
		return nil
	},
}

func init() {
	rootCmd.Flags().StringVar(&sessionFlag, "session", "", "LEETCODE_SESSION cookie value")
	rootCmd.Flags().StringVar(&csrfFlag, "csrf", "", "csrftoken cookie value")
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(resetCmd)
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
