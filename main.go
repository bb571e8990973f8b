package main

import (
	"fmt"
	"os"

	"github.com/movey-net/movey-cli/cmd"

	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "movey",
	Short: "Movey - A CLI for interacting with the Movey package registry.",
	Long: `Movey is the command-line client for the Movey package registry.

Features:
  - Save your Movey API token for publishing packages
  - Remove a saved token when rotating credentials

Usage:
  movey <command> [flags]

Available Commands:
  login      Save your Movey API token
  logout     Remove your saved Movey API token

Run 'movey help <command>' for more details on a specific command.
`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Run: func(cmd *cobra.Command, args []string) {
		banner := figure.NewColorFigure("Movey", "alligator2", "green", true)
		banner.Print()
		fmt.Println("Welcome to Movey! Run 'movey --help' to see available commands.")
	},
}

func init() {
	rootCmd.AddCommand(cmd.LoginCmd)
	rootCmd.AddCommand(cmd.LogoutCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
