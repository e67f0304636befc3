package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var (
	cfg    *Config
	client *Client
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "werewolf",
		Short: "CLI tool for the werewolf game API",
		Long: `werewolf is a CLI tool for interacting with the werewolf game JSON API.

It supports room management, game actions, and real-time SSE event streaming.
Creating or joining a room saves your player identity so later commands can
act on your behalf without repeating flags.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Load saved identity if not provided via flag/env
			if err := cfg.LoadIdentity(); err != nil {
				return err
			}

			client = NewClient(cfg.ServerURL)
			return nil
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.ServerURL, "server", cfg.ServerURL, "Server URL (env: WEREWOLF_SERVER)")
	rootCmd.PersistentFlags().StringVar(&cfg.RoomCode, "room", cfg.RoomCode, "Room code (env: WEREWOLF_ROOM)")
	rootCmd.PersistentFlags().StringVar(&cfg.PlayerID, "player", cfg.PlayerID, "Player ID (env: WEREWOLF_PLAYER)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose output")

	// Add subcommands
	rootCmd.AddCommand(newRoomCmd())
	rootCmd.AddCommand(newGameCmd())
	rootCmd.AddCommand(newEventsCmd())
	rootCmd.AddCommand(newHealthCmd())
	rootCmd.AddCommand(newStatsCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
