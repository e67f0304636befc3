package cli

import (
	"github.com/spf13/cobra"
)

func newGameCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "game",
		Short: "Game action commands",
	}

	cmd.AddCommand(newGameStartCmd())
	cmd.AddCommand(newGameVoteCmd())
	cmd.AddCommand(newGameAbilityCmd())
	cmd.AddCommand(newGameChatCmd())

	return cmd
}

func newGameStartCmd() *cobra.Command {
	var settings Settings

	cmd := &cobra.Command{
		Use:   "start",
		Short: "Start the game (host only)",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.RequireIdentity(); err != nil {
				return err
			}

			req := map[string]any{"player_id": cfg.PlayerID}
			if cmd.Flags().Changed("werewolves") {
				req["settings"] = settings
			}

			var result Room
			path := "/api/v1/rooms/" + cfg.RoomCode + "/start"
			if err := client.Post(path, req, &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().IntVar(&settings.Werewolves, "werewolves", 2, "Number of werewolves")
	cmd.Flags().IntVar(&settings.Villagers, "villagers", 4, "Number of villagers")
	cmd.Flags().IntVar(&settings.Seer, "seer", 1, "Number of seers")
	cmd.Flags().IntVar(&settings.Doctor, "doctor", 1, "Number of doctors")
	cmd.Flags().IntVar(&settings.DayDuration, "day-duration", 300, "Day phase length in seconds")
	cmd.Flags().IntVar(&settings.NightDuration, "night-duration", 120, "Night phase length in seconds")

	return cmd
}

func newGameVoteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "vote <target-player-id>",
		Short: "Vote to eliminate a player (voting phase)",
		Long: `Vote to eliminate a player during the voting phase.

Voting for the same player again withdraws your vote.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.RequireIdentity(); err != nil {
				return err
			}

			path := "/api/v1/rooms/" + cfg.RoomCode + "/vote"
			req := map[string]string{
				"voter_id":  cfg.PlayerID,
				"target_id": args[0],
			}
			if err := client.Post(path, req, nil); err != nil {
				return err
			}

			NewOutput(cfg.Output).PrintMessage("Vote recorded")
			return nil
		},
	}
}

func newGameAbilityCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ability <ability> <target-player-id>",
		Short: "Use your night ability (werewolf, doctor or seer)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.RequireIdentity(); err != nil {
				return err
			}

			path := "/api/v1/rooms/" + cfg.RoomCode + "/ability"
			req := map[string]string{
				"player_id": cfg.PlayerID,
				"target_id": args[1],
				"ability":   args[0],
			}
			if err := client.Post(path, req, nil); err != nil {
				return err
			}

			NewOutput(cfg.Output).PrintMessage("Ability used")
			return nil
		},
	}
}

func newGameChatCmd() *cobra.Command {
	var msgType string

	cmd := &cobra.Command{
		Use:   "chat <message>",
		Short: "Send a chat message",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.RequireIdentity(); err != nil {
				return err
			}

			path := "/api/v1/rooms/" + cfg.RoomCode + "/chat"
			req := map[string]string{
				"player_id": cfg.PlayerID,
				"message":   args[0],
				"type":      msgType,
			}
			if err := client.Post(path, req, nil); err != nil {
				return err
			}

			NewOutput(cfg.Output).PrintMessage("Message sent")
			return nil
		},
	}

	cmd.Flags().StringVar(&msgType, "type", "player", "Message type: player, werewolf")

	return cmd
}
