package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

func newRoomCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "room",
		Short: "Room management commands",
	}

	cmd.AddCommand(newRoomCreateCmd())
	cmd.AddCommand(newRoomGetCmd())
	cmd.AddCommand(newRoomJoinCmd())
	cmd.AddCommand(newRoomReadyCmd())
	cmd.AddCommand(newRoomLeaveCmd())

	return cmd
}

func newRoomCreateCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new room",
		RunE: func(cmd *cobra.Command, args []string) error {
			var result JoinedRoom
			if err := client.Post("/api/v1/rooms", map[string]string{"player_name": name}, &result); err != nil {
				return err
			}

			if err := cfg.SaveIdentity(result.Room.Code, result.Player.ID); err != nil {
				return fmt.Errorf("failed to save identity: %w", err)
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Your player name")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newRoomGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get [code]",
		Short: "Get room details",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code := cfg.RoomCode
			if len(args) > 0 {
				code = args[0]
			}
			if code == "" {
				return fmt.Errorf("no room code: pass one or join a room first")
			}

			var result Room
			if err := client.Get("/api/v1/rooms/"+strings.ToUpper(code), &result); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}
}

func newRoomJoinCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "join <code>",
		Short: "Join a room",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code := strings.ToUpper(args[0])

			var result JoinedRoom
			if err := client.Post("/api/v1/rooms/"+code+"/join", map[string]string{"player_name": name}, &result); err != nil {
				return err
			}

			if err := cfg.SaveIdentity(result.Room.Code, result.Player.ID); err != nil {
				return fmt.Errorf("failed to save identity: %w", err)
			}

			out := NewOutput(cfg.Output)
			out.Print(result)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Your player name")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newRoomReadyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "ready",
		Short: "Toggle your ready state",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.RequireIdentity(); err != nil {
				return err
			}

			path := "/api/v1/rooms/" + cfg.RoomCode + "/ready"
			if err := client.Post(path, map[string]string{"player_id": cfg.PlayerID}, nil); err != nil {
				return err
			}

			NewOutput(cfg.Output).PrintMessage("Ready state toggled")
			return nil
		},
	}
}

func newRoomLeaveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "leave",
		Short: "Leave the current room",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.RequireIdentity(); err != nil {
				return err
			}

			path := "/api/v1/rooms/" + cfg.RoomCode + "/leave"
			if err := client.Post(path, map[string]string{"player_id": cfg.PlayerID}, nil); err != nil {
				return err
			}

			if err := cfg.ClearIdentity(); err != nil {
				return err
			}

			NewOutput(cfg.Output).PrintMessage("Left room " + cfg.RoomCode)
			return nil
		},
	}
}
