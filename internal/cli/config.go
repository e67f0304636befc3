package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Config holds CLI configuration
type Config struct {
	ServerURL    string
	RoomCode     string
	PlayerID     string
	IdentityFile string
	Output       string
	Verbose      bool
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		ServerURL:    getEnvOrDefault("WEREWOLF_SERVER", "http://localhost:8080"),
		RoomCode:     os.Getenv("WEREWOLF_ROOM"),
		PlayerID:     os.Getenv("WEREWOLF_PLAYER"),
		IdentityFile: getEnvOrDefault("WEREWOLF_IDENTITY_FILE", defaultIdentityFile()),
		Output:       "text",
		Verbose:      false,
	}
}

// LoadIdentity loads the saved room and player from file if not already set
func (c *Config) LoadIdentity() error {
	if c.RoomCode != "" && c.PlayerID != "" {
		return nil
	}

	data, err := os.ReadFile(c.IdentityFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // No identity file is fine
		}
		return err
	}

	parts := strings.SplitN(strings.TrimSpace(string(data)), ":", 2)
	if len(parts) != 2 {
		return nil
	}
	if c.RoomCode == "" {
		c.RoomCode = parts[0]
	}
	if c.PlayerID == "" {
		c.PlayerID = parts[1]
	}
	return nil
}

// SaveIdentity saves the room and player to the identity file
func (c *Config) SaveIdentity(roomCode, playerID string) error {
	c.RoomCode = roomCode
	c.PlayerID = playerID

	dir := filepath.Dir(c.IdentityFile)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}

	return os.WriteFile(c.IdentityFile, []byte(roomCode+":"+playerID), 0600)
}

// ClearIdentity removes the saved identity
func (c *Config) ClearIdentity() error {
	if err := os.Remove(c.IdentityFile); err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// RequireIdentity ensures a room and player are known
func (c *Config) RequireIdentity() error {
	if c.RoomCode == "" || c.PlayerID == "" {
		return fmt.Errorf("no room joined: use 'werewolf room create' or 'werewolf room join', or pass --room and --player")
	}
	return nil
}

func defaultIdentityFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".werewolf/identity"
	}
	return filepath.Join(home, ".werewolf", "identity")
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
