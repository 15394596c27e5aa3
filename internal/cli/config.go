package cli

import (
	"os"
	"path/filepath"
	"strings"
)

// Config holds CLI configuration
type Config struct {
	ServerURL    string
	PlayerID     string
	PlayerIDFile string
	Output       string
	Verbose      bool
}

// DefaultConfig returns a Config with default values
func DefaultConfig() *Config {
	return &Config{
		ServerURL:    getEnvOrDefault("KUCHBHI_SERVER", "http://localhost:8080"),
		PlayerID:     os.Getenv("KUCHBHI_PLAYER_ID"),
		PlayerIDFile: getEnvOrDefault("KUCHBHI_PLAYER_ID_FILE", defaultPlayerIDFile()),
		Output:       "text",
		Verbose:      false,
	}
}

// LoadPlayerID loads the current player id from file if not already set.
// The file is the CLI's equivalent of the browser's remembered session: it
// survives restarts and is cleared by registering again.
func (c *Config) LoadPlayerID() error {
	if c.PlayerID != "" {
		return nil
	}

	data, err := os.ReadFile(c.PlayerIDFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // No saved player is fine
		}
		return err
	}

	c.PlayerID = strings.TrimSpace(string(data))
	return nil
}

// SavePlayerID saves the current player id to the player-id file
func (c *Config) SavePlayerID(id string) error {
	c.PlayerID = id

	dir := filepath.Dir(c.PlayerIDFile)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return err
	}

	return os.WriteFile(c.PlayerIDFile, []byte(id), 0600)
}

func defaultPlayerIDFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".kuchbhi/player-id"
	}
	return filepath.Join(home, ".kuchbhi", "player-id")
}

func getEnvOrDefault(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}
