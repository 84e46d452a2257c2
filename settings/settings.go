// Package settings holds the console-wide settings (brightness, player
// color) and persists them as JSON next to the score database. Defaults
// apply whenever the file is missing or unreadable.
package settings

import (
	"encoding/json"
	"fmt"
	"image/color"
	"os"
)

// Settings is the persisted console configuration.
type Settings struct {
	// Brightness of the panel, 0-255.
	Brightness uint8 `json:"brightness"`

	// PlayerColorIndex selects from the PlayerColors palette.
	PlayerColorIndex uint8 `json:"player_color_index"`

	SoundEnabled bool `json:"sound_enabled"`
}

// Palette of player colors that stay readable on a small bright panel.
var PlayerColors = []color.RGBA{
	{R: 0, G: 255, B: 0, A: 255},
	{R: 255, G: 255, B: 0, A: 255},
	{R: 0, G: 255, B: 255, A: 255},
	{R: 255, G: 0, B: 255, A: 255},
	{R: 255, G: 140, B: 0, A: 255},
	{R: 255, G: 255, B: 255, A: 255},
	{R: 80, G: 160, B: 255, A: 255},
	{R: 255, G: 80, B: 80, A: 255},
}

// PlayerColorNames parallels PlayerColors for settings menus.
var PlayerColorNames = []string{
	"GREEN", "YELLOW", "CYAN", "MAGENTA", "ORANGE", "WHITE", "BLUE", "RED",
}

// Default returns the factory settings.
func Default() Settings {
	return Settings{
		Brightness:       200,
		PlayerColorIndex: 0,
		SoundEnabled:     false,
	}
}

// PlayerColor resolves the configured palette entry.
func (s Settings) PlayerColor() color.RGBA {
	if int(s.PlayerColorIndex) >= len(PlayerColors) {
		return PlayerColors[0]
	}
	return PlayerColors[s.PlayerColorIndex]
}

// Load reads settings from path. A missing file yields defaults without
// error; a corrupt file yields defaults with the parse error.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return Default(), fmt.Errorf("reading settings: %w", err)
	}

	s := Default()
	if err := json.Unmarshal(data, &s); err != nil {
		return Default(), fmt.Errorf("parsing settings: %w", err)
	}
	return s, nil
}

// Save writes settings to path as indented JSON.
func (s Settings) Save(path string) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding settings: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing settings: %w", err)
	}
	return nil
}
