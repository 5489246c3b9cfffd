package cli

import (
	"encoding/json"
	"errors"
	"os"

	"morris/internal/morris"
)

const DefaultSettingsPath = "settings.json"

type Settings struct {
	// NoColor 表示开局时询问
	FirstPlayer morris.Color   `json:"first_player"`
	Board       *morris.Glyphs `json:"board,omitempty"`
}

func NewSettings() *Settings {
	glyphs := morris.DefaultGlyphs
	return &Settings{
		FirstPlayer: morris.NoColor,
		Board:       &glyphs,
	}
}

// Glyphs 返回渲染用字符，缺省项用默认值补齐
func (s *Settings) Glyphs() morris.Glyphs {
	g := morris.DefaultGlyphs
	if s == nil || s.Board == nil {
		return g
	}
	if s.Board.Empty != "" {
		g.Empty = s.Board.Empty
	}
	if s.Board.White != "" {
		g.White = s.Board.White
	}
	if s.Board.Black != "" {
		g.Black = s.Board.Black
	}
	return g
}

func LoadSettings(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	settings := NewSettings()
	err = json.Unmarshal(data, settings)
	if err != nil {
		return nil, err
	}
	return settings, nil
}

func StoreSettings(path string, settings *Settings) error {
	if settings == nil {
		panic(errors.New("settings is nil"))
	}
	data, err := json.MarshalIndent(settings, "", "    ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0666)
}
