package domain

import (
	"fmt"
	"regexp"
	"slices"
)

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{6}$`)

// FontOptions are the font families the presentation layer knows how to load.
var FontOptions = []string{"Inter", "Roboto", "Open Sans", "Poppins", "Montserrat"}

// ColorOptions are the preset accent colors offered by the settings panel.
var ColorOptions = []string{"#6366f1", "#ef4444", "#22c55e", "#f59e0b", "#8b5cf6", "#ec4899", "#06b6d4", "#f97316"}

// Settings is the appearance configuration handed to presentation code.
type Settings struct {
	FontFamily  string `json:"fontFamily" yaml:"font_family"`
	TextColor   string `json:"textColor" yaml:"text_color"`
	AccentColor string `json:"accentColor" yaml:"accent_color"`
}

func DefaultSettings() Settings {
	return Settings{
		FontFamily:  "Inter",
		TextColor:   "#e2e8f0",
		AccentColor: "#6366f1",
	}
}

func (s Settings) Validate() error {
	if !slices.Contains(FontOptions, s.FontFamily) {
		return fmt.Errorf("unknown font %q", s.FontFamily)
	}
	if !hexColor.MatchString(s.TextColor) {
		return fmt.Errorf("text color must be #rrggbb, got %q", s.TextColor)
	}
	if !hexColor.MatchString(s.AccentColor) {
		return fmt.Errorf("accent color must be #rrggbb, got %q", s.AccentColor)
	}
	return nil
}

// SettingsPatch is a partial settings update. nil means "no change".
type SettingsPatch struct {
	FontFamily  *string
	TextColor   *string
	AccentColor *string
}

// Apply returns s with the patch merged in.
func (s Settings) Apply(p SettingsPatch) Settings {
	if p.FontFamily != nil {
		s.FontFamily = *p.FontFamily
	}
	if p.TextColor != nil {
		s.TextColor = *p.TextColor
	}
	if p.AccentColor != nil {
		s.AccentColor = *p.AccentColor
	}
	return s
}
