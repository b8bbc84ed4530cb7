package dto

type SettingsResponse struct {
	FontFamily   string   `json:"font_family"`
	TextColor    string   `json:"text_color"`
	AccentColor  string   `json:"accent_color"`
	FontOptions  []string `json:"font_options"`
	ColorOptions []string `json:"color_options"`
}

type UpdateSettingsRequest struct {
	FontFamily  *string `json:"font_family"`
	TextColor   *string `json:"text_color"`
	AccentColor *string `json:"accent_color"`
}

type UpcomingVisibility struct {
	Show *bool `json:"show" binding:"required"`
}
