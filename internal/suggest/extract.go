package suggest

import (
	"encoding/json"
	"errors"
	"strings"

	dom "github.com/Rishit-Ranjan/Task-Pallete/internal/domain"
)

var (
	errNoArray  = errors.New("no JSON array in response")
	errNoTitles = errors.New("array has no entries with a title")
)

// firstJSONArray returns the first substring of text, starting at a '[',
// that decodes as a JSON array.
func firstJSONArray(text string) (json.RawMessage, bool) {
	for i := 0; i < len(text); i++ {
		if text[i] != '[' {
			continue
		}
		var raw json.RawMessage
		dec := json.NewDecoder(strings.NewReader(text[i:]))
		if err := dec.Decode(&raw); err == nil {
			return raw, true
		}
	}
	return nil, false
}

// parseSuggestions extracts up to limit suggestions from generated text.
// Entries that are not objects or lack a title are skipped.
func parseSuggestions(text string, limit int) ([]dom.Suggestion, error) {
	raw, ok := firstJSONArray(text)
	if !ok {
		return nil, errNoArray
	}
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, err
	}
	out := make([]dom.Suggestion, 0, limit)
	for _, item := range items {
		var s struct {
			Title       any `json:"title"`
			Description any `json:"description"`
		}
		if err := json.Unmarshal(item, &s); err != nil {
			continue
		}
		title, _ := s.Title.(string)
		desc, _ := s.Description.(string)
		title = strings.TrimSpace(title)
		if title == "" {
			continue
		}
		out = append(out, dom.Suggestion{Title: title, Description: strings.TrimSpace(desc)})
		if len(out) == limit {
			break
		}
	}
	if len(out) == 0 {
		return nil, errNoTitles
	}
	return out, nil
}
