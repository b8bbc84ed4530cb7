package suggest

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFallback_BirthdayParty(t *testing.T) {
	got := Fallback("Plan a birthday party")
	require.Len(t, got, 4)
	assert.Equal(t, "Send invitations", got[0].Title)
	assert.Equal(t, "Plan the menu", got[1].Title)
	assert.Equal(t, "Arrange decorations", got[2].Title)
	assert.Equal(t, "Create a playlist", got[3].Title)
	for _, s := range got {
		assert.NotEmpty(t, s.Title)
		assert.NotEmpty(t, s.Description)
	}
}

func TestFallback_BlankGoalIsGeneric(t *testing.T) {
	for _, goal := range []string{"", "   ", "\t\n"} {
		got := Fallback(goal)
		require.Len(t, got, 4, "goal %q", goal)
		assert.Equal(t, "Define the main objective", got[0].Title)
		assert.Equal(t, "Gather resources", got[3].Title)
	}
}

func TestFallback_NoMatchIsGeneric(t *testing.T) {
	assert.Equal(t, genericSuggestions, Fallback("zzz qqq"))
	assert.Equal(t, "", Categorize("zzz qqq"))
}

func TestCategorize_Precedence(t *testing.T) {
	cases := map[string]string{
		"Plan a birthday party":    "party",
		"PARTY at the wedding":     "party",
		"Wedding anniversary trip": "wedding",
		"Travel to Japan":          "vacation",
		"Go on an adventure":       "explore",
		"learn to paint":           "learning",
		"paint the fence":          "art",
		"start a vegetable garden": "garden",
		"build a workout habit":    "fitness",
		"save for a house":         "finance",
		"get a promotion":          "career",
		"sleep better":             "health",
		"buy a new camera":         "photography",
		"network with peers":       "social",
		"read a book a week":       "reading",
		"practice singing":         "music",
		"launch my startup":        "business",
		"meal prep sundays":        "nutrition",
		"organize the garage":      "home",
		"create a portfolio site":  "project",
	}
	for goal, want := range cases {
		assert.Equal(t, want, Categorize(goal), goal)
	}
}

func TestFallback_Deterministic(t *testing.T) {
	assert.Equal(t, Fallback("vacation in Rome"), Fallback("vacation in Rome"))
}

func TestFallback_ReturnsCopy(t *testing.T) {
	got := Fallback("party")
	got[0].Title = "changed"
	assert.Equal(t, "Send invitations", Fallback("party")[0].Title)
}

func TestCategories_WellFormed(t *testing.T) {
	assert.Len(t, categories, 19)
	seen := map[string]bool{}
	for _, c := range categories {
		assert.False(t, seen[c.name], "duplicate category %s", c.name)
		seen[c.name] = true
		assert.NotEmpty(t, c.keywords, c.name)
		require.Len(t, c.suggestions, 4, c.name)
		for _, s := range c.suggestions {
			assert.NotEmpty(t, s.Title, c.name)
			assert.NotEmpty(t, s.Description, c.name)
		}
	}
}
