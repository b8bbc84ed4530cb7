package domain

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePriority(t *testing.T) {
	tests := []struct {
		in      string
		want    Priority
		wantErr bool
	}{
		{in: "low", want: PriorityLow},
		{in: " HIGH ", want: PriorityHigh},
		{in: "Medium", want: PriorityMedium},
		{in: "urgent", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tt := range tests {
		got, err := ParsePriority(tt.in)
		if tt.wantErr {
			assert.Error(t, err, tt.in)
			continue
		}
		assert.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got)
	}
}

func TestPriorityRank(t *testing.T) {
	assert.Less(t, PriorityHigh.Rank(), PriorityMedium.Rank())
	assert.Less(t, PriorityMedium.Rank(), PriorityLow.Rank())
	assert.Equal(t, "High", PriorityHigh.Label())
}

func TestDate_ParseAndFormat(t *testing.T) {
	d, err := ParseDate("2026-02-28")
	require.NoError(t, err)
	assert.Equal(t, Date{Year: 2026, Month: time.February, Day: 28}, d)
	assert.Equal(t, "2026-03-01", d.AddDays(1).String())
	assert.Equal(t, "2025-12-31", NewDate(2026, time.January, 0).String())

	_, err = ParseDate("28/02/2026")
	assert.Error(t, err)
}

func TestDate_DaysSince(t *testing.T) {
	a := NewDate(2026, time.March, 1)
	b := NewDate(2026, time.February, 27)
	assert.Equal(t, 2, a.DaysSince(b))
	assert.Equal(t, -2, b.DaysSince(a))
	assert.True(t, b.Before(a))
	assert.False(t, a.Before(a))
}

func TestDate_JSON(t *testing.T) {
	task := Task{ID: "a", Title: "x", Priority: PriorityLow, DueDate: &Date{Year: 2026, Month: time.October, Day: 5}}
	b, err := json.Marshal(task)
	require.NoError(t, err)
	assert.Contains(t, string(b), `"dueDate":"2026-10-05"`)

	var back Task
	require.NoError(t, json.Unmarshal(b, &back))
	require.NotNil(t, back.DueDate)
	assert.Equal(t, *task.DueDate, *back.DueDate)

	var noDue Task
	require.NoError(t, json.Unmarshal([]byte(`{"id":"b","title":"y","priority":"high"}`), &noDue))
	assert.Nil(t, noDue.DueDate)
}

func TestTask_CloneIsIndependent(t *testing.T) {
	due := NewDate(2026, time.May, 1)
	orig := Task{
		ID:        "t1",
		DueDate:   &due,
		Checklist: []ChecklistItem{{ID: "c1", Text: "one"}},
	}
	cp := orig.Clone()
	cp.Checklist[0].Completed = true
	cp.DueDate.Day = 2

	assert.False(t, orig.Checklist[0].Completed)
	assert.Equal(t, 1, orig.DueDate.Day)
	assert.Equal(t, 0, orig.ChecklistIndex("c1"))
	assert.Equal(t, -1, orig.ChecklistIndex("missing"))
}

func TestSuggestion_Draft(t *testing.T) {
	d := Suggestion{Title: "  Send invitations ", Description: "to guests"}.Draft()
	assert.Equal(t, "Send invitations", d.Title)
	assert.Equal(t, PriorityMedium, d.Priority)
	assert.Nil(t, d.DueDate)
	assert.Empty(t, d.Checklist)
}

func TestSettings_ValidateAndApply(t *testing.T) {
	s := DefaultSettings()
	require.NoError(t, s.Validate())

	accent := "#ef4444"
	s = s.Apply(SettingsPatch{AccentColor: &accent})
	assert.Equal(t, "#ef4444", s.AccentColor)
	assert.Equal(t, "Inter", s.FontFamily)

	bad := "red"
	assert.Error(t, s.Apply(SettingsPatch{TextColor: &bad}).Validate())
	font := "Comic Sans"
	assert.Error(t, s.Apply(SettingsPatch{FontFamily: &font}).Validate())
}
