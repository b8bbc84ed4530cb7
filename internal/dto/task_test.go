package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dom "github.com/Rishit-Ranjan/Task-Pallete/internal/domain"
)

func TestDueDate_AbsentNullAndValue(t *testing.T) {
	var absent UpdateTaskRequest
	require.NoError(t, json.Unmarshal([]byte(`{"title":"x"}`), &absent))
	assert.False(t, absent.DueDate.Set())

	var cleared UpdateTaskRequest
	require.NoError(t, json.Unmarshal([]byte(`{"due_date":null}`), &cleared))
	assert.True(t, cleared.DueDate.Set())
	assert.Nil(t, cleared.DueDate.Ptr())

	var set UpdateTaskRequest
	require.NoError(t, json.Unmarshal([]byte(`{"due_date":"2026-10-20"}`), &set))
	require.NotNil(t, set.DueDate.Ptr())
	assert.Equal(t, dom.NewDate(2026, 10, 20), *set.DueDate.Ptr())
}

func TestParseDueDate(t *testing.T) {
	d, err := ParseDueDate("2026-10-20T18:30:00+02:00")
	require.NoError(t, err)
	assert.Equal(t, dom.NewDate(2026, 10, 20), d)

	d, err = ParseDueDate(" 2026-01-02 ")
	require.NoError(t, err)
	assert.Equal(t, dom.NewDate(2026, 1, 2), d)

	_, err = ParseDueDate("next friday")
	assert.Error(t, err)

	var req CreateTaskRequest
	assert.Error(t, json.Unmarshal([]byte(`{"due_date":42}`), &req))
}

func TestChecklistFromRequest(t *testing.T) {
	got := ChecklistFromRequest([]ChecklistItemRequest{
		{Text: " milk "},
		{Text: "   "},
		{ID: "b", Text: "eggs", Completed: true},
	})
	require.Len(t, got, 2)
	assert.Equal(t, "milk", got[0].Text)
	assert.Equal(t, "b", got[1].ID)
	assert.True(t, got[1].Completed)
}
