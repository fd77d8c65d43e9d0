package helpers

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOptional_AbsentNullValue(t *testing.T) {
	var dst struct {
		Title    Optional[string] `json:"title"`
		DueDate  Optional[string] `json:"due_date"`
		Priority Optional[string] `json:"priority"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"title":"buy milk","due_date":null}`), &dst))

	assert.True(t, dst.Title.Set)
	assert.True(t, dst.Title.Valid)
	assert.Equal(t, "buy milk", dst.Title.Value)

	assert.True(t, dst.DueDate.Set)
	assert.False(t, dst.DueDate.Valid)

	assert.False(t, dst.Priority.Set)
}

func TestOptional_Bool(t *testing.T) {
	var dst struct {
		Completed Optional[bool] `json:"completed"`
	}
	require.NoError(t, json.Unmarshal([]byte(`{"completed":true}`), &dst))
	assert.True(t, dst.Completed.Set)
	assert.True(t, dst.Completed.Value)
}

func TestOptional_MarshalNull(t *testing.T) {
	b, err := json.Marshal(Optional[string]{Set: true})
	require.NoError(t, err)
	assert.Equal(t, "null", string(b))
}
