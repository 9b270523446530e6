package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringList_Unmarshal(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"string array", `["2", "3"]`, []string{"2", "3"}},
		{"number array", `[2, 3]`, []string{"2", "3"}},
		{"mixed array", `["2 BHK", 3]`, []string{"2 BHK", "3"}},
		{"single string", `"3"`, []string{"3"}},
		{"single number", `3`, []string{"3"}},
		{"fractional number", `2.5`, []string{"2.5"}},
		{"null", `null`, nil},
		{"empty string", `""`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var s StringList
			require.NoError(t, json.Unmarshal([]byte(tt.in), &s))
			assert.Equal(t, StringList(tt.want), s)
		})
	}
}

func TestFilters_IsEmpty(t *testing.T) {
	var nilFilters *Filters
	assert.True(t, nilFilters.IsEmpty())
	assert.True(t, (&Filters{}).IsEmpty())

	max := 1.0
	assert.False(t, (&Filters{MaxBudget: &max}).IsEmpty())
	assert.False(t, (&Filters{City: "Pune"}).IsEmpty())
}

func TestFilters_UnmarshalModelOutput(t *testing.T) {
	// Shape of a typical extraction response.
	raw := `{"city": "Pune", "bhk": [3], "max_budget": 12000000, "readiness": "Ready to move"}`

	var f Filters
	require.NoError(t, json.Unmarshal([]byte(raw), &f))
	assert.Equal(t, "Pune", f.City)
	assert.Equal(t, StringList{"3"}, f.BHK)
	require.NotNil(t, f.MaxBudget)
	assert.Equal(t, 12000000.0, *f.MaxBudget)
	assert.Nil(t, f.MinBudget)
}
