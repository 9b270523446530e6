package utils

import "testing"

type testFilters struct {
	City      string   `json:"city"`
	BHK       []string `json:"bhk"`
	MaxBudget float64  `json:"max_budget"`
}

func TestParseModelJSON_PureJSON(t *testing.T) {
	input := `{"city": "Pune", "bhk": ["3"], "max_budget": 12000000}`

	var result testFilters
	if err := ParseModelJSON(input, &result); err != nil {
		t.Fatalf("Failed to parse pure JSON: %v", err)
	}
	if result.City != "Pune" {
		t.Errorf("Expected city Pune, got %q", result.City)
	}
	if result.MaxBudget != 12000000 {
		t.Errorf("Expected max_budget 12000000, got %v", result.MaxBudget)
	}
}

func TestParseModelJSON_MarkdownFence(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{
			name:  "json fence",
			input: "```json\n{\"city\": \"Mumbai\"}\n```",
		},
		{
			name:  "plain fence",
			input: "```\n{\"city\": \"Mumbai\"}\n```",
		},
		{
			name:  "fence with surrounding text",
			input: "Here are the filters:\n```json\n{\"city\": \"Mumbai\"}\n```\nLet me know if you need more.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var result testFilters
			if err := ParseModelJSON(tt.input, &result); err != nil {
				t.Fatalf("Failed to parse: %v", err)
			}
			if result.City != "Mumbai" {
				t.Errorf("Expected city Mumbai, got %q", result.City)
			}
		})
	}
}

func TestParseModelJSON_EmbeddedInProse(t *testing.T) {
	input := `Based on the query, the filters are {"city": "Pune", "bhk": ["2", "3"]} as requested.`

	var result testFilters
	if err := ParseModelJSON(input, &result); err != nil {
		t.Fatalf("Failed to parse embedded JSON: %v", err)
	}
	if len(result.BHK) != 2 {
		t.Errorf("Expected 2 BHK entries, got %d", len(result.BHK))
	}
}

func TestParseModelJSON_NestedBraces(t *testing.T) {
	input := `prefix {"city": "Pune", "nested": {"a": "b"}} suffix`

	var result map[string]interface{}
	if err := ParseModelJSON(input, &result); err != nil {
		t.Fatalf("Failed to parse nested JSON: %v", err)
	}
	if result["city"] != "Pune" {
		t.Errorf("Expected city Pune, got %v", result["city"])
	}
}

func TestParseModelJSON_BracesInsideStrings(t *testing.T) {
	input := `{"summary": "a {weird} value", "city": "Pune"}`

	var result map[string]interface{}
	if err := ParseModelJSON(input, &result); err != nil {
		t.Fatalf("Failed to parse JSON with braces in strings: %v", err)
	}
}

func TestParseModelJSON_Invalid(t *testing.T) {
	var result testFilters
	if err := ParseModelJSON("", &result); err == nil {
		t.Error("Expected error for empty input")
	}
	if err := ParseModelJSON("no json here at all", &result); err == nil {
		t.Error("Expected error for non-JSON input")
	}
}
