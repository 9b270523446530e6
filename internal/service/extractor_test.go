package service

import (
	"context"
	"testing"
)

// Extraction against a live model is exercised in integration environments;
// these tests cover the fail-soft boundary.

func TestExtract_WithoutModel(t *testing.T) {
	extractor := NewFilterExtractor(disabledClient(), testLogger())

	tests := []struct {
		name  string
		query string
	}{
		{"plain query", "3BHK in Pune under 1.2 Cr ready to move"},
		{"empty query", ""},
		{"whitespace query", "   "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filters := extractor.Extract(context.Background(), tt.query)

			if filters == nil {
				t.Fatal("Extract must never return nil")
			}
			if !filters.IsEmpty() {
				t.Errorf("Expected empty filters without a model, got %+v", filters)
			}
		})
	}

	if extractor.Enabled() {
		t.Error("Extractor should report disabled without an API key")
	}
}
