package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	"homescout/internal/model"
	"homescout/internal/utils"
)

// Summarizer produces a short natural-language summary of a result set. The
// model call is best-effort; failures degrade to a deterministic fallback
// and a zero-match result never reaches the model at all.
type Summarizer struct {
	client *OpenAIClient
	logger *logrus.Logger
}

// NewSummarizer creates a new summarizer.
func NewSummarizer(client *OpenAIClient, logger *logrus.Logger) *Summarizer {
	return &Summarizer{client: client, logger: logger}
}

// Summarize returns a summary string for the matched cards. It never returns
// an empty string.
func (s *Summarizer) Summarize(ctx context.Context, filters *model.Filters, cards []model.PropertyCard) string {
	if len(cards) == 0 {
		return fmt.Sprintf("No properties found for filters: %s.", DescribeFilters(filters))
	}

	if !s.client.IsEnabled() {
		return fallbackSummary(cards)
	}

	summary, err := s.client.GenerateSummary(ctx, buildSummaryPrompt(filters, cards))
	if err != nil {
		s.logger.WithError(err).Warn("Summary generation failed, using fallback")
		return fallbackSummary(cards)
	}
	summary = strings.TrimSpace(summary)
	if summary == "" {
		return fallbackSummary(cards)
	}
	return summary
}

func buildSummaryPrompt(filters *model.Filters, cards []model.PropertyCard) string {
	minPrice, maxPrice := priceRange(cards)
	bhks := distinct(cards, func(c *model.PropertyCard) string { return deref(c.BHKType, "N/A") })
	cities := distinct(cards, func(c *model.PropertyCard) string { return deref(c.City, "Unknown") })

	var sample []string
	for i := range cards {
		if i == 3 {
			break
		}
		c := &cards[i]
		sample = append(sample, fmt.Sprintf("%s (%s, %s, %s)",
			c.ProjectName, deref(c.BHKType, "N/A"), c.FormattedPrice, deref(c.City, "Unknown")))
	}

	return fmt.Sprintf(
		"Filters: %s\nReturned %d properties. Price range: %s-%s. BHK types: %s. Cities: %s. Sample: %s.\nWrite a concise 5-point summary.",
		DescribeFilters(filters), len(cards), minPrice, maxPrice,
		strings.Join(bhks, ", "), strings.Join(cities, ", "), strings.Join(sample, "; "),
	)
}

func fallbackSummary(cards []model.PropertyCard) string {
	minPrice, maxPrice := priceRange(cards)
	cities := distinct(cards, func(c *model.PropertyCard) string { return deref(c.City, "Unknown") })
	return fmt.Sprintf("Found %d matching properties in %s, priced between %s and %s.",
		len(cards), strings.Join(cities, ", "), minPrice, maxPrice)
}

func priceRange(cards []model.PropertyCard) (string, string) {
	var min, max *float64
	for i := range cards {
		p := cards[i].MinPrice
		if p == nil {
			continue
		}
		if min == nil || *p < *min {
			min = p
		}
		if max == nil || *p > *max {
			max = p
		}
	}
	return utils.FormatPrice(min), utils.FormatPrice(max)
}

func distinct(cards []model.PropertyCard, key func(*model.PropertyCard) string) []string {
	seen := make(map[string]struct{})
	var out []string
	for i := range cards {
		k := key(&cards[i])
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

func deref(s *string, fallback string) string {
	if s == nil || *s == "" {
		return fallback
	}
	return *s
}

// DescribeFilters renders a filter object as a compact human-readable list,
// e.g. "city=Pune, bhk=[5]". Used in no-match messages and model prompts.
func DescribeFilters(f *model.Filters) string {
	if f.IsEmpty() {
		return "none"
	}

	var parts []string
	if f.City != "" {
		parts = append(parts, "city="+f.City)
	}
	if len(f.BHK) > 0 {
		parts = append(parts, "bhk=["+strings.Join(f.BHK, ", ")+"]")
	}
	if f.MinBudget != nil {
		parts = append(parts, "min_budget="+utils.FormatPrice(f.MinBudget))
	}
	if f.MaxBudget != nil {
		parts = append(parts, "max_budget="+utils.FormatPrice(f.MaxBudget))
	}
	if f.ProjectName != "" {
		parts = append(parts, "project_name="+f.ProjectName)
	}
	if f.Locality != "" {
		parts = append(parts, "locality="+f.Locality)
	}
	if f.Readiness != "" {
		parts = append(parts, "readiness="+f.Readiness)
	}
	return strings.Join(parts, ", ")
}
