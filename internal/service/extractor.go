package service

import (
	"context"
	"strings"

	"github.com/sirupsen/logrus"

	"homescout/internal/model"
)

// FilterExtractor turns a free-text property query into a structured filter
// object using the language model. Extraction is best-effort: any upstream
// failure degrades to an empty filter object, never to a request failure.
type FilterExtractor struct {
	client *OpenAIClient
	logger *logrus.Logger
}

// NewFilterExtractor creates a new filter extractor.
func NewFilterExtractor(client *OpenAIClient, logger *logrus.Logger) *FilterExtractor {
	return &FilterExtractor{client: client, logger: logger}
}

// Enabled reports whether the language model capability is configured.
func (p *FilterExtractor) Enabled() bool {
	return p.client.IsEnabled()
}

// Extract parses the query into filters. It never returns nil and never
// propagates an error past this boundary.
func (p *FilterExtractor) Extract(ctx context.Context, query string) *model.Filters {
	query = strings.TrimSpace(query)
	if query == "" {
		return &model.Filters{}
	}

	if !p.client.IsEnabled() {
		p.logger.Warn("Filter extraction is disabled (no OPENAI_API_KEY), searching without filters")
		return &model.Filters{}
	}

	filters, err := p.client.ExtractFilters(ctx, query)
	if err != nil {
		p.logger.WithError(err).WithField("query", query).Warn("Filter extraction failed, degrading to empty filters")
		return &model.Filters{}
	}
	return filters
}
