package service

import (
	"homescout/internal/model"
	"homescout/internal/utils"
)

// MaterializeCards converts matched listings into transport-ready property
// cards, truncating to max rows. The cap is the final step after all
// filtering.
func MaterializeCards(listings []model.Listing, max int) []model.PropertyCard {
	if max >= 0 && len(listings) > max {
		listings = listings[:max]
	}

	cards := make([]model.PropertyCard, 0, len(listings))
	for i := range listings {
		cards = append(cards, cardFromListing(&listings[i]))
	}
	return cards
}

func cardFromListing(l *model.Listing) model.PropertyCard {
	projectName := l.ProjectName
	if projectName == "" {
		// "N/A" substitution happens only at materialization, never in the
		// joined table itself.
		projectName = "N/A"
	}

	price := &l.MinPrice
	return model.PropertyCard{
		ID:             l.ID,
		ProjectName:    projectName,
		City:           optional(l.City),
		Locality:       optional(l.Locality),
		Status:         optional(l.Status),
		PossessionDate: optional(l.PossessionDate),
		BHKType:        optional(l.BHKType),
		MinPrice:       price,
		CarpetArea:     &l.CarpetArea,
		Bathrooms:      l.Bathrooms,
		Summary:        optional(l.Summary),
		ImageURL:       optional(l.ImageURL),
		FormattedPrice: utils.FormatPrice(price),
		FullAddress:    optional(l.FullAddress),
	}
}

// optional maps empty strings to nil so absent values serialize as JSON null.
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
