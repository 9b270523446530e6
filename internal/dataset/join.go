package dataset

import (
	"strconv"
	"strings"

	"homescout/internal/model"
)

// cityKeywords maps each known city to the locality keywords that identify it
// inside a full address. Order matters: the first city with a matching
// keyword wins.
var cityKeywords = []struct {
	City     string
	Keywords []string
}{
	{"Pune", []string{"Pune", "Somwar Peth", "Mangalwar Peth", "Shivajinagar", "Mundhwa", "Mamurdi", "Model Colony", "Punawale", "Dattwadi", "MCA Stadium", "Sai Nagar"}},
	{"Mumbai", []string{"Mumbai", "Chembur", "Mulund", "Ghatkopar", "Andheri", "Sewri", "Pant Nagar"}},
	{"Dombivli", []string{"Dombivli"}},
}

const (
	unknownCity     = "Unknown City"
	unknownLocality = "Unknown Locality"
)

// DeriveCity resolves the city of a full address by case-insensitive keyword
// membership against the known city mapping.
func DeriveCity(address string) string {
	if address == "" {
		return unknownCity
	}
	lower := strings.ToLower(address)
	for _, entry := range cityKeywords {
		for _, kw := range entry.Keywords {
			if strings.Contains(lower, strings.ToLower(kw)) {
				return entry.City
			}
		}
	}
	return unknownCity
}

// DeriveLocality takes the text before the first comma of a full address.
func DeriveLocality(address string) string {
	if address == "" {
		return unknownLocality
	}
	locality := strings.TrimSpace(strings.SplitN(address, ",", 2)[0])
	if locality == "" {
		return unknownLocality
	}
	return locality
}

// BuildListings joins the four source tables into the denormalized listing
// table. All joins are inner: a project without an address, a project without
// a configuration, or a configuration without a variant contributes no rows.
// Rows whose price or carpet area fail numeric coercion are dropped.
func BuildListings(t *Tables) ([]model.Listing, error) {
	cols, err := resolveColumns(t)
	if err != nil {
		return nil, err
	}

	addressByProject := make(map[string]string, len(t.Address.Rows))
	for _, row := range t.Address.Rows {
		projectID := cell(row, cols.address.projectID)
		if projectID == "" {
			continue
		}
		if _, seen := addressByProject[projectID]; !seen {
			addressByProject[projectID] = cell(row, cols.address.fullAddress)
		}
	}

	configsByProject := make(map[string][][]string, len(t.Configuration.Rows))
	for _, row := range t.Configuration.Rows {
		projectID := cell(row, cols.config.projectID)
		if projectID == "" || cell(row, cols.config.id) == "" {
			continue
		}
		configsByProject[projectID] = append(configsByProject[projectID], row)
	}

	variantsByConfig := make(map[string][][]string, len(t.Variant.Rows))
	for _, row := range t.Variant.Rows {
		configID := cell(row, cols.variant.configID)
		if configID == "" {
			continue
		}
		variantsByConfig[configID] = append(variantsByConfig[configID], row)
	}

	var listings []model.Listing
	for _, projectRow := range t.Project.Rows {
		projectID := cell(projectRow, cols.project.id)
		if projectID == "" {
			continue
		}
		fullAddress, ok := addressByProject[projectID]
		if !ok {
			continue
		}

		for _, configRow := range configsByProject[projectID] {
			configID := cell(configRow, cols.config.id)
			bhkType := cell(configRow, cols.config.bhkType)
			if bhkType == "" {
				bhkType = cell(configRow, cols.config.customBHK)
			}

			for _, variantRow := range variantsByConfig[configID] {
				price, ok := cleanPrice(cell(variantRow, cols.variant.price))
				if !ok {
					continue
				}
				area, err := strconv.ParseFloat(cell(variantRow, cols.variant.carpetArea), 64)
				if err != nil {
					continue
				}

				listings = append(listings, model.Listing{
					ID:             projectID,
					ConfigID:       configID,
					VariantID:      cell(variantRow, cols.variant.id),
					ProjectName:    cell(projectRow, cols.project.name),
					Status:         cell(projectRow, cols.project.status),
					PossessionDate: cell(projectRow, cols.project.possession),
					Summary:        cell(projectRow, cols.project.summary),
					BHKType:        bhkType,
					MinPrice:       price,
					CarpetArea:     area,
					Bathrooms:      parseBathrooms(cell(variantRow, cols.variant.bathrooms)),
					ImageURL:       cell(variantRow, cols.variant.images),
					FullAddress:    fullAddress,
					City:           DeriveCity(fullAddress),
					Locality:       DeriveLocality(fullAddress),
				})
			}
		}
	}

	return listings, nil
}

// cleanPrice strips thousands separators before numeric coercion.
func cleanPrice(raw string) (float64, bool) {
	raw = strings.ReplaceAll(raw, ",", "")
	if raw == "" {
		return 0, false
	}
	price, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, false
	}
	return price, true
}

func parseBathrooms(raw string) *int {
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		// e.g. "2.0" from spreadsheet exports
		f, ferr := strconv.ParseFloat(raw, 64)
		if ferr != nil {
			return nil
		}
		n = int(f)
	}
	return &n
}
