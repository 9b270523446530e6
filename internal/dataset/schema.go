package dataset

import "strings"

// Source column names vary in casing and separator conventions across data
// providers ("projectId", "Project ID", "project_id"). Columns are resolved by
// normalizing names and matching keyword fragments, validated once at load
// time. Join keys are required; attribute columns degrade to empty values.

func normalizeColumn(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, sep := range []string{" ", "_", "-"} {
		name = strings.ReplaceAll(name, sep, "")
	}
	return name
}

// findColumn returns the index of the first column whose normalized name
// contains every keyword, or -1 when no column qualifies.
func findColumn(headers []string, keywords ...string) int {
	for i, header := range headers {
		normalized := normalizeColumn(header)
		match := true
		for _, kw := range keywords {
			if !strings.Contains(normalized, kw) {
				match = false
				break
			}
		}
		if match {
			return i
		}
	}
	return -1
}

// findOwnID resolves a table's own identifier: either a qualified column
// ("project"+"id") or the bare primary key column "id".
func findOwnID(headers []string, qualifier string) int {
	if idx := findColumn(headers, qualifier, "id"); idx >= 0 {
		return idx
	}
	for i, header := range headers {
		if normalizeColumn(header) == "id" {
			return i
		}
	}
	return -1
}

type projectColumns struct {
	id         int
	name       int
	status     int
	possession int
	summary    int
}

type addressColumns struct {
	projectID   int
	fullAddress int
}

type configColumns struct {
	id        int
	projectID int
	bhkType   int
	customBHK int
}

type variantColumns struct {
	id         int
	configID   int
	carpetArea int
	price      int
	bathrooms  int
	images     int
}

type resolvedColumns struct {
	project projectColumns
	address addressColumns
	config  configColumns
	variant variantColumns
}

// resolveColumns locates the semantic columns in all four tables. A
// *SchemaError enumerating every unresolved join key is returned if any of
// them cannot be located.
func resolveColumns(t *Tables) (resolvedColumns, error) {
	r := resolvedColumns{
		project: projectColumns{
			id:         findOwnID(t.Project.Headers, "project"),
			name:       findColumn(t.Project.Headers, "name"),
			status:     findColumn(t.Project.Headers, "status"),
			possession: findColumn(t.Project.Headers, "possession"),
			summary:    findColumn(t.Project.Headers, "summary"),
		},
		address: addressColumns{
			projectID:   findColumn(t.Address.Headers, "project", "id"),
			fullAddress: findColumn(t.Address.Headers, "address"),
		},
		config: configColumns{
			id:        findOwnID(t.Configuration.Headers, "config"),
			projectID: findColumn(t.Configuration.Headers, "project", "id"),
			bhkType:   findBHKColumn(t.Configuration.Headers),
			customBHK: findColumn(t.Configuration.Headers, "custom"),
		},
		variant: variantColumns{
			id:         findOwnID(t.Variant.Headers, "variant"),
			configID:   findColumn(t.Variant.Headers, "configuration", "id"),
			carpetArea: findColumn(t.Variant.Headers, "carpet"),
			price:      findColumn(t.Variant.Headers, "price"),
			bathrooms:  findColumn(t.Variant.Headers, "bath"),
			images:     findColumn(t.Variant.Headers, "image"),
		},
	}

	var missing []string
	if r.project.id < 0 {
		missing = append(missing, "project.project id")
	}
	if r.address.projectID < 0 {
		missing = append(missing, "address.project id")
	}
	if r.config.projectID < 0 {
		missing = append(missing, "configuration.project id")
	}
	if r.config.id < 0 {
		missing = append(missing, "configuration.configuration id")
	}
	if r.variant.configID < 0 {
		missing = append(missing, "variant.configuration id")
	}
	if len(missing) > 0 {
		return resolvedColumns{}, &SchemaError{Missing: missing}
	}
	return r, nil
}

// The configuration export names its BHK column either "type" or "bhkType".
// The "customBHK" column must not shadow it.
func findBHKColumn(headers []string) int {
	for i, header := range headers {
		normalized := normalizeColumn(header)
		if strings.Contains(normalized, "bhk") && !strings.Contains(normalized, "custom") {
			return i
		}
	}
	return findColumn(headers, "type")
}

// cell safely reads column idx from row, tolerating ragged rows and
// unresolved optional columns.
func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
