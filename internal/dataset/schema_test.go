package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeColumn(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"projectId", "projectid"},
		{"Project ID", "projectid"},
		{"project_id", "projectid"},
		{" Carpet-Area ", "carpetarea"},
		{"fullAddress", "fulladdress"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, normalizeColumn(tt.in))
	}
}

func TestFindColumn(t *testing.T) {
	headers := []string{"id", "Project Name", "configurationId", "carpet_area"}

	assert.Equal(t, 2, findColumn(headers, "configuration", "id"))
	assert.Equal(t, 3, findColumn(headers, "carpet"))
	assert.Equal(t, -1, findColumn(headers, "project", "id"))
}

func TestFindOwnID(t *testing.T) {
	// Qualified column preferred over bare id.
	assert.Equal(t, 1, findOwnID([]string{"name", "projectId"}, "project"))
	// Bare primary key accepted as the table's own identifier.
	assert.Equal(t, 0, findOwnID([]string{"id", "name"}, "project"))
	assert.Equal(t, -1, findOwnID([]string{"name", "status"}, "project"))
}

func TestResolveColumns_MissingKeysEnumerated(t *testing.T) {
	tables := &Tables{
		Project:       Table{Name: "project", Headers: []string{"id", "projectName"}},
		Address:       Table{Name: "address", Headers: []string{"fullAddress", "pincode"}},
		Configuration: Table{Name: "configuration", Headers: []string{"id", "type"}},
		Variant:       Table{Name: "variant", Headers: []string{"id", "price"}},
	}

	_, err := resolveColumns(tables)
	require.Error(t, err)

	var schemaErr *SchemaError
	require.ErrorAs(t, err, &schemaErr)
	assert.ElementsMatch(t, []string{
		"address.project id",
		"configuration.project id",
		"variant.configuration id",
	}, schemaErr.Missing)
}

func TestResolveColumns_AcrossNamingConventions(t *testing.T) {
	tables := &Tables{
		Project:       Table{Name: "project", Headers: []string{"id", "projectName", "status", "possessionDate", "projectSummary"}},
		Address:       Table{Name: "address", Headers: []string{"Project ID", "Full Address", "Pincode"}},
		Configuration: Table{Name: "configuration", Headers: []string{"id", "project_id", "type", "customBHK"}},
		Variant:       Table{Name: "variant", Headers: []string{"id", "configuration_id", "carpetArea", "price", "bathrooms", "propertyImages"}},
	}

	cols, err := resolveColumns(tables)
	require.NoError(t, err)

	assert.Equal(t, 0, cols.project.id)
	assert.Equal(t, 0, cols.address.projectID)
	assert.Equal(t, 1, cols.address.fullAddress)
	assert.Equal(t, 1, cols.config.projectID)
	assert.Equal(t, 2, cols.config.bhkType)
	assert.Equal(t, 1, cols.variant.configID)
	assert.Equal(t, 2, cols.variant.carpetArea)
}
